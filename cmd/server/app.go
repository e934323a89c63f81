package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/phrazzld/deckgen-api/internal/config"
	"github.com/phrazzld/deckgen-api/internal/generation"
	"github.com/phrazzld/deckgen-api/internal/platform/gemini"
	"github.com/phrazzld/deckgen-api/internal/platform/memory"
	"github.com/phrazzld/deckgen-api/internal/service"
	"github.com/phrazzld/deckgen-api/internal/store"
)

// application holds all the shared application dependencies to simplify management
// and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger

	deckStore   store.DeckStore
	generator   generation.Generator
	deckService service.DeckService
}

// newApplication creates the application with the Gemini generator.
// A generator that cannot be built is a fatal startup error.
func newApplication(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*application, error) {
	generator, err := gemini.NewGeminiGenerator(ctx, logger, cfg.LLM)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Gemini generator: %w", err)
	}
	logger.Info("Gemini generator initialized", "model", cfg.LLM.ModelName)

	return newApplicationWithGenerator(cfg, logger, generator)
}

// newApplicationWithGenerator wires the store, service and handlers around generator.
func newApplicationWithGenerator(
	cfg *config.Config,
	logger *slog.Logger,
	generator generation.Generator,
) (*application, error) {
	app := &application{
		config:    cfg,
		logger:    logger,
		deckStore: memory.NewDeckStore(logger),
		generator: generator,
	}

	var err error
	app.deckService, err = service.NewDeckService(app.deckStore, app.generator, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create deck service: %w", err)
	}

	logger.Info("Application initialized successfully")
	return app, nil
}

// Run starts the application server, handling lifecycle and cleanup.
// It returns an error if the server fails to start or encounters problems.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// cleanup handles graceful shutdown of application resources.
// Decks live only in memory, so their count is logged before they are lost.
func (app *application) cleanup() {
	if s, ok := app.deckStore.(*memory.DeckStore); ok {
		app.logger.Info("Discarding in-memory decks", "deck_count", s.Len())
	}
	app.logger.Info("Application shutdown completed")
}
