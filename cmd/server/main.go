// Package main implements the entry point for the deckgen API server, which
// stores flashcard decks in memory and generates their cards with Gemini.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/phrazzld/deckgen-api/internal/config"
	"github.com/phrazzld/deckgen-api/internal/platform/logger"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

// newRootCommand builds the deckgen-api command.
func newRootCommand() *cobra.Command {
	var configFile string

	cmd := &cobra.Command{
		Use:           "deckgen-api",
		Short:         "Serve the flashcard deck API",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := initializeApp(configFile)
			if err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "Failed to initialize application: %v\n", err)
				return err
			}

			app, err := newApplication(cmd.Context(), cfg, slog.Default())
			if err != nil {
				slog.Error("Failed to build application", "error", err)
				return err
			}

			if err := app.Run(cmd.Context()); err != nil {
				slog.Error("Server stopped with error", "error", err)
				return err
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&configFile, "config", "c", "", "path to a YAML config file")
	cmd.SetContext(context.Background())
	return cmd
}

// initializeApp loads .env and the configuration, then sets up logging.
// A missing .env file is not an error.
func initializeApp(configFile string) (*config.Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	cfg, err := config.LoadFile(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if _, err := logger.Setup(cfg.Server); err != nil {
		return nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	slog.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"model", cfg.LLM.ModelName,
		"strict_schema", cfg.LLM.StrictSchema)

	return cfg, nil
}
