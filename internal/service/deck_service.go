package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"
	"github.com/phrazzld/deckgen-api/internal/domain"
	"github.com/phrazzld/deckgen-api/internal/generation"
	"github.com/phrazzld/deckgen-api/internal/platform/logger"
	"github.com/phrazzld/deckgen-api/internal/store"
	"github.com/samber/lo"
)

// DeckService provides deck-related operations
type DeckService interface {
	// ListDecks returns every stored deck.
	// Fails with store.ErrDeckNotFound when there are none.
	ListDecks(ctx context.Context) ([]*domain.Deck, error)

	// GetDeck retrieves a deck by its ID.
	GetDeck(ctx context.Context, id string) (*domain.Deck, error)

	// CreateDeck validates the request, generates its cards and stores the
	// new deck. A request that fails validation is returned as a
	// *domain.ValidationError and the generator is never called.
	CreateDeck(ctx context.Context, dto domain.GenerationRequestDTO) (*domain.Deck, error)

	// UpdateDeck replaces the name and cards of an existing deck. Languages
	// and level are kept from the stored deck.
	UpdateDeck(ctx context.Context, id string, deck *domain.Deck) (*domain.Deck, error)

	// DeleteDeck removes a deck. It reports false, with a nil error, when no
	// deck had that ID.
	DeleteDeck(ctx context.Context, id string) (bool, error)

	// AvailableLanguages lists the languages clients may choose from.
	AvailableLanguages() []domain.Language
}

// deckServiceImpl implements the DeckService interface
type deckServiceImpl struct {
	decks     store.DeckStore
	generator generation.Generator
	logger    *slog.Logger
}

// NewDeckService creates a new DeckService
// It returns an error if any of the required dependencies are nil.
func NewDeckService(
	decks store.DeckStore,
	generator generation.Generator,
	logger *slog.Logger,
) (DeckService, error) {
	if decks == nil {
		return nil, domain.NewValidationError("decks", "cannot be nil", domain.ErrValidation)
	}
	if generator == nil {
		return nil, domain.NewValidationError("generator", "cannot be nil", domain.ErrValidation)
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &deckServiceImpl{
		decks:     decks,
		generator: generator,
		logger:    logger.With(slog.String("component", "deck_service")),
	}, nil
}

// ListDecks implements DeckService.ListDecks
func (s *deckServiceImpl) ListDecks(ctx context.Context) ([]*domain.Deck, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	decks, err := s.decks.List(ctx)
	if err != nil {
		if store.IsNotFoundError(err) {
			log.Debug("no decks stored")
			return nil, NewDeckServiceError("list_decks", "no decks found", err)
		}
		log.Error("failed to list decks", slog.String("error", err.Error()))
		return nil, NewDeckServiceError("list_decks", "failed to list decks", err)
	}

	log.Debug("listed decks", slog.Int("deck_count", len(decks)))
	return decks, nil
}

// GetDeck implements DeckService.GetDeck
func (s *deckServiceImpl) GetDeck(ctx context.Context, id string) (*domain.Deck, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	deck, err := s.decks.Get(ctx, id)
	if err != nil {
		if store.IsNotFoundError(err) {
			log.Debug("deck not found", slog.String("deck_id", id))
			return nil, NewDeckServiceError("get_deck", "deck not found", err)
		}
		log.Error("failed to retrieve deck",
			slog.String("error", err.Error()),
			slog.String("deck_id", id))
		return nil, NewDeckServiceError("get_deck", "failed to retrieve deck", err)
	}

	return deck, nil
}

// CreateDeck implements DeckService.CreateDeck
func (s *deckServiceImpl) CreateDeck(
	ctx context.Context,
	dto domain.GenerationRequestDTO,
) (*domain.Deck, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	req, err := dto.Parse()
	if err != nil {
		log.Debug("rejected generation request", slog.String("error", err.Error()))
		return nil, err
	}

	log.Info("generating deck",
		slog.String("deck_name", dto.DeckName),
		slog.String("level", req.Level.String()),
		slog.String("original_language", req.OriginalLanguage.String()),
		slog.String("target_language", req.TargetLanguage.String()),
		slog.Int("count", req.Count))

	cards, err := s.generator.GenerateFlashCards(ctx, req)
	if err != nil {
		log.Error("flashcard generation failed", slog.String("error", err.Error()))
		return nil, NewDeckServiceError("create_deck", "failed to generate flashcards", err)
	}

	deck, err := domain.NewDeck(dto.DeckName, dto.UserID, req, cards)
	if err != nil {
		log.Error("generated deck is invalid", slog.String("error", err.Error()))
		return nil, NewDeckServiceError("create_deck", "generated deck is invalid", err)
	}

	if err := s.decks.Create(ctx, deck); err != nil {
		log.Error("failed to store deck",
			slog.String("error", err.Error()),
			slog.String("deck_id", deck.ID))
		return nil, NewDeckServiceError("create_deck", "failed to store deck", err)
	}

	log.Info("deck created",
		slog.String("deck_id", deck.ID),
		slog.Int("card_count", len(deck.FlashCards)))
	return deck, nil
}

// UpdateDeck implements DeckService.UpdateDeck
func (s *deckServiceImpl) UpdateDeck(
	ctx context.Context,
	id string,
	deck *domain.Deck,
) (*domain.Deck, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if deck == nil {
		return nil, domain.NewValidationError("deck", "is required", domain.ErrValidation)
	}

	existing, err := s.decks.Get(ctx, id)
	if err != nil {
		if store.IsNotFoundError(err) {
			log.Debug("deck to update not found", slog.String("deck_id", id))
			return nil, NewDeckServiceError("update_deck", "deck not found", err)
		}
		return nil, NewDeckServiceError("update_deck", "failed to retrieve deck", err)
	}

	existing.ReplaceContent(deck.Name, normalizeCards(existing, deck.FlashCards))
	if err := existing.Validate(); err != nil {
		log.Debug("rejected deck update",
			slog.String("deck_id", id),
			slog.String("error", err.Error()))
		return nil, err
	}

	updated, err := s.decks.Update(ctx, id, existing)
	if err != nil {
		log.Error("failed to update deck",
			slog.String("error", err.Error()),
			slog.String("deck_id", id))
		return nil, NewDeckServiceError("update_deck", "failed to update deck", err)
	}

	log.Info("deck updated",
		slog.String("deck_id", id),
		slog.Int("card_count", len(updated.FlashCards)))
	return updated, nil
}

// DeleteDeck implements DeckService.DeleteDeck
func (s *deckServiceImpl) DeleteDeck(ctx context.Context, id string) (bool, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	err := s.decks.Delete(ctx, id)
	switch {
	case err == nil:
		log.Info("deck deleted", slog.String("deck_id", id))
		return true, nil
	case errors.Is(err, store.ErrNotFound):
		log.Debug("deck to delete not found", slog.String("deck_id", id))
		return false, nil
	default:
		log.Error("failed to delete deck",
			slog.String("error", err.Error()),
			slog.String("deck_id", id))
		return false, NewDeckServiceError("delete_deck", "failed to delete deck", err)
	}
}

// AvailableLanguages implements DeckService.AvailableLanguages
func (s *deckServiceImpl) AvailableLanguages() []domain.Language {
	return append([]domain.Language(nil), domain.SupportedLanguages...)
}

// normalizeCards fills in what an update payload may leave out: a card
// without an ID gets a fresh one and a card without a level takes the deck's.
func normalizeCards(deck *domain.Deck, cards []domain.FlashCard) []domain.FlashCard {
	return lo.Map(cards, func(card domain.FlashCard, _ int) domain.FlashCard {
		if card.ID == "" {
			card.ID = uuid.NewString()
		}
		if card.Level == "" {
			card.Level = deck.Level
		}
		return card
	})
}
