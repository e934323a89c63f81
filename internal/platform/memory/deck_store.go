package memory

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"sync"

	"github.com/phrazzld/deckgen-api/internal/domain"
	"github.com/phrazzld/deckgen-api/internal/store"
	"github.com/samber/lo"
)

// DeckStore implements store.DeckStore with a map guarded by a RWMutex.
// Decks are copied on the way in and on the way out, so callers never hold
// a reference into the map.
type DeckStore struct {
	mu     sync.RWMutex
	decks  map[string]*domain.Deck
	logger *slog.Logger
}

var _ store.DeckStore = (*DeckStore)(nil)

// NewDeckStore creates an empty DeckStore.
// If logger is nil, a default logger is used.
func NewDeckStore(logger *slog.Logger) *DeckStore {
	if logger == nil {
		logger = slog.Default()
	}

	return &DeckStore{
		decks:  make(map[string]*domain.Deck),
		logger: logger.With(slog.String("component", "deck_store")),
	}
}

// List implements store.DeckStore.List
func (s *DeckStore) List(ctx context.Context) ([]*domain.Deck, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	decks := lo.Map(lo.Values(s.decks), func(d *domain.Deck, _ int) *domain.Deck {
		return d.Clone()
	})
	s.mu.RUnlock()

	if len(decks) == 0 {
		s.logger.DebugContext(ctx, "no decks stored")
		return nil, store.ErrDeckNotFound
	}

	sort.Slice(decks, func(i, j int) bool {
		if decks[i].CreatedAt.Equal(decks[j].CreatedAt) {
			return decks[i].ID < decks[j].ID
		}
		return decks[i].CreatedAt.Before(decks[j].CreatedAt)
	})

	return decks, nil
}

// Get implements store.DeckStore.Get
func (s *DeckStore) Get(ctx context.Context, id string) (*domain.Deck, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	deck, ok := s.decks[id]
	s.mu.RUnlock()

	if !ok {
		return nil, store.ErrDeckNotFound
	}
	return deck.Clone(), nil
}

// Create implements store.DeckStore.Create
func (s *DeckStore) Create(ctx context.Context, deck *domain.Deck) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if deck == nil {
		return fmt.Errorf("%w: deck is nil", store.ErrInvalidEntity)
	}
	if err := deck.Validate(); err != nil {
		return store.NewStoreError("deck", "create", "validation failed",
			fmt.Errorf("%w: %w", store.ErrInvalidEntity, err))
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.decks[deck.ID]; exists {
		s.logger.WarnContext(ctx, "deck id already stored", slog.String("deck_id", deck.ID))
		return store.ErrDeckExists
	}
	s.decks[deck.ID] = deck.Clone()

	s.logger.DebugContext(ctx, "deck stored",
		slog.String("deck_id", deck.ID),
		slog.Int("card_count", len(deck.FlashCards)))
	return nil
}

// Update implements store.DeckStore.Update
func (s *DeckStore) Update(ctx context.Context, id string, deck *domain.Deck) (*domain.Deck, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if deck == nil {
		return nil, fmt.Errorf("%w: deck is nil", store.ErrInvalidEntity)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.decks[id]; !exists {
		return nil, store.ErrDeckNotFound
	}

	stored := deck.Clone()
	stored.ID = id
	s.decks[id] = stored

	s.logger.DebugContext(ctx, "deck replaced",
		slog.String("deck_id", id),
		slog.Int("card_count", len(stored.FlashCards)))
	return stored.Clone(), nil
}

// Delete implements store.DeckStore.Delete
func (s *DeckStore) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.decks[id]; !exists {
		return store.ErrDeckNotFound
	}
	delete(s.decks, id)

	s.logger.DebugContext(ctx, "deck deleted", slog.String("deck_id", id))
	return nil
}

// Len returns the number of stored decks.
func (s *DeckStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.decks)
}
