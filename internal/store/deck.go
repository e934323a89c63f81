package store

import (
	"context"

	"github.com/phrazzld/deckgen-api/internal/domain"
)

// DeckStore defines the interface for deck persistence, keyed by deck ID.
// Implementations must be safe for concurrent use. They perform no
// optimistic-concurrency checks: concurrent updates to one ID are last-writer-wins.
type DeckStore interface {
	// List returns every stored deck, oldest first.
	// Returns ErrDeckNotFound when the store holds no decks at all.
	List(ctx context.Context) ([]*domain.Deck, error)

	// Get retrieves a deck by its ID.
	// Returns ErrDeckNotFound if the deck does not exist.
	Get(ctx context.Context, id string) (*domain.Deck, error)

	// Create inserts a new deck.
	// Returns ErrDeckExists if a deck with the same ID is already stored,
	// or ErrInvalidEntity if the deck fails domain validation.
	Create(ctx context.Context, deck *domain.Deck) error

	// Update replaces the deck stored under id and returns the stored value.
	// Returns ErrDeckNotFound if the deck does not exist.
	Update(ctx context.Context, id string, deck *domain.Deck) (*domain.Deck, error)

	// Delete removes the deck stored under id.
	// Returns ErrDeckNotFound if the deck does not exist.
	Delete(ctx context.Context, id string) error
}
