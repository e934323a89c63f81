package mocks

import (
	"context"

	"github.com/phrazzld/deckgen-api/internal/domain"
	"github.com/phrazzld/deckgen-api/internal/service"
)

// MockDeckService implements service.DeckService for handler tests.
// Unset function fields return zero values.
type MockDeckService struct {
	ListDecksFn          func(ctx context.Context) ([]*domain.Deck, error)
	GetDeckFn            func(ctx context.Context, id string) (*domain.Deck, error)
	CreateDeckFn         func(ctx context.Context, dto domain.GenerationRequestDTO) (*domain.Deck, error)
	UpdateDeckFn         func(ctx context.Context, id string, deck *domain.Deck) (*domain.Deck, error)
	DeleteDeckFn         func(ctx context.Context, id string) (bool, error)
	AvailableLanguagesFn func() []domain.Language
}

var _ service.DeckService = (*MockDeckService)(nil)

// ListDecks implements service.DeckService
func (m *MockDeckService) ListDecks(ctx context.Context) ([]*domain.Deck, error) {
	if m.ListDecksFn != nil {
		return m.ListDecksFn(ctx)
	}
	return nil, nil
}

// GetDeck implements service.DeckService
func (m *MockDeckService) GetDeck(ctx context.Context, id string) (*domain.Deck, error) {
	if m.GetDeckFn != nil {
		return m.GetDeckFn(ctx, id)
	}
	return nil, nil
}

// CreateDeck implements service.DeckService
func (m *MockDeckService) CreateDeck(
	ctx context.Context,
	dto domain.GenerationRequestDTO,
) (*domain.Deck, error) {
	if m.CreateDeckFn != nil {
		return m.CreateDeckFn(ctx, dto)
	}
	return nil, nil
}

// UpdateDeck implements service.DeckService
func (m *MockDeckService) UpdateDeck(
	ctx context.Context,
	id string,
	deck *domain.Deck,
) (*domain.Deck, error) {
	if m.UpdateDeckFn != nil {
		return m.UpdateDeckFn(ctx, id, deck)
	}
	return nil, nil
}

// DeleteDeck implements service.DeckService
func (m *MockDeckService) DeleteDeck(ctx context.Context, id string) (bool, error) {
	if m.DeleteDeckFn != nil {
		return m.DeleteDeckFn(ctx, id)
	}
	return false, nil
}

// AvailableLanguages implements service.DeckService
func (m *MockDeckService) AvailableLanguages() []domain.Language {
	if m.AvailableLanguagesFn != nil {
		return m.AvailableLanguagesFn()
	}
	return domain.SupportedLanguages
}
