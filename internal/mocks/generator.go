package mocks

import (
	"context"
	"fmt"
	"sync"

	"github.com/phrazzld/deckgen-api/internal/domain"
	"github.com/phrazzld/deckgen-api/internal/generation"
)

// MockGenerator implements generation.Generator for testing
type MockGenerator struct {
	// GenerateFlashCardsFn allows test cases to mock the GenerateFlashCards behavior
	GenerateFlashCardsFn func(ctx context.Context, req domain.GenerationRequest) ([]domain.FlashCard, error)

	// Default response values. When both are nil the mock builds req.Count
	// sample cards that honour the request's languages, level and region.
	Cards []domain.FlashCard
	Err   error

	// Call tracking for verification
	GenerateFlashCardsCalls struct {
		// mu protects the call tracking state for concurrent test cases
		mu sync.Mutex

		// Count tracks how many times GenerateFlashCards was called
		Count int

		// Requests contains all requests passed to GenerateFlashCards calls
		Requests []domain.GenerationRequest
	}
}

var _ generation.Generator = (*MockGenerator)(nil)

// GenerateFlashCards implements the generation.Generator interface
func (m *MockGenerator) GenerateFlashCards(
	ctx context.Context,
	req domain.GenerationRequest,
) ([]domain.FlashCard, error) {
	m.GenerateFlashCardsCalls.mu.Lock()
	m.GenerateFlashCardsCalls.Count++
	m.GenerateFlashCardsCalls.Requests = append(m.GenerateFlashCardsCalls.Requests, req)
	m.GenerateFlashCardsCalls.mu.Unlock()

	if m.GenerateFlashCardsFn != nil {
		return m.GenerateFlashCardsFn(ctx, req)
	}
	if m.Cards != nil || m.Err != nil {
		return m.Cards, m.Err
	}
	return SampleFlashCards(req)
}

// CallCount returns how many times GenerateFlashCards was called.
func (m *MockGenerator) CallCount() int {
	m.GenerateFlashCardsCalls.mu.Lock()
	defer m.GenerateFlashCardsCalls.mu.Unlock()
	return m.GenerateFlashCardsCalls.Count
}

// Reset resets the call tracking state
func (m *MockGenerator) Reset() {
	m.GenerateFlashCardsCalls.mu.Lock()
	defer m.GenerateFlashCardsCalls.mu.Unlock()

	m.GenerateFlashCardsCalls.Count = 0
	m.GenerateFlashCardsCalls.Requests = nil
}

// NewMockGeneratorWithCards creates a MockGenerator that returns the specified cards
func NewMockGeneratorWithCards(cards []domain.FlashCard) *MockGenerator {
	return &MockGenerator{Cards: cards}
}

// NewMockGeneratorWithError creates a MockGenerator that returns the specified error
func NewMockGeneratorWithError(err error) *MockGenerator {
	return &MockGenerator{Err: err}
}

// MockGeneratorThatFails creates a MockGenerator that simulates a malformed model reply
func MockGeneratorThatFails() *MockGenerator {
	return NewMockGeneratorWithError(
		fmt.Errorf("%w: %w: reply has no flashCards property",
			generation.ErrGenerationFailed, generation.ErrInvalidResponse))
}

// MockGeneratorWithContentBlocked creates a MockGenerator that simulates content being blocked
func MockGeneratorWithContentBlocked() *MockGenerator {
	return NewMockGeneratorWithError(generation.ErrContentBlocked)
}

// MockGeneratorUnavailable creates a MockGenerator that simulates an unreachable provider
func MockGeneratorUnavailable() *MockGenerator {
	return NewMockGeneratorWithError(
		fmt.Errorf("%w: connection refused", generation.ErrProviderUnavailable))
}

// SampleFlashCards builds req.Count numbered cards for req.
func SampleFlashCards(req domain.GenerationRequest) ([]domain.FlashCard, error) {
	cards := make([]domain.FlashCard, 0, req.Count)
	for i := 1; i <= req.Count; i++ {
		card, err := domain.NewFlashCard(
			fmt.Sprintf("phrase %d", i),
			fmt.Sprintf("frase %d", i),
			req.OriginalLanguage,
			req.TargetLanguage,
			req.Level,
			req.Region,
		)
		if err != nil {
			return nil, err
		}
		cards = append(cards, card)
	}
	return cards, nil
}
