package generation

import (
	"context"

	"github.com/phrazzld/deckgen-api/internal/domain"
)

// Generator produces the flashcards for a new deck.
type Generator interface {
	// GenerateFlashCards asks the model for req.Count phrase pairs and turns
	// them into cards. Every returned card has a fresh ID, the requested level
	// and region, its front in req.OriginalLanguage and its back in
	// req.TargetLanguage. Each call is independent of every other call.
	//
	// Errors wrap one of the sentinels in errors.go.
	GenerateFlashCards(ctx context.Context, req domain.GenerationRequest) ([]domain.FlashCard, error)
}
