package api

import "github.com/phrazzld/deckgen-api/internal/domain"

// UpdateDeckRequest defines the payload for the update-deck endpoint.
// Clients may send a full deck; only the name and cards are applied.
type UpdateDeckRequest struct {
	Name       string             `json:"name"       validate:"max=200"`
	FlashCards []domain.FlashCard `json:"flashCards" validate:"required,dive"`
}

// ToDeck converts the payload into the deck value the service overlays.
func (r UpdateDeckRequest) ToDeck() *domain.Deck {
	return &domain.Deck{
		Name:       r.Name,
		FlashCards: r.FlashCards,
	}
}
