package api

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/deckgen-api/internal/domain"
)

// deckIDParam is the route and query parameter naming a deck.
const deckIDParam = "id"

// getDeckID extracts the deck ID from the route, falling back to the query
// string (DELETE /Deck/DeleteDeck?id=...). A missing or blank ID is a
// validation error.
func getDeckID(r *http.Request) (string, error) {
	id := strings.TrimSpace(chi.URLParam(r, deckIDParam))
	if id == "" {
		id = strings.TrimSpace(r.URL.Query().Get(deckIDParam))
	}
	if id == "" {
		return "", domain.NewValidationError(deckIDParam, "is required", domain.ErrEmptyID)
	}
	return id, nil
}
