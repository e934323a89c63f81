package api

import (
	"log/slog"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/deckgen-api/internal/api/shared"
	"github.com/phrazzld/deckgen-api/internal/domain"
	"github.com/phrazzld/deckgen-api/internal/platform/logger"
	"github.com/phrazzld/deckgen-api/internal/service"
)

// DeckRoutePrefix is the path every deck endpoint is mounted under.
const DeckRoutePrefix = "/Deck"

// DeckHandler handles deck-related HTTP requests
type DeckHandler struct {
	deckService service.DeckService
	logger      *slog.Logger
}

// NewDeckHandler creates a new DeckHandler
func NewDeckHandler(deckService service.DeckService, logger *slog.Logger) *DeckHandler {
	if deckService == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("deckService cannot be nil for DeckHandler")
	}
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for DeckHandler")
	}

	return &DeckHandler{
		deckService: deckService,
		logger:      logger.With(slog.String("component", "deck_handler")),
	}
}

// RegisterRoutes mounts every deck endpoint on r under DeckRoutePrefix.
func (h *DeckHandler) RegisterRoutes(r chi.Router) {
	r.Route(DeckRoutePrefix, func(r chi.Router) {
		r.Get("/GetDecks", h.GetDecks)
		r.Get("/GetDeckById/{id}", h.GetDeckByID)
		r.Get("/GetAvailableLanguages", h.GetAvailableLanguages)
		r.Post("/CreateDeck", h.CreateDeck)
		r.Put("/UpdateDeck/{id}", h.UpdateDeck)
		r.Delete("/DeleteDeck", h.DeleteDeck)
		r.Delete("/DeleteDeck/{id}", h.DeleteDeck)
	})
}

// GetDecks handles GET /Deck/GetDecks requests.
// It responds 404 when no deck has been stored yet.
func (h *DeckHandler) GetDecks(w http.ResponseWriter, r *http.Request) {
	decks, err := h.deckService.ListDecks(r.Context())
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list decks")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, decks)
}

// GetDeckByID handles GET /Deck/GetDeckById/{id} requests.
func (h *DeckHandler) GetDeckByID(w http.ResponseWriter, r *http.Request) {
	id, err := getDeckID(r)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	deck, err := h.deckService.GetDeck(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to get deck")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, deck)
}

// GetAvailableLanguages handles GET /Deck/GetAvailableLanguages requests.
func (h *DeckHandler) GetAvailableLanguages(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, h.deckService.AvailableLanguages())
}

// CreateDeck handles POST /Deck/CreateDeck requests.
// It generates the deck's cards and responds 201 with the stored deck and
// a Location header pointing at it.
func (h *DeckHandler) CreateDeck(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req domain.GenerationRequestDTO
	if err := shared.DecodeJSON(w, r, &req); err != nil {
		log.Debug("invalid create deck payload", slog.String("error", err.Error()))
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	deck, err := h.deckService.CreateDeck(r.Context(), req)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to create deck")
		return
	}

	w.Header().Set("Location", deckLocation(deck.ID))
	shared.RespondWithJSON(w, r, http.StatusCreated, deck)
}

// UpdateDeck handles PUT /Deck/UpdateDeck/{id} requests.
// It replaces the deck's name and cards and responds 201 with the result.
func (h *DeckHandler) UpdateDeck(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, err := getDeckID(r)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	var req UpdateDeckRequest
	if err := shared.DecodeJSON(w, r, &req); err != nil {
		log.Debug("invalid update deck payload",
			slog.String("deck_id", id),
			slog.String("error", err.Error()))
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := shared.ValidateRequest(&req); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	deck, err := h.deckService.UpdateDeck(r.Context(), id, req.ToDeck())
	if err != nil {
		HandleAPIError(w, r, err, "Failed to update deck")
		return
	}

	w.Header().Set("Location", deckLocation(deck.ID))
	shared.RespondWithJSON(w, r, http.StatusCreated, deck)
}

// DeleteDeck handles DELETE /Deck/DeleteDeck/{id} and DELETE /Deck/DeleteDeck?id=
// requests. It responds 204 on success and 404 when the deck does not exist.
func (h *DeckHandler) DeleteDeck(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, err := getDeckID(r)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	removed, err := h.deckService.DeleteDeck(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to delete deck")
		return
	}
	if !removed {
		log.Debug("deck to delete not found", slog.String("deck_id", id))
		shared.RespondWithError(w, r, http.StatusNotFound, "Deck not found")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func deckLocation(id string) string {
	return DeckRoutePrefix + "/GetDeckById/" + url.PathEscape(id)
}
