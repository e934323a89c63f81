package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/phrazzld/deckgen-api/internal/api/shared"
	"github.com/phrazzld/deckgen-api/internal/domain"
	"github.com/phrazzld/deckgen-api/internal/generation"
	"github.com/phrazzld/deckgen-api/internal/store"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	case err == nil:
		return http.StatusOK

	// Not found errors
	case errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound

	// Conflict errors
	case errors.Is(err, store.ErrDuplicate):
		return http.StatusConflict

	// Provider failures are upstream problems, not bad requests
	case errors.Is(err, generation.ErrProviderUnavailable):
		return http.StatusBadGateway

	// Bad request errors
	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, store.ErrInvalidEntity),
		errors.Is(err, generation.ErrGenerationFailed),
		errors.Is(err, generation.ErrInvalidResponse),
		errors.Is(err, generation.ErrContentBlocked):
		return http.StatusBadRequest

	// Cut off by the request timeout
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout

	// Default: internal server error
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. This prevents leaking sensitive internal details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	switch {
	case errors.Is(err, store.ErrDeckNotFound):
		return "Deck not found"

	case errors.Is(err, store.ErrNotFound):
		return "Resource not found"

	case errors.Is(err, store.ErrDeckExists):
		return "Deck already exists"

	case errors.Is(err, generation.ErrProviderUnavailable):
		return "Flashcard generation service is unavailable"

	case errors.Is(err, generation.ErrContentBlocked):
		return "Flashcard generation was blocked by content filters"

	case errors.Is(err, generation.ErrGenerationFailed),
		errors.Is(err, generation.ErrInvalidResponse):
		return "Failed to generate flashcards"

	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, store.ErrInvalidEntity):
		return "Validation failed"

	case errors.Is(err, context.DeadlineExceeded):
		return "Request timed out"

	default:
		return "An unexpected error occurred"
	}
}

// HandleAPIError writes the response for err. Validation errors list the
// offending fields; every other error gets its mapped status and safe message,
// with the detailed error logged after redaction. A non-empty
// fallbackMessage replaces the generic message for 500 responses.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error, fallbackMessage string) {
	var verr *domain.ValidationError
	if errors.As(err, &verr) && verr.HasErrors() {
		shared.RespondWithValidationError(w, r, verr)
		return
	}

	status := MapErrorToStatusCode(err)
	message := GetSafeErrorMessage(err)
	if status == http.StatusInternalServerError && fallbackMessage != "" {
		message = fallbackMessage
	}

	shared.RespondWithErrorAndLog(w, r, status, message, err)
}
