package shared

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/phrazzld/deckgen-api/internal/domain"
	"github.com/phrazzld/deckgen-api/internal/platform/logger"
	"github.com/phrazzld/deckgen-api/internal/redact"
)

// ErrorResponse defines the standard error response structure.
type ErrorResponse struct {
	Error   string              `json:"error"`
	Code    int                 `json:"-"` // Not serialized to JSON, used for logging
	Fields  []domain.FieldError `json:"fields,omitempty"`
	TraceID string              `json:"trace_id,omitempty"`
}

// RespondWithJSON writes a JSON response with the given status code and data.
func RespondWithJSON(w http.ResponseWriter, r *http.Request, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.FromContextOrDefault(r.Context(), slog.Default()).
			Error("failed to encode JSON response", slog.String("error", err.Error()))
	}
}

// RespondWithError writes a JSON error response with the given status code and message.
// It also sets the TraceID from the request context if available.
func RespondWithError(w http.ResponseWriter, r *http.Request, status int, message string) {
	respondWithErrorBody(w, r, ErrorResponse{Error: message, Code: status})
}

// RespondWithValidationError writes a 400 response listing every invalid field.
func RespondWithValidationError(w http.ResponseWriter, r *http.Request, verr *domain.ValidationError) {
	respondWithErrorBody(w, r, ErrorResponse{
		Error:  "Validation failed",
		Code:   http.StatusBadRequest,
		Fields: verr.Fields,
	})
}

func respondWithErrorBody(w http.ResponseWriter, r *http.Request, body ErrorResponse) {
	body.TraceID = GetTraceID(r.Context())

	logger.FromContextOrDefault(r.Context(), slog.Default()).Debug("sending error response",
		slog.Int("status_code", body.Code),
		slog.String("message", body.Error),
		slog.String("path", r.URL.Path),
		slog.String("method", r.Method))

	RespondWithJSON(w, r, body.Code, body)
}

// RespondWithErrorAndLog writes a JSON error response and also logs the detailed error.
// Only userMessage reaches the client; the error is redacted before logging.
//
// 5xx responses are logged at ERROR, 502 included; 4xx responses at DEBUG.
func RespondWithErrorAndLog(
	w http.ResponseWriter,
	r *http.Request,
	status int,
	userMessage string,
	err error,
) {
	traceID := GetTraceID(r.Context())

	logAttrs := []slog.Attr{
		slog.String("trace_id", traceID),
		slog.String("path", r.URL.Path),
		slog.String("method", r.Method),
		slog.Int("status_code", status),
		slog.String("user_message", userMessage),
	}
	if err != nil {
		logAttrs = append(logAttrs,
			slog.String("error", redact.Error(err)),
			slog.String("error_type", fmt.Sprintf("%T", err)))
	}

	logLevel := slog.LevelDebug
	if status >= http.StatusInternalServerError {
		logLevel = slog.LevelError
	}

	log := logger.FromContextOrDefault(r.Context(), slog.Default())
	log.LogAttrs(r.Context(), logLevel, "API error response", logAttrs...)

	RespondWithJSON(w, r, status, ErrorResponse{
		Error:   userMessage,
		Code:    status,
		TraceID: traceID,
	})
}
