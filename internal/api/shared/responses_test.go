package shared

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/phrazzld/deckgen-api/internal/domain"
	"github.com/phrazzld/deckgen-api/internal/platform/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requestWithTrace(t *testing.T) (*http.Request, *logger.TestLogBuffer) {
	t.Helper()
	buf, log := logger.NewTestLogger(t)
	ctx := SetTraceID(context.Background())
	ctx = logger.WithLogger(ctx, log)
	return httptest.NewRequest(http.MethodGet, "/Deck/GetDecks", nil).WithContext(ctx), buf
}

func TestRespondWithJSON(t *testing.T) {
	r, _ := requestWithTrace(t)
	w := httptest.NewRecorder()

	RespondWithJSON(w, r, http.StatusCreated, map[string]string{"id": "abc"})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"id":"abc"}`, w.Body.String())
}

func TestRespondWithError(t *testing.T) {
	r, _ := requestWithTrace(t)
	w := httptest.NewRecorder()

	RespondWithError(w, r, http.StatusNotFound, "Deck not found")

	var body ErrorResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Deck not found", body.Error)
	assert.Equal(t, GetTraceID(r.Context()), body.TraceID)
}

func TestRespondWithValidationError(t *testing.T) {
	r, _ := requestWithTrace(t)
	w := httptest.NewRecorder()

	RespondWithValidationError(w, r, domain.NewValidationError("count", "must be at most 50", domain.ErrValidation))

	var body ErrorResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	require.Len(t, body.Fields, 1)
	assert.Equal(t, "count", body.Fields[0].Field)
}

func TestRespondWithErrorAndLog(t *testing.T) {
	r, buf := requestWithTrace(t)
	w := httptest.NewRecorder()
	err := errors.New("call failed: api_key=AIzaSyA1234567890abcdefghijklmnopqrstu")

	RespondWithErrorAndLog(w, r, http.StatusBadGateway, "Flashcard generation service is unavailable", err)

	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.NotContains(t, w.Body.String(), "AIza", "raw error never reaches the client")
	assert.NotContains(t, buf.String(), "AIza", "secrets are redacted in logs")

	entries, parseErr := buf.GetLogEntries()
	require.NoError(t, parseErr)
	require.NotEmpty(t, entries)
	last := entries[len(entries)-1]
	assert.Equal(t, "ERROR", last["level"])
	assert.Equal(t, GetTraceID(r.Context()), last["trace_id"])
}
