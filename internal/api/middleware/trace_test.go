package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/phrazzld/deckgen-api/internal/api/shared"
	"github.com/phrazzld/deckgen-api/internal/platform/logger"
	"github.com/stretchr/testify/assert"
)

func TestTraceMiddleware(t *testing.T) {
	buf, log := logger.NewTestLogger(t)

	var traceID string
	handler := TraceMiddleware(log)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID = shared.GetTraceID(r.Context())
		logger.FromContext(r.Context()).Info("inside handler")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Len(t, traceID, 32)
	assert.Equal(t, traceID, rec.Header().Get("X-Request-Id"))
	assert.True(t, strings.Contains(buf.String(), `"trace_id":"`+traceID+`"`),
		"request logger carries the trace id")
}
