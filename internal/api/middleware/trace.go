package middleware

import (
	"log/slog"
	"net/http"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/phrazzld/deckgen-api/internal/api/shared"
	"github.com/phrazzld/deckgen-api/internal/platform/logger"
)

// TraceMiddleware adds a trace ID to the request context together with a
// logger tagged with it. Handlers and services pick that logger up through
// logger.FromContextOrDefault. The trace ID is echoed in the X-Request-Id
// response header.
func TraceMiddleware(base *slog.Logger) func(http.Handler) http.Handler {
	if base == nil {
		base = slog.Default()
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := shared.SetTraceID(r.Context())
			traceID := shared.GetTraceID(ctx)

			w.Header().Set(chimiddleware.RequestIDHeader, traceID)

			log := base.With(slog.String("trace_id", traceID))
			ctx = logger.WithLogger(ctx, log)

			log.Debug("request started",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.String("remote_addr", r.RemoteAddr))

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
