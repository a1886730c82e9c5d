package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/VoidMesh/noise/internal/logging"
)

func SetupMiddleware(timeout time.Duration) []func(http.Handler) http.Handler {
	return []func(http.Handler) http.Handler{
		middleware.RequestID,
		RequestLogger,
		middleware.Recoverer,

		// Read-only public API
		cors.Handler(cors.Options{
			AllowedOrigins:   []string{"*"},
			AllowedMethods:   []string{"GET", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-ID"},
			ExposedHeaders:   []string{"Content-Length"},
			AllowCredentials: false,
			MaxAge:           300,
		}),

		middleware.Timeout(timeout),
	}
}

// RequestLogger writes one structured line per request through the shared
// logger. Server errors log at error level, client errors at warn.
func RequestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()

		next.ServeHTTP(ww, r)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		logger := logging.WithFields(
			"request_id", middleware.GetReqID(r.Context()),
			"method", r.Method,
			"path", r.URL.Path,
			"status", status,
			"bytes", ww.BytesWritten(),
			"duration", time.Since(start),
		)
		switch {
		case status >= 500:
			logger.Error("request failed")
		case status >= 400:
			logger.Warn("request rejected")
		default:
			logger.Debug("request served")
		}
	})
}

// ThrottleMiddleware lets limit requests run at once and queues twice as
// many for up to wait before rejecting with 429.
func ThrottleMiddleware(limit int, wait time.Duration) func(http.Handler) http.Handler {
	return middleware.ThrottleBacklog(limit, limit*2, wait)
}
