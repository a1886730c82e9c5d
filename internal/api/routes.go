package api

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"github.com/VoidMesh/noise/internal/config"
)

func SetupRoutes(handler *Handler, cfg *config.Config) *chi.Mux {
	r := chi.NewRouter()

	// Setup middleware
	for _, middleware := range SetupMiddleware(cfg.Server.RequestTimeout) {
		r.Use(middleware)
	}

	// JSON content type
	r.Use(render.SetContentType(render.ContentTypeJSON))

	// Health check endpoint
	r.Get("/health", handler.HealthCheck)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/presets", handler.ListPresets)
		r.Route("/presets/{name}", func(r chi.Router) {
			r.Get("/", handler.GetPreset)
			r.Get("/sample", handler.SamplePreset)

			// Rendering is the expensive path
			r.With(ThrottleMiddleware(cfg.Render.MaxConcurrent, cfg.Server.RequestTimeout)).Get("/image", handler.RenderPreset)
		})
	})

	return r
}
