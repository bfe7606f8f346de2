package handler

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"

	"github.com/narwhalmedia/tracker/pkg/interfaces"
	"github.com/narwhalmedia/tracker/pkg/logger"
	"github.com/narwhalmedia/tracker/pkg/metrics"
)

// RouterConfig holds the transport settings of the API.
type RouterConfig struct {
	CORSOrigins     []string
	RateLimit       int
	RateLimitWindow time.Duration
	Metrics         bool
}

// NewRouter builds the chi router for h.
func NewRouter(h *MediaHandler, cfg RouterConfig, log interfaces.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(logger.RequestLogger(log))
	r.Use(middleware.Recoverer)
	if cfg.Metrics {
		r.Use(metrics.Middleware)
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.CORSOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
		ExposedHeaders: []string{"X-Request-ID"},
		MaxAge:         300,
	}))

	r.Get("/", h.Root)
	r.Get("/health", h.Health)
	r.Get("/ready", h.Ready)

	r.Route("/api", func(r chi.Router) {
		if cfg.RateLimit > 0 {
			r.Use(httprate.LimitByIP(cfg.RateLimit, cfg.RateLimitWindow))
		}

		r.Route("/media", func(r chi.Router) {
			r.Get("/", h.ListMedia)
			r.Post("/", h.CreateMedia)
			r.Get("/{id}", h.GetMedia)
			r.Put("/{id}", h.UpdateMedia)
			r.Patch("/{id}", h.PatchMedia)
			r.Delete("/{id}", h.DeleteMedia)
		})
		r.Get("/lookup", h.Lookup)
	})

	return r
}
