package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httprate"
)

// NewRouter builds the Chi router. All read endpoints are public; the
// weather refresh requires bearer auth. Rate limiting applies globally,
// rateLimitRPM requests per minute per IP.
func NewRouter(handlers *Handlers, adminToken string, store storePinger, rateLimitRPM int, log *slog.Logger) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(httprate.LimitByIP(rateLimitRPM, time.Minute))

	r.Get("/api/v1/health", HealthHandlerFunc(store, log))

	r.Get("/api/v1/attractions", handlers.ListAttractions)
	r.Get("/api/v1/attractions/nearby", handlers.Nearby)
	r.Get("/api/v1/attractions/featured", handlers.Featured)
	r.Get("/api/v1/attractions/{id}", handlers.GetAttraction)
	r.Get("/api/v1/categories", handlers.Categories)
	r.Get("/api/v1/weather", handlers.Weather)

	r.Group(func(r chi.Router) {
		r.Use(BearerAuth(adminToken))
		r.Post("/api/v1/weather/refresh", handlers.RefreshWeather)
	})

	return r
}

// Ensure chi.Mux implements http.Handler.
var _ http.Handler = (*chi.Mux)(nil)
