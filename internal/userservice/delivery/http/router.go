package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// NewRouter creates a new Chi router with all middleware and routes
func NewRouter(handler *Handler, logger *zap.Logger, rateLimiter *RateLimiter) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(LoggerMiddleware(logger))
	r.Use(middleware.Recoverer)

	// Probes are not rate limited.
	r.Get("/healthz", handler.Healthz)

	r.Group(func(r chi.Router) {
		r.Use(rateLimiter.Middleware)

		r.Get("/hello", handler.Hello)
		r.Post("/user/create", handler.CreateUser)
	})

	return r
}
