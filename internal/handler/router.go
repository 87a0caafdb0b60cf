package handler

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/securepass/securepass-go/internal/middleware"
)

// RouterOptions wires the services and limits into the HTTP routes.
type RouterOptions struct {
	Generator      *GeneratorHandler
	Strength       *StrengthHandler
	Logger         *slog.Logger
	RateLimitRPS   float64
	RateLimitBurst int
	// Done stops background rate limiter cleanup when closed.
	Done <-chan struct{}
}

// NewRouter builds the API router.
func NewRouter(opts RouterOptions) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(opts.Logger))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.RateLimit(opts.RateLimitRPS, opts.RateLimitBurst, opts.Done))

		r.Get("/tips", HandleTips)
		r.Post("/strength", opts.Strength.HandleCheck)
		r.Post("/generate", opts.Generator.HandleGenerate)
		r.Get("/history", opts.Generator.HandleListHistory)
		r.Delete("/history", opts.Generator.HandleClearHistory)
	})

	return r
}
