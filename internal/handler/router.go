package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/vaultpass/passgen-go/internal/middleware"
	"github.com/vaultpass/passgen-go/internal/service"
)

// Options configures the middleware NewRouter installs on the API routes.
type Options struct {
	// RateLimitRPS <= 0 disables rate limiting on the API routes.
	RateLimitRPS   float64
	RateLimitBurst int
}

// NewRouter sets up all routes and middleware. Background work started for
// the router stops when ctx is cancelled.
func NewRouter(ctx context.Context, svc *service.GeneratorService, opts Options) http.Handler {
	genHandler := NewGeneratorHandler(svc)

	r := chi.NewRouter()
	r.Use(chimw.Recoverer)
	r.Use(middleware.Logger)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Group(func(r chi.Router) {
		if opts.RateLimitRPS > 0 {
			r.Use(middleware.RateLimit(ctx, opts.RateLimitRPS, opts.RateLimitBurst))
		}
		r.Post("/api/v1/generate", genHandler.HandleGenerate)
		r.Post("/api/v1/strength", genHandler.HandleStrength)
	})

	return r
}
