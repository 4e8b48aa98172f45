// Package router wires handlers and middleware into the HTTP route table.
package router

import (
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	mw "github.com/feedboard-dev/feedboard/internal/middleware"
	metricsmw "github.com/feedboard-dev/feedboard/internal/middleware/metrics"
	rl "github.com/feedboard-dev/feedboard/internal/middleware/ratelimiter"
	"github.com/feedboard-dev/feedboard/internal/setup"
)

// New creates and configures the router with all the routes.
// Note: rate limiters attached with Use limit all endpoints in that group
// combined per key.
func New(deps *setup.Dependencies) *chi.Mux {
	r := chi.NewRouter()

	cfg := deps.Config.Public

	r.Use(metricsmw.Middleware)
	r.Use(mw.SecurityHeaders(false))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", "X-Operator-Token"},
		MaxAge:         300,
	}))

	h := deps.Handler

	// Probes and metrics
	r.Get("/health", h.Health)
	r.Get("/ready", h.Ready)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/v1", func(v1 chi.Router) {
		// Public reads, limited by client IP
		v1.Group(func(public chi.Router) {
			public.Use(mw.RateLimit(rl.New(cfg.RateLimitRPS, float64(cfg.RateLimitBurst), time.Hour), mw.GetIPKey))
			public.Get("/boards/{creator}/{board}", h.GetBoard)
			public.Get("/accounts/{account}/balance", h.GetBalance)
		})

		// Mutations need a verified identity and are limited per caller
		v1.Group(func(authed chi.Router) {
			authed.Use(mw.RequireIdentity())
			authed.Use(mw.RateLimit(rl.New(cfg.RateLimitRPS, float64(cfg.RateLimitBurst), time.Hour), mw.GetCallerKey))
			authed.Post("/boards", h.CreateBoard)
			authed.Post("/boards/{creator}/{board}/feedback", h.SubmitFeedback)
			authed.Post("/boards/{creator}/{board}/upvote", h.UpvoteFeedback)
			authed.Post("/boards/{creator}/{board}/downvote", h.DownvoteFeedback)
			authed.Post("/boards/{creator}/{board}/archive", h.ArchiveBoard)
		})

		// Account funding is operator-only
		v1.Group(func(operator chi.Router) {
			operator.Use(mw.RequireOperator(deps.Config.Private.OperatorToken))
			operator.Post("/accounts/{account}/credit", h.CreditAccount)
		})
	})

	return r
}
