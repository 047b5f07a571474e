package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tonefence/relay/internal/config"
	"github.com/tonefence/relay/internal/handler"
	"github.com/tonefence/relay/internal/middleware"
)

func setupRouter(h *handler.Handler, cfg *config.Config) http.Handler {
	r := chi.NewRouter()

	// Provider webhooks are signature-checked against the auth token.
	r.Group(func(r chi.Router) {
		r.Use(middleware.WebhookSignature(cfg.Transport.AuthToken, cfg.Server.PublicURL))
		r.Post("/webhook/sms", h.InboundSMS)
		r.Post("/webhook/status", h.StatusCallback)
	})

	r.Get("/health", h.HealthCheck)
	r.Get("/api/messages", h.GetMessages)

	return r
}
