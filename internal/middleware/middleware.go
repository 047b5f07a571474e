// Package middleware provides the HTTP middleware stack: request IDs,
// logging, panic recovery, CORS, per-IP rate limiting, request timeouts,
// and webhook signature verification.
package middleware

import (
	"net/http"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// Config holds middleware configuration.
type Config struct {
	Logger *zap.Logger

	CORS *CORSConfig

	RateLimit      rate.Limit
	RateLimitBurst int
	// RateLimitExempt lists path prefixes that bypass rate limiting,
	// such as the provider webhook endpoints.
	RateLimitExempt []string

	RequestTimeout time.Duration
}

// Chain assembles the configured middleware around a handler. The first
// entry in the list is the outermost wrapper.
func Chain(config *Config) func(http.Handler) http.Handler {
	rateLimiter := NewRateLimiter(config.RateLimit, config.RateLimitBurst, config.RateLimitExempt...)

	stack := []func(http.Handler) http.Handler{
		Logger(config.Logger),
		RequestID,
		Recovery(config.Logger),
	}
	if config.CORS != nil {
		stack = append(stack, CORS(config.CORS))
	}
	stack = append(stack,
		rateLimiter.Middleware(),
		Timeout(config.RequestTimeout),
	)

	return func(handler http.Handler) http.Handler {
		h := handler
		for i := len(stack) - 1; i >= 0; i-- {
			h = stack[i](h)
		}
		return h
	}
}
