package http

import (
	"net/http"

	"go.uber.org/zap"
)

// NewRouter registers the calculator endpoints behind the rate limiter.
func NewRouter(handler *CalculatorHandler, limiter *RateLimiter, logger *zap.Logger) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	limited := func(h http.HandlerFunc) http.Handler {
		return RateLimitMiddleware(limiter, logger, h)
	}

	mux := http.NewServeMux()
	mux.Handle("/calculate/{mode}", limited(handler.Calculate))
	mux.Handle("/calculate/emi/schedule", limited(handler.Schedule))
	mux.Handle("/calculators", limited(handler.ListModes))
	return mux
}
