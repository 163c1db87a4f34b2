// Package middleware holds the HTTP middleware of the REST API.
package middleware

import (
	"log/slog"
	"net/http"

	"github.com/heartmarshall/linglual-backend/internal/config"
)

// Middleware is a function that wraps an http.Handler.
type Middleware func(http.Handler) http.Handler

// Chain combines multiple middleware into a single Middleware.
// Chain(mw1, mw2)(handler) results in mw1(mw2(handler)), so mw1 executes
// first (outermost).
func Chain(mws ...Middleware) Middleware {
	return func(final http.Handler) http.Handler {
		for i := len(mws) - 1; i >= 0; i-- {
			final = mws[i](final)
		}
		return final
	}
}

// Standard is the stack every API request passes through: request ID first
// so later layers log it, then access log, panic recovery, metrics and CORS.
func Standard(logger *slog.Logger, cors config.CORSConfig) Middleware {
	return Chain(
		RequestID(),
		Logger(logger),
		Recovery(logger),
		Metrics(),
		CORS(cors),
	)
}
