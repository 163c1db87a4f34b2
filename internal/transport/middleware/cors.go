package middleware

import (
	"strings"

	"github.com/go-chi/cors"

	"github.com/heartmarshall/linglual-backend/internal/config"
)

// CORS returns middleware that handles Cross-Origin Resource Sharing for the
// configured origins, methods and headers, answering preflight requests.
func CORS(cfg config.CORSConfig) Middleware {
	return cors.Handler(cors.Options{
		AllowedOrigins:   splitList(cfg.AllowedOrigins, "*"),
		AllowedMethods:   splitList(cfg.AllowedMethods, "GET"),
		AllowedHeaders:   splitList(cfg.AllowedHeaders, "Content-Type"),
		ExposedHeaders:   []string{RequestIDHeader},
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           cfg.MaxAge,
	})
}

// splitList splits a comma-separated list, trimming blanks. An empty list
// yields fallback.
func splitList(s, fallback string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return []string{fallback}
	}
	return out
}
