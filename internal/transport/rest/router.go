package rest

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/heartmarshall/linglual-backend/internal/config"
	"github.com/heartmarshall/linglual-backend/internal/transport/middleware"
)

// Handlers groups the HTTP handlers mounted by NewRouter.
type Handlers struct {
	Health     *HealthHandler
	Records    *RecordHandler
	Vocabulary *VocabularyHandler
	Similar    *SimilarHandler
}

// NewRouter builds the HTTP API: probes and metrics at the root, the JSON API
// under /api. Every route passes through the standard middleware stack.
func NewRouter(logger *slog.Logger, cors config.CORSConfig, gatherer prometheus.Gatherer, h Handlers) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Standard(logger, cors))

	r.Get("/live", h.Health.Live)
	r.Get("/ready", h.Health.Ready)
	r.Get("/health", h.Health.Health)
	r.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))

	r.Route("/api", func(r chi.Router) {
		r.Route("/records", func(r chi.Router) {
			r.Post("/", h.Records.Create)
			r.Get("/", h.Records.List)

			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", h.Records.Get)
				r.Put("/", h.Records.Update)
				r.Delete("/", h.Records.Delete)

				r.Get("/similar", h.Similar.List)
				r.Post("/similar", h.Similar.Search)
				r.Post("/similar/save", h.Similar.Save)
				r.Delete("/similar", h.Similar.Clear)
			})
		})

		r.Post("/hints", h.Records.Hints)

		r.Get("/vocabulary", h.Vocabulary.List)
		r.Post("/vocabulary", h.Vocabulary.Add)
		r.Delete("/vocabulary/{id}", h.Vocabulary.Delete)

		r.Get("/words/{word}", h.Vocabulary.Lookup)
	})

	return r
}
