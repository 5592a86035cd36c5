package httptransport

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"avsar/internal/platform/middleware"
	"avsar/internal/profile"
	"avsar/internal/transport/http/shared"
)

// Registrar is implemented by every domain handler that mounts routes.
type Registrar interface {
	Register(r chi.Router)
}

// NewRouter wires all public endpoints behind the shared middleware chain.
// Handlers stay thin; domain logic lives in the services they delegate to.
func NewRouter(logger *slog.Logger, candidates profile.CandidateStore, postings profile.PostingStore, handlers ...Registrar) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Timeout(30 * time.Second))

	r.Get("/healthz", handleHealth(candidates, postings))
	r.Handle("/metrics", promhttp.Handler())

	r.Group(func(api chi.Router) {
		api.Use(middleware.ContentTypeJSON)
		for _, h := range handlers {
			if h != nil {
				h.Register(api)
			}
		}
	})

	return r
}

func handleHealth(candidates profile.CandidateStore, postings profile.PostingStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		candidateCount, err := candidates.Count(r.Context())
		if err != nil {
			shared.WriteJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "degraded"})
			return
		}
		postingCount, err := postings.Count(r.Context())
		if err != nil {
			shared.WriteJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "degraded"})
			return
		}
		shared.WriteJSON(w, http.StatusOK, map[string]any{
			"status":           "active",
			"candidates_count": candidateCount,
			"industries_count": postingCount,
			"timestamp":        time.Now().UTC().Format(time.RFC3339),
		})
	}
}
