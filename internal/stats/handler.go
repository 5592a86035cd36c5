package stats

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"avsar/internal/transport/http/shared"
)

// Handler serves the statistics panel.
type Handler struct {
	service *Service
	logger  *slog.Logger
}

func NewHandler(service *Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Register mounts the stats route.
func (h *Handler) Register(r chi.Router) {
	r.Get("/stats", h.handleStats)
}

func (h *Handler) handleStats(w http.ResponseWriter, r *http.Request) {
	snap, err := h.service.Snapshot(r.Context())
	if err != nil {
		h.logger.WarnContext(r.Context(), "stats read failed", "error", err.Error())
		shared.WriteError(w, err)
		return
	}

	shared.WriteJSON(w, http.StatusOK, map[string]any{
		"status": "success",
		"system_stats": map[string]any{
			"candidates": map[string]any{
				"total":                 snap.Candidates.Total,
				"category_distribution": snap.Candidates.CategoryDistribution,
				"district_distribution": snap.Candidates.DistrictDistribution,
			},
			"industries": map[string]any{
				"total":               snap.Industries.Total,
				"sector_distribution": snap.Industries.SectorDistribution,
			},
			"internships": map[string]any{
				"total_capacity":      snap.Internships.TotalCapacity,
				"filled_positions":    snap.Internships.FilledPositions,
				"available_positions": snap.Internships.AvailablePositions,
				"utilization_rate":    snap.Internships.UtilizationRate,
			},
		},
	})
}
