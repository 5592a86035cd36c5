package allocation

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"avsar/internal/platform/middleware"
	"avsar/internal/transport/http/shared"
	dErrors "avsar/pkg/domain-errors"
)

// Handler exposes the acceptance path: explicit seat reservation and release.
type Handler struct {
	service *Service
	logger  *slog.Logger
}

func NewHandler(service *Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Register mounts the allocation routes.
func (h *Handler) Register(r chi.Router) {
	r.Post("/allocations", h.handleReserve)
	r.Delete("/allocations", h.handleRelease)
}

type allocationRequest struct {
	CandidateID string `json:"candidate_id"`
	IndustryID  string `json:"industry_id"`
}

func (h *Handler) handleReserve(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req allocationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		shared.WriteError(w, dErrors.New(dErrors.CodeInvalidInput, "invalid request body"))
		return
	}

	granted, err := h.service.Reserve(ctx, req.CandidateID, req.IndustryID)
	if err != nil {
		h.logger.WarnContext(ctx, "reservation failed",
			"request_id", middleware.GetRequestID(ctx),
			"industry_id", req.IndustryID,
			"error", err.Error(),
		)
		shared.WriteError(w, err)
		return
	}

	remaining, err := h.service.Remaining(ctx, req.IndustryID)
	if err != nil {
		shared.WriteError(w, err)
		return
	}

	shared.WriteJSON(w, http.StatusOK, map[string]any{
		"granted":             granted,
		"industry_id":         req.IndustryID,
		"candidate_id":        req.CandidateID,
		"available_positions": remaining,
	})
}

func (h *Handler) handleRelease(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req allocationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		shared.WriteError(w, dErrors.New(dErrors.CodeInvalidInput, "invalid request body"))
		return
	}

	if err := h.service.Release(ctx, req.CandidateID, req.IndustryID); err != nil {
		h.logger.WarnContext(ctx, "release failed",
			"request_id", middleware.GetRequestID(ctx),
			"industry_id", req.IndustryID,
			"error", err.Error(),
		)
		shared.WriteError(w, err)
		return
	}

	remaining, err := h.service.Remaining(ctx, req.IndustryID)
	if err != nil {
		shared.WriteError(w, err)
		return
	}

	shared.WriteJSON(w, http.StatusOK, map[string]any{
		"released":            true,
		"industry_id":         req.IndustryID,
		"available_positions": remaining,
	})
}
