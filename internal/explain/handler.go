package explain

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"avsar/internal/platform/middleware"
	"avsar/internal/transport/http/shared"
	dErrors "avsar/pkg/domain-errors"
)

// Handler exposes the explanation endpoint.
type Handler struct {
	service *Service
	logger  *slog.Logger
}

func NewHandler(service *Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Register mounts the explain route.
func (h *Handler) Register(r chi.Router) {
	r.Post("/explain_match", h.handleExplain)
}

type explainRequest struct {
	CandidateID string `json:"candidate_id"`
	IndustryID  string `json:"industry_id"`
}

func (h *Handler) handleExplain(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req explainRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		shared.WriteError(w, dErrors.New(dErrors.CodeInvalidInput, "invalid request body"))
		return
	}
	if req.CandidateID == "" || req.IndustryID == "" {
		shared.WriteError(w, dErrors.New(dErrors.CodeInvalidInput, "candidate_id and industry_id are required"))
		return
	}

	text, err := h.service.Explain(ctx, req.CandidateID, req.IndustryID)
	if err != nil {
		h.logger.WarnContext(ctx, "explanation failed",
			"request_id", middleware.GetRequestID(ctx),
			"candidate_id", req.CandidateID,
			"industry_id", req.IndustryID,
			"error", err.Error(),
		)
		shared.WriteError(w, err)
		return
	}

	shared.WriteJSON(w, http.StatusOK, map[string]any{
		"status":      "success",
		"explanation": text,
	})
}
