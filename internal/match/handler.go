package match

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"avsar/internal/platform/metrics"
	"avsar/internal/platform/middleware"
	"avsar/internal/transport/http/shared"
	dErrors "avsar/pkg/domain-errors"
)

// Handler exposes the match contract consumed by the dashboard.
type Handler struct {
	service *Service
	metrics *metrics.Metrics
	logger  *slog.Logger
}

func NewHandler(service *Service, m *metrics.Metrics, logger *slog.Logger) *Handler {
	return &Handler{service: service, metrics: m, logger: logger}
}

// Register mounts the match routes.
func (h *Handler) Register(r chi.Router) {
	r.Post("/match_internships", h.handleMatch)
}

type matchRequest struct {
	CandidateID string   `json:"candidate_id"`
	IndustryID  string   `json:"industry_id"`
	TopN        *int     `json:"top_n"`
	MinScore    *float64 `json:"min_score_threshold"`
}

// matchScoreBody keeps overall_score in [0,1]; the frontend multiplies by 100
// and buckets into display tiers, so the range is load-bearing.
type matchScoreBody struct {
	OverallScore       float64 `json:"overall_score"`
	SkillsScore        float64 `json:"skills_score"`
	QualificationScore float64 `json:"qualification_score"`
	LocationScore      float64 `json:"location_score"`
	SectorScore        float64 `json:"sector_score"`
}

type matchBody struct {
	CandidateID        string         `json:"candidate_id"`
	CandidateName      string         `json:"candidate_name"`
	IndustryID         string         `json:"industry_id"`
	CompanyName        string         `json:"company_name"`
	InternshipTitle    string         `json:"internship_title"`
	RequiredSkills     []string       `json:"required_skills"`
	AvailablePositions int            `json:"available_positions"`
	MatchScore         matchScoreBody `json:"match_score"`
}

type matchResponse struct {
	Status       string      `json:"status"`
	TotalMatches int         `json:"total_matches"`
	Matches      []matchBody `json:"matches"`
}

func (h *Handler) handleMatch(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	start := time.Now()

	var body matchRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		h.fail(w, r, dErrors.New(dErrors.CodeInvalidInput, "invalid request body"))
		return
	}
	if body.TopN == nil {
		h.fail(w, r, dErrors.New(dErrors.CodeInvalidInput, "top_n is required and must be positive"))
		return
	}
	if body.CandidateID != "" && body.IndustryID != "" {
		h.fail(w, r, dErrors.New(dErrors.CodeInvalidInput, "provide either candidate_id or industry_id, not both"))
		return
	}

	req := Request{
		CandidateID: body.CandidateID,
		IndustryID:  body.IndustryID,
		TopN:        *body.TopN,
	}
	if body.MinScore != nil {
		req.MinScore = *body.MinScore
	}

	var (
		results []Result
		err     error
	)
	if body.IndustryID != "" {
		results, err = h.service.FindCandidates(ctx, req)
	} else {
		results, err = h.service.FindMatches(ctx, req)
	}
	if err != nil {
		h.fail(w, r, err)
		return
	}

	resp := matchResponse{
		Status:       "success",
		TotalMatches: len(results),
		Matches:      make([]matchBody, 0, len(results)),
	}
	for _, res := range results {
		resp.Matches = append(resp.Matches, matchBody{
			CandidateID:        res.Candidate.ID,
			CandidateName:      res.Candidate.Name,
			IndustryID:         res.Posting.ID,
			CompanyName:        res.Posting.CompanyName,
			InternshipTitle:    res.Posting.InternshipTitle,
			RequiredSkills:     res.Posting.RequiredSkills,
			AvailablePositions: res.Remaining,
			MatchScore: matchScoreBody{
				OverallScore:       res.Score.Overall,
				SkillsScore:        res.Score.Skills,
				QualificationScore: res.Score.Qualification,
				LocationScore:      res.Score.Location,
				SectorScore:        res.Score.Sector,
			},
		})
	}

	h.metrics.ObserveMatch(float64(time.Since(start).Microseconds())/1000.0, len(results))
	shared.WriteJSON(w, http.StatusOK, resp)
}

func (h *Handler) fail(w http.ResponseWriter, r *http.Request, err error) {
	ctx := r.Context()
	code := dErrors.CodeOf(err)
	h.metrics.IncMatchError(string(code))
	h.logger.WarnContext(ctx, "match request failed",
		"request_id", middleware.GetRequestID(ctx),
		"code", string(code),
		"error", err.Error(),
	)
	shared.WriteError(w, err)
}
