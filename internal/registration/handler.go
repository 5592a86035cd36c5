package registration

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"avsar/internal/platform/middleware"
	"avsar/internal/profile"
	"avsar/internal/transport/http/shared"
	dErrors "avsar/pkg/domain-errors"
)

// Handler is the thin HTTP layer over registration and the pass-through
// profile reads the dashboard uses.
type Handler struct {
	service *Service
	logger  *slog.Logger
}

func NewHandler(service *Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Register mounts the registration and profile read routes.
func (h *Handler) Register(r chi.Router) {
	r.Post("/register_candidate", h.handleRegisterCandidate)
	r.Post("/register_industry", h.handleRegisterIndustry)
	r.Get("/candidates", h.handleListCandidates)
	r.Get("/candidates/{id}", h.handleGetCandidate)
	r.Get("/industries", h.handleListIndustries)
	r.Get("/industries/{id}", h.handleGetIndustry)
}

type candidateBody struct {
	Name               string   `json:"name"`
	Email              string   `json:"email"`
	Phone              string   `json:"phone"`
	Skills             []string `json:"skills"`
	Qualifications     []string `json:"qualifications"`
	LocationPreference []string `json:"location_preference"`
	CurrentLocation    string   `json:"current_location"`
	Category           string   `json:"category"`
	DistrictType       string   `json:"district_type"`
	PastParticipation  bool     `json:"past_participation"`
	ExperienceMonths   int      `json:"experience_months"`
	PreferredSectors   []string `json:"preferred_sectors"`
	Languages          []string `json:"languages"`
}

type industryBody struct {
	CompanyName             string   `json:"company_name"`
	ContactEmail            string   `json:"contact_email"`
	ContactPhone            string   `json:"contact_phone"`
	InternshipTitle         string   `json:"internship_title"`
	Description             string   `json:"internship_description"`
	RequiredSkills          []string `json:"required_skills"`
	PreferredQualifications []string `json:"preferred_qualifications"`
	Location                string   `json:"location"`
	Sector                  string   `json:"sector"`
	InternshipCapacity      int      `json:"internship_capacity"`
	DurationMonths          int      `json:"duration_months"`
	StipendRange            string   `json:"stipend_range"`
	RemoteAllowed           bool     `json:"remote_allowed"`
}

func (h *Handler) handleRegisterCandidate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var body candidateBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		shared.WriteError(w, dErrors.New(dErrors.CodeInvalidInput, "invalid request body"))
		return
	}

	c, err := h.service.RegisterCandidate(ctx, CandidateInput{
		Name:               body.Name,
		Email:              body.Email,
		Phone:              body.Phone,
		Skills:             body.Skills,
		Qualifications:     body.Qualifications,
		LocationPreference: body.LocationPreference,
		CurrentLocation:    body.CurrentLocation,
		Category:           body.Category,
		DistrictType:       body.DistrictType,
		PastParticipation:  body.PastParticipation,
		ExperienceMonths:   body.ExperienceMonths,
		PreferredSectors:   body.PreferredSectors,
		Languages:          body.Languages,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "candidate registration rejected",
			"request_id", middleware.GetRequestID(ctx),
			"error", err.Error(),
		)
		shared.WriteError(w, err)
		return
	}

	shared.WriteJSON(w, http.StatusCreated, map[string]any{
		"status":       "success",
		"message":      "Candidate registered successfully",
		"candidate_id": c.ID,
	})
}

func (h *Handler) handleRegisterIndustry(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var body industryBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		shared.WriteError(w, dErrors.New(dErrors.CodeInvalidInput, "invalid request body"))
		return
	}

	p, err := h.service.RegisterIndustry(ctx, IndustryInput{
		CompanyName:             body.CompanyName,
		ContactEmail:            body.ContactEmail,
		ContactPhone:            body.ContactPhone,
		InternshipTitle:         body.InternshipTitle,
		Description:             body.Description,
		RequiredSkills:          body.RequiredSkills,
		PreferredQualifications: body.PreferredQualifications,
		Location:                body.Location,
		Sector:                  body.Sector,
		Capacity:                body.InternshipCapacity,
		DurationMonths:          body.DurationMonths,
		StipendRange:            body.StipendRange,
		RemoteAllowed:           body.RemoteAllowed,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "industry registration rejected",
			"request_id", middleware.GetRequestID(ctx),
			"error", err.Error(),
		)
		shared.WriteError(w, err)
		return
	}

	shared.WriteJSON(w, http.StatusCreated, map[string]any{
		"status":      "success",
		"message":     "Industry registered successfully",
		"industry_id": p.ID,
	})
}

func (h *Handler) handleListCandidates(w http.ResponseWriter, r *http.Request) {
	candidates, err := h.service.ListCandidates(r.Context())
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	out := make([]map[string]any, 0, len(candidates))
	for _, c := range candidates {
		out = append(out, candidateJSON(c))
	}
	shared.WriteJSON(w, http.StatusOK, map[string]any{
		"status":     "success",
		"count":      len(out),
		"candidates": out,
	})
}

func (h *Handler) handleGetCandidate(w http.ResponseWriter, r *http.Request) {
	c, err := h.service.GetCandidate(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, map[string]any{
		"status":    "success",
		"candidate": candidateJSON(c),
	})
}

func (h *Handler) handleListIndustries(w http.ResponseWriter, r *http.Request) {
	industries, err := h.service.ListIndustries(r.Context())
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	out := make([]map[string]any, 0, len(industries))
	for _, p := range industries {
		out = append(out, industryJSON(p))
	}
	shared.WriteJSON(w, http.StatusOK, map[string]any{
		"status":     "success",
		"count":      len(out),
		"industries": out,
	})
}

func (h *Handler) handleGetIndustry(w http.ResponseWriter, r *http.Request) {
	p, err := h.service.GetIndustry(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, map[string]any{
		"status":   "success",
		"industry": industryJSON(p),
	})
}

func candidateJSON(c *profile.Candidate) map[string]any {
	return map[string]any{
		"id":                  c.ID,
		"name":                c.Name,
		"email":               c.Email,
		"phone":               c.Phone,
		"skills":              c.Skills,
		"qualifications":      c.Qualifications,
		"location_preference": c.LocationPreference,
		"current_location":    c.CurrentLocation,
		"category":            string(c.Category),
		"district_type":       string(c.DistrictType),
		"past_participation":  c.PastParticipation,
		"experience_months":   c.ExperienceMonths,
		"preferred_sectors":   c.PreferredSectors,
		"languages":           c.Languages,
		"registration_date":   c.RegisteredAt,
	}
}

func industryJSON(p *profile.Posting) map[string]any {
	return map[string]any{
		"id":                       p.ID,
		"company_name":             p.CompanyName,
		"contact_email":            p.ContactEmail,
		"contact_phone":            p.ContactPhone,
		"internship_title":         p.InternshipTitle,
		"internship_description":   p.Description,
		"required_skills":          p.RequiredSkills,
		"preferred_qualifications": p.PreferredQualifications,
		"location":                 p.Location,
		"sector":                   p.Sector,
		"internship_capacity":      p.Capacity,
		"duration_months":          p.DurationMonths,
		"stipend_range":            p.StipendRange,
		"remote_allowed":           p.RemoteAllowed,
		"registration_date":        p.RegisteredAt,
	}
}
