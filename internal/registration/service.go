package registration

import (
	"context"
	"errors"
	"log/slog"
	"regexp"
	"strings"

	"github.com/google/uuid"

	"avsar/internal/audit"
	"avsar/internal/platform/metrics"
	"avsar/internal/profile"
	dErrors "avsar/pkg/domain-errors"
	"avsar/pkg/platform/sentinel"
	platformstrings "avsar/pkg/platform/strings"
	"avsar/pkg/requestcontext"
)

var emailPattern = regexp.MustCompile(`^\S+@\S+\.\S+$`)

// CapacitySeeder is the slice of the allocator registration needs: seeding
// the remaining-capacity counter for a new posting. Registration never
// reserves or releases.
type CapacitySeeder interface {
	Init(ctx context.Context, industryID string, capacity int) error
}

// CandidateInput is the registration payload for a candidate.
type CandidateInput struct {
	Name               string
	Email              string
	Phone              string
	Skills             []string
	Qualifications     []string
	LocationPreference []string
	CurrentLocation    string
	Category           string
	DistrictType       string
	PastParticipation  bool
	ExperienceMonths   int
	PreferredSectors   []string
	Languages          []string
}

// IndustryInput is the registration payload for an internship provider.
type IndustryInput struct {
	CompanyName             string
	ContactEmail            string
	ContactPhone            string
	InternshipTitle         string
	Description             string
	RequiredSkills          []string
	PreferredQualifications []string
	Location                string
	Sector                  string
	Capacity                int
	DurationMonths          int
	StipendRange            string
	RemoteAllowed           bool
}

// Service owns the write path from registration: validation, id assignment,
// store writes, capacity seeding, audit. Profiles change only through
// re-registration; the matching engine never writes here.
type Service struct {
	candidates profile.CandidateStore
	postings   profile.PostingStore
	capacity   CapacitySeeder
	publisher  *audit.Publisher
	metrics    *metrics.Metrics
	logger     *slog.Logger
}

func NewService(candidates profile.CandidateStore, postings profile.PostingStore, capacity CapacitySeeder, publisher *audit.Publisher, m *metrics.Metrics, logger *slog.Logger) *Service {
	return &Service{
		candidates: candidates,
		postings:   postings,
		capacity:   capacity,
		publisher:  publisher,
		metrics:    m,
		logger:     logger,
	}
}

// RegisterCandidate validates and persists a new candidate, returning it with
// its assigned id.
func (s *Service) RegisterCandidate(ctx context.Context, in CandidateInput) (*profile.Candidate, error) {
	in.Skills = platformstrings.DedupeAndTrim(in.Skills)
	in.Qualifications = platformstrings.DedupeAndTrim(in.Qualifications)
	in.LocationPreference = platformstrings.DedupeAndTrim(in.LocationPreference)
	in.PreferredSectors = platformstrings.DedupeAndTrim(in.PreferredSectors)
	in.Languages = platformstrings.DedupeAndTrim(in.Languages)

	if err := validateCandidate(in); err != nil {
		return nil, err
	}

	c := &profile.Candidate{
		ID:                 uuid.NewString(),
		Name:               strings.TrimSpace(in.Name),
		Email:              strings.TrimSpace(in.Email),
		Phone:              strings.TrimSpace(in.Phone),
		Skills:             in.Skills,
		Qualifications:     in.Qualifications,
		LocationPreference: in.LocationPreference,
		CurrentLocation:    strings.TrimSpace(in.CurrentLocation),
		Category:           profile.Category(in.Category),
		DistrictType:       profile.DistrictType(in.DistrictType),
		PastParticipation:  in.PastParticipation,
		ExperienceMonths:   in.ExperienceMonths,
		PreferredSectors:   in.PreferredSectors,
		Languages:          in.Languages,
		RegisteredAt:       requestcontext.Now(ctx),
	}

	if err := s.candidates.Create(ctx, c); err != nil {
		return nil, translateWriteErr(err)
	}

	if s.metrics != nil {
		s.metrics.CandidatesRegistered.Inc()
	}
	s.emit(ctx, audit.Event{Action: audit.ActionCandidateRegistered, CandidateID: c.ID})
	s.logger.InfoContext(ctx, "candidate registered", "candidate_id", c.ID)
	return c, nil
}

// RegisterIndustry validates and persists a new posting, seeding its capacity
// counter so it is immediately eligible for matching.
func (s *Service) RegisterIndustry(ctx context.Context, in IndustryInput) (*profile.Posting, error) {
	in.RequiredSkills = platformstrings.DedupeAndTrim(in.RequiredSkills)
	in.PreferredQualifications = platformstrings.DedupeAndTrim(in.PreferredQualifications)

	if err := validateIndustry(in); err != nil {
		return nil, err
	}

	p := &profile.Posting{
		ID:                      uuid.NewString(),
		CompanyName:             strings.TrimSpace(in.CompanyName),
		ContactEmail:            strings.TrimSpace(in.ContactEmail),
		ContactPhone:            strings.TrimSpace(in.ContactPhone),
		InternshipTitle:         strings.TrimSpace(in.InternshipTitle),
		Description:             in.Description,
		RequiredSkills:          in.RequiredSkills,
		PreferredQualifications: in.PreferredQualifications,
		Location:                strings.TrimSpace(in.Location),
		Sector:                  strings.TrimSpace(in.Sector),
		Capacity:                in.Capacity,
		DurationMonths:          in.DurationMonths,
		StipendRange:            in.StipendRange,
		RemoteAllowed:           in.RemoteAllowed,
		RegisteredAt:            requestcontext.Now(ctx),
	}

	if err := s.postings.Create(ctx, p); err != nil {
		return nil, translateWriteErr(err)
	}
	if err := s.capacity.Init(ctx, p.ID, p.Capacity); err != nil {
		return nil, err
	}

	if s.metrics != nil {
		s.metrics.IndustriesRegistered.Inc()
	}
	s.emit(ctx, audit.Event{Action: audit.ActionIndustryRegistered, IndustryID: p.ID})
	s.logger.InfoContext(ctx, "industry registered", "industry_id", p.ID, "capacity", p.Capacity)
	return p, nil
}

// GetCandidate fetches one candidate by id.
func (s *Service) GetCandidate(ctx context.Context, id string) (*profile.Candidate, error) {
	c, err := s.candidates.FindByID(ctx, id)
	if err != nil {
		return nil, translateReadErr(err, "candidate not found")
	}
	return c, nil
}

// ListCandidates returns all registered candidates.
func (s *Service) ListCandidates(ctx context.Context) ([]*profile.Candidate, error) {
	cs, err := s.candidates.List(ctx)
	if err != nil {
		return nil, translateReadErr(err, "")
	}
	return cs, nil
}

// GetIndustry fetches one posting by id.
func (s *Service) GetIndustry(ctx context.Context, id string) (*profile.Posting, error) {
	p, err := s.postings.FindByID(ctx, id)
	if err != nil {
		return nil, translateReadErr(err, "industry not found")
	}
	return p, nil
}

// ListIndustries returns all registered postings.
func (s *Service) ListIndustries(ctx context.Context) ([]*profile.Posting, error) {
	ps, err := s.postings.List(ctx)
	if err != nil {
		return nil, translateReadErr(err, "")
	}
	return ps, nil
}

func (s *Service) emit(ctx context.Context, event audit.Event) {
	if err := s.publisher.Emit(ctx, event); err != nil {
		s.logger.WarnContext(ctx, "audit emit failed", "action", event.Action, "error", err)
	}
}

func validateCandidate(in CandidateInput) error {
	switch {
	case strings.TrimSpace(in.Name) == "":
		return dErrors.New(dErrors.CodeInvalidInput, "name is required")
	case !emailPattern.MatchString(strings.TrimSpace(in.Email)):
		return dErrors.New(dErrors.CodeInvalidInput, "email is invalid")
	case len(in.Skills) == 0:
		return dErrors.New(dErrors.CodeInvalidInput, "skills must not be empty")
	case len(in.Qualifications) == 0:
		return dErrors.New(dErrors.CodeInvalidInput, "qualifications must not be empty")
	case len(in.LocationPreference) == 0:
		return dErrors.New(dErrors.CodeInvalidInput, "location_preference must not be empty")
	case !profile.ValidCategory(profile.Category(in.Category)):
		return dErrors.New(dErrors.CodeInvalidInput, "category must be one of General, OBC, SC, ST")
	case !profile.ValidDistrictType(profile.DistrictType(in.DistrictType)):
		return dErrors.New(dErrors.CodeInvalidInput, "district_type must be one of Urban, Rural, Aspirational")
	case in.ExperienceMonths < 0:
		return dErrors.New(dErrors.CodeInvalidInput, "experience_months must be non-negative")
	}
	return nil
}

func validateIndustry(in IndustryInput) error {
	switch {
	case strings.TrimSpace(in.CompanyName) == "":
		return dErrors.New(dErrors.CodeInvalidInput, "company_name is required")
	case strings.TrimSpace(in.InternshipTitle) == "":
		return dErrors.New(dErrors.CodeInvalidInput, "internship_title is required")
	case len(in.RequiredSkills) == 0:
		return dErrors.New(dErrors.CodeInvalidInput, "required_skills must not be empty")
	case in.Capacity <= 0:
		return dErrors.New(dErrors.CodeInvalidInput, "internship_capacity must be a positive integer")
	}
	return nil
}

func translateWriteErr(err error) error {
	if errors.Is(err, sentinel.ErrConflict) {
		return dErrors.Wrap(err, dErrors.CodeConflict, "already registered")
	}
	return dErrors.Wrap(err, dErrors.CodeUnavailable, "profile store unavailable")
}

func translateReadErr(err error, notFoundMsg string) error {
	if errors.Is(err, sentinel.ErrNotFound) && notFoundMsg != "" {
		return dErrors.Wrap(err, dErrors.CodeNotFound, notFoundMsg)
	}
	return dErrors.Wrap(err, dErrors.CodeUnavailable, "profile store unavailable")
}
