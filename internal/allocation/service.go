package allocation

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"avsar/internal/audit"
	"avsar/internal/platform/metrics"
	"avsar/internal/profile"
	dErrors "avsar/pkg/domain-errors"
	"avsar/pkg/platform/sentinel"
)

// CandidateChecker is the slice of the profile store the allocator needs:
// reservation is only accepted for a registered candidate.
type CandidateChecker interface {
	FindByID(ctx context.Context, id string) (*profile.Candidate, error)
}

// Service serializes all remaining-capacity mutation. Ranking reads counters
// through Snapshot/Remaining; only an explicit acceptance reserves a seat.
type Service struct {
	store      Store
	candidates CandidateChecker
	publisher  *audit.Publisher
	metrics    *metrics.Metrics
	logger     *slog.Logger
}

func NewService(store Store, candidates CandidateChecker, publisher *audit.Publisher, m *metrics.Metrics, logger *slog.Logger) *Service {
	return &Service{
		store:      store,
		candidates: candidates,
		publisher:  publisher,
		metrics:    m,
		logger:     logger,
	}
}

// Reserve atomically claims one seat on the posting for the candidate.
// A full posting is a normal denied outcome, not an error.
func (s *Service) Reserve(ctx context.Context, candidateID, industryID string) (bool, error) {
	candidateID = strings.TrimSpace(candidateID)
	industryID = strings.TrimSpace(industryID)
	if candidateID == "" || industryID == "" {
		return false, dErrors.New(dErrors.CodeInvalidInput, "candidate_id and industry_id are required")
	}
	if _, err := s.candidates.FindByID(ctx, candidateID); err != nil {
		return false, translateLookupErr(err, "candidate not found")
	}

	granted, err := s.store.TryReserve(ctx, industryID)
	if err != nil {
		return false, translateLookupErr(err, "industry not found")
	}

	s.metrics.IncReservation(granted)
	action := audit.ActionAllocationReserved
	if !granted {
		action = audit.ActionAllocationDenied
	}
	if err := s.publisher.Emit(ctx, audit.Event{
		Action:      action,
		CandidateID: candidateID,
		IndustryID:  industryID,
	}); err != nil {
		s.logger.WarnContext(ctx, "audit emit failed", "action", action, "error", err)
	}
	return granted, nil
}

// Release returns a previously reserved seat. Releasing beyond capacity means
// bookkeeping drifted somewhere upstream; it is rejected and logged loudly.
func (s *Service) Release(ctx context.Context, candidateID, industryID string) error {
	industryID = strings.TrimSpace(industryID)
	if industryID == "" {
		return dErrors.New(dErrors.CodeInvalidInput, "industry_id is required")
	}

	if err := s.store.Release(ctx, industryID); err != nil {
		if errors.Is(err, ErrReleaseOverflow) {
			s.logger.ErrorContext(ctx, "capacity release overflow",
				"industry_id", industryID,
				"candidate_id", candidateID,
			)
			return dErrors.Wrap(err, dErrors.CodeReleaseOverflow, "release exceeds declared capacity")
		}
		return translateLookupErr(err, "industry not found")
	}

	s.metrics.IncRelease()
	if err := s.publisher.Emit(ctx, audit.Event{
		Action:      audit.ActionAllocationReleased,
		CandidateID: candidateID,
		IndustryID:  industryID,
	}); err != nil {
		s.logger.WarnContext(ctx, "audit emit failed", "action", audit.ActionAllocationReleased, "error", err)
	}
	return nil
}

// Remaining exposes the live counter for one posting.
func (s *Service) Remaining(ctx context.Context, industryID string) (int, error) {
	n, err := s.store.Remaining(ctx, industryID)
	if err != nil {
		return 0, translateLookupErr(err, "industry not found")
	}
	return n, nil
}

// Snapshot exposes all live counters; the ranking and stats paths read this.
func (s *Service) Snapshot(ctx context.Context) (map[string]int, error) {
	snap, err := s.store.Snapshot(ctx)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeUnavailable, "capacity store unavailable")
	}
	return snap, nil
}

// Init seeds counters for a newly registered posting.
func (s *Service) Init(ctx context.Context, industryID string, capacity int) error {
	if err := s.store.Init(ctx, industryID, capacity); err != nil {
		return dErrors.Wrap(err, dErrors.CodeUnavailable, "capacity store unavailable")
	}
	return nil
}

func translateLookupErr(err error, notFoundMsg string) error {
	if errors.Is(err, sentinel.ErrNotFound) {
		return dErrors.Wrap(err, dErrors.CodeNotFound, notFoundMsg)
	}
	if errors.Is(err, sentinel.ErrUnavailable) {
		return dErrors.Wrap(err, dErrors.CodeUnavailable, "store unavailable")
	}
	var de *dErrors.Error
	if errors.As(err, &de) {
		return err
	}
	return dErrors.Wrap(err, dErrors.CodeInternal, "allocation failed")
}
