package match

import (
	"context"
	"errors"
	"runtime"
	"strings"

	"golang.org/x/sync/errgroup"

	"avsar/internal/profile"
	dErrors "avsar/pkg/domain-errors"
	"avsar/pkg/platform/sentinel"
)

// CapacityReader is the read-only slice of the allocator the ranking path
// uses. Ranking never reserves; postings with no seats left are ineligible.
type CapacityReader interface {
	Snapshot(ctx context.Context) (map[string]int, error)
}

// Request carries the match query. Exactly one of CandidateID/IndustryID must
// be set; TopN must be positive; MinScore drops matches below the threshold
// before truncation.
type Request struct {
	CandidateID string
	IndustryID  string
	TopN        int
	MinScore    float64
}

// Service orchestrates extract -> score -> rank and owns the transient
// results. Read-only against the profile store: repeatable and side-effect
// free.
type Service struct {
	candidates profile.CandidateStore
	postings   profile.PostingStore
	capacity   CapacityReader
	scorer     *Scorer
	equity     EquityPolicy
}

func NewService(candidates profile.CandidateStore, postings profile.PostingStore, capacity CapacityReader, scorer *Scorer, equity EquityPolicy) *Service {
	if equity == nil {
		equity = RemoteAccessEquity{}
	}
	return &Service{
		candidates: candidates,
		postings:   postings,
		capacity:   capacity,
		scorer:     scorer,
		equity:     equity,
	}
}

// FindMatches returns the ranked, bounded list of best-fit postings for a
// candidate. Errors are typed: invalid_input for a bad request, not_found for
// an unknown candidate, unavailable when the profile store cannot be read.
// Never a partial list alongside an error.
func (s *Service) FindMatches(ctx context.Context, req Request) ([]Result, error) {
	if err := validateRequest(req, true); err != nil {
		return nil, err
	}

	candidate, err := s.candidates.FindByID(ctx, req.CandidateID)
	if err != nil {
		return nil, translateStoreErr(err, "candidate not found")
	}

	postings, err := s.postings.List(ctx)
	if err != nil {
		return nil, translateStoreErr(err, "")
	}

	remaining, err := s.capacity.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	// Zero remaining capacity means ineligible, not low priority.
	eligible := postings[:0:0]
	for _, p := range postings {
		if remaining[p.ID] > 0 {
			eligible = append(eligible, p)
		}
	}

	results := make([]Result, len(eligible))
	if err := s.scorePairs(ctx, len(eligible), func(i int) {
		p := eligible[i]
		results[i] = Result{
			Candidate: candidate,
			Posting:   p,
			Score:     s.scorer.Score(Extract(candidate, p)),
			Remaining: remaining[p.ID],
		}
	}); err != nil {
		return nil, err
	}

	results = filterMinScore(results, req.MinScore)
	return rankResults(results, s.equity, req.TopN), nil
}

// FindCandidates is the reverse query: ranked candidates for one posting.
// Candidates are not capacity-bound, so there is no eligibility filter.
func (s *Service) FindCandidates(ctx context.Context, req Request) ([]Result, error) {
	if err := validateRequest(req, false); err != nil {
		return nil, err
	}

	posting, err := s.postings.FindByID(ctx, req.IndustryID)
	if err != nil {
		return nil, translateStoreErr(err, "industry not found")
	}

	candidates, err := s.candidates.List(ctx)
	if err != nil {
		return nil, translateStoreErr(err, "")
	}

	remaining, err := s.capacity.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	results := make([]Result, len(candidates))
	if err := s.scorePairs(ctx, len(candidates), func(i int) {
		c := candidates[i]
		results[i] = Result{
			Candidate: c,
			Posting:   posting,
			Score:     s.scorer.Score(Extract(c, posting)),
			Remaining: remaining[posting.ID],
		}
	}); err != nil {
		return nil, err
	}

	results = filterMinScore(results, req.MinScore)
	return rankCandidates(results, req.TopN), nil
}

// scorePairs runs the per-pair work in parallel. Each index writes its own
// slot, so no shared mutable state; cancellation abandons remaining work
// without corrupting anything.
func (s *Service) scorePairs(ctx context.Context, n int, scoreOne func(i int)) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i := range n {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			scoreOne(i)
			return nil
		})
	}
	return g.Wait()
}

func filterMinScore(results []Result, minScore float64) []Result {
	if minScore <= 0 {
		return results
	}
	kept := results[:0]
	for _, r := range results {
		if r.Score.Overall >= minScore {
			kept = append(kept, r)
		}
	}
	return kept
}

func validateRequest(req Request, byCandidate bool) error {
	if req.TopN <= 0 {
		return dErrors.New(dErrors.CodeInvalidInput, "top_n must be a positive integer")
	}
	if req.MinScore < 0 || req.MinScore > 1 {
		return dErrors.New(dErrors.CodeInvalidInput, "min_score_threshold must be in [0,1]")
	}
	if byCandidate && strings.TrimSpace(req.CandidateID) == "" {
		return dErrors.New(dErrors.CodeInvalidInput, "candidate_id is required")
	}
	if !byCandidate && strings.TrimSpace(req.IndustryID) == "" {
		return dErrors.New(dErrors.CodeInvalidInput, "industry_id is required")
	}
	return nil
}

func translateStoreErr(err error, notFoundMsg string) error {
	if errors.Is(err, sentinel.ErrNotFound) && notFoundMsg != "" {
		return dErrors.Wrap(err, dErrors.CodeNotFound, notFoundMsg)
	}
	return dErrors.Wrap(err, dErrors.CodeUnavailable, "profile store unavailable")
}
