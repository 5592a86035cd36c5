package stats

import (
	"context"
	"math"

	"avsar/internal/profile"
	dErrors "avsar/pkg/domain-errors"
)

// CapacityReader reads the live remaining-capacity counters so
// available_positions reflects allocator state, not static capacity.
type CapacityReader interface {
	Snapshot(ctx context.Context) (map[string]int, error)
}

// Snapshot is the aggregate view served by /stats.
type Snapshot struct {
	Candidates  CandidateStats
	Industries  IndustryStats
	Internships InternshipStats
}

type CandidateStats struct {
	Total                int
	CategoryDistribution map[string]int
	DistrictDistribution map[string]int
}

type IndustryStats struct {
	Total              int
	SectorDistribution map[string]int
}

type InternshipStats struct {
	TotalCapacity      int
	FilledPositions    int
	AvailablePositions int
	UtilizationRate    float64
}

// Service aggregates counts over the profile store and the allocator. Pure
// counting; no engine logic.
type Service struct {
	candidates profile.CandidateStore
	postings   profile.PostingStore
	capacity   CapacityReader
}

func NewService(candidates profile.CandidateStore, postings profile.PostingStore, capacity CapacityReader) *Service {
	return &Service{candidates: candidates, postings: postings, capacity: capacity}
}

func (s *Service) Snapshot(ctx context.Context) (*Snapshot, error) {
	candidates, err := s.candidates.List(ctx)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeUnavailable, "profile store unavailable")
	}
	postings, err := s.postings.List(ctx)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeUnavailable, "profile store unavailable")
	}
	remaining, err := s.capacity.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	out := &Snapshot{
		Candidates: CandidateStats{
			Total:                len(candidates),
			CategoryDistribution: make(map[string]int),
			DistrictDistribution: make(map[string]int),
		},
		Industries: IndustryStats{
			Total:              len(postings),
			SectorDistribution: make(map[string]int),
		},
	}

	for _, c := range candidates {
		out.Candidates.CategoryDistribution[string(c.Category)]++
		out.Candidates.DistrictDistribution[string(c.DistrictType)]++
	}

	for _, p := range postings {
		out.Industries.SectorDistribution[p.Sector]++
		out.Internships.TotalCapacity += p.Capacity
		out.Internships.AvailablePositions += remaining[p.ID]
	}
	out.Internships.FilledPositions = out.Internships.TotalCapacity - out.Internships.AvailablePositions

	if out.Internships.TotalCapacity > 0 {
		rate := float64(out.Internships.FilledPositions) / float64(out.Internships.TotalCapacity) * 100
		out.Internships.UtilizationRate = math.Round(rate*100) / 100
	}
	return out, nil
}
