package match

import (
	"sort"

	"avsar/internal/profile"
)

// Result is the scored, ranked association between one candidate and one
// posting. Computed on demand, never persisted.
type Result struct {
	Candidate *profile.Candidate
	Posting   *profile.Posting
	Score     Score
	Remaining int
}

// EquityPolicy is the pluggable tie-break stage. At bit-equal scores and
// equal skill overlap, a posting the policy favors for the candidate ranks
// first. The published score is never altered.
type EquityPolicy interface {
	Favors(c *profile.Candidate, p *profile.Posting) bool
}

// RemoteAccessEquity is the default policy: for candidates from Rural or
// Aspirational districts, remote-allowed postings rank first among ties,
// since those are the ones reachable without relocation.
type RemoteAccessEquity struct{}

func (RemoteAccessEquity) Favors(c *profile.Candidate, p *profile.Posting) bool {
	if c.DistrictType != profile.DistrictRural && c.DistrictType != profile.DistrictAspirational {
		return false
	}
	return p.RemoteAllowed
}

// rankResults orders results into the total order the contract promises:
// descending overall score, then (only at bit-equal scores) higher skill
// overlap, the equity stage, and finally lower posting id. Truncates to topN.
func rankResults(results []Result, equity EquityPolicy, topN int) []Result {
	sort.Slice(results, func(i, j int) bool {
		a, b := results[i], results[j]
		if a.Score.Overall != b.Score.Overall {
			return a.Score.Overall > b.Score.Overall
		}
		if a.Score.Skills != b.Score.Skills {
			return a.Score.Skills > b.Score.Skills
		}
		if equity != nil {
			fa, fb := equity.Favors(a.Candidate, a.Posting), equity.Favors(b.Candidate, b.Posting)
			if fa != fb {
				return fa
			}
		}
		return a.Posting.ID < b.Posting.ID
	})
	if len(results) > topN {
		results = results[:topN]
	}
	return results
}

// rankCandidates orders the reverse-matching results: same score ordering,
// final tie-break on lower candidate id.
func rankCandidates(results []Result, topN int) []Result {
	sort.Slice(results, func(i, j int) bool {
		a, b := results[i], results[j]
		if a.Score.Overall != b.Score.Overall {
			return a.Score.Overall > b.Score.Overall
		}
		if a.Score.Skills != b.Score.Skills {
			return a.Score.Skills > b.Score.Skills
		}
		return a.Candidate.ID < b.Candidate.ID
	})
	if len(results) > topN {
		results = results[:topN]
	}
	return results
}
