// Package explain turns a computed match into a short free-text explanation
// through an opaque text-generation call. It sits entirely outside the
// matching data flow: nothing here may influence scoring or ranking.
package explain

import (
	"context"
	"fmt"
	"strings"

	"avsar/internal/match"
	dErrors "avsar/pkg/domain-errors"
)

// Generator is the opaque text-generation capability.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Matcher recomputes the single (candidate, posting) pair being explained.
type Matcher interface {
	FindMatches(ctx context.Context, req match.Request) ([]match.Result, error)
}

// Service produces explanations for a specific match.
type Service struct {
	generator Generator
	matcher   Matcher
}

func NewService(generator Generator, matcher Matcher) *Service {
	return &Service{generator: generator, matcher: matcher}
}

// Explain generates a short narrative for the (candidate, industry) pair.
// Upstream failures surface as unavailable; the caller decides about retries.
func (s *Service) Explain(ctx context.Context, candidateID, industryID string) (string, error) {
	if s.generator == nil {
		return "", dErrors.New(dErrors.CodeUnavailable, "explanation service is not configured")
	}

	results, err := s.matcher.FindMatches(ctx, match.Request{
		CandidateID: candidateID,
		TopN:        1000,
	})
	if err != nil {
		return "", err
	}

	var found *match.Result
	for i := range results {
		if results[i].Posting.ID == industryID {
			found = &results[i]
			break
		}
	}
	if found == nil {
		return "", dErrors.New(dErrors.CodeNotFound, "no eligible match for this candidate and industry")
	}

	text, err := s.generator.Generate(ctx, buildPrompt(found))
	if err != nil {
		return "", dErrors.Wrap(err, dErrors.CodeUnavailable, "explanation service unavailable")
	}
	return text, nil
}

func buildPrompt(res *match.Result) string {
	c, p := res.Candidate, res.Posting
	return fmt.Sprintf(
		"Explain in 3-4 sentences why candidate %s (skills: %s; preferred sectors: %s) "+
			"is a %.0f%% match for the %s internship at %s (required skills: %s; location: %s; sector: %s). "+
			"Mention the strongest factor first. Keep it encouraging and factual.",
		c.Name,
		strings.Join(c.Skills, ", "),
		strings.Join(c.PreferredSectors, ", "),
		res.Score.Overall*100,
		p.InternshipTitle,
		p.CompanyName,
		strings.Join(p.RequiredSkills, ", "),
		p.Location,
		p.Sector,
	)
}
