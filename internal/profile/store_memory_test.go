package profile

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"avsar/pkg/platform/sentinel"
)

type MemoryStoreSuite struct {
	suite.Suite
	ctx        context.Context
	candidates *InMemoryCandidateStore
	postings   *InMemoryPostingStore
}

func TestMemoryStoreSuite(t *testing.T) {
	suite.Run(t, new(MemoryStoreSuite))
}

func (s *MemoryStoreSuite) SetupTest() {
	s.ctx = context.Background()
	s.candidates = NewInMemoryCandidateStore()
	s.postings = NewInMemoryPostingStore()
}

func (s *MemoryStoreSuite) TestCandidateRoundTrip() {
	c := &Candidate{
		ID:     "cand-1",
		Name:   "Priya Sharma",
		Email:  "priya@example.com",
		Skills: []string{"Python", "SQL"},
	}
	s.Require().NoError(s.candidates.Create(s.ctx, c))

	got, err := s.candidates.FindByID(s.ctx, "cand-1")
	s.Require().NoError(err)
	s.Equal(c.Name, got.Name)
	s.Equal(c.Skills, got.Skills)
}

func (s *MemoryStoreSuite) TestCandidateCopyOnRead() {
	c := &Candidate{ID: "cand-1", Name: "Priya Sharma"}
	s.Require().NoError(s.candidates.Create(s.ctx, c))

	got, err := s.candidates.FindByID(s.ctx, "cand-1")
	s.Require().NoError(err)
	got.Name = "mutated"

	again, err := s.candidates.FindByID(s.ctx, "cand-1")
	s.Require().NoError(err)
	s.Equal("Priya Sharma", again.Name)
}

func (s *MemoryStoreSuite) TestCandidateNotFound() {
	_, err := s.candidates.FindByID(s.ctx, "missing")
	s.ErrorIs(err, sentinel.ErrNotFound)
}

func (s *MemoryStoreSuite) TestCandidateDuplicateID() {
	c := &Candidate{ID: "cand-1"}
	s.Require().NoError(s.candidates.Create(s.ctx, c))
	s.ErrorIs(s.candidates.Create(s.ctx, c), sentinel.ErrConflict)
}

func (s *MemoryStoreSuite) TestCandidateListOrderedByID() {
	for _, id := range []string{"cand-c", "cand-a", "cand-b"} {
		s.Require().NoError(s.candidates.Create(s.ctx, &Candidate{ID: id}))
	}
	list, err := s.candidates.List(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(list, 3)
	s.Equal("cand-a", list[0].ID)
	s.Equal("cand-b", list[1].ID)
	s.Equal("cand-c", list[2].ID)
}

func (s *MemoryStoreSuite) TestCandidateCount() {
	n, err := s.candidates.Count(s.ctx)
	s.Require().NoError(err)
	s.Zero(n)

	s.Require().NoError(s.candidates.Create(s.ctx, &Candidate{ID: "cand-1"}))
	n, err = s.candidates.Count(s.ctx)
	s.Require().NoError(err)
	s.Equal(1, n)
}

func (s *MemoryStoreSuite) TestPostingRoundTrip() {
	p := &Posting{
		ID:              "post-1",
		CompanyName:     "TechCorp Solutions",
		InternshipTitle: "Software Development Intern",
		RequiredSkills:  []string{"Python"},
		Capacity:        5,
	}
	s.Require().NoError(s.postings.Create(s.ctx, p))

	got, err := s.postings.FindByID(s.ctx, "post-1")
	s.Require().NoError(err)
	s.Equal(p.CompanyName, got.CompanyName)
	s.Equal(5, got.Capacity)
}

func (s *MemoryStoreSuite) TestPostingNotFound() {
	_, err := s.postings.FindByID(s.ctx, "missing")
	s.ErrorIs(err, sentinel.ErrNotFound)
}

func (s *MemoryStoreSuite) TestPostingDuplicateID() {
	p := &Posting{ID: "post-1"}
	s.Require().NoError(s.postings.Create(s.ctx, p))
	s.ErrorIs(s.postings.Create(s.ctx, p), sentinel.ErrConflict)
}

func (s *MemoryStoreSuite) TestPostingListOrderedByID() {
	for _, id := range []string{"post-b", "post-a"} {
		s.Require().NoError(s.postings.Create(s.ctx, &Posting{ID: id}))
	}
	list, err := s.postings.List(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(list, 2)
	s.Equal("post-a", list[0].ID)
	s.Equal("post-b", list[1].ID)
}
