package profile

import (
	"context"
	"sort"
	"sync"

	"avsar/pkg/platform/sentinel"
)

// InMemoryCandidateStore keeps candidates in a map under a RWMutex. The
// default store for single-instance deployments and tests.
type InMemoryCandidateStore struct {
	mu         sync.RWMutex
	candidates map[string]*Candidate
}

func NewInMemoryCandidateStore() *InMemoryCandidateStore {
	return &InMemoryCandidateStore{candidates: make(map[string]*Candidate)}
}

func (s *InMemoryCandidateStore) Create(_ context.Context, c *Candidate) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.candidates[c.ID]; exists {
		return sentinel.ErrConflict
	}
	cp := *c
	s.candidates[c.ID] = &cp
	return nil
}

func (s *InMemoryCandidateStore) FindByID(_ context.Context, id string) (*Candidate, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.candidates[id]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	cp := *c
	return &cp, nil
}

// List returns all candidates ordered by id so repeated scans are
// reproducible.
func (s *InMemoryCandidateStore) List(_ context.Context) ([]*Candidate, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*Candidate, 0, len(s.candidates))
	for _, c := range s.candidates {
		cp := *c
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *InMemoryCandidateStore) Count(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.candidates), nil
}

// InMemoryPostingStore keeps postings in a map under a RWMutex.
type InMemoryPostingStore struct {
	mu       sync.RWMutex
	postings map[string]*Posting
}

func NewInMemoryPostingStore() *InMemoryPostingStore {
	return &InMemoryPostingStore{postings: make(map[string]*Posting)}
}

func (s *InMemoryPostingStore) Create(_ context.Context, p *Posting) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.postings[p.ID]; exists {
		return sentinel.ErrConflict
	}
	cp := *p
	s.postings[p.ID] = &cp
	return nil
}

func (s *InMemoryPostingStore) FindByID(_ context.Context, id string) (*Posting, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.postings[id]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

// List returns all postings ordered by id; the ranker depends on a stable
// scan order for its deterministic final tie-break.
func (s *InMemoryPostingStore) List(_ context.Context) ([]*Posting, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*Posting, 0, len(s.postings))
	for _, p := range s.postings {
		cp := *p
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *InMemoryPostingStore) Count(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.postings), nil
}
