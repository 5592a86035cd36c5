package allocation

import (
	"context"
	"sync"

	"avsar/pkg/platform/sentinel"
)

// InMemoryStore keeps one counter per posting, each guarded by its own mutex
// so contention is scoped per posting id. The outer lock only protects the
// map structure.
type InMemoryStore struct {
	mu       sync.RWMutex
	counters map[string]*counter
}

type counter struct {
	mu        sync.Mutex
	capacity  int
	remaining int
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{counters: make(map[string]*counter)}
}

func (s *InMemoryStore) Init(_ context.Context, postingID string, capacity int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.counters[postingID]; exists {
		return nil
	}
	s.counters[postingID] = &counter{capacity: capacity, remaining: capacity}
	return nil
}

func (s *InMemoryStore) get(postingID string) (*counter, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.counters[postingID]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	return c, nil
}

func (s *InMemoryStore) TryReserve(_ context.Context, postingID string) (bool, error) {
	c, err := s.get(postingID)
	if err != nil {
		return false, err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.remaining <= 0 {
		return false, nil
	}
	c.remaining--
	return true, nil
}

func (s *InMemoryStore) Release(_ context.Context, postingID string) error {
	c, err := s.get(postingID)
	if err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.remaining >= c.capacity {
		return ErrReleaseOverflow
	}
	c.remaining++
	return nil
}

func (s *InMemoryStore) Remaining(_ context.Context, postingID string) (int, error) {
	c, err := s.get(postingID)
	if err != nil {
		return 0, err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.remaining, nil
}

func (s *InMemoryStore) Snapshot(_ context.Context) (map[string]int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string]int, len(s.counters))
	for id, c := range s.counters {
		c.mu.Lock()
		out[id] = c.remaining
		c.mu.Unlock()
	}
	return out, nil
}
