// Package audit captures append-only events for the actions that change
// system state: registrations and capacity allocations. Sinks are swappable
// so tests stay in memory and deployments can fan out to Kafka.
package audit

import (
	"context"
	"time"
)

// Actions emitted by the engine.
const (
	ActionCandidateRegistered = "candidate.registered"
	ActionIndustryRegistered  = "industry.registered"
	ActionAllocationReserved  = "allocation.reserved"
	ActionAllocationDenied    = "allocation.denied"
	ActionAllocationReleased  = "allocation.released"
)

// Event is emitted from domain logic to capture key actions. Keep it
// transport-agnostic so stores and sinks can fan out.
type Event struct {
	Timestamp   time.Time `json:"timestamp"`
	Action      string    `json:"action"`
	CandidateID string    `json:"candidate_id,omitempty"`
	IndustryID  string    `json:"industry_id,omitempty"`
	Detail      string    `json:"detail,omitempty"`
}

// Store is the sink an event lands in.
type Store interface {
	Append(ctx context.Context, event Event) error
}

// Publisher captures structured audit events. It is append-only and uses the
// store for persistence so tests can swap sinks easily.
type Publisher struct {
	store Store
}

func NewPublisher(store Store) *Publisher {
	return &Publisher{store: store}
}

func (p *Publisher) Emit(ctx context.Context, event Event) error {
	if p == nil || p.store == nil {
		return nil
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	return p.store.Append(ctx, event)
}
