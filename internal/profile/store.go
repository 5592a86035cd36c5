package profile

import "context"

// CandidateStore is the read/write surface the engine needs for candidates:
// lookup by id plus a full enumeration. Stores return sentinel errors;
// services translate them.
type CandidateStore interface {
	Create(ctx context.Context, c *Candidate) error
	FindByID(ctx context.Context, id string) (*Candidate, error)
	List(ctx context.Context) ([]*Candidate, error)
	Count(ctx context.Context) (int, error)
}

// PostingStore is the equivalent surface for internship postings.
type PostingStore interface {
	Create(ctx context.Context, p *Posting) error
	FindByID(ctx context.Context, id string) (*Posting, error)
	List(ctx context.Context) ([]*Posting, error)
	Count(ctx context.Context) (int, error)
}
