package allocation

import (
	"context"
	"errors"
)

// ErrReleaseOverflow is returned by stores when a release would push remaining
// capacity above the declared capacity. It signals a caller bug (double
// release) and is never absorbed.
var ErrReleaseOverflow = errors.New("release would exceed declared capacity")

// Store owns the remaining-capacity counters. All mutation of remaining
// capacity in the system goes through a Store; ranking only reads snapshots.
//
// Implementations serialize TryReserve/Release per posting id so two
// concurrent acceptances of the last open seat resolve to exactly one grant.
type Store interface {
	// Init registers a posting's counters. Remaining starts at capacity.
	// Calling Init twice for the same id is a no-op for an existing counter.
	Init(ctx context.Context, postingID string, capacity int) error

	// TryReserve atomically checks remaining > 0 and decrements. Returns
	// (true, nil) on grant, (false, nil) on denial. sentinel.ErrNotFound for
	// unknown postings.
	TryReserve(ctx context.Context, postingID string) (bool, error)

	// Release increments remaining by one, never above capacity
	// (ErrReleaseOverflow otherwise).
	Release(ctx context.Context, postingID string) error

	// Remaining reads the current counter for one posting.
	Remaining(ctx context.Context, postingID string) (int, error)

	// Snapshot reads all counters at once for the ranking path.
	Snapshot(ctx context.Context) (map[string]int, error)
}
