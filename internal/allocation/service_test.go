package allocation

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"avsar/internal/audit"
	"avsar/internal/profile"
	dErrors "avsar/pkg/domain-errors"
)

type serviceFixture struct {
	svc        *Service
	store      *InMemoryStore
	candidates *profile.InMemoryCandidateStore
	sink       *audit.InMemoryStore
}

func newServiceFixture(t *testing.T) *serviceFixture {
	t.Helper()
	f := &serviceFixture{
		store:      NewInMemoryStore(),
		candidates: profile.NewInMemoryCandidateStore(),
		sink:       audit.NewInMemoryStore(),
	}
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	f.svc = NewService(f.store, f.candidates, audit.NewPublisher(f.sink), nil, logger)

	ctx := context.Background()
	require.NoError(t, f.candidates.Create(ctx, &profile.Candidate{ID: "cand-1", Name: "Priya Sharma"}))
	require.NoError(t, f.store.Init(ctx, "post-1", 1))
	return f
}

func TestServiceReserve_Granted(t *testing.T) {
	f := newServiceFixture(t)

	granted, err := f.svc.Reserve(context.Background(), "cand-1", "post-1")
	require.NoError(t, err)
	assert.True(t, granted)

	n, err := f.svc.Remaining(context.Background(), "post-1")
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	events := f.sink.Events()
	require.Len(t, events, 1)
	assert.Equal(t, audit.ActionAllocationReserved, events[0].Action)
	assert.Equal(t, "cand-1", events[0].CandidateID)
	assert.Equal(t, "post-1", events[0].IndustryID)
	assert.False(t, events[0].Timestamp.IsZero())
}

func TestServiceReserve_DeniedWhenFull(t *testing.T) {
	f := newServiceFixture(t)

	granted, err := f.svc.Reserve(context.Background(), "cand-1", "post-1")
	require.NoError(t, err)
	require.True(t, granted)

	granted, err = f.svc.Reserve(context.Background(), "cand-1", "post-1")
	require.NoError(t, err)
	assert.False(t, granted)

	events := f.sink.Events()
	require.Len(t, events, 2)
	assert.Equal(t, audit.ActionAllocationDenied, events[1].Action)
}

func TestServiceReserve_Validation(t *testing.T) {
	f := newServiceFixture(t)

	tests := []struct {
		name        string
		candidateID string
		industryID  string
		wantCode    dErrors.Code
	}{
		{"blank candidate id", "  ", "post-1", dErrors.CodeInvalidInput},
		{"blank industry id", "cand-1", "", dErrors.CodeInvalidInput},
		{"unknown candidate", "ghost", "post-1", dErrors.CodeNotFound},
		{"unknown industry", "cand-1", "ghost", dErrors.CodeNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.svc.Reserve(context.Background(), tt.candidateID, tt.industryID)
			require.Error(t, err)
			assert.True(t, dErrors.HasCode(err, tt.wantCode))
		})
	}
}

func TestServiceRelease_RoundTrip(t *testing.T) {
	f := newServiceFixture(t)
	ctx := context.Background()

	granted, err := f.svc.Reserve(ctx, "cand-1", "post-1")
	require.NoError(t, err)
	require.True(t, granted)

	require.NoError(t, f.svc.Release(ctx, "cand-1", "post-1"))

	n, err := f.svc.Remaining(ctx, "post-1")
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	events := f.sink.Events()
	require.Len(t, events, 2)
	assert.Equal(t, audit.ActionAllocationReleased, events[1].Action)
}

func TestServiceRelease_Overflow(t *testing.T) {
	f := newServiceFixture(t)

	err := f.svc.Release(context.Background(), "cand-1", "post-1")
	require.Error(t, err)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeReleaseOverflow))

	// A rejected release is never audited as applied.
	assert.Empty(t, f.sink.Events())
}

func TestServiceSnapshot(t *testing.T) {
	f := newServiceFixture(t)
	require.NoError(t, f.svc.Init(context.Background(), "post-2", 4))

	snap, err := f.svc.Snapshot(context.Background())
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"post-1": 1, "post-2": 4}, snap)
}
