package stats

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"avsar/internal/profile"
)

func TestHandleStats(t *testing.T) {
	f := newStatsFixture(t)
	ctx := context.Background()
	require.NoError(t, f.candidates.Create(ctx, &profile.Candidate{
		ID: "cand-1", Category: profile.CategoryGeneral, DistrictType: profile.DistrictUrban,
	}))
	require.NoError(t, f.postings.Create(ctx, &profile.Posting{ID: "post-1", Sector: "Technology", Capacity: 2}))
	require.NoError(t, f.capacity.Init(ctx, "post-1", 2))

	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	r := chi.NewRouter()
	NewHandler(f.svc, logger).Register(r)
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	resp, err := http.Get(srv.URL + "/stats")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "success", body["status"])

	system := body["system_stats"].(map[string]any)
	candidates := system["candidates"].(map[string]any)
	assert.Equal(t, float64(1), candidates["total"])

	internships := system["internships"].(map[string]any)
	assert.Equal(t, float64(2), internships["total_capacity"])
	assert.Equal(t, float64(2), internships["available_positions"])
	assert.Equal(t, float64(0), internships["filled_positions"])
}
