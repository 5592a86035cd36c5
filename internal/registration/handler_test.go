package registration

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRegServer(t *testing.T, f *regFixture) *httptest.Server {
	t.Helper()
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	r := chi.NewRouter()
	NewHandler(f.svc, logger).Register(r)
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	defer resp.Body.Close()
	var decoded map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&decoded))
	return decoded
}

const candidatePayload = `{
	"name": "Priya Sharma",
	"email": "priya@example.com",
	"phone": "+91-9876543210",
	"skills": ["Python", "SQL"],
	"qualifications": ["B.Tech Computer Science"],
	"location_preference": ["Bangalore"],
	"current_location": "Mysore",
	"category": "General",
	"district_type": "Urban",
	"experience_months": 6,
	"preferred_sectors": ["Technology"],
	"languages": ["English", "Hindi"]
}`

const industryPayload = `{
	"company_name": "TechCorp Solutions",
	"contact_email": "hr@techcorp.example.com",
	"internship_title": "Software Development Intern",
	"internship_description": "Backend development with Python",
	"required_skills": ["Python", "SQL"],
	"location": "Bangalore",
	"sector": "Technology",
	"internship_capacity": 5,
	"duration_months": 6
}`

func TestHandleRegisterCandidate(t *testing.T) {
	f := newRegFixture(t)
	srv := newRegServer(t, f)

	resp, err := http.Post(srv.URL+"/register_candidate", "application/json", strings.NewReader(candidatePayload))
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, "success", body["status"])
	assert.NotEmpty(t, body["candidate_id"])

	// The registered candidate is retrievable through the detail endpoint.
	id := body["candidate_id"].(string)
	resp, err = http.Get(srv.URL + "/candidates/" + id)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	detail := decodeBody(t, resp)
	candidate := detail["candidate"].(map[string]any)
	assert.Equal(t, "Priya Sharma", candidate["name"])
	assert.Equal(t, "Urban", candidate["district_type"])
}

func TestHandleRegisterCandidate_Invalid(t *testing.T) {
	f := newRegFixture(t)
	srv := newRegServer(t, f)

	resp, err := http.Post(srv.URL+"/register_candidate", "application/json",
		strings.NewReader(`{"name":"No Email","skills":["Python"]}`))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, "invalid_input", body["error"])
}

func TestHandleRegisterIndustry(t *testing.T) {
	f := newRegFixture(t)
	srv := newRegServer(t, f)

	resp, err := http.Post(srv.URL+"/register_industry", "application/json", strings.NewReader(industryPayload))
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, "success", body["status"])
	require.NotEmpty(t, body["industry_id"])

	id := body["industry_id"].(string)
	resp, err = http.Get(srv.URL + "/industries/" + id)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	detail := decodeBody(t, resp)
	industry := detail["industry"].(map[string]any)
	assert.Equal(t, "TechCorp Solutions", industry["company_name"])
	assert.Equal(t, float64(5), industry["internship_capacity"])
}

func TestHandleListEndpoints(t *testing.T) {
	f := newRegFixture(t)
	srv := newRegServer(t, f)

	resp, err := http.Post(srv.URL+"/register_candidate", "application/json", strings.NewReader(candidatePayload))
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp, err = http.Get(srv.URL + "/candidates")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, float64(1), body["count"])

	resp, err = http.Get(srv.URL + "/industries")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body = decodeBody(t, resp)
	assert.Equal(t, float64(0), body["count"])
	assert.Empty(t, body["industries"])
}

func TestHandleGetCandidate_NotFound(t *testing.T) {
	f := newRegFixture(t)
	srv := newRegServer(t, f)

	resp, err := http.Get(srv.URL + "/candidates/missing")
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, "not_found", body["error"])
}
