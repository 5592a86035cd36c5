package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the application.
type Metrics struct {
	CandidatesRegistered prometheus.Counter
	IndustriesRegistered prometheus.Counter

	MatchRequests     prometheus.Counter
	MatchErrors       *prometheus.CounterVec
	MatchDurationMs   prometheus.Histogram
	MatchesReturned   prometheus.Histogram
	ReservationsTotal *prometheus.CounterVec
	ReleasesTotal     prometheus.Counter
}

// New creates and registers all Prometheus metrics.
func New() *Metrics {
	return &Metrics{
		CandidatesRegistered: promauto.NewCounter(prometheus.CounterOpts{
			Name: "avsar_candidates_registered_total",
			Help: "Total number of candidates registered",
		}),
		IndustriesRegistered: promauto.NewCounter(prometheus.CounterOpts{
			Name: "avsar_industries_registered_total",
			Help: "Total number of internship providers registered",
		}),
		MatchRequests: promauto.NewCounter(prometheus.CounterOpts{
			Name: "avsar_match_requests_total",
			Help: "Total number of match requests served",
		}),
		MatchErrors: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "avsar_match_errors_total",
			Help: "Match requests that failed, by error code",
		}, []string{"code"}),
		MatchDurationMs: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "avsar_match_duration_ms",
			Help:    "Latency of findMatches in milliseconds",
			Buckets: []float64{0.5, 1, 2.5, 5, 10, 25, 50, 100, 250},
		}),
		MatchesReturned: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "avsar_matches_returned",
			Help:    "Number of matches returned per request",
			Buckets: []float64{0, 1, 2, 5, 10, 20, 50},
		}),
		ReservationsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "avsar_reservations_total",
			Help: "Capacity reservation attempts, by outcome (granted/denied)",
		}, []string{"outcome"}),
		ReleasesTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name: "avsar_releases_total",
			Help: "Capacity releases applied",
		}),
	}
}

// ObserveMatch records one served match request.
func (m *Metrics) ObserveMatch(durationMs float64, returned int) {
	if m == nil {
		return
	}
	m.MatchRequests.Inc()
	m.MatchDurationMs.Observe(durationMs)
	m.MatchesReturned.Observe(float64(returned))
}

// IncMatchError records a failed match request by code.
func (m *Metrics) IncMatchError(code string) {
	if m == nil {
		return
	}
	m.MatchErrors.WithLabelValues(code).Inc()
}

// IncRelease records an applied capacity release.
func (m *Metrics) IncRelease() {
	if m == nil {
		return
	}
	m.ReleasesTotal.Inc()
}

// IncReservation records a reservation attempt outcome.
func (m *Metrics) IncReservation(granted bool) {
	if m == nil {
		return
	}
	outcome := "denied"
	if granted {
		outcome = "granted"
	}
	m.ReservationsTotal.WithLabelValues(outcome).Inc()
}
