package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Result label values of the domain counters.
const (
	ResultSuccess    = "success"
	ResultValidation = "validation"
	ResultNoChanges  = "no_changes"
	ResultMismatch   = "mismatch"
	ResultError      = "error"
)

var (
	HttpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"service", "method", "path", "status"},
	)

	HttpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"service", "method", "path"},
	)

	PreferenceSavesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kryva_preference_saves_total",
			Help: "Preference save attempts by result",
		},
		[]string{"result"},
	)

	AccountDeletionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kryva_account_deletions_total",
			Help: "Account deletion attempts by result",
		},
		[]string{"result"},
	)
)
