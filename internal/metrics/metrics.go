package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	loginAttempts = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "symtrack_login_attempts_total",
		Help: "Number of login attempts grouped by status.",
	}, []string{"status"})

	registrations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "symtrack_registrations_total",
		Help: "Number of registration attempts grouped by status.",
	}, []string{"status"})

	auditWriteFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "symtrack_audit_write_failures_total",
		Help: "Activity log writes that failed and were dropped.",
	})

	patternScans = promauto.NewCounter(prometheus.CounterOpts{
		Name: "symtrack_pattern_scans_total",
		Help: "Full-population symptom pattern aggregation runs.",
	})

	rateLimitHits = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "symtrack_rate_limit_hits_total",
		Help: "Rate limiter activations grouped by limiter name.",
	}, []string{"limiter"})
)

// IncLogin increments the login counter.
func IncLogin(status string) {
	loginAttempts.WithLabelValues(status).Inc()
}

// IncRegister increments the registration counter.
func IncRegister(status string) {
	registrations.WithLabelValues(status).Inc()
}

// IncAuditFailure increments the dropped audit write counter.
func IncAuditFailure() {
	auditWriteFailures.Inc()
}

// IncPatternScan increments the aggregation run counter.
func IncPatternScan() {
	patternScans.Inc()
}

// IncRateLimit increments the rate-limit hit counter.
func IncRateLimit(name string) {
	rateLimitHits.WithLabelValues(name).Inc()
}
