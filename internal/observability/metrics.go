package observability

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"fittrack-be/internal/entities"
)

const namespace = "fittrack"

var (
	httpRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "HTTP requests handled, by method, route and status code.",
	}, []string{"method", "route", "status"})
	httpDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "HTTP request latency.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "route"})
	signups = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "auth",
		Name:      "signups_total",
		Help:      "Signup attempts by result.",
	}, []string{"result"})
	logins = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "auth",
		Name:      "logins_total",
		Help:      "Login attempts by result.",
	}, []string{"result"})
	entriesRecorded = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "fitness",
		Name:      "entries_recorded_total",
		Help:      "Fitness entries persisted, by metric type.",
	}, []string{"type"})
)

// Result labels for auth counters
const (
	SignupCreated   = "created"
	SignupDuplicate = "duplicate"
	SignupError     = "error"

	LoginSuccess     = "success"
	LoginUnknownUser = "unknown_user"
	LoginBadPassword = "bad_password"
	LoginError       = "error"
)

func init() {
	prometheus.MustRegister(httpRequests, httpDuration, signups, logins, entriesRecorded)
}

// ObserveHTTPRequest records one handled request.
func ObserveHTTPRequest(method, route string, status int, elapsed time.Duration) {
	if route == "" {
		route = "unmatched"
	}
	httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	httpDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// RecordSignup counts a signup attempt.
func RecordSignup(result string) {
	signups.WithLabelValues(result).Inc()
}

// RecordLogin counts a login attempt.
func RecordLogin(result string) {
	logins.WithLabelValues(result).Inc()
}

// RecordEntry counts a persisted entry. Types are open-ended, so unknown ones share the "other" label.
func RecordEntry(entryType string) {
	entriesRecorded.WithLabelValues(typeLabel(entryType)).Inc()
}

func typeLabel(entryType string) string {
	switch entryType {
	case entities.TypeDailySteps, entities.TypeWaterIntake, entities.TypeCaloriesIntake:
		return entryType
	}
	return "other"
}
