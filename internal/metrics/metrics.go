// Package metrics registers the Prometheus collectors of the RSVP site.
package metrics

import (
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	registerOnce sync.Once

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "rsvp",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total HTTP requests.",
		},
		[]string{"service", "method", "route", "status"},
	)
	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "rsvp",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"service", "method", "route", "status"},
	)
	rpcRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "rsvp",
			Subsystem: "rpc",
			Name:      "requests_total",
			Help:      "Connect calls by procedure and code.",
		},
		[]string{"procedure", "code"},
	)
	rpcDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "rsvp",
			Subsystem: "rpc",
			Name:      "duration_seconds",
			Help:      "Connect call duration in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"procedure"},
	)
	submissions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "rsvp",
			Subsystem: "submission",
			Name:      "total",
			Help:      "Submit attempts by outcome (invalid, in_flight, success, error).",
		},
		[]string{"outcome"},
	)
	submittedGuests = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "rsvp",
			Subsystem: "submission",
			Name:      "guests_total",
			Help:      "Guests contained in successful submissions.",
		},
	)
	countChanges = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "rsvp",
			Subsystem: "counter",
			Name:      "commits_total",
			Help:      "Committed guest count changes by input kind (release, select, step, set).",
		},
		[]string{"kind"},
	)
	storedResponses = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "rsvp",
			Subsystem: "sheet",
			Name:      "responses_total",
			Help:      "Responses stored by the sheet endpoint.",
		},
	)
)

// Outcome labels for RecordSubmission.
const (
	OutcomeInvalid  = "invalid"
	OutcomeInFlight = "in_flight"
	OutcomeSuccess  = "success"
	OutcomeError    = "error"
)

// Register adds every collector to the default registry once.
func Register() {
	registerOnce.Do(func() {
		prometheus.MustRegister(
			httpRequests,
			httpDuration,
			rpcRequests,
			rpcDuration,
			submissions,
			submittedGuests,
			countChanges,
			storedResponses,
		)
	})
}

func RecordHTTPRequest(service, method, route string, status int, duration time.Duration) {
	statusLabel := strconv.Itoa(status)
	httpRequests.WithLabelValues(service, method, route, statusLabel).Inc()
	httpDuration.WithLabelValues(service, method, route, statusLabel).Observe(duration.Seconds())
}

// RecordRPC counts one Connect call. code is "ok" for successful calls.
func RecordRPC(procedure, code string, duration time.Duration) {
	rpcRequests.WithLabelValues(procedure, code).Inc()
	rpcDuration.WithLabelValues(procedure).Observe(duration.Seconds())
}

// RecordSubmission counts one submit attempt. guests is only added on success.
func RecordSubmission(outcome string, guests int) {
	submissions.WithLabelValues(outcome).Inc()
	if outcome == OutcomeSuccess {
		submittedGuests.Add(float64(guests))
	}
}

func RecordCountChange(kind string) {
	countChanges.WithLabelValues(kind).Inc()
}

func RecordStoredResponse() {
	storedResponses.Inc()
}
