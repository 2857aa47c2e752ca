// Package metrics records exercise outcomes as Prometheus metrics. drills is
// a short-lived CLI, so metrics are not served; they can be dumped to a
// node_exporter textfile at exit instead.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// Outcome label values.
const (
	OutcomeSuccess = "success"
	OutcomeError   = "error"
)

// Recorder owns a private registry with the drills collectors plus the Go
// runtime collector (heap, GC and goroutine statistics).
type Recorder struct {
	registry    *prometheus.Registry
	runs        *prometheus.CounterVec
	inputErrors *prometheus.CounterVec
	duration    *prometheus.HistogramVec
}

// NewRecorder creates a Recorder with all collectors registered.
func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "drills",
			Name:      "exercise_runs_total",
			Help:      "Exercise runs by exercise and outcome.",
		}, []string{"exercise", "outcome"}),
		inputErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "drills",
			Name:      "input_errors_total",
			Help:      "Rejected user input by field.",
		}, []string{"field"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "drills",
			Name:      "exercise_duration_seconds",
			Help:      "Wall time of exercise runs.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 10, 7),
		}, []string{"exercise"}),
	}
	r.registry.MustRegister(r.runs, r.inputErrors, r.duration, collectors.NewGoCollector())
	return r
}

// ObserveRun records one run of exercise that took d and ended with err.
func (r *Recorder) ObserveRun(exercise string, d time.Duration, err error) {
	outcome := OutcomeSuccess
	if err != nil {
		outcome = OutcomeError
	}
	r.runs.WithLabelValues(exercise, outcome).Inc()
	r.duration.WithLabelValues(exercise).Observe(d.Seconds())
}

// InputError records a rejected value for field.
func (r *Recorder) InputError(field string) {
	r.inputErrors.WithLabelValues(field).Inc()
}

// Registry exposes the underlying registry as a Gatherer.
func (r *Recorder) Registry() prometheus.Gatherer {
	return r.registry
}

// WriteTextfile writes every metric to path in the Prometheus text format.
func (r *Recorder) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, r.registry)
}
