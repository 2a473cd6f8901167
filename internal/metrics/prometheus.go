package metrics

import (
	"strconv"
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/jikamens/event-scheduler/types"
)

// PrometheusCollector implements types.MetricsCollector backed by Prometheus.
type PrometheusCollector struct {
	reg       prometheus.Registerer
	namespace string
	once      sync.Once

	assignments     *prometheus.CounterVec
	assignmentRank  prometheus.Histogram
	unassignments   *prometheus.CounterVec
	swaps           *prometheus.CounterVec
	phaseDuration   *prometheus.HistogramVec
	checkpointDepth prometheus.Gauge
	rollbacks       prometheus.Counter
	commits         prometheus.Counter
}

// Compile-time assertion that PrometheusCollector implements MetricsCollector.
var _ types.MetricsCollector = (*PrometheusCollector)(nil)

// NewPrometheus creates a new Prometheus-backed metrics collector.
//
// Parameters:
//   - reg: Prometheus registerer interface (uses prometheus.DefaultRegisterer if nil)
//   - namespace: Prometheus metrics namespace (defaults to "event_scheduler" if empty)
//
// Returns:
//   - *PrometheusCollector: A MetricsCollector implementation using Prometheus
func NewPrometheus(reg prometheus.Registerer, namespace string) *PrometheusCollector {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	if namespace == "" {
		namespace = "event_scheduler"
	}

	return &PrometheusCollector{reg: reg, namespace: namespace}
}

func (p *PrometheusCollector) ensureRegistered() {
	p.once.Do(func() {
		p.assignments = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "engine",
			Name:      "assignments_total",
			Help:      "Total successful assignments by mutability.",
		}, []string{"immutable"})

		p.assignmentRank = prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: p.namespace,
			Subsystem: "engine",
			Name:      "assignment_rank",
			Help:      "Preference rank of successful assignments (0 = top choice).",
			Buckets:   []float64{0, 1, 2, 3, 4, 5, 7, 10},
		})

		p.unassignments = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "engine",
			Name:      "unassignments_total",
			Help:      "Total removed assignments by whether force was used.",
		}, []string{"forced"})

		p.swaps = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "engine",
			Name:      "swaps_total",
			Help:      "Total swap attempts by outcome.",
		}, []string{"outcome"})

		p.phaseDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: p.namespace,
			Subsystem: "engine",
			Name:      "phase_duration_seconds",
			Help:      "Wall time of schedule() phases in seconds.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"phase"})

		p.checkpointDepth = prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: p.namespace,
			Subsystem: "checkpoint",
			Name:      "stack_depth",
			Help:      "Current depth of the checkpoint stack.",
		})

		p.rollbacks = prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "checkpoint",
			Name:      "rollbacks_total",
			Help:      "Total checkpoint rollbacks.",
		})

		p.commits = prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "checkpoint",
			Name:      "commits_total",
			Help:      "Total checkpoint commits.",
		})

		p.reg.MustRegister(
			p.assignments,
			p.assignmentRank,
			p.unassignments,
			p.swaps,
			p.phaseDuration,
			p.checkpointDepth,
			p.rollbacks,
			p.commits,
		)
	})
}

// RecordAssignment records a successful assignment.
func (p *PrometheusCollector) RecordAssignment(rank int, immutable bool) {
	p.ensureRegistered()
	p.assignments.WithLabelValues(strconv.FormatBool(immutable)).Inc()
	p.assignmentRank.Observe(float64(rank))
}

// RecordUnassignment records a removed assignment.
func (p *PrometheusCollector) RecordUnassignment(forced bool) {
	p.ensureRegistered()
	p.unassignments.WithLabelValues(strconv.FormatBool(forced)).Inc()
}

// RecordSwap records the outcome of one swap attempt.
func (p *PrometheusCollector) RecordSwap(success bool) {
	p.ensureRegistered()

	outcome := "failure"
	if success {
		outcome = "success"
	}
	p.swaps.WithLabelValues(outcome).Inc()
}

// RecordPhaseDuration records the wall time of one schedule() phase.
func (p *PrometheusCollector) RecordPhaseDuration(phase types.Phase, duration float64) {
	p.ensureRegistered()
	p.phaseDuration.WithLabelValues(phase.String()).Observe(duration)
}

// RecordCheckpointDepth sets the current checkpoint stack depth.
func (p *PrometheusCollector) RecordCheckpointDepth(depth int) {
	p.ensureRegistered()
	p.checkpointDepth.Set(float64(depth))
}

// RecordRollback records a checkpoint rollback.
func (p *PrometheusCollector) RecordRollback() {
	p.ensureRegistered()
	p.rollbacks.Inc()
}

// RecordCommit records a checkpoint commit.
func (p *PrometheusCollector) RecordCommit() {
	p.ensureRegistered()
	p.commits.Inc()
}
