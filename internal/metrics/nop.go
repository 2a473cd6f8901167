// Package metrics provides types.MetricsCollector implementations.
package metrics

import "github.com/jikamens/event-scheduler/types"

// NopMetrics implements a no-op metrics collector.
//
// All metrics are discarded. Useful for testing or when external metrics
// collection is used.
type NopMetrics struct{}

// Compile-time assertion that NopMetrics implements MetricsCollector.
var _ types.MetricsCollector = (*NopMetrics)(nil)

// NewNop creates a new no-op metrics collector.
func NewNop() *NopMetrics {
	return &NopMetrics{}
}

// EngineMetrics implementation

// RecordAssignment discards the assignment metric.
func (n *NopMetrics) RecordAssignment(_ /* rank */ int, _ /* immutable */ bool) {
	// No-op
}

// RecordUnassignment discards the unassignment metric.
func (n *NopMetrics) RecordUnassignment(_ /* forced */ bool) {
	// No-op
}

// RecordSwap discards the swap outcome metric.
func (n *NopMetrics) RecordSwap(_ /* success */ bool) {
	// No-op
}

// RecordPhaseDuration discards the phase duration metric.
func (n *NopMetrics) RecordPhaseDuration(_ /* phase */ types.Phase, _ /* duration */ float64) {
	// No-op
}

// CheckpointMetrics implementation

// RecordCheckpointDepth discards the checkpoint depth metric.
func (n *NopMetrics) RecordCheckpointDepth(_ /* depth */ int) {
	// No-op
}

// RecordRollback discards the rollback metric.
func (n *NopMetrics) RecordRollback() {
	// No-op
}

// RecordCommit discards the commit metric.
func (n *NopMetrics) RecordCommit() {
	// No-op
}
