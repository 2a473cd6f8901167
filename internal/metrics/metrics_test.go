package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"

	"github.com/jikamens/event-scheduler/types"
)

func TestNopMetrics_ImplementsInterface(t *testing.T) {
	var _ types.MetricsCollector = (*NopMetrics)(nil)
}

func TestNopMetrics(t *testing.T) {
	m := NewNop()

	// None of these should panic.
	m.RecordAssignment(0, false)
	m.RecordAssignment(3, true)
	m.RecordUnassignment(true)
	m.RecordSwap(false)
	m.RecordPhaseDuration(types.PhaseFill, 0.5)
	m.RecordCheckpointDepth(2)
	m.RecordRollback()
	m.RecordCommit()
}

func TestPrometheusCollector(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewPrometheus(reg, "test")

	m.RecordAssignment(1, false)
	m.RecordAssignment(2, true)
	m.RecordUnassignment(false)
	m.RecordSwap(true)
	m.RecordSwap(false)
	m.RecordPhaseDuration(types.PhaseTimeSlot, 0.01)
	m.RecordCheckpointDepth(3)
	m.RecordRollback()
	m.RecordCommit()

	families, err := reg.Gather()
	require.NoError(t, err)

	names := make(map[string]bool, len(families))
	for _, f := range families {
		names[f.GetName()] = true
	}

	require.True(t, names["test_engine_assignments_total"])
	require.True(t, names["test_engine_assignment_rank"])
	require.True(t, names["test_engine_unassignments_total"])
	require.True(t, names["test_engine_swaps_total"])
	require.True(t, names["test_engine_phase_duration_seconds"])
	require.True(t, names["test_checkpoint_stack_depth"])
	require.True(t, names["test_checkpoint_rollbacks_total"])
	require.True(t, names["test_checkpoint_commits_total"])
}

func TestPrometheusCollector_Defaults(t *testing.T) {
	m := NewPrometheus(prometheus.NewRegistry(), "")
	require.Equal(t, "event_scheduler", m.namespace)
}
