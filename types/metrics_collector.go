package types

// MetricsCollector defines methods for recording scheduling metrics.
//
// Implementations should be non-blocking and handle failures gracefully. The
// scheduler is single-threaded, so implementations are never called
// concurrently by one Scheduler instance.
//
// This interface composes smaller, domain-focused interfaces for modularity.
type MetricsCollector interface {
	EngineMetrics
	CheckpointMetrics
}

// EngineMetrics defines metrics for the assignment primitive and the
// scheduling engine.
type EngineMetrics interface {
	// RecordAssignment records a successful assignment.
	//
	// Parameters:
	//   - rank: Zero-based index of the assigned preference (0 = top choice)
	//   - immutable: Whether the assignment is immutable (manual)
	RecordAssignment(rank int, immutable bool)

	// RecordUnassignment records a removed assignment.
	//
	// Parameters:
	//   - forced: true when an immutable assignment was removed with force
	RecordUnassignment(forced bool)

	// RecordSwap records the outcome of one swap attempt.
	RecordSwap(success bool)

	// RecordPhaseDuration records the wall time of one schedule() phase.
	//
	// Parameters:
	//   - phase: The completed phase
	//   - duration: Time taken in seconds
	RecordPhaseDuration(phase Phase, duration float64)
}

// CheckpointMetrics defines metrics for the checkpoint manager.
type CheckpointMetrics interface {
	// RecordCheckpointDepth sets the current checkpoint stack depth (gauge).
	RecordCheckpointDepth(depth int)

	// RecordRollback records a checkpoint rollback.
	RecordRollback()

	// RecordCommit records a checkpoint commit.
	RecordCommit()
}
