package scheduler

import (
	"fmt"

	"github.com/jikamens/event-scheduler/internal/snapshot"
)

// checkpointEntry is one element of the LIFO checkpoint stack.
type checkpointEntry struct {
	name  string
	state *snapshot.State
}

// Checkpoint snapshots the current assignment state and pushes it onto the
// checkpoint stack.
//
// The snapshot covers the full mutable working set: every attendee's
// preference/assignment state and every session's attendee list. Catalog
// entities are immutable after construction and are not copied.
//
// Parameters:
//   - name: Checkpoint name; "" auto-generates "<prefix>-<sequence>". The
//     name must be unique among currently open checkpoints.
//
// Returns:
//   - string: The name used for the checkpoint
//   - error: ErrCheckpointConflict if the name is already open
func (s *Scheduler) Checkpoint(name string) (string, error) {
	if name == "" {
		for {
			s.checkpointSeq++
			name = fmt.Sprintf("%s-%d", s.cfg.CheckpointPrefix, s.checkpointSeq)
			if !s.checkpointOpen(name) {
				break
			}
		}
	} else if s.checkpointOpen(name) {
		return "", fmt.Errorf("%w: %q", ErrCheckpointConflict, name)
	}

	s.checkpoints = append(s.checkpoints, checkpointEntry{
		name:  name,
		state: snapshot.Capture(s.attendees, s.sessions),
	})

	s.metrics.RecordCheckpointDepth(len(s.checkpoints))
	s.logger.Debug("checkpoint created", "name", name, "depth", len(s.checkpoints))

	return name, nil
}

// Rollback restores the working set to exactly the state captured by the
// most recently created checkpoint, then removes that checkpoint.
//
// To prevent programming errors, the name of the checkpoint being rolled
// back must be specified and must match the top of the stack.
//
// Returns:
//   - error: ErrCheckpointMismatch if name is not the top checkpoint (or the
//     stack is empty)
func (s *Scheduler) Rollback(name string) error {
	entry, err := s.topCheckpoint(name)
	if err != nil {
		return err
	}

	if err := snapshot.Restore(entry.state, s.attendeesByKey, s.sessionsByKey); err != nil {
		// Only reachable when entity registration interleaved with the
		// checkpoint stack in an unsupported way.
		return fmt.Errorf("rollback %q: %w", name, err)
	}

	s.checkpoints = s.checkpoints[:len(s.checkpoints)-1]
	s.metrics.RecordCheckpointDepth(len(s.checkpoints))
	s.metrics.RecordRollback()
	s.logger.Debug("checkpoint rolled back", "name", name, "depth", len(s.checkpoints))

	return nil
}

// Commit discards the most recently created checkpoint, keeping the current
// state.
//
// Commit is a pure stack pop with a name-check gate: live state is untouched.
// Once a checkpoint is committed it can't be rolled back; if an earlier
// checkpoint remains below it, the committed changes become part of that
// checkpoint and will be committed or rolled back with it.
//
// Returns:
//   - error: ErrCheckpointMismatch if name is not the top checkpoint (or the
//     stack is empty)
func (s *Scheduler) Commit(name string) error {
	if _, err := s.topCheckpoint(name); err != nil {
		return err
	}

	s.checkpoints = s.checkpoints[:len(s.checkpoints)-1]
	s.metrics.RecordCheckpointDepth(len(s.checkpoints))
	s.metrics.RecordCommit()
	s.logger.Debug("checkpoint committed", "name", name, "depth", len(s.checkpoints))

	return nil
}

// CheckpointDepth returns the number of currently open checkpoints.
func (s *Scheduler) CheckpointDepth() int { return len(s.checkpoints) }

func (s *Scheduler) checkpointOpen(name string) bool {
	for _, entry := range s.checkpoints {
		if entry.name == name {
			return true
		}
	}

	return false
}

func (s *Scheduler) topCheckpoint(name string) (checkpointEntry, error) {
	if len(s.checkpoints) == 0 {
		return checkpointEntry{}, fmt.Errorf("%w: no open checkpoint, got %q", ErrCheckpointMismatch, name)
	}

	top := s.checkpoints[len(s.checkpoints)-1]
	if top.name != name {
		return checkpointEntry{}, fmt.Errorf("%w: top is %q, got %q", ErrCheckpointMismatch, top.name, name)
	}

	return top, nil
}
