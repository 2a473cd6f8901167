package scheduler

import "github.com/jikamens/event-scheduler/types"

// Sentinel errors returned by the Scheduler, re-exported from the types
// subpackage so callers can use errors.Is() without an extra import.
var (
	// ErrInvalidConfig is returned when the configuration is invalid.
	ErrInvalidConfig = types.ErrInvalidConfig

	// ErrNameConflict is returned when registering a time slot, topic, or
	// attendee whose identity is already taken.
	ErrNameConflict = types.ErrNameConflict

	// ErrUnknownTimeSlot is returned when a time slot name does not resolve.
	ErrUnknownTimeSlot = types.ErrUnknownTimeSlot

	// ErrUnknownTopic is returned when a topic name does not resolve.
	ErrUnknownTopic = types.ErrUnknownTopic

	// ErrUnknownAttendee is returned when an attendee key does not resolve.
	ErrUnknownAttendee = types.ErrUnknownAttendee

	// ErrUnknownSession is returned when no session exists for a given
	// (topic, time slot) pair.
	ErrUnknownSession = types.ErrUnknownSession

	// ErrUnknownPreference is returned when explicitly assigning an attendee
	// to a topic they never listed among their preferences.
	ErrUnknownPreference = types.ErrUnknownPreference

	// ErrNotAssigned is returned when unassigning an attendee from a session
	// they do not hold an assignment for.
	ErrNotAssigned = types.ErrNotAssigned

	// ErrImmutableAssignment is returned when unassigning an immutable
	// assignment without force.
	ErrImmutableAssignment = types.ErrImmutableAssignment

	// ErrCheckpointMismatch is returned when rollback or commit names a
	// checkpoint that is not at the top of the stack, or the stack is empty.
	ErrCheckpointMismatch = types.ErrCheckpointMismatch

	// ErrCheckpointConflict is returned when creating a checkpoint whose name
	// is already held by an open checkpoint.
	ErrCheckpointConflict = types.ErrCheckpointConflict
)
