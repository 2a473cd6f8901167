package types

import "errors"

// Sentinel errors for the event-scheduler library.
//
// These errors provide type-safe error checking using errors.Is() and errors.As().
// All components should use these sentinel errors for known error conditions
// and wrap them with context using fmt.Errorf("%s: %w", msg, err).
//
// Note that an assignment or swap failing to find an eligible session is NOT
// an error: it is an expected, recoverable outcome reported as a boolean
// result. Errors are reserved for precondition violations (unknown references,
// duplicate names, checkpoint misuse).

// Catalog and registration errors.
var (
	// ErrInvalidConfig is returned when the configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrNameConflict is returned when registering a time slot, topic, or
	// attendee whose identity is already taken.
	ErrNameConflict = errors.New("name conflict")

	// ErrUnknownTimeSlot is returned when a time slot name does not resolve.
	ErrUnknownTimeSlot = errors.New("unknown time slot")

	// ErrUnknownTopic is returned when a topic name does not resolve.
	ErrUnknownTopic = errors.New("unknown topic")

	// ErrUnknownAttendee is returned when an attendee key does not resolve.
	ErrUnknownAttendee = errors.New("unknown attendee")

	// ErrUnknownSession is returned when no session exists for a given
	// (topic, time slot) pair.
	ErrUnknownSession = errors.New("unknown session")
)

// Assignment primitive errors.
var (
	// ErrUnknownPreference is returned when explicitly assigning an attendee
	// to a topic they never listed among their preferences.
	ErrUnknownPreference = errors.New("topic not among attendee preferences")

	// ErrNotAssigned is returned when unassigning an attendee from a session
	// they do not hold an assignment for.
	ErrNotAssigned = errors.New("attendee not assigned to session")

	// ErrImmutableAssignment is returned when unassigning an immutable
	// assignment without force.
	ErrImmutableAssignment = errors.New("assignment is immutable")
)

// Checkpoint errors.
var (
	// ErrCheckpointMismatch is returned when rollback or commit names a
	// checkpoint that is not at the top of the stack, or the stack is empty.
	ErrCheckpointMismatch = errors.New("checkpoint name does not match top of stack")

	// ErrCheckpointConflict is returned when creating a checkpoint whose name
	// is already held by an open checkpoint.
	ErrCheckpointConflict = errors.New("checkpoint name already in use")
)
