package scheduler

import "github.com/jikamens/event-scheduler/types"

// Re-export types from the types subpackage.
//
// This file provides a stable public API for the library's core types and
// interfaces. It uses type aliases to re-export definitions from the `types`
// subpackage, which contains the actual implementations.
//
// This pattern solves the "import cycle" problem by allowing internal
// packages to depend on `types` without depending on the root package, while
// still providing a convenient `scheduler.Attendee`, `scheduler.Session`,
// etc. for users.
type (
	TimeSlot   = types.TimeSlot
	Topic      = types.Topic
	Session    = types.Session
	Attendee   = types.Attendee
	Preference = types.Preference
	Assignment = types.Assignment
)

// Re-export interfaces from the types subpackage for convenience.
type (
	Logger           = types.Logger
	MetricsCollector = types.MetricsCollector
	Hooks            = types.Hooks
	AttendeeOrderer  = types.AttendeeOrderer
	Phase            = types.Phase
)

// Re-export Phase constants from the types subpackage.
const (
	PhaseTimeSlot = types.PhaseTimeSlot
	PhaseFill     = types.PhaseFill
	PhaseImprove  = types.PhaseImprove
)
