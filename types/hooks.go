package types

// Hooks defines callbacks for scheduling events.
//
// All hooks are optional and called synchronously: the scheduler is
// single-threaded and every operation runs to completion before returning, so
// hooks execute inline with the mutation that triggered them.
//
// IMPORTANT: hooks observe every primitive mutation, including tentative ones
// performed inside swap that are later rolled back. Callers that only care
// about committed state should inspect the scheduler after schedule() returns
// instead of accumulating state in hooks.
type Hooks struct {
	// OnAssign is called after an attendee is assigned to a session.
	OnAssign func(attendee *Attendee, session *Session, immutable bool)

	// OnUnassign is called after an attendee is unassigned from a session.
	OnUnassign func(attendee *Attendee, session *Session)

	// OnSwap is called after each swap attempt with its outcome.
	OnSwap func(attendee *Attendee, success bool)
}
