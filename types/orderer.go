package types

// AttendeeOrderer breaks ties between attendees that rank equally in a
// scheduling pass.
//
// The engine sorts attendees by its own primary criteria (unmet demand, prior
// pass positions, assignment counts) and consults the orderer only when those
// criteria are equal. The default orderer compares attendee identity keys
// lexicographically for deterministic output; a seeded random orderer can be
// used instead so that repeated runs explore different schedules.
type AttendeeOrderer interface {
	// Less reports whether attendee a should be scheduled before attendee b.
	// Implementations must be consistent: for a fixed orderer instance the
	// relative order of two attendees never changes.
	Less(a, b *Attendee) bool
}
