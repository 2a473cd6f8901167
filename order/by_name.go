package order

import "github.com/jikamens/event-scheduler/types"

// ByName orders attendees lexicographically by their identity key.
type ByName struct{}

var _ types.AttendeeOrderer = (*ByName)(nil)

// NewByName creates a new lexicographic orderer.
//
// This is the default orderer: ties resolve by "{organization} - {name}", so
// scheduling the same input twice yields the same schedule.
//
// Returns:
//   - *ByName: Initialized lexicographic orderer
func NewByName() *ByName {
	return &ByName{}
}

// Less reports whether attendee a's identity key sorts before b's.
func (o *ByName) Less(a, b *types.Attendee) bool {
	return a.Key() < b.Key()
}
