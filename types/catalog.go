package types

import "fmt"

// TimeSlot is a named period during which sessions occur.
//
// An attendee may attend at most one session per time slot. Time slots are
// created during catalog construction and are read-only afterwards, except for
// session registration while topics are being added.
type TimeSlot struct {
	// Name uniquely identifies the time slot.
	Name string

	// Sessions lists the sessions scheduled within this time slot, in
	// registration order.
	Sessions []*Session
}

// String returns the time slot name.
func (t *TimeSlot) String() string { return t.Name }

// Topic is a subject offered in one or more sessions across different time slots.
type Topic struct {
	// Name uniquely identifies the topic.
	Name string

	// Sessions lists the sessions offering this topic, one per time slot it
	// runs in, in registration order.
	Sessions []*Session
}

// String returns the topic name.
func (t *Topic) String() string { return t.Name }

// Session is one (topic, time slot) occurrence with finite attendee capacity.
//
// A session is uniquely identified by its (topic, time slot) pair; no two
// sessions share both. Invariant: len(Attendees) <= Capacity at all times;
// the assignment primitive enforces it.
type Session struct {
	// Topic this session offers.
	Topic *Topic

	// Slot is the time slot this session occupies.
	Slot *TimeSlot

	// Capacity is the maximum number of attendees.
	Capacity int

	// Attendees currently assigned to this session, in assignment order.
	// This is one view of the attendee/session relation; the other is
	// Preference.Assignment. Both are kept in sync by the assignment
	// primitive and must never be mutated independently.
	Attendees []*Attendee
}

// String returns the session identity as "{time slot} - {topic}".
func (s *Session) String() string {
	return fmt.Sprintf("%s - %s", s.Slot.Name, s.Topic.Name)
}

// Remaining returns the number of unfilled seats.
func (s *Session) Remaining() int { return s.Capacity - len(s.Attendees) }

// Full reports whether the session is at capacity.
func (s *Session) Full() bool { return len(s.Attendees) >= s.Capacity }
