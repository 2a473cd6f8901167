package types

import "fmt"

// Attendee is an event participant with an ordered topic preference list.
//
// Attendee identity is the (organization, name) pair, which must be unique
// across all attendees registered with one Scheduler. Attendees are created by
// Scheduler.AddAttendee and persist for the scheduler's lifetime; their
// Preferences form the mutable working set that scheduling operates on.
type Attendee struct {
	// Name is the attendee's name.
	Name string

	// Organization is the attendee's organization.
	Organization string

	// Preferences lists the attendee's desired topics from most to least
	// preferred. Built once at registration; only the Assignment of each
	// preference changes afterwards.
	Preferences []*Preference
}

// Key returns the attendee's unique identity as "{organization} - {name}".
func (a *Attendee) Key() string {
	return fmt.Sprintf("%s - %s", a.Organization, a.Name)
}

// String returns the attendee's identity key.
func (a *Attendee) String() string { return a.Key() }

// NumAssignments returns how many of the attendee's preferences are currently
// assigned to a session.
func (a *Attendee) NumAssignments() int {
	n := 0
	for _, p := range a.Preferences {
		if p.Assigned() {
			n++
		}
	}

	return n
}

// MaxAssignedPreference returns the index of the attendee's worst (highest
// index) currently assigned preference. The second return value is false when
// no preference is assigned.
func (a *Attendee) MaxAssignedPreference() (int, bool) {
	for i := len(a.Preferences) - 1; i >= 0; i-- {
		if a.Preferences[i].Assigned() {
			return i, true
		}
	}

	return 0, false
}

// Score returns the attendee's assignment score: the sum of the indices of
// all assigned preferences. A lower score is better since earlier preferences
// cost less.
func (a *Attendee) Score() int {
	score := 0
	for i, p := range a.Preferences {
		if p.Assigned() {
			score += i
		}
	}

	return score
}

// BookedInSlot reports whether the attendee already holds an assignment in
// the given time slot.
func (a *Attendee) BookedInSlot(slot *TimeSlot) bool {
	for _, p := range a.Preferences {
		if p.Assigned() && p.Assignment.Session.Slot == slot {
			return true
		}
	}

	return false
}

// PreferenceFor returns the attendee's preference for the given topic, or nil
// if the attendee never listed it.
func (a *Attendee) PreferenceFor(topic *Topic) *Preference {
	for _, p := range a.Preferences {
		if p.Topic == topic {
			return p
		}
	}

	return nil
}

// Preference is an attendee's ranked desire to attend a topic, independent of
// which time slot it ends up in.
//
// Invariant: Assignment, if present, references a session whose topic equals
// the preference's topic.
type Preference struct {
	// Topic the attendee wants to attend.
	Topic *Topic

	// Assignment binds this preference to a session, or nil when unassigned.
	Assignment *Assignment
}

// Assigned reports whether this preference is bound to a session.
func (p *Preference) Assigned() bool { return p.Assignment != nil }

// String returns the preferred topic's name.
func (p *Preference) String() string { return p.Topic.Name }

// Assignment is the binding of one preference to one session.
//
// Assignments are created and destroyed by the assignment primitive. Immutable
// assignments are never altered by the automatic algorithm (swap, fill, or
// unassign without force).
type Assignment struct {
	// Session the preference is bound to.
	Session *Session

	// Immutable marks an assignment the automatic algorithm must not touch.
	Immutable bool
}
