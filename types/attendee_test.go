package types

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// buildGraph creates a small catalog with two slots, two topics, and one
// session per (topic, slot) pair.
func buildGraph() (slots []*TimeSlot, topics []*Topic) {
	slots = []*TimeSlot{{Name: "9:30"}, {Name: "10:30"}}
	topics = []*Topic{{Name: "Weaving"}, {Name: "Yarn"}}

	for _, topic := range topics {
		for _, slot := range slots {
			s := &Session{Topic: topic, Slot: slot, Capacity: 2}
			topic.Sessions = append(topic.Sessions, s)
			slot.Sessions = append(slot.Sessions, s)
		}
	}

	return slots, topics
}

func newAttendee(name, org string, topics ...*Topic) *Attendee {
	a := &Attendee{Name: name, Organization: org}
	for _, t := range topics {
		a.Preferences = append(a.Preferences, &Preference{Topic: t})
	}

	return a
}

// assignTo binds a preference directly, bypassing the scheduler. Only for
// exercising derived attendee properties.
func assignTo(a *Attendee, idx int, s *Session) {
	a.Preferences[idx].Assignment = &Assignment{Session: s}
	s.Attendees = append(s.Attendees, a)
}

func TestAttendee_Key(t *testing.T) {
	a := newAttendee("John Doe", "Acme, Inc.")
	require.Equal(t, "Acme, Inc. - John Doe", a.Key())
	require.Equal(t, a.Key(), a.String())
}

func TestAttendee_DerivedProperties(t *testing.T) {
	_, topics := buildGraph()
	a := newAttendee("John Doe", "Acme", topics[0], topics[1])

	require.Equal(t, 0, a.NumAssignments())
	require.Equal(t, 0, a.Score())

	_, ok := a.MaxAssignedPreference()
	require.False(t, ok, "no preference assigned yet")

	assignTo(a, 1, topics[1].Sessions[0])

	require.Equal(t, 1, a.NumAssignments())
	require.Equal(t, 1, a.Score())

	max, ok := a.MaxAssignedPreference()
	require.True(t, ok)
	require.Equal(t, 1, max)

	assignTo(a, 0, topics[0].Sessions[1])

	require.Equal(t, 2, a.NumAssignments())
	require.Equal(t, 1, a.Score(), "score sums assigned preference indices")

	max, ok = a.MaxAssignedPreference()
	require.True(t, ok)
	require.Equal(t, 1, max)
}

func TestAttendee_BookedInSlot(t *testing.T) {
	slots, topics := buildGraph()
	a := newAttendee("Jane Doe", "Widgets LLC", topics[0], topics[1])

	require.False(t, a.BookedInSlot(slots[0]))

	assignTo(a, 0, topics[0].Sessions[0]) // slot 9:30

	require.True(t, a.BookedInSlot(slots[0]))
	require.False(t, a.BookedInSlot(slots[1]))
}

func TestAttendee_PreferenceFor(t *testing.T) {
	_, topics := buildGraph()
	a := newAttendee("Jane Doe", "Widgets LLC", topics[0])

	require.NotNil(t, a.PreferenceFor(topics[0]))
	require.Nil(t, a.PreferenceFor(topics[1]))
}

func TestPreference_Assigned(t *testing.T) {
	_, topics := buildGraph()
	p := &Preference{Topic: topics[0]}

	require.False(t, p.Assigned())
	require.Equal(t, "Weaving", p.String())

	p.Assignment = &Assignment{Session: topics[0].Sessions[0]}
	require.True(t, p.Assigned())
}
