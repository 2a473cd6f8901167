package scheduler

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jikamens/event-scheduler/types"
)

// newCraftEvent builds a two-slot catalog used by most assignment tests.
func newCraftEvent(t *testing.T, opts ...Option) *Scheduler {
	t.Helper()

	s := newTestScheduler(t, opts...)
	require.NoError(t, s.AddTimeSlots("morning", "afternoon"))
	require.NoError(t, s.AddTopic("Weaving",
		SessionSpec{Slot: "morning", Capacity: 2},
		SessionSpec{Slot: "afternoon", Capacity: 2},
	))
	require.NoError(t, s.AddTopic("Pottery",
		SessionSpec{Slot: "afternoon", Capacity: 1},
	))

	return s
}

func TestAssign(t *testing.T) {
	t.Run("best preference first", func(t *testing.T) {
		s := newCraftEvent(t)
		require.NoError(t, s.AddAttendee("John Doe", "Acme", "Pottery", "Weaving"))

		ok, err := s.Assign("Acme - John Doe")
		require.NoError(t, err)
		require.True(t, ok)

		a, err := s.Attendee("Acme - John Doe")
		require.NoError(t, err)
		require.True(t, a.Preferences[0].Assigned(), "top preference should win")
		require.False(t, a.Preferences[1].Assigned())
		require.Equal(t, 0, a.Score())
		requireConsistent(t, s)
	})

	t.Run("falls through full sessions", func(t *testing.T) {
		s := newCraftEvent(t)
		require.NoError(t, s.AddAttendee("John Doe", "Acme", "Pottery", "Weaving"))
		require.NoError(t, s.AddAttendee("Jane Doe", "Widgets LLC", "Pottery"))

		// Jane takes the only Pottery seat, so John lands on Weaving.
		ok, err := s.Assign("Widgets LLC - Jane Doe")
		require.NoError(t, err)
		require.True(t, ok)

		ok, err = s.Assign("Acme - John Doe")
		require.NoError(t, err)
		require.True(t, ok)

		a, err := s.Attendee("Acme - John Doe")
		require.NoError(t, err)
		require.False(t, a.Preferences[0].Assigned())
		require.True(t, a.Preferences[1].Assigned())
		require.Equal(t, "Weaving", a.Preferences[1].Assignment.Session.Topic.Name)
	})

	t.Run("respects slot exclusivity", func(t *testing.T) {
		s := newCraftEvent(t)
		require.NoError(t, s.AddAttendee("John Doe", "Acme", "Pottery", "Weaving"))

		// Pottery occupies John's afternoon; Weaving must go to the morning.
		ok, err := s.Assign("Acme - John Doe")
		require.NoError(t, err)
		require.True(t, ok)
		ok, err = s.Assign("Acme - John Doe")
		require.NoError(t, err)
		require.True(t, ok)

		a, err := s.Attendee("Acme - John Doe")
		require.NoError(t, err)
		require.Equal(t, "morning", a.Preferences[1].Assignment.Session.Slot.Name)
		requireConsistent(t, s)
	})

	t.Run("fills sessions evenly", func(t *testing.T) {
		s := newCraftEvent(t)
		require.NoError(t, s.AddAttendee("John Doe", "Acme", "Weaving"))
		require.NoError(t, s.AddAttendee("Jane Doe", "Widgets LLC", "Weaving"))

		for _, key := range []string{"Acme - John Doe", "Widgets LLC - Jane Doe"} {
			ok, err := s.Assign(key)
			require.NoError(t, err)
			require.True(t, ok)
		}

		for _, sess := range s.Sessions() {
			if sess.Topic.Name == "Weaving" {
				require.Len(t, sess.Attendees, 1, "attendees should spread across sessions")
			}
		}
	})

	t.Run("nothing eligible", func(t *testing.T) {
		s := newCraftEvent(t)
		require.NoError(t, s.AddAttendee("John Doe", "Acme", "Pottery"))
		require.NoError(t, s.AddAttendee("Jane Doe", "Widgets LLC", "Pottery"))

		ok, err := s.Assign("Acme - John Doe")
		require.NoError(t, err)
		require.True(t, ok)

		before := s.Fingerprint()
		ok, err = s.Assign("Widgets LLC - Jane Doe")
		require.NoError(t, err)
		require.False(t, ok)
		require.Equal(t, before, s.Fingerprint(), "failed assignment must not change state")
	})

	t.Run("unknown attendee", func(t *testing.T) {
		s := newCraftEvent(t)

		_, err := s.Assign("Acme - Nobody")
		require.ErrorIs(t, err, ErrUnknownAttendee)
	})
}

func TestAssignTopic(t *testing.T) {
	s := newCraftEvent(t)
	require.NoError(t, s.AddAttendee("John Doe", "Acme", "Pottery", "Weaving"))

	ok, err := s.AssignTopic("Acme - John Doe", "Weaving")
	require.NoError(t, err)
	require.True(t, ok)

	a, err := s.Attendee("Acme - John Doe")
	require.NoError(t, err)
	require.False(t, a.Preferences[0].Assigned())
	require.True(t, a.Preferences[1].Assigned())
	require.False(t, a.Preferences[1].Assignment.Immutable)

	t.Run("already assigned", func(t *testing.T) {
		ok, err := s.AssignTopic("Acme - John Doe", "Weaving")
		require.NoError(t, err)
		require.False(t, ok)
	})

	t.Run("topic not in preferences", func(t *testing.T) {
		require.NoError(t, s.AddTopic("Carving", SessionSpec{Slot: "morning", Capacity: 1}))

		_, err := s.AssignTopic("Acme - John Doe", "Carving")
		require.ErrorIs(t, err, ErrUnknownPreference)
	})

	t.Run("unknown topic", func(t *testing.T) {
		_, err := s.AssignTopic("Acme - John Doe", "Basket Weaving")
		require.ErrorIs(t, err, ErrUnknownTopic)
	})
}

func TestManuallyAssign(t *testing.T) {
	s := newCraftEvent(t)
	require.NoError(t, s.AddAttendee("Jane Doe", "Widgets LLC", "Pottery", "Weaving"))

	ok, err := s.ManuallyAssign("Widgets LLC - Jane Doe", "Pottery")
	require.NoError(t, err)
	require.True(t, ok)

	a, err := s.Attendee("Widgets LLC - Jane Doe")
	require.NoError(t, err)
	require.True(t, a.Preferences[0].Assigned())
	require.True(t, a.Preferences[0].Assignment.Immutable)
}

func TestUnassign(t *testing.T) {
	s := newCraftEvent(t)
	require.NoError(t, s.AddAttendee("John Doe", "Acme", "Pottery", "Weaving"))

	t.Run("not assigned", func(t *testing.T) {
		err := s.Unassign("Acme - John Doe", "Pottery", "afternoon", false)
		require.ErrorIs(t, err, ErrNotAssigned)
	})

	t.Run("removes both sides", func(t *testing.T) {
		ok, err := s.AssignTopic("Acme - John Doe", "Pottery")
		require.NoError(t, err)
		require.True(t, ok)

		require.NoError(t, s.Unassign("Acme - John Doe", "Pottery", "afternoon", false))

		a, err := s.Attendee("Acme - John Doe")
		require.NoError(t, err)
		require.Equal(t, 0, a.NumAssignments())

		sess, err := s.Session("Pottery", "afternoon")
		require.NoError(t, err)
		require.Empty(t, sess.Attendees)
	})

	t.Run("immutable requires force", func(t *testing.T) {
		ok, err := s.ManuallyAssign("Acme - John Doe", "Pottery")
		require.NoError(t, err)
		require.True(t, ok)

		err = s.Unassign("Acme - John Doe", "Pottery", "afternoon", false)
		require.ErrorIs(t, err, ErrImmutableAssignment)

		require.NoError(t, s.Unassign("Acme - John Doe", "Pottery", "afternoon", true))
	})

	t.Run("unknown session", func(t *testing.T) {
		err := s.Unassign("Acme - John Doe", "Pottery", "morning", false)
		require.ErrorIs(t, err, ErrUnknownSession)
	})
}

func TestClearSchedule(t *testing.T) {
	s := newCraftEvent(t)
	require.NoError(t, s.AddAttendee("John Doe", "Acme", "Pottery", "Weaving"))

	ok, err := s.ManuallyAssign("Acme - John Doe", "Pottery")
	require.NoError(t, err)
	require.True(t, ok)
	ok, err = s.AssignTopic("Acme - John Doe", "Weaving")
	require.NoError(t, err)
	require.True(t, ok)

	a, err := s.Attendee("Acme - John Doe")
	require.NoError(t, err)

	s.ClearSchedule(false)
	require.Equal(t, 1, a.NumAssignments(), "immutable assignment must survive")
	require.True(t, a.Preferences[0].Assignment.Immutable)

	s.ClearSchedule(true)
	require.Equal(t, 0, a.NumAssignments())
	requireConsistent(t, s)
}

func TestAssignHooks(t *testing.T) {
	var assigned, unassigned []string

	hooks := &types.Hooks{
		OnAssign: func(a *types.Attendee, sess *types.Session, immutable bool) {
			assigned = append(assigned, sess.String())
		},
		OnUnassign: func(a *types.Attendee, sess *types.Session) {
			unassigned = append(unassigned, sess.String())
		},
	}

	s := newCraftEvent(t, WithHooks(hooks))
	require.NoError(t, s.AddAttendee("John Doe", "Acme", "Pottery"))

	ok, err := s.Assign("Acme - John Doe")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, []string{"afternoon - Pottery"}, assigned)

	require.NoError(t, s.Unassign("Acme - John Doe", "Pottery", "afternoon", false))
	require.Equal(t, []string{"afternoon - Pottery"}, unassigned)
}
