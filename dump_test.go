package scheduler

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDump(t *testing.T) {
	s := newTestScheduler(t)
	require.NoError(t, s.AddTimeSlot("morning"))
	require.NoError(t, s.AddTopic("Weaving", SessionSpec{Slot: "morning", Capacity: 2}))
	require.NoError(t, s.AddTopic("Pottery", SessionSpec{Slot: "morning", Capacity: 1}))
	require.NoError(t, s.AddAttendee("John Doe", "Acme", "Weaving", "Pottery"))
	require.NoError(t, s.AddAttendee("Jane Doe", "Widgets LLC", "Pottery"))

	ok, err := s.ManuallyAssign("Widgets LLC - Jane Doe", "Pottery")
	require.NoError(t, err)
	require.True(t, ok)
	ok, err = s.AssignTopic("Acme - John Doe", "Weaving")
	require.NoError(t, err)
	require.True(t, ok)

	out := s.Dump()

	require.Contains(t, out, "Attendees:")
	require.Contains(t, out, "Acme - John Doe (score 0)")
	require.Contains(t, out, "  SESSION morning - Weaving\n")
	require.Contains(t, out, "  Pottery\n", "unassigned preferences print the bare topic")
	require.Contains(t, out, "Widgets LLC - Jane Doe (score 0)")
	require.Contains(t, out, "  SESSION morning - Pottery (immutable)\n")

	require.Contains(t, out, "Topics:")
	require.Contains(t, out, "Weaving\n  Time slot morning, # of attendees 1, capacity 2\n")
	require.Contains(t, out, "Pottery\n  Time slot morning, # of attendees 1, capacity 1\n")
}
