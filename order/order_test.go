package order

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jikamens/event-scheduler/types"
)

func makeAttendees(names ...string) []*types.Attendee {
	attendees := make([]*types.Attendee, 0, len(names))
	for _, n := range names {
		attendees = append(attendees, &types.Attendee{Name: n, Organization: "Acme"})
	}

	return attendees
}

func keys(attendees []*types.Attendee) []string {
	out := make([]string, 0, len(attendees))
	for _, a := range attendees {
		out = append(out, a.Key())
	}

	return out
}

func TestByName(t *testing.T) {
	o := NewByName()
	attendees := makeAttendees("Charlie", "Alice", "Bob")

	sort.SliceStable(attendees, func(i, j int) bool { return o.Less(attendees[i], attendees[j]) })

	require.Equal(t, []string{"Acme - Alice", "Acme - Bob", "Acme - Charlie"}, keys(attendees))
}

func TestByName_Consistent(t *testing.T) {
	o := NewByName()
	a := &types.Attendee{Name: "Alice", Organization: "Acme"}
	b := &types.Attendee{Name: "Bob", Organization: "Acme"}

	require.True(t, o.Less(a, b))
	require.False(t, o.Less(b, a))
}

func TestShuffled_DeterministicPerSeed(t *testing.T) {
	names := []string{"Alice", "Bob", "Charlie", "Dave", "Eve", "Frank"}

	shuffleWith := func(seed uint64) []string {
		o := NewShuffled(seed)
		attendees := makeAttendees(names...)
		sort.SliceStable(attendees, func(i, j int) bool { return o.Less(attendees[i], attendees[j]) })

		return keys(attendees)
	}

	require.Equal(t, shuffleWith(1), shuffleWith(1), "same seed yields same order")
	require.NotEqual(t, shuffleWith(1), shuffleWith(2), "different seeds yield different orders")
}

func TestShuffled_TotalOrder(t *testing.T) {
	o := NewShuffled(7)
	attendees := makeAttendees("Alice", "Bob")

	less := o.Less(attendees[0], attendees[1])
	greater := o.Less(attendees[1], attendees[0])
	require.NotEqual(t, less, greater, "exactly one direction sorts first")
}
