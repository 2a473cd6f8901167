package scheduler

import (
	"fmt"
	"strings"
)

// Dump returns a human-readable representation of the scheduler state: every
// attendee with their assignments and score, then every topic with per-session
// occupancy versus capacity.
//
// The output is a diagnostic projection only; nothing parses it back.
func (s *Scheduler) Dump() string {
	var b strings.Builder

	b.WriteString("Attendees:\n\n")
	for _, a := range s.attendees {
		fmt.Fprintf(&b, "%s (score %d)\n", a.Key(), a.Score())
		for _, p := range a.Preferences {
			if p.Assigned() {
				marker := ""
				if p.Assignment.Immutable {
					marker = " (immutable)"
				}
				fmt.Fprintf(&b, "  SESSION %s%s\n", p.Assignment.Session.String(), marker)
			} else {
				fmt.Fprintf(&b, "  %s\n", p.Topic.Name)
			}
		}
		b.WriteString("\n")
	}

	b.WriteString("Topics:\n\n")
	for _, t := range s.topics {
		fmt.Fprintf(&b, "%s\n", t.Name)
		for _, sess := range t.Sessions {
			fmt.Fprintf(&b, "  Time slot %s, # of attendees %d, capacity %d\n",
				sess.Slot.Name, len(sess.Attendees), sess.Capacity)
		}
		b.WriteString("\n")
	}

	return b.String()
}
