package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	scheduler "github.com/jikamens/event-scheduler"
)

var (
	headingStyle   = lipgloss.NewStyle().Bold(true).Underline(true)
	attendeeStyle  = lipgloss.NewStyle().Bold(true)
	sessionStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	unmetStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	immutableStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	fadedStyle     = lipgloss.NewStyle().Faint(true)
)

// renderSchedule renders the same projection as Scheduler.Dump with terminal
// styling: assignments and scores per attendee, occupancy per session.
func renderSchedule(s *scheduler.Scheduler) string {
	var b strings.Builder

	b.WriteString(headingStyle.Render("Attendees") + "\n\n")
	for _, a := range s.Attendees() {
		fmt.Fprintf(&b, "%s %s\n",
			attendeeStyle.Render(a.Key()),
			fadedStyle.Render(fmt.Sprintf("(score %d)", a.Score())))
		for _, p := range a.Preferences {
			switch {
			case p.Assigned() && p.Assignment.Immutable:
				fmt.Fprintf(&b, "  %s %s\n",
					sessionStyle.Render(p.Assignment.Session.String()),
					immutableStyle.Render("(immutable)"))
			case p.Assigned():
				fmt.Fprintf(&b, "  %s\n", sessionStyle.Render(p.Assignment.Session.String()))
			default:
				fmt.Fprintf(&b, "  %s\n", unmetStyle.Render(p.Topic.Name+" (unmet)"))
			}
		}
		b.WriteString("\n")
	}

	b.WriteString(headingStyle.Render("Sessions") + "\n\n")
	for _, sess := range s.Sessions() {
		occupancy := fmt.Sprintf("%d/%d", len(sess.Attendees), sess.Capacity)
		if sess.Full() {
			occupancy = unmetStyle.Render(occupancy + " full")
		}
		fmt.Fprintf(&b, "%s  %s\n", sess.String(), occupancy)
	}

	return b.String()
}
