package scheduler

import (
	"fmt"
	"sort"

	"github.com/jikamens/event-scheduler/types"
)

// Assign assigns an attendee to their next best available topic session.
//
// Generally speaking, you will call Schedule() rather than calling this
// method directly. One situation in which you might want to call this
// directly is a VIP attendee whom you want to schedule first to ensure they
// get their preferred topics.
//
// The logic for finding a session is simple: the attendee is assigned a
// session for their highest-preference topic for which they haven't already
// been assigned a session and for which a session with remaining capacity is
// available in a time slot they have open. Candidate sessions for a topic
// are tried emptiest first, so sessions fill evenly.
//
// Parameters:
//   - attendee: Attendee identity key, "{organization} - {name}"
//
// Returns:
//   - bool: true if a session was assigned, false if none was eligible
//   - error: ErrUnknownAttendee if the key does not resolve
func (s *Scheduler) Assign(attendee string) (bool, error) {
	a, err := s.Attendee(attendee)
	if err != nil {
		return false, err
	}

	return s.assign(a, nil, false), nil
}

// AssignTopic assigns an attendee to a session for a specific topic.
//
// Parameters:
//   - attendee: Attendee identity key
//   - topic: Topic name; must appear in the attendee's preferences
//
// Returns:
//   - bool: true if a session was assigned; false if the preference is
//     already assigned or no session is eligible
//   - error: ErrUnknownAttendee, ErrUnknownTopic, or ErrUnknownPreference
func (s *Scheduler) AssignTopic(attendee, topic string) (bool, error) {
	return s.assignTopic(attendee, topic, false)
}

// ManuallyAssign assigns an attendee to a session for a specific topic and
// marks the assignment immutable: the scheduling algorithm won't unassign or
// modify it.
//
// This is a convenience method equivalent to AssignTopic with an immutable
// result, and it fails under the same conditions.
func (s *Scheduler) ManuallyAssign(attendee, topic string) (bool, error) {
	return s.assignTopic(attendee, topic, true)
}

func (s *Scheduler) assignTopic(attendee, topic string, immutable bool) (bool, error) {
	a, err := s.Attendee(attendee)
	if err != nil {
		return false, err
	}
	t, err := s.Topic(topic)
	if err != nil {
		return false, err
	}
	if a.PreferenceFor(t) == nil {
		return false, fmt.Errorf("%w: %q has not asked for topic %q", ErrUnknownPreference, a.Key(), t.Name)
	}

	return s.assign(a, t, immutable), nil
}

// Unassign removes an attendee's assignment to the session identified by
// (topic, slot).
//
// Won't modify an immutable assignment without force.
//
// Returns:
//   - error: ErrUnknownAttendee, ErrUnknownSession, ErrNotAssigned, or
//     ErrImmutableAssignment
func (s *Scheduler) Unassign(attendee, topic, slot string, force bool) error {
	a, err := s.Attendee(attendee)
	if err != nil {
		return err
	}
	sess, err := s.Session(topic, slot)
	if err != nil {
		return err
	}

	return s.unassign(a, sess, force)
}

// ClearSchedule clears all scheduling assignments.
//
// Immutable assignments are kept unless force is true.
func (s *Scheduler) ClearSchedule(force bool) {
	for _, a := range s.attendees {
		for _, p := range a.Preferences {
			if p.Assignment == nil {
				continue
			}
			if p.Assignment.Immutable && !force {
				continue
			}
			// Cannot fail: the preference provably holds this assignment.
			_ = s.unassign(a, p.Assignment.Session, force)
		}
	}

	s.logger.Info("schedule cleared", "force", force)
}

// assign is the single-assignment primitive. It binds the attendee's best
// eligible preference (or the one for topic, when non-nil) to a session,
// keeping both sides of the attendee/session relation consistent.
//
// No state changes on failure.
func (s *Scheduler) assign(a *types.Attendee, topic *types.Topic, immutable bool) bool {
	for rank, p := range a.Preferences {
		if p.Assigned() {
			continue
		}
		if topic != nil && p.Topic != topic {
			continue
		}

		// Try the topic's sessions emptiest first so sessions fill evenly.
		candidates := make([]*types.Session, len(p.Topic.Sessions))
		copy(candidates, p.Topic.Sessions)
		sort.SliceStable(candidates, func(i, j int) bool {
			return len(candidates[i].Attendees) < len(candidates[j].Attendees)
		})

		for _, sess := range candidates {
			if sess.Full() || a.BookedInSlot(sess.Slot) {
				continue
			}

			p.Assignment = &types.Assignment{Session: sess, Immutable: immutable}
			sess.Attendees = append(sess.Attendees, a)

			s.metrics.RecordAssignment(rank, immutable)
			s.logger.Debug("assigned",
				"attendee", a.Key(), "session", sess.String(), "rank", rank, "immutable", immutable)
			if s.hooks != nil && s.hooks.OnAssign != nil {
				s.hooks.OnAssign(a, sess, immutable)
			}

			return true
		}
	}

	return false
}

// unassign is the inverse primitive: it unbinds the attendee's preference for
// the given session and removes the attendee from the session's list in the
// same operation.
func (s *Scheduler) unassign(a *types.Attendee, sess *types.Session, force bool) error {
	var pref *types.Preference
	for _, p := range a.Preferences {
		if p.Assigned() && p.Assignment.Session == sess {
			pref = p
			break
		}
	}
	if pref == nil {
		return fmt.Errorf("%w: %q is not booked for %q", ErrNotAssigned, a.Key(), sess.String())
	}
	if pref.Assignment.Immutable && !force {
		return fmt.Errorf("%w: %q is required to attend %q", ErrImmutableAssignment, a.Key(), sess.String())
	}

	forced := pref.Assignment.Immutable
	pref.Assignment = nil

	for i, other := range sess.Attendees {
		if other == a {
			sess.Attendees = append(sess.Attendees[:i], sess.Attendees[i+1:]...)
			break
		}
	}

	s.metrics.RecordUnassignment(forced)
	s.logger.Debug("unassigned", "attendee", a.Key(), "session", sess.String(), "forced", forced)
	if s.hooks != nil && s.hooks.OnUnassign != nil {
		s.hooks.OnUnassign(a, sess)
	}

	return nil
}
