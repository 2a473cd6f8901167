package scheduler

import "github.com/jikamens/event-scheduler/types"

// Swap tries to improve the schedule for an attendee by trading assignments
// with other attendees.
//
// The specified attendee (the "unlucky" attendee) needs improvement either
// because their schedule has a hole, or because they didn't get their top
// preferences and moving people around could make things more fair:
//
//   - Repair case (schedule not full): steal any mutable assignment whose
//     session the unlucky attendee wants and can attend, provided the
//     displaced attendee can be re-assigned somewhere else. A trade that
//     merely moves the hole to another attendee is no repair at all.
//   - Improvement case (schedule full): tentatively drop the unlucky
//     attendee's worst assignment and look for a trade that strictly lowers
//     their score without leaving the other attendee with a score above the
//     unlucky attendee's new one.
//
// Immutable assignments are never touched. Candidate trade partners are
// considered in attendee registration order so results are reproducible.
//
// Parameters:
//   - attendee: Attendee identity key
//
// Returns:
//   - bool: true if a trade was committed
//   - error: ErrUnknownAttendee if the key does not resolve
func (s *Scheduler) Swap(attendee string) (bool, error) {
	a, err := s.Attendee(attendee)
	if err != nil {
		return false, err
	}

	return s.swap(a), nil
}

func (s *Scheduler) swap(unlucky *types.Attendee) bool {
	success := s.trade(unlucky)

	s.metrics.RecordSwap(success)
	if s.hooks != nil && s.hooks.OnSwap != nil {
		s.hooks.OnSwap(unlucky, success)
	}

	return success
}

// trade implements the swap search on top of the checkpoint stack: every
// candidate trade runs against a checkpoint that is committed when the trade
// is acceptable and rolled back otherwise.
func (s *Scheduler) trade(unlucky *types.Attendee) bool {
	// Assigned preferences from worst (highest index) to best.
	var assigned []*types.Preference
	for i := len(unlucky.Preferences) - 1; i >= 0; i-- {
		if unlucky.Preferences[i].Assigned() {
			assigned = append(assigned, unlucky.Preferences[i])
		}
	}

	// Improvement case: full schedule, so free the worst assignment first to
	// make room for a better one. oldScore < 0 marks the repair case.
	oldScore := -1
	unassignCkpt := ""
	if len(assigned) == len(s.slots) {
		worst := assigned[0]
		if worst.Assignment.Immutable {
			return false
		}
		oldScore = unlucky.Score()
		unassignCkpt, _ = s.Checkpoint("")
		if err := s.unassign(unlucky, worst.Assignment.Session, false); err != nil {
			// Unreachable: the preference holds a mutable assignment.
			s.rollbackQuiet(unassignCkpt)
			return false
		}
	}

	for _, other := range s.attendees {
		if other == unlucky {
			continue
		}
		// Try to steal the other attendee's worst assignments first.
		for i := len(other.Preferences) - 1; i >= 0; i-- {
			p := other.Preferences[i]
			if !p.Assigned() || p.Assignment.Immutable {
				continue
			}
			sess := p.Assignment.Session

			// The session must offer a topic the unlucky attendee actually
			// wants and isn't already attending.
			want := unlucky.PreferenceFor(sess.Topic)
			if want == nil || want.Assigned() {
				continue
			}
			// And sit in a time slot the unlucky attendee has open.
			if unlucky.BookedInSlot(sess.Slot) {
				continue
			}

			ckpt, _ := s.Checkpoint("")
			_ = s.unassign(other, sess, false)
			gotIt := s.assign(unlucky, nil, false)
			reseated := s.assign(other, nil, false)

			if s.tradeAcceptable(unlucky, other, gotIt && reseated, oldScore) {
				_ = s.Commit(ckpt)
				if unassignCkpt != "" {
					_ = s.Commit(unassignCkpt)
				}
				s.logger.Debug("swap committed",
					"attendee", unlucky.Key(), "other", other.Key(), "session", sess.String())

				return true
			}
			s.rollbackQuiet(ckpt)
		}
	}

	if unassignCkpt != "" {
		s.rollbackQuiet(unassignCkpt)
	}

	return false
}

// tradeAcceptable decides whether a tentative trade should be committed.
// bothSeated is true only when the unlucky attendee took the freed session
// and the displaced attendee found a new one.
//
// Repair case (oldScore < 0): any trade that seats both parties adds an
// assignment to the schedule, so take it. Improvement case: the unlucky
// attendee's score must strictly drop, and the other attendee must not end
// up worse off than the unlucky attendee's new score.
func (s *Scheduler) tradeAcceptable(unlucky, other *types.Attendee, bothSeated bool, oldScore int) bool {
	if !bothSeated {
		return false
	}
	if oldScore < 0 {
		return true
	}

	newScore := unlucky.Score()

	return newScore < oldScore && other.Score() <= newScore
}

// rollbackQuiet rolls back a checkpoint that swap itself created. Failure
// means the working set diverged from the snapshot in a way Restore cannot
// reconcile, which indicates a bug rather than a caller error.
func (s *Scheduler) rollbackQuiet(name string) {
	if err := s.Rollback(name); err != nil {
		s.logger.Error("swap rollback failed", "checkpoint", name, "error", err)
	}
}
