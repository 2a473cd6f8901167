package scheduler

import (
	"context"
	"sort"
	"time"

	"github.com/jikamens/event-scheduler/types"
)

// Schedule automatically assigns attendees to sessions.
//
// A best effort is made to schedule attendees to attend the topics they
// prefer. Schedule never fails on its own: it always terminates with a
// best-effort result, even if some attendees remain partially unscheduled
// because no feasible session exists for them. The only possible error is
// ctx.Err() when the context is cancelled between passes.
//
// The algorithm runs three ordered phases:
//
// The first is the time-slot phase, in which a pass is made through the
// attendees for each time slot. On pass m of n, attendees are sorted by the
// sum of their top (n - m) unassigned preference indices (attendees closer
// to satisfaction go first), then in reverse order by their accumulated
// positions in prior passes (attendees who fared worse earlier get
// priority), then by the configured orderer for stability. Each attendee
// whose schedule isn't full gets one assignment attempt.
//
// Next is the fill phase, which trades assignments between attendees (see
// Swap) to fill schedules that the pass ordering left incomplete. The phase
// stops when everyone is full or a complete sweep makes no progress.
//
// Finally the improve phase trades assignments to lower the scores of fully
// scheduled attendees who missed their top choices, sweeping until a sweep
// commits no trade or the configured sweep limit is reached.
//
// Note that this algorithm doesn't try to create a "perfect" or "optimal"
// schedule. That's actually a pretty hard problem and it is not clear it's
// worth the effort. The goal is to make reasonably good assignments.
//
// Calling Schedule again with no state change in between produces no new
// assignments: the result is a fixed point.
func (s *Scheduler) Schedule(ctx context.Context) error {
	phases := []struct {
		phase types.Phase
		run   func(context.Context) error
	}{
		{types.PhaseTimeSlot, s.timeSlotPhase},
		{types.PhaseFill, s.fillPhase},
		{types.PhaseImprove, s.improvePhase},
	}

	for _, p := range phases {
		start := time.Now()
		err := p.run(ctx)
		s.metrics.RecordPhaseDuration(p.phase, time.Since(start).Seconds())
		if err != nil {
			return err
		}
		s.logger.Info("phase complete", "phase", p.phase, "duration", time.Since(start))
	}

	return nil
}

// full reports whether an attendee's schedule cannot take more assignments:
// either every time slot is booked, or every listed preference is assigned.
func (s *Scheduler) full(a *types.Attendee) bool {
	n := a.NumAssignments()

	return n == len(s.slots) || n == len(a.Preferences)
}

// timeSlotPhase runs one assignment pass per time slot.
func (s *Scheduler) timeSlotPhase(ctx context.Context) error {
	n := len(s.slots)
	attendees := make([]*types.Attendee, len(s.attendees))
	copy(attendees, s.attendees)

	// Accumulated negative pass positions: an attendee placed late in a pass
	// sorts earlier in subsequent passes.
	runOrder := make(map[*types.Attendee]int, len(attendees))

	for m := 0; m < n; m++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		// Demand proxy: the sum of each attendee's best (n - m) unassigned
		// preference indices. Small sums mean cheap remaining wants.
		remaining := n - m
		demand := make(map[*types.Attendee]int, len(attendees))
		for _, a := range attendees {
			sum, count := 0, 0
			for i, p := range a.Preferences {
				if p.Assigned() {
					continue
				}
				sum += i
				count++
				if count == remaining {
					break
				}
			}
			demand[a] = sum
		}

		sort.SliceStable(attendees, func(i, j int) bool {
			ai, aj := attendees[i], attendees[j]
			if demand[ai] != demand[aj] {
				return demand[ai] < demand[aj]
			}
			if runOrder[ai] != runOrder[aj] {
				return runOrder[ai] < runOrder[aj]
			}

			return s.orderer.Less(ai, aj)
		})

		assignedThisPass := 0
		for i, a := range attendees {
			runOrder[a] -= i
			if s.full(a) {
				// Already full, presumably because of manual assignments, or
				// the attendee selected fewer topics than available slots
				// and has gotten all of them.
				continue
			}
			if s.assign(a, nil, false) {
				assignedThisPass++
			}
		}

		s.logger.Debug("time-slot pass complete", "pass", m, "assigned", assignedThisPass)
	}

	return nil
}

// fillPhase fills attendee schedules that aren't full because the order in
// which sessions were assigned prevented assignments in some passes.
//
// Unlike a strict "all or nothing" fill, the phase simply stops when a full
// sweep over the incomplete attendees makes no progress; whoever is left
// incomplete has no feasible trade.
func (s *Scheduler) fillPhase(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		incomplete := make([]*types.Attendee, 0, len(s.attendees))
		for _, a := range s.attendees {
			if !s.full(a) {
				incomplete = append(incomplete, a)
			}
		}
		if len(incomplete) == 0 {
			return nil
		}

		// Emptiest schedules first.
		sort.SliceStable(incomplete, func(i, j int) bool {
			ni, nj := incomplete[i].NumAssignments(), incomplete[j].NumAssignments()
			if ni != nj {
				return ni < nj
			}

			return s.orderer.Less(incomplete[i], incomplete[j])
		})

		changed := false
		for _, a := range incomplete {
			for !s.full(a) {
				if !s.swap(a) {
					break
				}
				changed = true
			}
		}

		if !changed {
			s.logger.Warn("fill phase stalled with incomplete schedules", "incomplete", len(incomplete))
			return nil
		}
	}
}

// improvePhase moves assignments around to improve the overall happiness of
// attendees whose schedules are full but who missed their top choices.
//
// An attendee can plausibly improve when their worst assigned preference
// ranks at or beyond their assignment count; otherwise they already hold
// their top choices. Sweeps repeat until one commits no trade, bounded by
// Config.ImproveSweepLimit to guarantee termination.
func (s *Scheduler) improvePhase(ctx context.Context) error {
	limit := s.cfg.ImproveSweepLimit
	if limit == 0 {
		limit = len(s.attendees)
	}

	for sweep := 0; sweep < limit; sweep++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		candidates := make([]*types.Attendee, 0, len(s.attendees))
		for _, a := range s.attendees {
			if !s.full(a) {
				continue
			}
			if max, ok := a.MaxAssignedPreference(); ok && max >= a.NumAssignments() {
				candidates = append(candidates, a)
			}
		}
		if len(candidates) == 0 {
			return nil
		}

		// Worst-off attendees first.
		sort.SliceStable(candidates, func(i, j int) bool {
			mi, _ := candidates[i].MaxAssignedPreference()
			mj, _ := candidates[j].MaxAssignedPreference()
			if mi != mj {
				return mi > mj
			}

			return s.orderer.Less(candidates[i], candidates[j])
		})

		changed := false
		for _, a := range candidates {
			if s.swap(a) {
				changed = true
			}
		}

		s.logger.Debug("improve sweep complete", "sweep", sweep, "candidates", len(candidates), "changed", changed)
		if !changed {
			return nil
		}
	}

	return nil
}
