package types

// Phase identifies one of the three ordered phases of schedule().
type Phase string

// Phases of the scheduling algorithm, in execution order.
const (
	// PhaseTimeSlot is the initial phase: one assignment pass per time slot,
	// ordered by remaining unmet demand.
	PhaseTimeSlot Phase = "time_slot"

	// PhaseFill repairs incomplete schedules by trading assignments.
	PhaseFill Phase = "fill"

	// PhaseImprove lowers scores of fully scheduled attendees by trading
	// assignments, without making anyone worse off than the improved attendee.
	PhaseImprove Phase = "improve"
)

// String returns the phase name.
func (p Phase) String() string { return string(p) }
