// Package scheduler matches event attendees with topics and time slots based
// on ranked preferences.
//
// The scheduler honors per-attendee preference ordering, per-session capacity,
// and per-time-slot exclusivity (an attendee attends at most one session per
// slot). It produces a reasonably good assignment, not a provably optimal one.
//
// # Quick Start
//
//	import scheduler "github.com/jikamens/event-scheduler"
//
//	cfg := scheduler.DefaultConfig()
//	s, err := scheduler.New(&cfg)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// Time slots have arbitrary names.
//	_ = s.AddTimeSlots("9:30", "10:30", "11:30")
//
//	// Topics run in one or more time slots, each with its own capacity.
//	_ = s.AddTopic("Underwater basket-weaving",
//		scheduler.SessionSpec{Slot: "9:30", Capacity: 10},
//		scheduler.SessionSpec{Slot: "10:30", Capacity: 10})
//
//	// Attendees list topic choices from most to least preferred.
//	_ = s.AddAttendee("John Doe", "Acme, Inc.",
//		"Underwater basket-weaving", "History of yarn cultivation")
//
//	// It's a popular topic, but he asked nicely, so make sure he gets it.
//	_, _ = s.ManuallyAssign("Acme, Inc. - John Doe", "History of yarn cultivation")
//
//	// Where the magic happens.
//	_ = s.Schedule(context.Background())
//	fmt.Println(s.Dump())
//
// # Scheduling Algorithm
//
// Schedule runs three ordered phases:
//
//  1. Time-slot phase: one assignment pass per time slot, with attendees
//     ordered by how close they are to a satisfying schedule
//  2. Fill phase: trades assignments between attendees to fill schedules the
//     first phase left incomplete
//  3. Improve phase: trades assignments to lower attendee scores without
//     making anyone worse off than the improved attendee
//
// # Checkpointing
//
// Checkpointing makes it easier to experiment with different scheduling
// options. Checkpoint the current assignment state at any time, then either
// Rollback to discard everything since, or Commit to keep it. Checkpoints
// form a strict LIFO stack, and to prevent programming errors the
// checkpoint's name must be specified when committing or rolling back.
//
//	name, _ := s.Checkpoint("before-vips")
//	_, _ = s.ManuallyAssign("Acme, Inc. - John Doe", "Underwater basket-weaving")
//	_ = s.Schedule(ctx)
//	if unhappy(s) {
//		_ = s.Rollback(name)
//	} else {
//		_ = s.Commit(name)
//	}
//
// # Observability
//
// Structured logging, metrics, and hooks are injected through functional
// options:
//
//	s, err := scheduler.New(&cfg,
//	    scheduler.WithLogger(myLogger),          // any scheduler.Logger
//	    scheduler.WithMetrics(myCollector),      // any scheduler.MetricsCollector
//	    scheduler.WithOrderer(order.NewShuffled(42)),
//	)
package scheduler
