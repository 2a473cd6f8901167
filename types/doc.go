// Package types defines the core types and interfaces for the event-scheduler library.
//
// This package contains:
//   - Catalog entities (TimeSlot, Topic, Session): static reference data built
//     once before scheduling begins
//   - Participant entities (Attendee, Preference, Assignment): the mutable
//     working set owned by one Scheduler
//   - Interfaces (Logger, MetricsCollector, AttendeeOrderer)
//   - Sentinel errors for type-safe error checking with errors.Is()
//
// It exists as a separate package so that internal packages can depend on the
// core types without importing the root scheduler package, avoiding import
// cycles. The root package re-exports everything here via type aliases.
package types
