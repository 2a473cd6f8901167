// Package order provides built-in attendee orderer implementations.
//
// Orderers break ties between attendees that rank equally in a scheduling
// pass. The package includes two built-in orderers:
//
//   - ByName: Lexicographic "{organization} - {name}" comparison (default);
//     repeated scheduler runs on the same input produce the same schedule
//   - Shuffled: Seeded pseudo-random ordering; different seeds explore
//     different schedules, which can rescue inputs where the deterministic
//     order leaves attendees unscheduled
//
// Custom orderers can be implemented by satisfying the types.AttendeeOrderer
// interface.
package order
