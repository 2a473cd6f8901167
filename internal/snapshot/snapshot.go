// Package snapshot captures and restores the scheduler's mutable working set.
//
// A snapshot records, for every attendee, the assignment state of each
// preference, and, for every session, its ordered attendee list. Catalog
// entities (time slots, topics, sessions themselves) are immutable after
// construction and are referenced by key rather than copied.
//
// Snapshots back the checkpoint stack: rollback restores the working set to
// exactly the captured state, byte for byte, which the Fingerprint digest
// makes cheap to verify.
package snapshot

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/zeebo/xxh3"

	"github.com/jikamens/event-scheduler/types"
)

// PreferenceState is the captured assignment state of one preference.
type PreferenceState struct {
	// Assigned reports whether the preference held an assignment.
	Assigned bool

	// SessionKey identifies the assigned session as "{slot} - {topic}".
	// Empty when Assigned is false.
	SessionKey string

	// Immutable is the captured immutability flag.
	Immutable bool
}

// AttendeeState is the captured working-set state of one attendee.
type AttendeeState struct {
	// Key is the attendee identity, "{organization} - {name}".
	Key string

	// Preferences holds one state per preference, in preference order.
	Preferences []PreferenceState
}

// SessionState is the captured occupancy of one session.
type SessionState struct {
	// Key identifies the session as "{slot} - {topic}".
	Key string

	// AttendeeKeys lists assigned attendees in assignment order.
	AttendeeKeys []string
}

// State is a deep copy of the scheduler's mutable working set.
type State struct {
	Attendees []AttendeeState
	Sessions  []SessionState
}

// Capture copies the assignment state of the given attendees and sessions.
//
// Both slices must be in a stable order (registration order) so that
// fingerprints of equal states compare equal.
func Capture(attendees []*types.Attendee, sessions []*types.Session) *State {
	st := &State{
		Attendees: make([]AttendeeState, 0, len(attendees)),
		Sessions:  make([]SessionState, 0, len(sessions)),
	}

	for _, a := range attendees {
		as := AttendeeState{Key: a.Key(), Preferences: make([]PreferenceState, 0, len(a.Preferences))}
		for _, p := range a.Preferences {
			ps := PreferenceState{}
			if p.Assigned() {
				ps.Assigned = true
				ps.SessionKey = p.Assignment.Session.String()
				ps.Immutable = p.Assignment.Immutable
			}
			as.Preferences = append(as.Preferences, ps)
		}
		st.Attendees = append(st.Attendees, as)
	}

	for _, s := range sessions {
		ss := SessionState{Key: s.String(), AttendeeKeys: make([]string, 0, len(s.Attendees))}
		for _, a := range s.Attendees {
			ss.AttendeeKeys = append(ss.AttendeeKeys, a.Key())
		}
		st.Sessions = append(st.Sessions, ss)
	}

	return st
}

// Restore applies a captured state to the live working set.
//
// Every live assignment is cleared first, so attendees registered after the
// snapshot was taken end up unassigned. The lookup maps are keyed by attendee
// key and session key respectively.
func Restore(st *State, attendees map[string]*types.Attendee, sessions map[string]*types.Session) error {
	for _, a := range attendees {
		for _, p := range a.Preferences {
			p.Assignment = nil
		}
	}
	for _, s := range sessions {
		s.Attendees = s.Attendees[:0]
	}

	for _, as := range st.Attendees {
		a, ok := attendees[as.Key]
		if !ok {
			return fmt.Errorf("restore: %w: %s", types.ErrUnknownAttendee, as.Key)
		}
		if len(as.Preferences) != len(a.Preferences) {
			return fmt.Errorf("restore: preference count changed for %s", as.Key)
		}
		for i, ps := range as.Preferences {
			if !ps.Assigned {
				continue
			}
			s, ok := sessions[ps.SessionKey]
			if !ok {
				return fmt.Errorf("restore: %w: %s", types.ErrUnknownSession, ps.SessionKey)
			}
			a.Preferences[i].Assignment = &types.Assignment{Session: s, Immutable: ps.Immutable}
		}
	}

	// Rebuild session attendee lists in their captured order, not in map
	// iteration order, so the restored state is bit-identical.
	for _, ss := range st.Sessions {
		s, ok := sessions[ss.Key]
		if !ok {
			return fmt.Errorf("restore: %w: %s", types.ErrUnknownSession, ss.Key)
		}
		for _, key := range ss.AttendeeKeys {
			a, ok := attendees[key]
			if !ok {
				return fmt.Errorf("restore: %w: %s", types.ErrUnknownAttendee, key)
			}
			s.Attendees = append(s.Attendees, a)
		}
	}

	return nil
}

// Fingerprint returns an xxh3 digest of the captured state.
//
// Two states have equal fingerprints exactly when their canonical encodings
// are equal, which makes the digest suitable for checkpoint round-trip
// verification and change detection.
func (st *State) Fingerprint() uint64 {
	buf := &bytes.Buffer{}

	for _, as := range st.Attendees {
		writeString(buf, as.Key)
		writeInt(buf, len(as.Preferences))
		for _, ps := range as.Preferences {
			writeBool(buf, ps.Assigned)
			writeString(buf, ps.SessionKey)
			writeBool(buf, ps.Immutable)
		}
	}

	for _, ss := range st.Sessions {
		writeString(buf, ss.Key)
		writeInt(buf, len(ss.AttendeeKeys))
		for _, key := range ss.AttendeeKeys {
			writeString(buf, key)
		}
	}

	return xxh3.Hash(buf.Bytes())
}

func writeString(buf *bytes.Buffer, s string) {
	writeInt(buf, len(s))
	buf.WriteString(s)
}

func writeInt(buf *bytes.Buffer, n int) {
	var tmp [8]byte
	binary.LittleEndian.PutUint64(tmp[:], uint64(n)) //nolint:gosec // lengths are non-negative
	buf.Write(tmp[:])
}

func writeBool(buf *bytes.Buffer, b bool) {
	if b {
		buf.WriteByte(1)
	} else {
		buf.WriteByte(0)
	}
}
