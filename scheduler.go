package scheduler

import (
	"fmt"

	"github.com/jikamens/event-scheduler/internal/logging"
	"github.com/jikamens/event-scheduler/internal/metrics"
	"github.com/jikamens/event-scheduler/internal/snapshot"
	"github.com/jikamens/event-scheduler/order"
	"github.com/jikamens/event-scheduler/types"
)

// Scheduler matches event attendees with topic sessions across time slots.
//
// Scheduler is the main entry point of the library. It owns:
//   - The catalog (time slots, topics, sessions), built once through the
//     registration calls and read-only afterwards
//   - The mutable working set (attendees and their assignments)
//   - The checkpoint stack for experimenting with scheduling options
//
// Scheduler is single-threaded by design: every operation runs to completion
// before returning and no concurrent invocations are supported. All state is
// private to one instance.
//
// Lifecycle:
//   - Create with New()
//   - Register time slots, topics, and attendees
//   - Optionally ManuallyAssign VIPs, then call Schedule()
//   - Inspect assignments, scores, and Dump() output
type Scheduler struct {
	cfg Config

	logger  types.Logger
	metrics types.MetricsCollector
	hooks   *types.Hooks
	orderer types.AttendeeOrderer

	// Catalog, in registration order plus name-resolution indices.
	// Boundary methods resolve names to handles here; internal algorithm
	// code operates on handles only.
	slots         []*types.TimeSlot
	slotsByName   map[string]*types.TimeSlot
	topics        []*types.Topic
	topicsByName  map[string]*types.Topic
	sessions      []*types.Session
	sessionsByKey map[string]*types.Session

	// Working set.
	attendees      []*types.Attendee
	attendeesByKey map[string]*types.Attendee

	// Checkpoint stack, top at the end.
	checkpoints   []checkpointEntry
	checkpointSeq int
}

// SessionSpec declares one session of a topic: the time slot it runs in and
// its attendee capacity.
type SessionSpec struct {
	// Slot is the name of an already-registered time slot.
	Slot string

	// Capacity is the maximum number of attendees for this session.
	Capacity int
}

// New creates a new Scheduler instance with the provided configuration.
//
// Returns a concrete *Scheduler following the "accept interfaces, return
// structs" principle. Consumers can define their own interfaces for testing
// if needed.
//
// Parameters:
//   - cfg: Scheduler configuration (missing values filled with defaults)
//   - opts: Optional configuration (logger, metrics, hooks, orderer)
//
// Returns:
//   - *Scheduler: Initialized scheduler instance
//   - error: Validation error if the configuration is invalid
//
// Example:
//
//	cfg := scheduler.DefaultConfig()
//	s, err := scheduler.New(&cfg)
func New(cfg *Config, opts ...Option) (*Scheduler, error) {
	if cfg == nil {
		return nil, ErrInvalidConfig
	}

	ApplyDefaults(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	options := &schedulerOptions{}
	for _, opt := range opts {
		opt(options)
	}
	if options.logger == nil {
		options.logger = logging.NewNop()
	}
	if options.metrics == nil {
		options.metrics = metrics.NewNop()
	}
	if options.orderer == nil {
		options.orderer = order.NewByName()
	}

	return &Scheduler{
		cfg:            *cfg,
		logger:         options.logger,
		metrics:        options.metrics,
		hooks:          options.hooks,
		orderer:        options.orderer,
		slotsByName:    make(map[string]*types.TimeSlot),
		topicsByName:   make(map[string]*types.Topic),
		sessionsByKey:  make(map[string]*types.Session),
		attendeesByKey: make(map[string]*types.Attendee),
	}, nil
}

// AddTimeSlot adds a time slot.
//
// Time slot names must be unique.
//
// Returns:
//   - error: ErrNameConflict if the name is already registered
func (s *Scheduler) AddTimeSlot(name string) error {
	if _, ok := s.slotsByName[name]; ok {
		return fmt.Errorf("%w: duplicate time slot %q", ErrNameConflict, name)
	}

	slot := &types.TimeSlot{Name: name}
	s.slots = append(s.slots, slot)
	s.slotsByName[name] = slot

	return nil
}

// AddTimeSlots adds multiple time slots at once.
//
// Registration stops at the first conflicting name.
func (s *Scheduler) AddTimeSlots(names ...string) error {
	for _, name := range names {
		if err := s.AddTimeSlot(name); err != nil {
			return err
		}
	}

	return nil
}

// AddTopic adds a topic with one session per listed time slot.
//
// Topic names must be unique, every SessionSpec must reference an
// already-registered time slot, and a topic may run at most once per slot.
//
// Returns:
//   - error: ErrNameConflict on a duplicate topic name or duplicate slot
//     within the specs, ErrUnknownTimeSlot on a bad slot reference
func (s *Scheduler) AddTopic(name string, specs ...SessionSpec) error {
	if _, ok := s.topicsByName[name]; ok {
		return fmt.Errorf("%w: duplicate topic %q", ErrNameConflict, name)
	}

	resolved := make([]*types.TimeSlot, 0, len(specs))
	seen := make(map[*types.TimeSlot]bool, len(specs))
	for _, spec := range specs {
		slot, ok := s.slotsByName[spec.Slot]
		if !ok {
			return fmt.Errorf("%w: %q for topic %q", ErrUnknownTimeSlot, spec.Slot, name)
		}
		if seen[slot] {
			return fmt.Errorf("%w: duplicate time slot %q for topic %q", ErrNameConflict, spec.Slot, name)
		}
		seen[slot] = true
		resolved = append(resolved, slot)
	}

	topic := &types.Topic{Name: name}
	for i, spec := range specs {
		sess := &types.Session{Topic: topic, Slot: resolved[i], Capacity: spec.Capacity}
		topic.Sessions = append(topic.Sessions, sess)
		resolved[i].Sessions = append(resolved[i].Sessions, sess)
		s.sessions = append(s.sessions, sess)
		s.sessionsByKey[sess.String()] = sess
	}
	s.topics = append(s.topics, topic)
	s.topicsByName[name] = topic

	return nil
}

// AddAttendee adds an attendee with an ordered topic preference list.
//
// The combination of name and organization must be unique, and every
// preference must reference a registered topic.
//
// Parameters:
//   - name: Attendee's name
//   - organization: Attendee's organization
//   - preferences: Topic names from most to least preferred
//
// Returns:
//   - error: ErrNameConflict on a duplicate (organization, name) pair,
//     ErrUnknownTopic on a bad topic reference
func (s *Scheduler) AddAttendee(name, organization string, preferences ...string) error {
	attendee := &types.Attendee{Name: name, Organization: organization}
	if _, ok := s.attendeesByKey[attendee.Key()]; ok {
		return fmt.Errorf("%w: duplicate attendee %q", ErrNameConflict, attendee.Key())
	}

	for _, topicName := range preferences {
		topic, ok := s.topicsByName[topicName]
		if !ok {
			return fmt.Errorf("%w: %q for attendee %q", ErrUnknownTopic, topicName, attendee.Key())
		}
		attendee.Preferences = append(attendee.Preferences, &types.Preference{Topic: topic})
	}

	s.attendees = append(s.attendees, attendee)
	s.attendeesByKey[attendee.Key()] = attendee

	return nil
}

// TimeSlots returns the registered time slots in registration order.
func (s *Scheduler) TimeSlots() []*types.TimeSlot { return s.slots }

// Topics returns the registered topics in registration order.
func (s *Scheduler) Topics() []*types.Topic { return s.topics }

// Sessions returns all sessions in registration order.
func (s *Scheduler) Sessions() []*types.Session { return s.sessions }

// Attendees returns the registered attendees in registration order.
func (s *Scheduler) Attendees() []*types.Attendee { return s.attendees }

// Attendee resolves an attendee by identity key ("{organization} - {name}").
//
// Returns:
//   - *types.Attendee: The resolved attendee
//   - error: ErrUnknownAttendee if the key does not resolve
func (s *Scheduler) Attendee(key string) (*types.Attendee, error) {
	a, ok := s.attendeesByKey[key]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownAttendee, key)
	}

	return a, nil
}

// Topic resolves a topic by name.
//
// Returns:
//   - *types.Topic: The resolved topic
//   - error: ErrUnknownTopic if the name does not resolve
func (s *Scheduler) Topic(name string) (*types.Topic, error) {
	t, ok := s.topicsByName[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTopic, name)
	}

	return t, nil
}

// Session resolves a session by topic and time slot name.
//
// Returns:
//   - *types.Session: The resolved session
//   - error: ErrUnknownSession if no session matches the pair
func (s *Scheduler) Session(topic, slot string) (*types.Session, error) {
	sess, ok := s.sessionsByKey[fmt.Sprintf("%s - %s", slot, topic)]
	if !ok {
		return nil, fmt.Errorf("%w: topic %q in slot %q", ErrUnknownSession, topic, slot)
	}

	return sess, nil
}

// Fingerprint returns an xxh3 digest of the current working set.
//
// Two schedulers with identical assignment state produce equal fingerprints,
// which makes the digest useful for change detection and for verifying
// checkpoint round trips.
func (s *Scheduler) Fingerprint() uint64 {
	return snapshot.Capture(s.attendees, s.sessions).Fingerprint()
}
