// Package eventfile loads event definitions (time slots, topics, attendees)
// from YAML files and applies them to a Scheduler.
//
// Definitions are the input format of the command-line orchestration layer;
// library users can equally build schedulers through the registration calls
// directly.
package eventfile

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	scheduler "github.com/jikamens/event-scheduler"
)

// SessionSpec declares one session of a topic in the definition file.
type SessionSpec struct {
	// Slot names a time slot listed in the definition's timeSlots.
	Slot string `yaml:"slot" validate:"required"`

	// Capacity is the session's maximum number of attendees.
	Capacity int `yaml:"capacity" validate:"required,gt=0"`
}

// TopicSpec declares one topic and the sessions offering it.
type TopicSpec struct {
	Name     string        `yaml:"name" validate:"required"`
	Sessions []SessionSpec `yaml:"sessions" validate:"required,min=1,dive"`
}

// AttendeeSpec declares one attendee and their ordered topic preferences.
type AttendeeSpec struct {
	Name         string   `yaml:"name" validate:"required"`
	Organization string   `yaml:"organization" validate:"required"`
	Preferences  []string `yaml:"preferences" validate:"required,min=1,dive,required"`
}

// ManualSpec declares a manual (immutable) assignment to make before
// scheduling.
type ManualSpec struct {
	// Attendee is the identity key, "{organization} - {name}".
	Attendee string `yaml:"attendee" validate:"required"`

	// Topic names the topic to pin the attendee to.
	Topic string `yaml:"topic" validate:"required"`
}

// Definition is a complete event description.
type Definition struct {
	TimeSlots []string       `yaml:"timeSlots" validate:"required,min=1,unique,dive,required"`
	Topics    []TopicSpec    `yaml:"topics" validate:"required,min=1,dive"`
	Attendees []AttendeeSpec `yaml:"attendees" validate:"dive"`

	// Manual lists immutable assignments applied after registration.
	Manual []ManualSpec `yaml:"manualAssignments" validate:"dive"`
}

// Parse decodes and validates a YAML event definition.
//
// Returns:
//   - *Definition: The decoded definition
//   - error: YAML decode error or struct validation error
func Parse(data []byte) (*Definition, error) {
	var def Definition
	if err := yaml.Unmarshal(data, &def); err != nil {
		return nil, fmt.Errorf("parse event definition: %w", err)
	}

	if err := validator.New().Struct(&def); err != nil {
		return nil, fmt.Errorf("validate event definition: %w", err)
	}

	return &def, nil
}

// Load reads and parses a YAML event definition file.
func Load(path string) (*Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read event definition: %w", err)
	}

	return Parse(data)
}

// Apply registers the definition's catalog and attendees with the scheduler
// and performs any manual assignments.
//
// Registration errors (duplicate names, unknown references) and manual
// assignments that cannot be satisfied are returned as errors; the scheduler
// may be partially populated afterwards.
func (d *Definition) Apply(s *scheduler.Scheduler) error {
	if err := s.AddTimeSlots(d.TimeSlots...); err != nil {
		return err
	}

	for _, t := range d.Topics {
		specs := make([]scheduler.SessionSpec, 0, len(t.Sessions))
		for _, sess := range t.Sessions {
			specs = append(specs, scheduler.SessionSpec{Slot: sess.Slot, Capacity: sess.Capacity})
		}
		if err := s.AddTopic(t.Name, specs...); err != nil {
			return err
		}
	}

	for _, a := range d.Attendees {
		if err := s.AddAttendee(a.Name, a.Organization, a.Preferences...); err != nil {
			return err
		}
	}

	for _, m := range d.Manual {
		ok, err := s.ManuallyAssign(m.Attendee, m.Topic)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("manual assignment of %q to %q: no eligible session", m.Attendee, m.Topic)
		}
	}

	return nil
}
