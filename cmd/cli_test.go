package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const testEvent = `
timeSlots: ["9:30", "10:30"]
topics:
  - name: Weaving
    sessions:
      - {slot: "9:30", capacity: 5}
      - {slot: "10:30", capacity: 5}
  - name: Yarn
    sessions:
      - {slot: "10:30", capacity: 5}
attendees:
  - {name: John Doe, organization: Acme, preferences: [Weaving, Yarn]}
  - {name: Jane Doe, organization: Widgets, preferences: [Yarn, Weaving]}
`

func writeEvent(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "event.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	root := newRootCmd()
	buf := &bytes.Buffer{}
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)

	err := root.Execute()

	return buf.String(), err
}

func TestScheduleCommand_Plain(t *testing.T) {
	path := writeEvent(t, testEvent)

	out, err := runCommand(t, "schedule", path, "--plain")
	require.NoError(t, err)
	require.Contains(t, out, "SESSION")
	require.Contains(t, out, "Acme - John Doe")
	require.Contains(t, out, "capacity 5")
}

func TestScheduleCommand_Styled(t *testing.T) {
	path := writeEvent(t, testEvent)

	out, err := runCommand(t, "schedule", path)
	require.NoError(t, err)
	require.Contains(t, out, "Attendees")
	require.Contains(t, out, "Sessions")
}

func TestScheduleCommand_Seeded(t *testing.T) {
	path := writeEvent(t, testEvent)

	out, err := runCommand(t, "schedule", path, "--plain", "--seed", "42")
	require.NoError(t, err)
	require.Contains(t, out, "SESSION")
}

func TestScheduleCommand_MissingFile(t *testing.T) {
	_, err := runCommand(t, "schedule", filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestValidateCommand(t *testing.T) {
	path := writeEvent(t, testEvent)

	out, err := runCommand(t, "validate", path)
	require.NoError(t, err)
	require.Contains(t, out, "ok (2 time slots, 2 topics, 2 attendees)")

	_, err = runCommand(t, "validate", writeEvent(t, "timeSlots: []"))
	require.Error(t, err)
}
