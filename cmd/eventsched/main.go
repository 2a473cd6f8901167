// Command eventsched schedules event attendees into topic sessions from a
// YAML event definition.
package main

import (
	"fmt"
	"os"

	"github.com/jikamens/event-scheduler/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
