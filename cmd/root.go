// Package cmd implements the eventsched command-line interface: the thin
// orchestration layer that loads an event definition, decides scheduling
// options, and renders the result.
package cmd

import (
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	scheduler "github.com/jikamens/event-scheduler"
	"github.com/jikamens/event-scheduler/internal/logging"
	"github.com/jikamens/event-scheduler/order"
	"github.com/jikamens/event-scheduler/types"
)

// Execute runs the root command.
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	v := viper.New()

	rootCmd := &cobra.Command{
		Use:           "eventsched",
		Short:         "Match event attendees with topics and time slots based on preferences",
		Long: "eventsched reads a YAML event definition (time slots, topics with per-slot\n" +
			"capacities, attendees with ranked topic preferences) and produces a\n" +
			"reasonably good schedule honoring capacity and time-slot exclusivity.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := rootCmd.PersistentFlags()
	flags.String("log-level", "warn", "log level: debug, info, warn, error")
	flags.Int("improve-sweeps", 0, "improve phase sweep limit (0 = one per attendee)")
	flags.Uint64("seed", 0, "shuffle attendee tie-breaks with this seed (0 = order by name)")

	_ = v.BindPFlag("logLevel", flags.Lookup("log-level"))
	_ = v.BindPFlag("improveSweepLimit", flags.Lookup("improve-sweeps"))
	_ = v.BindPFlag("seed", flags.Lookup("seed"))
	v.SetEnvPrefix("EVENTSCHED")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	rootCmd.AddCommand(
		newScheduleCmd(v),
		newValidateCmd(),
	)

	return rootCmd
}

// newScheduler builds a Scheduler from the bound settings.
func newScheduler(v *viper.Viper) (*scheduler.Scheduler, error) {
	cfg := scheduler.DefaultConfig()
	cfg.ImproveSweepLimit = v.GetInt("improveSweepLimit")

	var orderer types.AttendeeOrderer = order.NewByName()
	if seed := v.GetUint64("seed"); seed != 0 {
		orderer = order.NewShuffled(seed)
	}

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel(v.GetString("logLevel"))})

	return scheduler.New(&cfg,
		scheduler.WithLogger(logging.NewSlog(slog.New(handler))),
		scheduler.WithOrderer(orderer),
	)
}

func logLevel(name string) slog.Level {
	switch strings.ToLower(name) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}
