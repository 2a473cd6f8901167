package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jikamens/event-scheduler/eventfile"
)

func newScheduleCmd(v *viper.Viper) *cobra.Command {
	var plain bool

	cmd := &cobra.Command{
		Use:   "schedule <event-file>",
		Short: "Schedule attendees into sessions and print the result",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			def, err := eventfile.Load(args[0])
			if err != nil {
				return err
			}

			s, err := newScheduler(v)
			if err != nil {
				return err
			}
			if err := def.Apply(s); err != nil {
				return err
			}

			if err := s.Schedule(cmd.Context()); err != nil {
				return err
			}

			if plain {
				cmd.Print(s.Dump())
				return nil
			}
			cmd.Print(renderSchedule(s))

			return nil
		},
	}

	cmd.Flags().BoolVar(&plain, "plain", false, "print the raw dump instead of styled output")

	return cmd
}

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <event-file>",
		Short: "Check an event definition file without scheduling",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			def, err := eventfile.Load(args[0])
			if err != nil {
				return err
			}

			cmd.Printf("%s: ok (%d time slots, %d topics, %d attendees)\n",
				args[0], len(def.TimeSlots), len(def.Topics), len(def.Attendees))

			return nil
		},
	}
}
