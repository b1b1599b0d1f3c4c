package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/tourdiary/pkg/runner/remind"
	"tableflip.dev/tourdiary/pkg/timeutil"
)

func addRemind(topLevel *cobra.Command) {
	var (
		interval  string
		tolerance string
		dedupe    bool
		watch     bool
	)

	cmd := &cobra.Command{
		Use:   "remind",
		Short: "Watch for alarms and notify when they are due",
		Long: `Run in the foreground, waking on an interval and notifying about every entry
with an alarm whose time is within the tolerance of now. Entries added from
another terminal are picked up without a restart.`,
		Example: `
tourdiary remind
tourdiary remind --interval=30s --dedupe
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			s, err := openSession(cmd.Context())
			if err != nil {
				return err
			}

			r := remind.Remind{
				Diary:     s.diary,
				Interval:  s.settings.ReminderInterval,
				Tolerance: s.settings.ReminderTolerance,
				Dedupe:    s.settings.ReminderDedupe || dedupe,
				Watch:     watch,
			}
			if interval != "" {
				if r.Interval, _, err = timeutil.ParseInterval(interval); err != nil {
					return err
				}
			}
			if tolerance != "" {
				if r.Tolerance, _, err = timeutil.ParseInterval(tolerance); err != nil {
					return err
				}
			}
			return r.Do(cmd.Context())
		},
	}

	cmd.Flags().StringVar(&interval, "interval", "", "How often to check, e.g. 1m or 30s. Defaults to reminder.interval.")
	cmd.Flags().StringVar(&tolerance, "tolerance", "", "How close to now an alarm must be. Defaults to reminder.tolerance.")
	cmd.Flags().BoolVar(&dedupe, "dedupe", false, "Notify at most once per entry.")
	cmd.Flags().BoolVar(&watch, "watch", true, "Reload when another process adds entries.")

	topLevel.AddCommand(cmd)
}
