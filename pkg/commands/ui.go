package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/tourdiary/pkg/runner/ui"
)

func addUI(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "ui",
		Short: "open the text-based user interface",
		Example: `
tourdiary ui
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd.Context())
			if err != nil {
				return err
			}
			i := ui.UI{
				Diary:     s.diary,
				Interval:  s.settings.ReminderInterval,
				Tolerance: s.settings.ReminderTolerance,
				Dedupe:    s.settings.ReminderDedupe,
			}
			return i.Do(cmd.Context())
		},
	}

	topLevel.AddCommand(cmd)
}
