package commands

import (
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/tourdiary/pkg/commands/options"
	"tableflip.dev/tourdiary/pkg/runner/calendar"
)

func addCalendar(topLevel *cobra.Command) {
	mo := &options.MonthOptions{}

	cmd := &cobra.Command{
		Use:     "calendar",
		Aliases: []string{"cal"},
		Short:   "Show a month with the days that have entries marked",
		Example: `
tourdiary calendar
tourdiary calendar --month=2024-05 --offset=1
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			now := time.Now()
			month, err := mo.GetMonth(now)
			if err != nil {
				return output.HandleError(err)
			}
			s, err := openSession(cmd.Context())
			if err != nil {
				return output.HandleError(err)
			}
			c := calendar.Calendar{
				Diary: s.diary,
				Month: month,
				Today: now,
			}
			return output.HandleError(c.Do(cmd.Context()))
		},
	}

	options.AddMonthArgs(cmd, mo)
	options.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}
