package commands

import (
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/tourdiary/pkg/commands/options"
	"tableflip.dev/tourdiary/pkg/runner/day"
)

func addDay(topLevel *cobra.Command) {
	oo := &options.OnOptions{}

	cmd := &cobra.Command{
		Use:   "day",
		Short: "Show the entries on one day",
		Example: `
tourdiary day
tourdiary day --on=2024-5-1
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			on, err := oo.GetOn(time.Now())
			if err != nil {
				return output.HandleError(err)
			}
			s, err := openSession(cmd.Context())
			if err != nil {
				return output.HandleError(err)
			}
			d := day.Day{Diary: s.diary, On: on}
			return output.HandleError(d.Do(cmd.Context()))
		},
	}

	options.AddOnArgs(cmd, oo)
	options.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}
