package commands

import (
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/tourdiary/pkg/commands/options"
	"tableflip.dev/tourdiary/pkg/runner/list"
)

func addList(topLevel *cobra.Command) {
	fo := &options.FormatOptions{}
	var filter string

	cmd := &cobra.Command{
		Use:     "list [filter]",
		Aliases: []string{"ls"},
		Short:   "List entries by date, optionally filtered",
		Example: `
tourdiary list
tourdiary list kyoto
tourdiary list --filter=temple -o yaml
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if filter == "" {
				filter = strings.Join(args, " ")
			}
			s, err := openSession(cmd.Context())
			if err != nil {
				return output.HandleError(err)
			}
			l := list.List{
				Diary:  s.diary,
				Filter: filter,
				Format: *fo,
				Out:    cmd.OutOrStdout(),
			}
			return output.HandleError(l.Do(cmd.Context()))
		},
	}

	cmd.Flags().StringVar(&filter, "filter", "", "Case-insensitive text matched against topic, place and purpose.")
	options.AddFormatArg(cmd, fo)
	options.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}
