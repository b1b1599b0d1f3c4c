package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/tourdiary/pkg/commands/options"
	"tableflip.dev/tourdiary/pkg/runner/info"
)

func addInfo(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "info",
		Short: "Details about configuration and where entries are stored.",
		Example: `
tourdiary info
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			s, err := openSession(cmd.Context())
			if err != nil {
				return output.HandleError(err)
			}
			n := info.Info{
				Settings:    s.settings,
				Persistence: s.diary.Persistence,
				Out:         cmd.OutOrStdout(),
			}
			return output.HandleError(n.Do(cmd.Context()))
		},
	}

	options.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}
