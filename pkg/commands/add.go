package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/tourdiary/pkg/commands/options"
	"tableflip.dev/tourdiary/pkg/runner/add"
)

func addAdd(topLevel *cobra.Command) {
	eo := &options.EntryOptions{}
	ino := &options.InteractiveOptions{}

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a tour entry",
		Example: `
tourdiary add --topic="Temple" --place="Kyoto" --purpose="Sightseeing" --at="2024-05-01T09:00" --alarm
tourdiary add -i
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			s, err := openSession(cmd.Context())
			if err != nil {
				return output.HandleError(err)
			}

			a := add.Add{
				Diary:       s.diary,
				Form:        eo.Form(),
				Interactive: ino.Resolve(cmd, eo.Topic != ""),
			}
			return output.HandleError(a.Do(cmd.Context()))
		},
	}

	options.AddEntryArgs(cmd, eo)
	options.InteractiveArgs(cmd, ino)
	options.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}
