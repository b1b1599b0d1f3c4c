package options

import (
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

// InteractiveOptions
type InteractiveOptions struct {
	Interactive bool
}

func InteractiveArgs(cmd *cobra.Command, o *InteractiveOptions) {
	cmd.Flags().BoolVarP(&o.Interactive, "interactive", "i", false,
		`Interactive input of subcommands or options. Defaults to on when stdin is a terminal and nothing was given.`)
}

// Resolve turns prompting on when the flag was not given, nothing was
// provided on the command line and stdin is a terminal.
func (o *InteractiveOptions) Resolve(cmd *cobra.Command, provided bool) bool {
	if cmd.Flags().Changed("interactive") {
		return o.Interactive
	}
	if provided {
		return false
	}
	return IsTerminal(os.Stdin.Fd())
}

func IsTerminal(fd uintptr) bool {
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
