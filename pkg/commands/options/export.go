package options

import (
	"io"
	"os"

	"github.com/spf13/cobra"
)

// ExportOptions
type ExportOptions struct {
	Out string
}

func AddExportArgs(cmd *cobra.Command, o *ExportOptions, def string) {
	cmd.Flags().StringVar(&o.Out, "out", def,
		`File to write, "-" for stdout.`)
}

// Create opens the destination. name overrides the flag when the flag was
// left empty.
func (o *ExportOptions) Create(name string) (io.WriteCloser, string, error) {
	out := o.Out
	if out == "" {
		out = name
	}
	if out == "-" {
		return nopCloser{os.Stdout}, out, nil
	}
	f, err := os.Create(out)
	if err != nil {
		return nil, out, err
	}
	return f, out, nil
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }
