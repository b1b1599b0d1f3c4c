package options

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// OutputOptions
type OutputOptions struct {
	JSON bool
}

func AddOutputArg(cmd *cobra.Command, po *OutputOptions) {
	cmd.Flags().BoolVar(&po.JSON, "json", false,
		"Output as JSON.")
}

func (o *OutputOptions) HandleError(err error) error {
	if o.JSON && err != nil {
		out := map[string]string{
			"error": err.Error(),
		}
		b, err := json.Marshal(out)
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintln(color.Output, string(b))
		return nil
	}
	return err
}

// FormatOptions selects structured output for listing commands.
type FormatOptions struct {
	Output string
}

func AddFormatArg(cmd *cobra.Command, fo *FormatOptions) {
	cmd.Flags().StringVarP(&fo.Output, "output", "o", "",
		"Output format. One of 'yaml' or 'json'. Defaults to a table.")
}

// Structured reports whether a machine format was requested.
func (fo *FormatOptions) Structured() bool {
	return fo.Output != ""
}

// Write encodes v in the requested format.
func (fo *FormatOptions) Write(w io.Writer, v interface{}) error {
	switch strings.ToLower(fo.Output) {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown output format %q (expected json or yaml)", fo.Output)
	}
}
