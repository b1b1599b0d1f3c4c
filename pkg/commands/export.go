package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/tourdiary/pkg/commands/options"
	pkgexport "tableflip.dev/tourdiary/pkg/export"
	"tableflip.dev/tourdiary/pkg/runner/export"
)

func addExport(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export entries as CSV, a single entry as PDF, or everything as iCalendar",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addExportKind(cmd, export.KindCSV, pkgexport.CSVFilename, "Export every entry as CSV", `
tourdiary export csv
tourdiary export csv --out=-
`)
	addExportKind(cmd, export.KindPDF, "", "Export one entry as a PDF document", `
tourdiary export pdf --index=0
`)
	addExportKind(cmd, export.KindICS, pkgexport.ICSFilename, "Export every entry as an iCalendar file", `
tourdiary export ics --out=trip.ics
`)

	topLevel.AddCommand(cmd)
}

func addExportKind(parent *cobra.Command, kind export.Kind, def, short, example string) {
	eo := &options.ExportOptions{}
	var index int

	cmd := &cobra.Command{
		Use:       string(kind),
		Short:     short,
		Example:   example,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			s, err := openSession(cmd.Context())
			if err != nil {
				return output.HandleError(err)
			}
			e := export.Export{
				Diary:   s.diary,
				Kind:    kind,
				Index:   index,
				Options: *eo,
			}
			return output.HandleError(e.Do(cmd.Context()))
		},
	}

	if kind == export.KindPDF {
		cmd.Flags().IntVar(&index, "index", 0, "Position of the entry in the stored sequence, as shown by 'tourdiary day'.")
	}
	options.AddExportArgs(cmd, eo, def)
	options.AddOutputArg(cmd, output)
	parent.AddCommand(cmd)
}
