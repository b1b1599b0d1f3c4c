package list

import (
	"context"
	"io"

	"github.com/fatih/color"

	"tableflip.dev/tourdiary/pkg/app"
	"tableflip.dev/tourdiary/pkg/commands/options"
	"tableflip.dev/tourdiary/pkg/printers"
)

type List struct {
	Diary   *app.Diary
	Filter  string
	Format  options.FormatOptions
	Out     io.Writer
	Printer *printers.PrettyPrint
}

func (n *List) Do(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	rows := n.Diary.List(n.Filter)

	if n.Format.Structured() {
		out := n.Out
		if out == nil {
			out = color.Output
		}
		// Same columns as the table.
		return n.Format.Write(out, rows)
	}

	pp := n.Printer
	if pp == nil {
		pp = &printers.PrettyPrint{Out: n.Out}
	}
	pp.List(rows...)
	return nil
}
