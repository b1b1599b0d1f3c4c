package printers

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/muesli/reflow/indent"
	"github.com/muesli/reflow/wordwrap"

	"tableflip.dev/tourdiary/pkg/entry"
	"tableflip.dev/tourdiary/pkg/listing"
)

const defaultWidth = 80

type PrettyPrint struct {
	// Out defaults to color.Output.
	Out io.Writer
	// Width bounds wrapped text in the day view.
	Width int
	// ShowIndex prefixes entries with their stored position.
	ShowIndex bool
}

func (pp *PrettyPrint) out() io.Writer {
	if pp.Out == nil {
		return color.Output
	}
	return pp.Out
}

func (pp *PrettyPrint) width() int {
	if pp.Width <= 0 {
		return defaultWidth
	}
	return pp.Width
}

func (pp *PrettyPrint) NewLine() {
	_, _ = fmt.Fprintln(pp.out())
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Fprintln(pp.out(), title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	_, _ = t.Fprint(pp.out(), title)
	_, _ = c.Fprintf(pp.out(), " - %d", count)

	switch count {
	case 1:
		_, _ = c.Fprintln(pp.out(), " entry")
	default:
		_, _ = c.Fprintln(pp.out(), " entries")
	}
}

// Submitted confirms a form submission.
func (pp *PrettyPrint) Submitted() {
	_, _ = color.New(color.FgGreen).Fprintln(pp.out(), "Data Submitted!")
}

// Message prints a faint italic line, used for empty states.
func (pp *PrettyPrint) Message(msg string) {
	f := color.New(color.Faint, color.Italic)
	_, _ = f.Fprintf(pp.out(), " %s\n", msg)
}

// Day prints the events falling on one date, or the empty affordance.
func (pp *PrettyPrint) Day(title string, events ...entry.Indexed) {
	pp.TitleWithCount(title, len(events))
	if len(events) == 0 {
		pp.Message("No events")
		pp.NewLine()
		return
	}

	b := color.New(color.Bold)
	y := color.New(color.FgHiYellow, color.Italic, color.Faint)
	f := color.New(color.Faint)

	for _, e := range events {
		if pp.ShowIndex {
			_, _ = y.Fprintf(pp.out(), "#%-3d ", e.Index)
		}
		alarm := ""
		if e.HasAlarm {
			alarm = " ⏰"
		}
		_, _ = b.Fprintf(pp.out(), "%s%s\n", e.Topic, alarm)
		_, _ = f.Fprintf(pp.out(), "    %s\n", e.DateTime.Clock())

		body := fmt.Sprintf("Place: %s\nPurpose: %s", e.Place, e.Purpose)
		_, _ = fmt.Fprintln(pp.out(), indent.String(wordwrap.String(body, pp.width()-4), 4))
	}
	pp.NewLine()
}

// List prints the filtered table.
func (pp *PrettyPrint) List(rows ...listing.Row) {
	if len(rows) == 0 {
		pp.Message("none")
		pp.NewLine()
		return
	}

	tbl := uitable.New()
	tbl.MaxColWidth = uint(pp.width() / 3)
	tbl.Wrap = true
	tbl.AddRow("DATE", "PLACE", "PURPOSE")
	for _, r := range rows {
		tbl.AddRow(r.Date, r.Place, r.Purpose)
	}
	_, _ = fmt.Fprintln(pp.out(), tbl)
}

func pad(s string, width int) string {
	if len(s) >= width {
		return s
	}
	mid := (width - len(s)) / 2
	return strings.Repeat(" ", mid) + s + strings.Repeat(" ", width-mid-len(s))
}
