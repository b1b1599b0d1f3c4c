package printers

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/tourdiary/pkg/calendar"
)

var weekdays = []string{"Su", "Mo", "Tu", "We", "Th", "Fr", "Sa"}

// Calendar prints the month grid. Days with events are bold and followed by
// a dot; today is underlined.
func (pp *PrettyPrint) Calendar(g calendar.Grid, today time.Time) {
	tf := color.New(color.FgWhite, color.Italic)
	_, _ = tf.Fprintln(pp.out(), pad(g.Month.String(), len(weekdays)*4-1))

	h := color.New(color.Faint)
	_, _ = h.Fprintln(pp.out(), strings.Join(weekdays, "  "))

	l1 := color.New(color.Faint, color.FgWhite)
	l2 := color.New(color.Bold, color.FgHiWhite)
	mark := color.New(color.FgHiYellow)

	for _, week := range g.Weeks() {
		for i, d := range week {
			if i > 0 {
				_, _ = fmt.Fprint(pp.out(), " ")
			}
			if d == nil {
				// Pad out the start of the month.
				_, _ = fmt.Fprint(pp.out(), "   ")
				continue
			}
			p := l1
			if d.HasEvents {
				p = l2
			}
			if sameDay(d.Date, today) {
				p = color.New(append([]color.Attribute{color.Underline}, attrs(d.HasEvents)...)...)
			}
			_, _ = p.Fprintf(pp.out(), "%2d", d.Day)
			if d.HasEvents {
				_, _ = mark.Fprint(pp.out(), "•")
			} else {
				_, _ = fmt.Fprint(pp.out(), " ")
			}
		}
		_, _ = fmt.Fprint(pp.out(), "\n")
	}
	pp.NewLine()
}

func attrs(events bool) []color.Attribute {
	if events {
		return []color.Attribute{color.Bold, color.FgHiWhite}
	}
	return []color.Attribute{color.FgWhite}
}

func sameDay(a, b time.Time) bool {
	if b.IsZero() {
		return false
	}
	ay, am, ad := a.Date()
	by, bm, bd := b.Local().Date()
	return ay == by && am == bm && ad == bd
}
