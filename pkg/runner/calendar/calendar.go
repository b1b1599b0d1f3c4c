package calendar

import (
	"context"
	"time"

	"tableflip.dev/tourdiary/pkg/app"
	cal "tableflip.dev/tourdiary/pkg/calendar"
	"tableflip.dev/tourdiary/pkg/printers"
)

type Calendar struct {
	Diary   *app.Diary
	Month   cal.Month
	Today   time.Time
	Printer *printers.PrettyPrint
}

func (n *Calendar) Do(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	n.Diary.SetMonth(n.Month)
	g := n.Diary.Calendar()

	pp := n.Printer
	if pp == nil {
		pp = &printers.PrettyPrint{}
	}
	pp.Calendar(g, n.Today)
	return nil
}
