package day

import (
	"context"
	"time"

	"tableflip.dev/tourdiary/pkg/app"
	"tableflip.dev/tourdiary/pkg/printers"
)

type Day struct {
	Diary   *app.Diary
	On      time.Time
	Printer *printers.PrettyPrint
}

func (n *Day) Do(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	pp := n.Printer
	if pp == nil {
		pp = &printers.PrettyPrint{ShowIndex: true}
	}
	pp.Day(n.On.Format("Monday, 1/2/2006"), n.Diary.EventsForDay(n.On)...)
	return nil
}
