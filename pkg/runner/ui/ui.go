package ui

import (
	"context"
	"os"
	"time"

	"tableflip.dev/tourdiary/pkg/app"
	"tableflip.dev/tourdiary/pkg/notify"
	teaui "tableflip.dev/tourdiary/pkg/tui/app"
)

type UI struct {
	Diary     *app.Diary
	Interval  time.Duration
	Tolerance time.Duration
	Dedupe    bool
}

func (d *UI) Do(ctx context.Context) error {
	// Terminal notifications would draw over the alt screen; the banner
	// takes their place.
	if _, ok := d.Diary.Notifier.(*notify.Terminal); ok {
		d.Diary.Notifier = notify.None{}
	}

	dir, err := os.Getwd()
	if err != nil {
		return err
	}
	return teaui.Run(ctx, d.Diary, teaui.Options{
		Interval:  d.Interval,
		Tolerance: d.Tolerance,
		Dedupe:    d.Dedupe,
		ExportDir: dir,
	})
}
