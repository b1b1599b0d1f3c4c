package teaui

import (
	"context"
	"errors"
	"time"

	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/tourdiary/pkg/app"
	"tableflip.dev/tourdiary/pkg/entry"
)

// Options tune the in-process reminder poller.
type Options struct {
	Interval  time.Duration
	Tolerance time.Duration
	Dedupe    bool
	ExportDir string
}

// Run launches the Bubble Tea UI with a reminder poller whose reminders
// show up as a banner.
func Run(ctx context.Context, d *app.Diary, opts Options) error {
	m := New(d)
	m.ExportDir = opts.ExportDir
	d.Notifier.RequestPermission()

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))

	poller := d.Poller(opts.Interval, opts.Tolerance, opts.Dedupe)
	poller.OnReminder = func(e entry.Entry) {
		p.Send(reminderMsg{entry: e})
	}
	poller.Start(m.ctx)
	defer poller.Stop()

	_, err := p.Run()
	m.stopWatch()
	m.stop()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
