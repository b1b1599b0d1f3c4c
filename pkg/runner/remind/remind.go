package remind

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"tableflip.dev/tourdiary/pkg/app"
	"tableflip.dev/tourdiary/pkg/entry"
	"tableflip.dev/tourdiary/pkg/store"
)

// Remind runs the reminder poller in the foreground until ctx is done. When
// Watch is set the diary is reloaded whenever another process appends.
type Remind struct {
	Diary     *app.Diary
	Interval  time.Duration
	Tolerance time.Duration
	Dedupe    bool
	Watch     bool

	// OnReminder sees every due entry.
	OnReminder func(entry.Entry)
}

func (n *Remind) Do(ctx context.Context) error {
	state := n.Diary.Notifier.RequestPermission()
	log.Info().
		Str("notifications", state.String()).
		Dur("interval", n.Interval).
		Int("entries", len(n.Diary.Entries())).
		Msg("reminders started")

	p := n.Diary.Poller(n.Interval, n.Tolerance, n.Dedupe)
	p.OnReminder = func(e entry.Entry) {
		log.Info().Str("topic", e.Topic).Str("at", e.DateTime.DateTime()).Msg("reminder due")
		if n.OnReminder != nil {
			n.OnReminder(e)
		}
	}
	p.Start(ctx)
	defer p.Stop()

	var events <-chan store.Event
	if n.Watch && n.Diary.Persistence != nil {
		ch, err := n.Diary.Persistence.Watch(ctx)
		if err != nil {
			log.Warn().Err(err).Msg("store watch unavailable, new entries need a restart")
		} else {
			events = ch
		}
	}

	for {
		select {
		case <-ctx.Done():
			log.Info().Msg("reminders stopped")
			return nil
		case ev, ok := <-events:
			if !ok {
				events = nil
				continue
			}
			if err := n.Diary.Reload(ctx); err != nil {
				log.Warn().Err(err).Msg("reload after store change failed")
				continue
			}
			log.Debug().Stringer("event", ev.Type).Int("entries", len(n.Diary.Entries())).Msg("diary reloaded")
		}
	}
}
