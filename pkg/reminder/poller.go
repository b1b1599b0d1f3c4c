// Package reminder wakes on an interval and notifies about alarm entries
// whose scheduled moment is within a tolerance of now.
package reminder

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"

	"tableflip.dev/tourdiary/pkg/entry"
	"tableflip.dev/tourdiary/pkg/notify"
)

const (
	DefaultInterval  = 60 * time.Second
	DefaultTolerance = 60 * time.Second

	Title = "Tour Diary Reminder"
)

// Clock supplies the current time to the poller.
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a function to Clock.
type ClockFunc func() time.Time

func (f ClockFunc) Now() time.Time { return f() }

// SystemClock reads the wall clock.
var SystemClock Clock = ClockFunc(time.Now)

// Poller scans alarm entries on every wake. Without Dedupe an entry may be
// reminded on consecutive wakes when its time sits near a wake boundary.
type Poller struct {
	Entries   func() []entry.Entry
	Notifier  notify.Notifier
	Clock     Clock
	Interval  time.Duration
	Tolerance time.Duration
	// Dedupe suppresses a second reminder for the same stored entry.
	Dedupe bool
	// OnReminder, when set, sees every due entry after it was offered to the
	// notifier.
	OnReminder func(entry.Entry)

	mu   sync.Mutex
	sent map[string]struct{}
	cron *cron.Cron
	done chan struct{}
}

// Check runs one scan at now and returns the entries that were due.
func (p *Poller) Check(now time.Time) []entry.Entry {
	if p.Entries == nil {
		return nil
	}
	tolerance := p.Tolerance
	if tolerance <= 0 {
		tolerance = DefaultTolerance
	}

	p.mu.Lock()
	var due []entry.Entry
	for i, e := range p.Entries() {
		if !e.HasAlarm || e.DateTime.IsZero() {
			continue
		}
		diff := e.DateTime.Sub(now)
		if diff < 0 {
			diff = -diff
		}
		if diff >= tolerance {
			continue
		}
		if p.Dedupe {
			key := fmt.Sprintf("%d@%d", i, e.DateTime.Unix())
			if p.sent == nil {
				p.sent = make(map[string]struct{})
			}
			if _, ok := p.sent[key]; ok {
				continue
			}
			p.sent[key] = struct{}{}
		}
		due = append(due, e)
	}
	p.mu.Unlock()

	for _, e := range due {
		p.emit(e)
	}
	return due
}

func (p *Poller) emit(e entry.Entry) {
	if p.OnReminder != nil {
		defer p.OnReminder(e)
	}
	if p.Notifier == nil || p.Notifier.Permission() != notify.Granted {
		log.Debug().Str("topic", e.Topic).Msg("reminder: notifications unavailable, skipping")
		return
	}
	if err := p.Notifier.Notify(Title, Body(e)); err != nil {
		log.Debug().Err(err).Str("topic", e.Topic).Msg("reminder: notify failed")
	}
}

// Body is the notification text for e.
func Body(e entry.Entry) string {
	return fmt.Sprintf("Event: %s at %s", e.Topic, e.DateTime.Clock())
}

// Run is one wake on the poller's clock. It satisfies cron.Job.
func (p *Poller) Run() {
	clock := p.Clock
	if clock == nil {
		clock = SystemClock
	}
	p.Check(clock.Now())
}

// Start schedules Run every Interval until ctx is done or Stop is called.
// Starting again replaces the previous schedule.
func (p *Poller) Start(ctx context.Context) {
	p.Stop()

	interval := p.Interval
	if interval <= 0 {
		interval = DefaultInterval
	}
	c := cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DefaultLogger)))
	c.Schedule(cron.Every(interval), p)
	done := make(chan struct{})

	p.mu.Lock()
	p.cron = c
	p.done = done
	p.mu.Unlock()
	c.Start()

	go func() {
		select {
		case <-ctx.Done():
			p.stop(done)
		case <-done:
		}
	}()
}

// Stop halts the schedule and waits for a running wake to finish.
func (p *Poller) Stop() {
	p.mu.Lock()
	done := p.done
	p.mu.Unlock()
	p.stop(done)
}

// stop tears down the schedule started with done, if it is still current.
func (p *Poller) stop(done chan struct{}) {
	p.mu.Lock()
	if done == nil || p.done != done {
		p.mu.Unlock()
		return
	}
	c := p.cron
	p.cron, p.done = nil, nil
	close(done)
	p.mu.Unlock()
	<-c.Stop().Done()
}
