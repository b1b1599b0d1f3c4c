package reminder

import (
	"context"
	"sync"
	"testing"
	"time"

	"tableflip.dev/tourdiary/pkg/entry"
	"tableflip.dev/tourdiary/pkg/notify"
)

type recordingNotifier struct {
	mu         sync.Mutex
	permission notify.Permission
	titles     []string
	bodies     []string
}

func (r *recordingNotifier) RequestPermission() notify.Permission { return r.permission }

func (r *recordingNotifier) Permission() notify.Permission { return r.permission }

func (r *recordingNotifier) Notify(title, body string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.titles = append(r.titles, title)
	r.bodies = append(r.bodies, body)
	return nil
}

func (r *recordingNotifier) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.bodies)
}

// fakeClock advances only when told to.
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

var nine = time.Date(2024, time.May, 1, 9, 0, 0, 0, time.Local)

func fixedEntries(entries ...entry.Entry) func() []entry.Entry {
	return func() []entry.Entry { return entries }
}

func TestCheckExactTimeNotifiesOnce(t *testing.T) {
	rec := &recordingNotifier{permission: notify.Granted}
	p := &Poller{
		Entries: fixedEntries(
			entry.New("Temple", "Kyoto", "Sightseeing", nine, true),
			entry.New("Market", "Osaka", "Shopping", nine, false),
		),
		Notifier: rec,
	}

	due := p.Check(nine)
	if len(due) != 1 || due[0].Topic != "Temple" {
		t.Fatalf("expected only the alarm entry, got %#v", due)
	}
	if rec.count() != 1 {
		t.Fatalf("expected exactly one notification, got %d", rec.count())
	}
	if rec.titles[0] != Title || rec.bodies[0] != "Event: Temple at 9:00:00 AM" {
		t.Fatalf("unexpected notification %q / %q", rec.titles[0], rec.bodies[0])
	}
}

func TestCheckToleranceIsStrict(t *testing.T) {
	rec := &recordingNotifier{permission: notify.Granted}
	p := &Poller{
		Entries:   fixedEntries(entry.New("Temple", "Kyoto", "Sightseeing", nine, true)),
		Notifier:  rec,
		Tolerance: time.Minute,
	}

	if due := p.Check(nine.Add(-time.Minute)); len(due) != 0 {
		t.Fatalf("diff equal to tolerance must not fire")
	}
	if due := p.Check(nine.Add(59 * time.Second)); len(due) != 1 {
		t.Fatalf("diff inside tolerance must fire")
	}
	if due := p.Check(nine.Add(2 * time.Minute)); len(due) != 0 {
		t.Fatalf("diff beyond tolerance must not fire")
	}
}

func TestCheckRepeatsWithoutDedupe(t *testing.T) {
	rec := &recordingNotifier{permission: notify.Granted}
	clock := &fakeClock{now: nine.Add(-30 * time.Second)}
	p := &Poller{
		Entries:  fixedEntries(entry.New("Temple", "Kyoto", "Sightseeing", nine, true)),
		Notifier: rec,
		Clock:    clock,
	}

	p.Run()
	clock.Advance(45 * time.Second)
	p.Run()

	if rec.count() != 2 {
		t.Fatalf("expected a reminder on both wakes, got %d", rec.count())
	}
}

func TestCheckDedupeSuppressesRepeat(t *testing.T) {
	rec := &recordingNotifier{permission: notify.Granted}
	clock := &fakeClock{now: nine.Add(-30 * time.Second)}
	p := &Poller{
		Entries:  fixedEntries(entry.New("Temple", "Kyoto", "Sightseeing", nine, true)),
		Notifier: rec,
		Clock:    clock,
		Dedupe:   true,
	}

	p.Run()
	clock.Advance(45 * time.Second)
	p.Run()

	if rec.count() != 1 {
		t.Fatalf("expected one reminder with dedupe, got %d", rec.count())
	}
}

func TestCheckSkipsWhenUnauthorized(t *testing.T) {
	rec := &recordingNotifier{permission: notify.Denied}
	var hooked []string
	p := &Poller{
		Entries:    fixedEntries(entry.New("Temple", "Kyoto", "Sightseeing", nine, true)),
		Notifier:   rec,
		OnReminder: func(e entry.Entry) { hooked = append(hooked, e.Topic) },
	}

	due := p.Check(nine)
	if len(due) != 1 {
		t.Fatalf("entry is still due, got %d", len(due))
	}
	if rec.count() != 0 {
		t.Fatalf("expected no notification without permission")
	}
	if len(hooked) != 1 {
		t.Fatalf("expected the reminder hook to run, got %v", hooked)
	}
}

func TestCheckSeesAppendedEntries(t *testing.T) {
	rec := &recordingNotifier{permission: notify.Granted}
	var mu sync.Mutex
	var list []entry.Entry
	p := &Poller{
		Entries: func() []entry.Entry {
			mu.Lock()
			defer mu.Unlock()
			return append([]entry.Entry(nil), list...)
		},
		Notifier: rec,
	}

	if due := p.Check(nine); len(due) != 0 {
		t.Fatalf("expected nothing due on an empty diary")
	}
	mu.Lock()
	list = append(list, entry.New("Temple", "Kyoto", "Sightseeing", nine, true))
	mu.Unlock()
	if due := p.Check(nine); len(due) != 1 {
		t.Fatalf("expected the appended entry on the next wake")
	}
}

func TestStartStop(t *testing.T) {
	rec := &recordingNotifier{permission: notify.Granted}
	p := &Poller{
		Entries:  fixedEntries(entry.New("Temple", "Kyoto", "Sightseeing", nine, true)),
		Notifier: rec,
		Clock:    ClockFunc(func() time.Time { return nine }),
		Interval: time.Second,
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	p.Start(ctx)

	deadline := time.Now().Add(3 * time.Second)
	for rec.count() == 0 && time.Now().Before(deadline) {
		time.Sleep(50 * time.Millisecond)
	}
	p.Stop()

	if rec.count() == 0 {
		t.Fatalf("expected the scheduled wake to notify")
	}
	after := rec.count()
	time.Sleep(1500 * time.Millisecond)
	if rec.count() != after {
		t.Fatalf("poller kept running after Stop")
	}
}

func TestRestartAndStopWithoutCancel(t *testing.T) {
	p := &Poller{
		Entries:  fixedEntries(),
		Interval: time.Hour,
	}
	ctx := context.Background()

	p.Start(ctx)
	first := p.done
	p.Start(ctx)
	second := p.done
	if first == second {
		t.Fatalf("restart should install a new schedule")
	}
	select {
	case <-first:
	default:
		t.Fatalf("first schedule still running after restart")
	}

	p.Stop()
	select {
	case <-second:
	default:
		t.Fatalf("Stop left the schedule running under a live context")
	}
	if p.cron != nil || p.done != nil {
		t.Fatalf("Stop should clear the schedule")
	}
	// A second Stop is a no-op.
	p.Stop()
}
