package app

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"tableflip.dev/tourdiary/pkg/entry"
	"tableflip.dev/tourdiary/pkg/notify"
	"tableflip.dev/tourdiary/pkg/reminder"
	"tableflip.dev/tourdiary/pkg/store"
)

type memoryPersistence struct {
	mu      sync.Mutex
	entries []entry.Entry
	fail    error
	loads   int
}

func (m *memoryPersistence) Load(context.Context) error {
	m.mu.Lock()
	m.loads++
	m.mu.Unlock()
	return nil
}

func (m *memoryPersistence) Entries() []entry.Entry {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]entry.Entry(nil), m.entries...)
}

func (m *memoryPersistence) Append(e entry.Entry) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail != nil {
		return 0, m.fail
	}
	m.entries = append(m.entries, e)
	return len(m.entries) - 1, nil
}

func (m *memoryPersistence) Persist() error   { return m.fail }
func (m *memoryPersistence) Location() string { return "memory" }

func (m *memoryPersistence) Watch(ctx context.Context) (<-chan store.Event, error) {
	ch := make(chan store.Event)
	go func() {
		<-ctx.Done()
		close(ch)
	}()
	return ch, nil
}

type countingNotifier struct {
	requests int
	state    notify.Permission
}

func (c *countingNotifier) RequestPermission() notify.Permission {
	c.requests++
	c.state = notify.Granted
	return c.state
}

func (c *countingNotifier) Permission() notify.Permission { return c.state }

func (c *countingNotifier) Notify(string, string) error { return nil }

func fixedClock(t time.Time) reminder.Clock {
	return reminder.ClockFunc(func() time.Time { return t })
}

func newDiary(t *testing.T, entries ...entry.Entry) (*Diary, *memoryPersistence, *countingNotifier) {
	t.Helper()
	mp := &memoryPersistence{entries: entries}
	n := &countingNotifier{}
	d := New(mp, n)
	d.Clock = fixedClock(time.Date(2024, time.May, 15, 12, 0, 0, 0, time.Local))
	return d, mp, n
}

func TestSubmitAppendsAndRequestsPermission(t *testing.T) {
	d, mp, n := newDiary(t)

	e, err := d.Submit(context.Background(), Form{
		Topic:    "  Temple ",
		Place:    "Kyoto",
		Purpose:  "Visit",
		DateTime: "2024-05-01T09:00",
		Alarm:    true,
	})
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if e.Topic != "Temple" || !e.HasAlarm {
		t.Fatalf("unexpected entry %+v", e)
	}
	if got := len(mp.Entries()); got != 1 {
		t.Fatalf("expected 1 stored entry, got %d", got)
	}
	if n.requests != 1 {
		t.Fatalf("expected one permission request, got %d", n.requests)
	}
}

// interleavingNotifier submits another entry while the first submit is
// asking for permission, the way a concurrent MCP request could.
type interleavingNotifier struct {
	countingNotifier
	diary *Diary
	form  *Form
}

func (n *interleavingNotifier) RequestPermission() notify.Permission {
	if f := n.form; f != nil {
		n.form = nil
		_, _ = n.diary.Submit(context.Background(), *f)
	}
	return n.countingNotifier.RequestPermission()
}

func TestSubmitReturnsStoredIndexDespiteInterleavedAppend(t *testing.T) {
	mp := &memoryPersistence{entries: []entry.Entry{
		entry.New("Existing", "Kyoto", "Visit", time.Date(2024, time.May, 1, 9, 0, 0, 0, time.Local), false),
	}}
	n := &interleavingNotifier{form: &Form{Topic: "Second", DateTime: "2024-05-03T09:00"}}
	d := New(mp, n)
	n.diary = d

	got, err := d.Submit(context.Background(), Form{Topic: "First", DateTime: "2024-05-02T09:00"})
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if got.Index != 1 || got.Topic != "First" {
		t.Fatalf("expected First at index 1, got %d %q", got.Index, got.Topic)
	}
	stored, err := d.Entry(got.Index)
	if err != nil {
		t.Fatalf("Entry: %v", err)
	}
	if stored.Topic != "First" {
		t.Fatalf("index %d holds %q, not the submitted entry", got.Index, stored.Topic)
	}
	if len(d.Entries()) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(d.Entries()))
	}
}

func TestSubmitValidation(t *testing.T) {
	d, mp, n := newDiary(t)

	if _, err := d.Submit(context.Background(), Form{Topic: " ", DateTime: "2024-05-01T09:00"}); !errors.Is(err, ErrTopicRequired) {
		t.Fatalf("expected ErrTopicRequired, got %v", err)
	}
	if _, err := d.Submit(context.Background(), Form{Topic: "Temple", DateTime: "soon"}); !errors.Is(err, ErrInvalidDateTime) {
		t.Fatalf("expected ErrInvalidDateTime, got %v", err)
	}
	if len(mp.Entries()) != 0 || n.requests != 0 {
		t.Fatalf("rejected submissions must not store or request permission")
	}
}

func TestSubmitWriteFailureKeepsState(t *testing.T) {
	d, mp, _ := newDiary(t)
	mp.fail = errors.New("disk full")

	if _, err := d.Submit(context.Background(), Form{Topic: "Temple", DateTime: "2024-05-01T09:00"}); err == nil {
		t.Fatalf("expected write error")
	}
	if len(d.Entries()) != 0 {
		t.Fatalf("failed write must not change entries")
	}
}

func TestSubmitWithoutPersistence(t *testing.T) {
	d := New(nil, nil)
	if _, err := d.Submit(context.Background(), Form{Topic: "x", DateTime: "2024-05-01"}); !errors.Is(err, ErrNoPersistence) {
		t.Fatalf("expected ErrNoPersistence, got %v", err)
	}
}

func TestCalendarNavigation(t *testing.T) {
	d, _, _ := newDiary(t,
		entry.New("Temple", "Kyoto", "Visit", time.Date(2024, time.May, 1, 9, 0, 0, 0, time.Local), true),
		entry.New("Beach", "Goa", "Rest", time.Date(2024, time.June, 3, 9, 0, 0, 0, time.Local), false),
	)

	g := d.Calendar()
	if g.Month.Month != time.May || g.Month.Year != 2024 {
		t.Fatalf("expected May 2024, got %s", g.Month)
	}
	if !g.Days[0].HasEvents {
		t.Fatalf("expected 1 May to be marked")
	}

	g = d.ChangeMonth(1)
	if g.Month.Month != time.June || !g.Days[2].HasEvents {
		t.Fatalf("expected June with 3rd marked, got %s", g.Month)
	}

	g = d.ChangeMonth(-6)
	if g.Month.Month != time.December || g.Month.Year != 2023 {
		t.Fatalf("expected December 2023, got %s", g.Month)
	}
}

func TestEventsForDayKeepsStoredIndex(t *testing.T) {
	d, _, _ := newDiary(t,
		entry.New("Beach", "Goa", "Rest", time.Date(2024, time.June, 3, 9, 0, 0, 0, time.Local), false),
		entry.New("Temple", "Kyoto", "Visit", time.Date(2024, time.May, 1, 9, 0, 0, 0, time.Local), true),
	)

	got := d.EventsForDay(time.Date(2024, time.May, 1, 0, 0, 0, 0, time.Local))
	if len(got) != 1 || got[0].Index != 1 || got[0].Topic != "Temple" {
		t.Fatalf("unexpected events %+v", got)
	}
	if none := d.EventsForDay(time.Date(2024, time.May, 2, 0, 0, 0, 0, time.Local)); len(none) != 0 {
		t.Fatalf("expected no events, got %+v", none)
	}
}

func TestListFiltersAndSorts(t *testing.T) {
	d, _, _ := newDiary(t,
		entry.New("Beach", "Goa", "Rest", time.Date(2024, time.June, 3, 9, 0, 0, 0, time.Local), false),
		entry.New("Temple", "Kyoto", "Visit", time.Date(2024, time.May, 1, 9, 0, 0, 0, time.Local), true),
	)

	rows := d.List("")
	if len(rows) != 2 || rows[0].Place != "Kyoto" {
		t.Fatalf("expected date order, got %+v", rows)
	}
	rows = d.List("goa")
	if len(rows) != 1 || rows[0].Purpose != "Rest" {
		t.Fatalf("unexpected filter result %+v", rows)
	}
}

func TestExports(t *testing.T) {
	d, _, _ := newDiary(t)

	var buf bytes.Buffer
	if err := d.ExportCSV(&buf); !errors.Is(err, ErrNoEntries) {
		t.Fatalf("expected ErrNoEntries, got %v", err)
	}
	if _, err := d.ExportPDF(&buf, 0); !errors.Is(err, ErrEntryNotFound) {
		t.Fatalf("expected ErrEntryNotFound, got %v", err)
	}

	if _, err := d.Submit(context.Background(), Form{Topic: "Old Town", Place: "Prague", DateTime: "2024-05-01T09:00"}); err != nil {
		t.Fatalf("Submit: %v", err)
	}

	buf.Reset()
	if err := d.ExportCSV(&buf); err != nil {
		t.Fatalf("ExportCSV: %v", err)
	}
	if !strings.Contains(buf.String(), `"Old Town","Prague"`) {
		t.Fatalf("unexpected csv %q", buf.String())
	}

	buf.Reset()
	name, err := d.ExportPDF(&buf, 0)
	if err != nil {
		t.Fatalf("ExportPDF: %v", err)
	}
	if name != "event_Old_Town.pdf" {
		t.Fatalf("unexpected filename %q", name)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF")) {
		t.Fatalf("expected a pdf document")
	}
	if _, err := d.ExportPDF(&buf, 1); !errors.Is(err, ErrEntryNotFound) {
		t.Fatalf("expected ErrEntryNotFound for index 1, got %v", err)
	}

	buf.Reset()
	if err := d.ExportICS(&buf); err != nil {
		t.Fatalf("ExportICS: %v", err)
	}
	if !strings.Contains(buf.String(), "BEGIN:VEVENT") {
		t.Fatalf("expected an event in %q", buf.String())
	}
}

func TestReloadAndPoller(t *testing.T) {
	at := time.Date(2024, time.May, 15, 12, 0, 0, 0, time.Local)
	d, mp, n := newDiary(t, entry.New("Temple", "", "", at, true))
	n.state = notify.Granted

	if err := d.Reload(context.Background()); err != nil {
		t.Fatalf("Reload: %v", err)
	}
	if mp.loads != 1 {
		t.Fatalf("expected one load, got %d", mp.loads)
	}

	p := d.Poller(time.Minute, time.Minute, false)
	if due := p.Check(at); len(due) != 1 {
		t.Fatalf("expected one due entry, got %d", len(due))
	}
}
