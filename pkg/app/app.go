package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"tableflip.dev/tourdiary/pkg/calendar"
	"tableflip.dev/tourdiary/pkg/entry"
	"tableflip.dev/tourdiary/pkg/export"
	"tableflip.dev/tourdiary/pkg/listing"
	"tableflip.dev/tourdiary/pkg/notify"
	"tableflip.dev/tourdiary/pkg/reminder"
	"tableflip.dev/tourdiary/pkg/store"
)

var (
	ErrNoPersistence   = errors.New("app: no persistence configured")
	ErrTopicRequired   = errors.New("app: topic is required")
	ErrInvalidDateTime = errors.New("app: invalid date and time")

	ErrNoEntries     = export.ErrNoEntries
	ErrEntryNotFound = export.ErrEntryNotFound
)

// Form is what the entry form collects before submission.
type Form struct {
	Topic    string
	Place    string
	Purpose  string
	DateTime string
	Alarm    bool
}

// Diary owns the application state: the entry store, the displayed month
// and the notification capability. CLIs, the TUI and the MCP server all
// drive one of these.
type Diary struct {
	Persistence store.Persistence
	Notifier    notify.Notifier
	Clock       reminder.Clock

	mu    sync.Mutex
	month calendar.Month
	ready bool
}

// New returns a Diary showing the current month.
func New(p store.Persistence, n notify.Notifier) *Diary {
	if n == nil {
		n = notify.None{}
	}
	return &Diary{Persistence: p, Notifier: n, Clock: reminder.SystemClock}
}

func (d *Diary) now() time.Time {
	if d.Clock == nil {
		return time.Now()
	}
	return d.Clock.Now()
}

// Submit validates the form the way the input widgets would, appends the
// entry and persists it before returning. The returned index is the stored
// position of this entry. Permission for notifications is requested
// afterwards.
func (d *Diary) Submit(ctx context.Context, f Form) (entry.Indexed, error) {
	if d.Persistence == nil {
		return entry.Indexed{}, ErrNoPersistence
	}
	if err := ctx.Err(); err != nil {
		return entry.Indexed{}, err
	}
	topic := strings.TrimSpace(f.Topic)
	if topic == "" {
		return entry.Indexed{}, ErrTopicRequired
	}
	at, err := entry.ParseTime(f.DateTime)
	if err != nil {
		return entry.Indexed{}, fmt.Errorf("%w: %v", ErrInvalidDateTime, err)
	}

	e := entry.New(topic, strings.TrimSpace(f.Place), strings.TrimSpace(f.Purpose), at, f.Alarm)

	d.mu.Lock()
	index, err := d.Persistence.Append(e)
	d.mu.Unlock()
	if err != nil {
		return entry.Indexed{}, err
	}

	d.Notifier.RequestPermission()
	return entry.Indexed{Index: index, Entry: e}, nil
}

// Entries is a read-only view of the stored sequence.
func (d *Diary) Entries() []entry.Entry {
	if d.Persistence == nil {
		return nil
	}
	return d.Persistence.Entries()
}

// Reload rereads storage, typically after a watch event.
func (d *Diary) Reload(ctx context.Context) error {
	if d.Persistence == nil {
		return ErrNoPersistence
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.Persistence.Load(ctx)
}

func (d *Diary) DisplayedMonth() calendar.Month {
	d.mu.Lock()
	defer d.mu.Unlock()
	if !d.ready {
		d.month = calendar.Current(d.now())
		d.ready = true
	}
	return d.month
}

func (d *Diary) SetMonth(m calendar.Month) {
	d.mu.Lock()
	d.month = m
	d.ready = true
	d.mu.Unlock()
}

// Calendar renders the displayed month.
func (d *Diary) Calendar() calendar.Grid {
	return calendar.Render(d.DisplayedMonth(), d.Entries())
}

// ChangeMonth moves the displayed month by offset and re-renders.
func (d *Diary) ChangeMonth(offset int) calendar.Grid {
	m := d.DisplayedMonth().Add(offset)
	d.SetMonth(m)
	return calendar.Render(m, d.Entries())
}

// EventsForDay lists the entries on date with their stored positions.
func (d *Diary) EventsForDay(date time.Time) []entry.Indexed {
	return calendar.IndexedForDay(d.Entries(), date)
}

// List is the filtered, date-sorted table.
func (d *Diary) List(filter string) []listing.Row {
	return listing.Render(d.Entries(), filter)
}

func (d *Diary) ExportCSV(w io.Writer) error {
	return export.CSV(w, d.Entries())
}

func (d *Diary) ExportICS(w io.Writer) error {
	return export.ICS(w, d.Entries(), d.now())
}

// Entry returns the entry at index in the stored sequence.
func (d *Diary) Entry(index int) (entry.Entry, error) {
	entries := d.Entries()
	if index < 0 || index >= len(entries) {
		return entry.Entry{}, ErrEntryNotFound
	}
	return entries[index], nil
}

// ExportPDF writes the entry at index and returns its download filename.
func (d *Diary) ExportPDF(w io.Writer, index int) (string, error) {
	e, err := d.Entry(index)
	if err != nil {
		return "", err
	}
	if err := export.PDF(w, e, d.now()); err != nil {
		return "", err
	}
	return export.PDFFilename(e.Topic), nil
}

// Poller builds a reminder poller over this diary's entries.
func (d *Diary) Poller(interval, tolerance time.Duration, dedupe bool) *reminder.Poller {
	return &reminder.Poller{
		Entries:   d.Entries,
		Notifier:  d.Notifier,
		Clock:     d.Clock,
		Interval:  interval,
		Tolerance: tolerance,
		Dedupe:    dedupe,
	}
}
