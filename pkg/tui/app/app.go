// Package teaui is the Bubble Tea interface: a month calendar, the events of
// a selected day, the filterable list and the entry form.
package teaui

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/tourdiary/pkg/app"
	"tableflip.dev/tourdiary/pkg/calendar"
	"tableflip.dev/tourdiary/pkg/entry"
	"tableflip.dev/tourdiary/pkg/export"
	"tableflip.dev/tourdiary/pkg/reminder"
	"tableflip.dev/tourdiary/pkg/store"
	calview "tableflip.dev/tourdiary/pkg/tui/components/calendar"
	"tableflip.dev/tourdiary/pkg/tui/theme"
)

type screen int

const (
	screenCalendar screen = iota
	screenDay
	screenList
	screenForm
)

const bannerDuration = 10 * time.Second

type (
	reminderMsg struct{ entry entry.Entry }

	bannerExpiredMsg struct{ id int }

	watchStartedMsg struct {
		ch     <-chan store.Event
		cancel context.CancelFunc
		err    error
	}
	watchEventMsg   struct{ event store.Event }
	watchStoppedMsg struct{}
)

// Model is the root Bubble Tea model.
type Model struct {
	diary *app.Diary
	ctx   context.Context
	stop  context.CancelFunc

	screen   screen
	selected time.Time
	cursor   int

	filter textinput.Model
	form   form

	status    string
	statusErr bool

	banner   *entry.Entry
	bannerID int

	theme   theme.Theme
	calOpts calview.Options

	// ExportDir receives files exported from the UI.
	ExportDir string

	watchCh     <-chan store.Event
	watchCancel context.CancelFunc

	termWidth  int
	termHeight int
}

// New builds the model over diary, selecting today.
func New(d *app.Diary) *Model {
	ti := textinput.New()
	ti.Placeholder = "Filter by topic, place or purpose"
	ti.CharLimit = 128
	ti.Prompt = "/ "

	ctx, cancel := context.WithCancel(context.Background())
	m := &Model{
		diary:   d,
		ctx:     ctx,
		stop:    cancel,
		filter:  ti,
		form:    newForm(),
		theme:   theme.Default(),
		calOpts: calview.DefaultOptions(),
	}
	m.selected = truncateDay(m.now())
	if d != nil {
		d.SetMonth(calendar.Current(m.selected))
	}
	return m
}

func (m *Model) now() time.Time {
	if m.diary != nil && m.diary.Clock != nil {
		return m.diary.Clock.Now()
	}
	return reminder.SystemClock.Now()
}

func truncateDay(t time.Time) time.Time {
	y, mo, d := t.Date()
	return time.Date(y, mo, d, 0, 0, 0, 0, t.Location())
}

// Init starts watching the store for writes from other processes.
func (m *Model) Init() tea.Cmd {
	return startWatchCmd(m.ctx, m.diary)
}

func startWatchCmd(parent context.Context, d *app.Diary) tea.Cmd {
	if d == nil || d.Persistence == nil {
		return nil
	}
	return func() tea.Msg {
		ctx, cancel := context.WithCancel(parent)
		ch, err := d.Persistence.Watch(ctx)
		if err != nil {
			cancel()
			return watchStartedMsg{err: err}
		}
		return watchStartedMsg{ch: ch, cancel: cancel}
	}
}

func (m *Model) waitForWatch() tea.Cmd {
	if m.watchCh == nil {
		return nil
	}
	ch := m.watchCh
	return func() tea.Msg {
		if ev, ok := <-ch; ok {
			return watchEventMsg{event: ev}
		}
		return watchStoppedMsg{}
	}
}

func (m *Model) stopWatch() {
	if m.watchCancel != nil {
		m.watchCancel()
		m.watchCancel = nil
	}
	m.watchCh = nil
}

// Update handles messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.termWidth = msg.Width
		m.termHeight = msg.Height
		m.filter.SetWidth(max(msg.Width-6, 10))

	case watchStartedMsg:
		if msg.err != nil {
			m.setError("Store watch unavailable: " + msg.err.Error())
			break
		}
		m.watchCh = msg.ch
		m.watchCancel = msg.cancel
		cmds = append(cmds, m.waitForWatch())

	case watchEventMsg:
		if err := m.diary.Reload(m.ctx); err != nil {
			m.setError(err.Error())
		}
		m.clampCursor()
		cmds = append(cmds, m.waitForWatch())

	case watchStoppedMsg:
		m.watchCh = nil

	case reminderMsg:
		e := msg.entry
		m.banner = &e
		m.bannerID++
		id := m.bannerID
		cmds = append(cmds, tea.Tick(bannerDuration, func(time.Time) tea.Msg {
			return bannerExpiredMsg{id: id}
		}))

	case bannerExpiredMsg:
		if msg.id == m.bannerID {
			m.banner = nil
		}

	case tea.KeyPressMsg:
		m.handleKeyPress(msg, &cmds)
	}

	return m, tea.Batch(cmds...)
}

// handleKeyPress reports whether the key was consumed.
func (m *Model) handleKeyPress(msg tea.KeyPressMsg, cmds *[]tea.Cmd) bool {
	if msg.String() == "ctrl+c" {
		m.quit(cmds)
		return true
	}
	if m.banner != nil {
		m.banner = nil
	}

	switch m.screen {
	case screenCalendar:
		return m.handleCalendarKey(msg, cmds)
	case screenDay:
		return m.handleDayKey(msg, cmds)
	case screenList:
		return m.handleListKey(msg, cmds)
	case screenForm:
		return m.handleFormKey(msg, cmds)
	}
	return false
}

func (m *Model) quit(cmds *[]tea.Cmd) {
	m.stopWatch()
	m.stop()
	*cmds = append(*cmds, tea.Quit)
}

func (m *Model) handleCalendarKey(msg tea.KeyPressMsg, cmds *[]tea.Cmd) bool {
	switch msg.String() {
	case "q":
		m.quit(cmds)
	case "left", "h":
		m.selectDay(m.selected.AddDate(0, 0, -1))
	case "right", "l":
		m.selectDay(m.selected.AddDate(0, 0, 1))
	case "up", "k":
		m.selectDay(m.selected.AddDate(0, 0, -7))
	case "down", "j":
		m.selectDay(m.selected.AddDate(0, 0, 7))
	case "[", "pgup":
		m.changeMonth(-1)
	case "]", "pgdown":
		m.changeMonth(1)
	case "t":
		m.selectDay(truncateDay(m.now()))
	case "enter", "space":
		m.openDay()
	case "/", "L":
		m.screen = screenList
		*cmds = append(*cmds, m.filter.Focus())
	case "a", "n":
		m.screen = screenForm
		*cmds = append(*cmds, m.form.setFocus(fieldTopic))
	case "c":
		m.exportAll(export.CSVFilename, m.diary.ExportCSV)
	case "i":
		m.exportAll(export.ICSFilename, m.diary.ExportICS)
	default:
		return false
	}
	return true
}

func (m *Model) handleDayKey(msg tea.KeyPressMsg, cmds *[]tea.Cmd) bool {
	switch msg.String() {
	case "esc", "backspace", "q":
		m.screen = screenCalendar
	case "left", "h":
		m.selectDay(m.selected.AddDate(0, 0, -1))
		m.cursor = 0
	case "right", "l":
		m.selectDay(m.selected.AddDate(0, 0, 1))
		m.cursor = 0
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		m.cursor++
		m.clampCursor()
	case "p":
		m.exportSelectedPDF()
	case "a", "n":
		m.screen = screenForm
		m.form.inputs[fieldDateTime].SetValue(m.selected.Add(9 * time.Hour).Format(entry.LayoutLocal))
		*cmds = append(*cmds, m.form.setFocus(fieldTopic))
	default:
		return false
	}
	return true
}

func (m *Model) handleListKey(msg tea.KeyPressMsg, cmds *[]tea.Cmd) bool {
	switch msg.String() {
	case "esc":
		m.filter.Blur()
		m.screen = screenCalendar
		return true
	}
	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(msg)
	*cmds = append(*cmds, cmd)
	return true
}

func (m *Model) handleFormKey(msg tea.KeyPressMsg, cmds *[]tea.Cmd) bool {
	switch msg.String() {
	case "esc":
		m.screen = screenCalendar
		return true
	case "tab", "down":
		*cmds = append(*cmds, m.form.next())
		return true
	case "shift+tab", "up":
		*cmds = append(*cmds, m.form.prev())
		return true
	case "ctrl+s":
		m.submit(cmds)
		return true
	case "enter":
		if m.form.focus == fieldAlarm {
			m.submit(cmds)
		} else {
			*cmds = append(*cmds, m.form.next())
		}
		return true
	}
	*cmds = append(*cmds, m.form.update(msg))
	return true
}

func (m *Model) submit(cmds *[]tea.Cmd) {
	e, err := m.diary.Submit(m.ctx, m.form.value())
	if err != nil {
		switch {
		case errors.Is(err, app.ErrTopicRequired):
			m.setError("Topic is required.")
			*cmds = append(*cmds, m.form.setFocus(fieldTopic))
		case errors.Is(err, app.ErrInvalidDateTime):
			m.setError("Enter the date and time as " + entry.LayoutLocal + ".")
			*cmds = append(*cmds, m.form.setFocus(fieldDateTime))
		default:
			m.setError(err.Error())
		}
		return
	}
	m.setStatus("Data Submitted!")
	m.selectDay(truncateDay(e.DateTime.Local()))
	*cmds = append(*cmds, m.form.reset())
}

func (m *Model) selectDay(day time.Time) {
	m.selected = truncateDay(day)
	month := calendar.Current(m.selected)
	if m.diary != nil && m.diary.DisplayedMonth() != month {
		m.diary.SetMonth(month)
	}
	m.clampCursor()
}

func (m *Model) changeMonth(offset int) {
	g := m.diary.ChangeMonth(offset)
	day := m.selected.Day()
	if day > g.Month.DaysIn() {
		day = g.Month.DaysIn()
	}
	m.selected = g.Month.Date(day)
	m.cursor = 0
}

func (m *Model) openDay() {
	m.screen = screenDay
	m.cursor = 0
}

func (m *Model) dayEvents() []entry.Indexed {
	if m.diary == nil {
		return nil
	}
	return m.diary.EventsForDay(m.selected)
}

func (m *Model) clampCursor() {
	n := len(m.dayEvents())
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *Model) exportAll(name string, write func(io.Writer) error) {
	var buf bytes.Buffer
	if err := write(&buf); err != nil {
		m.exportFailed(err)
		return
	}
	m.writeExport(name, buf.Bytes())
}

func (m *Model) exportSelectedPDF() {
	events := m.dayEvents()
	if m.cursor < 0 || m.cursor >= len(events) {
		m.exportFailed(app.ErrEntryNotFound)
		return
	}
	var buf bytes.Buffer
	name, err := m.diary.ExportPDF(&buf, events[m.cursor].Index)
	if err != nil {
		m.exportFailed(err)
		return
	}
	m.writeExport(name, buf.Bytes())
}

func (m *Model) writeExport(name string, data []byte) {
	path := filepath.Join(m.ExportDir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		m.setError(err.Error())
		return
	}
	m.setStatus("Saved " + path)
}

func (m *Model) exportFailed(err error) {
	if msg := export.Message(err); msg != "" {
		m.setError(msg)
		return
	}
	m.setError(err.Error())
}

func (m *Model) setStatus(s string) {
	m.status = s
	m.statusErr = false
}

func (m *Model) setError(s string) {
	m.status = s
	m.statusErr = true
}
