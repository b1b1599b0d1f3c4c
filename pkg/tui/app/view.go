package teaui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/muesli/reflow/wordwrap"

	"tableflip.dev/tourdiary/pkg/reminder"
	calview "tableflip.dev/tourdiary/pkg/tui/components/calendar"
)

var helpText = map[screen]string{
	screenCalendar: "←/→/↑/↓ day • [/] month • enter day • / list • a add • c csv • i ics • t today • q quit",
	screenDay:      "←/→ day • ↑/↓ event • p pdf • a add • esc back",
	screenList:     "type to filter • esc back",
	screenForm:     "tab/↑/↓ field • space alarm • enter next • ctrl+s submit • esc back",
}

// View renders the current screen.
func (m *Model) View() string {
	var body string
	switch m.screen {
	case screenDay:
		body = m.dayView()
	case screenList:
		body = m.listView()
	case screenForm:
		body = m.formView()
	default:
		body = m.calendarView()
	}

	parts := []string{}
	if m.banner != nil {
		parts = append(parts, m.bannerView())
	}
	parts = append(parts, m.theme.Panel.Frame.Render(body), m.footerView())
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m *Model) calendarView() string {
	if m.diary == nil {
		return ""
	}
	g := m.diary.Calendar()
	selected := 0
	if g.Month.Contains(m.selected) {
		selected = m.selected.Day()
	}
	return calview.Render(g, selected, m.now(), m.calOpts)
}

func (m *Model) dayView() string {
	th := m.theme.Panel
	var b strings.Builder
	b.WriteString(th.Title.Render(m.selected.Format("Monday, January 2, 2006")))
	b.WriteString("\n\n")

	events := m.dayEvents()
	if len(events) == 0 {
		b.WriteString(th.Faint.Render("No events"))
		return b.String()
	}

	width := m.contentWidth()
	for i, e := range events {
		alarm := ""
		if e.HasAlarm {
			alarm = " ⏰"
		}
		line := fmt.Sprintf("%s  %s%s", e.DateTime.Clock(), e.Topic, alarm)
		if i == m.cursor {
			line = th.Selected.Render(line)
		} else {
			line = th.Title.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
		detail := wordwrap.String(fmt.Sprintf("Place: %s\nPurpose: %s", e.Place, e.Purpose), width-2)
		for _, l := range strings.Split(detail, "\n") {
			b.WriteString("  " + th.Body.Render(l) + "\n")
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m *Model) listView() string {
	th := m.theme.Panel
	var b strings.Builder
	b.WriteString(m.filter.View())
	b.WriteString("\n\n")

	rows := m.diary.List(m.filter.Value())
	if len(rows) == 0 {
		b.WriteString(th.Faint.Render("none"))
		return b.String()
	}

	dateW, placeW := len("Date"), len("Place")
	for _, r := range rows {
		dateW = max(dateW, len(r.Date))
		placeW = max(placeW, len(r.Place))
	}
	format := fmt.Sprintf("%%-%ds  %%-%ds  %%s", dateW, placeW)
	b.WriteString(th.Title.Render(fmt.Sprintf(format, "Date", "Place", "Purpose")))
	for _, r := range rows {
		b.WriteString("\n")
		b.WriteString(th.Body.Render(fmt.Sprintf(format, r.Date, r.Place, r.Purpose)))
	}
	return b.String()
}

func (m *Model) formView() string {
	return m.theme.Panel.Title.Render("New entry") + "\n\n" + strings.TrimRight(m.form.view(m.theme), "\n")
}

func (m *Model) bannerView() string {
	th := m.theme.Banner
	return th.Frame.Render(th.Title.Render(reminder.Title) + "\n" + th.Body.Render(reminder.Body(*m.banner)))
}

func (m *Model) footerView() string {
	th := m.theme.Footer
	lines := []string{}
	if m.status != "" {
		style := th.Status
		if m.statusErr {
			style = th.Error
		}
		lines = append(lines, style.Render(m.status))
	}
	lines = append(lines, th.Help.Render(helpText[m.screen]))
	return strings.Join(lines, "\n")
}

func (m *Model) contentWidth() int {
	if m.termWidth <= 0 {
		return 60
	}
	// frame border and padding
	return max(m.termWidth-6, 20)
}
