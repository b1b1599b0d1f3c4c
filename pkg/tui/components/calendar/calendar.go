// Package calendar provides helpers for rendering calendar views.
package calendar

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss/v2"

	cal "tableflip.dev/tourdiary/pkg/calendar"
)

// Options controls calendar styling.
type Options struct {
	TitleStyle    lipgloss.Style
	HeaderStyle   lipgloss.Style
	EmptyStyle    lipgloss.Style
	EntryStyle    lipgloss.Style
	TodayStyle    lipgloss.Style
	SelectedStyle lipgloss.Style
	ShowHeader    bool
}

// Render produces a multi-line calendar string for the grid. selected is a
// day of the grid's month, 0 for none.
func Render(g cal.Grid, selected int, today time.Time, opts Options) string {
	if g.Month.Year == 0 {
		return ""
	}

	todayDay := 0
	if g.Month.Contains(today) {
		todayDay = today.Day()
	}

	lines := []string{opts.TitleStyle.Render(g.Month.String())}
	if opts.ShowHeader {
		lines = append(lines, opts.HeaderStyle.Render("Su  Mo  Tu  We  Th  Fr  Sa"))
	}

	for _, week := range g.Weeks() {
		var cells []string
		for _, d := range week {
			if d == nil {
				cells = append(cells, opts.EmptyStyle.Render("   "))
				continue
			}
			cells = append(cells, renderDay(*d, d.Day == todayDay, d.Day == selected && selected > 0, opts))
		}
		lines = append(lines, strings.Join(cells, " "))
	}

	return strings.Join(lines, "\n")
}

func renderDay(d cal.Day, today, selected bool, opts Options) string {
	marker := " "
	if d.HasEvents {
		marker = "•"
	}
	text := fmt.Sprintf("%2d%s", d.Day, marker)

	style := opts.EmptyStyle
	if d.HasEvents {
		style = opts.EntryStyle
	}
	if today {
		style = style.Inherit(opts.TodayStyle)
	}
	if selected {
		style = opts.SelectedStyle.Inherit(style)
	}
	return style.Render(text)
}

// DefaultOptions returns the styling used for calendar rendering.
func DefaultOptions() Options {
	title := lipgloss.NewStyle().Bold(true)
	header := lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Bold(true)
	empty := lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	entry := lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Bold(true)
	today := lipgloss.NewStyle().Underline(true)
	selected := lipgloss.NewStyle().Background(lipgloss.Color("63")).Foreground(lipgloss.Color("0"))
	return Options{
		TitleStyle:    title,
		HeaderStyle:   header,
		EmptyStyle:    empty,
		EntryStyle:    entry,
		TodayStyle:    today,
		SelectedStyle: selected,
		ShowHeader:    true,
	}
}
