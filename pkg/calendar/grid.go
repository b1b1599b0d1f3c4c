package calendar

import (
	"time"

	"tableflip.dev/tourdiary/pkg/entry"
)

// Day describes a single day cell in the grid.
type Day struct {
	Day       int
	Date      time.Time
	HasEvents bool
	Count     int
}

// Grid is a month laid out from the first weekday. Leading is the number
// of blank cells before day 1; there is no trailing fill.
type Grid struct {
	Month   Month
	Leading int
	Days    []Day
}

// Render lays out month and marks every day that at least one entry falls on.
func Render(month Month, entries []entry.Entry) Grid {
	days := month.DaysIn()
	g := Grid{
		Month:   month,
		Leading: month.FirstWeekday(),
		Days:    make([]Day, days),
	}
	for i := range g.Days {
		g.Days[i] = Day{Day: i + 1, Date: month.Date(i + 1)}
	}

	for _, e := range entries {
		if e.DateTime.IsZero() || !e.DateTime.SameMonth(month.Year, month.Month) {
			continue
		}
		d := e.DateTime.Local().Day()
		g.Days[d-1].Count++
		g.Days[d-1].HasEvents = true
	}
	return g
}

// Cells returns the leading blanks (nil) followed by the days.
func (g Grid) Cells() []*Day {
	cells := make([]*Day, g.Leading, g.Leading+len(g.Days))
	for i := range g.Days {
		cells = append(cells, &g.Days[i])
	}
	return cells
}

// Weeks splits Cells into rows of seven. The final row may be short.
func (g Grid) Weeks() [][]*Day {
	cells := g.Cells()
	weeks := make([][]*Day, 0, (len(cells)+6)/7)
	for len(cells) > 0 {
		n := 7
		if len(cells) < n {
			n = len(cells)
		}
		weeks = append(weeks, cells[:n])
		cells = cells[n:]
	}
	return weeks
}

// EventsForDay returns the entries on the calendar day of date, in stored
// order. Callers must treat an empty result as "no events".
func EventsForDay(entries []entry.Entry, date time.Time) []entry.Entry {
	var out []entry.Entry
	for _, e := range entries {
		if e.Matches(date) {
			out = append(out, e)
		}
	}
	return out
}

// IndexedForDay is EventsForDay keeping each entry's stored position.
func IndexedForDay(entries []entry.Entry, date time.Time) []entry.Indexed {
	var out []entry.Indexed
	for i, e := range entries {
		if e.Matches(date) {
			out = append(out, entry.Indexed{Index: i, Entry: e})
		}
	}
	return out
}
