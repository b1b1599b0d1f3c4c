// Package calendar computes month grids and day lookups over diary entries.
package calendar

import (
	"fmt"
	"time"
)

// Month is a year and month in the proleptic Gregorian calendar.
type Month struct {
	Year  int
	Month time.Month
}

// Current returns the month containing now.
func Current(now time.Time) Month {
	l := now.Local()
	return Month{Year: l.Year(), Month: l.Month()}
}

// ParseMonth reads "2006-01" or "January 2006".
func ParseMonth(s string) (Month, error) {
	for _, layout := range []string{"2006-01", "2006-1", "January 2006", "Jan 2006"} {
		if t, err := time.Parse(layout, s); err == nil {
			return Month{Year: t.Year(), Month: t.Month()}, nil
		}
	}
	return Month{}, fmt.Errorf("calendar: unrecognized month %q", s)
}

// Add moves by offset whole months, rolling over year boundaries.
func (m Month) Add(offset int) Month {
	idx := m.Year*12 + int(m.Month-1) + offset
	year := idx / 12
	mon := idx % 12
	if mon < 0 {
		mon += 12
		year--
	}
	return Month{Year: year, Month: time.Month(mon + 1)}
}

// DaysIn returns the number of days in the month.
func (m Month) DaysIn() int {
	return time.Date(m.Year, m.Month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// FirstWeekday is the weekday index of day 1, 0 = Sunday.
func (m Month) FirstWeekday() int {
	return int(time.Date(m.Year, m.Month, 1, 12, 0, 0, 0, time.UTC).Weekday())
}

// Date returns the local midnight of day in this month.
func (m Month) Date(day int) time.Time {
	return time.Date(m.Year, m.Month, day, 0, 0, 0, 0, time.Local)
}

func (m Month) Contains(t time.Time) bool {
	l := t.Local()
	return l.Year() == m.Year && l.Month() == m.Month
}

// String renders "May 2024".
func (m Month) String() string {
	return fmt.Sprintf("%s %d", m.Month, m.Year)
}
