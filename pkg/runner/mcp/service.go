// Package mcp provides the Model Context Protocol server integration for tourdiary.
package mcp

import (
	"context"
	"errors"
	"strings"

	"tableflip.dev/tourdiary/pkg/app"
	"tableflip.dev/tourdiary/pkg/calendar"
	"tableflip.dev/tourdiary/pkg/entry"
)

// Service coordinates diary operations that are shared by the MCP server.
type Service struct {
	Diary *app.Diary
}

var errNoDiary = errors.New("diary is not configured")

// EntryDTO is a transport-friendly projection of an entry.
type EntryDTO struct {
	Index         int    `json:"index"`
	Topic         string `json:"topic"`
	Place         string `json:"place,omitempty"`
	Purpose       string `json:"purpose,omitempty"`
	DateTime      string `json:"datetime"`
	Date          string `json:"date,omitempty"`
	Time          string `json:"time,omitempty"`
	HasAlarm      bool   `json:"hasAlarm"`
	ScheduledUnix int64  `json:"scheduledUnix,omitempty"`
}

// DayDTO is one calendar cell.
type DayDTO struct {
	Day       int    `json:"day"`
	Date      string `json:"date"`
	HasEvents bool   `json:"hasEvents"`
	Count     int    `json:"count,omitempty"`
}

// MonthDTO is a rendered month grid.
type MonthDTO struct {
	Month   string   `json:"month"`
	Year    int      `json:"year"`
	Leading int      `json:"leading"`
	Days    []DayDTO `json:"days"`
}

// AddEntryOptions captures the parameters used to create a new entry.
type AddEntryOptions struct {
	Topic    string
	Place    string
	Purpose  string
	DateTime string
	Alarm    bool
}

// NewService builds a service wrapper around the diary.
func NewService(d *app.Diary) *Service {
	return &Service{Diary: d}
}

// AddEntry submits a new entry the same way the form does.
func (s *Service) AddEntry(ctx context.Context, opts AddEntryOptions) (*EntryDTO, error) {
	if s.Diary == nil {
		return nil, errNoDiary
	}
	e, err := s.Diary.Submit(ctx, app.Form{
		Topic:    opts.Topic,
		Place:    opts.Place,
		Purpose:  opts.Purpose,
		DateTime: opts.DateTime,
		Alarm:    opts.Alarm,
	})
	if err != nil {
		return nil, err
	}
	dto := toDTO(e.Index, e.Entry)
	return &dto, nil
}

// ListEntries returns entries matching filter in date order.
func (s *Service) ListEntries(ctx context.Context, filter string) ([]EntryDTO, error) {
	if s.Diary == nil {
		return nil, errNoDiary
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	rows := s.Diary.List(filter)
	out := make([]EntryDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, toDTO(r.Index, r.Entry))
	}
	return out, nil
}

// AllEntries returns the stored sequence in insertion order.
func (s *Service) AllEntries(ctx context.Context) ([]EntryDTO, error) {
	if s.Diary == nil {
		return nil, errNoDiary
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	all := s.Diary.Entries()
	out := make([]EntryDTO, 0, len(all))
	for i, e := range all {
		out = append(out, toDTO(i, e))
	}
	return out, nil
}

// EntryByIndex fetches one entry by stored position.
func (s *Service) EntryByIndex(ctx context.Context, index int) (*EntryDTO, error) {
	if s.Diary == nil {
		return nil, errNoDiary
	}
	e, err := s.Diary.Entry(index)
	if err != nil {
		return nil, err
	}
	dto := toDTO(index, e)
	return &dto, nil
}

// EventsForDay lists entries that fall on the given date.
func (s *Service) EventsForDay(ctx context.Context, date string) ([]EntryDTO, error) {
	if s.Diary == nil {
		return nil, errNoDiary
	}
	day, err := entry.ParseTime(date)
	if err != nil {
		return nil, err
	}
	events := s.Diary.EventsForDay(day)
	out := make([]EntryDTO, 0, len(events))
	for _, e := range events {
		out = append(out, toDTO(e.Index, e.Entry))
	}
	return out, nil
}

// MonthCalendar renders month ("2024-05"; empty for the displayed month)
// moved by offset.
func (s *Service) MonthCalendar(ctx context.Context, month string, offset int) (*MonthDTO, error) {
	if s.Diary == nil {
		return nil, errNoDiary
	}
	m := s.Diary.DisplayedMonth()
	if strings.TrimSpace(month) != "" {
		var err error
		if m, err = calendar.ParseMonth(month); err != nil {
			return nil, err
		}
	}
	return toMonthDTO(calendar.Render(m.Add(offset), s.Diary.Entries())), nil
}

func toMonthDTO(g calendar.Grid) *MonthDTO {
	dto := &MonthDTO{
		Month:   g.Month.Month.String(),
		Year:    g.Month.Year,
		Leading: g.Leading,
		Days:    make([]DayDTO, 0, len(g.Days)),
	}
	for _, d := range g.Days {
		dto.Days = append(dto.Days, DayDTO{
			Day:       d.Day,
			Date:      d.Date.Format("2006-01-02"),
			HasEvents: d.HasEvents,
			Count:     d.Count,
		})
	}
	return dto
}

func toDTO(index int, e entry.Entry) EntryDTO {
	dto := EntryDTO{
		Index:    index,
		Topic:    e.Topic,
		Place:    e.Place,
		Purpose:  e.Purpose,
		DateTime: e.DateTime.String(),
		HasAlarm: e.HasAlarm,
	}
	if !e.DateTime.IsZero() {
		dto.Date = e.DateTime.Date()
		dto.Time = e.DateTime.Clock()
		dto.ScheduledUnix = e.DateTime.Unix()
	}
	return dto
}
