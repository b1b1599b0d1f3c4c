package entry

import (
	"fmt"
	"time"
)

func New(topic, place, purpose string, at time.Time, alarm bool) Entry {
	return Entry{
		Topic:    topic,
		Place:    place,
		Purpose:  purpose,
		DateTime: Timestamp{Time: at},
		HasAlarm: alarm,
	}
}

// Entry is one diary record. Entries are never edited once stored.
type Entry struct {
	Topic    string    `json:"topic" yaml:"topic"`
	Place    string    `json:"place" yaml:"place"`
	Purpose  string    `json:"purpose" yaml:"purpose"`
	DateTime Timestamp `json:"datetime" yaml:"datetime"`
	HasAlarm bool      `json:"hasAlarm" yaml:"hasAlarm"`
}

func (e Entry) Row() (string, string, string) {
	return e.DateTime.Date(), e.Place, e.Purpose
}

// Matches reports whether the entry falls on the calendar day of then,
// ignoring the time of day.
func (e Entry) Matches(then time.Time) bool {
	if e.DateTime.IsZero() {
		return false
	}
	return e.DateTime.SameDay(then)
}

func (e Entry) String() string {
	alarm := ""
	if e.HasAlarm {
		alarm = " ⏰"
	}
	return fmt.Sprintf("%s @ %s, %s%s", e.Topic, e.Place, e.DateTime.DateTime(), alarm)
}

// Indexed pairs an entry with its position in the stored sequence.
type Indexed struct {
	Index int
	Entry
}
