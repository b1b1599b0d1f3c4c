package entry

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

const (
	// LayoutLocal is the form an HTML datetime-local input produces.
	LayoutLocal        = "2006-01-02T15:04"
	layoutLocalSeconds = "2006-01-02T15:04:05"
	layoutLocalSpace   = "2006-01-02 15:04"
	layoutISODate      = "2006-01-02"

	layoutDate     = "1/2/2006"
	layoutClock    = "3:04:05 PM"
	layoutDateTime = "1/2/2006, 3:04:05 PM"
)

var localLayouts = []string{LayoutLocal, layoutLocalSeconds, layoutLocalSpace, layoutISODate}

// ParseTime reads a datetime-local value, with or without seconds, or an
// RFC3339 timestamp. Values without a zone are read in time.Local.
func ParseTime(v string) (time.Time, error) {
	v = strings.TrimSpace(v)
	if t, err := time.Parse(time.RFC3339, v); err == nil {
		return t, nil
	}
	for _, layout := range localLayouts {
		if t, err := time.ParseInLocation(layout, v, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("entry: unrecognized datetime %q", v)
}

type Timestamp struct {
	time.Time
}

func (t Timestamp) SameDay(then time.Time) bool {
	if t.Local().Day() == then.Local().Day() &&
		t.Local().Month() == then.Local().Month() &&
		t.Local().Year() == then.Local().Year() {
		return true
	}
	return false
}

func (t Timestamp) SameMonth(year int, month time.Month) bool {
	return t.Local().Month() == month && t.Local().Year() == year
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte(`""`), nil
	}
	return []byte(fmt.Sprintf("%q", t.String())), nil
}

// MarshalYAML writes the same datetime-local form as JSON.
func (t Timestamp) MarshalYAML() (interface{}, error) {
	return t.String(), nil
}

func (t *Timestamp) UnmarshalJSON(b []byte) error {
	var timestamp string
	if err := json.Unmarshal(b, &timestamp); err != nil {
		return err
	}
	if strings.TrimSpace(timestamp) == "" {
		t.Time = time.Time{}
		return nil
	}
	var err error
	t.Time, err = ParseTime(timestamp)
	return err
}

// String renders the datetime-local form, keeping seconds only when set.
func (t Timestamp) String() string {
	if t.IsZero() {
		return ""
	}
	l := t.Local()
	if l.Second() != 0 {
		return l.Format(layoutLocalSeconds)
	}
	return l.Format(LayoutLocal)
}

// Date is the short en-US date, e.g. 5/1/2024.
func (t Timestamp) Date() string {
	return t.Local().Format(layoutDate)
}

// Clock is the en-US time of day, e.g. 9:00:00 AM.
func (t Timestamp) Clock() string {
	return t.Local().Format(layoutClock)
}

func (t Timestamp) DateTime() string {
	return t.Local().Format(layoutDateTime)
}
