package export

import (
	"crypto/md5"
	"encoding/json"
	"fmt"
	"io"
	"time"

	ics "github.com/arran4/golang-ical"

	"tableflip.dev/tourdiary/pkg/entry"
)

const eventLength = time.Hour

// ICS writes every dated entry as a VEVENT; alarm entries carry a DISPLAY
// alarm at the start time. stamp is used for DTSTAMP.
func ICS(w io.Writer, entries []entry.Entry, stamp time.Time) error {
	if len(entries) == 0 {
		return ErrNoEntries
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//tableflip.dev//tourdiary//EN")

	for i, e := range entries {
		if e.DateTime.IsZero() {
			continue
		}
		ev := cal.AddEvent(uid(i, e))
		ev.SetDtStampTime(stamp)
		ev.SetStartAt(e.DateTime.Time)
		ev.SetEndAt(e.DateTime.Add(eventLength))
		ev.SetSummary(e.Topic)
		ev.SetLocation(e.Place)
		ev.SetDescription(e.Purpose)

		if e.HasAlarm {
			alarm := ev.AddAlarm()
			alarm.SetAction(ics.ActionDisplay)
			alarm.SetTrigger("-PT0M")
			alarm.SetProperty(ics.ComponentPropertyDescription, e.Topic)
		}
	}

	if _, err := io.WriteString(w, cal.Serialize()); err != nil {
		return fmt.Errorf("export: ics: %w", err)
	}
	return nil
}

// uid is stable for a given stored position and content.
func uid(index int, e entry.Entry) string {
	b, _ := json.Marshal(struct {
		Index int         `json:"i"`
		Entry entry.Entry `json:"e"`
	}{index, e})
	sum := md5.Sum(b)
	return fmt.Sprintf("%x@tourdiary", sum[:8])
}
