package entry

import (
	"encoding/json"
	"testing"
	"time"
)

func TestParseTimeLayouts(t *testing.T) {
	want := time.Date(2024, time.May, 1, 9, 0, 0, 0, time.Local)
	for _, in := range []string{"2024-05-01T09:00", "2024-05-01T09:00:00", "2024-05-01 09:00"} {
		got, err := ParseTime(in)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", in, err)
		}
		if !got.Equal(want) {
			t.Fatalf("%s: expected %v, got %v", in, want, got)
		}
	}

	rfc, err := ParseTime("2024-05-01T09:00:00Z")
	if err != nil {
		t.Fatalf("rfc3339: unexpected error: %v", err)
	}
	if !rfc.Equal(time.Date(2024, time.May, 1, 9, 0, 0, 0, time.UTC)) {
		t.Fatalf("rfc3339: got %v", rfc)
	}
}

func TestParseTimeInvalid(t *testing.T) {
	if _, err := ParseTime("tomorrow-ish"); err == nil {
		t.Fatalf("expected error for invalid datetime")
	}
}

func TestEntryJSONShape(t *testing.T) {
	e := New("Temple", "Kyoto", "Sightseeing", time.Date(2024, time.May, 1, 9, 0, 0, 0, time.Local), true)
	b, err := json.Marshal(e)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `{"topic":"Temple","place":"Kyoto","purpose":"Sightseeing","datetime":"2024-05-01T09:00","hasAlarm":true}`
	if string(b) != want {
		t.Fatalf("expected %s, got %s", want, b)
	}

	var back Entry
	if err := json.Unmarshal(b, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !back.DateTime.Equal(e.DateTime.Time) || back.Topic != e.Topic || !back.HasAlarm {
		t.Fatalf("unexpected round trip: %#v", back)
	}
}

func TestEmptyDatetime(t *testing.T) {
	var e Entry
	if err := json.Unmarshal([]byte(`{"topic":"x","datetime":""}`), &e); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !e.DateTime.IsZero() {
		t.Fatalf("expected zero datetime, got %v", e.DateTime)
	}
	if e.Matches(time.Now()) {
		t.Fatalf("entry without datetime should not match any day")
	}
}

func TestMatchesIgnoresTimeOfDay(t *testing.T) {
	e := New("Market", "Osaka", "Shopping", time.Date(2024, time.May, 2, 23, 59, 0, 0, time.Local), false)
	if !e.Matches(time.Date(2024, time.May, 2, 0, 0, 0, 0, time.Local)) {
		t.Fatalf("expected match on same day")
	}
	if e.Matches(time.Date(2024, time.May, 3, 0, 1, 0, 0, time.Local)) {
		t.Fatalf("expected no match on next day even within 24h")
	}
}

func TestTimestampFormats(t *testing.T) {
	ts := Timestamp{Time: time.Date(2024, time.May, 2, 14, 0, 0, 0, time.Local)}
	if got := ts.Date(); got != "5/2/2024" {
		t.Fatalf("unexpected date %q", got)
	}
	if got := ts.Clock(); got != "2:00:00 PM" {
		t.Fatalf("unexpected clock %q", got)
	}
	if got := ts.String(); got != "2024-05-02T14:00" {
		t.Fatalf("unexpected string %q", got)
	}
}
