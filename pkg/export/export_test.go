package export

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"tableflip.dev/tourdiary/pkg/entry"
)

func twoEntries() []entry.Entry {
	return []entry.Entry{
		entry.New("Temple", "Kyoto", "Sightseeing", time.Date(2024, time.May, 1, 9, 0, 0, 0, time.Local), true),
		entry.New("Market", "Osaka", "Shopping", time.Date(2024, time.May, 2, 14, 0, 0, 0, time.Local), false),
	}
}

func TestCSVTwoEntries(t *testing.T) {
	var buf bytes.Buffer
	if err := CSV(&buf, twoEntries()); err != nil {
		t.Fatalf("csv: %v", err)
	}
	want := "Topic,Place,Purpose,DateTime,HasAlarm\n" +
		`"Temple","Kyoto","Sightseeing","2024-05-01T09:00",true` + "\n" +
		`"Market","Osaka","Shopping","2024-05-02T14:00",false` + "\n"
	if buf.String() != want {
		t.Fatalf("unexpected csv:\n%s\nwant:\n%s", buf.String(), want)
	}
	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
}

func TestCSVKeepsInsertionOrderAndEscapes(t *testing.T) {
	entries := []entry.Entry{
		entry.New(`The "Big" one`, "Nara", "Deer, park", time.Date(2024, time.June, 1, 9, 0, 0, 0, time.Local), false),
		{Topic: "Undated", Place: "?", Purpose: "?"},
		entry.New("Early", "Nara", "Walk", time.Date(2024, time.January, 1, 9, 0, 0, 0, time.Local), false),
	}
	var buf bytes.Buffer
	if err := CSV(&buf, entries); err != nil {
		t.Fatalf("csv: %v", err)
	}
	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if lines[1] != `"The ""Big"" one","Nara","Deer, park","2024-06-01T09:00",false` {
		t.Fatalf("unexpected escaped line %s", lines[1])
	}
	if lines[2] != `"Undated","?","?",,false` {
		t.Fatalf("unexpected undated line %s", lines[2])
	}
	if !strings.HasPrefix(lines[3], `"Early"`) {
		t.Fatalf("csv export must not sort, got %s", lines[3])
	}
}

func TestCSVRefusesEmpty(t *testing.T) {
	var buf bytes.Buffer
	err := CSV(&buf, nil)
	if !errors.Is(err, ErrNoEntries) {
		t.Fatalf("expected ErrNoEntries, got %v", err)
	}
	if buf.Len() != 0 {
		t.Fatalf("nothing should be written, got %q", buf.String())
	}
	if Message(err) != "No data available to export." {
		t.Fatalf("unexpected message %q", Message(err))
	}
}

func TestPDFWritesDocument(t *testing.T) {
	var buf bytes.Buffer
	e := twoEntries()[0]
	if err := PDF(&buf, e, time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC)); err != nil {
		t.Fatalf("pdf: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")) {
		t.Fatalf("output is not a pdf")
	}
	if !bytes.Contains(buf.Bytes(), []byte("%%EOF")) {
		t.Fatalf("pdf is not terminated")
	}
}

func TestPDFFilename(t *testing.T) {
	tests := map[string]string{
		"Temple":              "event_Temple.pdf",
		"Golden  Pavilion":    "event_Golden_Pavilion.pdf",
		"Tea\tceremony visit": "event_Tea_ceremony_visit.pdf",
		"a/b":                 "event_a_b.pdf",
	}
	for in, want := range tests {
		if got := PDFFilename(in); got != want {
			t.Fatalf("%q: expected %q, got %q", in, want, got)
		}
	}
}

func TestICSEventsAndAlarms(t *testing.T) {
	var buf bytes.Buffer
	stamp := time.Date(2024, time.April, 1, 0, 0, 0, 0, time.UTC)
	if err := ICS(&buf, twoEntries(), stamp); err != nil {
		t.Fatalf("ics: %v", err)
	}
	out := buf.String()
	if got := strings.Count(out, "BEGIN:VEVENT"); got != 2 {
		t.Fatalf("expected 2 events, got %d", got)
	}
	if got := strings.Count(out, "BEGIN:VALARM"); got != 1 {
		t.Fatalf("expected 1 alarm, got %d", got)
	}
	for _, want := range []string{"SUMMARY:Temple", "LOCATION:Kyoto", "DESCRIPTION:Shopping"} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %s in\n%s", want, out)
		}
	}
}

func TestICSStableUIDs(t *testing.T) {
	entries := twoEntries()
	a, b := uid(0, entries[0]), uid(0, entries[0])
	if a != b {
		t.Fatalf("uid not stable: %s vs %s", a, b)
	}
	if uid(1, entries[0]) == a {
		t.Fatalf("uid should depend on position")
	}
	if !strings.HasSuffix(a, "@tourdiary") {
		t.Fatalf("unexpected uid %s", a)
	}
}

func TestMessageIgnoresOtherErrors(t *testing.T) {
	if Message(fmt.Errorf("disk full")) != "" {
		t.Fatalf("unexpected message for unrelated error")
	}
	if Message(fmt.Errorf("wrap: %w", ErrEntryNotFound)) != "Event not found." {
		t.Fatalf("wrapped not-found should map to its message")
	}
}
