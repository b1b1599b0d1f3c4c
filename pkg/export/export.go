// Package export writes diary entries as CSV, PDF and iCalendar documents.
package export

import (
	"errors"
	"regexp"
	"strings"
)

const (
	CSVFilename = "tour_diary.csv"
	ICSFilename = "tour_diary.ics"
)

var (
	// ErrNoEntries is returned when there is nothing to export.
	ErrNoEntries = errors.New("export: no entries")
	// ErrEntryNotFound is returned for an index outside the stored sequence.
	ErrEntryNotFound = errors.New("export: entry not found")
)

// Message is the text shown to the user when an export is refused, or ""
// for errors that are not refusals.
func Message(err error) string {
	switch {
	case errors.Is(err, ErrNoEntries):
		return "No data available to export."
	case errors.Is(err, ErrEntryNotFound):
		return "Event not found."
	}
	return ""
}

var whitespace = regexp.MustCompile(`\s+`)

// PDFFilename is event_<topic>.pdf with whitespace runs and path
// separators turned into underscores.
func PDFFilename(topic string) string {
	name := whitespace.ReplaceAllString(topic, "_")
	name = strings.NewReplacer("/", "_", `\`, "_").Replace(name)
	return "event_" + name + ".pdf"
}
