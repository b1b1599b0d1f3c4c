// Package listing filters and orders diary entries for the table view.
package listing

import (
	"sort"
	"strings"

	"tableflip.dev/tourdiary/pkg/entry"
)

// Row is one table line. Topic and alarm state are not part of the table.
// Index is the entry's position in the stored sequence.
type Row struct {
	Date    string      `json:"date" yaml:"date"`
	Place   string      `json:"place" yaml:"place"`
	Purpose string      `json:"purpose" yaml:"purpose"`
	Index   int         `json:"-" yaml:"-"`
	Entry   entry.Entry `json:"-" yaml:"-"`
}

func matches(e entry.Entry, needle string) bool {
	return strings.Contains(strings.ToLower(e.Topic), needle) ||
		strings.Contains(strings.ToLower(e.Place), needle) ||
		strings.Contains(strings.ToLower(e.Purpose), needle)
}

// Render filters, sorts and projects entries into rows.
func Render(entries []entry.Entry, text string) []Row {
	needle := strings.ToLower(text)
	filtered := make([]entry.Indexed, 0, len(entries))
	for i, e := range entries {
		if matches(e, needle) {
			filtered = append(filtered, entry.Indexed{Index: i, Entry: e})
		}
	}
	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].DateTime.Before(filtered[j].DateTime.Time)
	})

	rows := make([]Row, 0, len(filtered))
	for _, e := range filtered {
		date, place, purpose := e.Row()
		rows = append(rows, Row{Date: date, Place: place, Purpose: purpose, Index: e.Index, Entry: e.Entry})
	}
	return rows
}
