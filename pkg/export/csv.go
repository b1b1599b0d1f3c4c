package export

import (
	"bufio"
	"io"
	"strings"

	"tableflip.dev/tourdiary/pkg/entry"
)

const csvHeader = "Topic,Place,Purpose,DateTime,HasAlarm"

// CSV writes the header and one line per entry in stored order. Text fields
// are always quoted; HasAlarm is a bare true/false.
func CSV(w io.Writer, entries []entry.Entry) error {
	if len(entries) == 0 {
		return ErrNoEntries
	}

	bw := bufio.NewWriter(w)
	_, _ = bw.WriteString(csvHeader + "\n")
	for _, e := range entries {
		datetime := ""
		if !e.DateTime.IsZero() {
			datetime = quote(e.DateTime.String())
		}
		alarm := "false"
		if e.HasAlarm {
			alarm = "true"
		}
		line := strings.Join([]string{quote(e.Topic), quote(e.Place), quote(e.Purpose), datetime, alarm}, ",")
		_, _ = bw.WriteString(line + "\n")
	}
	return bw.Flush()
}

func quote(field string) string {
	return `"` + strings.ReplaceAll(field, `"`, `""`) + `"`
}
