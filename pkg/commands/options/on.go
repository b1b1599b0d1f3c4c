package options

import (
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/tourdiary/pkg/entry"
)

const (
	layoutISO      = "2006-1-2"
	layoutISOShort = "1/2"
)

// OnOptions
type OnOptions struct {
	OnString string
}

func AddOnArgs(cmd *cobra.Command, o *OnOptions) {
	cmd.Flags().StringVar(&o.OnString, "on", "",
		`Specify a date, example: --on="2024-5-1" or --on="5/1". Defaults to today.`)
}

// GetOn resolves the flag against now. A bare month/day means this year.
func (o *OnOptions) GetOn(now time.Time) (time.Time, error) {
	if o.OnString == "" {
		return now, nil
	}
	if t, err := time.ParseInLocation(layoutISO, o.OnString, time.Local); err == nil {
		return t, nil
	}
	t, err := time.ParseInLocation(layoutISOShort, o.OnString, time.Local)
	if err != nil {
		return entry.ParseTime(o.OnString)
	}
	return t.AddDate(now.Year(), 0, 0), nil
}
