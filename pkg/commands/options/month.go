package options

import (
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/tourdiary/pkg/calendar"
)

// MonthOptions
type MonthOptions struct {
	Month  string
	Offset int
}

func AddMonthArgs(cmd *cobra.Command, o *MonthOptions) {
	cmd.Flags().StringVar(&o.Month, "month", "",
		`Month to show, example: --month="2024-05". Defaults to the current month.`)
	cmd.Flags().IntVar(&o.Offset, "offset", 0,
		"Months to move forward (or back, when negative) from --month.")
}

func (o *MonthOptions) GetMonth(now time.Time) (calendar.Month, error) {
	m := calendar.Current(now)
	if o.Month != "" {
		var err error
		if m, err = calendar.ParseMonth(o.Month); err != nil {
			return calendar.Month{}, err
		}
	}
	return m.Add(o.Offset), nil
}
