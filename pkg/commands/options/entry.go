package options

import (
	"github.com/spf13/cobra"

	"tableflip.dev/tourdiary/pkg/app"
)

// EntryOptions
type EntryOptions struct {
	Topic   string
	Place   string
	Purpose string
	At      string
	Alarm   bool
}

func AddEntryArgs(cmd *cobra.Command, o *EntryOptions) {
	cmd.Flags().StringVar(&o.Topic, "topic", "",
		"Short label for the entry.")
	cmd.Flags().StringVar(&o.Place, "place", "",
		"Where the entry takes place.")
	cmd.Flags().StringVar(&o.Purpose, "purpose", "",
		"Why you are going.")
	cmd.Flags().StringVar(&o.At, "at", "",
		`Date and time, example: --at="2024-05-01T09:00".`)
	cmd.Flags().BoolVar(&o.Alarm, "alarm", false,
		"Remind at the scheduled time.")
}

func (o *EntryOptions) Form() app.Form {
	return app.Form{
		Topic:    o.Topic,
		Place:    o.Place,
		Purpose:  o.Purpose,
		DateTime: o.At,
		Alarm:    o.Alarm,
	}
}
