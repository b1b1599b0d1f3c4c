package commands

import (
	"context"
	"os"

	"github.com/rs/zerolog/log"

	"tableflip.dev/tourdiary/pkg/app"
	"tableflip.dev/tourdiary/pkg/logging"
	"tableflip.dev/tourdiary/pkg/notify"
	"tableflip.dev/tourdiary/pkg/store"
)

// session is what every command that touches the diary starts from.
type session struct {
	settings *store.Settings
	diary    *app.Diary
}

func openSession(ctx context.Context) (*session, error) {
	settings, err := store.LoadConfig()
	if err != nil {
		return nil, err
	}
	logging.New(settings.LogLevel)

	p, err := store.Open(ctx, settings)
	if err != nil {
		return nil, err
	}

	n, err := notify.New(settings.Notifier, os.Stderr)
	if err != nil {
		log.Warn().Err(err).Str("notifier", settings.Notifier).Msg("falling back to terminal notifications")
		n = notify.NewTerminal(os.Stderr)
	}

	return &session{
		settings: settings,
		diary:    app.New(p, n),
	}, nil
}
