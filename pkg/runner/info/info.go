package info

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"

	"tableflip.dev/tourdiary/pkg/store"
)

type Info struct {
	Settings    *store.Settings
	Persistence store.Persistence
	Out         io.Writer
}

func (n *Info) Do(ctx context.Context) error {
	out := n.Out
	if out == nil {
		out = color.Output
	}

	if override := os.Getenv("TOURDIARY_CONFIG_PATH"); override != "" {
		fmt.Fprintln(out, "TOURDIARY_CONFIG_PATH found on env, using ", override)
	} else {
		fmt.Fprintln(out, "TOURDIARY_CONFIG_PATH env var not set")
	}

	if n.Settings == nil {
		var err error
		n.Settings, err = store.LoadConfig()
		if err != nil {
			return err
		}
	}

	if n.Settings.ConfigFile != "" {
		fmt.Fprintln(out, "Config.file: ", n.Settings.ConfigFile)
	}
	fmt.Fprintln(out, "Config.path: ", n.Settings.BasePath())
	fmt.Fprintln(out, "Config.key: ", n.Settings.Key())
	fmt.Fprintln(out, "Config.notifier: ", n.Settings.Notifier)
	fmt.Fprintf(out, "Config.reminder: every %s, tolerance %s, dedupe %t\n",
		n.Settings.ReminderInterval, n.Settings.ReminderTolerance, n.Settings.ReminderDedupe)

	if n.Persistence == nil {
		return fmt.Errorf("failed to create persistence object")
	}

	fmt.Fprintf(out, "Entries: %d stored at %s\n", len(n.Persistence.Entries()), n.Persistence.Location())
	return nil
}
