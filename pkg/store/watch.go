package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog/log"
)

// EventType describes the nature of a persistence change notification.
type EventType int

const (
	// EventEntriesChanged indicates the stored sequence was rewritten.
	EventEntriesChanged EventType = iota
	// EventInvalidated signals the watcher could not classify a change;
	// callers should reload anyway.
	EventInvalidated
)

func (t EventType) String() string {
	if t == EventEntriesChanged {
		return "entries-changed"
	}
	return "invalidated"
}

// Event is emitted by Persistence.Watch when underlying storage changes.
type Event struct {
	Type EventType
}

// settle is how long a burst of writes must be quiet before it is reported.
// diskv writes a temp file and renames it, which arrives as several events.
const settle = 100 * time.Millisecond

// Watch streams change events until ctx is cancelled. The channel is closed
// once ctx is done or the watcher fails. A slow consumer misses events but
// never a pending reload: at most one event is buffered.
func (p *persistence) Watch(ctx context.Context) (<-chan Event, error) {
	if p.basePath == "" {
		return nil, errors.New("store: persistence base path unknown")
	}
	if err := os.MkdirAll(p.basePath, 0o755); err != nil {
		return nil, fmt.Errorf("store: ensure base path: %w", err)
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("store: create watcher: %w", err)
	}
	if err := watcher.Add(p.basePath); err != nil {
		_ = watcher.Close()
		return nil, fmt.Errorf("store: watch %s: %w", p.basePath, err)
	}

	events := make(chan Event, 1)
	go func() {
		defer close(events)
		defer func() {
			if err := watcher.Close(); err != nil {
				log.Warn().Err(err).Msg("store: watcher close")
			}
		}()

		timer := time.NewTimer(settle)
		if !timer.Stop() {
			<-timer.C
		}
		defer timer.Stop()

		pending, armed := EventEntriesChanged, false
		arm := func(t EventType) {
			if !armed || t == EventInvalidated {
				pending = t
			}
			if !armed {
				timer.Reset(settle)
				armed = true
			}
		}

		for {
			select {
			case <-ctx.Done():
				return
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				log.Debug().Err(err).Msg("store: watcher error")
				arm(EventInvalidated)
			case evt, ok := <-watcher.Events:
				if !ok {
					return
				}
				if !p.isEntriesFile(evt.Name) || evt.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Rename) == 0 {
					continue
				}
				arm(EventEntriesChanged)
			case <-timer.C:
				armed = false
				select {
				case events <- Event{Type: pending}:
				default:
					// A reload is already queued for the consumer.
				}
			}
		}
	}()
	return events, nil
}

func (p *persistence) isEntriesFile(path string) bool {
	return filepath.Clean(path) == filepath.Clean(p.Location())
}
