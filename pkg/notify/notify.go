// Package notify delivers reminder notifications to the user.
package notify

import (
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"
	"sync"
	"time"

	"github.com/fatih/color"
	"github.com/gen2brain/beeep"
	"github.com/rs/zerolog/log"
)

// Permission is the state of the notification capability.
type Permission int

const (
	Default Permission = iota
	Granted
	Denied
	Unsupported
)

func (p Permission) String() string {
	switch p {
	case Granted:
		return "granted"
	case Denied:
		return "denied"
	case Unsupported:
		return "unsupported"
	default:
		return "default"
	}
}

// ErrUnavailable is returned by Notify when the capability cannot be used.
var ErrUnavailable = errors.New("notify: notifications unavailable")

// Notifier is the notification surface the reminder poller talks to.
type Notifier interface {
	// RequestPermission asks once; later calls return the settled state.
	RequestPermission() Permission
	Permission() Permission
	Notify(title, body string) error
}

// New returns the notifier named by kind: desktop, terminal or none.
func New(kind string, w io.Writer) (Notifier, error) {
	switch strings.ToLower(strings.TrimSpace(kind)) {
	case "", "desktop":
		return NewDesktop(), nil
	case "terminal":
		return NewTerminal(w), nil
	case "none", "off":
		return None{}, nil
	default:
		return nil, fmt.Errorf("notify: unknown notifier %q (expected desktop, terminal or none)", kind)
	}
}

// Desktop sends OS notifications through beeep.
type Desktop struct {
	once  sync.Once
	mu    sync.RWMutex
	state Permission

	// probe and send are replaced in tests.
	probe func() bool
	send  func(title, body string) error
}

func NewDesktop() *Desktop {
	return &Desktop{
		probe: desktopAvailable,
		send: func(title, body string) error {
			return beeep.Notify(title, body, "")
		},
	}
}

func (d *Desktop) RequestPermission() Permission {
	d.once.Do(func() {
		state := Granted
		if !d.probe() {
			state = Unsupported
			log.Warn().Msg("This system does not support desktop notifications.")
		}
		d.mu.Lock()
		d.state = state
		d.mu.Unlock()
	})
	return d.Permission()
}

func (d *Desktop) Permission() Permission {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.state
}

func (d *Desktop) Notify(title, body string) error {
	if d.Permission() != Granted {
		return ErrUnavailable
	}
	if err := d.send(title, body); err != nil {
		return fmt.Errorf("notify: desktop: %w", err)
	}
	return nil
}

// desktopAvailable reports whether a notification daemon is plausibly
// reachable from this process.
func desktopAvailable() bool {
	switch runtime.GOOS {
	case "darwin", "windows":
		return true
	}
	for _, env := range []string{"DBUS_SESSION_BUS_ADDRESS", "DISPLAY", "WAYLAND_DISPLAY"} {
		if os.Getenv(env) != "" {
			return true
		}
	}
	return false
}

// Terminal writes reminders as a highlighted line.
type Terminal struct {
	mu  sync.Mutex
	out io.Writer
	now func() time.Time
}

func NewTerminal(w io.Writer) *Terminal {
	if w == nil {
		w = color.Error
	}
	return &Terminal{out: w, now: time.Now}
}

func (t *Terminal) RequestPermission() Permission { return Granted }

func (t *Terminal) Permission() Permission { return Granted }

func (t *Terminal) Notify(title, body string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	ts := color.New(color.Faint)
	b := color.New(color.Bold, color.FgHiYellow)
	_, _ = ts.Fprintf(t.out, "%s ", t.now().Format("15:04"))
	_, _ = b.Fprintf(t.out, "🔔 %s", title)
	_, err := fmt.Fprintf(t.out, ": %s\n", body)
	return err
}

// None never delivers anything.
type None struct{}

func (None) RequestPermission() Permission { return Unsupported }

func (None) Permission() Permission { return Unsupported }

func (None) Notify(string, string) error { return ErrUnavailable }

// Multi fans a notification out to every notifier that has permission.
type Multi []Notifier

func (m Multi) RequestPermission() Permission {
	best := Unsupported
	for _, n := range m {
		if p := n.RequestPermission(); p == Granted {
			best = Granted
		}
	}
	return best
}

func (m Multi) Permission() Permission {
	for _, n := range m {
		if n.Permission() == Granted {
			return Granted
		}
	}
	return Unsupported
}

func (m Multi) Notify(title, body string) error {
	var errs []error
	sent := false
	for _, n := range m {
		if n.Permission() != Granted {
			continue
		}
		if err := n.Notify(title, body); err != nil {
			errs = append(errs, err)
			continue
		}
		sent = true
	}
	if sent {
		return nil
	}
	if len(errs) == 0 {
		return ErrUnavailable
	}
	return errors.Join(errs...)
}
