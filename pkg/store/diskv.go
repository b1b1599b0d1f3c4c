package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"sync"

	"github.com/peterbourgon/diskv/v3"
	"github.com/rs/zerolog/log"

	"tableflip.dev/tourdiary/pkg/entry"
)

// ErrNoConfig is returned by Open when neither a config nor a loadable
// default is available.
var ErrNoConfig = errors.New("store: no config")

// Persistence defines the persistence contract for diary entries. The whole
// sequence lives under a single key and every write replaces it.
type Persistence interface {
	Load(ctx context.Context) error
	Entries() []entry.Entry
	// Append returns the position e was stored at.
	Append(e entry.Entry) (int, error)
	Persist() error
	Location() string
	Watch(ctx context.Context) (<-chan Event, error)
}

// Open creates a Persistence backed by diskv and loads the stored entries.
func Open(ctx context.Context, cfg Config) (Persistence, error) {
	if cfg == nil {
		settings, err := LoadConfig()
		if err != nil {
			return nil, err
		}
		if settings == nil {
			return nil, ErrNoConfig
		}
		cfg = settings
	}

	p := New(cfg)
	if err := p.Load(ctx); err != nil {
		return nil, err
	}
	return p, nil
}

// New creates a Persistence without reading storage.
func New(cfg Config) Persistence {
	key := cfg.Key()
	if key == "" {
		key = DefaultKey
	}
	basePath := cfg.BasePath()
	return &persistence{
		d: diskv.New(diskv.Options{
			BasePath:     basePath,
			TempDir:      filepath.Join(basePath, ".tmp"),
			Transform:    flatTransform,
			CacheSizeMax: 1024 * 1024, // 1MB
		}),
		basePath: basePath,
		key:      key,
	}
}

type persistence struct {
	mu       sync.RWMutex
	d        *diskv.Diskv
	basePath string
	key      string
	entries  []entry.Entry
}

func flatTransform(string) []string {
	return []string{}
}

// Load replaces the in-memory sequence with the stored one. A missing key is
// an empty diary. A value that does not decode is set aside under
// <key>.corrupt and the diary starts empty.
func (p *persistence) Load(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if !p.d.Has(p.key) {
		p.swap(nil)
		return nil
	}

	// Bypass the cache: another process may have written since we last read.
	rc, err := p.d.ReadStream(p.key, true)
	if err != nil {
		return fmt.Errorf("store: read %s: %w", p.key, err)
	}
	defer rc.Close()
	val, err := io.ReadAll(rc)
	if err != nil {
		return fmt.Errorf("store: read %s: %w", p.key, err)
	}
	if len(val) == 0 {
		p.swap(nil)
		return nil
	}

	var list []entry.Entry
	if err := json.Unmarshal(val, &list); err != nil {
		log.Warn().Err(err).Str("key", p.key).Msg("store: stored entries are malformed, starting empty")
		if werr := p.d.Write(p.key+".corrupt", val); werr != nil {
			log.Warn().Err(werr).Str("key", p.key).Msg("store: could not keep malformed value")
		}
		p.swap(nil)
		return nil
	}
	p.swap(list)
	return nil
}

func (p *persistence) swap(list []entry.Entry) {
	p.mu.Lock()
	p.entries = list
	p.mu.Unlock()
}

// Entries returns a copy of the sequence in insertion order.
func (p *persistence) Entries() []entry.Entry {
	p.mu.RLock()
	defer p.mu.RUnlock()
	out := make([]entry.Entry, len(p.entries))
	copy(out, p.entries)
	return out
}

// Append adds e to the end of the sequence, persists the whole sequence and
// returns e's position. The in-memory sequence only changes once the write
// succeeded.
func (p *persistence) Append(e entry.Entry) (int, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	next := make([]entry.Entry, len(p.entries), len(p.entries)+1)
	copy(next, p.entries)
	next = append(next, e)

	if err := p.write(next); err != nil {
		return 0, err
	}
	p.entries = next
	return len(next) - 1, nil
}

func (p *persistence) Persist() error {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.write(p.entries)
}

func (p *persistence) write(list []entry.Entry) error {
	if list == nil {
		list = []entry.Entry{}
	}
	data, err := json.Marshal(list)
	if err != nil {
		return fmt.Errorf("store: encode entries: %w", err)
	}
	if err := p.d.Write(p.key, data); err != nil {
		return fmt.Errorf("store: write %s: %w", p.key, err)
	}
	return nil
}

func (p *persistence) Location() string {
	return filepath.Join(p.basePath, p.key)
}
