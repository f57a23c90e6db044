// Package store persists the organizer state between sessions. State lives
// in a single diskv-backed JSON document; saves are debounced so a burst of
// edits costs one disk write.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/peterbourgon/diskv/v3"

	"github.com/inkbench/preset-groups/internal/host"
	"github.com/inkbench/preset-groups/internal/layout"
	"github.com/inkbench/preset-groups/internal/logging"
)

const (
	layoutKey = "layout"
	// DefaultSaveDelay is how long the store waits after the last edit
	// before writing.
	DefaultSaveDelay = 500 * time.Millisecond
)

// PresetMeta is the display metadata cached per adopted preset so the list
// renders immediately on startup, before the host answers.
type PresetMeta struct {
	ID   string    `json:"id"`
	Name string    `json:"name"`
	Role host.Role `json:"role,omitempty"`
}

// Snapshot is the persisted document.
type Snapshot struct {
	Layout  layout.Snapshot `json:"layout"`
	Presets []PresetMeta    `json:"presets,omitempty"`
	SavedAt time.Time       `json:"savedAt"`
}

// Store owns the on-disk document and the save debounce.
type Store struct {
	d     *diskv.Diskv
	delay time.Duration

	mu      sync.Mutex
	pending *Snapshot
	timer   *time.Timer
}

// New opens (or creates) a store rooted at baseDir. A non-positive delay
// makes every Save write immediately.
func New(baseDir string, delay time.Duration) (*Store, error) {
	if baseDir == "" {
		return nil, errors.New("store: base directory required")
	}
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("store: ensure base path: %w", err)
	}
	return &Store{
		d: diskv.New(diskv.Options{
			BasePath:     baseDir,
			CacheSizeMax: 1024 * 1024, // 1MB
		}),
		delay: delay,
	}, nil
}

// Load reads the persisted snapshot. ok is false when no document exists
// yet; a corrupt document is an error, not a silent reset.
func (s *Store) Load() (Snapshot, bool, error) {
	data, err := s.d.Read(layoutKey)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Snapshot{}, false, nil
		}
		return Snapshot{}, false, fmt.Errorf("store: read %s: %w", layoutKey, err)
	}
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return Snapshot{}, false, fmt.Errorf("store: decode %s: %w", layoutKey, err)
	}
	return snap, true, nil
}

// Save schedules the snapshot for writing. Repeated calls within the delay
// window coalesce; only the latest snapshot reaches disk.
func (s *Store) Save(snap Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	snap.SavedAt = time.Now()
	s.pending = &snap
	if s.delay <= 0 {
		logging.Error(s.writeLocked())
		return
	}
	if s.timer == nil {
		s.timer = time.AfterFunc(s.delay, func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			// Nobody waits on the timer, so a failed background write is
			// logged; the snapshot stays pending for the next Flush.
			logging.Error(s.writeLocked())
		})
		return
	}
	s.timer.Reset(s.delay)
}

// Flush writes any pending snapshot immediately. Call on shutdown.
func (s *Store) Flush() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.timer != nil {
		s.timer.Stop()
	}
	return s.writeLocked()
}

func (s *Store) writeLocked() error {
	if s.pending == nil {
		return nil
	}
	data, err := json.MarshalIndent(s.pending, "", "  ")
	if err != nil {
		return fmt.Errorf("store: encode %s: %w", layoutKey, err)
	}
	if err := s.d.Write(layoutKey, data); err != nil {
		return fmt.Errorf("store: write %s: %w", layoutKey, err)
	}
	s.pending = nil
	return nil
}
