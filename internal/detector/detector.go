// Package detector watches host thumbnails for changes. It rotates through
// the registered presets in bounded batches, so each tick costs O(batch)
// regardless of how many presets exist, and it polls the host catalog for
// renames and removals. Findings are published as events; the UI thread
// applies them through the dispatcher.
package detector

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/inkbench/preset-groups/internal/host"
	"github.com/inkbench/preset-groups/internal/registry"
	"github.com/inkbench/preset-groups/internal/signature"
)

// Kind represents the type of finding emitted by the detector.
type Kind int

const (
	// KindBaseline is the first signature observed for an item.
	KindBaseline Kind = iota
	// KindChanged is a signature that differs from the stored one.
	KindChanged
	// KindMissing is an item the host no longer has a thumbnail for.
	KindMissing
	// KindCatalog carries a fresh host preset listing.
	KindCatalog
	// KindHostDown is emitted once when the host stops responding.
	KindHostDown
)

// Observation pairs an item with a freshly computed signature.
type Observation struct {
	ID        string
	Signature signature.Signature
}

// Event conveys one detector finding.
type Event struct {
	Kind Kind
	Data interface{}
	Err  error
}

// Config tunes the polling cadence.
type Config struct {
	Interval        time.Duration // thumbnail tick, default 2s
	BatchSize       int           // max thumbnails sampled per tick, default 50
	CatalogInterval time.Duration // catalog poll, default 5s
}

func (c Config) withDefaults() Config {
	if c.Interval <= 0 {
		c.Interval = 2 * time.Second
	}
	if c.BatchSize <= 0 {
		c.BatchSize = 50
	}
	if c.CatalogInterval <= 0 {
		c.CatalogInterval = 5 * time.Second
	}
	return c
}

// Watcher polls the host at a fixed interval and publishes events. A watcher
// is one-shot: Stop it when the view hides and build a fresh one on show,
// which also restarts the rotation from the top.
type Watcher struct {
	collection host.Collection
	registry   *registry.Registry
	sampler    signature.Sampler
	cfg        Config

	ctx    context.Context
	cancel context.CancelFunc

	events chan Event
	wg     sync.WaitGroup

	cursor   int
	hostDown atomic.Bool
}

// NewWatcher starts the thumbnail and catalog pollers.
func NewWatcher(col host.Collection, reg *registry.Registry, sampler signature.Sampler, cfg Config) *Watcher {
	ctx, cancel := context.WithCancel(context.Background())
	w := &Watcher{
		collection: col,
		registry:   reg,
		sampler:    sampler,
		cfg:        cfg.withDefaults(),
		ctx:        ctx,
		cancel:     cancel,
		events:     make(chan Event, 16),
	}

	w.startThumbnailPoller()
	w.startCatalogPoller()

	go func() {
		w.wg.Wait()
		close(w.events)
	}()

	return w
}

// Events returns a channel of detector events.
func (w *Watcher) Events() <-chan Event {
	return w.events
}

// Stop cancels the watcher. Pollers exit after their current pass completes;
// use Wait if a clean drain is required (e.g. in tests).
func (w *Watcher) Stop() {
	w.cancel()
}

// Wait blocks until all poller goroutines have exited and the events channel
// is closed. Call after Stop when a clean shutdown is required.
func (w *Watcher) Wait() {
	w.wg.Wait()
}

func (w *Watcher) startThumbnailPoller() {
	throttle := newThrottle(250 * time.Millisecond)
	w.wg.Add(1)
	go w.poll(w.cfg.Interval, func() []Event {
		throttle.wait()
		return w.sampleBatch()
	})
}

func (w *Watcher) startCatalogPoller() {
	throttle := newThrottle(250 * time.Millisecond)
	w.wg.Add(1)
	go w.poll(w.cfg.CatalogInterval, func() []Event {
		throttle.wait()
		return w.fetchCatalog()
	})
}

func (w *Watcher) poll(interval time.Duration, pass func() []Event) {
	defer w.wg.Done()

	emit := func() bool {
		for _, evt := range pass() {
			select {
			case <-w.ctx.Done():
				return false
			case w.events <- evt:
			}
		}
		return w.ctx.Err() == nil
	}

	if !emit() {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-w.ctx.Done():
			return
		case <-ticker.C:
			if !emit() {
				return
			}
		}
	}
}

// sampleBatch checks the next slice of the rotation. At most BatchSize
// thumbnails are fetched and hashed per call.
func (w *Watcher) sampleBatch() []Event {
	entries := w.registry.Entries()
	if len(entries) == 0 {
		return nil
	}
	n := w.cfg.BatchSize
	if n > len(entries) {
		n = len(entries)
	}
	start := w.cursor % len(entries)
	w.cursor = (start + n) % len(entries)

	var out []Event
	now := time.Now()
	for i := 0; i < n; i++ {
		entry := entries[(start+i)%len(entries)]
		img, err := w.collection.Thumbnail(entry.ID)
		switch {
		case errors.Is(err, host.ErrPresetMissing):
			out = append(out, Event{Kind: KindMissing, Data: entry.ID})
			continue
		case err != nil:
			if evt, ok := w.markHostDown(err); ok {
				out = append(out, evt)
			}
			return out
		}
		w.markHostUp()

		sig := w.sampler.Sum(img)
		switch {
		case entry.Signature.Zero():
			out = append(out, Event{Kind: KindBaseline, Data: Observation{ID: entry.ID, Signature: sig}})
		case sig != entry.Signature:
			out = append(out, Event{Kind: KindChanged, Data: Observation{ID: entry.ID, Signature: sig}})
		default:
			w.registry.MarkChecked(entry.ID, sig, now)
		}
	}
	return out
}

func (w *Watcher) fetchCatalog() []Event {
	presets, err := w.collection.ListPresets()
	if err != nil {
		if evt, ok := w.markHostDown(err); ok {
			return []Event{evt}
		}
		return nil
	}
	w.markHostUp()
	return []Event{{Kind: KindCatalog, Data: presets}}
}

// markHostDown reports whether this failure is the first since the host was
// last seen healthy. Repeat failures stay silent.
func (w *Watcher) markHostDown(err error) (Event, bool) {
	if w.hostDown.Swap(true) {
		return Event{}, false
	}
	return Event{Kind: KindHostDown, Err: err}, true
}

func (w *Watcher) markHostUp() {
	w.hostDown.Store(false)
}
