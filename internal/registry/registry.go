// Package registry holds the canonical references to host presets together
// with their last-known display metadata. It owns no ordering; that belongs
// to the layout model.
package registry

import (
	"sync"
	"time"

	"github.com/inkbench/preset-groups/internal/host"
	"github.com/inkbench/preset-groups/internal/signature"
)

// Entry is the cached view of one host preset.
type Entry struct {
	ID            string
	Name          string
	Role          host.Role
	Signature     signature.Signature
	LastCheckedAt time.Time
	Dirty         bool
}

// Registry maps preset ids to entries, preserving adoption order so the
// change detector can rotate through items deterministically. All methods
// are safe for concurrent use: the detector goroutine reads snapshots while
// the UI thread writes.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]*Entry
	order   []string
}

func New() *Registry {
	return &Registry{entries: make(map[string]*Entry)}
}

// Adopt records a host preset, keeping existing signature state when the
// preset is already known. Returns true when the entry is new.
func (r *Registry) Adopt(p host.Preset) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if existing, ok := r.entries[p.ID]; ok {
		existing.Name = p.Name
		existing.Role = p.Role
		return false
	}
	r.entries[p.ID] = &Entry{ID: p.ID, Name: p.Name, Role: p.Role}
	r.order = append(r.order, p.ID)
	return true
}

// Rename updates the display name. Returns false for unknown ids.
func (r *Registry) Rename(id, name string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	entry, ok := r.entries[id]
	if !ok || entry.Name == name {
		return false
	}
	entry.Name = name
	return true
}

// Forget drops an entry from the registry and the rotation order.
func (r *Registry) Forget(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.entries[id]; !ok {
		return
	}
	delete(r.entries, id)
	for i, existing := range r.order {
		if existing == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
}

// Entry returns a copy of the entry for id.
func (r *Registry) Entry(id string) (Entry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	entry, ok := r.entries[id]
	if !ok {
		return Entry{}, false
	}
	return *entry, true
}

// Entries returns copies of all entries in adoption order.
func (r *Registry) Entries() []Entry {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Entry, 0, len(r.order))
	for _, id := range r.order {
		if entry, ok := r.entries[id]; ok {
			out = append(out, *entry)
		}
	}
	return out
}

// Len reports how many presets are registered.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}

// MarkChecked stores a freshly computed signature without flagging the item
// dirty. Used for the first observation of an item, which is a baseline,
// not a change.
func (r *Registry) MarkChecked(id string, sig signature.Signature, at time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if entry, ok := r.entries[id]; ok {
		entry.Signature = sig
		entry.LastCheckedAt = at
	}
}

// MarkDirty stores the new signature and flags the item for refresh.
func (r *Registry) MarkDirty(id string, sig signature.Signature, at time.Time) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	entry, ok := r.entries[id]
	if !ok {
		return false
	}
	entry.Signature = sig
	entry.LastCheckedAt = at
	entry.Dirty = true
	return true
}

// ClearDirty acknowledges a completed refresh.
func (r *Registry) ClearDirty(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if entry, ok := r.entries[id]; ok {
		entry.Dirty = false
	}
}

// ReconcileResult reports what a catalog reconciliation changed.
type ReconcileResult struct {
	Renamed []string
	Removed []string
}

// Reconcile folds a fresh host listing into the registry: renames are
// applied to known entries and entries for vanished presets are dropped.
// New presets are NOT adopted here; adoption happens when the user adds a
// preset to a group.
func (r *Registry) Reconcile(presets []host.Preset) ReconcileResult {
	byID := make(map[string]host.Preset, len(presets))
	for _, p := range presets {
		byID[p.ID] = p
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	var res ReconcileResult
	kept := r.order[:0]
	for _, id := range r.order {
		entry := r.entries[id]
		fresh, ok := byID[id]
		if !ok {
			delete(r.entries, id)
			res.Removed = append(res.Removed, id)
			continue
		}
		if fresh.Name != entry.Name {
			entry.Name = fresh.Name
			res.Renamed = append(res.Renamed, id)
		}
		entry.Role = fresh.Role
		kept = append(kept, id)
	}
	r.order = kept
	return res
}
