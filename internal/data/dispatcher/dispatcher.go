// Package dispatcher applies detector findings to the model stores. It runs
// on the UI thread, so every store mutation it makes is ordered with the
// user's own edits.
package dispatcher

import (
	"time"

	"github.com/inkbench/preset-groups/internal/detector"
	"github.com/inkbench/preset-groups/internal/host"
	"github.com/inkbench/preset-groups/internal/layout"
	"github.com/inkbench/preset-groups/internal/notify"
	"github.com/inkbench/preset-groups/internal/registry"
	"github.com/inkbench/preset-groups/internal/selection"
)

type Result struct {
	RegistryUpdated bool
	LayoutUpdated   bool
	HostDown        bool
	// Reconciled reports the outcome of a catalog event; empty otherwise.
	Reconciled registry.ReconcileResult
	Err        error
}

type Dispatcher struct {
	registry  *registry.Registry
	layout    *layout.Model
	selection *selection.Model
	hub       *notify.Hub
}

func New(reg *registry.Registry, lay *layout.Model, sel *selection.Model, hub *notify.Hub) *Dispatcher {
	return &Dispatcher{registry: reg, layout: lay, selection: sel, hub: hub}
}

func (d *Dispatcher) Handle(evt detector.Event) Result {
	var res Result
	switch evt.Kind {
	case detector.KindBaseline:
		if obs, ok := evt.Data.(detector.Observation); ok {
			d.registry.MarkChecked(obs.ID, obs.Signature, time.Now())
			res.RegistryUpdated = true
		}
	case detector.KindChanged:
		if obs, ok := evt.Data.(detector.Observation); ok {
			if d.registry.MarkDirty(obs.ID, obs.Signature, time.Now()) {
				res.RegistryUpdated = true
				d.publish(notify.Event{Kind: notify.ItemDirty, ItemIDs: []string{obs.ID}})
			}
		}
	case detector.KindMissing:
		if id, ok := evt.Data.(string); ok {
			res = d.drop([]string{id})
		}
	case detector.KindCatalog:
		if presets, ok := evt.Data.([]host.Preset); ok {
			outcome := d.registry.Reconcile(presets)
			res.Reconciled = outcome
			res.RegistryUpdated = len(outcome.Renamed) > 0 || len(outcome.Removed) > 0
			if len(outcome.Removed) > 0 {
				dropped := d.drop(outcome.Removed)
				res.LayoutUpdated = dropped.LayoutUpdated
			}
		}
	case detector.KindHostDown:
		res.HostDown = true
		res.Err = evt.Err
	}
	return res
}

// drop removes vanished presets from every store and clears any stale
// selection over them.
func (d *Dispatcher) drop(ids []string) Result {
	var res Result
	for _, id := range ids {
		if _, known := d.registry.Entry(id); known {
			d.registry.Forget(id)
			res.RegistryUpdated = true
		}
	}
	if d.layout.RemoveItems(ids) > 0 {
		res.LayoutUpdated = true
	}
	if d.selection != nil {
		valid := make(map[string]struct{})
		for _, id := range d.layout.CurrentOrder() {
			valid[id] = struct{}{}
		}
		for _, id := range d.layout.GroupOrder() {
			valid[id] = struct{}{}
		}
		d.selection.Cleanup(valid)
	}
	return res
}

func (d *Dispatcher) publish(evt notify.Event) {
	if d.hub != nil {
		d.hub.Publish(evt)
	}
}
