package dispatcher

import (
	"reflect"
	"testing"

	"github.com/inkbench/preset-groups/internal/detector"
	"github.com/inkbench/preset-groups/internal/host"
	"github.com/inkbench/preset-groups/internal/layout"
	"github.com/inkbench/preset-groups/internal/notify"
	"github.com/inkbench/preset-groups/internal/registry"
	"github.com/inkbench/preset-groups/internal/selection"
	"github.com/inkbench/preset-groups/internal/signature"
)

type fixture struct {
	dispatcher *Dispatcher
	registry   *registry.Registry
	layout     *layout.Model
	selection  *selection.Model
	events     *[]notify.Event
	groupID    string
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	hub := notify.NewHub()
	var events []notify.Event
	hub.Subscribe(func(evt notify.Event) { events = append(events, evt) })

	reg := registry.New()
	lay := layout.New(false, nil)
	sel := selection.New(nil)
	g := lay.AddGroup("studio")
	for _, id := range []string{"a", "b", "c"} {
		reg.Adopt(host.Preset{ID: id, Name: id})
	}
	if _, err := lay.AddItems(g.ID, []string{"a", "b", "c"}, -1); err != nil {
		t.Fatalf("AddItems: %v", err)
	}
	return fixture{
		dispatcher: New(reg, lay, sel, hub),
		registry:   reg,
		layout:     lay,
		selection:  sel,
		events:     &events,
		groupID:    g.ID,
	}
}

func sig(b byte) signature.Signature {
	var s signature.Signature
	s[0] = b
	return s
}

func TestBaselineStoresSignatureWithoutDirty(t *testing.T) {
	f := newFixture(t)
	res := f.dispatcher.Handle(detector.Event{
		Kind: detector.KindBaseline,
		Data: detector.Observation{ID: "a", Signature: sig(1)},
	})
	if !res.RegistryUpdated {
		t.Fatalf("registry not updated")
	}
	entry, _ := f.registry.Entry("a")
	if entry.Signature != sig(1) || entry.Dirty {
		t.Fatalf("entry = %+v, want baseline signature, not dirty", entry)
	}
	if len(*f.events) != 0 {
		t.Fatalf("baseline published %v", *f.events)
	}
}

func TestChangedMarksDirtyAndNotifies(t *testing.T) {
	f := newFixture(t)
	res := f.dispatcher.Handle(detector.Event{
		Kind: detector.KindChanged,
		Data: detector.Observation{ID: "b", Signature: sig(2)},
	})
	if !res.RegistryUpdated {
		t.Fatalf("registry not updated")
	}
	entry, _ := f.registry.Entry("b")
	if !entry.Dirty || entry.Signature != sig(2) {
		t.Fatalf("entry = %+v, want dirty with new signature", entry)
	}
	evts := *f.events
	if len(evts) != 1 || evts[0].Kind != notify.ItemDirty || !reflect.DeepEqual(evts[0].ItemIDs, []string{"b"}) {
		t.Fatalf("events = %v", evts)
	}
}

func TestChangedForUnknownItemIsIgnored(t *testing.T) {
	f := newFixture(t)
	res := f.dispatcher.Handle(detector.Event{
		Kind: detector.KindChanged,
		Data: detector.Observation{ID: "ghost", Signature: sig(9)},
	})
	if res.RegistryUpdated || len(*f.events) != 0 {
		t.Fatalf("unknown item mutated state: %+v %v", res, *f.events)
	}
}

func TestMissingDropsEverywhere(t *testing.T) {
	f := newFixture(t)
	f.selection.Click("b", selection.ScopeItems, selection.ModNone, f.layout.CurrentOrder())

	res := f.dispatcher.Handle(detector.Event{Kind: detector.KindMissing, Data: "b"})
	if !res.RegistryUpdated || !res.LayoutUpdated {
		t.Fatalf("res = %+v", res)
	}
	if _, ok := f.registry.Entry("b"); ok {
		t.Fatalf("registry still knows b")
	}
	if got := f.layout.CurrentOrder(); !reflect.DeepEqual(got, []string{"a", "c"}) {
		t.Fatalf("layout order = %v", got)
	}
	if f.selection.IsSelected("b") {
		t.Fatalf("stale selection survived")
	}
}

func TestCatalogReconciliation(t *testing.T) {
	f := newFixture(t)
	res := f.dispatcher.Handle(detector.Event{
		Kind: detector.KindCatalog,
		Data: []host.Preset{
			{ID: "a", Name: "renamed"},
			{ID: "c", Name: "c"},
		},
	})
	if !res.RegistryUpdated || !res.LayoutUpdated {
		t.Fatalf("res = %+v", res)
	}
	entry, _ := f.registry.Entry("a")
	if entry.Name != "renamed" {
		t.Fatalf("rename not applied: %+v", entry)
	}
	if got := f.layout.CurrentOrder(); !reflect.DeepEqual(got, []string{"a", "c"}) {
		t.Fatalf("vanished preset kept: %v", got)
	}
	if !reflect.DeepEqual(res.Reconciled.Renamed, []string{"a"}) || !reflect.DeepEqual(res.Reconciled.Removed, []string{"b"}) {
		t.Fatalf("reconcile outcome = %+v", res.Reconciled)
	}
}

func TestHostDownPassesThrough(t *testing.T) {
	f := newFixture(t)
	res := f.dispatcher.Handle(detector.Event{Kind: detector.KindHostDown, Err: host.ErrUnavailable})
	if !res.HostDown || res.Err == nil {
		t.Fatalf("res = %+v", res)
	}
	if res.RegistryUpdated || res.LayoutUpdated {
		t.Fatalf("host-down mutated stores")
	}
}
