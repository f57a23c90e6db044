package registry

import (
	"testing"
	"time"

	"github.com/inkbench/preset-groups/internal/host"
	"github.com/inkbench/preset-groups/internal/signature"
)

func preset(id, name string) host.Preset {
	return host.Preset{ID: id, Name: name, Role: host.RoleBrush}
}

func TestAdoptPreservesOrderAndState(t *testing.T) {
	r := New()
	if !r.Adopt(preset("a", "Ink A")) {
		t.Fatalf("expected first adopt to report new")
	}
	r.Adopt(preset("b", "Ink B"))
	r.Adopt(preset("c", "Ink C"))

	sig := signature.Signature{1, 2, 3}
	r.MarkChecked("b", sig, time.Now())

	// Re-adopting refreshes metadata but keeps signature state.
	if r.Adopt(preset("b", "Ink B2")) {
		t.Fatalf("expected re-adopt to report existing")
	}
	entry, ok := r.Entry("b")
	if !ok {
		t.Fatalf("expected entry b")
	}
	if entry.Name != "Ink B2" {
		t.Fatalf("expected refreshed name, got %q", entry.Name)
	}
	if entry.Signature != sig {
		t.Fatalf("expected signature preserved across re-adopt")
	}

	entries := r.Entries()
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}
	for i, want := range []string{"a", "b", "c"} {
		if entries[i].ID != want {
			t.Fatalf("expected order a,b,c; got %s at %d", entries[i].ID, i)
		}
	}
}

func TestForgetRemovesFromRotation(t *testing.T) {
	r := New()
	r.Adopt(preset("a", "A"))
	r.Adopt(preset("b", "B"))
	r.Forget("a")
	r.Forget("missing") // no-op

	entries := r.Entries()
	if len(entries) != 1 || entries[0].ID != "b" {
		t.Fatalf("expected only b to remain, got %v", entries)
	}
	if _, ok := r.Entry("a"); ok {
		t.Fatalf("expected a to be gone")
	}
}

func TestMarkDirtyAndClear(t *testing.T) {
	r := New()
	r.Adopt(preset("a", "A"))
	sig := signature.Signature{9}
	now := time.Now()

	if r.MarkDirty("missing", sig, now) {
		t.Fatalf("expected MarkDirty on unknown id to report false")
	}
	if !r.MarkDirty("a", sig, now) {
		t.Fatalf("expected MarkDirty to succeed")
	}
	entry, _ := r.Entry("a")
	if !entry.Dirty || entry.Signature != sig || !entry.LastCheckedAt.Equal(now) {
		t.Fatalf("unexpected entry after MarkDirty: %+v", entry)
	}

	r.ClearDirty("a")
	entry, _ = r.Entry("a")
	if entry.Dirty {
		t.Fatalf("expected dirty cleared")
	}
	if entry.Signature != sig {
		t.Fatalf("expected signature kept after ClearDirty")
	}
}

func TestReconcileRenamesAndRemoves(t *testing.T) {
	r := New()
	r.Adopt(preset("a", "A"))
	r.Adopt(preset("b", "B"))
	r.Adopt(preset("c", "C"))

	res := r.Reconcile([]host.Preset{
		preset("a", "A renamed"),
		preset("c", "C"),
		preset("d", "D"), // unknown: not adopted implicitly
	})

	if len(res.Renamed) != 1 || res.Renamed[0] != "a" {
		t.Fatalf("expected rename of a, got %v", res.Renamed)
	}
	if len(res.Removed) != 1 || res.Removed[0] != "b" {
		t.Fatalf("expected removal of b, got %v", res.Removed)
	}
	if _, ok := r.Entry("d"); ok {
		t.Fatalf("reconcile must not adopt unknown presets")
	}
	entry, _ := r.Entry("a")
	if entry.Name != "A renamed" {
		t.Fatalf("expected renamed entry, got %q", entry.Name)
	}
	entries := r.Entries()
	if len(entries) != 2 || entries[0].ID != "a" || entries[1].ID != "c" {
		t.Fatalf("unexpected rotation order after reconcile: %v", entries)
	}
}
