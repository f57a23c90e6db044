package drag

import (
	"reflect"
	"testing"

	"github.com/inkbench/preset-groups/internal/layout"
	"github.com/inkbench/preset-groups/internal/selection"
)

func fixture(t *testing.T) (*Engine, *layout.Model, *selection.Model, []string) {
	t.Helper()
	lay := layout.New(false, nil)
	sel := selection.New(nil)
	g1 := lay.AddGroup("one")
	g2 := lay.AddGroup("two")
	if _, err := lay.AddItems(g1.ID, []string{"a", "b", "c"}, -1); err != nil {
		t.Fatalf("AddItems: %v", err)
	}
	if _, err := lay.AddItems(g2.ID, []string{"x", "y"}, -1); err != nil {
		t.Fatalf("AddItems: %v", err)
	}
	return NewEngine(lay, sel), lay, sel, []string{g1.ID, g2.ID}
}

func TestPressCollapsesSelectionToUnselectedElement(t *testing.T) {
	eng, lay, sel, _ := fixture(t)
	sel.Click("a", selection.ScopeItems, selection.ModNone, lay.CurrentOrder())
	sel.Click("b", selection.ScopeItems, selection.ModToggle, lay.CurrentOrder())

	eng.Press("x", selection.ScopeItems, Point{X: 1, Y: 5})
	if got := sel.Current(lay.CurrentOrder()); !reflect.DeepEqual(got, []string{"x"}) {
		t.Fatalf("selection after press = %v, want [x]", got)
	}
	if eng.Phase() != Pressed {
		t.Fatalf("phase = %v, want pressed", eng.Phase())
	}
}

func TestPressOnSelectedElementKeepsBlock(t *testing.T) {
	eng, lay, sel, _ := fixture(t)
	sel.Click("a", selection.ScopeItems, selection.ModNone, lay.CurrentOrder())
	sel.Click("c", selection.ScopeItems, selection.ModRange, lay.CurrentOrder())

	eng.Press("b", selection.ScopeItems, Point{X: 1, Y: 2})
	if got := sel.Current(lay.CurrentOrder()); !reflect.DeepEqual(got, []string{"a", "b", "c"}) {
		t.Fatalf("selection after press = %v, want block intact", got)
	}
}

func TestMotionBelowThresholdStaysPressed(t *testing.T) {
	eng, _, _, groups := fixture(t)
	eng.Press("a", selection.ScopeItems, Point{X: 4, Y: 4})
	eng.Move(Point{X: 4, Y: 5}, Slot{Scope: selection.ScopeItems, GroupID: groups[0], Index: 2}, true)
	if eng.Phase() != Pressed {
		t.Fatalf("phase = %v, want pressed", eng.Phase())
	}
	if err := eng.Release(); err != nil {
		t.Fatalf("Release: %v", err)
	}
	if eng.Phase() != Idle {
		t.Fatalf("phase after release = %v, want idle", eng.Phase())
	}
}

func TestDragCommitsBlockMoveAcrossGroups(t *testing.T) {
	eng, lay, sel, groups := fixture(t)
	sel.Click("a", selection.ScopeItems, selection.ModNone, lay.CurrentOrder())
	sel.Click("c", selection.ScopeItems, selection.ModToggle, lay.CurrentOrder())

	eng.Press("a", selection.ScopeItems, Point{X: 0, Y: 0})
	eng.Move(Point{X: 0, Y: 6}, Slot{Scope: selection.ScopeItems, GroupID: groups[1], Index: 1}, true)
	if eng.Phase() != Dragging {
		t.Fatalf("phase = %v, want dragging", eng.Phase())
	}
	if err := eng.Release(); err != nil {
		t.Fatalf("Release: %v", err)
	}
	g1, _ := lay.Group(groups[0])
	g2, _ := lay.Group(groups[1])
	if !reflect.DeepEqual(g1.Items, []string{"b"}) || !reflect.DeepEqual(g2.Items, []string{"x", "a", "c", "y"}) {
		t.Fatalf("groups after drop = %v / %v", g1.Items, g2.Items)
	}
}

func TestDragGroups(t *testing.T) {
	eng, lay, _, groups := fixture(t)
	eng.Press(groups[1], selection.ScopeGroups, Point{X: 0, Y: 0})
	eng.Move(Point{X: 0, Y: 9}, Slot{Scope: selection.ScopeGroups, Index: 0}, true)
	if err := eng.Release(); err != nil {
		t.Fatalf("Release: %v", err)
	}
	if got := lay.GroupOrder(); !reflect.DeepEqual(got, []string{groups[1], groups[0]}) {
		t.Fatalf("group order = %v", got)
	}
}

func TestMismatchedSlotScopeIgnored(t *testing.T) {
	eng, lay, _, _ := fixture(t)
	before := lay.Snapshot()
	eng.Press("a", selection.ScopeItems, Point{X: 0, Y: 0})
	eng.Move(Point{X: 0, Y: 8}, Slot{Scope: selection.ScopeGroups, Index: 1}, true)
	if _, ok := eng.Target(); ok {
		t.Fatalf("group slot accepted during item drag")
	}
	if err := eng.Release(); err != nil {
		t.Fatalf("Release: %v", err)
	}
	if !reflect.DeepEqual(before, lay.Snapshot()) {
		t.Fatalf("layout changed without a valid slot")
	}
}

func TestCancelLeavesLayoutUntouched(t *testing.T) {
	eng, lay, _, groups := fixture(t)
	before := lay.Snapshot()
	eng.Press("b", selection.ScopeItems, Point{X: 0, Y: 0})
	eng.Move(Point{X: 0, Y: 5}, Slot{Scope: selection.ScopeItems, GroupID: groups[1], Index: 0}, true)
	eng.Cancel()
	if eng.Phase() != Idle {
		t.Fatalf("phase after cancel = %v", eng.Phase())
	}
	if !reflect.DeepEqual(before, lay.Snapshot()) {
		t.Fatalf("cancel mutated layout")
	}
}

func TestDropOntoOwnPositionIsNoOp(t *testing.T) {
	eng, lay, _, groups := fixture(t)
	before := lay.Snapshot()
	eng.Press("b", selection.ScopeItems, Point{X: 0, Y: 0})
	eng.Move(Point{X: 0, Y: 4}, Slot{Scope: selection.ScopeItems, GroupID: groups[0], Index: 1}, true)
	if err := eng.Release(); err != nil {
		t.Fatalf("Release: %v", err)
	}
	if !reflect.DeepEqual(before, lay.Snapshot()) {
		t.Fatalf("self-drop mutated layout")
	}
}
