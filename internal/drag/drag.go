// Package drag implements press-move-release reordering. The engine is a
// small state machine fed by the mouse handler; it never mutates the layout
// until release, so a cancelled or rejected drag leaves everything as it was.
package drag

import (
	"github.com/inkbench/preset-groups/internal/layout"
	"github.com/inkbench/preset-groups/internal/selection"
)

// DefaultThreshold is how far, in cells, the pointer must travel from the
// press point before a press becomes a drag.
const DefaultThreshold = 2

// Phase is the engine state.
type Phase int

const (
	Idle Phase = iota
	Pressed
	Dragging
)

func (p Phase) String() string {
	switch p {
	case Pressed:
		return "pressed"
	case Dragging:
		return "dragging"
	}
	return "idle"
}

// Point is a position in screen cells.
type Point struct {
	X, Y int
}

func (p Point) distance(o Point) int {
	dx := p.X - o.X
	if dx < 0 {
		dx = -dx
	}
	dy := p.Y - o.Y
	if dy < 0 {
		dy = -dy
	}
	if dx > dy {
		return dx
	}
	return dy
}

// Slot names an insertion point: before Index within GroupID for items, or
// before Index in the root ordering for groups.
type Slot struct {
	Scope   selection.Scope
	GroupID string
	Index   int
}

// Engine drives a single drag gesture at a time.
type Engine struct {
	layout    *layout.Model
	selection *selection.Model
	threshold int

	phase   Phase
	pressed string
	scope   selection.Scope
	origin  Point
	target  Slot
	hasSlot bool
}

func NewEngine(lay *layout.Model, sel *selection.Model) *Engine {
	return &Engine{layout: lay, selection: sel, threshold: DefaultThreshold}
}

// Phase reports the current engine state.
func (e *Engine) Phase() Phase { return e.phase }

// PressedID returns the element the gesture started on.
func (e *Engine) PressedID() string { return e.pressed }

// Target returns the insertion slot to highlight while dragging.
func (e *Engine) Target() (Slot, bool) {
	if e.phase != Dragging || !e.hasSlot {
		return Slot{}, false
	}
	return e.target, true
}

// Press starts a gesture on an element. Pressing an element outside the
// current selection collapses the selection to just that element, so the
// selection at press time is always the block a subsequent drag will move.
func (e *Engine) Press(id string, scope selection.Scope, at Point) {
	if id == "" || scope == selection.ScopeNone {
		return
	}
	if e.selection.Scope() != scope || !e.selection.IsSelected(id) {
		e.selection.Select(id, scope)
	}
	e.phase = Pressed
	e.pressed = id
	e.scope = scope
	e.origin = at
	e.hasSlot = false
}

// Move feeds pointer motion. slot is the insertion point under the pointer,
// resolved by the caller's hit test; overSlot is false while the pointer is
// over dead space. Motion beyond the threshold promotes the press to a drag.
func (e *Engine) Move(at Point, slot Slot, overSlot bool) {
	switch e.phase {
	case Pressed:
		if at.distance(e.origin) < e.threshold {
			return
		}
		e.phase = Dragging
	case Dragging:
	default:
		return
	}
	if overSlot && slot.Scope == e.scope {
		e.target = slot
		e.hasSlot = true
	}
}

// Release ends the gesture. A drag commits the selected block to the last
// hovered slot as one atomic move; a press that never crossed the threshold
// was a click and the selection applied at press time stands. The engine is
// Idle afterwards either way.
func (e *Engine) Release() error {
	phase := e.phase
	target, hasSlot := e.target, e.hasSlot
	scope := e.scope
	e.resetGesture()

	if phase != Dragging || !hasSlot {
		return nil
	}
	switch scope {
	case selection.ScopeItems:
		block := e.selection.Current(e.layout.CurrentOrder())
		return e.layout.MoveItems(block, target.GroupID, target.Index)
	case selection.ScopeGroups:
		block := e.selection.Current(e.layout.GroupOrder())
		return e.layout.MoveGroups(block, target.Index)
	}
	return nil
}

// Cancel abandons the gesture without mutating anything.
func (e *Engine) Cancel() {
	e.resetGesture()
}

func (e *Engine) resetGesture() {
	e.phase = Idle
	e.pressed = ""
	e.scope = selection.ScopeNone
	e.hasSlot = false
	e.target = Slot{}
}
