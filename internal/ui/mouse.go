package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/inkbench/preset-groups/internal/drag"
	"github.com/inkbench/preset-groups/internal/logging/events"
	"github.com/inkbench/preset-groups/internal/selection"
)

func (m *Model) handleMouseMsg(msg tea.Msg) tea.Cmd {
	mouse, ok := msg.(tea.MouseMsg)
	if !ok {
		return nil
	}
	switch mouse.Button {
	case tea.MouseButtonWheelUp:
		m.scroll--
		m.syncScroll(len(m.rows()))
		return nil
	case tea.MouseButtonWheelDown:
		m.scroll++
		m.syncScroll(len(m.rows()))
		return nil
	}

	switch mouse.Action {
	case tea.MouseActionPress:
		if mouse.Button == tea.MouseButtonLeft {
			m.mousePress(mouse)
		}
	case tea.MouseActionMotion:
		m.mouseMove(mouse)
	case tea.MouseActionRelease:
		m.mouseRelease()
	}
	return nil
}

func (m *Model) mousePress(mouse tea.MouseMsg) {
	r, ok := m.rowAt(mouse.Y)
	if !ok {
		m.selection.Clear()
		events.Selection.Cleared()
		return
	}
	scope := selection.ScopeItems
	id := r.itemID
	order := m.layout.VisibleOrder()
	if r.kind == rowGroupHeader {
		scope = selection.ScopeGroups
		id = r.groupID
		order = m.layout.GroupOrder()
	}

	// Modifier clicks are pure selection gestures; only a plain press can
	// become a drag.
	switch {
	case mouse.Ctrl:
		m.selection.Click(id, scope, selection.ModToggle, order)
		events.Selection.Click(id, scope.String(), "toggle", m.selection.Len())
	case mouse.Shift:
		m.selection.Click(id, scope, selection.ModRange, order)
		events.Selection.Click(id, scope.String(), "range", m.selection.Len())
	default:
		m.drag.Press(id, scope, drag.Point{X: mouse.X, Y: mouse.Y})
		events.Drag.Press(id, scope.String())
		if r.kind == rowItem {
			m.cursorTo(id)
		}
	}
}

func (m *Model) mouseMove(mouse tea.MouseMsg) {
	if m.drag.Phase() == drag.Idle {
		return
	}
	wasPressed := m.drag.Phase() == drag.Pressed
	scope := m.dragScope()
	slot, overSlot := m.slotAt(mouse.Y, scope)
	m.drag.Move(drag.Point{X: mouse.X, Y: mouse.Y}, slot, overSlot)
	if wasPressed && m.drag.Phase() == drag.Dragging {
		events.Drag.Start(m.drag.PressedID())
	}
}

func (m *Model) mouseRelease() {
	if m.drag.Phase() == drag.Idle {
		return
	}
	target, hadTarget := m.drag.Target()
	count := m.selection.Len()
	err := m.drag.Release()
	if err != nil {
		m.reportMoveError(err)
		return
	}
	if hadTarget {
		events.Drag.Drop(target.Scope.String(), target.GroupID, target.Index, count)
	}
}

func (m *Model) dragScope() selection.Scope {
	if m.selection.Scope() == selection.ScopeGroups {
		return selection.ScopeGroups
	}
	return selection.ScopeItems
}
