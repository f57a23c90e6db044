package ui

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/inkbench/preset-groups/internal/cycle"
	"github.com/inkbench/preset-groups/internal/drag"
	"github.com/inkbench/preset-groups/internal/layout"
	"github.com/inkbench/preset-groups/internal/logging/events"
	"github.com/inkbench/preset-groups/internal/selection"
)

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	switch key.String() {
	case "ctrl+c", "q":
		return m.quit()
	case "esc":
		if m.drag.Phase() != drag.Idle {
			events.Drag.Cancel(m.drag.PressedID())
			m.drag.Cancel()
			return nil
		}
		m.selection.Clear()
		events.Selection.Cleared()
		m.clearMessages()
		return nil
	case "up", "k":
		m.moveCursor(-1)
		return nil
	case "down", "j":
		m.moveCursor(1)
		return nil
	case "enter", " ":
		return m.activateCursor(key.String() == " ")
	case "n":
		m.openPrompt(promptNewGroup, "", "")
		return nil
	case "r":
		return m.renameUnderCursor()
	case "d":
		return m.deleteUnderCursor()
	case "a":
		m.openPicker()
		return nil
	case "x":
		return m.removeSelectedItems()
	case "c":
		return m.toggleActiveCollapse()
	case "tab":
		m.activateAdjacentGroup(1)
		return nil
	case "shift+tab":
		m.activateAdjacentGroup(-1)
		return nil
	case ".":
		m.cycleActive(1)
		return nil
	case ",":
		m.cycleActive(-1)
		return nil
	case "]":
		return m.nudgeSelection(1)
	case "[":
		return m.nudgeSelection(-1)
	case "+", "=":
		m.adjustBrushSize(5)
		return nil
	case "-":
		m.adjustBrushSize(-5)
		return nil
	}
	return nil
}

func (m *Model) quit() tea.Cmd {
	if m.watcher != nil {
		events.Detector.Suspend()
		m.watcher.Stop()
	}
	if m.store != nil {
		m.store.Save(m.snapshot())
		err := m.store.Flush()
		events.App.Flush(err)
		m.saveNeeded = false
	}
	return tea.Quit
}

// activateCursor applies the keyboard equivalent of a click on the cursor
// row: plain select for items (toggle when additive), collapse toggling for
// group headers.
func (m *Model) activateCursor(additive bool) tea.Cmd {
	r, ok := m.cursorRow()
	if !ok {
		return nil
	}
	if r.kind == rowGroupHeader {
		if additive {
			m.selection.Click(r.groupID, selection.ScopeGroups, selection.ModToggle, m.layout.GroupOrder())
			events.Selection.Click(r.groupID, selection.ScopeGroups.String(), "toggle", m.selection.Len())
			return nil
		}
		return m.toggleCollapse(r.groupID)
	}
	mod := selection.ModNone
	modName := "none"
	if additive {
		mod = selection.ModToggle
		modName = "toggle"
	}
	m.selection.Click(r.itemID, selection.ScopeItems, mod, m.layout.VisibleOrder())
	events.Selection.Click(r.itemID, selection.ScopeItems.String(), modName, m.selection.Len())
	return nil
}

func (m *Model) toggleCollapse(groupID string) tea.Cmd {
	if err := m.layout.ToggleCollapse(groupID); err != nil {
		m.errMsg = err.Error()
		return nil
	}
	if g, ok := m.layout.Group(groupID); ok {
		events.Group.Collapse(g.ID, g.Collapsed)
	}
	return nil
}

func (m *Model) toggleActiveCollapse() tea.Cmd {
	if active, ok := m.layout.ActiveGroup(); ok {
		return m.toggleCollapse(active.ID)
	}
	return nil
}

func (m *Model) renameUnderCursor() tea.Cmd {
	r, ok := m.cursorRow()
	if !ok || r.kind != rowGroupHeader {
		return nil
	}
	g, ok := m.layout.Group(r.groupID)
	if !ok {
		return nil
	}
	events.Group.RenamePrompt(g.ID)
	m.openPrompt(promptRenameGroup, g.ID, g.Name)
	return nil
}

func (m *Model) deleteUnderCursor() tea.Cmd {
	r, ok := m.cursorRow()
	if !ok || r.kind != rowGroupHeader {
		return nil
	}
	g, _ := m.layout.Group(r.groupID)
	if err := m.layout.DeleteGroup(r.groupID); err != nil {
		m.errMsg = err.Error()
		return nil
	}
	events.Group.Delete(r.groupID, len(g.Items))
	m.cleanupSelection()
	if m.verbose {
		m.setInfo(fmt.Sprintf("Deleted %s", g.Name))
	}
	return nil
}

func (m *Model) removeSelectedItems() tea.Cmd {
	if m.selection.Scope() != selection.ScopeItems {
		return nil
	}
	ids := m.selection.Current(m.layout.CurrentOrder())
	if len(ids) == 0 {
		return nil
	}
	removed := m.layout.RemoveItems(ids)
	for _, id := range ids {
		m.registry.Forget(id)
	}
	events.Group.RemoveItems(removed)
	m.cleanupSelection()
	if m.verbose && removed > 0 {
		m.setInfo(fmt.Sprintf("Removed %d preset(s)", removed))
	}
	return nil
}

func (m *Model) activateAdjacentGroup(delta int) {
	order := m.layout.GroupOrder()
	if len(order) == 0 {
		return
	}
	active, ok := m.layout.ActiveGroup()
	idx := 0
	if ok {
		for i, id := range order {
			if id == active.ID {
				idx = (i + delta + len(order)) % len(order)
				break
			}
		}
	}
	m.layout.SetActiveGroup(order[idx])
	events.Group.Activate(order[idx])
}

// cycleActive steps the selection through the active group's items.
func (m *Model) cycleActive(direction int) {
	active, ok := m.layout.ActiveGroup()
	if !ok || len(active.Items) == 0 {
		return
	}
	current := ""
	if selected := m.selection.Current(active.Items); len(selected) > 0 {
		current = selected[len(selected)-1]
	}
	var next string
	if direction > 0 {
		next, ok = cycle.Next(active.Items, current, m.wrapCycle)
	} else {
		next, ok = cycle.Previous(active.Items, current, m.wrapCycle)
	}
	if !ok || next == "" {
		return
	}
	m.selection.Select(next, selection.ScopeItems)
	m.cursorTo(next)
	if direction > 0 {
		events.UI.Cycle("next", next)
	} else {
		events.UI.Cycle("previous", next)
	}
}

// nudgeSelection moves the selected block one position within its group (or
// the root ordering for groups) via the same atomic move a drop performs.
func (m *Model) nudgeSelection(delta int) tea.Cmd {
	switch m.selection.Scope() {
	case selection.ScopeItems:
		ids := m.selection.Current(m.layout.CurrentOrder())
		if len(ids) == 0 {
			return nil
		}
		groupID, idx := m.layout.GroupOf(ids[0])
		if groupID == "" {
			return nil
		}
		target := idx + delta
		if delta > 0 {
			target = idx + len(ids) + delta - 1
		}
		g, _ := m.layout.Group(groupID)
		if target < 0 || target > len(g.Items) {
			return nil
		}
		m.reportMoveError(m.layout.MoveItems(ids, groupID, target))
	case selection.ScopeGroups:
		ids := m.selection.Current(m.layout.GroupOrder())
		if len(ids) == 0 {
			return nil
		}
		order := m.layout.GroupOrder()
		idx := -1
		for i, id := range order {
			if id == ids[0] {
				idx = i
				break
			}
		}
		if idx < 0 {
			return nil
		}
		target := idx + delta
		if delta > 0 {
			target = idx + len(ids) + delta - 1
		}
		if target < 0 || target > len(order) {
			return nil
		}
		m.reportMoveError(m.layout.MoveGroups(ids, target))
	}
	return nil
}

func (m *Model) reportMoveError(err error) {
	if err == nil {
		m.errMsg = ""
		return
	}
	if errors.Is(err, layout.ErrInvalidTarget) || errors.Is(err, layout.ErrNotFound) {
		m.errMsg = err.Error()
		events.Drag.Rejected(err)
		return
	}
	m.errMsg = err.Error()
	events.Action.Error(err)
}

func (m *Model) adjustBrushSize(delta float64) {
	if m.sizer == nil {
		return
	}
	size, err := m.sizer.CurrentBrushSize()
	if err != nil {
		m.hostDown = true
		return
	}
	next := size + delta
	if next < 1 {
		next = 1
	}
	if err := m.sizer.SetBrushSize(next); err != nil {
		m.hostDown = true
		return
	}
	m.setInfo(fmt.Sprintf("Brush size %.0f", next))
}

// cleanupSelection drops selected ids that no longer resolve to anything.
func (m *Model) cleanupSelection() {
	valid := make(map[string]struct{})
	for _, id := range m.layout.CurrentOrder() {
		valid[id] = struct{}{}
	}
	for _, id := range m.layout.GroupOrder() {
		valid[id] = struct{}{}
	}
	m.selection.Cleanup(valid)
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	size, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = size.Width
	}
	if !m.fixedHeight {
		m.height = size.Height
	}
	events.UI.Resize(m.width, m.height)
	return nil
}
