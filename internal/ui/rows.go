package ui

import (
	"github.com/inkbench/preset-groups/internal/drag"
	"github.com/inkbench/preset-groups/internal/selection"
)

type rowKind int

const (
	rowGroupHeader rowKind = iota
	rowItem
)

// row is one visible line of the organizer. The renderer and the mouse hit
// test share this list, so drawing and clicking can never disagree.
type row struct {
	kind       rowKind
	groupID    string
	groupIndex int
	itemID     string
	itemIndex  int
	collapsed  bool
}

func (m *Model) rows() []row {
	groups := m.layout.Groups()
	out := make([]row, 0, len(groups)*4)
	for gi, g := range groups {
		out = append(out, row{
			kind:       rowGroupHeader,
			groupID:    g.ID,
			groupIndex: gi,
			collapsed:  g.Collapsed,
		})
		if g.Collapsed {
			continue
		}
		for ii, id := range g.Items {
			out = append(out, row{
				kind:       rowItem,
				groupID:    g.ID,
				groupIndex: gi,
				itemID:     id,
				itemIndex:  ii,
			})
		}
	}
	return out
}

// rowAt resolves a terminal Y coordinate to a visible row.
func (m *Model) rowAt(y int) (row, bool) {
	idx := y - headerLines + m.scroll
	rows := m.rows()
	if idx < 0 || idx >= len(rows) {
		return row{}, false
	}
	return rows[idx], true
}

// slotAt resolves a terminal Y coordinate to an insertion slot for the given
// drag scope. Pointing below the last row appends; pointing at a group
// header targets the top of that group for items or the position before the
// group for group drags.
func (m *Model) slotAt(y int, scope selection.Scope) (drag.Slot, bool) {
	idx := y - headerLines + m.scroll
	rows := m.rows()
	if idx < 0 {
		return drag.Slot{}, false
	}
	if idx >= len(rows) {
		return m.tailSlot(scope)
	}
	r := rows[idx]
	switch scope {
	case selection.ScopeItems:
		if r.kind == rowGroupHeader {
			if r.collapsed {
				return drag.Slot{}, false
			}
			return drag.Slot{Scope: scope, GroupID: r.groupID, Index: 0}, true
		}
		return drag.Slot{Scope: scope, GroupID: r.groupID, Index: r.itemIndex}, true
	case selection.ScopeGroups:
		return drag.Slot{Scope: scope, Index: r.groupIndex}, true
	}
	return drag.Slot{}, false
}

func (m *Model) tailSlot(scope selection.Scope) (drag.Slot, bool) {
	groups := m.layout.Groups()
	if len(groups) == 0 {
		return drag.Slot{}, false
	}
	if scope == selection.ScopeGroups {
		return drag.Slot{Scope: scope, Index: len(groups)}, true
	}
	last := groups[len(groups)-1]
	return drag.Slot{Scope: scope, GroupID: last.ID, Index: len(last.Items)}, true
}

// cursorRow returns the row under the keyboard cursor.
func (m *Model) cursorRow() (row, bool) {
	rows := m.rows()
	if m.cursor < 0 || m.cursor >= len(rows) {
		return row{}, false
	}
	return rows[m.cursor], true
}

func (m *Model) clampCursor() {
	n := len(m.rows())
	if n == 0 {
		m.cursor = 0
		m.scroll = 0
		return
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	if m.cursor >= n {
		m.cursor = n - 1
	}
	m.syncScroll(n)
}

func (m *Model) syncScroll(total int) {
	visible := m.maxVisibleRows()
	if visible <= 0 || total <= visible {
		m.scroll = 0
		return
	}
	if m.cursor < m.scroll {
		m.scroll = m.cursor
	}
	if m.cursor >= m.scroll+visible {
		m.scroll = m.cursor - visible + 1
	}
	if m.scroll > total-visible {
		m.scroll = total - visible
	}
	if m.scroll < 0 {
		m.scroll = 0
	}
}

func (m *Model) maxVisibleRows() int {
	if m.height <= 0 {
		return 0
	}
	reserved := headerLines + statusLines
	if m.showFooter {
		reserved++
	}
	rows := m.height - reserved
	if rows < 1 {
		rows = 1
	}
	return rows
}

// moveCursor shifts the keyboard cursor by delta rows.
func (m *Model) moveCursor(delta int) {
	m.cursor += delta
	m.clampCursor()
}

// cursorTo places the cursor on the row showing the given item.
func (m *Model) cursorTo(itemID string) {
	for i, r := range m.rows() {
		if r.kind == rowItem && r.itemID == itemID {
			m.cursor = i
			m.clampCursor()
			return
		}
	}
}
