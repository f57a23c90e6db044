package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"

	"github.com/inkbench/preset-groups/internal/drag"
	"github.com/inkbench/preset-groups/internal/host"
	"github.com/inkbench/preset-groups/internal/selection"
)

const (
	headerLines = 1
	statusLines = 1

	collapsedMarker = "▸"
	expandedMarker  = "▾"
	dirtyMarker     = "●"
	dropMarker      = "▶"
)

// View implements tea.Model.
func (m *Model) View() string {
	switch m.mode {
	case ModePrompt:
		return m.viewPrompt()
	case ModePicker:
		return m.viewPicker()
	}
	return m.viewBrowse()
}

func (m *Model) viewBrowse() string {
	lines := make([]string, 0, 16)
	lines = append(lines, m.renderHeader())

	rows := m.rows()
	if len(rows) == 0 {
		lines = append(lines, m.styled(styles.Info, "(no groups; press n to create one)"))
	} else {
		start, end := m.visibleRange(len(rows))
		for i := start; i < end; i++ {
			lines = append(lines, m.renderRow(rows[i], i))
		}
	}

	lines = append(lines, m.renderStatus())
	if m.showFooter {
		lines = append(lines, m.renderFooter())
	}
	return m.truncateLines(lines)
}

func (m *Model) visibleRange(total int) (int, int) {
	max := m.maxVisibleRows()
	if max <= 0 || total <= max {
		return 0, total
	}
	start := m.scroll
	if start < 0 {
		start = 0
	}
	if start+max > total {
		start = total - max
	}
	return start, start + max
}

func (m *Model) renderHeader() string {
	title := "preset groups"
	if m.hostDown {
		title += "  " + m.styled(styles.Error, "[host unavailable]")
	}
	return m.styled(styles.Header, title)
}

func (m *Model) renderRow(r row, index int) string {
	target, dragging := m.drag.Target()
	prefix := "  "
	if dragging && m.slotMatchesRow(target, r) {
		prefix = m.styled(styles.DropIndicator, dropMarker) + " "
	} else if index == m.cursor {
		prefix = m.styled(styles.CursorItem, ">") + " "
	}

	if r.kind == rowGroupHeader {
		return prefix + m.renderGroupHeader(r)
	}
	return prefix + "  " + m.renderItem(r)
}

func (m *Model) renderGroupHeader(r row) string {
	g, ok := m.layout.Group(r.groupID)
	if !ok {
		return ""
	}
	marker := expandedMarker
	if g.Collapsed {
		marker = collapsedMarker
	}
	label := fmt.Sprintf("%s %s (%d)", marker, g.Name, len(g.Items))
	style := styles.GroupHeader
	if active, ok := m.layout.ActiveGroup(); ok && active.ID == g.ID {
		style = styles.ActiveGroupHeader
	}
	if m.selection.Scope() == selection.ScopeGroups && m.selection.IsSelected(g.ID) {
		style = styles.SelectedGroup
	}
	return m.styled(style, label)
}

func (m *Model) renderItem(r row) string {
	name := r.itemID
	role := host.RoleBrush
	dirty := false
	if entry, ok := m.registry.Entry(r.itemID); ok {
		if entry.Name != "" {
			name = entry.Name
		}
		role = entry.Role
		dirty = entry.Dirty
	}
	style := styles.Item
	if m.selection.Scope() == selection.ScopeItems && m.selection.IsSelected(r.itemID) {
		style = styles.SelectedItem
	}
	line := m.styled(style, name)
	if role == host.RoleEraser {
		line += " " + m.styled(styles.EraserMarker, "(eraser)")
	}
	if dirty {
		line += " " + m.styled(styles.DirtyMarker, dirtyMarker)
	}
	return line
}

// slotMatchesRow reports whether the drop indicator belongs on this row.
func (m *Model) slotMatchesRow(slot drag.Slot, r row) bool {
	switch slot.Scope {
	case selection.ScopeItems:
		if r.kind == rowGroupHeader {
			return slot.GroupID == r.groupID && slot.Index == 0 && !r.collapsed
		}
		return slot.GroupID == r.groupID && slot.Index == r.itemIndex
	case selection.ScopeGroups:
		return r.kind == rowGroupHeader && slot.Index == r.groupIndex
	}
	return false
}

func (m *Model) renderStatus() string {
	if m.errMsg != "" {
		return m.styled(styles.Error, m.errMsg)
	}
	if info := m.currentInfo(); info != "" {
		return m.styled(styles.Info, info)
	}
	if n := m.selection.Len(); n > 1 {
		return m.styled(styles.Info, fmt.Sprintf("%d selected", n))
	}
	return ""
}

func (m *Model) renderFooter() string {
	hints := "n new · r rename · d delete · a add · c collapse · ,/. cycle · q quit"
	return m.styled(styles.Footer, hints)
}

func (m *Model) viewPrompt() string {
	lines := []string{
		m.renderHeader(),
		"",
		m.prompt.input.View(),
		"",
		m.styled(styles.Info, "enter to confirm · esc to cancel"),
	}
	return m.truncateLines(lines)
}

func (m *Model) viewPicker() string {
	p := m.picker
	lines := make([]string, 0, len(p.filtered)+4)
	lines = append(lines, m.renderHeader())
	lines = append(lines, p.input.View())
	if len(p.filtered) == 0 {
		msg := "(no presets left to add)"
		if strings.TrimSpace(p.input.Value()) != "" {
			msg = fmt.Sprintf("No matches for %q", p.input.Value())
		}
		lines = append(lines, m.styled(styles.Info, msg))
	}
	max := m.maxVisibleRows()
	for i, candidate := range p.filtered {
		if max > 0 && i >= max {
			break
		}
		check := "[ ]"
		if _, ok := p.checked[candidate.ID]; ok {
			check = "[x]"
		}
		label := fmt.Sprintf("%s %s", check, candidate.Name)
		style := styles.Item
		if i == p.cursor {
			style = styles.PickerMatch
		}
		lines = append(lines, m.styled(style, label))
	}
	lines = append(lines, m.styled(styles.Info, "tab to mark · enter to add · esc to cancel"))
	return m.truncateLines(lines)
}

func (m *Model) styled(style *lipgloss.Style, text string) string {
	if style == nil || text == "" {
		return text
	}
	return style.Render(text)
}

func (m *Model) truncateLines(lines []string) string {
	if m.width <= 0 {
		return strings.Join(lines, "\n")
	}
	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = truncate.String(line, uint(m.width))
	}
	return strings.Join(out, "\n")
}
