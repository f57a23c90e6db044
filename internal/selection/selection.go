// Package selection tracks which items or groups are currently selected and
// translates clicks with modifiers into selection updates. A selection holds
// either items or groups, never both; switching scope clears the old one.
package selection

import "github.com/inkbench/preset-groups/internal/notify"

// Scope names what kind of elements the selection currently holds.
type Scope int

const (
	ScopeNone Scope = iota
	ScopeItems
	ScopeGroups
)

func (s Scope) String() string {
	switch s {
	case ScopeItems:
		return "items"
	case ScopeGroups:
		return "groups"
	}
	return "none"
}

// Modifier distinguishes the three click gestures.
type Modifier int

const (
	// ModNone replaces the selection with the clicked element.
	ModNone Modifier = iota
	// ModToggle flips membership of the clicked element.
	ModToggle
	// ModRange replaces the selection with the span between the anchor and
	// the clicked element.
	ModRange
)

// Model is the selection state. Display order is supplied per call so the
// model never holds a stale view of the sequence.
type Model struct {
	scope    Scope
	selected map[string]struct{}
	anchor   string
	hub      *notify.Hub
}

func New(hub *notify.Hub) *Model {
	return &Model{selected: make(map[string]struct{}), hub: hub}
}

// Scope reports what the selection currently holds.
func (m *Model) Scope() Scope { return m.scope }

// Anchor returns the range-selection anchor, if set.
func (m *Model) Anchor() string { return m.anchor }

// IsSelected reports membership for an id, regardless of scope.
func (m *Model) IsSelected(id string) bool {
	_, ok := m.selected[id]
	return ok
}

// Len returns the number of selected elements.
func (m *Model) Len() int { return len(m.selected) }

// Current returns the selected ids in display order. order is the full
// visible sequence for the current scope; ids not present in it are omitted.
func (m *Model) Current(order []string) []string {
	if len(m.selected) == 0 {
		return nil
	}
	out := make([]string, 0, len(m.selected))
	for _, id := range order {
		if m.IsSelected(id) {
			out = append(out, id)
		}
	}
	return out
}

// Click applies a click gesture on an element of the given scope. order is
// the display order used to resolve ranges. Plain clicks replace the
// selection and move the anchor; toggle clicks flip membership and move the
// anchor to the clicked element; range clicks replace the selection with the
// anchor-to-click span and leave the anchor where it is. A range click with
// no usable anchor degrades to a plain click.
func (m *Model) Click(id string, scope Scope, mod Modifier, order []string) {
	if id == "" || scope == ScopeNone {
		return
	}
	if scope != m.scope {
		m.reset(scope)
	}

	switch mod {
	case ModToggle:
		if m.IsSelected(id) {
			delete(m.selected, id)
		} else {
			m.selected[id] = struct{}{}
		}
		m.anchor = id
	case ModRange:
		from := indexOf(order, m.anchor)
		to := indexOf(order, id)
		if from < 0 || to < 0 {
			m.replaceWith(id)
			break
		}
		if from > to {
			from, to = to, from
		}
		m.selected = make(map[string]struct{}, to-from+1)
		for _, spanned := range order[from : to+1] {
			m.selected[spanned] = struct{}{}
		}
	default:
		m.replaceWith(id)
	}
	m.publish()
}

// Select replaces the selection with a single element, as keyboard
// navigation does.
func (m *Model) Select(id string, scope Scope) {
	if id == "" || scope == ScopeNone {
		return
	}
	if scope != m.scope {
		m.reset(scope)
	}
	m.replaceWith(id)
	m.publish()
}

// Clear empties the selection entirely.
func (m *Model) Clear() {
	if m.scope == ScopeNone && len(m.selected) == 0 {
		return
	}
	m.reset(ScopeNone)
	m.publish()
}

// Cleanup drops selected ids that no longer exist and a dangling anchor.
// Fires a change event only when something was actually removed.
func (m *Model) Cleanup(valid map[string]struct{}) {
	changed := false
	for id := range m.selected {
		if _, ok := valid[id]; !ok {
			delete(m.selected, id)
			changed = true
		}
	}
	if m.anchor != "" {
		if _, ok := valid[m.anchor]; !ok {
			m.anchor = ""
		}
	}
	if len(m.selected) == 0 && m.scope != ScopeNone {
		m.scope = ScopeNone
	}
	if changed {
		m.publish()
	}
}

func (m *Model) reset(scope Scope) {
	m.scope = scope
	m.selected = make(map[string]struct{})
	m.anchor = ""
}

func (m *Model) replaceWith(id string) {
	m.selected = map[string]struct{}{id: {}}
	m.anchor = id
}

func (m *Model) publish() {
	if m.hub != nil {
		m.hub.Publish(notify.Event{Kind: notify.SelectionChanged})
	}
}

func indexOf(order []string, id string) int {
	if id == "" {
		return -1
	}
	for i, existing := range order {
		if existing == id {
			return i
		}
	}
	return -1
}
