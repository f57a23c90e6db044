// Package layout owns the ordered structure of groups and the presets inside
// them. It is the single writer of sequence state: every mutation is atomic,
// validated up front, and announced through the notification hub only after
// it has been fully applied.
package layout

import (
	"errors"
	"regexp"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/inkbench/preset-groups/internal/notify"
)

var (
	// ErrInvalidTarget rejects a move whose destination group or index does
	// not exist. The model is left untouched.
	ErrInvalidTarget = errors.New("layout: invalid target")
	// ErrNotFound rejects an operation referencing a missing group.
	ErrNotFound = errors.New("layout: not found")
)

var groupNamePattern = regexp.MustCompile(`^Group\s+(\d+)$`)

// Group is a user-named ordered container of item references.
type Group struct {
	ID        string
	Name      string
	Items     []string
	Collapsed bool
}

func (g *Group) clone() Group {
	dup := *g
	dup.Items = append([]string(nil), g.Items...)
	return dup
}

// Model holds the root ordering of groups and enforces the structural
// invariants: an item belongs to at most one group, sequences never contain
// duplicates, and a lone group is always the active one.
type Model struct {
	groups    []*Group
	activeID  string
	exclusive bool
	hub       *notify.Hub
}

// New creates an empty model. The hub may be nil when no subscriber exists
// (tests); exclusive enables exclusive-uncollapse mode.
func New(exclusive bool, hub *notify.Hub) *Model {
	return &Model{exclusive: exclusive, hub: hub}
}

func (m *Model) publish(evt notify.Event) {
	if m.hub != nil {
		m.hub.Publish(evt)
	}
}

// SetExclusiveUncollapse switches collapse policy. Enabling it collapses
// everything but the active group so the invariant holds immediately.
func (m *Model) SetExclusiveUncollapse(on bool) {
	m.exclusive = on
	if !on || m.activeID == "" {
		return
	}
	for _, g := range m.groups {
		g.Collapsed = g.ID != m.activeID
	}
}

// AddGroup appends a new group. An empty name is auto-generated as the next
// free "Group N". The first group becomes active.
func (m *Model) AddGroup(name string) Group {
	name = strings.TrimSpace(name)
	if name == "" {
		name = "Group " + strconv.Itoa(m.nextGroupNumber())
	}
	g := &Group{ID: uuid.NewString(), Name: name}
	m.groups = append(m.groups, g)
	if len(m.groups) == 1 {
		m.activeID = g.ID
	}
	m.publish(notify.Event{Kind: notify.GroupAdded, GroupID: g.ID})
	return g.clone()
}

func (m *Model) nextGroupNumber() int {
	max := 0
	for _, g := range m.groups {
		match := groupNamePattern.FindStringSubmatch(strings.TrimSpace(g.Name))
		if match == nil {
			continue
		}
		if n, err := strconv.Atoi(match[1]); err == nil && n > max {
			max = n
		}
	}
	return max + 1
}

// RenameGroup sets a new display name.
func (m *Model) RenameGroup(id, name string) error {
	name = strings.TrimSpace(name)
	g := m.groupByID(id)
	if g == nil {
		return ErrNotFound
	}
	if name == "" || g.Name == name {
		return nil
	}
	g.Name = name
	m.publish(notify.Event{Kind: notify.GroupRenamed, GroupID: id})
	return nil
}

// DeleteGroup removes a group, releasing its item references. When the
// active group goes, the first remaining group takes over.
func (m *Model) DeleteGroup(id string) error {
	idx := m.indexOfGroup(id)
	if idx < 0 {
		return ErrNotFound
	}
	released := append([]string(nil), m.groups[idx].Items...)
	m.groups = append(m.groups[:idx], m.groups[idx+1:]...)
	if m.activeID == id {
		m.activeID = ""
		if len(m.groups) > 0 {
			m.activeID = m.groups[0].ID
		}
	}
	m.enforceSingleGroupActive()
	m.publish(notify.Event{Kind: notify.GroupDeleted, GroupID: id, ItemIDs: released})
	return nil
}

// AddItems appends item references to a group at the given index (or the end
// when index is -1). Items already referenced anywhere in the model are
// skipped: a preset exists at most once across all groups. Returns the ids
// actually added.
func (m *Model) AddItems(groupID string, itemIDs []string, index int) ([]string, error) {
	g := m.groupByID(groupID)
	if g == nil {
		return nil, ErrNotFound
	}
	if index < 0 || index > len(g.Items) {
		index = len(g.Items)
	}
	added := make([]string, 0, len(itemIDs))
	for _, id := range itemIDs {
		if id == "" {
			continue
		}
		if owner, _ := m.GroupOf(id); owner != "" {
			continue
		}
		if contains(added, id) {
			continue
		}
		added = append(added, id)
	}
	if len(added) == 0 {
		return nil, nil
	}
	g.Items = insertBlock(g.Items, added, index)
	m.publish(notify.Event{Kind: notify.ItemsAdded, GroupID: groupID, ItemIDs: added})
	return added, nil
}

// RemoveItems releases item references wherever they live. Missing ids are
// ignored; the count of actually removed items is returned.
func (m *Model) RemoveItems(itemIDs []string) int {
	removed := 0
	affected := make(map[string][]string)
	for _, id := range itemIDs {
		for _, g := range m.groups {
			if i := indexOf(g.Items, id); i >= 0 {
				g.Items = append(g.Items[:i], g.Items[i+1:]...)
				affected[g.ID] = append(affected[g.ID], id)
				removed++
				break
			}
		}
	}
	for gid, ids := range affected {
		m.publish(notify.Event{Kind: notify.ItemsRemoved, GroupID: gid, ItemIDs: ids})
	}
	return removed
}

// MoveItems relocates the given items as one contiguous block, preserving
// their relative order, into targetGroup at targetIndex. The index is
// interpreted against the target group's sequence as it is before the call.
// Either every resolved item moves or nothing changes. Ids that do not exist
// in the model are skipped; a call with no surviving ids is a silent no-op.
func (m *Model) MoveItems(itemIDs []string, targetGroup string, targetIndex int) error {
	target := m.groupByID(targetGroup)
	if target == nil {
		return ErrInvalidTarget
	}
	if targetIndex < 0 || targetIndex > len(target.Items) {
		return ErrInvalidTarget
	}

	moving := make([]string, 0, len(itemIDs))
	for _, id := range itemIDs {
		if owner, _ := m.GroupOf(id); owner != "" && !contains(moving, id) {
			moving = append(moving, id)
		}
	}
	if len(moving) == 0 {
		return nil
	}

	// The insertion point shifts left by every moving item that currently
	// sits in the target group before it.
	adjusted := targetIndex
	for _, id := range moving {
		if i := indexOf(target.Items, id); i >= 0 && i < targetIndex {
			adjusted--
		}
	}

	// Build the post-move sequences without touching live state.
	next := make(map[string][]string, len(m.groups))
	changedSources := make([]string, 0, 2)
	for _, g := range m.groups {
		kept := withoutAll(g.Items, moving)
		next[g.ID] = kept
		if g.ID != target.ID && len(kept) != len(g.Items) {
			changedSources = append(changedSources, g.ID)
		}
	}
	next[target.ID] = insertBlock(next[target.ID], moving, adjusted)

	if len(changedSources) == 0 && equalSeq(target.Items, next[target.ID]) {
		return nil // drop onto the source position: no mutation, no event
	}

	for _, g := range m.groups {
		g.Items = next[g.ID]
	}
	m.publish(notify.Event{Kind: notify.ItemsMoved, GroupID: target.ID, ItemIDs: moving})
	return nil
}

// MoveGroups relocates groups as one contiguous block within the root
// ordering, same contract as MoveItems.
func (m *Model) MoveGroups(groupIDs []string, targetIndex int) error {
	if targetIndex < 0 || targetIndex > len(m.groups) {
		return ErrInvalidTarget
	}
	moving := make([]*Group, 0, len(groupIDs))
	for _, id := range groupIDs {
		if g := m.groupByID(id); g != nil && !containsGroup(moving, id) {
			moving = append(moving, g)
		}
	}
	if len(moving) == 0 {
		return nil
	}

	adjusted := targetIndex
	for _, g := range moving {
		if i := m.indexOfGroup(g.ID); i >= 0 && i < targetIndex {
			adjusted--
		}
	}

	remaining := make([]*Group, 0, len(m.groups))
	for _, g := range m.groups {
		if !containsGroup(moving, g.ID) {
			remaining = append(remaining, g)
		}
	}
	reordered := make([]*Group, 0, len(m.groups))
	reordered = append(reordered, remaining[:adjusted]...)
	reordered = append(reordered, moving...)
	reordered = append(reordered, remaining[adjusted:]...)

	if sameGroupOrder(m.groups, reordered) {
		return nil
	}
	m.groups = reordered
	ids := make([]string, len(moving))
	for i, g := range moving {
		ids[i] = g.ID
	}
	m.publish(notify.Event{Kind: notify.GroupsMoved, ItemIDs: ids})
	return nil
}

// SetActiveGroup marks a group active. In exclusive-uncollapse mode the
// active group is uncollapsed and every other group collapses. Unknown ids
// are ignored, which also preserves the lone-group invariant.
func (m *Model) SetActiveGroup(id string) {
	g := m.groupByID(id)
	if g == nil {
		m.enforceSingleGroupActive()
		return
	}
	changed := m.activeID != id
	m.activeID = id
	if m.exclusive {
		for _, other := range m.groups {
			other.Collapsed = other.ID != id
		}
	}
	if changed {
		m.publish(notify.Event{Kind: notify.ActiveChanged, GroupID: id})
	}
}

// ToggleCollapse flips a group's collapsed state. In exclusive mode,
// uncollapsing a group collapses all others and makes it active; when every
// group ends up collapsed the active marker clears, unless only one group
// exists.
func (m *Model) ToggleCollapse(id string) error {
	g := m.groupByID(id)
	if g == nil {
		return ErrNotFound
	}
	if !m.exclusive {
		g.Collapsed = !g.Collapsed
		m.publish(notify.Event{Kind: notify.CollapseChanged, GroupID: id})
		return nil
	}

	if g.Collapsed {
		for _, other := range m.groups {
			other.Collapsed = other.ID != id
		}
		m.publish(notify.Event{Kind: notify.CollapseChanged, GroupID: id})
		m.SetActiveGroup(id)
		return nil
	}

	g.Collapsed = true
	m.publish(notify.Event{Kind: notify.CollapseChanged, GroupID: id})
	if m.allCollapsed() && len(m.groups) > 1 {
		if m.activeID != "" {
			m.activeID = ""
			m.publish(notify.Event{Kind: notify.ActiveChanged})
		}
	}
	m.enforceSingleGroupActive()
	return nil
}

func (m *Model) allCollapsed() bool {
	for _, g := range m.groups {
		if !g.Collapsed {
			return false
		}
	}
	return true
}

func (m *Model) enforceSingleGroupActive() {
	if len(m.groups) == 1 {
		m.activeID = m.groups[0].ID
	}
}

// Groups returns copies of all groups in root order.
func (m *Model) Groups() []Group {
	out := make([]Group, len(m.groups))
	for i, g := range m.groups {
		out[i] = g.clone()
	}
	return out
}

// Group returns a copy of the group with the given id.
func (m *Model) Group(id string) (Group, bool) {
	if g := m.groupByID(id); g != nil {
		return g.clone(), true
	}
	return Group{}, false
}

// ActiveGroup returns the currently active group, if any.
func (m *Model) ActiveGroup() (Group, bool) {
	m.enforceSingleGroupActive()
	return m.Group(m.activeID)
}

// GroupOf reports which group currently references the item.
func (m *Model) GroupOf(itemID string) (string, int) {
	for _, g := range m.groups {
		if i := indexOf(g.Items, itemID); i >= 0 {
			return g.ID, i
		}
	}
	return "", -1
}

// CurrentOrder returns every item id in display order: groups in root
// order, items in sequence order.
func (m *Model) CurrentOrder() []string {
	var out []string
	for _, g := range m.groups {
		out = append(out, g.Items...)
	}
	return out
}

// VisibleOrder returns the item ids of uncollapsed groups in display order.
// Selection and range clicks operate over this sequence.
func (m *Model) VisibleOrder() []string {
	var out []string
	for _, g := range m.groups {
		if !g.Collapsed {
			out = append(out, g.Items...)
		}
	}
	return out
}

// GroupOrder returns the group ids in root order.
func (m *Model) GroupOrder() []string {
	out := make([]string, len(m.groups))
	for i, g := range m.groups {
		out[i] = g.ID
	}
	return out
}

// ContainsItem reports whether any group references the item.
func (m *Model) ContainsItem(itemID string) bool {
	_, idx := m.GroupOf(itemID)
	return idx >= 0
}

func (m *Model) groupByID(id string) *Group {
	if id == "" {
		return nil
	}
	for _, g := range m.groups {
		if g.ID == id {
			return g
		}
	}
	return nil
}

func (m *Model) indexOfGroup(id string) int {
	for i, g := range m.groups {
		if g.ID == id {
			return i
		}
	}
	return -1
}

func indexOf(items []string, id string) int {
	for i, existing := range items {
		if existing == id {
			return i
		}
	}
	return -1
}

func contains(items []string, id string) bool {
	return indexOf(items, id) >= 0
}

func containsGroup(groups []*Group, id string) bool {
	for _, g := range groups {
		if g.ID == id {
			return true
		}
	}
	return false
}

func withoutAll(items, drop []string) []string {
	out := make([]string, 0, len(items))
	for _, id := range items {
		if !contains(drop, id) {
			out = append(out, id)
		}
	}
	return out
}

func insertBlock(items, block []string, index int) []string {
	if index < 0 {
		index = 0
	}
	if index > len(items) {
		index = len(items)
	}
	out := make([]string, 0, len(items)+len(block))
	out = append(out, items[:index]...)
	out = append(out, block...)
	out = append(out, items[index:]...)
	return out
}

func equalSeq(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func sameGroupOrder(a, b []*Group) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].ID != b[i].ID {
			return false
		}
	}
	return true
}
