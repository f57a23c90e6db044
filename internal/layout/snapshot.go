package layout

import "github.com/google/uuid"

// Snapshot is the persisted form of the model, stable across sessions.
type Snapshot struct {
	Groups      []GroupSnapshot `json:"groups"`
	ActiveGroup string          `json:"activeGroup,omitempty"`
}

// GroupSnapshot mirrors a Group for serialization.
type GroupSnapshot struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Items     []string `json:"items,omitempty"`
	Collapsed bool     `json:"collapsed,omitempty"`
}

// Snapshot captures the full model state.
func (m *Model) Snapshot() Snapshot {
	snap := Snapshot{ActiveGroup: m.activeID, Groups: make([]GroupSnapshot, len(m.groups))}
	for i, g := range m.groups {
		snap.Groups[i] = GroupSnapshot{
			ID:        g.ID,
			Name:      g.Name,
			Items:     append([]string(nil), g.Items...),
			Collapsed: g.Collapsed,
		}
	}
	return snap
}

// Restore replaces the model state with a snapshot. Hand-edited or stale
// snapshots are tolerated: missing ids are regenerated, duplicate item
// references keep only their first occurrence, and a dangling active id is
// dropped. No events fire; Restore runs before anyone subscribes.
func (m *Model) Restore(snap Snapshot) {
	seen := make(map[string]struct{})
	groups := make([]*Group, 0, len(snap.Groups))
	for _, gs := range snap.Groups {
		g := &Group{ID: gs.ID, Name: gs.Name, Collapsed: gs.Collapsed}
		if g.ID == "" {
			g.ID = uuid.NewString()
		}
		for _, id := range gs.Items {
			if id == "" {
				continue
			}
			if _, dup := seen[id]; dup {
				continue
			}
			seen[id] = struct{}{}
			g.Items = append(g.Items, id)
		}
		groups = append(groups, g)
	}
	m.groups = groups
	m.activeID = ""
	if m.groupByID(snap.ActiveGroup) != nil {
		m.activeID = snap.ActiveGroup
	}
	m.enforceSingleGroupActive()
	if m.exclusive && m.activeID != "" {
		for _, g := range m.groups {
			g.Collapsed = g.ID != m.activeID
		}
	}
}
