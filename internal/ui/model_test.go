package ui

import (
	"image"
	"reflect"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/inkbench/preset-groups/internal/data/dispatcher"
	"github.com/inkbench/preset-groups/internal/drag"
	"github.com/inkbench/preset-groups/internal/host"
	"github.com/inkbench/preset-groups/internal/layout"
	"github.com/inkbench/preset-groups/internal/notify"
	"github.com/inkbench/preset-groups/internal/registry"
	"github.com/inkbench/preset-groups/internal/selection"
	"github.com/inkbench/preset-groups/internal/signature"
)

func testModel(t *testing.T, exclusive bool) *Model {
	t.Helper()
	hub := notify.NewHub()
	lay := layout.New(exclusive, hub)
	sel := selection.New(hub)
	reg := registry.New()
	col := host.NewStaticCollection([]host.Preset{
		{ID: "a", Name: "Ink pen"},
		{ID: "b", Name: "Soft round"},
		{ID: "c", Name: "Charcoal"},
		{ID: "x", Name: "Wet wash"},
	})
	for _, id := range []string{"a", "b", "c", "x"} {
		col.SetThumbnail(id, image.NewRGBA(image.Rect(0, 0, 4, 4)))
	}
	m := NewModel(Deps{
		Layout:     lay,
		Registry:   reg,
		Selection:  sel,
		Drag:       drag.NewEngine(lay, sel),
		Hub:        hub,
		Collection: col,
		Dispatcher: dispatcher.New(reg, lay, sel, hub),
	}, Options{Width: 60, Height: 20, WrapCycle: true})

	g1 := lay.AddGroup("one")
	g2 := lay.AddGroup("two")
	for _, p := range []host.Preset{{ID: "a", Name: "Ink pen"}, {ID: "b", Name: "Soft round"}, {ID: "c", Name: "Charcoal"}} {
		reg.Adopt(p)
	}
	if _, err := lay.AddItems(g1.ID, []string{"a", "b"}, -1); err != nil {
		t.Fatalf("AddItems: %v", err)
	}
	if _, err := lay.AddItems(g2.ID, []string{"c"}, -1); err != nil {
		t.Fatalf("AddItems: %v", err)
	}
	m.saveNeeded = false
	return m
}

func press(m *Model, key string) {
	var msg tea.KeyMsg
	switch key {
	case "enter":
		msg = tea.KeyMsg{Type: tea.KeyEnter}
	case "tab":
		msg = tea.KeyMsg{Type: tea.KeyTab}
	case "esc":
		msg = tea.KeyMsg{Type: tea.KeyEscape}
	case " ":
		msg = tea.KeyMsg{Type: tea.KeySpace}
	case "up":
		msg = tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		msg = tea.KeyMsg{Type: tea.KeyDown}
	default:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
	}
	m.Update(msg)
}

func TestRowsFollowCollapseState(t *testing.T) {
	m := testModel(t, false)
	if got := len(m.rows()); got != 5 {
		t.Fatalf("rows = %d, want 2 headers + 3 items", got)
	}
	groups := m.layout.Groups()
	if err := m.layout.ToggleCollapse(groups[0].ID); err != nil {
		t.Fatalf("ToggleCollapse: %v", err)
	}
	rows := m.rows()
	if len(rows) != 3 {
		t.Fatalf("rows after collapse = %d, want 3", len(rows))
	}
	if rows[0].kind != rowGroupHeader || !rows[0].collapsed {
		t.Fatalf("first row = %+v, want collapsed header", rows[0])
	}
}

func TestCursorMovementAndSpaceSelection(t *testing.T) {
	m := testModel(t, false)
	press(m, "down") // first item of group one
	press(m, " ")
	if !m.selection.IsSelected("a") {
		t.Fatalf("space did not select the cursor item")
	}
	press(m, "down")
	press(m, " ")
	if got := m.selection.Current(m.layout.VisibleOrder()); !reflect.DeepEqual(got, []string{"a", "b"}) {
		t.Fatalf("selection = %v, want additive [a b]", got)
	}
}

func TestEnterTogglesGroupCollapse(t *testing.T) {
	m := testModel(t, false)
	press(m, "enter") // cursor starts on group one's header
	groups := m.layout.Groups()
	if !groups[0].Collapsed {
		t.Fatalf("enter on header did not collapse group")
	}
}

func TestCycleKeysWrapWithinActiveGroup(t *testing.T) {
	m := testModel(t, false)
	groups := m.layout.Groups()
	m.layout.SetActiveGroup(groups[0].ID)

	press(m, ".")
	if got := m.selection.Current([]string{"a", "b"}); !reflect.DeepEqual(got, []string{"a"}) {
		t.Fatalf("first cycle = %v, want [a]", got)
	}
	press(m, ".")
	press(m, ".") // wraps past b back to a
	if got := m.selection.Current([]string{"a", "b"}); !reflect.DeepEqual(got, []string{"a"}) {
		t.Fatalf("wrap cycle = %v, want [a]", got)
	}
	press(m, ",")
	if got := m.selection.Current([]string{"a", "b"}); !reflect.DeepEqual(got, []string{"b"}) {
		t.Fatalf("reverse wrap = %v, want [b]", got)
	}
}

func TestMouseDragMovesItemAcrossGroups(t *testing.T) {
	m := testModel(t, false)
	// Row layout: 0 header(one), 1 a, 2 b, 3 header(two), 4 c. Screen Y is
	// row index + the header line.
	m.Update(tea.MouseMsg{X: 2, Y: 2, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m.Update(tea.MouseMsg{X: 2, Y: 5, Action: tea.MouseActionMotion})
	if m.drag.Phase() != drag.Dragging {
		t.Fatalf("phase = %v, want dragging", m.drag.Phase())
	}
	m.Update(tea.MouseMsg{X: 2, Y: 5, Action: tea.MouseActionRelease})

	groups := m.layout.Groups()
	if !reflect.DeepEqual(groups[0].Items, []string{"b"}) || !reflect.DeepEqual(groups[1].Items, []string{"a", "c"}) {
		t.Fatalf("groups after drag = %v / %v", groups[0].Items, groups[1].Items)
	}
}

func TestCtrlClickTogglesWithoutDragging(t *testing.T) {
	m := testModel(t, false)
	m.Update(tea.MouseMsg{X: 2, Y: 2, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft, Ctrl: true})
	m.Update(tea.MouseMsg{X: 2, Y: 5, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft, Ctrl: true})
	if m.drag.Phase() != drag.Idle {
		t.Fatalf("ctrl clicks started a drag")
	}
	if got := m.selection.Current(m.layout.VisibleOrder()); !reflect.DeepEqual(got, []string{"a", "c"}) {
		t.Fatalf("selection = %v, want [a c]", got)
	}
}

func TestShiftClickSelectsRange(t *testing.T) {
	m := testModel(t, false)
	m.Update(tea.MouseMsg{X: 2, Y: 2, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m.Update(tea.MouseMsg{X: 2, Y: 2, Action: tea.MouseActionRelease})
	m.Update(tea.MouseMsg{X: 2, Y: 5, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft, Shift: true})
	if got := m.selection.Current(m.layout.VisibleOrder()); !reflect.DeepEqual(got, []string{"a", "b", "c"}) {
		t.Fatalf("range selection = %v, want [a b c]", got)
	}
}

func TestNewGroupPromptFlow(t *testing.T) {
	m := testModel(t, false)
	press(m, "n")
	if m.mode != ModePrompt {
		t.Fatalf("mode = %v, want prompt", m.mode)
	}
	for _, r := range "inks" {
		m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	press(m, "enter")
	if m.mode != ModeBrowse {
		t.Fatalf("prompt did not close")
	}
	groups := m.layout.Groups()
	if groups[len(groups)-1].Name != "inks" {
		t.Fatalf("new group = %q", groups[len(groups)-1].Name)
	}
	if active, _ := m.layout.ActiveGroup(); active.Name != "inks" {
		t.Fatalf("new group not active, active = %q", active.Name)
	}
}

func TestPickerAddsPresetToActiveGroup(t *testing.T) {
	m := testModel(t, false)
	groups := m.layout.Groups()
	m.layout.SetActiveGroup(groups[1].ID)

	press(m, "a")
	if m.mode != ModePicker {
		t.Fatalf("mode = %v, want picker", m.mode)
	}
	// Only "Wet wash" (x) is unplaced.
	if len(m.picker.filtered) != 1 || m.picker.filtered[0].ID != "x" {
		t.Fatalf("candidates = %+v, want just x", m.picker.filtered)
	}
	press(m, "enter")
	g, _ := m.layout.Group(groups[1].ID)
	if !reflect.DeepEqual(g.Items, []string{"c", "x"}) {
		t.Fatalf("group items = %v, want [c x]", g.Items)
	}
	if _, ok := m.registry.Entry("x"); !ok {
		t.Fatalf("picked preset not adopted")
	}
}

func TestEscapeClearsSelection(t *testing.T) {
	m := testModel(t, false)
	press(m, "down")
	press(m, " ")
	press(m, "esc")
	if m.selection.Len() != 0 {
		t.Fatalf("selection survived escape")
	}
}

func TestViewShowsDirtyMarker(t *testing.T) {
	m := testModel(t, false)
	var sig signature.Signature
	sig[0] = 1
	m.registry.MarkDirty("a", sig, time.Now())
	if !strings.Contains(m.View(), dirtyMarker) {
		t.Fatalf("dirty marker missing from view")
	}
}

func TestDeleteGroupUnderCursor(t *testing.T) {
	m := testModel(t, false)
	press(m, "d") // cursor on group one's header
	groups := m.layout.Groups()
	if len(groups) != 1 || groups[0].Name != "two" {
		t.Fatalf("groups after delete = %+v", groups)
	}
	if active, ok := m.layout.ActiveGroup(); !ok || active.Name != "two" {
		t.Fatalf("remaining group not active")
	}
}
