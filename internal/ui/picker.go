package ui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/inkbench/preset-groups/internal/host"
	"github.com/inkbench/preset-groups/internal/logging/events"
)

// pickerState is the add-preset overlay: the host catalog minus everything
// already placed, fuzzy-filtered as the user types.
type pickerState struct {
	input      textinput.Model
	candidates []host.Preset
	filtered   []host.Preset
	cursor     int
	checked    map[string]struct{}
}

func (m *Model) openPicker() {
	if _, ok := m.layout.ActiveGroup(); !ok {
		m.errMsg = "no active group to add presets to"
		return
	}
	presets, err := m.collection.ListPresets()
	if err != nil {
		m.hostDown = true
		m.errMsg = err.Error()
		return
	}
	candidates := make([]host.Preset, 0, len(presets))
	for _, p := range presets {
		if m.layout.ContainsItem(p.ID) {
			continue
		}
		candidates = append(candidates, p)
	}
	sort.Slice(candidates, func(i, j int) bool { return candidates[i].Name < candidates[j].Name })

	input := textinput.New()
	input.Prompt = "» "
	input.Placeholder = "(type to search)"
	if styles.PickerPrompt != nil {
		input.PromptStyle = *styles.PickerPrompt
	}
	input.Focus()

	m.picker = &pickerState{
		input:      input,
		candidates: candidates,
		filtered:   candidates,
		checked:    make(map[string]struct{}),
	}
	m.mode = ModePicker
	events.Picker.Open(len(candidates))
}

func (m *Model) closePicker() {
	m.picker = nil
	m.mode = ModeBrowse
}

func (m *Model) handlePickerMsg(msg tea.Msg) (bool, tea.Cmd) {
	p := m.picker
	key, isKey := msg.(tea.KeyMsg)
	if isKey {
		switch key.String() {
		case "esc":
			events.Picker.Cancel()
			m.closePicker()
			return true, nil
		case "ctrl+c":
			m.closePicker()
			return true, m.quit()
		case "up":
			if p.cursor > 0 {
				p.cursor--
			}
			return true, nil
		case "down":
			if p.cursor < len(p.filtered)-1 {
				p.cursor++
			}
			return true, nil
		case "tab":
			p.toggleCursor()
			return true, nil
		case "enter":
			m.commitPicker()
			return true, nil
		}
	}
	before := p.input.Value()
	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	if p.input.Value() != before {
		p.applyFilter()
		events.Picker.Filter(p.input.Value(), len(p.filtered))
	}
	return true, cmd
}

func (p *pickerState) toggleCursor() {
	if p.cursor < 0 || p.cursor >= len(p.filtered) {
		return
	}
	id := p.filtered[p.cursor].ID
	if _, ok := p.checked[id]; ok {
		delete(p.checked, id)
	} else {
		p.checked[id] = struct{}{}
	}
}

func (p *pickerState) applyFilter() {
	query := strings.TrimSpace(p.input.Value())
	if query == "" {
		p.filtered = p.candidates
		p.cursor = 0
		return
	}
	names := make([]string, len(p.candidates))
	for i, c := range p.candidates {
		names[i] = c.Name
	}
	ranks := fuzzy.RankFindNormalizedFold(query, names)
	matches := make(map[int]struct{}, len(ranks))
	for _, rank := range ranks {
		matches[rank.OriginalIndex] = struct{}{}
	}
	filtered := make([]host.Preset, 0, len(matches))
	for i, c := range p.candidates {
		if _, ok := matches[i]; ok {
			filtered = append(filtered, c)
		}
	}
	p.filtered = filtered
	p.cursor = 0
}

// selectedPresets returns the checked presets, or the cursor row when the
// user commits without checking anything.
func (p *pickerState) selectedPresets() []host.Preset {
	if len(p.checked) == 0 {
		if p.cursor >= 0 && p.cursor < len(p.filtered) {
			return []host.Preset{p.filtered[p.cursor]}
		}
		return nil
	}
	out := make([]host.Preset, 0, len(p.checked))
	for _, c := range p.candidates {
		if _, ok := p.checked[c.ID]; ok {
			out = append(out, c)
		}
	}
	return out
}

func (m *Model) commitPicker() {
	chosen := m.picker.selectedPresets()
	m.closePicker()
	if len(chosen) == 0 {
		return
	}
	active, ok := m.layout.ActiveGroup()
	if !ok {
		return
	}
	ids := make([]string, 0, len(chosen))
	for _, p := range chosen {
		m.registry.Adopt(p)
		ids = append(ids, p.ID)
	}
	added, err := m.layout.AddItems(active.ID, ids, -1)
	if err != nil {
		m.errMsg = err.Error()
		return
	}
	events.Picker.Commit(len(added))
	events.Group.AddItems(active.ID, len(added))
	if m.verbose && len(added) > 0 {
		m.setInfo(fmt.Sprintf("Added %d preset(s)", len(added)))
	}
}
