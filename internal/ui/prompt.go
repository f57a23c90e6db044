package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/inkbench/preset-groups/internal/logging/events"
)

type promptKind int

const (
	promptNewGroup promptKind = iota
	promptRenameGroup
)

type promptState struct {
	kind    promptKind
	groupID string
	input   textinput.Model
}

func (m *Model) openPrompt(kind promptKind, groupID, initial string) {
	input := textinput.New()
	input.Prompt = "» "
	if styles.PickerPrompt != nil {
		input.PromptStyle = *styles.PickerPrompt
	}
	switch kind {
	case promptNewGroup:
		input.Placeholder = "new group name (empty for automatic)"
	case promptRenameGroup:
		input.Placeholder = "group name"
	}
	input.SetValue(initial)
	input.CursorEnd()
	input.Focus()
	m.prompt = &promptState{kind: kind, groupID: groupID, input: input}
	m.mode = ModePrompt
}

func (m *Model) closePrompt() {
	m.prompt = nil
	m.mode = ModeBrowse
}

func (m *Model) handlePromptMsg(msg tea.Msg) (bool, tea.Cmd) {
	key, isKey := msg.(tea.KeyMsg)
	if isKey {
		switch key.String() {
		case "esc":
			if m.prompt.kind == promptRenameGroup {
				events.Group.CancelRename(m.prompt.groupID, events.GroupReasonEscape)
			}
			m.closePrompt()
			return true, nil
		case "enter":
			m.commitPrompt()
			return true, nil
		case "ctrl+c":
			m.closePrompt()
			return true, m.quit()
		}
	}
	var cmd tea.Cmd
	m.prompt.input, cmd = m.prompt.input.Update(msg)
	return true, cmd
}

func (m *Model) commitPrompt() {
	value := strings.TrimSpace(m.prompt.input.Value())
	switch m.prompt.kind {
	case promptNewGroup:
		g := m.layout.AddGroup(value)
		m.layout.SetActiveGroup(g.ID)
		events.Group.Create(g.ID, g.Name)
	case promptRenameGroup:
		if value == "" {
			events.Group.CancelRename(m.prompt.groupID, events.GroupReasonEmpty)
			break
		}
		if err := m.layout.RenameGroup(m.prompt.groupID, value); err != nil {
			m.errMsg = err.Error()
			break
		}
		events.Group.Rename(m.prompt.groupID, value)
	}
	m.closePrompt()
}
