package theme

import "github.com/charmbracelet/lipgloss"

// Styles describes reusable Lip Gloss styles shared across the UI.
type Styles struct {
	GroupHeader       *lipgloss.Style
	ActiveGroupHeader *lipgloss.Style
	SelectedGroup     *lipgloss.Style
	CollapseMarker    *lipgloss.Style

	Item          *lipgloss.Style
	SelectedItem  *lipgloss.Style
	CursorItem    *lipgloss.Style
	DirtyMarker   *lipgloss.Style
	EraserMarker  *lipgloss.Style
	DropIndicator *lipgloss.Style

	Error  *lipgloss.Style
	Info   *lipgloss.Style
	Header *lipgloss.Style
	Footer *lipgloss.Style

	PickerPrompt      *lipgloss.Style
	PickerMatch       *lipgloss.Style
	PickerPlaceholder *lipgloss.Style
}

var defaultStyles = Styles{
	GroupHeader: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Bold(true),
	),
	ActiveGroupHeader: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Bold(true),
	),
	SelectedGroup: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("238")).Bold(true),
	),
	CollapseMarker: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
	),
	Item: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	SelectedItem: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("238")).Bold(true),
	),
	CursorItem: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("33")),
	),
	DirtyMarker: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
	),
	EraserMarker: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("175")),
	),
	DropIndicator: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Bold(true),
	),
	Error: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	),
	Info: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	Header: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Bold(true),
	),
	Footer: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	PickerPrompt: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("34")).Bold(true),
	),
	PickerMatch: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true),
	),
	PickerPlaceholder: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	),
}

// Default exposes the standard style set used across the application.
func Default() *Styles {
	return &defaultStyles
}

func ptr(style lipgloss.Style) *lipgloss.Style {
	return &style
}
