package ui

import "github.com/charmbracelet/lipgloss"

const (
	ColorAccent = "#00FFFF"
	ColorDone   = "#32CD32"
	ColorSubtle = "#666666"
	ColorDanger = "#DC143C"
)

// Styles contains the lipgloss styles for the TUI.
type Styles struct {
	Title        lipgloss.Style
	Filter       lipgloss.Style
	FilterActive lipgloss.Style
	Task         lipgloss.Style
	TaskDone     lipgloss.Style
	Cursor       lipgloss.Style
	Subtle       lipgloss.Style
	Status       lipgloss.Style
}

// NewStyles returns the default styles.
func NewStyles() Styles {
	return Styles{
		Title:        lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(ColorAccent)).MarginBottom(1),
		Filter:       lipgloss.NewStyle().Padding(0, 1),
		FilterActive: lipgloss.NewStyle().Padding(0, 1).Bold(true).Underline(true),
		Task:         lipgloss.NewStyle(),
		TaskDone:     lipgloss.NewStyle().Strikethrough(true).Foreground(lipgloss.Color(ColorDone)),
		Cursor:       lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccent)).Bold(true),
		Subtle:       lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSubtle)),
		Status:       lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSubtle)).MarginTop(1),
	}
}
