package cli

import (
	"github.com/charmbracelet/lipgloss"
)

// Colour palette for command output.
var (
	colourPrimary   = lipgloss.Color("#7C3AED") // Purple
	colourSecondary = lipgloss.Color("#06B6D4") // Cyan
	colourMuted     = lipgloss.Color("#6C7086") // Medium gray
	colourSuccess   = lipgloss.Color("#A6E3A1") // Green
	colourWarning   = lipgloss.Color("#F9E2AF") // Yellow
)

// styles are pre-configured lipgloss styles for command output.
// Colours degrade to plain text when output is not a terminal.
var styles = struct {
	Title    lipgloss.Style
	Question lipgloss.Style
	Answer   lipgloss.Style
	Muted    lipgloss.Style
	Success  lipgloss.Style
	Warning  lipgloss.Style
}{
	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(colourPrimary),
	Question: lipgloss.NewStyle().
		Bold(true).
		Foreground(colourSecondary),
	Answer: lipgloss.NewStyle().
		Bold(true).
		Foreground(colourSuccess),
	Muted: lipgloss.NewStyle().
		Foreground(colourMuted),
	Success: lipgloss.NewStyle().
		Foreground(colourSuccess),
	Warning: lipgloss.NewStyle().
		Foreground(colourWarning),
}
