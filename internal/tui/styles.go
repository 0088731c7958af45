package tui

import "github.com/charmbracelet/lipgloss"

// Color palette - keeping it minimal and accessible.
var (
	ColorPrompt = lipgloss.Color("39")  // Blue
	ColorError  = lipgloss.Color("196") // Red
	ColorMuted  = lipgloss.Color("240") // Dark gray
)

// Styles for the REPL surface.
var (
	PromptStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrompt)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorError)

	BannerStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	HelpStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)
)
