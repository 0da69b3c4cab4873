// Package widgets renders a component tree (package component) to a
// terminal string via lipgloss styles and bubbles input models — the
// terminal-output half of the tree the reactive core keeps up to date.
package widgets

import "github.com/charmbracelet/lipgloss"

// Theme is the semantic color palette every Renderer draws from.
type Theme struct {
	Primary    lipgloss.Color
	Secondary  lipgloss.Color
	Muted      lipgloss.Color
	Warning    lipgloss.Color
	Error      lipgloss.Color
	Success    lipgloss.Color
	Background lipgloss.Color
}

// DefaultTheme mirrors a typical terminal-friendly 256-color palette.
var DefaultTheme = Theme{
	Primary:    lipgloss.Color("35"),
	Secondary:  lipgloss.Color("99"),
	Muted:      lipgloss.Color("240"),
	Warning:    lipgloss.Color("220"),
	Error:      lipgloss.Color("196"),
	Success:    lipgloss.Color("35"),
	Background: lipgloss.Color("236"),
}
