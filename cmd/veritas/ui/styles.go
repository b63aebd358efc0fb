// Package ui is the interactive TUI for veritas: the Predict and
// Generate tabs, the bookmarks overlay, and the auth forms, rendered
// over the shared store layer.
package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme holds the active color scheme.
type Theme struct {
	Foreground lipgloss.Color
	Primary    lipgloss.Color
	Accent     lipgloss.Color
	Muted      lipgloss.Color
	Border     lipgloss.Color

	Success lipgloss.Color
	Error   lipgloss.Color
	Warning lipgloss.Color
}

// LightTheme returns the light palette.
func LightTheme() Theme {
	return Theme{
		Foreground: lipgloss.Color("#101F38"),
		Primary:    lipgloss.Color("#101F38"),
		Accent:     lipgloss.Color("#6C5CE7"),
		Muted:      lipgloss.Color("#8a8f98"),
		Border:     lipgloss.Color("#dce0e5"),
		Success:    lipgloss.Color("#2e7d32"),
		Error:      lipgloss.Color("#e53935"),
		Warning:    lipgloss.Color("#FFC107"),
	}
}

// DarkTheme returns the dark palette.
func DarkTheme() Theme {
	return Theme{
		Foreground: lipgloss.Color("#f2f2f2"),
		Primary:    lipgloss.Color("#a29bfe"),
		Accent:     lipgloss.Color("#6C5CE7"),
		Muted:      lipgloss.Color("#636e72"),
		Border:     lipgloss.Color("#2a3850"),
		Success:    lipgloss.Color("#8BC34A"),
		Error:      lipgloss.Color("#e57373"),
		Warning:    lipgloss.Color("#FFC107"),
	}
}

// ThemeByName maps the config value to a palette, defaulting to dark.
func ThemeByName(name string) Theme {
	if name == "light" {
		return LightTheme()
	}
	return DarkTheme()
}

// Styles are the pre-built lipgloss styles used across the views.
type Styles struct {
	Theme Theme

	Title     lipgloss.Style
	Muted     lipgloss.Style
	Bold      lipgloss.Style
	TabActive lipgloss.Style
	TabIdle   lipgloss.Style
	Panel     lipgloss.Style
	Overlay   lipgloss.Style
	Toast     lipgloss.Style

	LabelReal lipgloss.Style
	LabelFake lipgloss.Style
	Error     lipgloss.Style
	Help      lipgloss.Style
}

// NewStyles builds the style set for theme.
func NewStyles(theme Theme) Styles {
	return Styles{
		Theme: theme,

		Title: lipgloss.NewStyle().Bold(true).Foreground(theme.Primary),
		Muted: lipgloss.NewStyle().Foreground(theme.Muted),
		Bold:  lipgloss.NewStyle().Bold(true),

		TabActive: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Accent).
			Padding(0, 2).
			Border(lipgloss.RoundedBorder(), false, false, true, false).
			BorderForeground(theme.Accent),
		TabIdle: lipgloss.NewStyle().
			Foreground(theme.Muted).
			Padding(0, 2),

		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border).
			Padding(0, 1),
		Overlay: lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(theme.Accent).
			Padding(0, 1),
		Toast: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Foreground).
			Background(theme.Accent).
			Padding(0, 1),

		LabelReal: lipgloss.NewStyle().Bold(true).Foreground(theme.Success),
		LabelFake: lipgloss.NewStyle().Bold(true).Foreground(theme.Error),
		Error:     lipgloss.NewStyle().Foreground(theme.Error),
		Help:      lipgloss.NewStyle().Foreground(theme.Muted),
	}
}
