// Package ui provides the visual styling and small render components for the
// dairydesk terminal client.
package ui

import (
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme holds the active color scheme.
type Theme struct {
	Background lipgloss.Color
	Foreground lipgloss.Color
	Primary    lipgloss.Color
	Accent     lipgloss.Color
	Muted      lipgloss.Color
	Border     lipgloss.Color
	IsDark     bool
}

// LightTheme returns the light color scheme.
func LightTheme() Theme {
	return Theme{
		Background: lipgloss.Color("#f6f5f1"),
		Foreground: lipgloss.Color("#1f2d1f"),
		Primary:    lipgloss.Color("#2e7d32"),
		Accent:     lipgloss.Color("#8d6e63"),
		Muted:      lipgloss.Color("#9e9e9e"),
		Border:     lipgloss.Color("#d7d2c8"),
		IsDark:     false,
	}
}

// DarkTheme returns the dark color scheme.
func DarkTheme() Theme {
	return Theme{
		Background: lipgloss.Color("#16201a"),
		Foreground: lipgloss.Color("#e8e6e0"),
		Primary:    lipgloss.Color("#81c784"),
		Accent:     lipgloss.Color("#bcaaa4"),
		Muted:      lipgloss.Color("#6d7a70"),
		Border:     lipgloss.Color("#31423a"),
		IsDark:     true,
	}
}

// DetectTheme picks a theme from the terminal environment. COLORFGBG is the
// most widely set hint; anything ambiguous falls back to dark.
func DetectTheme() Theme {
	if v := os.Getenv("COLORFGBG"); v != "" {
		parts := strings.Split(v, ";")
		if len(parts) == 2 {
			if bg, err := strconv.Atoi(parts[1]); err == nil && bg >= 7 && bg != 8 {
				return LightTheme()
			}
		}
	}
	return DarkTheme()
}

// Styles bundles the lipgloss styles used across views.
type Styles struct {
	Theme Theme

	Header  lipgloss.Style
	Footer  lipgloss.Style
	Title   lipgloss.Style
	Body    lipgloss.Style
	Muted   lipgloss.Style
	Bold    lipgloss.Style
	Success lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style
	Prompt  lipgloss.Style
	Card    lipgloss.Style
	Stat    lipgloss.Style
}

// NewStyles builds the style set for a theme.
func NewStyles(theme Theme) Styles {
	return Styles{
		Theme:   theme,
		Header:  lipgloss.NewStyle().Bold(true).Foreground(theme.Primary).Padding(0, 1),
		Footer:  lipgloss.NewStyle().Foreground(theme.Muted).Padding(0, 1),
		Title:   lipgloss.NewStyle().Bold(true).Foreground(theme.Foreground),
		Body:    lipgloss.NewStyle().Foreground(theme.Foreground),
		Muted:   lipgloss.NewStyle().Foreground(theme.Muted),
		Bold:    lipgloss.NewStyle().Bold(true),
		Success: lipgloss.NewStyle().Foreground(lipgloss.Color("#66bb6a")),
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("#e53935")),
		Warning: lipgloss.NewStyle().Foreground(lipgloss.Color("#ffb300")),
		Prompt:  lipgloss.NewStyle().Foreground(theme.Primary),
		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border).
			Padding(0, 1),
		Stat: lipgloss.NewStyle().Bold(true).Foreground(theme.Primary),
	}
}

// DefaultStyles returns styles for the detected theme.
func DefaultStyles() Styles {
	return NewStyles(DetectTheme())
}

// StylesFor maps a configured theme name to a style set.
func StylesFor(name string) Styles {
	switch name {
	case "light":
		return NewStyles(LightTheme())
	case "dark":
		return NewStyles(DarkTheme())
	default:
		return DefaultStyles()
	}
}
