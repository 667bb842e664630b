package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tile-blast/internal/core"
)

// Theme contains the visual styles of the game screen and the menus.
type Theme struct {
	// Screen cell colors
	Colors map[core.Color]lipgloss.Style

	// Menu styles
	MenuTitle       lipgloss.Style
	MenuSubtitle    lipgloss.Style
	MenuItemNormal  lipgloss.Style
	MenuItemActive  lipgloss.Style
	MenuDescription lipgloss.Style
	MenuHelp        lipgloss.Style
	MenuWon         lipgloss.Style
}

// DefaultTheme returns the default visual theme.
func DefaultTheme() Theme {
	return Theme{
		Colors: map[core.Color]lipgloss.Style{
			core.ColorDefault:     lipgloss.NewStyle(),
			core.ColorRed:         lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
			core.ColorGreen:       lipgloss.NewStyle().Foreground(lipgloss.Color("46")),
			core.ColorBlue:        lipgloss.NewStyle().Foreground(lipgloss.Color("33")),
			core.ColorYellow:      lipgloss.NewStyle().Foreground(lipgloss.Color("226")),
			core.ColorCyan:        lipgloss.NewStyle().Foreground(lipgloss.Color("51")),
			core.ColorMagenta:     lipgloss.NewStyle().Foreground(lipgloss.Color("205")),
			core.ColorWhite:       lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
			core.ColorGray:        lipgloss.NewStyle().Foreground(lipgloss.Color("242")),
			core.ColorBrightWhite: lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
		},

		MenuTitle:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("226")),
		MenuSubtitle:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		MenuItemNormal:  lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		MenuItemActive:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("51")),
		MenuDescription: lipgloss.NewStyle().Foreground(lipgloss.Color("242")).Italic(true),
		MenuHelp:        lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		MenuWon:         lipgloss.NewStyle().Foreground(lipgloss.Color("46")),
	}
}

// currentTheme holds the active theme.
var currentTheme = DefaultTheme()

// GetTheme returns the current theme.
func GetTheme() Theme {
	return currentTheme
}

// SetTheme sets a custom theme.
func SetTheme(t Theme) {
	currentTheme = t
}

// cellStyle returns the style for a color and attribute pair.
func (t Theme) cellStyle(c core.Color, a core.Attr) lipgloss.Style {
	style, ok := t.Colors[c]
	if !ok {
		style = t.Colors[core.ColorDefault]
	}
	if a.Has(core.AttrBold) {
		style = style.Bold(true)
	}
	if a.Has(core.AttrReverse) {
		style = style.Reverse(true)
	}
	return style
}
