package theme

import (
	catppuccin "github.com/catppuccin/go"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// New returns the huh theme used for confirmation prompts.
func New() *huh.Theme {
	t := huh.ThemeCatppuccin()

	light := catppuccin.Latte
	dark := catppuccin.Mocha
	var (
		subtext0 = lipgloss.AdaptiveColor{Light: light.Subtext0().Hex, Dark: dark.Subtext0().Hex}
		red      = lipgloss.AdaptiveColor{Light: light.Red().Hex, Dark: dark.Red().Hex}
	)

	f := &t.Focused
	// Confirm prompts guard destructive steps; make the title read as a warning.
	f.Title = f.Title.Foreground(red).Bold(true)
	f.FocusedButton = f.FocusedButton.Background(red)

	t.Help.ShortKey.Foreground(subtext0)
	t.Help.ShortSeparator.Foreground(subtext0)

	return t
}
