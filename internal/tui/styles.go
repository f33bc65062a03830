package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/prism/internal/ui/components"
)

// chrome holds the showcase frame styles derived from the active theme.
type chrome struct {
	title  lipgloss.Style
	status lipgloss.Style
	focus  lipgloss.Style
	blur   lipgloss.Style
	footer lipgloss.Style
}

func newChrome(theme components.Theme) chrome {
	p := theme.Palette
	return chrome{
		title: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Primary.Contrast).
			PaddingLeft(1).
			PaddingRight(1),
		status: lipgloss.NewStyle().
			Foreground(p.Neutral.Muted).
			PaddingLeft(1),
		focus: lipgloss.NewStyle().
			BorderStyle(lipgloss.ThickBorder()).
			BorderLeft(true).
			BorderForeground(p.Primary.Base).
			PaddingLeft(1),
		blur: lipgloss.NewStyle().
			PaddingLeft(2),
		footer: lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderTop(true).
			BorderForeground(p.Neutral.Muted),
	}
}
