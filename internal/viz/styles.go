package viz

import "github.com/charmbracelet/lipgloss"

// Theme is a color scheme for the viewer chrome.
type Theme struct {
	Name   string
	Canvas lipgloss.Style
	Header lipgloss.Style
	Label  lipgloss.Style
	Value  lipgloss.Style
	Panel  lipgloss.Style
	Help   lipgloss.Style
}

func newTheme(name string, primary, text, muted lipgloss.Color) Theme {
	return Theme{
		Name:   name,
		Canvas: lipgloss.NewStyle().Foreground(primary).Padding(0, 1),
		Header: lipgloss.NewStyle().Foreground(primary).Bold(true).MarginBottom(1),
		Label:  lipgloss.NewStyle().Foreground(muted).Width(8),
		Value:  lipgloss.NewStyle().Foreground(text),
		Panel: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(muted).
			Padding(0, 2),
		Help: lipgloss.NewStyle().Foreground(muted).MarginTop(1),
	}
}

var themes = []Theme{
	newTheme("mono", lipgloss.Color("252"), lipgloss.Color("255"), lipgloss.Color("240")),
	newTheme("phosphor", lipgloss.Color("82"), lipgloss.Color("120"), lipgloss.Color("22")),
	newTheme("amber", lipgloss.Color("214"), lipgloss.Color("220"), lipgloss.Color("94")),
	newTheme("cyan", lipgloss.Color("86"), lipgloss.Color("123"), lipgloss.Color("30")),
}
