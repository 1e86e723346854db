package cli

import "github.com/charmbracelet/lipgloss"

type theme struct {
	Banner lipgloss.Style
	Prompt lipgloss.Style
	Error  lipgloss.Style
	Help   lipgloss.Style
}

func newTheme(color bool) theme {
	if !color {
		plain := lipgloss.NewStyle()
		return theme{Banner: plain, Prompt: plain, Error: plain, Help: plain}
	}

	return theme{
		Banner: lipgloss.NewStyle().Bold(true),
		Prompt: lipgloss.NewStyle().Foreground(lipgloss.Color("63")),
		Error:  lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
		Help:   lipgloss.NewStyle().Faint(true),
	}
}
