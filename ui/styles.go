package ui

import "github.com/charmbracelet/lipgloss"

// Panel colors, ANSI 16-color palette so they follow the terminal theme
var (
	titleColor    = lipgloss.Color("5")
	subtitleColor = lipgloss.Color("6")
	footerColor   = lipgloss.Color("241")
)

// Escape sequences used by the plain renderer
const (
	ansiHeader = "\033[95m"
	ansiBlue   = "\033[94m"
	ansiBold   = "\033[1m"
	ansiReset  = "\033[0m"
)

func titleStyle(r *lipgloss.Renderer) lipgloss.Style {
	return r.NewStyle().
		Foreground(titleColor).
		Bold(true)
}

func subtitleStyle(r *lipgloss.Renderer) lipgloss.Style {
	return r.NewStyle().
		Foreground(subtitleColor).
		Italic(true)
}
