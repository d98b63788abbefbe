package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// PanelRenderer draws the summary inside a rounded box with the title set
// into the top border and the link into the bottom border
type PanelRenderer struct {
	width int
}

// NewPanelRenderer creates a panel that spans width columns
func NewPanelRenderer(width int) *PanelRenderer {
	if width < minWidth {
		width = minWidth
	}
	return &PanelRenderer{width: width}
}

// Render writes the panel to w
func (p *PanelRenderer) Render(w io.Writer, title, link, summary string) error {
	_, err := fmt.Fprintln(w, p.panel(lipgloss.NewRenderer(w), title, link, summary))
	return err
}

func (p *PanelRenderer) panel(r *lipgloss.Renderer, title, link, summary string) string {
	border := lipgloss.RoundedBorder()
	inner := p.width - 2

	body := r.NewStyle().
		Border(border, false, true).
		Padding(1, 1).
		Width(inner).
		Render(summary)

	top := border.TopLeft +
		borderLabel(border.Top, titleStyle(r).Render(truncate(title, inner)), inner) +
		border.TopRight
	bottom := border.BottomLeft +
		borderLabel(border.Bottom, subtitleStyle(r).Render(truncate(link, inner)), inner) +
		border.BottomRight

	return lipgloss.JoinVertical(lipgloss.Left, top, body, bottom)
}

// borderLabel centers label in a border edge of the given width
func borderLabel(fill, label string, width int) string {
	if label != "" {
		label = " " + label + " "
	}
	lw := lipgloss.Width(label)
	if lw > width {
		return strings.Repeat(fill, width)
	}
	left := (width - lw) / 2
	return strings.Repeat(fill, left) + label + strings.Repeat(fill, width-lw-left)
}

// truncate shortens s so that it fits a border edge with room for the
// corner runs and the spaces around it
func truncate(s string, width int) string {
	return runewidth.Truncate(s, width-4, "…")
}
