// Package ui renders an article summary to the terminal.
package ui

import (
	"fmt"
	"io"
)

// Renderer writes a titled summary to w
type Renderer interface {
	Render(w io.Writer, title, link, summary string) error
}

// New picks the renderer matching the terminal capability. The pager is
// only used on enhanced terminals.
func New(c Capability, pager bool) Renderer {
	if !c.Enhanced {
		return &PlainRenderer{}
	}
	panel := NewPanelRenderer(c.Width)
	if pager {
		return NewPagerRenderer(panel, c.Height)
	}
	return panel
}

// PlainRenderer prints the summary with bare ANSI escapes
type PlainRenderer struct{}

// Render writes the title and link lines followed by the summary
func (PlainRenderer) Render(w io.Writer, title, link, summary string) error {
	if _, err := fmt.Fprintf(w, "Title: %s%s%s%s\n", ansiBold, ansiHeader, title, ansiReset); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Link: %s%s%s\n\n", ansiBlue, link, ansiReset); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w, summary)
	return err
}
