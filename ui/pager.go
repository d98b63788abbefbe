package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// PagerRenderer shows the panel in a scrollable full-screen view when it
// is taller than the terminal. The panel is printed again on exit so it
// stays in the scrollback.
type PagerRenderer struct {
	panel  *PanelRenderer
	height int
	opts   []tea.ProgramOption
}

// NewPagerRenderer creates a pager around panel for a terminal of the given height
func NewPagerRenderer(panel *PanelRenderer, height int, opts ...tea.ProgramOption) *PagerRenderer {
	if height <= 1 {
		height = defaultHeight
	}
	return &PagerRenderer{panel: panel, height: height, opts: opts}
}

// Render pages the panel if needed, then prints it to w
func (p *PagerRenderer) Render(w io.Writer, title, link, summary string) error {
	r := lipgloss.NewRenderer(w)
	content := p.panel.panel(r, title, link, summary)

	if lipgloss.Height(content) >= p.height {
		model := newPagerModel(r, content, p.panel.width, p.height)
		opts := append([]tea.ProgramOption{tea.WithOutput(w), tea.WithAltScreen()}, p.opts...)
		if _, err := tea.NewProgram(model, opts...).Run(); err != nil {
			return fmt.Errorf("error running pager: %w", err)
		}
	}

	_, err := fmt.Fprintln(w, content)
	return err
}

type pagerModel struct {
	viewport viewport.Model
	footer   lipgloss.Style
}

func newPagerModel(r *lipgloss.Renderer, content string, width, height int) *pagerModel {
	vp := viewport.New(width, height-1)
	vp.SetContent(content)
	return &pagerModel{
		viewport: vp,
		footer:   r.NewStyle().Foreground(footerColor),
	}
}

func (m *pagerModel) Init() tea.Cmd {
	return nil
}

func (m *pagerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.viewport.Width = msg.Width
		m.viewport.Height = max(msg.Height-1, 1)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m *pagerModel) View() string {
	var b strings.Builder
	b.WriteString(m.viewport.View())
	b.WriteString("\n")
	b.WriteString(m.footer.Render(fmt.Sprintf("%3.f%% • ↑/↓ scroll • q quit", m.viewport.ScrollPercent()*100)))
	return b.String()
}
