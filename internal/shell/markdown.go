package shell

import (
	"github.com/charmbracelet/glamour"
)

// Markdown renders help text and listings for the terminal. It
// implements core.Renderer.
type Markdown struct {
	renderer *glamour.TermRenderer
}

// NewMarkdown builds a terminal markdown renderer with automatic
// light/dark styling.
func NewMarkdown() (*Markdown, error) {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(80),
	)
	if err != nil {
		return nil, err
	}
	return &Markdown{renderer: renderer}, nil
}

// Render converts markdown to styled terminal output.
func (m *Markdown) Render(markdown string) (string, error) {
	return m.renderer.Render(markdown)
}
