package output

import (
	"strings"

	"github.com/charmbracelet/glamour"
)

// MarkdownRenderer renders Markdown documents for the terminal with glamour.
type MarkdownRenderer struct {
	renderer *glamour.TermRenderer
}

// NewMarkdownRenderer creates a renderer for the given color mode and wrap
// width. Plain mode uses glamour's "notty" style, which emits no escapes.
func NewMarkdownRenderer(mode ColorMode, width int) *MarkdownRenderer {
	if width <= 0 {
		width = 80
	}

	var styleOpt glamour.TermRendererOption
	switch mode {
	case ColorNever:
		styleOpt = glamour.WithStylePath("notty")
	case ColorAlways:
		styleOpt = glamour.WithStylePath("dark")
	default:
		styleOpt = glamour.WithAutoStyle()
	}

	renderer, err := glamour.NewTermRenderer(styleOpt, glamour.WithWordWrap(width))
	if err != nil {
		// Final fallback to the plain style
		renderer, err = glamour.NewTermRenderer(glamour.WithStylePath("notty"), glamour.WithWordWrap(width))
		if err != nil {
			renderer = nil
		}
	}

	return &MarkdownRenderer{renderer: renderer}
}

// Render returns the styled document. If glamour fails the Markdown source is
// returned unchanged.
func (m *MarkdownRenderer) Render(markdown string) string {
	if m.renderer == nil {
		return markdown
	}

	rendered, err := m.renderer.Render(markdown)
	if err != nil || strings.TrimSpace(rendered) == "" {
		return markdown
	}
	return rendered
}
