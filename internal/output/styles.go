package output

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// PlainTextStyle implements TextStyle without any terminal attributes.
type PlainTextStyle struct {
	prefix string // Optional prefix carrying the semantic meaning
}

// NewPlainTextStyle creates a plain style with an optional prefix.
func NewPlainTextStyle(prefix string) *PlainTextStyle {
	return &PlainTextStyle{prefix: prefix}
}

// Render joins strs with spaces and prepends the prefix.
func (p *PlainTextStyle) Render(strs ...string) string {
	return p.prefix + strings.Join(strs, " ")
}

// PlainStyleProvider implements StyleProvider for plain text output.
// It is used when colors are disabled or the destination is not a terminal.
type PlainStyleProvider struct{}

// NewPlainStyleProvider creates a new plain style provider.
func NewPlainStyleProvider() *PlainStyleProvider {
	return &PlainStyleProvider{}
}

// GetStyle returns prefix-only styles for the semantic types that need one.
func (p *PlainStyleProvider) GetStyle(semantic SemanticType) TextStyle {
	switch semantic {
	case SemanticWarning:
		return NewPlainTextStyle("warning: ")
	case SemanticError:
		return NewPlainTextStyle("error: ")
	default:
		return NewPlainTextStyle("")
	}
}

// IsAvailable implements StyleProvider.
func (p *PlainStyleProvider) IsAvailable() bool {
	return true
}

// String returns a string representation for debugging.
func (p *PlainStyleProvider) String() string {
	return "PlainStyleProvider{}"
}

// ThemeStyleProvider renders semantic output with lipgloss styles.
type ThemeStyleProvider struct {
	styles map[SemanticType]lipgloss.Style
}

// NewThemeStyleProvider returns the default rpnx terminal theme. The colors
// follow the help palette: tokens in yellow, headings bold, details in cyan.
func NewThemeStyleProvider() *ThemeStyleProvider {
	return &ThemeStyleProvider{
		styles: map[SemanticType]lipgloss.Style{
			SemanticPlain:   lipgloss.NewStyle(),
			SemanticInfo:    lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
			SemanticWarning: lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
			SemanticError:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196")),
			SemanticHeading: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15")).Underline(true),
			SemanticToken:   lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
			SemanticMuted:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		},
	}
}

// GetStyle implements StyleProvider.
func (t *ThemeStyleProvider) GetStyle(semantic SemanticType) TextStyle {
	if style, ok := t.styles[semantic]; ok {
		return style
	}
	return t.styles[SemanticPlain]
}

// IsAvailable implements StyleProvider.
func (t *ThemeStyleProvider) IsAvailable() bool {
	return true
}

// String returns a string representation for debugging.
func (t *ThemeStyleProvider) String() string {
	return fmt.Sprintf("ThemeStyleProvider{styles: %d}", len(t.styles))
}
