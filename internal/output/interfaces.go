// Package output provides the console output layer for rpnx front-ends.
// It owns the fixed help palette, color-mode resolution, and a serialized
// printer so that concurrent writers never interleave a block of text.
package output

import (
	"fmt"
	"strings"
)

// StyleProvider supplies styled renderers for semantic output types.
// The printer depends only on this interface, not on a concrete theme.
type StyleProvider interface {
	// GetStyle returns a TextStyle for the given semantic type.
	GetStyle(semantic SemanticType) TextStyle

	// IsAvailable returns true if the provider is ready to render styles.
	IsAvailable() bool
}

// TextStyle renders text with styling applied.
// lipgloss.Style satisfies this interface.
type TextStyle interface {
	Render(strs ...string) string
}

// SemanticType defines the meaning of a piece of output for consistent styling.
type SemanticType string

const (
	// SemanticPlain represents text without any semantic meaning.
	SemanticPlain SemanticType = "plain"
	// SemanticInfo represents informational text.
	SemanticInfo SemanticType = "info"
	// SemanticWarning represents warning text.
	SemanticWarning SemanticType = "warning"
	// SemanticError represents error text.
	SemanticError SemanticType = "error"
	// SemanticHeading represents section headings such as category titles.
	SemanticHeading SemanticType = "heading"
	// SemanticToken represents a command token.
	SemanticToken SemanticType = "token"
	// SemanticMuted represents secondary text such as summaries in listings.
	SemanticMuted SemanticType = "muted"
)

// ColorMode selects whether ANSI attributes are emitted.
type ColorMode int

const (
	// ColorAuto emits attributes only when the destination is a color terminal.
	ColorAuto ColorMode = iota
	// ColorAlways always emits attributes.
	ColorAlways
	// ColorNever never emits attributes.
	ColorNever
)

// String returns the flag spelling of the mode.
func (m ColorMode) String() string {
	switch m {
	case ColorAlways:
		return "always"
	case ColorNever:
		return "never"
	default:
		return "auto"
	}
}

// ParseColorMode parses "auto", "always" or "never" (case-insensitive).
// The empty string is treated as auto.
func ParseColorMode(s string) (ColorMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return ColorAuto, nil
	case "always", "on", "yes":
		return ColorAlways, nil
	case "never", "off", "no":
		return ColorNever, nil
	default:
		return ColorAuto, fmt.Errorf("invalid color mode %q (expected auto, always or never)", s)
	}
}
