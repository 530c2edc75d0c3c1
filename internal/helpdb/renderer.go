package helpdb

import (
	"fmt"
	"io"
	"os"
	"strings"

	"rpnx/internal/output"
)

// Renderer formats help records as terminal text.
// It holds no state besides its palette and may be shared freely.
type Renderer struct {
	palette output.Palette
}

// NewRenderer creates a renderer using the given palette.
func NewRenderer(palette output.Palette) *Renderer {
	return &Renderer{palette: palette}
}

// Format returns the help block for rec:
//
//	<name>: <description>
//	syntax: <syntax>
//	  <arg>: <arg description>
//	example: <example>
//	<blank line>
//
// The example line is omitted when it would repeat the syntax line.
func (r *Renderer) Format(rec Record) string {
	p := r.palette
	var b strings.Builder

	fmt.Fprintf(&b, "%s: %s\n", p.KeywordText(rec.name), rec.description)
	fmt.Fprintf(&b, "%s %s\n", p.TitleText("syntax:"), rec.syntax)
	for _, arg := range rec.args {
		fmt.Fprintf(&b, "  %s: %s\n", p.ValueText(arg.Name), arg.Description)
	}
	if rec.HasDistinctExample() {
		fmt.Fprintf(&b, "%s %s\n", p.TitleText("example:"), rec.example)
	}
	b.WriteString("\n")

	return b.String()
}

// Render writes the help block for rec to w with a single Write call.
func (r *Renderer) Render(w io.Writer, rec Record) error {
	if _, err := io.WriteString(w, r.Format(rec)); err != nil {
		return fmt.Errorf("failed to write help for %s: %w", rec.name, err)
	}
	return nil
}

// RenderStdout writes the help block for rec to standard output.
func (r *Renderer) RenderStdout(rec Record) error {
	return r.Render(os.Stdout, rec)
}
