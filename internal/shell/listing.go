package shell

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"rpnx/internal/helpdb"
	"rpnx/internal/output"
)

// PrintListing writes the catalog grouped by family. An empty category
// lists every family.
func PrintListing(p *output.Printer, reg *helpdb.Registry, category helpdb.Category) error {
	cats := reg.Categories()
	if category != "" {
		if len(reg.InCategory(category)) == 0 {
			return fmt.Errorf("unknown category %q (known: %s)", category, categoryNames(reg))
		}
		cats = []helpdb.Category{category}
	}

	var lines []string
	for i, c := range cats {
		if i > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, p.Style(output.SemanticHeading, c.Title()))

		recs := reg.InCategory(c)
		width := 0
		for _, rec := range recs {
			width = max(width, lipgloss.Width(rec.Name()))
		}
		for _, rec := range recs {
			name := p.Style(output.SemanticToken, rec.Name())
			pad := strings.Repeat(" ", width-lipgloss.Width(rec.Name()))
			lines = append(lines, "  "+name+pad+"  "+p.Style(output.SemanticMuted, rec.Description()))
		}
	}

	p.Lines(lines)
	return nil
}

// categoryNames returns the comma-separated category keys of reg.
func categoryNames(reg *helpdb.Registry) string {
	cats := reg.Categories()
	names := make([]string, len(cats))
	for i, c := range cats {
		names[i] = string(c)
	}
	return strings.Join(names, ", ")
}
