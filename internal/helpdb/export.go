package helpdb

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Format names an export encoding.
type Format string

// Supported export formats.
const (
	FormatJSON     Format = "json"
	FormatYAML     Format = "yaml"
	FormatTOML     Format = "toml"
	FormatMarkdown Format = "markdown"
)

// Formats lists the supported export formats.
var Formats = []Format{FormatJSON, FormatYAML, FormatTOML, FormatMarkdown}

// ParseFormat parses an export format name. "md" and "yml" are accepted.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "toml":
		return FormatTOML, nil
	case "markdown", "md":
		return FormatMarkdown, nil
	default:
		return "", fmt.Errorf("unsupported export format %q", s)
	}
}

// Document is the serialized form of a whole catalog.
type Document struct {
	Commands []Info `json:"commands" yaml:"commands" toml:"command"`
}

// Document returns the catalog as a detached, serializable value in
// declaration order.
func (r *Registry) Document() Document {
	all := r.All()
	doc := Document{Commands: make([]Info, 0, len(all))}
	for _, rec := range all {
		doc.Commands = append(doc.Commands, rec.Info())
	}
	return doc
}

// Export writes the catalog to w in the requested format.
func (r *Registry) Export(w io.Writer, format Format) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(r.Document()); err != nil {
			return fmt.Errorf("failed to encode json: %w", err)
		}
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r.Document()); err != nil {
			return fmt.Errorf("failed to encode yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("failed to flush yaml: %w", err)
		}
	case FormatTOML:
		if err := toml.NewEncoder(w).Encode(r.Document()); err != nil {
			return fmt.Errorf("failed to encode toml: %w", err)
		}
	case FormatMarkdown:
		if _, err := io.WriteString(w, r.Markdown()); err != nil {
			return fmt.Errorf("failed to write markdown: %w", err)
		}
	default:
		return fmt.Errorf("unsupported export format %q", format)
	}
	return nil
}

// Markdown returns the catalog as a Markdown reference document.
func (r *Registry) Markdown() string {
	var b strings.Builder
	b.WriteString("# rpnx command reference\n")
	for _, c := range r.categories {
		fmt.Fprintf(&b, "\n## %s\n", c.Title())
		for _, rec := range r.InCategory(c) {
			b.WriteString("\n")
			b.WriteString(RecordMarkdown(rec))
		}
	}
	return b.String()
}

// RecordMarkdown returns the Markdown section for a single record.
func RecordMarkdown(rec Record) string {
	var b strings.Builder
	fmt.Fprintf(&b, "### `%s`\n\n%s\n\n", rec.name, rec.description)
	fmt.Fprintf(&b, "**Syntax:** `%s`\n", rec.syntax)
	if len(rec.args) > 0 {
		b.WriteString("\n")
		for _, arg := range rec.args {
			fmt.Fprintf(&b, "- `%s`: %s\n", arg.Name, arg.Description)
		}
	}
	if rec.HasDistinctExample() {
		fmt.Fprintf(&b, "\n**Example:** `%s`\n", rec.example)
	}
	return b.String()
}
