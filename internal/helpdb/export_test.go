package helpdb

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/BurntSushi/toml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"json", FormatJSON, false},
		{"YAML", FormatYAML, false},
		{"yml", FormatYAML, false},
		{"toml", FormatTOML, false},
		{"md", FormatMarkdown, false},
		{" markdown ", FormatMarkdown, false},
		{"xml", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExport_Decodes(t *testing.T) {
	reg := NewBuiltin()

	decoders := map[Format]func([]byte, *Document) error{
		FormatJSON: func(b []byte, d *Document) error { return json.Unmarshal(b, d) },
		FormatYAML: func(b []byte, d *Document) error { return yaml.Unmarshal(b, d) },
		FormatTOML: func(b []byte, d *Document) error { _, err := toml.Decode(string(b), d); return err },
	}

	for format, decode := range decoders {
		t.Run(string(format), func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, reg.Export(&buf, format))

			var doc Document
			require.NoError(t, decode(buf.Bytes(), &doc))
			require.Len(t, doc.Commands, reg.Len())
			assert.Equal(t, reg.Document(), doc)
		})
	}
}

func TestDocument_Order(t *testing.T) {
	doc := NewBuiltin().Document()

	require.NotEmpty(t, doc.Commands)
	assert.Equal(t, "+", doc.Commands[0].Name)
	assert.Equal(t, CategoryArithmetic, doc.Commands[0].Category)
	assert.Equal(t, "ticks", doc.Commands[len(doc.Commands)-1].Name)
}

func TestExport_Markdown(t *testing.T) {
	reg := NewBuiltin()

	var buf bytes.Buffer
	require.NoError(t, reg.Export(&buf, FormatMarkdown))
	md := buf.String()

	assert.True(t, strings.HasPrefix(md, "# rpnx command reference\n"))
	for _, c := range reg.Categories() {
		assert.Contains(t, md, "\n## "+c.Title()+"\n")
	}
	assert.Equal(t, reg.Len(), strings.Count(md, "\n### "))
}

func TestRecordMarkdown(t *testing.T) {
	got := RecordMarkdown(mustLookup(t, "sqrt"))
	assert.Equal(t,
		"### `sqrt`\n\nCompute square root\n\n"+
			"**Syntax:** `x sqrt`\n\n"+
			"- `x`: number or complex\n\n"+
			"**Example:** `9 sqrt`\n", got)

	got = RecordMarkdown(mustLookup(t, "pi"))
	assert.Equal(t, "### `pi`\n\nPush the constant pi\n\n**Syntax:** `pi`\n", got)
}

func TestExport_UnknownFormat(t *testing.T) {
	err := NewBuiltin().Export(&bytes.Buffer{}, Format("xml"))
	require.Error(t, err)
}
