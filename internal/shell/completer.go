package shell

import (
	"strings"

	"github.com/chzyer/readline"

	"rpnx/internal/helpdb"
	"rpnx/internal/output"
)

// builtinWords are prompt words that are not catalog entries.
var builtinWords = []string{"list", "quit"}

// Completer implements readline.AutoCompleter over registry tokens.
type Completer struct {
	registry *helpdb.Registry
}

var _ readline.AutoCompleter = (*Completer)(nil)

// NewCompleter creates a completer for reg.
func NewCompleter(reg *helpdb.Registry) *Completer {
	return &Completer{registry: reg}
}

// Do implements the readline.AutoCompleter interface.
// Candidates are returned as suffixes of the word under the cursor.
func (c *Completer) Do(line []rune, pos int) (newLine [][]rune, offset int) {
	if pos > len(line) {
		pos = len(line)
	}

	start := findWordStart(line, pos)
	word := string(line[start:pos])

	var suggestions [][]rune
	for _, candidate := range c.Candidates(word, start == 0) {
		suggestions = append(suggestions, []rune(strings.TrimPrefix(candidate, word)))
	}
	return suggestions, len([]rune(word))
}

// Candidates returns every completion of word in sorted order. Prompt
// builtins are offered only for the first word of the line.
func (c *Completer) Candidates(word string, firstWord bool) []string {
	quoted := strings.HasPrefix(word, "'")
	prefix := strings.TrimPrefix(word, "'")

	var out []string
	if firstWord && !quoted {
		for _, w := range builtinWords {
			if strings.HasPrefix(w, prefix) && w != prefix {
				out = append(out, w)
			}
		}
	}
	for _, name := range c.registry.Names() {
		if !strings.HasPrefix(name, prefix) {
			continue
		}
		if quoted {
			out = append(out, "'"+name+"'")
		} else {
			out = append(out, name)
		}
	}
	return out
}

// findWordStart returns the index just past the last space before pos.
func findWordStart(line []rune, pos int) int {
	for i := pos - 1; i >= 0; i-- {
		if line[i] == ' ' || line[i] == '\t' {
			return i + 1
		}
	}
	return 0
}

// TokenHighlighter implements readline.Painter. Words that name a catalog
// entry are drawn in the keyword color.
type TokenHighlighter struct {
	registry *helpdb.Registry
	palette  output.Palette
}

var _ readline.Painter = (*TokenHighlighter)(nil)

// NewTokenHighlighter creates a painter for reg using palette.
func NewTokenHighlighter(reg *helpdb.Registry, palette output.Palette) *TokenHighlighter {
	return &TokenHighlighter{registry: reg, palette: palette}
}

// Paint implements readline.Painter.
func (h *TokenHighlighter) Paint(line []rune, _ int) []rune {
	if h.palette.IsPlain() || len(line) == 0 {
		return line
	}

	var b strings.Builder
	word := make([]rune, 0, len(line))
	flush := func() {
		if len(word) == 0 {
			return
		}
		w := string(word)
		if h.registry.Contains(strings.Trim(w, "'")) {
			b.WriteString(h.palette.KeywordText(w))
		} else {
			b.WriteString(w)
		}
		word = word[:0]
	}

	for _, r := range line {
		if r == ' ' || r == '\t' {
			flush()
			b.WriteRune(r)
			continue
		}
		word = append(word, r)
	}
	flush()

	return []rune(b.String())
}
