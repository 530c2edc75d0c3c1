package shell

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"rpnx/internal/helpdb"
	"rpnx/internal/output"
	"rpnx/internal/testutils"
)

func TestCompleter_Candidates(t *testing.T) {
	c := NewCompleter(helpdb.NewBuiltin())

	got := c.Candidates("sq", true)
	assert.Contains(t, got, "sqrt")
	for _, s := range got {
		assert.Regexp(t, "^sq", s)
	}

	assert.Contains(t, c.Candidates("li", true), "list")
	assert.NotContains(t, c.Candidates("li", false), "list", "builtins only complete the first word")

	assert.Contains(t, c.Candidates("'sq", true), "'sqrt'")
	assert.Empty(t, c.Candidates("zzzz", true))
}

func TestCompleter_Do(t *testing.T) {
	c := NewCompleter(helpdb.NewBuiltin())

	line := []rune("pi sqr")
	suggestions, offset := c.Do(line, len(line))

	assert.Equal(t, 3, offset)
	assert.Contains(t, suggestions, []rune("t"))

	// Cursor past the end is clamped.
	_, offset = c.Do(line, len(line)+5)
	assert.Equal(t, 3, offset)
}

func TestTokenHighlighter_Paint(t *testing.T) {
	reg := helpdb.NewBuiltin()

	h := NewTokenHighlighter(reg, output.ANSIPalette())
	got := string(h.Paint([]rune("'sqrt' help bogus"), 0))
	assert.Equal(t, "\x1b[33m'sqrt'\x1b[0m \x1b[33mhelp\x1b[0m bogus", got)
	assert.Equal(t, "'sqrt' help bogus", testutils.StripANSI(got))

	plain := NewTokenHighlighter(reg, output.PlainPalette())
	assert.Equal(t, "sqrt 2", string(plain.Paint([]rune("sqrt 2"), 0)))
}

func TestSuggest(t *testing.T) {
	reg := helpdb.NewBuiltin()

	got := Suggest(reg, "sqt", 3)
	assert.Contains(t, got, "sqrt")
	assert.LessOrEqual(t, len(got), 3)

	assert.NotContains(t, Suggest(reg, "sqrt", 5), "sqrt", "exact match is not a suggestion")
	assert.Nil(t, Suggest(reg, "", 3))
	assert.Nil(t, Suggest(reg, "sqrt", 0))
}
