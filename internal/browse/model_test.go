package browse

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rpnx/internal/helpdb"
	"rpnx/internal/output"
)

func newSizedModel(t *testing.T, opts Options) Model {
	t.Helper()
	m, err := New(helpdb.NewBuiltin(), output.PlainPalette(), opts)
	require.NoError(t, err)

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return updated.(Model)
}

func TestNew_UnknownCategory(t *testing.T) {
	_, err := New(helpdb.NewBuiltin(), output.PlainPalette(), Options{Category: "nonsense"})
	assert.Error(t, err)
}

func TestView_BeforeSize(t *testing.T) {
	m, err := New(helpdb.NewBuiltin(), output.PlainPalette(), Options{})
	require.NoError(t, err)
	assert.Equal(t, "Loading...", m.View())
}

func TestSelected_FirstRecordByDefault(t *testing.T) {
	reg := helpdb.NewBuiltin()
	m := newSizedModel(t, Options{})

	rec, ok := m.Selected()
	require.True(t, ok)
	assert.Equal(t, reg.All()[0].Name(), rec.Name())
}

func TestSelected_PreselectedToken(t *testing.T) {
	m := newSizedModel(t, Options{Token: "sqrt"})

	rec, ok := m.Selected()
	require.True(t, ok)
	assert.Equal(t, "sqrt", rec.Name())
	assert.Contains(t, m.View(), "example: 9 sqrt")
}

func TestUpdate_CursorMovesSelection(t *testing.T) {
	reg := helpdb.NewBuiltin()
	recs := reg.InCategory(helpdb.CategoryTrigonometry)
	m := newSizedModel(t, Options{Category: helpdb.CategoryTrigonometry})

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = updated.(Model)

	rec, ok := m.Selected()
	require.True(t, ok)
	assert.Equal(t, recs[1].Name(), rec.Name())
	assert.Contains(t, m.View(), recs[1].Description())
}

func TestUpdate_Quit(t *testing.T) {
	m := newSizedModel(t, Options{})

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
}

func TestUpdate_TabSwitchesFocus(t *testing.T) {
	m := newSizedModel(t, Options{Token: "pi"})

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = updated.(Model)
	assert.True(t, m.focusDetail)

	// Cursor keys scroll the detail pane instead of moving the selection.
	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = updated.(Model)
	rec, _ := m.Selected()
	assert.Equal(t, "pi", rec.Name())
}
