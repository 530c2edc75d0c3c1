// Package browse implements the full-screen catalog browser: a filterable
// list of command tokens beside the rendered help for the selected one.
package browse

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"rpnx/internal/helpdb"
	"rpnx/internal/output"
)

const listWidth = 32

// recordItem implements list.Item for a help record.
type recordItem struct {
	rec helpdb.Record
}

func (i recordItem) Title() string       { return i.rec.Name() }
func (i recordItem) Description() string { return i.rec.Description() }
func (i recordItem) FilterValue() string { return i.rec.Name() + " " + string(i.rec.Category()) }

// Options selects what the browser shows at start.
type Options struct {
	Category helpdb.Category // Restrict the list to one family
	Token    string          // Preselect this token
}

// Model is the bubbletea model of the browser.
type Model struct {
	width  int
	height int
	ready  bool

	list     list.Model
	detail   viewport.Model
	renderer *helpdb.Renderer

	focusDetail bool
	current     string
}

// New creates a browser over reg. Help text is rendered with palette.
func New(reg *helpdb.Registry, palette output.Palette, opts Options) (Model, error) {
	recs := reg.All()
	if opts.Category != "" {
		recs = reg.InCategory(opts.Category)
		if len(recs) == 0 {
			return Model{}, fmt.Errorf("unknown category %q", opts.Category)
		}
	}

	items := make([]list.Item, len(recs))
	selected := 0
	for i, rec := range recs {
		items[i] = recordItem{rec: rec}
		if rec.Name() == opts.Token {
			selected = i
		}
	}

	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.Foreground(ColorToken).BorderForeground(ColorToken)

	l := list.New(items, delegate, 0, 0)
	l.Title = "rpnx commands"
	l.Styles.Title = TitleStyle
	l.SetShowHelp(false)
	l.SetFilteringEnabled(true)
	l.Select(selected)

	return Model{
		list:     l,
		renderer: helpdb.NewRenderer(palette),
	}, nil
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		bodyHeight := max(msg.Height-4, 1) // Panel borders + help bar
		detailWidth := max(msg.Width-listWidth-8, 10)

		m.list.SetSize(listWidth, bodyHeight)
		if !m.ready {
			m.detail = viewport.New(detailWidth, bodyHeight)
			m.ready = true
		} else {
			m.detail.Width = detailWidth
			m.detail.Height = bodyHeight
		}
		m.refreshDetail(true)
		return m, nil

	case tea.KeyMsg:
		if m.list.FilterState() != list.Filtering {
			switch msg.String() {
			case "ctrl+c", "q":
				return m, tea.Quit
			case "tab":
				m.focusDetail = !m.focusDetail
				return m, nil
			}
		} else if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

		if m.focusDetail {
			m.detail, cmd = m.detail.Update(msg)
			return m, cmd
		}
	}

	m.list, cmd = m.list.Update(msg)
	cmds = append(cmds, cmd)
	m.refreshDetail(false)

	return m, tea.Batch(cmds...)
}

// Selected returns the record under the cursor.
func (m Model) Selected() (helpdb.Record, bool) {
	item, ok := m.list.SelectedItem().(recordItem)
	if !ok {
		return helpdb.Record{}, false
	}
	return item.rec, true
}

// refreshDetail re-renders the detail pane when the selection changed.
func (m *Model) refreshDetail(force bool) {
	if !m.ready {
		return
	}
	rec, ok := m.Selected()
	if !ok {
		m.current = ""
		m.detail.SetContent(HelpStyle.Render("No matching command"))
		return
	}
	if rec.Name() == m.current && !force {
		return
	}

	m.current = rec.Name()
	body := m.renderer.Format(rec)
	body += CategoryStyle.Render(rec.Category().Title())
	m.detail.SetContent(lipgloss.NewStyle().Width(m.detail.Width).Render(body))
	m.detail.GotoTop()
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	listPanel, detailPanel := FocusedPanelStyle, PanelStyle
	if m.focusDetail {
		listPanel, detailPanel = PanelStyle, FocusedPanelStyle
	}

	body := lipgloss.JoinHorizontal(lipgloss.Top,
		listPanel.Render(m.list.View()),
		detailPanel.Render(m.detail.View()),
	)

	help := HelpStyle.Render(strings.Join([]string{
		"↑/↓ select", "/ filter", "tab switch pane", "q quit",
	}, " • "))

	return body + "\n" + help
}

// Run starts the browser on the alternate screen and blocks until it exits.
func Run(reg *helpdb.Registry, palette output.Palette, opts Options) error {
	m, err := New(reg, palette, opts)
	if err != nil {
		return err
	}
	_, err = tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}
