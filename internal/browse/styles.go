package browse

import "github.com/charmbracelet/lipgloss"

// Colors follow the help palette: yellow tokens, cyan details.
var (
	ColorToken  = lipgloss.Color("3")
	ColorValue  = lipgloss.Color("6")
	ColorMuted  = lipgloss.Color("245")
	ColorBorder = lipgloss.Color("240")
	ColorFocus  = lipgloss.Color("11")
)

var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorToken).
			Padding(0, 1)

	PanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1)

	FocusedPanelStyle = PanelStyle.
				BorderForeground(ColorFocus)

	CategoryStyle = lipgloss.NewStyle().
			Foreground(ColorValue).
			Italic(true)

	HelpStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)
)
