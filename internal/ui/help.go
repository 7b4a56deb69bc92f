package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
	"github.com/voxtui/voxtui/internal/ui/input"
	"github.com/voxtui/voxtui/internal/ui/styles"
)

const helpIntro = "voxtui displays 2D images and slices of 3D/4D volumes in linked panes. " +
	"Panes declared as a share group keep their slice index and zoom window in sync: " +
	"moving one slider or scrolling one pane drives all of them."

type helpModel struct {
	width   int
	version string
}

func newHelpModel(version string) *helpModel {
	return &helpModel{version: version}
}

func (m *helpModel) Init() tea.Cmd {
	return nil
}

func (m *helpModel) Update(msg tea.Msg) tea.Cmd {
	if size, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = size.Width
	}

	return nil
}

func (m *helpModel) View() string {
	width := clamp(m.width-4, 20, 80)

	var b strings.Builder
	b.WriteString(styles.HelpTitle.Render("voxtui " + m.version))
	b.WriteByte('\n')
	b.WriteString(wordwrap.String(helpIntro, width))
	b.WriteByte('\n')

	b.WriteString(styles.HelpSection.Render("Mouse"))
	b.WriteByte('\n')
	for _, row := range [][2]string{
		{"wheel", "Zoom in/out at the cursor"},
		{"shift+wheel", "Previous/next volume slice"},
		{"wheel on bar", "Shift vmin (lower half) or vmax (upper half)"},
		{"drag slider", "Select volume slice"},
		{"click pane", "Focus pane"},
	} {
		b.WriteString(styles.HelpKey.Render(row[0]) + styles.HelpDesc.Render(row[1]))
		b.WriteByte('\n')
	}

	b.WriteString(styles.HelpSection.Render("Keys"))
	b.WriteByte('\n')
	for _, binding := range []key.Binding{
		input.Default.NextSlice,
		input.Default.PrevSlice,
		input.Default.NextPane,
		input.Default.ResetView,
		input.Default.Help,
		input.Default.Quit,
	} {
		b.WriteString(styles.HelpKey.Render(binding.Help().Key) + styles.HelpDesc.Render(binding.Help().Desc))
		b.WriteByte('\n')
	}

	return lipgloss.NewStyle().Padding(1, 2).Render(b.String())
}
