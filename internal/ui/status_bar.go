package ui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/voxtui/voxtui/internal/ui/input"
	"github.com/voxtui/voxtui/internal/ui/styles"
)

// statusBarModel renders the footer line: slice readout, cursor value
// readout, loaded data size and transient status messages.
type statusBarModel struct {
	width       int
	version     string
	dataBytes   int
	slice       sliceMsg
	cursor      cursorMsg
	statusText  string
	statusError bool
}

func newStatusBarModel(version string, dataBytes int) *statusBarModel {
	return &statusBarModel{version: version, dataBytes: dataBytes}
}

func (m *statusBarModel) Init() tea.Cmd {
	return nil
}

func (m *statusBarModel) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
	case sliceMsg:
		m.slice = msg
	case cursorMsg:
		m.cursor = msg
	case statusMsg:
		m.statusText = msg.Message
		m.statusError = msg.Err

		return clearErrorAfter(clearMessageTimeout)
	case clearStatusMessageMsg:
		m.statusText = ""
		m.statusError = false
	}

	return nil
}

func (m *statusBarModel) View() string {
	var args []string
	if m.slice.extent > 1 {
		args = append(args, styles.StatusSlice.Render(
			fmt.Sprintf("Slice %d of %d", m.slice.index, m.slice.extent)))
	}
	if m.cursor.ok {
		args = append(args, styles.StatusCursor.Render(
			fmt.Sprintf("(%.1f, %.1f) = %.4g", m.cursor.x, m.cursor.y, m.cursor.value)))
	}
	args = append(args,
		styles.StatusSize.Render(humanize.Bytes(uint64(m.dataBytes))),
		styles.StatusHelp.Render(fmt.Sprintf("%s %s",
			input.Default.Help.Help().Key, input.Default.Help.Help().Desc)),
		m.status(),
		styles.StatusVersion.Render(m.version))

	return lipgloss.NewStyle().Width(m.width).Background(styles.Black).
		Render(lipgloss.JoinHorizontal(lipgloss.Top, args...))
}

func (m *statusBarModel) status() string {
	if m.statusText == "" {
		return ""
	}
	if m.statusError {
		return styles.StatusError.Render(m.statusText)
	}

	return styles.StatusMessage.Render(m.statusText)
}
