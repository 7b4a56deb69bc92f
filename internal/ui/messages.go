package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

const clearMessageTimeout = time.Second * 5

type statusMsg struct {
	Message string
	Err     bool
}

func setStatusMessage(msg string, err bool) tea.Cmd {
	return func() tea.Msg {
		return statusMsg{Message: msg, Err: err}
	}
}

type clearStatusMessageMsg struct{}

func clearErrorAfter(t time.Duration) tea.Cmd {
	return tea.Tick(t, func(_ time.Time) tea.Msg {
		return clearStatusMessageMsg{}
	})
}

// sliceMsg reports the currently displayed slice of the focused pane for
// the status bar readout.
type sliceMsg struct {
	index  int
	extent int
}

func setSliceReadout(index int, extent int) tea.Cmd {
	return func() tea.Msg {
		return sliceMsg{index: index, extent: extent}
	}
}

// cursorMsg reports the data-space position and value under the cursor.
type cursorMsg struct {
	x     float64
	y     float64
	value float64
	ok    bool
}

// focusMsg selects which pane has keyboard focus.
type focusMsg struct {
	paneID string
}

func setFocus(paneID string) tea.Cmd {
	return func() tea.Msg {
		return focusMsg{paneID: paneID}
	}
}

// viewPortSizeMsg carries the content area assigned to the pane row.
type viewPortSizeMsg struct {
	width  int
	height int
}
