package input

import "github.com/charmbracelet/bubbles/key"

type Map struct {
	Quit      key.Binding
	Help      key.Binding
	NextPane  key.Binding
	PrevSlice key.Binding
	NextSlice key.Binding
	ResetView key.Binding
}

var Default = Map{
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "Quit")),
	Help: key.NewBinding(
		key.WithKeys("?", "h"),
		key.WithHelp("?", "Help")),
	NextPane: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "Next pane")),
	PrevSlice: key.NewBinding(
		key.WithKeys("left", "["),
		key.WithHelp("←", "Previous slice")),
	NextSlice: key.NewBinding(
		key.WithKeys("right", "]"),
		key.WithHelp("→", "Next slice")),
	ResetView: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "Reset zoom and color range")),
}
