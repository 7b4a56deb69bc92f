package ui

import (
	"image"
	"log/slog"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
	"github.com/voxtui/voxtui/internal/ui/input"
	"github.com/voxtui/voxtui/internal/ui/styles"
	"github.com/voxtui/voxtui/internal/view"
)

type contentView int

const (
	viewMain contentView = iota
	viewHelp
)

const footerHeight = 1

// rootModel is the canvas-level model: it owns the engine session, turns
// raw terminal input into normalized engine events, and fans messages out
// to the pane models.
type rootModel struct {
	session *view.Session
	panes   []*paneModel

	statusModel *statusBarModel
	helpModel   *helpModel

	currentView contentView
	focused     int
	width       int
	height      int

	// Modifier state last pushed into the key tracker. Terminals have no
	// key-up events; held modifiers arrive as flags on each mouse event.
	shiftHeld bool
	altHeld   bool
	ctrlHeld  bool
}

func newRootModel(session *view.Session, panes []*paneModel, status *statusBarModel, help *helpModel) *rootModel {
	return &rootModel{
		session:     session,
		panes:       panes,
		statusModel: status,
		helpModel:   help,
	}
}

func (m *rootModel) Init() tea.Cmd {
	cmds := []tea.Cmd{tea.SetWindowTitle("voxtui")}
	for _, pane := range m.panes {
		cmds = append(cmds, pane.Init())
	}
	if len(m.panes) > 0 {
		cmds = append(cmds, setFocus(m.panes[0].id))
	}

	return tea.Batch(cmds...)
}

func (m *rootModel) Update(inMsg tea.Msg) (tea.Model, tea.Cmd) {
	logMsg(inMsg)

	switch msg := inMsg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		return m.propagate(inMsg, m.paneSizeMsg())
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, input.Default.Quit):
			return m, tea.Quit
		case key.Matches(msg, input.Default.Help):
			if m.currentView == viewHelp {
				m.currentView = viewMain
			} else {
				m.currentView = viewHelp
			}

			return m, nil
		case key.Matches(msg, input.Default.NextPane):
			if len(m.panes) > 0 {
				m.focused = (m.focused + 1) % len(m.panes)

				return m, setFocus(m.panes[m.focused].id)
			}
		}
	case tea.MouseMsg:
		m.syncModifiers(msg)
		if isWheel(msg) {
			m.session.Dispatch(view.Event{
				Kind:  view.KindWheel,
				Wheel: wheelDir(msg),
				Pos:   image.Pt(msg.X, msg.Y),
			})
		}
	case focusMsg:
		for i, pane := range m.panes {
			if pane.id == msg.paneID {
				m.focused = i
			}
		}
	}

	return m.propagate(inMsg)
}

// syncModifiers keeps the engine's key tracker aligned with the modifier
// flags carried on mouse events.
func (m *rootModel) syncModifiers(msg tea.MouseMsg) {
	sync := func(held *bool, now bool, name string) {
		if now == *held {
			return
		}
		kind := view.KindKeyUp
		if now {
			kind = view.KindKeyDown
		}
		m.session.Dispatch(view.Event{Kind: kind, Key: name})
		*held = now
	}

	sync(&m.shiftHeld, msg.Shift, view.KeyShift)
	sync(&m.altHeld, msg.Alt, view.KeyAlt)
	sync(&m.ctrlHeld, msg.Ctrl, view.KeyCtrl)
}

func (m *rootModel) paneSizeMsg() viewPortSizeMsg {
	count := max(len(m.panes), 1)

	return viewPortSizeMsg{
		width:  m.width / count,
		height: m.height - footerHeight - 1, // footer plus pane title line
	}
}

func (m *rootModel) propagate(msgs ...tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	for _, msg := range msgs {
		for _, pane := range m.panes {
			cmds = append(cmds, pane.Update(msg))
		}
		cmds = append(cmds, m.statusModel.Update(msg))
		cmds = append(cmds, m.helpModel.Update(msg))
	}

	return m, tea.Batch(cmds...)
}

func (m *rootModel) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	footer := styles.FooterContainerStyle.Width(m.width).Render(m.statusModel.View())

	var content string
	switch m.currentView {
	case viewHelp:
		content = m.helpModel.View()
	case viewMain:
		var rendered []string
		for _, pane := range m.panes {
			rendered = append(rendered, pane.View())
		}
		content = lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
	}

	body := lipgloss.NewStyle().Height(m.height - footerHeight).Render(content)

	return zone.Scan(lipgloss.JoinVertical(lipgloss.Left, body, footer))
}

func isWheel(msg tea.MouseMsg) bool {
	return msg.Button == tea.MouseButtonWheelUp || msg.Button == tea.MouseButtonWheelDown
}

func wheelDir(msg tea.MouseMsg) view.WheelDir {
	if msg.Button == tea.MouseButtonWheelUp {
		return view.WheelUp
	}

	return view.WheelDown
}

// logMsg is useful for debugging events. Tail the log file under the
// config dir.
func logMsg(inMsg tea.Msg) {
	switch inMsg.(type) {
	case tea.MouseMsg: // far too noisy
	case cursorMsg:
	default:
		slog.Debug("tea.Msg", slog.Any("msg", inMsg))
	}
}
