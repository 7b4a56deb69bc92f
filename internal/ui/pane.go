package ui

import (
	"image"
	"math"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
	"github.com/voxtui/voxtui/internal/ui/input"
	"github.com/voxtui/voxtui/internal/ui/styles"
	"github.com/voxtui/voxtui/internal/view"
	"github.com/voxtui/voxtui/internal/vol"
)

// paneModel is one display region on the canvas. It implements view.Region
// for the engine and owns the pane's slider and colorbar widgets.
type paneModel struct {
	id      string
	title   string
	session *view.Session
	state   *view.State
	manager *view.VolumeManager // nil for plain image panes
	ramp    styles.Ramp

	slider   *sliderModel   // nil when constructed without a slider
	colorbar *colorbarModel // nil when constructed without a colorbar

	width   int
	height  int
	focused bool

	cache string
	dirty bool

	limits view.Rect
}

type paneOptions struct {
	showSlider   bool
	showColorbar bool
}

// newVolumePane constructs a pane over a volume and registers it with the
// canvas session.
func newVolumePane(session *view.Session, title string, volume *vol.Volume, ramp styles.Ramp, opts paneOptions) *paneModel {
	pane := &paneModel{
		id:      zone.NewPrefix(),
		title:   title,
		session: session,
		ramp:    ramp,
		dirty:   true,
		limits:  view.Rect{Max: view.Point{X: float64(volume.Width()), Y: float64(volume.Height())}},
	}

	pane.state = view.NewVolumeState(pane, volume)
	if opts.showSlider {
		pane.slider = newSliderModel(volume.Extent() - 1)
		pane.state.Slider = pane.slider
	}
	if opts.showColorbar {
		pane.colorbar = newColorbarModel(ramp, pane.state.ColorRange)
		pane.state.Colorbar = pane.colorbar
	}
	pane.manager = session.AttachVolumeView(pane.state)

	return pane
}

// newImagePane constructs a pane over a single 2D image.
func newImagePane(session *view.Session, title string, img *vol.Image, ramp styles.Ramp, opts paneOptions) *paneModel {
	pane := &paneModel{
		id:      zone.NewPrefix(),
		title:   title,
		session: session,
		ramp:    ramp,
		dirty:   true,
		limits:  view.Rect{Max: view.Point{X: float64(img.Width()), Y: float64(img.Height())}},
	}

	pane.state = view.NewImageState(pane, img)
	if opts.showColorbar {
		pane.colorbar = newColorbarModel(ramp, pane.state.ColorRange)
		pane.state.Colorbar = pane.colorbar
	}
	session.AttachImageView(pane.state)

	return pane
}

// view.Region implementation.

func (p *paneModel) ID() string { return p.id }

func (p *paneModel) Bounds() image.Rectangle {
	info := zone.Get(p.id)
	if info.IsZero() {
		return image.Rectangle{}
	}

	return image.Rect(info.StartX, info.StartY, info.EndX+1, info.EndY+1)
}

func (p *paneModel) Limits() view.Rect { return p.limits }

func (p *paneModel) SetLimits(limits view.Rect) {
	p.limits = limits
}

func (p *paneModel) DataCoords(pos image.Point) (view.Point, bool) {
	bounds := p.Bounds()
	if bounds.Empty() || !pos.In(bounds) {
		return view.Point{}, false
	}

	return view.Point{
		X: p.limits.Min.X + (float64(pos.X-bounds.Min.X)+0.5)/float64(bounds.Dx())*p.limits.Dx(),
		Y: p.limits.Min.Y + (float64(pos.Y-bounds.Min.Y)+0.5)/float64(bounds.Dy())*p.limits.Dy(),
	}, true
}

func (p *paneModel) RequestRedraw() {
	p.dirty = true
}

// tea model surface. Panes are pointer models: the engine mutates their
// state between updates.

func (p *paneModel) Init() tea.Cmd {
	return nil
}

func (p *paneModel) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case viewPortSizeMsg:
		p.width = msg.width
		p.height = msg.height
		p.dirty = true
	case focusMsg:
		p.focused = msg.paneID == p.id
	case tea.MouseMsg:
		return p.updateMouse(msg)
	case tea.KeyMsg:
		return p.updateKeys(msg)
	}

	return nil
}

func (p *paneModel) updateMouse(msg tea.MouseMsg) tea.Cmd {
	var cmds []tea.Cmd
	if p.slider != nil {
		cmds = append(cmds, p.slider.Update(msg))
	}

	pos := image.Pt(msg.X, msg.Y)
	switch {
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft && zone.Get(p.id).InBounds(msg):
		cmds = append(cmds, setFocus(p.id))
	case isWheel(msg) && p.containsEvent(msg):
		// The session already handled the wheel by the time panes see the
		// message; report the resulting state.
		cmds = append(cmds, p.readoutCmd())
	case msg.Action == tea.MouseActionMotion:
		if coords, ok := p.DataCoords(pos); ok {
			cmds = append(cmds, p.cursorCmd(coords))
		}
	}

	return tea.Batch(cmds...)
}

func (p *paneModel) updateKeys(msg tea.KeyMsg) tea.Cmd {
	if !p.focused {
		return nil
	}

	switch {
	case key.Matches(msg, input.Default.NextSlice):
		if p.manager != nil {
			p.manager.StepSlice(view.WheelUp)

			return p.readoutCmd()
		}
	case key.Matches(msg, input.Default.PrevSlice):
		if p.manager != nil {
			p.manager.StepSlice(view.WheelDown)

			return p.readoutCmd()
		}
	case key.Matches(msg, input.Default.ResetView):
		p.resetView()

		return p.readoutCmd()
	}

	return nil
}

// resetView restores the full data window and the default color range.
func (p *paneModel) resetView() {
	var lo, hi float64
	var width, height int
	if p.state.Volume != nil {
		lo, hi = p.state.Volume.MinMax()
		width, height = p.state.Volume.Width(), p.state.Volume.Height()
	} else {
		lo, hi = p.state.Image.MinMax()
		width, height = p.state.Image.Width(), p.state.Image.Height()
	}

	p.state.ColorRange = view.Range{Min: lo, Max: hi}
	if p.colorbar != nil {
		p.colorbar.SetRange(p.state.ColorRange)
	}
	p.SetLimits(view.Rect{Max: view.Point{X: float64(width), Y: float64(height)}})
	p.RequestRedraw()
}

func (p *paneModel) containsEvent(msg tea.MouseMsg) bool {
	pos := image.Pt(msg.X, msg.Y)
	if pos.In(p.Bounds()) {
		return true
	}

	return p.colorbar != nil && pos.In(p.colorbar.Bounds())
}

func (p *paneModel) readoutCmd() tea.Cmd {
	return setSliceReadout(p.state.SliceIndex, p.state.Extent())
}

func (p *paneModel) cursorCmd(coords view.Point) tea.Cmd {
	value := p.state.Displayed.At(int(math.Floor(coords.X)), int(math.Floor(coords.Y)))

	return func() tea.Msg {
		return cursorMsg{x: coords.X, y: coords.Y, value: value, ok: !math.IsNaN(value)}
	}
}

// imageCells is the cell grid available to the image after the border,
// colorbar column and slider row are taken out.
func (p *paneModel) imageCells() (int, int) {
	width := p.width - 2 // container border
	if p.colorbar != nil {
		width -= colorbarWidth
	}
	height := p.height - 2
	if p.slider != nil {
		height--
	}

	return max(width, 0), max(height, 0)
}

const colorbarWidth = 7 // bar plus range labels

func (p *paneModel) View() string {
	imgW, imgH := p.imageCells()
	if imgW == 0 || imgH == 0 {
		return ""
	}

	if p.dirty || p.cache == "" {
		p.cache = renderSlice(p.state.Displayed, p.limits, p.state.ColorRange, p.ramp, imgW, imgH)
		p.dirty = false
	}

	content := zone.Mark(p.id, p.cache)
	if p.colorbar != nil {
		content = lipgloss.JoinHorizontal(lipgloss.Top, content, " ", p.colorbar.View(imgH))
	}
	if p.slider != nil {
		p.slider.width = imgW
		content = lipgloss.JoinVertical(lipgloss.Left, content, p.slider.View())
	}

	style := styles.ContainerStyle
	title := styles.PaneTitle
	if p.focused {
		style = styles.ContainerStyleActive
		title = styles.PaneTitleActive
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		title.Render(p.title),
		style.Width(p.width-2).Render(content))
}
