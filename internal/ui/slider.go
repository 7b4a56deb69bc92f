package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"
	"github.com/voxtui/voxtui/internal/ui/styles"
)

// sliderModel is a horizontal slice selection slider. It implements
// view.Slider: SetValue is the programmatic path used by share-group
// propagation and never fires the change callback; only pointer gestures on
// the track do.
type sliderModel struct {
	zoneID   string
	value    int
	maxValue int
	width    int
	dragging bool
	onChange func(int)
}

func newSliderModel(maxValue int) *sliderModel {
	return &sliderModel{
		zoneID:   zone.NewPrefix(),
		maxValue: maxValue,
	}
}

func (m *sliderModel) Value() int { return m.value }

func (m *sliderModel) SetValue(v int) {
	m.value = clamp(v, 0, m.maxValue)
}

func (m *sliderModel) OnChange(cb func(int)) { m.onChange = cb }

func (m *sliderModel) Update(msg tea.Msg) tea.Cmd {
	mouse, ok := msg.(tea.MouseMsg)
	if !ok {
		return nil
	}

	switch mouse.Action {
	case tea.MouseActionPress:
		if mouse.Button != tea.MouseButtonLeft || !zone.Get(m.zoneID).InBounds(mouse) {
			return nil
		}
		m.dragging = true

		return m.applyGesture(mouse)
	case tea.MouseActionMotion:
		if !m.dragging {
			return nil
		}

		return m.applyGesture(mouse)
	case tea.MouseActionRelease:
		m.dragging = false
	}

	return nil
}

// applyGesture maps the cursor column onto the track and fires the change
// callback when the value moved. This is the only path that may fire it.
func (m *sliderModel) applyGesture(mouse tea.MouseMsg) tea.Cmd {
	info := zone.Get(m.zoneID)
	if info.IsZero() {
		return nil
	}

	trackWidth := m.trackWidth()
	if trackWidth <= 1 || m.maxValue == 0 {
		return nil
	}

	x, _ := info.Pos(mouse)
	x = clamp(x, 0, trackWidth-1)
	target := (x*m.maxValue + (trackWidth-1)/2) / (trackWidth - 1)
	target = clamp(target, 0, m.maxValue)
	if target == m.value {
		return nil
	}

	m.value = target
	if m.onChange != nil {
		m.onChange(target)
	}

	return nil
}

func (m *sliderModel) trackWidth() int {
	// Leave room for the "Slice" label and the value readout.
	return max(m.width-8-len(fmt.Sprintf("%d/%d", m.maxValue, m.maxValue)), 2)
}

func (m *sliderModel) View() string {
	trackWidth := m.trackWidth()
	thumb := 0
	if m.maxValue > 0 {
		thumb = m.value * (trackWidth - 1) / m.maxValue
	}

	var b strings.Builder
	b.WriteString(styles.SliderFilled.Render(strings.Repeat("─", thumb)))
	b.WriteString(styles.SliderThumb.Render("●"))
	b.WriteString(styles.SliderTrack.Render(strings.Repeat("─", trackWidth-thumb-1)))

	return styles.SliderLabel.Render("Slice ") +
		zone.Mark(m.zoneID, b.String()) +
		styles.SliderLabel.Render(fmt.Sprintf(" %d/%d", m.value, m.maxValue))
}
