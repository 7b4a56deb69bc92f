package ui

import (
	"fmt"
	"image"
	"strings"

	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
	"github.com/voxtui/voxtui/internal/ui/styles"
	"github.com/voxtui/voxtui/internal/view"
)

// colorbarModel is a vertical colorbar column next to a pane's image area.
// It implements view.Colorbar; wheel events over its upper/lower half are
// resolved against Bounds by the engine, not here.
type colorbarModel struct {
	zoneID string
	ramp   styles.Ramp
	rng    view.Range
	height int
}

func newColorbarModel(ramp styles.Ramp, rng view.Range) *colorbarModel {
	return &colorbarModel{
		zoneID: zone.NewPrefix(),
		ramp:   ramp,
		rng:    rng,
	}
}

func (m *colorbarModel) Bounds() image.Rectangle {
	info := zone.Get(m.zoneID)
	if info.IsZero() {
		return image.Rectangle{}
	}

	return image.Rect(info.StartX, info.StartY, info.EndX+1, info.EndY+1)
}

func (m *colorbarModel) SetRange(rng view.Range) {
	m.rng = rng
}

func (m *colorbarModel) setRamp(ramp styles.Ramp) {
	m.ramp = ramp
}

// View renders the bar as a column of height cells, high values on top,
// with the current vmax/vmin printed above and below.
func (m *colorbarModel) View(height int) string {
	if height < 3 {
		return ""
	}
	bars := height - 2

	var b strings.Builder
	for i := range bars {
		if i > 0 {
			b.WriteByte('\n')
		}
		// Two vertical samples per cell, matching the image renderer.
		upper := 1 - (float64(2*i)+0.5)/float64(2*bars)
		lower := 1 - (float64(2*i)+1.5)/float64(2*bars)
		b.WriteString(lipgloss.NewStyle().
			Foreground(m.ramp.Color(upper)).
			Background(m.ramp.Color(lower)).
			Render("▀▀"))
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		styles.ColorbarLabel.Render(formatRangeValue(m.rng.Max)),
		zone.Mark(m.zoneID, b.String()),
		styles.ColorbarLabel.Render(formatRangeValue(m.rng.Min)),
	)
}

func formatRangeValue(v float64) string {
	return fmt.Sprintf("%.3g", v)
}
