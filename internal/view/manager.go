package view

import (
	"image"
	"log/slog"
)

// Defaults matching the construction layer's config defaults.
const (
	DefaultZoomScale = 2.0
	DefaultCmapDelta = 0.02
)

// handler is the session-facing face of a per-view manager.
type handler interface {
	HandleWheel(ev Event)
	State() *State
	// Contains reports whether the cursor position targets this view,
	// including its colorbar when present.
	Contains(pos image.Point) bool
}

// Manager translates wheel events targeting one image view into zoom or
// color-range commands. Volume views embed it and add slice navigation.
type Manager struct {
	session   *Session
	state     *State
	zoomScale float64
	cmapDelta float64
}

func (m *Manager) State() *State { return m.state }

func (m *Manager) Contains(pos image.Point) bool {
	if pos.In(m.state.Region.Bounds()) {
		return true
	}
	if cb := m.state.Colorbar; cb != nil && pos.In(cb.Bounds()) {
		return true
	}

	return false
}

// HandleWheel applies a wheel event: over the colorbar it shifts the color
// range, over the image it zooms at the cursor, anywhere else it does
// nothing. Interactive edge cases are absorbed, never surfaced.
func (m *Manager) HandleWheel(ev Event) {
	if cb := m.state.Colorbar; cb != nil && ev.Pos.In(cb.Bounds()) {
		m.shiftColorRange(ev)

		return
	}
	if center, ok := m.state.Region.DataCoords(ev.Pos); ok {
		m.zoomAt(center, ev.Wheel)
	}
}

// shiftColorRange moves vmin (lower half of the bar) or vmax (upper half)
// by a fraction of the current span. A shift that would invert the range is
// dropped. Values are displayed top-high, so smaller Y means the upper half.
func (m *Manager) shiftColorRange(ev Event) {
	cbar := m.state.Colorbar
	bounds := cbar.Bounds()
	mid := bounds.Min.Y + bounds.Dy()/2

	rng := m.state.ColorRange
	shift := m.cmapDelta * rng.Span()
	if ev.Wheel == WheelDown {
		shift = -shift
	}

	if ev.Pos.Y >= mid { // lower half adjusts vmin
		if rng.Min+shift > rng.Max {
			return
		}
		rng.Min += shift
	} else { // upper half adjusts vmax
		if rng.Max+shift < rng.Min {
			return
		}
		rng.Max += shift
	}

	m.state.ColorRange = rng
	cbar.SetRange(rng)
	m.state.Region.RequestRedraw()
	slog.Debug("color range shifted",
		slog.String("region", m.state.Region.ID()),
		slog.Float64("vmin", rng.Min), slog.Float64("vmax", rng.Max))
}

// zoomAt rescales the region's data-space window about the cursor position.
// Wheel up shrinks the window by 1/zoomScale (zoom in), wheel down grows it
// by zoomScale. Zoom-grouped regions receive the same window.
func (m *Manager) zoomAt(center Point, dir WheelDir) {
	scale := 1 / m.zoomScale
	if dir == WheelDown {
		scale = m.zoomScale
	}

	limits := m.state.Region.Limits()
	limits = Rect{
		Min: Point{
			X: center.X - (center.X-limits.Min.X)*scale,
			Y: center.Y - (center.Y-limits.Min.Y)*scale,
		},
		Max: Point{
			X: center.X + (limits.Max.X-center.X)*scale,
			Y: center.Y + (limits.Max.Y-center.Y)*scale,
		},
	}

	for _, linked := range m.session.zoomMembers(m.state.Region.ID()) {
		linked.State().Region.SetLimits(limits)
		linked.State().Region.RequestRedraw()
	}
}
