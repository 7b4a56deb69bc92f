package view

import "log/slog"

// VolumeManager extends Manager with slice navigation: wheel with the shift
// modifier held steps through slices, and the slice slider drives the same
// path. Both fan out across the region's slice share group.
type VolumeManager struct {
	Manager
}

// HandleWheel intercepts shift+wheel over the image as a slice shift (zoom
// is suppressed while the modifier is held); everything else defers to the
// base zoom / color-range behavior.
func (m *VolumeManager) HandleWheel(ev Event) {
	if ev.Pos.In(m.state.Region.Bounds()) && m.session.keys.IsPressed(KeyShift) {
		m.StepSlice(ev.Wheel)

		return
	}

	m.Manager.HandleWheel(ev)
}

// StepSlice steps this view's slice, fanning out across the slice share
// group when the region is grouped. Each grouped region steps relative to
// its own index so volumes of different extents stay clamped independently.
func (m *VolumeManager) StepSlice(dir WheelDir) {
	if members := m.session.sliceMembers(m.state.Region.ID()); len(members) > 0 {
		for _, linked := range members {
			linked.ShiftSlice(dir)
		}

		return
	}
	m.ShiftSlice(dir)
}

// ShiftSlice steps the slice index by one, clamped to [0, extent-1]. At
// either boundary the event is a no-op, not an error.
func (m *VolumeManager) ShiftSlice(dir WheelDir) {
	index := m.state.SliceIndex
	switch dir {
	case WheelUp:
		if index < m.state.Volume.Extent()-1 {
			index++
		}
	case WheelDown:
		if index > 0 {
			index--
		}
	}
	m.setSlice(index, true)
}

// OnSliderChange is the change callback wired to the view's slider; it only
// ever fires for direct user interaction with the widget. Out-of-range
// values are clamped, never surfaced.
func (m *VolumeManager) OnSliderChange(index int) {
	if members := m.session.sliceMembers(m.state.Region.ID()); len(members) > 0 {
		m.session.propagateSlice(members, index, m.state.Region.ID())

		return
	}
	// Ungrouped: the slider already shows index, no feedback update needed.
	m.setSlice(min(max(index, 0), m.state.Volume.Extent()-1), false)
}

// setSlice records the new index, recomputes the displayed slice and
// requests a repaint. updateSlider also pushes the value to this view's own
// slider; the programmatic set never re-fires the change callback.
func (m *VolumeManager) setSlice(index int, updateSlider bool) {
	m.state.SliceIndex = index
	m.state.Displayed = m.state.Volume.Slice(index)
	if updateSlider && m.state.Slider != nil {
		m.state.Slider.SetValue(index)
	}
	m.state.Region.RequestRedraw()
	slog.Debug("slice selected",
		slog.String("region", m.state.Region.ID()),
		slog.Int("index", index), slog.Int("extent", m.state.Volume.Extent()))
}
