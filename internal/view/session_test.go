package view_test

import (
	"image"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/voxtui/voxtui/internal/view"
	"github.com/voxtui/voxtui/internal/vol"
)

// fakeRegion implements view.Region over a fixed cell rectangle with a
// linear cell->data mapping.
type fakeRegion struct {
	id      string
	bounds  image.Rectangle
	limits  view.Rect
	redraws int
}

func newFakeRegion(id string, bounds image.Rectangle, limits view.Rect) *fakeRegion {
	return &fakeRegion{id: id, bounds: bounds, limits: limits}
}

func (r *fakeRegion) ID() string              { return r.id }
func (r *fakeRegion) Bounds() image.Rectangle { return r.bounds }
func (r *fakeRegion) Limits() view.Rect       { return r.limits }
func (r *fakeRegion) SetLimits(l view.Rect)   { r.limits = l }
func (r *fakeRegion) RequestRedraw()          { r.redraws++ }

func (r *fakeRegion) DataCoords(pos image.Point) (view.Point, bool) {
	if !pos.In(r.bounds) {
		return view.Point{}, false
	}

	return view.Point{
		X: r.limits.Min.X + (float64(pos.X-r.bounds.Min.X)+0.5)/float64(r.bounds.Dx())*r.limits.Dx(),
		Y: r.limits.Min.Y + (float64(pos.Y-r.bounds.Min.Y)+0.5)/float64(r.bounds.Dy())*r.limits.Dy(),
	}, true
}

// fakeSlider counts programmatic sets and user-attributable callback fires
// separately so tests can prove suppression.
type fakeSlider struct {
	value     int
	sets      int
	userFires int
	onChange  func(int)
}

func (s *fakeSlider) Value() int { return s.value }

func (s *fakeSlider) SetValue(v int) {
	s.value = v
	s.sets++
}

func (s *fakeSlider) OnChange(cb func(int)) { s.onChange = cb }

// drag simulates the user moving the slider to v.
func (s *fakeSlider) drag(v int) {
	s.value = v
	if s.onChange != nil {
		s.userFires++
		s.onChange(v)
	}
}

type fakeColorbar struct {
	bounds image.Rectangle
	rng    view.Range
	pushes int
}

func (c *fakeColorbar) Bounds() image.Rectangle { return c.bounds }

func (c *fakeColorbar) SetRange(rng view.Range) {
	c.rng = rng
	c.pushes++
}

func wheel(dir view.WheelDir, x int, y int) view.Event {
	return view.Event{Kind: view.KindWheel, Wheel: dir, Pos: image.Pt(x, y)}
}

func keyDown(name string) view.Event {
	return view.Event{Kind: view.KindKeyDown, Key: name}
}

func keyUp(name string) view.Event {
	return view.Event{Kind: view.KindKeyUp, Key: name}
}

// attachVolume builds a volume view over a 40x20 cell region at offset.
func attachVolume(t *testing.T, session *view.Session, id string, extent int, offset image.Point, withSlider bool) (*view.State, *fakeSlider) {
	t.Helper()

	volume := vol.Demo(extent, 16, 16)
	bounds := image.Rect(offset.X, offset.Y, offset.X+40, offset.Y+20)
	region := newFakeRegion(id, bounds, view.Rect{Max: view.Point{X: 16, Y: 16}})
	state := view.NewVolumeState(region, volume)

	var slider *fakeSlider
	if withSlider {
		slider = &fakeSlider{}
		state.Slider = slider
	}
	session.AttachVolumeView(state)

	return state, slider
}

func TestAttachIdempotent(t *testing.T) {
	sessions := view.NewSessions()
	session := sessions.Attach("canvas")
	require.Same(t, session, sessions.Attach("canvas"))

	region := newFakeRegion("a", image.Rect(0, 0, 40, 20), view.Rect{Max: view.Point{X: 16, Y: 16}})
	state := view.NewVolumeState(region, vol.Demo(5, 16, 16))
	mgr := session.AttachVolumeView(state)
	require.Same(t, mgr, session.AttachVolumeView(state))
}

func TestReattachOtherKindReplaces(t *testing.T) {
	session := view.NewSessions().Attach("canvas")
	region := newFakeRegion("a", image.Rect(0, 0, 40, 20), view.Rect{Max: view.Point{X: 16, Y: 16}})
	volume := vol.Demo(5, 16, 16)
	volState := view.NewVolumeState(region, volume)
	session.AttachVolumeView(volState)

	imgState := view.NewImageState(region, volume.Slice(0))
	session.AttachImageView(imgState)

	// The region now routes to the image manager: shift+wheel zooms
	// instead of stepping slices.
	before := region.Limits()
	session.Dispatch(keyDown("shift"))
	session.Dispatch(wheel(view.WheelUp, 5, 5))
	require.Equal(t, 0, volState.SliceIndex)
	require.NotEqual(t, before, region.Limits())
}

func TestShareGroupConflict(t *testing.T) {
	session := view.NewSessions().Attach("canvas")
	require.NoError(t, session.DeclareSliceGroup("a", "b"))
	require.ErrorIs(t, session.DeclareSliceGroup("b", "c"), view.ErrGroupConflict)
	// Zoom groups are tracked independently of slice groups.
	require.NoError(t, session.DeclareZoomGroup("a", "b"))
}

func TestSliderPropagation(t *testing.T) {
	session := view.NewSessions().Attach("canvas")
	stateA, sliderA := attachVolume(t, session, "a", 10, image.Pt(0, 0), true)
	stateB, sliderB := attachVolume(t, session, "b", 10, image.Pt(50, 0), true)
	require.NoError(t, session.DeclareSliceGroup("a", "b"))

	sliderA.drag(7)

	require.Equal(t, 7, stateA.SliceIndex)
	require.Equal(t, 7, stateB.SliceIndex)
	require.Equal(t, 7, sliderB.Value())
	// The origin slider already showed 7; only the other slider was driven.
	require.Equal(t, 0, sliderA.sets)
	require.Equal(t, 1, sliderB.sets)
	// No propagation-induced user events anywhere.
	require.Equal(t, 1, sliderA.userFires)
	require.Equal(t, 0, sliderB.userFires)
}

func TestSliderPropagationMismatchedExtents(t *testing.T) {
	session := view.NewSessions().Attach("canvas")
	stateA, sliderA := attachVolume(t, session, "a", 10, image.Pt(0, 0), true)
	stateB, sliderB := attachVolume(t, session, "b", 5, image.Pt(50, 0), true)
	require.NoError(t, session.DeclareSliceGroup("a", "b"))

	// Past the shorter volume's last slice: it pins there, the longer one
	// follows the dragged value.
	sliderA.drag(7)
	require.Equal(t, 7, stateA.SliceIndex)
	require.Equal(t, 4, stateB.SliceIndex)
	require.Equal(t, 4, sliderB.Value())

	// Dragging the shorter volume's slider drives the longer one directly.
	sliderB.drag(3)
	require.Equal(t, 3, stateA.SliceIndex)
	require.Equal(t, 3, stateB.SliceIndex)
	require.Equal(t, 3, sliderA.Value())
}

func TestSliderUngroupedClamps(t *testing.T) {
	session := view.NewSessions().Attach("canvas")
	state, slider := attachVolume(t, session, "a", 5, image.Pt(0, 0), true)

	slider.drag(9)
	require.Equal(t, 4, state.SliceIndex)

	slider.drag(-2)
	require.Equal(t, 0, state.SliceIndex)
}

func TestSliderUngrouped(t *testing.T) {
	session := view.NewSessions().Attach("canvas")
	state, slider := attachVolume(t, session, "a", 10, image.Pt(0, 0), true)

	slider.drag(4)

	require.Equal(t, 4, state.SliceIndex)
	// Ungrouped origin needs no feedback set at all.
	require.Equal(t, 0, slider.sets)
}

func TestWheelSliceBoundaries(t *testing.T) {
	session := view.NewSessions().Attach("canvas")
	state, slider := attachVolume(t, session, "a", 5, image.Pt(0, 0), true)

	session.Dispatch(keyDown("shift"))
	// From 0, extent-1 wheel-ups reach the last slice.
	for range 4 {
		session.Dispatch(wheel(view.WheelUp, 5, 5))
	}
	require.Equal(t, 4, state.SliceIndex)
	// Further wheel-ups are clamped no-ops.
	session.Dispatch(wheel(view.WheelUp, 5, 5))
	require.Equal(t, 4, state.SliceIndex)
	require.Equal(t, 4, slider.Value())

	// Symmetric clamp at zero.
	for range 6 {
		session.Dispatch(wheel(view.WheelDown, 5, 5))
	}
	require.Equal(t, 0, state.SliceIndex)
}

func TestWheelSliceClampFromMiddle(t *testing.T) {
	session := view.NewSessions().Attach("canvas")
	state, _ := attachVolume(t, session, "a", 5, image.Pt(0, 0), false)

	session.Dispatch(keyDown("shift"))
	session.Dispatch(wheel(view.WheelUp, 5, 5))
	session.Dispatch(wheel(view.WheelUp, 5, 5))
	require.Equal(t, 2, state.SliceIndex)

	for range 3 {
		session.Dispatch(wheel(view.WheelDown, 5, 5))
	}
	require.Equal(t, 0, state.SliceIndex)
}

func TestWheelSliceSharedSteps(t *testing.T) {
	session := view.NewSessions().Attach("canvas")
	stateA, _ := attachVolume(t, session, "a", 10, image.Pt(0, 0), false)
	stateB, _ := attachVolume(t, session, "b", 10, image.Pt(50, 0), false)
	require.NoError(t, session.DeclareSliceGroup("a", "b"))

	session.Dispatch(keyDown("shift"))
	session.Dispatch(wheel(view.WheelUp, 5, 5)) // over region a
	require.Equal(t, 1, stateA.SliceIndex)
	require.Equal(t, 1, stateB.SliceIndex)

	session.Dispatch(wheel(view.WheelUp, 55, 5)) // over region b
	require.Equal(t, 2, stateA.SliceIndex)
	require.Equal(t, 2, stateB.SliceIndex)
}

func TestShiftSuppressesZoom(t *testing.T) {
	session := view.NewSessions().Attach("canvas")
	state, _ := attachVolume(t, session, "a", 5, image.Pt(0, 0), false)
	before := state.Region.Limits()

	session.Dispatch(keyDown("shift"))
	session.Dispatch(wheel(view.WheelUp, 5, 5))
	require.Equal(t, before, state.Region.Limits())
	require.Equal(t, 1, state.SliceIndex)

	session.Dispatch(keyUp("shift"))
	session.Dispatch(wheel(view.WheelUp, 5, 5))
	require.NotEqual(t, before, state.Region.Limits())
	require.Equal(t, 1, state.SliceIndex)
}

func TestZoomComposition(t *testing.T) {
	session := view.NewSessions().Attach("canvas")
	stateOnce, _ := attachVolume(t, session, "a", 5, image.Pt(0, 0), false)

	sessionTwice := view.NewSessions().Attach("canvas2")
	stateTwice, _ := attachVolume(t, sessionTwice, "b", 5, image.Pt(0, 0), false)
	sessionTwice.SetZoomScale(4) // zoomScale^2 of the default 2

	// Same cursor position through both sessions.
	session.Dispatch(wheel(view.WheelUp, 10, 10))
	session.Dispatch(wheel(view.WheelUp, 10, 10))
	sessionTwice.Dispatch(wheel(view.WheelUp, 10, 10))

	once := stateOnce.Region.Limits()
	twice := stateTwice.Region.Limits()
	require.InDelta(t, twice.Min.X, once.Min.X, 1e-9)
	require.InDelta(t, twice.Min.Y, once.Min.Y, 1e-9)
	require.InDelta(t, twice.Max.X, once.Max.X, 1e-9)
	require.InDelta(t, twice.Max.Y, once.Max.Y, 1e-9)
}

func TestZoomCenterInvariant(t *testing.T) {
	session := view.NewSessions().Attach("canvas")
	state, _ := attachVolume(t, session, "a", 5, image.Pt(0, 0), false)

	region, ok := state.Region.(*fakeRegion)
	require.True(t, ok)
	center, inside := region.DataCoords(image.Pt(10, 10))
	require.True(t, inside)

	before := region.Limits()
	session.Dispatch(wheel(view.WheelUp, 10, 10))
	after := region.Limits()

	// The window shrank by the zoom factor around the cursor position.
	require.InDelta(t, before.Dx()/2, after.Dx(), 1e-9)
	require.InDelta(t, (center.X-before.Min.X)/before.Dx(),
		(center.X-after.Min.X)/after.Dx(), 1e-9)
	require.InDelta(t, (center.Y-before.Min.Y)/before.Dy(),
		(center.Y-after.Min.Y)/after.Dy(), 1e-9)
}

func TestZoomGroupPropagation(t *testing.T) {
	session := view.NewSessions().Attach("canvas")
	stateA, _ := attachVolume(t, session, "a", 5, image.Pt(0, 0), false)
	stateB, _ := attachVolume(t, session, "b", 5, image.Pt(50, 0), false)
	require.NoError(t, session.DeclareZoomGroup("a", "b"))

	session.Dispatch(wheel(view.WheelUp, 10, 10))
	require.Equal(t, stateA.Region.Limits(), stateB.Region.Limits())
}

func TestColorbarWheel(t *testing.T) {
	session := view.NewSessions().Attach("canvas")
	state, _ := attachVolume(t, session, "a", 5, image.Pt(0, 0), false)
	cbar := &fakeColorbar{bounds: image.Rect(42, 0, 44, 20)}
	state.Colorbar = cbar
	state.ColorRange = view.Range{Min: 0, Max: 10}
	session.SetCmapDelta(0.1)

	// Lower half of the bar adjusts vmin, wheel up raises it by 0.1*span.
	session.Dispatch(wheel(view.WheelUp, 43, 15))
	require.InDelta(t, 1.0, state.ColorRange.Min, 1e-9)
	require.InDelta(t, 10.0, state.ColorRange.Max, 1e-9)
	require.Equal(t, 1, cbar.pushes)

	// Upper half adjusts vmax.
	session.Dispatch(wheel(view.WheelDown, 43, 2))
	require.InDelta(t, 10.0-0.9, state.ColorRange.Max, 1e-9)
}

func TestColorbarNeverInverts(t *testing.T) {
	session := view.NewSessions().Attach("canvas")
	state, _ := attachVolume(t, session, "a", 5, image.Pt(0, 0), false)
	cbar := &fakeColorbar{bounds: image.Rect(42, 0, 44, 20)}
	state.Colorbar = cbar
	state.ColorRange = view.Range{Min: 0, Max: 1}
	session.SetCmapDelta(0.5)

	for range 10 {
		session.Dispatch(wheel(view.WheelUp, 43, 15))
	}
	require.LessOrEqual(t, state.ColorRange.Min, state.ColorRange.Max)

	for range 10 {
		session.Dispatch(wheel(view.WheelDown, 43, 2))
	}
	require.LessOrEqual(t, state.ColorRange.Min, state.ColorRange.Max)
}

func TestDispatchOutsideAnyRegion(t *testing.T) {
	session := view.NewSessions().Attach("canvas")
	state, _ := attachVolume(t, session, "a", 5, image.Pt(0, 0), false)
	before := state.Region.Limits()

	session.Dispatch(wheel(view.WheelUp, 500, 500))
	require.Equal(t, before, state.Region.Limits())
	require.Equal(t, 0, state.SliceIndex)
}

func TestKeyStateTracking(t *testing.T) {
	keys := view.NewKeyState()
	require.False(t, keys.IsPressed("shift"))

	keys.OnKeyDown("shift")
	require.True(t, keys.IsPressed("shift"))

	// Unrecognized key names are no-ops, not errors.
	keys.OnKeyDown("banana")
	require.False(t, keys.IsPressed("banana"))

	keys.OnKeyUp("shift")
	require.False(t, keys.IsPressed("shift"))

	keys.OnKeyDown("ctrl")
	keys.Reset()
	require.False(t, keys.IsPressed("ctrl"))
}
