package view

import "image"

// Region is the handle to one rendered display area. The rendering side owns
// it; the engine only reads geometry, adjusts the data-space window and asks
// for redraws.
type Region interface {
	// ID is a stable identity used as the registry key.
	ID() string
	// Bounds is the canvas cell area occupied by the image portion of the
	// region. A zero rectangle means the region has not been laid out yet.
	Bounds() image.Rectangle
	// Limits returns the data-space window currently displayed.
	Limits() Rect
	SetLimits(Rect)
	// DataCoords maps a canvas cell to data space. The bool reports whether
	// the cell lies inside the region.
	DataCoords(pos image.Point) (Point, bool)
	// RequestRedraw asks the renderer to repaint the region. Advisory only;
	// rapid requests may be coalesced.
	RequestRedraw()
}

// Slider is the handle to a slice selection slider widget.
//
// SetValue is the programmatic path used during share-group propagation: it
// updates the displayed value and must never invoke the change callback.
// Only a user gesture on the widget itself may fire the callback. This is
// the origin-tag discipline that keeps propagation from re-entering itself.
type Slider interface {
	Value() int
	SetValue(int)
	OnChange(func(int))
}

// Colorbar is the handle to a colorbar widget.
type Colorbar interface {
	// Bounds is the canvas cell area of the bar itself.
	Bounds() image.Rectangle
	// SetRange pushes a new (vmin, vmax) mapping to the widget.
	SetRange(Range)
}
