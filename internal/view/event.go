package view

import "image"

// WheelDir is the direction of a mouse wheel step.
type WheelDir int

const (
	WheelUp WheelDir = iota
	WheelDown
)

// EventKind discriminates the normalized input events a Session can dispatch.
type EventKind int

const (
	KindWheel EventKind = iota
	KindKeyDown
	KindKeyUp
)

// Event is a single normalized input event. The UI layer translates raw
// terminal input into these before handing them to Session.Dispatch.
type Event struct {
	Kind  EventKind
	Key   string      // modifier name, key events only
	Wheel WheelDir    // wheel events only
	Pos   image.Point // canvas cell position of the cursor
}

// Point is a position in data space.
type Point struct {
	X float64
	Y float64
}

// Rect is an axis-aligned rectangle in data space. It represents the
// window of the underlying slice a region currently displays.
type Rect struct {
	Min Point
	Max Point
}

func (r Rect) Dx() float64 { return r.Max.X - r.Min.X }
func (r Rect) Dy() float64 { return r.Max.Y - r.Min.Y }

// Range is the (vmin, vmax) pair mapping data values to colors.
type Range struct {
	Min float64
	Max float64
}

func (r Range) Span() float64 { return r.Max - r.Min }
