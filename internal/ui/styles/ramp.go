package styles

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// Ramp maps a normalized value in [0, 1] to a terminal color. Values are
// clamped, so out-of-range data pins to the ramp ends the way a saturated
// colormap would.
type Ramp struct {
	name  string
	stops [][3]float64
}

func (r Ramp) Name() string { return r.name }

// Color returns the ramp color for v as a truecolor lipgloss color.
func (r Ramp) Color(v float64) lipgloss.Color {
	red, green, blue := r.RGB(v)

	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", red, green, blue))
}

// RGB returns the 8 bit channel values for v, interpolated linearly
// between the ramp's anchor stops.
func (r Ramp) RGB(v float64) (uint8, uint8, uint8) {
	v = min(1, max(0, v))
	pos := v * float64(len(r.stops)-1)
	idx := min(int(pos), len(r.stops)-2)
	frac := pos - float64(idx)

	lo, hi := r.stops[idx], r.stops[idx+1]
	channel := func(c int) uint8 {
		return uint8((lo[c] + (hi[c]-lo[c])*frac) * 255)
	}

	return channel(0), channel(1), channel(2)
}

var (
	// Grayscale is the default colormap for monochrome data.
	Grayscale = Ramp{name: "gray", stops: [][3]float64{{0, 0, 0}, {1, 1, 1}}}

	// Viridis uses a coarse anchor set of the matplotlib ramp.
	Viridis = Ramp{name: "viridis", stops: [][3]float64{
		{0.267, 0.005, 0.329},
		{0.283, 0.141, 0.458},
		{0.254, 0.265, 0.530},
		{0.207, 0.372, 0.553},
		{0.164, 0.471, 0.558},
		{0.128, 0.567, 0.551},
		{0.135, 0.659, 0.518},
		{0.267, 0.749, 0.441},
		{0.478, 0.821, 0.318},
		{0.741, 0.873, 0.150},
		{0.993, 0.906, 0.144},
	}}
)

// RampByName resolves a configured colormap name, defaulting to grayscale.
func RampByName(name string) Ramp {
	if name == Viridis.name {
		return Viridis
	}

	return Grayscale
}
