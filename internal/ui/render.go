package ui

import (
	"image"
	"image/color"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/voxtui/voxtui/internal/ui/styles"
	"github.com/voxtui/voxtui/internal/view"
	"github.com/voxtui/voxtui/internal/vol"
	xdraw "golang.org/x/image/draw"
)

var (
	// fastScaler keeps large volumes interactive; bestScaler is used when
	// the source is small enough that quality is free.
	fastScaler xdraw.Scaler = xdraw.BiLinear
	bestScaler xdraw.Scaler = xdraw.CatmullRom
)

const fastScalerThreshold = 512 * 512

// renderSlice draws the window of a slice into a wCells x hCells character
// grid using upper half blocks, so each cell carries two vertical samples.
// Values are normalized by rng before color mapping; a collapsed range
// renders mid-ramp.
func renderSlice(img *vol.Image, window view.Rect, rng view.Range, ramp styles.Ramp, wCells int, hCells int) string {
	if wCells <= 0 || hCells <= 0 {
		return ""
	}

	src, srcRect := grayWindow(img, window, rng)
	if srcRect.Empty() {
		return blankFrame(wCells, hCells)
	}

	scaler := bestScaler
	if srcRect.Dx()*srcRect.Dy() > fastScalerThreshold {
		scaler = fastScaler
	}
	dst := image.NewGray(image.Rect(0, 0, wCells, 2*hCells))
	scaler.Scale(dst, dst.Bounds(), src, srcRect, xdraw.Src, nil)

	var b strings.Builder
	for row := range hCells {
		if row > 0 {
			b.WriteByte('\n')
		}
		for col := range wCells {
			upper := ramp.Color(float64(dst.GrayAt(col, 2*row).Y) / 255)
			lower := ramp.Color(float64(dst.GrayAt(col, 2*row+1).Y) / 255)
			b.WriteString(lipgloss.NewStyle().Foreground(upper).Background(lower).Render("▀"))
		}
	}

	return b.String()
}

// grayWindow normalizes the slice values inside window into an 8 bit gray
// image, clamping the window to the slice extent.
func grayWindow(img *vol.Image, window view.Rect, rng view.Range) (*image.Gray, image.Rectangle) {
	full := image.Rect(0, 0, img.Width(), img.Height())
	rect := image.Rect(
		int(math.Floor(window.Min.X)), int(math.Floor(window.Min.Y)),
		int(math.Ceil(window.Max.X)), int(math.Ceil(window.Max.Y)),
	).Intersect(full)
	if rect.Empty() {
		return nil, rect
	}

	span := rng.Span()
	gray := image.NewGray(rect)
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		for x := rect.Min.X; x < rect.Max.X; x++ {
			val := img.At(x, y)
			var v01 float64
			switch {
			case math.IsNaN(val):
				v01 = 0
			case span == 0:
				v01 = 0.5
			default:
				v01 = min(1, max(0, (val-rng.Min)/span))
			}
			gray.SetGray(x, y, color.Gray{Y: uint8(v01*255 + 0.5)})
		}
	}

	return gray, rect
}

func blankFrame(wCells int, hCells int) string {
	line := strings.Repeat(" ", wCells)
	lines := make([]string, hCells)
	for i := range lines {
		lines[i] = line
	}

	return strings.Join(lines, "\n")
}
