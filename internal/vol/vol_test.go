package vol_test

import (
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/voxtui/voxtui/internal/vol"
)

func TestNewValidation(t *testing.T) {
	// Rank 2 is an image, not a volume.
	_, err := vol.New(make([]float64, 4), []int{2, 2}, 0)
	require.ErrorIs(t, err, vol.ErrBadShape)

	// Rank 4 requires a 3 or 4 wide channel dimension.
	_, err = vol.New(make([]float64, 2*2*2*2), []int{2, 2, 2, 2}, 0)
	require.ErrorIs(t, err, vol.ErrBadShape)

	_, err = vol.New(make([]float64, 2*2*2*3), []int{2, 2, 2, 3}, 0)
	require.NoError(t, err)

	// Data length must match the shape.
	_, err = vol.New(make([]float64, 7), []int{2, 2, 2}, 0)
	require.ErrorIs(t, err, vol.ErrBadShape)

	_, err = vol.New(make([]float64, 8), []int{2, 2, 2}, 5)
	require.ErrorIs(t, err, vol.ErrBadShape)
}

func TestSliceAddressing(t *testing.T) {
	data := []float64{
		1, 2,
		3, 4,

		5, 6,
		7, 8,
	}
	volume, err := vol.New(data, []int{2, 2, 2}, 0)
	require.NoError(t, err)
	require.Equal(t, 2, volume.Extent())

	first := volume.Slice(0)
	require.InDelta(t, 1, first.At(0, 0), 1e-12)
	require.InDelta(t, 4, first.At(1, 1), 1e-12)

	second := volume.Slice(1)
	require.InDelta(t, 5, second.At(0, 0), 1e-12)
	require.InDelta(t, 8, second.At(1, 1), 1e-12)

	require.Panics(t, func() { volume.Slice(2) })
}

func TestSliceAxisTranspose(t *testing.T) {
	// Shape [2, 3, 2] sliced along axis 1 gives 3 slices of 2x2.
	data := []float64{
		0, 1, 10, 11, 20, 21,
		100, 101, 110, 111, 120, 121,
	}
	volume, err := vol.New(data, []int{2, 3, 2}, 1)
	require.NoError(t, err)
	require.Equal(t, 3, volume.Extent())
	require.Equal(t, 2, volume.Height())
	require.Equal(t, 2, volume.Width())

	middle := volume.Slice(1)
	require.InDelta(t, 10, middle.At(0, 0), 1e-12)
	require.InDelta(t, 11, middle.At(1, 0), 1e-12)
	require.InDelta(t, 110, middle.At(0, 1), 1e-12)
	require.InDelta(t, 111, middle.At(1, 1), 1e-12)

	// Negative axes count from the end.
	fromEnd, err := vol.New(data, []int{2, 3, 2}, -2)
	require.NoError(t, err)
	require.Equal(t, 3, fromEnd.Extent())
}

func TestMinMax(t *testing.T) {
	volume, err := vol.New([]float64{3, -1, 0, 7, 2, 2, 2, 2}, []int{2, 2, 2}, 0)
	require.NoError(t, err)

	lo, hi := volume.MinMax()
	require.InDelta(t, -1, lo, 1e-12)
	require.InDelta(t, 7, hi, 1e-12)
}

func TestMultiChannelAt(t *testing.T) {
	img, err := vol.NewImage([]float64{1, 2, 3, 4, 5, 6}, []int{1, 2, 3})
	require.NoError(t, err)
	require.InDelta(t, 2, img.At(0, 0), 1e-12) // mean of 1,2,3
	require.InDelta(t, 5, img.At(1, 0), 1e-12)
}

func TestDemo(t *testing.T) {
	volume := vol.Demo(5, 16, 16)
	require.Equal(t, 5, volume.Extent())

	lo, hi := volume.MinMax()
	require.GreaterOrEqual(t, lo, 0.0)
	require.LessOrEqual(t, hi, 1.0)
	require.Greater(t, hi, lo)
}

func TestLoadStack(t *testing.T) {
	dir := t.TempDir()
	for i, shade := range []uint8{0, 128, 255} {
		img := image.NewGray(image.Rect(0, 0, 4, 4))
		for p := range img.Pix {
			img.Pix[p] = shade
		}
		writePNG(t, filepath.Join(dir, filename(i)), img)
	}

	volume, err := vol.LoadStack(dir)
	require.NoError(t, err)
	require.Equal(t, 3, volume.Extent())
	require.Equal(t, 4, volume.Width())
	require.Equal(t, 4, volume.Height())

	// Slices come back sorted by filename with increasing brightness.
	require.Less(t, volume.Slice(0).At(0, 0), volume.Slice(1).At(0, 0))
	require.Less(t, volume.Slice(1).At(0, 0), volume.Slice(2).At(0, 0))
}

func TestLoadStackMismatched(t *testing.T) {
	dir := t.TempDir()
	writePNG(t, filepath.Join(dir, "a.png"), image.NewGray(image.Rect(0, 0, 4, 4)))
	writePNG(t, filepath.Join(dir, "b.png"), image.NewGray(image.Rect(0, 0, 8, 8)))

	_, err := vol.LoadStack(dir)
	require.ErrorIs(t, err, vol.ErrMixedStack)
}

func TestLoadStackEmpty(t *testing.T) {
	_, err := vol.LoadStack(t.TempDir())
	require.ErrorIs(t, err, vol.ErrEmptyStack)
}

func filename(i int) string {
	return string(rune('a'+i)) + ".png"
}

func writePNG(t *testing.T, path string, img image.Image) {
	t.Helper()

	handle, err := os.Create(path)
	require.NoError(t, err)
	defer handle.Close()
	require.NoError(t, png.Encode(handle, img))
}
