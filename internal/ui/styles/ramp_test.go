package styles_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/voxtui/voxtui/internal/ui/styles"
)

func TestGrayscaleEndpoints(t *testing.T) {
	r, g, b := styles.Grayscale.RGB(0)
	require.Equal(t, [3]uint8{0, 0, 0}, [3]uint8{r, g, b})

	r, g, b = styles.Grayscale.RGB(1)
	require.Equal(t, [3]uint8{255, 255, 255}, [3]uint8{r, g, b})

	r, g, b = styles.Grayscale.RGB(0.5)
	require.InDelta(t, 127, int(r), 1)
	require.Equal(t, r, g)
	require.Equal(t, g, b)
}

func TestRampClamps(t *testing.T) {
	lo, _, _ := styles.Viridis.RGB(-3)
	atZero, _, _ := styles.Viridis.RGB(0)
	require.Equal(t, atZero, lo)

	hi, _, _ := styles.Viridis.RGB(42)
	atOne, _, _ := styles.Viridis.RGB(1)
	require.Equal(t, atOne, hi)
}

func TestRampByName(t *testing.T) {
	require.Equal(t, "viridis", styles.RampByName("viridis").Name())
	require.Equal(t, "gray", styles.RampByName("").Name())
	require.Equal(t, "gray", styles.RampByName("nope").Name())
}
