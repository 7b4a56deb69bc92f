package ui

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSliderSetValueIsSilent(t *testing.T) {
	slider := newSliderModel(9)

	fired := 0
	slider.OnChange(func(int) { fired++ })

	slider.SetValue(4)
	require.Equal(t, 4, slider.Value())
	require.Equal(t, 0, fired, "programmatic updates must not fire the change callback")
}

func TestSliderSetValueClamps(t *testing.T) {
	slider := newSliderModel(9)

	slider.SetValue(50)
	require.Equal(t, 9, slider.Value())

	slider.SetValue(-3)
	require.Equal(t, 0, slider.Value())
}

func TestSliderViewReadout(t *testing.T) {
	slider := newSliderModel(9)
	slider.width = 40
	slider.SetValue(3)

	out := slider.View()
	require.Contains(t, out, "Slice")
	require.Contains(t, out, "3/9")
	require.Contains(t, out, "●")
}
