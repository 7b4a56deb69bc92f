package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/voxtui/voxtui/internal/config"
)

func TestReadDefaults(t *testing.T) {
	loader := config.NewLoader(nil)

	conf, errConfig := loader.Read()
	require.NoError(t, errConfig)
	require.InDelta(t, config.DefaultZoomScale, conf.ZoomScale, 0.0001)
	require.InDelta(t, config.DefaultCmapDelta, conf.CmapDelta, 0.0001)
	require.Equal(t, "gray", conf.Colormap)
	require.True(t, conf.ShowSlider)
	require.True(t, conf.ShowColorbar)
	require.False(t, conf.LinkPanes)
	require.Equal(t, 0, conf.SliceAxis)
}

func TestReadFileOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "voxtui.yaml")
	body := "zoom_scale: 1.5\ncolormap: viridis\nlink_panes: true\nslice_axis: 2\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	loader := config.NewLoader(nil)
	loader.SetConfigFile(path)

	conf, errConfig := loader.Read()
	require.NoError(t, errConfig)
	require.InDelta(t, 1.5, conf.ZoomScale, 0.0001)
	require.Equal(t, "viridis", conf.Colormap)
	require.True(t, conf.LinkPanes)
	require.Equal(t, 2, conf.SliceAxis)
	require.InDelta(t, config.DefaultCmapDelta, conf.CmapDelta, 0.0001)
}
