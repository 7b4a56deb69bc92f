package config

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"path"

	"github.com/adrg/xdg"
)

var errLoggerInit = errors.New("failed to initialize logger")

const (
	ConfigDirName     = "voxtui"
	DefaultConfigName = "voxtui"
	DefaultLogName    = "voxtui.log"
	EnvPrefix         = "voxtui"

	// Interaction defaults, overridable via config or env.
	DefaultZoomScale = 2.0
	DefaultCmapDelta = 0.02
)

type Config struct {
	// ZoomScale is the per-wheel-step zoom factor.
	ZoomScale float64 `mapstructure:"zoom_scale"`
	// CmapDelta is the vmin/vmax shift per wheel step on a colorbar, as a
	// fraction of the current range.
	CmapDelta float64 `mapstructure:"cmap_delta"`
	Colormap  string  `mapstructure:"colormap"`
	// LinkPanes keeps the slice index and zoom of all panes synchronized.
	LinkPanes bool `mapstructure:"link_panes"`
	// SliceAxis selects the volume axis slices are taken along. Negative
	// values count from the end.
	SliceAxis    int  `mapstructure:"slice_axis"`
	ShowSlider   bool `mapstructure:"show_slider"`
	ShowColorbar bool `mapstructure:"show_colorbar"`
	Debug        bool `mapstructure:"debug"`
}

// Path generates a path pointing to the filename under this apps defined
// $XDG_CONFIG_HOME.
func Path(name string) string {
	fullPath, errFullPath := xdg.ConfigFile(path.Join(ConfigDirName, name))
	if errFullPath != nil {
		panic(errFullPath)
	}

	return fullPath
}

// LoggerInit sets up the slog global handler to use a log file as we cant
// print to the console once the ui owns it.
func LoggerInit(name string, level slog.Level) (io.Closer, error) {
	logFile, errLogFile := os.Create(Path(name))
	if errLogFile != nil {
		return nil, errors.Join(errLogFile, errLoggerInit)
	}

	logger := slog.New(slog.NewTextHandler(logFile, &slog.HandlerOptions{
		AddSource: false,
		Level:     level,
	}))
	slog.SetDefault(logger)

	return logFile, nil
}
