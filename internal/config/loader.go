package config

import (
	"errors"
	"log/slog"

	"github.com/fsnotify/fsnotify"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

var errConfigRead = errors.New("failed to read config file")

// Loader handles setting up viper, loading configuration from files, and
// broadcasting configuration changes.
type Loader struct {
	*viper.Viper
	changes chan<- Config
}

// NewLoader builds a loader with defaults applied. changes may be nil when
// nobody consumes live config updates.
func NewLoader(changes chan<- Config) *Loader {
	// A .env next to the binary can seed the environment before viper
	// reads it. Missing files are fine.
	_ = godotenv.Load()

	loader := Loader{changes: changes, Viper: viper.New()}
	loader.SetDefault("zoom_scale", DefaultZoomScale)
	loader.SetDefault("cmap_delta", DefaultCmapDelta)
	loader.SetDefault("colormap", "gray")
	loader.SetDefault("link_panes", false)
	loader.SetDefault("slice_axis", 0)
	loader.SetDefault("show_slider", true)
	loader.SetDefault("show_colorbar", true)
	loader.SetDefault("debug", false)
	loader.SetConfigName(DefaultConfigName)
	loader.SetConfigType("yaml")
	loader.SetEnvPrefix(EnvPrefix)
	loader.AddConfigPath(Path(""))
	loader.AddConfigPath(".")
	loader.AutomaticEnv()
	loader.WatchConfig()
	loader.OnConfigChange(loader.onConfigChange)

	return &loader
}

func (cl *Loader) Path() string {
	return cl.ConfigFileUsed()
}

// Read loads the config file when present, falling back to defaults.
func (cl *Loader) Read() (Config, error) {
	if err := cl.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, errors.Join(err, errConfigRead)
		}
	}

	return cl.unmarshal()
}

func (cl *Loader) unmarshal() (Config, error) {
	var conf Config
	if err := cl.Unmarshal(&conf); err != nil {
		return Config{}, errors.Join(err, errConfigRead)
	}

	return conf, nil
}

func (cl *Loader) onConfigChange(in fsnotify.Event) {
	if in.Op != fsnotify.Write && in.Op != fsnotify.Rename {
		return
	}

	conf, err := cl.unmarshal()
	if err != nil {
		slog.Error("Failed to reload config", slog.String("error", err.Error()))

		return
	}

	slog.Info("Config reloaded", slog.String("path", in.Name))
	if cl.changes != nil {
		cl.changes <- conf
	}
}
