package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path"
	"runtime"
	"runtime/pprof"
	"time"

	"github.com/adrg/xdg"
	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
	"github.com/voxtui/voxtui/internal/config"
)

var (
	BuildVersion   = "master"
	BuildCommit    = "00000000"
	BuildDate      = time.Now().Format("2006-01-02T15:04:05Z")
	BuildGoVersion = runtime.Version()

	sliceAxis  int
	linkPanes  bool
	noSlider   bool
	noColorbar bool
	colormap   string

	rootCmd = &cobra.Command{
		Use:   "voxtui [stack-dir|image]...",
		Short: "Terminal volume and image viewer",
		Long: `voxtui - view 2D images and slices of 3D/4D volumes in linked terminal panes.

Each argument is a directory of equally sized images (one per slice) or a
single image file. With no arguments two linked demo volumes are shown.`,
		RunE: run,
	}

	versionCmd = &cobra.Command{
		Use:               "version",
		Short:             "Print version information",
		Args:              cobra.NoArgs,
		ValidArgsFunction: cobra.NoFileCompletions,
		Run:               version,
	}
)

var errApp = errors.New("application error")

func main() {
	rootCmd.Flags().IntVar(&sliceAxis, "axis", 0, "Volume axis to slice along, negative counts from the end")
	rootCmd.Flags().BoolVar(&linkPanes, "link", false, "Synchronize slice index and zoom across panes")
	rootCmd.Flags().BoolVar(&noSlider, "no-slider", false, "Hide slice sliders")
	rootCmd.Flags().BoolVar(&noColorbar, "no-colorbar", false, "Hide colorbars")
	rootCmd.Flags().StringVar(&colormap, "cmap", "", "Colormap (gray, viridis)")
	rootCmd.AddCommand(versionCmd)

	if err := fang.Execute(context.Background(), rootCmd); err != nil {
		slog.Error("Exited with error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func version(_ *cobra.Command, _ []string) {
	fmt.Printf("voxtui - terminal volume viewer\n\n") //nolint:forbidigo
	fmt.Printf("  Version: %s\n", BuildVersion)       //nolint:forbidigo
	fmt.Printf("  Commit:  %s\n", BuildCommit)        //nolint:forbidigo
	fmt.Printf("  Built:   %s\n", BuildDate)          //nolint:forbidigo
	fmt.Printf("  Runtime: %s\n\n", BuildGoVersion)   //nolint:forbidigo
}

// run is the main entry point of voxtui.
func run(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	// If PROFILE is set, it will be used as the output file path for the
	// profiler.
	if len(os.Getenv("PROFILE")) > 0 {
		profile, err := os.Create(os.Getenv("PROFILE"))
		if err != nil {
			return errors.Join(err, errApp)
		}
		if errStart := pprof.StartCPUProfile(profile); errStart != nil {
			return errors.Join(errStart, errApp)
		}
		defer pprof.StopCPUProfile()
	}

	// Make sure our config home exists.
	if err := os.MkdirAll(path.Join(xdg.ConfigHome, config.ConfigDirName), 0o750); err != nil {
		return errors.Join(err, errApp)
	}

	configUpdates := make(chan config.Config)
	loader := config.NewLoader(configUpdates)
	userConfig, errConfig := loader.Read()
	if errConfig != nil {
		return errors.Join(errConfig, errApp)
	}
	applyFlags(cmd, &userConfig)

	// File based logger; the console belongs to the ui.
	level := slog.LevelInfo
	if userConfig.Debug {
		level = slog.LevelDebug
	}
	logFile, errLogger := config.LoggerInit(config.DefaultLogName, level)
	if errLogger != nil {
		return errors.Join(errLogger, errApp)
	}
	defer func(closer io.Closer) {
		if err := closer.Close(); err != nil {
			slog.Error("Failed to close log file", slog.String("error", err.Error()))
		}
	}(logFile)

	slog.Info("Starting voxtui", slog.String("version", BuildVersion),
		slog.String("commit", BuildCommit), slog.String("date", BuildDate),
		slog.String("go", runtime.Version()))

	app, errNew := New(userConfig, args, configUpdates)
	if errNew != nil {
		return errors.Join(errNew, errApp)
	}

	return app.Start(ctx)
}

// applyFlags lets explicit command line flags override config file values.
func applyFlags(cmd *cobra.Command, conf *config.Config) {
	if cmd.Flags().Changed("axis") {
		conf.SliceAxis = sliceAxis
	}
	if cmd.Flags().Changed("link") {
		conf.LinkPanes = linkPanes
	}
	if cmd.Flags().Changed("cmap") {
		conf.Colormap = colormap
	}
	if noSlider {
		conf.ShowSlider = false
	}
	if noColorbar {
		conf.ShowColorbar = false
	}
}
