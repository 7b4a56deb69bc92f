package main

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/dustin/go-humanize"
	"github.com/voxtui/voxtui/internal/config"
	"github.com/voxtui/voxtui/internal/ui"
	"github.com/voxtui/voxtui/internal/vol"
)

const (
	demoExtent = 32
	demoSize   = 96
)

// App is the main application container.
type App struct {
	conf          config.Config
	panes         []ui.Pane
	configUpdates chan config.Config
}

// New loads the volumes named on the command line. Input shape problems
// surface here, before any ui or event manager exists.
func New(conf config.Config, args []string, configUpdates chan config.Config) (*App, error) {
	app := &App{conf: conf, configUpdates: configUpdates}

	if len(args) == 0 {
		// Two linked demo volumes show off share groups out of the box.
		app.conf.LinkPanes = true
		app.panes = []ui.Pane{
			{Title: "demo a", Volume: vol.Demo(demoExtent, demoSize, demoSize)},
			{Title: "demo b", Volume: vol.Demo(demoExtent, demoSize, demoSize)},
		}

		return app, nil
	}

	for _, arg := range args {
		volume, errLoad := vol.LoadStack(arg)
		if errLoad != nil {
			return nil, errLoad
		}
		if conf.SliceAxis != 0 {
			resliced, errReslice := volume.Reslice(conf.SliceAxis)
			if errReslice != nil {
				return nil, errReslice
			}
			volume = resliced
		}
		slog.Info("Loaded stack", slog.String("path", arg),
			slog.Int("slices", volume.Extent()),
			slog.String("size", humanize.Bytes(uint64(volume.SizeBytes()))))
		app.panes = append(app.panes, ui.Pane{Title: filepath.Base(arg), Volume: volume})
	}

	return app, nil
}

// Start brings up the ui and blocks until it exits.
func (app *App) Start(ctx context.Context) error {
	tui, errNew := ui.New(ctx, ui.Options{
		Version:      BuildVersion,
		Colormap:     app.conf.Colormap,
		ZoomScale:    app.conf.ZoomScale,
		CmapDelta:    app.conf.CmapDelta,
		ShowSlider:   app.conf.ShowSlider,
		ShowColorbar: app.conf.ShowColorbar,
		LinkPanes:    app.conf.LinkPanes,
	}, app.panes)
	if errNew != nil {
		return errNew
	}

	go app.watchConfig(ctx, tui)

	return tui.Run()
}

// watchConfig surfaces config file reloads in the status bar. Interaction
// settings apply on next start; a restart hint beats silently ignoring the
// edit.
func (app *App) watchConfig(ctx context.Context, tui *ui.UI) {
	for {
		select {
		case conf := <-app.configUpdates:
			app.conf = conf
			tui.Notify(fmt.Sprintf("Config reloaded, restart to apply (colormap=%s zoom=%.2g)",
				conf.Colormap, conf.ZoomScale))
		case <-ctx.Done():
			return
		}
	}
}
