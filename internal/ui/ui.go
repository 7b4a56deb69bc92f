// Package ui is the terminal rendering collaborator: bubbletea models that
// draw panes, sliders and colorbars, and feed normalized events into the
// view engine.
package ui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"
	"github.com/voxtui/voxtui/internal/ui/styles"
	"github.com/voxtui/voxtui/internal/view"
	"github.com/voxtui/voxtui/internal/vol"
)

var ErrUIExit = errors.New("ui error returned")

// Pane describes one display region to construct. Exactly one of Volume
// and Image must be set.
type Pane struct {
	Title  string
	Volume *vol.Volume
	Image  *vol.Image
}

// Options carries the interaction settings the construction layer reads
// from config and flags.
type Options struct {
	Version      string
	Colormap     string
	ZoomScale    float64
	CmapDelta    float64
	ShowSlider   bool
	ShowColorbar bool
	// LinkPanes declares all volume panes as one slice share group and all
	// panes as one zoom share group.
	LinkPanes bool
}

type UI struct {
	program *tea.Program
}

// New builds the canvas: one engine session, one pane model per Pane, and
// the share groups requested by the options. Construction-time validation
// errors (bad share groups) surface here, never inside the event loop.
func New(ctx context.Context, opts Options, panes []Pane) (*UI, error) {
	zone.NewGlobal()

	sessions := view.NewSessions()
	session := sessions.Attach("voxtui")
	ramp := styles.RampByName(opts.Colormap)
	paneOpts := paneOptions{showSlider: opts.ShowSlider, showColorbar: opts.ShowColorbar}

	var (
		models    []*paneModel
		volumeIDs []string
		allIDs    []string
		dataBytes int
	)
	for _, pane := range panes {
		var model *paneModel
		if pane.Volume != nil {
			model = newVolumePane(session, pane.Title, pane.Volume, ramp, paneOpts)
			volumeIDs = append(volumeIDs, model.id)
			dataBytes += pane.Volume.SizeBytes()
		} else {
			model = newImagePane(session, pane.Title, pane.Image, ramp, paneOpts)
		}
		allIDs = append(allIDs, model.id)
		models = append(models, model)
	}

	// Scales apply to attached views, so set them after construction.
	session.SetZoomScale(opts.ZoomScale)
	session.SetCmapDelta(opts.CmapDelta)

	if opts.LinkPanes && len(volumeIDs) > 1 {
		if err := session.DeclareSliceGroup(volumeIDs...); err != nil {
			return nil, err
		}
	}
	if opts.LinkPanes && len(allIDs) > 1 {
		if err := session.DeclareZoomGroup(allIDs...); err != nil {
			return nil, err
		}
	}

	root := newRootModel(session, models,
		newStatusBarModel(opts.Version, dataBytes),
		newHelpModel(opts.Version))

	return &UI{
		program: tea.NewProgram(
			root,
			tea.WithAltScreen(),
			tea.WithMouseCellMotion(),
			tea.WithMouseAllMotion(),
			tea.WithContext(ctx),
			tea.WithFPS(30)),
	}, nil
}

func (t *UI) Run() error {
	if _, err := t.program.Run(); err != nil {
		return errors.Join(err, ErrUIExit)
	}

	return nil
}

func (t *UI) Send(msg tea.Msg) {
	t.program.Send(msg)
}

// Notify shows a transient message in the status bar.
func (t *UI) Notify(message string) {
	t.program.Send(statusMsg{Message: message})
}
