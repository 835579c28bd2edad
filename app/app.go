package app

import (
	"errors"
	"fmt"
	"image"
	"log/slog"
	"sync/atomic"
	"time"

	tk "modernc.org/tk9.0"

	"github.com/soocke/gallery-picker-go/capture"
	"github.com/soocke/gallery-picker-go/config"
	"github.com/soocke/gallery-picker-go/debug"
	"github.com/soocke/gallery-picker-go/domain/picker"
	"github.com/soocke/gallery-picker-go/ui/images"
	"github.com/soocke/gallery-picker-go/ui/presenter"
	"github.com/soocke/gallery-picker-go/ui/theme"
	"github.com/soocke/gallery-picker-go/ui/view"
)

const (
	tick          = 100 * time.Millisecond
	statsInterval = 5 * time.Second
)

type app struct {
	config  *config.Config
	cfgPath string
	logger  *slog.Logger
	width   int
	height  int
	afterID string

	// Current gallery session. Replaced wholesale when a new image is
	// loaded so the UI tick never sees a half-built grid.
	session atomic.Pointer[Session]

	container *Container
}

func NewApp(title string, width, height int, cfg *config.Config, cfgPath string, logger *slog.Logger) *app {
	a := &app{config: cfg, cfgPath: cfgPath, logger: logger, width: width, height: height}

	tk.App.WmTitle(title)
	tk.WmProtocol(tk.App, "WM_DELETE_WINDOW", a.exitHandler)
	tk.WmGeometry(tk.App, fmt.Sprintf("%dx%d+100+100", width, height))
	return a
}

func (a *app) Start() {
	theme.InitStyles()

	a.container = BuildContainer(a.config, a.cfgPath, a.logger, func() presenter.GallerySession {
		if s := a.session.Load(); s != nil {
			return s
		}
		return nil
	})
	a.container.RootView.Build(view.Handlers{
		OnLoad:    a.loadImage,
		OnCapture: a.captureScreen,
		OnPick:    a.pick,
		OnReset:   a.reset,
		OnExit:    a.exitHandler,
	})
	a.container.Picker.Schedule = a.scheduleUpdate

	if a.config.Debug {
		debug.StartStatsLogger(statsInterval, a.logger)
	}

	// Kick off the UI poll loop.
	a.scheduleUpdate()

	tk.App.Wait()
}

func (a *app) loadImage() {
	path := a.container.RootView.PathText()
	if path == "" {
		a.container.RootView.AppendLog([]string{"[load] no image path given"})
		return
	}
	frame, err := images.LoadRGBA(path)
	if err != nil {
		a.logger.Error("image load failed", "path", path, "error", err)
		a.container.RootView.AppendLog([]string{fmt.Sprintf("[load] %v", err)})
		return
	}
	a.replaceSession(frame, path)
}

func (a *app) captureScreen() {
	frame, err := capture.GrabConfigured(a.config)
	if err != nil {
		a.logger.Error("screen capture failed", "error", err)
		a.container.RootView.AppendLog([]string{fmt.Sprintf("[capture] %v", err)})
		return
	}
	a.replaceSession(frame, "screen")
}

func (a *app) replaceSession(frame *image.RGBA, source string) {
	s := NewSession(frame, a.config, nil, a.logger)
	a.session.Store(s)
	a.logger.Info("session replaced", "source", source, "session", s.ID(), "cells", s.CellCount())
}

func (a *app) pick() {
	s := a.session.Load()
	if s == nil {
		a.container.RootView.AppendLog([]string{"[pick] no image loaded"})
		return
	}
	if _, err := s.Draw(); err != nil && !errors.Is(err, picker.ErrNoneAvailable) {
		a.logger.Error("draw failed", "error", err)
	}
}

func (a *app) reset() {
	if s := a.session.Load(); s != nil {
		s.Reset()
	}
}

func (a *app) exitHandler() {
	if a.afterID != "" {
		tk.TclAfterCancel(a.afterID)
		a.afterID = ""
	}
	tk.Destroy(tk.App)
}

func (a *app) scheduleUpdate() {
	// Schedule the next tick with TclAfter to stay on Tk's event loop thread.
	a.afterID = tk.TclAfter(tick, func() { a.container.Picker.Tick() })
}
