package app

import (
	"log/slog"

	"github.com/soocke/gallery-picker-go/config"
	"github.com/soocke/gallery-picker-go/ui/model"
	"github.com/soocke/gallery-picker-go/ui/presenter"
	"github.com/soocke/gallery-picker-go/ui/view"
)

// Container assembles models, the presenter and the root view.
type Container struct {
	Config   *config.Config
	Logger   *slog.Logger
	Gallery  *model.GalleryModel
	Log      *model.LogModel
	RootView *view.RootView
	Picker   *presenter.PickerPresenter
}

// BuildContainer constructs all components. The session func is owned by the
// app wrapper, which swaps sessions as images are loaded.
func BuildContainer(cfg *config.Config, cfgPath string, logger *slog.Logger, session func() presenter.GallerySession) *Container {
	c := &Container{Config: cfg, Logger: logger}
	c.Gallery = model.NewGalleryModel()
	c.Log = model.NewLogModel()
	c.RootView = view.NewRootView(cfg, cfgPath, logger)
	c.Picker = presenter.NewPickerPresenter(session, c.RootView, c.Gallery, c.Log)
	return c
}
