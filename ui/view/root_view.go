package view

import (
	"image"
	"log/slog"
	"strings"

	"github.com/soocke/gallery-picker-go/config"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// RootView composes the top-level application layout and wires UI callbacks.
// It owns high-level subviews but exposes minimal exported fields for presenters.
type RootView struct {
	cfg     *config.Config
	cfgPath string
	logger  *slog.Logger

	// Subviews
	ConfigPanel ConfigPanel
	Preview     GalleryPreview
	Log         LogPanel

	// Widgets
	StatusLabel *LabelWidget
	pathEntry   *TextWidget
}

// Handlers groups the user-action callbacks the app wires into the view.
type Handlers struct {
	OnLoad    func()
	OnCapture func()
	OnPick    func()
	OnReset   func()
	OnExit    func()
}

func NewRootView(cfg *config.Config, cfgPath string, logger *slog.Logger) *RootView {
	return &RootView{cfg: cfg, cfgPath: cfgPath, logger: logger}
}

// Build constructs the layout. Handlers are invoked on user actions.
func (rv *RootView) Build(h Handlers) {
	if rv == nil {
		return
	}
	// Row 0: image path entry plus source buttons.
	pathLbl := Label(Txt("Image path"), Anchor("w"))
	Grid(pathLbl, Row(0), Column(0), Sticky("w"), Padx("0.4m"), Pady("0.3m"))
	rv.pathEntry = Text(Height(1), Width(48))
	Grid(rv.pathEntry, Row(0), Column(1), Columnspan(2), Sticky("we"), Padx("0.4m"), Pady("0.3m"))
	loadBtn := Button(Txt("Load Image"), Command(h.OnLoad))
	Grid(loadBtn, Row(0), Column(3), Sticky("we"), Padx("0.2m"), Pady("0.2m"))
	captureBtn := Button(Txt("Capture Screen"), Command(h.OnCapture))
	Grid(captureBtn, Row(0), Column(4), Sticky("we"), Padx("0.2m"), Pady("0.2m"))

	// Row 1: selection status and action buttons.
	rv.StatusLabel = Label(Txt("Cells: 0  Available: 0  Selected: 0  Current: -"), Borderwidth(1), Relief("ridge"))
	Grid(rv.StatusLabel, Row(1), Column(0), Columnspan(3), Sticky("we"), Padx("0.4m"), Pady("0.3m"))
	btnFrame := Frame()
	Grid(btnFrame, Row(1), Column(3), Columnspan(2), Sticky("ne"), Padx("0.3m"), Pady("0.3m"))
	pickBtn := Button(Txt("Pick Random"), Command(h.OnPick))
	Grid(pickBtn, In(btnFrame), Row(0), Column(0), Sticky("we"), Padx("0.2m"), Pady("0.2m"))
	resetBtn := Button(Txt("Reset"), Command(h.OnReset))
	Grid(resetBtn, In(btnFrame), Row(0), Column(1), Sticky("we"), Padx("0.2m"), Pady("0.2m"))
	exitBtn := Button(Txt("Exit"), Command(h.OnExit))
	Grid(exitBtn, In(btnFrame), Row(0), Column(2), Sticky("we"), Padx("0.2m"), Pady("0.2m"))

	// Detection threshold panel.
	rv.ConfigPanel = NewConfigPanel(rv.cfg, rv.cfgPath, rv.logger)
	endRow := rv.ConfigPanel.Build(2)

	// Annotated preview and diagnostic log.
	rv.Preview = NewGalleryPreview(endRow)
	rv.Log = NewLogPanel(endRow + 1)
}

// PathText returns the trimmed contents of the image path entry.
func (rv *RootView) PathText() string {
	if rv == nil || rv.pathEntry == nil {
		return ""
	}
	parts := rv.pathEntry.Get("1.0", END)
	return strings.TrimSpace(strings.Join(parts, ""))
}

// SetStatus updates the selection status label.
func (rv *RootView) SetStatus(text string) {
	if rv != nil && rv.StatusLabel != nil {
		rv.StatusLabel.Configure(Txt(text))
	}
}

// UpdateGallery proxies to the preview subview.
func (rv *RootView) UpdateGallery(img image.Image) {
	if rv != nil && rv.Preview != nil {
		rv.Preview.UpdateGallery(img)
	}
}

// UpdateCell proxies to the preview subview.
func (rv *RootView) UpdateCell(img image.Image) {
	if rv != nil && rv.Preview != nil {
		rv.Preview.UpdateCell(img)
	}
}

// ClearCell proxies to the preview subview.
func (rv *RootView) ClearCell() {
	if rv != nil && rv.Preview != nil {
		rv.Preview.ClearCell()
	}
}

// AppendLog proxies to the log panel.
func (rv *RootView) AppendLog(lines []string) {
	if rv != nil && rv.Log != nil {
		rv.Log.Append(lines)
	}
}

// SetConfigEditable toggles config panel editability.
func (rv *RootView) SetConfigEditable(enabled bool) {
	if rv != nil && rv.ConfigPanel != nil {
		rv.ConfigPanel.SetEditable(enabled)
	}
}
