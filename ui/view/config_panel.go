package view

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/soocke/gallery-picker-go/config"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// ConfigPanel encapsulates the detection threshold form and apply logic.
// It owns its widgets and writes back into *config.Config on ApplyChanges.
type ConfigPanel interface {
	Build(startRow int) (endRow int) // constructs widgets starting at startRow, returns next free row
	SetEditable(enabled bool)
	ApplyChanges() bool // parses widget text into underlying config and persists; false when rejected
}

type configPanel struct {
	cfg      *config.Config
	cfgPath  string
	logger   *slog.Logger
	applyBtn *ButtonWidget
	widgets  map[string]*TextWidget // keyed by internal field id
}

// NewConfigPanel creates the view bound to cfg.
func NewConfigPanel(cfg *config.Config, cfgPath string, logger *slog.Logger) ConfigPanel {
	return &configPanel{cfg: cfg, cfgPath: cfgPath, logger: logger, widgets: make(map[string]*TextWidget)}
}

func (v *configPanel) Build(startRow int) (row int) {
	c := v.cfg
	row = startRow
	makeRow := func(id, label, value string) {
		lbl := Label(Txt(label), Anchor("w"))
		Grid(lbl, Row(row), Column(0), Sticky("w"), Padx("0.4m"), Pady("0.15m"))
		w := Text(Height(1), Width(16))
		Grid(w, Row(row), Column(1), Sticky("we"), Padx("0.4m"), Pady("0.15m"))
		w.Delete("1.0", END)
		w.Insert("1.0", value)
		v.widgets[id] = w
		row++
	}
	makeRow("channelDiffThreshold", "Channel Diff Threshold (1-765)", fmt.Sprintf("%d", c.ChannelDiffThreshold))
	makeRow("rowColFraction", "Row/Col Edge Fraction (0-1)", fmt.Sprintf("%.2f", c.RowColFraction))
	makeRow("lineProximity", "Line Proximity Px", fmt.Sprintf("%d", c.LineProximity))
	makeRow("minCellSize", "Min Cell Size Px", fmt.Sprintf("%d", c.MinCellSize))
	makeRow("maxCellFraction", "Max Cell Fraction (0-1)", fmt.Sprintf("%.2f", c.MaxCellFraction))
	v.applyBtn = Button(Txt("Apply Changes"), Command(func() { v.ApplyChanges() }))
	Grid(v.applyBtn, Row(row), Column(0), Columnspan(2), Sticky("we"), Padx("0.4m"), Pady("0.3m"))
	row++
	return row
}

func (v *configPanel) SetEditable(enabled bool) {
	state := "disabled"
	if enabled {
		state = "normal"
	}
	for _, w := range v.widgets {
		if w != nil {
			w.Configure(State(state))
		}
	}
	if v.applyBtn != nil {
		v.applyBtn.Configure(State(state))
	}
}

func (v *configPanel) text(w *TextWidget) string {
	if w == nil {
		return ""
	}
	parts := w.Get("1.0", END)
	return strings.Join(parts, "")
}

// ApplyChanges parses the form into a config copy and only adopts it when
// validation passes; an invalid form never clobbers the active config.
func (v *configPanel) ApplyChanges() bool {
	if v.cfg == nil {
		return false
	}
	cfg := *v.cfg // copy
	assignFloat := func(id string, dst *float64) {
		if w := v.widgets[id]; w != nil {
			if f, err := strconv.ParseFloat(strings.TrimSpace(v.text(w)), 64); err == nil {
				*dst = f
			}
		}
	}
	assignInt := func(id string, dst *int) {
		if w := v.widgets[id]; w != nil {
			if i, err := strconv.Atoi(strings.TrimSpace(v.text(w))); err == nil {
				*dst = i
			}
		}
	}
	assignInt("channelDiffThreshold", &cfg.ChannelDiffThreshold)
	assignFloat("rowColFraction", &cfg.RowColFraction)
	assignInt("lineProximity", &cfg.LineProximity)
	assignInt("minCellSize", &cfg.MinCellSize)
	assignFloat("maxCellFraction", &cfg.MaxCellFraction)
	if verr := cfg.Validate(); verr != nil {
		if v.logger != nil {
			v.logger.Error("config rejected", "error", verr)
		}
		return false
	}
	*v.cfg = cfg
	if err := v.cfg.Save(v.cfgPath); err != nil {
		if v.logger != nil {
			v.logger.Error("config save failed", "error", err)
		}
	} else if v.logger != nil {
		v.logger.Info("config saved", "path", v.cfgPath)
	}
	return true
}
