package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// Config holds runtime configuration for grid detection and app behavior.
// Fields may be loaded from a JSON file and overridden by command-line flags.
type Config struct {
	Debug bool `json:"debug"`
	// Detection parameters
	ChannelDiffThreshold int     `json:"channel_diff_threshold"` // per-pixel RGB diff sum that marks an edge pixel (0..765)
	RowColFraction       float64 `json:"row_col_fraction"`       // fraction of a row/column that must be edge pixels
	LineProximity        int     `json:"line_proximity"`         // max gap in px between raw edges merged into one grid line
	MinCellSize          int     `json:"min_cell_size"`          // both cell dimensions must exceed this, in px
	MaxCellFraction      float64 `json:"max_cell_fraction"`      // both cell dimensions must stay under this fraction of the image

	// Screen capture region persistence; zero width/height means full screen.
	SelectionX int `json:"selection_x"`
	SelectionY int `json:"selection_y"`
	SelectionW int `json:"selection_w"`
	SelectionH int `json:"selection_h"`
}

// DefaultConfig returns a Config populated with standard defaults.
func DefaultConfig() *Config {
	return &Config{
		Debug:                false,
		ChannelDiffThreshold: 100,
		RowColFraction:       0.30,
		LineProximity:        10,
		MinCellSize:          50,
		MaxCellFraction:      0.90,
		SelectionX:           0,
		SelectionY:           0,
		SelectionW:           0,
		SelectionH:           0,
	}
}

// Validate rejects values outside sane ranges. Unlike a clamping scheme,
// an invalid configuration is an error the caller must handle before any
// detection run uses the config.
func (c *Config) Validate() error {
	if c.ChannelDiffThreshold <= 0 || c.ChannelDiffThreshold > 765 {
		return fmt.Errorf("channel_diff_threshold %d outside (0, 765]", c.ChannelDiffThreshold)
	}
	if c.RowColFraction <= 0 || c.RowColFraction >= 1 {
		return fmt.Errorf("row_col_fraction %g outside (0, 1)", c.RowColFraction)
	}
	if c.LineProximity <= 0 {
		return fmt.Errorf("line_proximity %d must be positive", c.LineProximity)
	}
	if c.MinCellSize < 1 {
		return fmt.Errorf("min_cell_size %d must be at least 1", c.MinCellSize)
	}
	if c.MaxCellFraction <= 0 || c.MaxCellFraction > 1 {
		return fmt.Errorf("max_cell_fraction %g outside (0, 1]", c.MaxCellFraction)
	}
	if c.SelectionW < 0 || c.SelectionH < 0 {
		return fmt.Errorf("selection %dx%d must not be negative", c.SelectionW, c.SelectionH)
	}
	return nil
}

// Load attempts to read configuration from the given JSON file path. If the file does not
// exist it returns DefaultConfig(). On JSON or validation error it returns defaults with
// the error, so the caller always gets a usable config.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}
	defer f.Close()
	dec := json.NewDecoder(f)
	if err := dec.Decode(cfg); err != nil {
		return DefaultConfig(), err
	}
	if err := cfg.Validate(); err != nil {
		return DefaultConfig(), err
	}
	return cfg, nil
}

// Save writes the configuration to the given path in JSON format.
func (c *Config) Save(path string) error {
	if err := c.Validate(); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(c)
}
