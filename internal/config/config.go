// Package config provides YAML-based configuration loading for copycolors.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/copycolors/internal/canvas"
)

// Config is the full copycolors configuration.
type Config struct {
	Display DisplayConfig `yaml:"display"`
	Canvas  CanvasConfig  `yaml:"canvas"`
	History HistoryConfig `yaml:"history"`
	Log     LogConfig     `yaml:"log"`
	Serve   ServeConfig   `yaml:"serve"`
}

// DisplayConfig holds the default display flags. Command-line flags
// override them.
type DisplayConfig struct {
	Canvas bool `yaml:"canvas"` // swatch grid instead of inline list
	RGB    bool `yaml:"rgb"`    // R,G,B labels instead of #RRGGBB
	Clip   bool `yaml:"clip"`   // copy labels to the clipboard
}

// CanvasConfig sizes the swatch grid.
type CanvasConfig struct {
	HexSquare     int `yaml:"hex_square"`
	DecimalSquare int `yaml:"decimal_square"`
	RowSpacing    int `yaml:"row_spacing"`
	ColSpacing    int `yaml:"col_spacing"`
}

// Layout converts the canvas settings for the layout engine.
func (c CanvasConfig) Layout() canvas.Layout {
	return canvas.Layout{
		HexSquare:     c.HexSquare,
		DecimalSquare: c.DecimalSquare,
		RowSpacing:    c.RowSpacing,
		ColSpacing:    c.ColSpacing,
	}
}

// HistoryConfig controls the palette history database.
type HistoryConfig struct {
	Enabled bool   `yaml:"enabled"` // save every shown palette
	DB      string `yaml:"db"`
	Limit   int    `yaml:"limit"` // palettes listed by default
}

// LogConfig controls logging.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// ServeConfig configures the SSH palette browser.
type ServeConfig struct {
	Address     string        `yaml:"address"`
	HostKey     string        `yaml:"host_key"`
	IdleTimeout time.Duration `yaml:"idle_timeout"`
}

// Validate reports every invalid setting.
func (c Config) Validate() error {
	var errs []error

	if c.Canvas.HexSquare < 1 {
		errs = append(errs, fmt.Errorf("canvas.hex_square must be positive, got %d", c.Canvas.HexSquare))
	}
	if c.Canvas.DecimalSquare < 1 {
		errs = append(errs, fmt.Errorf("canvas.decimal_square must be positive, got %d", c.Canvas.DecimalSquare))
	}
	if c.Canvas.RowSpacing < 1 {
		errs = append(errs, fmt.Errorf("canvas.row_spacing must be at least 1, got %d", c.Canvas.RowSpacing))
	}
	if c.Canvas.ColSpacing < 0 {
		errs = append(errs, fmt.Errorf("canvas.col_spacing must not be negative, got %d", c.Canvas.ColSpacing))
	}
	if c.History.Limit < 0 {
		errs = append(errs, fmt.Errorf("history.limit must not be negative, got %d", c.History.Limit))
	}
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, fmt.Errorf("log.level: %w", err))
	}

	return errors.Join(errs...)
}
