package config

import (
	_ "embed"
	"time"

	"github.com/vovakirdan/copycolors/internal/canvas"
)

//go:embed defaults/copycolors.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	l := canvas.DefaultLayout()
	return Config{
		Canvas: CanvasConfig{
			HexSquare:     l.HexSquare,
			DecimalSquare: l.DecimalSquare,
			RowSpacing:    l.RowSpacing,
			ColSpacing:    l.ColSpacing,
		},
		History: HistoryConfig{
			Enabled: false,
			DB:      "~/.copycolors/palettes.db",
			Limit:   20,
		},
		Log: LogConfig{
			Level: "info",
		},
		Serve: ServeConfig{
			Address:     ":23235",
			IdleTimeout: 30 * time.Minute,
		},
	}
}
