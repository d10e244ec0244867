// copycolors renders color palettes in the terminal.
//
// Usage:
//
//	copycolors show <colors...>   - Print colors inline or as a swatch grid
//	copycolors history            - List saved palettes
//	copycolors history rm <id>    - Delete a saved palette
//	copycolors browse             - Browse saved palettes interactively
//	copycolors serve              - Serve the palette browser over SSH
//
// Global flags:
//
//	--config <path>     - Config file (default: ~/.copycolors/config.yaml)
//	--db <path>         - Palette history database
//	--log-level <level> - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/copycolors/internal/config"
)

var (
	// Global flags
	flagConfig   string
	flagDBPath   string
	flagLogLevel string

	// Resolved in PersistentPreRunE
	cfg    config.Config
	logger *log.Logger
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "copycolors",
	Short: "copycolors - Show color palettes in your terminal",
	Long: `copycolors renders an ordered list of colors in the terminal, either as
an inline list of labels or as a grid of color swatches sized to the
terminal, and can copy the labels to the clipboard.

Available commands:
  show     - Render colors given as arguments or on stdin
  history  - List saved palettes
  browse   - Interactive palette browser
  serve    - Serve the palette browser over SSH

Examples:
  copycolors show '#1D3557' '#457B9D' '#A8DADC'
  copycolors show --canvas --rgb 255,0,0 0,255,0
  echo '#000000 #FFFFFF' | copycolors show --clip
  copycolors browse`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to palette history database (default from config)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(browseCmd)
	rootCmd.AddCommand(serveCmd)
}

// setup loads the configuration and creates the logger.
func setup(cmd *cobra.Command, _ []string) error {
	loaded, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	cfg = loaded

	if flagDBPath != "" {
		cfg.History.DB = flagDBPath
	}
	if flagLogLevel != "" {
		cfg.Log.Level = flagLogLevel
	}

	level, err := log.ParseLevel(cfg.Log.Level)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", cfg.Log.Level, err)
	}

	logger = log.NewWithOptions(os.Stderr, log.Options{
		Level:           level,
		ReportTimestamp: level == log.DebugLevel,
		Prefix:          "copycolors",
	})
	logger.Debug("configuration loaded", "config", flagConfig, "db", cfg.History.DB)
	return nil
}
