package main

import (
	"fmt"
	"os"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/copycolors/internal/platform/tui"
	"github.com/vovakirdan/copycolors/internal/storage"
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse saved palettes interactively",
	Long: `Open an interactive list of saved palettes with a swatch preview.

Controls:
  Up/Down, j/k  - Move between palettes
  F             - Toggle hex / RGB labels
  C/Enter       - Copy the selected palette to the clipboard
  Q/Esc         - Quit`,
	Args: cobra.NoArgs,
	Run:  runBrowse,
}

func runBrowse(cmd *cobra.Command, args []string) {
	store, err := storage.Open(cfg.History.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening palette history: %v\n", err)
		os.Exit(1)
	}

	entries, err := store.RecentPalettes(cfg.History.Limit)
	store.Close()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving palettes: %v\n", err)
		os.Exit(1)
	}

	// Get terminal size early; the browser also receives resize events
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	m := tui.NewBrowserModel(entries, cfg.Canvas.Layout(), nil, clipboard.WriteAll, width, height)
	if err := tui.RunBrowser(m); err != nil {
		fmt.Fprintf(os.Stderr, "Error running browser: %v\n", err)
		os.Exit(1)
	}
}
