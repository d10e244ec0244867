package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/copycolors/internal/color"
	"github.com/vovakirdan/copycolors/internal/output"
	"github.com/vovakirdan/copycolors/internal/palette"
	"github.com/vovakirdan/copycolors/internal/render"
	"github.com/vovakirdan/copycolors/internal/storage"
)

var (
	flagCanvas  bool
	flagRGB     bool
	flagClip    bool
	flagExclude []string
	flagBCW     bool
	flagBCB     bool
	flagSave    bool
	flagSource  string
)

var showCmd = &cobra.Command{
	Use:   "show [colors...]",
	Short: "Render a list of colors",
	Long: `Render colors in the order given.

Colors are written as #RRGGBB, RRGGBB, #RGB or R,G,B. Without arguments
they are read from stdin, separated by whitespace.

Display options:
  --canvas   - Draw a grid of swatches sized to the terminal
  --rgb      - Label colors as R,G,B instead of #RRGGBB
  --clip     - Copy the labels, comma separated, to the clipboard

Ordering options:
  --exc-colors  - Drop up to 5 colors from the list
  --bcw         - Order from the best contrast with white to the least
  --bcb         - Order from the best contrast with black to the least
                  (when both are given, --bcb wins)

Examples:
  copycolors show '#264653' '#2A9D8F' '#E9C46A' '#F4A261' '#E76F51'
  copycolors show --canvas --rgb 255,0,0 0,255,0 0,0,255
  copycolors show --bcb -e '#FFFFFF' '#FFFFFF' '#777777' '#0000AA'
  copycolors show --save --source wallpaper.jpg '#101010' '#F0E0D0'`,
	Run: runShow,
}

func init() {
	showCmd.Flags().BoolVarP(&flagCanvas, "canvas", "c", false, "Show colors canvas")
	showCmd.Flags().BoolVarP(&flagRGB, "rgb", "r", false, "Print RGB code")
	showCmd.Flags().BoolVar(&flagClip, "clip", false, "Copy colors to the clipboard")
	showCmd.Flags().StringSliceVarP(&flagExclude, "exc-colors", "e", nil, "Colors to exclude in hexadecimal (up to 5)")
	showCmd.Flags().BoolVar(&flagBCW, "bcw", false, "Order colors from the best contrasting with white to the least")
	showCmd.Flags().BoolVar(&flagBCB, "bcb", false, "Order colors from the best contrasting with black to the least")
	showCmd.Flags().BoolVar(&flagSave, "save", false, "Save the palette to history")
	showCmd.Flags().StringVar(&flagSource, "source", "", "Source label stored with a saved palette")
}

func runShow(cmd *cobra.Command, args []string) {
	colors, err := inputColors(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	excluded, err := palette.ParseExcluded(flagExclude)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	colors = palette.Exclude(colors, excluded)
	if ref, ok := palette.Reference(flagBCB, flagBCW); ok {
		colors = palette.SortByContrast(colors, ref)
	}

	opts := displayOptions(cmd)
	r := render.New(colors, opts, output.NewTerminal(os.Stdout), terminalWidth)
	logger.Debug("rendering", "colors", len(colors), "mode", opts.Mode)

	if err := r.Display(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if text, ok := r.ClipboardText(); ok {
		if err := clipboard.WriteAll(text); err != nil {
			logger.Warn("could not copy to clipboard", "error", err)
		} else {
			logger.Info("copied to clipboard", "colors", len(colors))
		}
	}

	if flagSave || cfg.History.Enabled {
		savePalette(flagSource, r.Colors())
	}
}

// displayOptions merges the display flags over the config defaults. Only
// flags given on the command line override the config.
func displayOptions(cmd *cobra.Command) render.Options {
	flags := cmd.Flags()
	canvas := cfg.Display.Canvas
	if flags.Changed("canvas") {
		canvas = flagCanvas
	}
	rgb := cfg.Display.RGB
	if flags.Changed("rgb") {
		rgb = flagRGB
	}
	clip := cfg.Display.Clip
	if flags.Changed("clip") {
		clip = flagClip
	}

	opts := render.Options{
		Mode:      render.ModeInline,
		Format:    render.FormatHex,
		Clipboard: clip,
		Layout:    cfg.Canvas.Layout(),
	}
	if canvas {
		opts.Mode = render.ModeGrid
	}
	if rgb {
		opts.Format = render.FormatDecimal
	}
	return opts
}

// inputColors parses args, or stdin when there are none.
func inputColors(args []string) ([]color.Color, error) {
	if len(args) > 0 {
		return parseColors(args)
	}
	if term.IsTerminal(int(os.Stdin.Fd())) {
		return nil, errors.New("no colors given; pass them as arguments or on stdin")
	}

	words, err := readWords(os.Stdin)
	if err != nil {
		return nil, fmt.Errorf("reading stdin: %w", err)
	}
	return parseColors(words)
}

func parseColors(values []string) ([]color.Color, error) {
	colors := make([]color.Color, 0, len(values))
	for _, v := range values {
		c, err := color.Parse(v)
		if err != nil {
			return nil, err
		}
		colors = append(colors, c)
	}
	return colors, nil
}

func readWords(r io.Reader) ([]string, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	var words []string
	for sc.Scan() {
		words = append(words, sc.Text())
	}
	return words, sc.Err()
}

// terminalWidth reports the width of the terminal on stdout.
func terminalWidth() (int, error) {
	w, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return 0, fmt.Errorf("stdout is not a terminal: %w", err)
	}
	return w, nil
}

func savePalette(source string, colors []color.Color) {
	if len(colors) == 0 {
		return
	}

	store, err := storage.Open(cfg.History.DB)
	if err != nil {
		logger.Warn("could not open palette history", "error", err)
		return
	}
	defer store.Close()

	id, err := store.SavePalette(source, colors)
	if err != nil {
		logger.Warn("could not save palette", "error", err)
		return
	}
	logger.Info("palette saved", "id", id)
}
