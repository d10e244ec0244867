package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/copycolors/internal/output"
	"github.com/vovakirdan/copycolors/internal/render"
	"github.com/vovakirdan/copycolors/internal/storage"
)

var flagLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List saved palettes",
	Long: `Display the most recently saved palettes, newest first.

Examples:
  copycolors history
  copycolors history --limit 5 --rgb
  copycolors history show 12 --canvas
  copycolors history rm 12`,
	Args: cobra.NoArgs,
	Run:  runHistory,
}

var historyShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Render a saved palette",
	Long: `Render one saved palette with the same display options as 'show'.

Examples:
  copycolors history show 12
  copycolors history show 12 --canvas --rgb
  copycolors history show 12 --clip`,
	Args: cobra.ExactArgs(1),
	Run:  runHistoryShow,
}

var historyRmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Delete a saved palette",
	Args:  cobra.ExactArgs(1),
	Run:   runHistoryRm,
}

func init() {
	historyCmd.Flags().IntVarP(&flagLimit, "limit", "n", 0, "Number of palettes to list (default from config)")
	historyCmd.Flags().BoolVarP(&flagRGB, "rgb", "r", false, "Print RGB code")

	historyShowCmd.Flags().BoolVarP(&flagCanvas, "canvas", "c", false, "Show colors canvas")
	historyShowCmd.Flags().BoolVarP(&flagRGB, "rgb", "r", false, "Print RGB code")
	historyShowCmd.Flags().BoolVar(&flagClip, "clip", false, "Copy colors to the clipboard")

	historyCmd.AddCommand(historyShowCmd)
	historyCmd.AddCommand(historyRmCmd)
}

func runHistory(cmd *cobra.Command, args []string) {
	store, err := storage.Open(cfg.History.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening palette history: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	limit := flagLimit
	if limit <= 0 {
		limit = cfg.History.Limit
	}

	entries, err := store.RecentPalettes(limit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving palettes: %v\n", err)
		os.Exit(1)
	}

	if len(entries) == 0 {
		fmt.Println("No palettes saved yet.")
		fmt.Println()
		fmt.Println("Run 'copycolors show --save <colors>' to save one.")
		return
	}

	format := render.FormatHex
	if flagRGB || cfg.Display.RGB {
		format = render.FormatDecimal
	}

	if err := listPalettes(output.NewTerminal(os.Stdout), entries, format); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// listPalettes writes one header line and one line of styled labels per
// entry.
func listPalettes(out output.Sink, entries []storage.PaletteEntry, format render.Format) error {
	opts := render.DefaultOptions()
	opts.Format = format

	for _, e := range entries {
		header := fmt.Sprintf("  %-4d  %s  %s\n  ", e.ID, e.CreatedAt.Format("2006-01-02 15:04"), e.Source)
		if err := out.Write(header, output.Style{}); err != nil {
			return err
		}
		if err := render.WriteFragments(out, render.New(e.Colors, opts, nil, nil).Fragments()); err != nil {
			return err
		}
		if err := out.Write("\n\n", output.Style{}); err != nil {
			return err
		}
	}
	return nil
}

func runHistoryShow(cmd *cobra.Command, args []string) {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid palette id %q\n", args[0])
		os.Exit(1)
	}

	store, err := storage.Open(cfg.History.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening palette history: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	r, err := showPalette(store, id, displayOptions(cmd), output.NewTerminal(os.Stdout), terminalWidth)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if text, ok := r.ClipboardText(); ok {
		if err := clipboard.WriteAll(text); err != nil {
			logger.Warn("could not copy to clipboard", "error", err)
		} else {
			logger.Info("copied to clipboard", "id", id)
		}
	}
}

// showPalette loads a saved palette and displays it.
func showPalette(store *storage.Store, id int64, opts render.Options, out output.Sink, width render.WidthFunc) (*render.Renderer, error) {
	entry, err := store.PaletteByID(id)
	if err != nil {
		return nil, err
	}

	r := render.New(entry.Colors, opts, out, width)
	if err := r.Display(); err != nil {
		return nil, err
	}
	return r, nil
}

func runHistoryRm(cmd *cobra.Command, args []string) {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid palette id %q\n", args[0])
		os.Exit(1)
	}

	store, err := storage.Open(cfg.History.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening palette history: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if err := store.DeletePalette(id); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Deleted palette %d.\n", id)
}
