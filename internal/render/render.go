// Package render turns an ordered color sequence into one of the copycolors
// presentations: an inline labelled list, a swatch grid, styled fragments
// for a TUI, or a comma-joined clipboard string.
package render

import (
	"fmt"
	"slices"
	"strings"

	"github.com/vovakirdan/copycolors/internal/canvas"
	"github.com/vovakirdan/copycolors/internal/color"
	"github.com/vovakirdan/copycolors/internal/contrast"
	"github.com/vovakirdan/copycolors/internal/output"
)

// Mode selects what Display writes.
type Mode int

const (
	ModeInline Mode = iota // labels on one line
	ModeGrid               // swatch grid sized to the terminal
)

func (m Mode) String() string {
	switch m {
	case ModeInline:
		return "inline"
	case ModeGrid:
		return "grid"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Format selects the label text for a color.
type Format int

const (
	FormatHex     Format = iota // #RRGGBB
	FormatDecimal               // R,G,B
)

// Label formats c.
func (f Format) Label(c color.Color) string {
	if f == FormatDecimal {
		return c.Decimal()
	}
	return c.Hex()
}

// Options are the display flags resolved before a Renderer is built.
type Options struct {
	Mode      Mode
	Format    Format
	Clipboard bool // produce ClipboardText
	Layout    canvas.Layout
}

// DefaultOptions returns inline hex output with the default grid layout.
func DefaultOptions() Options {
	return Options{
		Mode:   ModeInline,
		Format: FormatHex,
		Layout: canvas.DefaultLayout(),
	}
}

// WidthFunc reports the current terminal width in columns.
type WidthFunc func() (int, error)

// Renderer renders a fixed color sequence.
type Renderer struct {
	colors []color.Color
	opts   Options
	out    output.Sink
	width  WidthFunc
}

// New creates a renderer. colors is copied; out and width are only used by
// Display and may be nil when only Fragments or ClipboardText are needed.
// A zero Layout is replaced by canvas.DefaultLayout.
func New(colors []color.Color, opts Options, out output.Sink, width WidthFunc) *Renderer {
	if opts.Layout == (canvas.Layout{}) {
		opts.Layout = canvas.DefaultLayout()
	}
	return &Renderer{
		colors: slices.Clone(colors),
		opts:   opts,
		out:    out,
		width:  width,
	}
}

// Colors returns a copy of the rendered sequence.
func (r *Renderer) Colors() []color.Color {
	return slices.Clone(r.colors)
}

// Display writes the sequence in the configured mode.
func (r *Renderer) Display() error {
	if r.out == nil {
		return fmt.Errorf("render: no output sink")
	}

	switch r.opts.Mode {
	case ModeInline:
		return r.inline()
	case ModeGrid:
		return r.grid()
	default:
		return fmt.Errorf("render: unknown mode %s", r.opts.Mode)
	}
}

// inline writes each label padded by one blank, bold, in its best contrast
// color on the swatch color, separated by commas.
func (r *Renderer) inline() error {
	if len(r.colors) == 0 {
		return nil
	}

	for i, c := range r.colors {
		if i > 0 {
			if err := r.out.Write(",", output.Style{}); err != nil {
				return err
			}
		}
		if err := r.out.Write(" "+r.opts.Format.Label(c)+" ", labelStyle(c)); err != nil {
			return err
		}
	}
	return r.out.Write("\n", output.Style{})
}

func (r *Renderer) grid() error {
	if len(r.colors) == 0 {
		return nil
	}
	if r.width == nil {
		return fmt.Errorf("render: grid mode needs a terminal width")
	}

	w, err := r.width()
	if err != nil {
		return fmt.Errorf("render: terminal width: %w", err)
	}

	g := r.opts.Layout.Geometry(len(r.colors), w, r.opts.Format == FormatDecimal)
	return canvas.Draw(r.out, g, r.colors, r.opts.Format.Label)
}

// ClipboardText returns the labels joined by commas. ok is false when
// clipboard export is disabled.
func (r *Renderer) ClipboardText() (text string, ok bool) {
	if !r.opts.Clipboard {
		return "", false
	}

	labels := make([]string, len(r.colors))
	for i, c := range r.colors {
		labels[i] = r.opts.Format.Label(c)
	}
	return strings.Join(labels, ","), true
}

func labelStyle(c color.Color) output.Style {
	st := output.Colors(contrast.Best(c, contrast.BlackWhite), c)
	st.Bold = true
	return st
}
