// Package output is the write side of every render: a Sink receives text
// together with the style it should be drawn in. The Terminal sink turns
// styles into ANSI sequences, the Recorder keeps them as data for tests.
package output

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/vovakirdan/copycolors/internal/color"
)

// resetSeq restores default terminal attributes.
const resetSeq = termenv.CSI + termenv.ResetSeq + "m"

// Style describes how a piece of text is drawn. The zero value is plain
// text in the terminal's default colors.
type Style struct {
	Foreground color.Color
	Background color.Color
	Colored    bool // Foreground and Background apply
	Bold       bool
}

// Plain reports whether the style leaves the terminal state untouched.
func (s Style) Plain() bool {
	return !s.Colored && !s.Bold
}

// Colors returns a bold-less style with the given colors.
func Colors(fg, bg color.Color) Style {
	return Style{Foreground: fg, Background: bg, Colored: true}
}

// Lipgloss converts the style for the given renderer.
func (s Style) Lipgloss(r *lipgloss.Renderer) lipgloss.Style {
	st := r.NewStyle()
	if s.Colored {
		st = st.Foreground(s.Foreground.Terminal()).Background(s.Background.Terminal())
	}
	if s.Bold {
		st = st.Bold(true)
	}
	return st
}

// Sink receives styled text. Implementations must leave no style active
// once Write returns, whether or not it succeeded.
type Sink interface {
	Write(text string, style Style) error
}

// Terminal writes styled text as ANSI sequences through a lipgloss renderer.
type Terminal struct {
	w        io.Writer
	renderer *lipgloss.Renderer
}

// NewTerminal creates a sink writing to w. The color profile is detected
// from w.
func NewTerminal(w io.Writer) *Terminal {
	return &Terminal{w: w, renderer: lipgloss.NewRenderer(w)}
}

// NewTerminalProfile creates a sink with a fixed color profile.
func NewTerminalProfile(w io.Writer, profile termenv.Profile) *Terminal {
	r := lipgloss.NewRenderer(w)
	r.SetColorProfile(profile)
	return &Terminal{w: w, renderer: r}
}

// NewTerminalWithRenderer creates a sink that shares an existing renderer,
// e.g. one bound to an SSH session.
func NewTerminalWithRenderer(w io.Writer, r *lipgloss.Renderer) *Terminal {
	return &Terminal{w: w, renderer: r}
}

// Renderer exposes the lipgloss renderer backing the sink.
func (t *Terminal) Renderer() *lipgloss.Renderer {
	return t.renderer
}

// Write draws text in the given style. Styled text is wrapped in its own
// set/reset pair; if the write fails partway a reset is still attempted.
func (t *Terminal) Write(text string, style Style) (err error) {
	if style.Plain() {
		_, err = io.WriteString(t.w, text)
		return err
	}

	defer func() {
		if err != nil {
			_, _ = io.WriteString(t.w, resetSeq)
		}
	}()
	_, err = io.WriteString(t.w, style.Lipgloss(t.renderer).Render(text))
	return err
}

// Span is one recorded write.
type Span struct {
	Text  string
	Style Style
}

// Recorder is an in-memory Sink.
type Recorder struct {
	Spans []Span
}

// Write records the span. It never fails.
func (r *Recorder) Write(text string, style Style) error {
	r.Spans = append(r.Spans, Span{Text: text, Style: style})
	return nil
}

// String returns the recorded text without styling.
func (r *Recorder) String() string {
	var sb strings.Builder
	for _, s := range r.Spans {
		sb.WriteString(s.Text)
	}
	return sb.String()
}

// Lines splits the recorded text on line breaks. The text after the final
// line break, if empty, is dropped.
func (r *Recorder) Lines() []string {
	s := r.String()
	if s == "" {
		return nil
	}
	lines := strings.Split(s, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
