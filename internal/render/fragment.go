package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/copycolors/internal/output"
)

// nbsp pads fragment labels so TUI layout code does not trim them.
const nbsp = "\u00a0"

// Fragment is one independently styled piece of text.
type Fragment struct {
	Text  string
	Style output.Style
}

// Fragments returns the inline presentation as data: one styled fragment
// per color with a plain comma fragment between neighbours.
func (r *Renderer) Fragments() []Fragment {
	if len(r.colors) == 0 {
		return nil
	}

	frags := make([]Fragment, 0, 2*len(r.colors)-1)
	for i, c := range r.colors {
		if i > 0 {
			frags = append(frags, Fragment{Text: ","})
		}
		frags = append(frags, Fragment{
			Text:  nbsp + r.opts.Format.Label(c) + nbsp,
			Style: labelStyle(c),
		})
	}
	return frags
}

// RenderFragments joins fragments into one string styled by r.
func RenderFragments(r *lipgloss.Renderer, frags []Fragment) string {
	var sb strings.Builder
	for _, f := range frags {
		if f.Style.Plain() {
			sb.WriteString(f.Text)
			continue
		}
		sb.WriteString(f.Style.Lipgloss(r).Render(f.Text))
	}
	return sb.String()
}

// WriteFragments writes fragments to a sink.
func WriteFragments(out output.Sink, frags []Fragment) error {
	for _, f := range frags {
		if err := out.Write(f.Text, f.Style); err != nil {
			return err
		}
	}
	return nil
}
