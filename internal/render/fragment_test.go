package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/copycolors/internal/color"
	"github.com/vovakirdan/copycolors/internal/output"
)

func TestFragments(t *testing.T) {
	colors := []color.Color{color.Black, color.RGB(128, 128, 128), color.White}
	frags := New(colors, DefaultOptions(), nil, nil).Fragments()

	require.Len(t, frags, 5)
	assert.Equal(t, "\u00a0#000000\u00a0", frags[0].Text)
	assert.Equal(t, Fragment{Text: ","}, frags[1])
	assert.Equal(t, "\u00a0#808080\u00a0", frags[2].Text)
	assert.Equal(t, Fragment{Text: ","}, frags[3])
	assert.Equal(t, "\u00a0#FFFFFF\u00a0", frags[4].Text)

	for i, c := range colors {
		f := frags[2*i]
		assert.True(t, f.Style.Bold)
		assert.True(t, f.Style.Colored)
		assert.Equal(t, c, f.Style.Background)
	}
	assert.Equal(t, color.White, frags[0].Style.Foreground)
	assert.Equal(t, color.Black, frags[2].Style.Foreground)
	assert.Equal(t, color.Black, frags[4].Style.Foreground)
}

func TestFragmentsMatchInline(t *testing.T) {
	colors := []color.Color{color.RGB(12, 200, 40), color.RGB(250, 3, 3)}
	opts := DefaultOptions()
	opts.Format = FormatDecimal

	var rec output.Recorder
	r := New(colors, opts, &rec, nil)
	require.NoError(t, r.Display())

	frags := r.Fragments()
	require.Len(t, frags, 3)
	for i, f := range frags {
		span := rec.Spans[i]
		assert.Equal(t, span.Style, f.Style)
		assert.Equal(t, span.Text, strings.ReplaceAll(f.Text, "\u00a0", " "))
	}
}

func TestSingleFragmentHasNoComma(t *testing.T) {
	frags := New([]color.Color{color.White}, DefaultOptions(), nil, nil).Fragments()
	require.Len(t, frags, 1)
}

func TestRenderFragments(t *testing.T) {
	frags := New([]color.Color{color.Black, color.White}, DefaultOptions(), nil, nil).Fragments()

	r := lipgloss.NewRenderer(&bytes.Buffer{})
	r.SetColorProfile(termenv.Ascii)
	plain := RenderFragments(r, frags)
	assert.Contains(t, plain, "#000000")
	assert.Contains(t, plain, ",")
	assert.Contains(t, plain, "#FFFFFF")

	r.SetColorProfile(termenv.TrueColor)
	styled := RenderFragments(r, frags)
	assert.Contains(t, styled, termenv.CSI)
}

func TestWriteFragments(t *testing.T) {
	frags := New([]color.Color{color.Black, color.White}, DefaultOptions(), nil, nil).Fragments()

	var rec output.Recorder
	require.NoError(t, WriteFragments(&rec, frags))
	assert.Len(t, rec.Spans, 3)
}
