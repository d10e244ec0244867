package palette

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/copycolors/internal/color"
)

func TestExclude(t *testing.T) {
	red, green, blue := color.RGB(255, 0, 0), color.RGB(0, 255, 0), color.RGB(0, 0, 255)
	colors := []color.Color{red, color.Black, green, color.White, blue}

	got := Exclude(colors, []color.Color{color.Black, color.White})
	assert.Equal(t, []color.Color{red, green, blue}, got)

	assert.Equal(t, colors, Exclude(colors, nil))
	assert.Empty(t, Exclude(nil, []color.Color{red}))
}

func TestParseExcluded(t *testing.T) {
	got, err := ParseExcluded([]string{"#000000", "ffffff"})
	require.NoError(t, err)
	assert.Equal(t, []color.Color{color.Black, color.White}, got)

	_, err = ParseExcluded([]string{"#1", "#2", "#3", "#4", "#5", "#6"})
	assert.Error(t, err)

	_, err = ParseExcluded([]string{"nope"})
	assert.ErrorIs(t, err, color.ErrInvalidHex)
}

func TestSortByContrast(t *testing.T) {
	dark := color.RGB(20, 20, 20)
	mid := color.RGB(128, 128, 128)
	light := color.RGB(240, 240, 240)
	colors := []color.Color{mid, light, dark}

	assert.Equal(t, []color.Color{light, mid, dark}, SortByContrast(colors, color.Black))
	assert.Equal(t, []color.Color{dark, mid, light}, SortByContrast(colors, color.White))

	// Input is left untouched.
	assert.Equal(t, []color.Color{mid, light, dark}, colors)
}

func TestSortByContrastStable(t *testing.T) {
	a := color.RGB(10, 10, 10)
	b := color.RGB(10, 10, 10)
	c := color.RGB(200, 200, 200)
	got := SortByContrast([]color.Color{a, c, b}, color.White)
	assert.Equal(t, []color.Color{a, b, c}, got)
}

func TestReference(t *testing.T) {
	ref, ok := Reference(true, true)
	assert.True(t, ok)
	assert.Equal(t, color.Black, ref)

	ref, ok = Reference(false, true)
	assert.True(t, ok)
	assert.Equal(t, color.White, ref)

	_, ok = Reference(false, false)
	assert.False(t, ok)
}
