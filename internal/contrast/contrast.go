// Package contrast picks readable text colors for arbitrary backgrounds
// using WCAG-style contrast ratios.
package contrast

import "github.com/vovakirdan/copycolors/internal/color"

// BlackWhite is the default candidate set for label text.
var BlackWhite = []color.Color{color.Black, color.White}

// Luminance returns the relative luminance of c in [0, 1].
// Channels are normalized linearly; no gamma curve is applied.
func Luminance(c color.Color) float64 {
	r := float64(c.R) / 255
	g := float64(c.G) / 255
	b := float64(c.B) / 255
	return 0.2126*r + 0.7152*g + 0.0722*b
}

// Ratio returns the contrast ratio between a and b. It is symmetric and
// always >= 1.
func Ratio(a, b color.Color) float64 {
	la, lb := Luminance(a), Luminance(b)
	if la < lb {
		la, lb = lb, la
	}
	return (la + 0.05) / (lb + 0.05)
}

// Best returns the candidate with the highest contrast against bg.
// Ties go to the earlier candidate. An empty candidate list yields bg's
// opposite among black and white.
func Best(bg color.Color, candidates []color.Color) color.Color {
	if len(candidates) == 0 {
		candidates = BlackWhite
	}

	best := candidates[0]
	bestRatio := Ratio(bg, best)
	for _, c := range candidates[1:] {
		if r := Ratio(bg, c); r > bestRatio {
			best, bestRatio = c, r
		}
	}
	return best
}
