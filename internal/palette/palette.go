// Package palette applies the ordering policy to an extracted color
// sequence before it is rendered.
package palette

import (
	"fmt"
	"slices"

	"github.com/vovakirdan/copycolors/internal/color"
	"github.com/vovakirdan/copycolors/internal/contrast"
)

// MaxExcluded is the most colors an exclusion list may hold.
const MaxExcluded = 5

// Exclude returns colors without any exact match in excluded, keeping order.
func Exclude(colors, excluded []color.Color) []color.Color {
	out := make([]color.Color, 0, len(colors))
	for _, c := range colors {
		if !slices.Contains(excluded, c) {
			out = append(out, c)
		}
	}
	return out
}

// ParseExcluded parses a hex exclusion list.
func ParseExcluded(values []string) ([]color.Color, error) {
	if len(values) > MaxExcluded {
		return nil, fmt.Errorf("palette: at most %d colors can be excluded, got %d", MaxExcluded, len(values))
	}

	out := make([]color.Color, 0, len(values))
	for _, v := range values {
		c, err := color.ParseHex(v)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

// SortByContrast orders colors from the highest contrast against ref to the
// lowest. Equal ratios keep their original order.
func SortByContrast(colors []color.Color, ref color.Color) []color.Color {
	out := slices.Clone(colors)
	slices.SortStableFunc(out, func(a, b color.Color) int {
		ra, rb := contrast.Ratio(a, ref), contrast.Ratio(b, ref)
		switch {
		case ra > rb:
			return -1
		case ra < rb:
			return 1
		default:
			return 0
		}
	})
	return out
}

// Reference picks the contrast reference from the --bcb/--bcw flags.
// Black wins when both are set; ok is false when neither is.
func Reference(bestOnBlack, bestOnWhite bool) (ref color.Color, ok bool) {
	switch {
	case bestOnBlack:
		return color.Black, true
	case bestOnWhite:
		return color.White, true
	default:
		return color.Color{}, false
	}
}
