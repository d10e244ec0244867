// Package color defines the RGB value type rendered by copycolors and its
// textual formats.
package color

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

var (
	// ErrInvalidHex is returned when a string is not a #RRGGBB or #RGB color.
	ErrInvalidHex = errors.New("color: invalid hex color")
	// ErrInvalidDecimal is returned when a string is not an R,G,B triple.
	ErrInvalidDecimal = errors.New("color: invalid decimal color")
)

// Color is a 24-bit RGB color. Equality is component-wise.
type Color struct {
	R, G, B uint8
}

// Predefined colors used as contrast candidates.
var (
	Black = Color{0, 0, 0}
	White = Color{255, 255, 255}
)

// RGB is a convenience constructor.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// Hex formats the color as #RRGGBB with uppercase digits.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// Decimal formats the color as R,G,B without padding.
func (c Color) Decimal() string {
	return fmt.Sprintf("%d,%d,%d", c.R, c.G, c.B)
}

// String implements fmt.Stringer using the hex form.
func (c Color) String() string {
	return c.Hex()
}

// Terminal returns the true-color lipgloss representation of c.
func (c Color) Terminal() lipgloss.Color {
	return lipgloss.Color(c.Hex())
}

// ParseHex parses #RRGGBB, RRGGBB, #RGB or RGB (case-insensitive).
func ParseHex(s string) (Color, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	if len(s) != 7 && len(s) != 4 {
		return Color{}, fmt.Errorf("%w: %q", ErrInvalidHex, s)
	}
	for _, r := range s[1:] {
		if !isHexDigit(r) {
			return Color{}, fmt.Errorf("%w: %q", ErrInvalidHex, s)
		}
	}

	cf, err := colorful.Hex(s)
	if err != nil {
		return Color{}, fmt.Errorf("%w: %q: %v", ErrInvalidHex, s, err)
	}
	r, g, b := cf.RGB255()
	return Color{R: r, G: g, B: b}, nil
}

// ParseDecimal parses an R,G,B triple such as "255,128,0".
func ParseDecimal(s string) (Color, error) {
	parts := strings.Split(strings.TrimSpace(s), ",")
	if len(parts) != 3 {
		return Color{}, fmt.Errorf("%w: %q", ErrInvalidDecimal, s)
	}

	var ch [3]uint8
	for i, p := range parts {
		v, err := strconv.ParseUint(strings.TrimSpace(p), 10, 8)
		if err != nil {
			return Color{}, fmt.Errorf("%w: %q", ErrInvalidDecimal, s)
		}
		ch[i] = uint8(v)
	}
	return Color{R: ch[0], G: ch[1], B: ch[2]}, nil
}

// Parse accepts either the decimal or the hex form.
func Parse(s string) (Color, error) {
	if strings.Contains(s, ",") {
		return ParseDecimal(s)
	}
	return ParseHex(s)
}

// ParseList parses a comma-joined list of hex colors, the inverse of a
// hex clipboard export. An empty string yields an empty list.
func ParseList(s string) ([]Color, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}

	fields := strings.Split(s, ",")
	colors := make([]Color, 0, len(fields))
	for _, f := range fields {
		c, err := ParseHex(f)
		if err != nil {
			return nil, err
		}
		colors = append(colors, c)
	}
	return colors, nil
}

// JoinHex joins colors as comma-separated hex strings.
func JoinHex(colors []Color) string {
	parts := make([]string, len(colors))
	for i, c := range colors {
		parts[i] = c.Hex()
	}
	return strings.Join(parts, ",")
}

func isHexDigit(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}
