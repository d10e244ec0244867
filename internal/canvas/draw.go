package canvas

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/copycolors/internal/color"
	"github.com/vovakirdan/copycolors/internal/output"
)

// LabelFunc formats the label drawn above a swatch.
type LabelFunc func(color.Color) string

// Draw writes the grid for colors to out. g must have been computed for
// len(colors) swatches. Nothing is written for an empty sequence.
func Draw(out output.Sink, g Geometry, colors []color.Color, label LabelFunc) error {
	if len(colors) != g.Count {
		return fmt.Errorf("canvas: geometry for %d colors, got %d", g.Count, len(colors))
	}
	if g.Count == 0 {
		return nil
	}

	for i := range g.Height() {
		row := i / g.Band()
		if off := g.Offset(row); off > 0 {
			if err := out.Write(strings.Repeat(" ", off), output.Style{}); err != nil {
				return err
			}
		}
		if err := drawLine(out, g, colors, label, i, g.SquaresInRow(row)*g.Unit()); err != nil {
			return err
		}
		if err := out.Write("\n", output.Style{}); err != nil {
			return err
		}
	}
	return out.Write("\n", output.Style{})
}

// drawLine writes line i. Consecutive cells of the same kind and swatch are
// written as one run to keep escape sequences down.
func drawLine(out output.Sink, g Geometry, colors []color.Color, label LabelFunc, i, width int) error {
	for j := 0; j < width; {
		kind, index := g.Classify(i, j)

		if kind == CellLabel {
			if err := writeLabel(out, g, label(colors[index])); err != nil {
				return err
			}
			j++
			continue
		}

		k := j + 1
		for k < width {
			nk, ni := g.Classify(i, k)
			if nk != kind || (kind == CellBody && ni != index) {
				break
			}
			k++
		}

		var err error
		switch kind {
		case CellBody:
			c := colors[index]
			err = out.Write(strings.Repeat(" ", k-j), output.Colors(c, c))
		case CellGap, CellEmpty:
			err = out.Write(strings.Repeat(" ", k-j), output.Style{})
		}
		if err != nil {
			return err
		}
		j = k
	}
	return nil
}

// writeLabel writes the column gap, the bold label and the padding that
// fills the swatch width. The label uses default terminal colors.
func writeLabel(out output.Sink, g Geometry, text string) error {
	if err := out.Write(strings.Repeat(" ", g.ColSpacing), output.Style{}); err != nil {
		return err
	}
	if err := out.Write(text, output.Style{Bold: true}); err != nil {
		return err
	}
	pad := max(2*g.Square-len(text), 0)
	if pad == 0 {
		return nil
	}
	return out.Write(strings.Repeat(" ", pad), output.Style{})
}
