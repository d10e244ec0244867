// Package canvas lays out color swatches on a character grid sized to the
// terminal and draws them through an output.Sink.
//
// A swatch is a square of Square rows by 2*Square columns (terminal cells
// are roughly twice as tall as they are wide). Swatches are separated by
// RowSpacing blank rows and ColSpacing blank columns; the last gap row above
// each swatch carries its label. When the final row is not full it is
// centered by left padding.
package canvas

// Layout holds the fixed sizing rules for swatches.
type Layout struct {
	HexSquare     int // square size when labels are #RRGGBB
	DecimalSquare int // square size when labels are R,G,B
	RowSpacing    int
	ColSpacing    int
}

// DefaultLayout returns the standard sizing: 4-row squares for hex labels,
// 8-row squares for decimal labels, two-cell gaps.
func DefaultLayout() Layout {
	return Layout{
		HexSquare:     4,
		DecimalSquare: 8,
		RowSpacing:    2,
		ColSpacing:    2,
	}
}

// Square returns the square size for the given label format. The size does
// not depend on the labels themselves; a label longer than 2*Square is
// drawn unpadded and pushes the rest of its row to the right.
func (l Layout) Square(decimal bool) int {
	if decimal {
		return l.DecimalSquare
	}
	return l.HexSquare
}

// Geometry is the computed grid for a given color count and width.
type Geometry struct {
	Count      int // number of swatches
	Square     int
	RowSpacing int
	ColSpacing int
	Columns    int // swatches per full row, at least 1
	Rows       int
}

// Geometry computes the grid for count swatches in a terminal width columns
// wide. A terminal too narrow for one swatch still gets one column. Square
// sizes are floored to 1 and spacings to 0.
func (l Layout) Geometry(count, width int, decimal bool) Geometry {
	g := Geometry{
		Count:      max(count, 0),
		Square:     max(l.Square(decimal), 1),
		RowSpacing: max(l.RowSpacing, 0),
		ColSpacing: max(l.ColSpacing, 0),
	}

	g.Columns = max(width/g.Unit(), 1)
	g.Rows = (g.Count + g.Columns - 1) / g.Columns
	return g
}

// Unit is the width of one swatch plus its column gap.
func (g Geometry) Unit() int {
	return 2*g.Square + g.ColSpacing
}

// Band is the height of one swatch plus its row gap.
func (g Geometry) Band() int {
	return g.Square + g.RowSpacing
}

// Height is the number of character rows in the grid, excluding the
// trailing blank line.
func (g Geometry) Height() int {
	return g.Rows * g.Band()
}

// Remainder is the number of swatches on a ragged final row, or 0 when the
// final row is full.
func (g Geometry) Remainder() int {
	return g.Count % g.Columns
}

// SquaresInRow returns how many swatches grid row row holds.
func (g Geometry) SquaresInRow(row int) int {
	if row < 0 || row >= g.Rows {
		return 0
	}
	if row == g.Rows-1 && g.Remainder() != 0 {
		return g.Remainder()
	}
	return g.Columns
}

// Offset returns the blank columns printed before grid row row so that a
// ragged final row is centered.
func (g Geometry) Offset(row int) int {
	n := g.SquaresInRow(row)
	if n == 0 || n == g.Columns {
		return 0
	}
	return (g.Columns - n) * g.Unit() / 2
}

// CellKind classifies one character position of the grid.
type CellKind int

const (
	CellGap     CellKind = iota // blank spacing
	CellLabel                   // start of a swatch label
	CellCovered                 // already drawn by the label to its left
	CellBody                    // inside a swatch
	CellEmpty                   // grid slot past the last swatch
)

// Classify returns the kind of the cell at line i, column j (j measured
// after the row offset) and the swatch index it belongs to.
func (g Geometry) Classify(i, j int) (CellKind, int) {
	row, col := i/g.Band(), j/g.Unit()
	index := row*g.Columns + col
	iMod, jMod := i%g.Band(), j%g.Unit()

	if iMod < g.RowSpacing || jMod < g.ColSpacing {
		if iMod == g.RowSpacing-1 && index < g.Count {
			if jMod == 0 {
				return CellLabel, index
			}
			return CellCovered, index
		}
		return CellGap, index
	}
	if index < g.Count {
		return CellBody, index
	}
	return CellEmpty, index
}
