// Package cframe implements the cascii binary frame format: a structural
// color grid (character + RGB + visibility per cell) stored as horizontal
// run-length groups, plus the plain-text view of the same frame.
package cframe

import "strings"

// Cell is one character position in a frame grid.
type Cell struct {
	Char byte
	R    uint8
	G    uint8
	B    uint8
	Skip bool
}

// CFrame is a decoded color grid. Cells are stored row-major and the grid
// is immutable after decode; all accessors are O(1) and safe for any
// coordinates (out-of-range queries report absence rather than panicking).
type CFrame struct {
	width  int
	height int
	cells  []Cell
}

// FromCells builds a grid directly from a row-major cell slice. The slice
// length must be exactly width*height.
func FromCells(width, height int, cells []Cell) (*CFrame, bool) {
	if width <= 0 || height <= 0 || len(cells) != width*height {
		return nil, false
	}
	copied := make([]Cell, len(cells))
	copy(copied, cells)
	return &CFrame{width: width, height: height, cells: copied}, true
}

// Width returns the grid width in cells.
func (f *CFrame) Width() int {
	return f.width
}

// Height returns the grid height in rows.
func (f *CFrame) Height() int {
	return f.height
}

func (f *CFrame) cellAt(row, col int) (Cell, bool) {
	if row < 0 || row >= f.height || col < 0 || col >= f.width {
		return Cell{}, false
	}
	return f.cells[row*f.width+col], true
}

// CharAt returns the display character at (row, col). The second return is
// false when the coordinates fall outside the grid.
func (f *CFrame) CharAt(row, col int) (byte, bool) {
	cell, ok := f.cellAt(row, col)
	if !ok {
		return 0, false
	}
	return cell.Char, true
}

// RGBAt returns the cell color at (row, col). The final return is false
// when the coordinates fall outside the grid.
func (f *CFrame) RGBAt(row, col int) (r, g, b uint8, ok bool) {
	cell, ok := f.cellAt(row, col)
	if !ok {
		return 0, 0, 0, false
	}
	return cell.R, cell.G, cell.B, true
}

// ShouldSkip reports whether the cell at (row, col) is transparent
// background that must not be drawn. Out-of-range cells are skipped.
func (f *CFrame) ShouldSkip(row, col int) bool {
	cell, ok := f.cellAt(row, col)
	if !ok {
		return true
	}
	return cell.Skip
}

// Text renders the character layer of the grid as newline-delimited text.
// The character at (row, col) matches CharAt for the same coordinates.
func (f *CFrame) Text() string {
	var sb strings.Builder
	sb.Grow((f.width + 1) * f.height)
	for row := 0; row < f.height; row++ {
		for col := 0; col < f.width; col++ {
			sb.WriteByte(f.cells[row*f.width+col].Char)
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
