// Package board provides the fixed-size playfield grid.
package board

import (
	"errors"
	"fmt"

	"github.com/samdwyer/blockfall/internal/shape"
)

const (
	// Default board dimensions
	DefaultRows = 20
	DefaultCols = 10
)

// ErrInvalidDimensions is returned when a board is created with non-positive rows or cols.
var ErrInvalidDimensions = errors.New("board: invalid dimensions")

// Cell is a single board position. The zero value is empty; otherwise it
// holds the palette name of the color occupying it.
type Cell string

// Empty is the unoccupied cell.
const Empty Cell = ""

// IsEmpty returns true if nothing occupies the cell.
func (c Cell) IsEmpty() bool {
	return c == Empty
}

// Board is a rows x cols grid of cells. Row 0 is the top.
// Dimensions never change after creation.
type Board struct {
	rows  int
	cols  int
	cells [][]Cell
}

// New creates an empty board.
func New(rows, cols int) (*Board, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, cols, rows)
	}

	cells := make([][]Cell, rows)
	for y := range cells {
		cells[y] = make([]Cell, cols)
	}
	return &Board{rows: rows, cols: cols, cells: cells}, nil
}

// Rows returns the board height.
func (b *Board) Rows() int {
	return b.rows
}

// Cols returns the board width.
func (b *Board) Cols() int {
	return b.cols
}

// InBounds returns true if (x, y) is on the board.
func (b *Board) InBounds(x, y int) bool {
	return x >= 0 && x < b.cols && y >= 0 && y < b.rows
}

// Cell returns the cell at (x, y). Out-of-bounds positions read as empty.
func (b *Board) Cell(x, y int) Cell {
	if !b.InBounds(x, y) {
		return Empty
	}
	return b.cells[y][x]
}

// IsOccupied returns true if (x, y) is on the board and not empty.
func (b *Board) IsOccupied(x, y int) bool {
	return b.InBounds(x, y) && !b.cells[y][x].IsEmpty()
}

// Collides reports whether a shape anchored at (x, y) overlaps a side or
// bottom wall or an occupied cell. Cells above the top row only collide
// with the side walls, so pieces may sit partially above the board.
func (b *Board) Collides(x, y int, m shape.Matrix) bool {
	hit := false
	m.Each(func(c, r int) {
		if hit {
			return
		}
		nx, ny := x+c, y+r
		if nx < 0 || nx >= b.cols || ny >= b.rows {
			hit = true
			return
		}
		if ny >= 0 && !b.cells[ny][nx].IsEmpty() {
			hit = true
		}
	})
	return hit
}

// Freeze writes color into every filled cell of the shape anchored at (x, y).
// The caller must have checked Collides first. Cells above the top row are dropped.
func (b *Board) Freeze(x, y int, m shape.Matrix, color Cell) {
	m.Each(func(c, r int) {
		nx, ny := x+c, y+r
		if b.InBounds(nx, ny) {
			b.cells[ny][nx] = color
		}
	})
}

// ClearFullLines removes every fully occupied row, shifts the rows above it
// down and inserts empty rows at the top. Surviving rows keep their order.
// It returns the number of rows removed.
func (b *Board) ClearFullLines() int {
	kept := make([][]Cell, 0, b.rows)
	for _, row := range b.cells {
		if !isFull(row) {
			kept = append(kept, row)
		}
	}

	cleared := b.rows - len(kept)
	if cleared == 0 {
		return 0
	}

	fresh := make([][]Cell, cleared, b.rows)
	for i := range fresh {
		fresh[i] = make([]Cell, b.cols)
	}
	b.cells = append(fresh, kept...)
	return cleared
}

// FullRows returns the indices of fully occupied rows, top to bottom.
func (b *Board) FullRows() []int {
	var rows []int
	for y, row := range b.cells {
		if isFull(row) {
			rows = append(rows, y)
		}
	}
	return rows
}

// Reset empties every cell.
func (b *Board) Reset() {
	for y := range b.cells {
		for x := range b.cells[y] {
			b.cells[y][x] = Empty
		}
	}
}

// Snapshot returns a copy of the grid indexed [y][x].
func (b *Board) Snapshot() [][]Cell {
	out := make([][]Cell, b.rows)
	for y := range b.cells {
		out[y] = append([]Cell(nil), b.cells[y]...)
	}
	return out
}

// Height returns the number of rows from the highest occupied cell to the
// bottom, or 0 for an empty board.
func (b *Board) Height() int {
	for y, row := range b.cells {
		for _, c := range row {
			if !c.IsEmpty() {
				return b.rows - y
			}
		}
	}
	return 0
}

func isFull(row []Cell) bool {
	for _, c := range row {
		if c.IsEmpty() {
			return false
		}
	}
	return true
}
