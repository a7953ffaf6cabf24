// Package piece provides the active falling piece and its movement rules.
package piece

import (
	"github.com/samdwyer/blockfall/internal/board"
	"github.com/samdwyer/blockfall/internal/shape"
)

// Result describes the outcome of a translation.
type Result int

const (
	// Moved means the anchor was updated.
	Moved Result = iota
	// Blocked means the move collided and nothing changed.
	Blocked
	// Landed means a one-row downward move collided; the piece must be frozen.
	Landed
)

// String returns a human-readable result name.
func (r Result) String() string {
	switch r {
	case Moved:
		return "moved"
	case Blocked:
		return "blocked"
	case Landed:
		return "landed"
	default:
		return "unknown"
	}
}

// Template is a shape/color pairing ready to be spawned.
type Template struct {
	Name   string
	Matrix shape.Matrix
	Color  board.Cell
}

// Piece is the active falling piece. X, Y is the top-left anchor of its
// matrix in board coordinates.
type Piece struct {
	Name   string
	Matrix shape.Matrix
	Color  board.Cell
	X, Y   int
}

// CellPos is one occupied position of a piece in board coordinates.
type CellPos struct {
	X, Y  int
	Color board.Cell
}

// Spawn places a template at the top of the board, horizontally centered.
// The second result is false if the spawn position already collides.
func Spawn(b *board.Board, t Template) (*Piece, bool) {
	p := &Piece{
		Name:   t.Name,
		Matrix: t.Matrix.Clone(),
		Color:  t.Color,
		X:      b.Cols()/2 - t.Matrix.Width()/2,
		Y:      0,
	}
	return p, !b.Collides(p.X, p.Y, p.Matrix)
}

// Rotate turns the piece 90 degrees clockwise in place if the rotated
// matrix fits at the current anchor. No wall kicks are attempted.
func (p *Piece) Rotate(b *board.Board) bool {
	rotated := p.Matrix.Rotate()
	if b.Collides(p.X, p.Y, rotated) {
		return false
	}
	p.Matrix = rotated
	return true
}

// Translate moves the piece by (dx, dy) if the destination is free.
// A blocked move with dy == 1 reports Landed; any other blocked move is
// Blocked and leaves the piece untouched.
func (p *Piece) Translate(b *board.Board, dx, dy int) Result {
	if !b.Collides(p.X+dx, p.Y+dy, p.Matrix) {
		p.X += dx
		p.Y += dy
		return Moved
	}
	if dy == 1 {
		return Landed
	}
	return Blocked
}

// DropDistance returns how many rows the piece can fall before resting.
func (p *Piece) DropDistance(b *board.Board) int {
	d := 0
	for !b.Collides(p.X, p.Y+d+1, p.Matrix) {
		d++
	}
	return d
}

// HardDrop moves the piece to its resting row and returns the rows fallen.
func (p *Piece) HardDrop(b *board.Board) int {
	d := p.DropDistance(b)
	p.Y += d
	return d
}

// Lock copies the piece into the board.
func (p *Piece) Lock(b *board.Board) {
	b.Freeze(p.X, p.Y, p.Matrix, p.Color)
}

// Cells returns the board positions covered by the piece.
func (p *Piece) Cells() []CellPos {
	cells := make([]CellPos, 0, p.Matrix.Count())
	p.Matrix.Each(func(c, r int) {
		cells = append(cells, CellPos{X: p.X + c, Y: p.Y + r, Color: p.Color})
	})
	return cells
}
