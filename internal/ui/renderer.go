package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/blockfall/internal/board"
	"github.com/samdwyer/blockfall/internal/piece"
)

// View is the read-only game state the renderer draws.
type View interface {
	BoardSnapshot() [][]board.Cell
	ActivePieceCells() []piece.CellPos
	Score() int
	Level() int
	Lines() int
	IsGameOver() bool
}

// Palette maps a cell color name to a terminal color.
type Palette interface {
	ColorFor(name string) tcell.Color
}

const (
	// Playfield origin; row and column 0 hold the border.
	originX = 1
	originY = 1
	// Gap between the playfield border and the side panel.
	panelGap = 3
)

var controls = []string{
	"Controls:",
	"← → Move",
	"↑   Rotate",
	"↓   Drop",
	"Space Hard drop",
	"R   Restart",
	"Q   Quit",
}

var (
	borderStyle = tcell.StyleDefault.Foreground(tcell.ColorGray)
	emptyStyle  = tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
	textStyle   = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	labelStyle  = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	overStyle   = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorMaroon).Bold(true)
)

// Renderer draws the playfield, falling piece and side panel.
type Renderer struct {
	screen    *Screen
	palette   Palette
	cellWidth int
}

// NewRenderer creates a renderer. cellWidth is the number of terminal
// columns used per board cell.
func NewRenderer(screen *Screen, palette Palette, cellWidth int) *Renderer {
	if cellWidth < 1 {
		cellWidth = 1
	}
	return &Renderer{screen: screen, palette: palette, cellWidth: cellWidth}
}

// Render draws the full frame.
func (r *Renderer) Render(v View) {
	r.screen.Clear()

	grid := v.BoardSnapshot()
	rows := len(grid)
	cols := 0
	if rows > 0 {
		cols = len(grid[0])
	}

	r.drawBorder(cols, rows)

	for y, row := range grid {
		for x, c := range row {
			r.drawCell(x, y, c)
		}
	}
	for _, pc := range v.ActivePieceCells() {
		if pc.Y >= 0 && pc.Y < rows && pc.X >= 0 && pc.X < cols {
			r.drawCell(pc.X, pc.Y, pc.Color)
		}
	}

	r.drawPanel(cols, v)

	if v.IsGameOver() {
		r.drawGameOver(cols, rows)
	}

	r.screen.Show()
}

// CellOrigin returns the screen position of the left column of board cell (x, y).
func (r *Renderer) CellOrigin(x, y int) (int, int) {
	return originX + x*r.cellWidth, originY + y
}

func (r *Renderer) drawCell(x, y int, c board.Cell) {
	sx, sy := r.CellOrigin(x, y)
	if c.IsEmpty() {
		for i := 0; i < r.cellWidth; i++ {
			ch := ' '
			if i == r.cellWidth-1 {
				ch = '·'
			}
			r.screen.SetContent(sx+i, sy, ch, emptyStyle)
		}
		return
	}

	style := tcell.StyleDefault.Background(r.palette.ColorFor(string(c)))
	for i := 0; i < r.cellWidth; i++ {
		r.screen.SetContent(sx+i, sy, ' ', style)
	}
}

func (r *Renderer) drawBorder(cols, rows int) {
	left := originX - 1
	right := originX + cols*r.cellWidth
	bottom := originY + rows

	for y := originY; y < bottom; y++ {
		r.screen.SetContent(left, y, '│', borderStyle)
		r.screen.SetContent(right, y, '│', borderStyle)
	}
	for x := originX; x < right; x++ {
		r.screen.SetContent(x, originY-1, '─', borderStyle)
		r.screen.SetContent(x, bottom, '─', borderStyle)
	}
	r.screen.SetContent(left, originY-1, '┌', borderStyle)
	r.screen.SetContent(right, originY-1, '┐', borderStyle)
	r.screen.SetContent(left, bottom, '└', borderStyle)
	r.screen.SetContent(right, bottom, '┘', borderStyle)
}

func (r *Renderer) drawPanel(cols int, v View) {
	x := originX + cols*r.cellWidth + panelGap
	y := originY

	r.RenderMessage(fmt.Sprintf("Score: %d", v.Score()), x, y, labelStyle)
	r.RenderMessage(fmt.Sprintf("Level: %d", v.Level()), x, y+2, labelStyle)
	r.RenderMessage(fmt.Sprintf("Lines: %d", v.Lines()), x, y+4, labelStyle)

	for i, line := range controls {
		r.RenderMessage(line, x, y+7+i, textStyle)
	}
}

func (r *Renderer) drawGameOver(cols, rows int) {
	lines := []string{"GAME OVER", "Press R to Restart"}
	width := cols * r.cellWidth
	top := originY + rows/2 - len(lines)/2

	for i, line := range lines {
		n := len([]rune(line))
		x := originX + (width-n)/2
		if x < originX {
			x = originX
		}
		r.RenderMessage(line, x, top+i, overStyle)
	}
}

// RenderMessage writes msg starting at (x, y).
func (r *Renderer) RenderMessage(msg string, x, y int, style tcell.Style) {
	i := 0
	for _, ch := range msg {
		r.screen.SetContent(x+i, y, ch, style)
		i++
	}
}
