package ui

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samdwyer/blockfall/internal/board"
	"github.com/samdwyer/blockfall/internal/piece"
)

type fakeView struct {
	grid     [][]board.Cell
	cells    []piece.CellPos
	score    int
	level    int
	lines    int
	gameOver bool
}

func (f *fakeView) BoardSnapshot() [][]board.Cell { return f.grid }
func (f *fakeView) ActivePieceCells() []piece.CellPos { return f.cells }
func (f *fakeView) Score() int { return f.score }
func (f *fakeView) Level() int { return f.level }
func (f *fakeView) Lines() int { return f.lines }
func (f *fakeView) IsGameOver() bool { return f.gameOver }

type fakePalette map[string]tcell.Color

func (p fakePalette) ColorFor(name string) tcell.Color {
	if c, ok := p[name]; ok {
		return c
	}
	return tcell.ColorWhite
}

func newView(rows, cols int) *fakeView {
	grid := make([][]board.Cell, rows)
	for y := range grid {
		grid[y] = make([]board.Cell, cols)
	}
	return &fakeView{grid: grid, level: 1}
}

func newTestRenderer(t *testing.T) (*Renderer, tcell.SimulationScreen) {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	scr, err := Wrap(sim)
	require.NoError(t, err)
	sim.SetSize(80, 30)
	t.Cleanup(scr.Close)

	palette := fakePalette{"red": tcell.ColorRed, "cyan": tcell.ColorAqua}
	return NewRenderer(scr, palette, 2), sim
}

func background(sim tcell.SimulationScreen, x, y int) tcell.Color {
	_, _, style, _ := sim.GetContent(x, y)
	_, bg, _ := style.Decompose()
	return bg
}

// rowText returns the runes of screen row y from x to the right edge.
func rowText(sim tcell.SimulationScreen, x, y int) string {
	w, _ := sim.Size()
	var b strings.Builder
	for ; x < w; x++ {
		r, _, _, _ := sim.GetContent(x, y)
		b.WriteRune(r)
	}
	return b.String()
}

func TestRenderBoardAndPiece(t *testing.T) {
	r, sim := newTestRenderer(t)
	v := newView(20, 10)
	v.grid[19][0] = "red"
	v.cells = []piece.CellPos{{X: 4, Y: 0, Color: "cyan"}, {X: 5, Y: -1, Color: "cyan"}}

	r.Render(v)

	x, y := r.CellOrigin(0, 19)
	assert.Equal(t, tcell.ColorRed, background(sim, x, y))
	assert.Equal(t, tcell.ColorRed, background(sim, x+1, y))

	x, y = r.CellOrigin(4, 0)
	assert.Equal(t, tcell.ColorAqua, background(sim, x, y))

	x, y = r.CellOrigin(1, 19)
	ch, _, _, _ := sim.GetContent(x+1, y)
	assert.Equal(t, '·', ch, "empty cells show a dot")

	corner, _, _, _ := sim.GetContent(0, 0)
	assert.Equal(t, '┌', corner)
	bottom, _, _, _ := sim.GetContent(0, 21)
	assert.Equal(t, '└', bottom)
}

func TestRenderPanel(t *testing.T) {
	r, sim := newTestRenderer(t)
	v := newView(20, 10)
	v.score, v.level, v.lines = 700, 2, 7

	r.Render(v)

	panelX := originX + 10*2 + panelGap
	assert.True(t, strings.HasPrefix(rowText(sim, panelX, 1), "Score: 700"))
	assert.True(t, strings.HasPrefix(rowText(sim, panelX, 3), "Level: 2"))
	assert.True(t, strings.HasPrefix(rowText(sim, panelX, 5), "Lines: 7"))
	assert.True(t, strings.HasPrefix(rowText(sim, panelX, 8), "Controls:"))
}

func TestRenderGameOver(t *testing.T) {
	r, sim := newTestRenderer(t)
	v := newView(20, 10)

	r.Render(v)
	assert.NotContains(t, rowText(sim, 0, 10), "GAME OVER")

	v.gameOver = true
	r.Render(v)
	assert.Contains(t, rowText(sim, 0, 10), "GAME OVER")
	assert.Contains(t, rowText(sim, 0, 11), "Press R to Restart")
}

func TestNewRendererClampsCellWidth(t *testing.T) {
	r := NewRenderer(nil, fakePalette{}, 0)
	x, y := r.CellOrigin(3, 2)
	assert.Equal(t, originX+3, x)
	assert.Equal(t, originY+2, y)
}
