package piece

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samdwyer/blockfall/internal/board"
	"github.com/samdwyer/blockfall/internal/gamedata"
	"github.com/samdwyer/blockfall/internal/shape"
)

var (
	oTemplate = Template{Name: "O", Matrix: shape.FromInts([][]int{{1, 1}, {1, 1}}), Color: "yellow"}
	iTemplate = Template{Name: "I", Matrix: shape.FromInts([][]int{{1, 1, 1, 1}}), Color: "cyan"}
	tTemplate = Template{Name: "T", Matrix: shape.FromInts([][]int{{1, 1, 1}, {0, 1, 0}}), Color: "purple"}
)

func newBoard(t *testing.T) *board.Board {
	t.Helper()
	b, err := board.New(board.DefaultRows, board.DefaultCols)
	require.NoError(t, err)
	return b
}

func TestResultString(t *testing.T) {
	assert.Equal(t, "moved", Moved.String())
	assert.Equal(t, "blocked", Blocked.String())
	assert.Equal(t, "landed", Landed.String())
	assert.Equal(t, "unknown", Result(42).String())
}

func TestSpawnCentered(t *testing.T) {
	b := newBoard(t)

	tests := []struct {
		tmpl  Template
		wantX int
	}{
		{oTemplate, 4},
		{iTemplate, 3},
		{tTemplate, 4},
	}
	for _, tt := range tests {
		p, ok := Spawn(b, tt.tmpl)
		require.True(t, ok, tt.tmpl.Name)
		assert.Equal(t, tt.wantX, p.X, tt.tmpl.Name)
		assert.Equal(t, 0, p.Y, tt.tmpl.Name)
		assert.Equal(t, tt.tmpl.Color, p.Color)
	}
}

func TestSpawnBlocked(t *testing.T) {
	b := newBoard(t)
	b.Freeze(4, 0, shape.FromInts([][]int{{1}}), "red")

	p, ok := Spawn(b, oTemplate)
	assert.False(t, ok)
	require.NotNil(t, p)
}

func TestSpawnDoesNotAliasTemplate(t *testing.T) {
	b := newBoard(t)
	p, _ := Spawn(b, tTemplate)
	require.True(t, p.Rotate(b))
	assert.Equal(t, 3, tTemplate.Matrix.Width(), "template matrix must not change")
}

func TestTranslate(t *testing.T) {
	b := newBoard(t)
	p := &Piece{Matrix: oTemplate.Matrix, X: 3, Y: 0}

	for i := 0; i < 3; i++ {
		assert.Equal(t, Moved, p.Translate(b, -1, 0))
	}
	assert.Equal(t, 0, p.X)
	assert.Equal(t, Blocked, p.Translate(b, -1, 0))
	assert.Equal(t, 0, p.X)

	p.X = 8
	assert.Equal(t, Blocked, p.Translate(b, 1, 0))
	assert.Equal(t, 8, p.X)
}

func TestTranslateDownLands(t *testing.T) {
	b := newBoard(t)
	p := &Piece{Matrix: oTemplate.Matrix, X: 0, Y: 17}

	assert.Equal(t, Moved, p.Translate(b, 0, 1))
	assert.Equal(t, 18, p.Y)
	assert.Equal(t, Landed, p.Translate(b, 0, 1))
	assert.Equal(t, 18, p.Y, "landing must not move the piece")
}

func TestRotateRejectedAtWall(t *testing.T) {
	b := newBoard(t)
	// Vertical I against the right wall cannot turn horizontal.
	p := &Piece{Matrix: iTemplate.Matrix.Rotate(), X: 9, Y: 5}

	before := p.Matrix.Clone()
	assert.False(t, p.Rotate(b))
	assert.True(t, p.Matrix.Equal(before))
	assert.Equal(t, 9, p.X, "no wall kick")
}

func TestRotateFourTimes(t *testing.T) {
	b := newBoard(t)
	p, _ := Spawn(b, tTemplate)
	p.Y = 5

	for i := 0; i < 4; i++ {
		require.True(t, p.Rotate(b))
	}
	assert.True(t, p.Matrix.Equal(tTemplate.Matrix))
}

func TestHardDrop(t *testing.T) {
	b := newBoard(t)
	b.Freeze(4, 15, shape.FromInts([][]int{{1}}), "red")

	p, _ := Spawn(b, oTemplate)
	assert.Equal(t, 13, p.DropDistance(b))
	assert.Equal(t, 13, p.HardDrop(b))
	assert.Equal(t, 13, p.Y)
	assert.Equal(t, 0, p.DropDistance(b))

	p.Lock(b)
	assert.True(t, b.IsOccupied(4, 14))
	assert.True(t, b.IsOccupied(5, 13))
}

func TestCells(t *testing.T) {
	p := &Piece{Matrix: tTemplate.Matrix, Color: "purple", X: 2, Y: 3}
	assert.ElementsMatch(t, []CellPos{
		{2, 3, "purple"}, {3, 3, "purple"}, {4, 3, "purple"}, {3, 4, "purple"},
	}, p.Cells())
}

func TestSequence(t *testing.T) {
	s := NewSequence(oTemplate, iTemplate)
	assert.Equal(t, "O", s.Next().Name)
	assert.Equal(t, "I", s.Next().Name)
	assert.Equal(t, "O", s.Next().Name)
}

func TestRandomGenerator(t *testing.T) {
	catalog := gamedata.MustLoadCatalog()
	g1 := NewRandomGenerator(catalog, rand.New(rand.NewSource(7)))
	g2 := NewRandomGenerator(catalog, rand.New(rand.NewSource(7)))

	for i := 0; i < 10; i++ {
		a, b := g1.Next(), g2.Next()
		assert.Equal(t, a.Name, b.Name)
		assert.Equal(t, a.Color, b.Color)
		assert.NotNil(t, catalog.ShapeByID(a.Name))
		assert.NotEmpty(t, a.Color)
	}
}
