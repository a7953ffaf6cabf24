package gamedata

import (
	"errors"
	"math/rand"

	"github.com/gdamore/tcell/v2"
)

// ErrEmptyCatalog is returned when the embedded data has no shapes or no colors.
var ErrEmptyCatalog = errors.New("gamedata: empty catalog")

// Catalog holds the immutable shape set and color palette.
type Catalog struct {
	shapes []ShapeDef
	colors []ColorDef
	byID   map[string]int
	styles map[string]tcell.Color
}

// NewCatalog creates a catalog from loaded shape and color definitions.
func NewCatalog(shapes []ShapeDef, colors []ColorDef) (*Catalog, error) {
	if len(shapes) == 0 || len(colors) == 0 {
		return nil, ErrEmptyCatalog
	}

	c := &Catalog{
		shapes: shapes,
		colors: colors,
		byID:   make(map[string]int, len(shapes)),
		styles: make(map[string]tcell.Color, len(colors)),
	}
	for i := range shapes {
		c.byID[shapes[i].ID] = i
	}
	for _, col := range colors {
		c.styles[col.Name] = col.TCellColor()
	}
	return c, nil
}

// LoadCatalog loads shapes.json and palette.json and builds a catalog.
func LoadCatalog() (*Catalog, error) {
	shapes, err := LoadShapes()
	if err != nil {
		return nil, err
	}
	colors, err := LoadColors()
	if err != nil {
		return nil, err
	}
	return NewCatalog(shapes, colors)
}

// MustLoadCatalog loads the catalog, panicking on error.
// The embedded data must be present for the game to function.
func MustLoadCatalog() *Catalog {
	c, err := LoadCatalog()
	if err != nil {
		panic(err)
	}
	return c
}

// RandomShape selects a shape uniformly at random.
func (c *Catalog) RandomShape(rng *rand.Rand) *ShapeDef {
	return &c.shapes[rng.Intn(len(c.shapes))]
}

// RandomColor selects a palette color uniformly at random, independent of shape.
func (c *Catalog) RandomColor(rng *rand.Rand) ColorDef {
	return c.colors[rng.Intn(len(c.colors))]
}

// ShapeByID returns the shape with the given ID, or nil if not found.
func (c *Catalog) ShapeByID(id string) *ShapeDef {
	i, ok := c.byID[id]
	if !ok {
		return nil
	}
	return &c.shapes[i]
}

// Shapes returns all shape definitions.
func (c *Catalog) Shapes() []ShapeDef {
	return c.shapes
}

// Colors returns the palette.
func (c *Catalog) Colors() []ColorDef {
	return c.colors
}

// ColorFor returns the display color for a palette name, or white for unknown names.
func (c *Catalog) ColorFor(name string) tcell.Color {
	if col, ok := c.styles[name]; ok {
		return col
	}
	return tcell.ColorWhite
}
