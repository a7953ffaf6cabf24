package gamedata

import (
	"fmt"

	"github.com/samdwyer/blockfall/internal/shape"
)

// ShapeDef defines a piece shape loaded from JSON.
// A shape carries no color; color is chosen per spawned piece.
type ShapeDef struct {
	ID    string  `json:"id"`    // Unique identifier (e.g., "T")
	Name  string  `json:"name"`  // Display name
	Cells [][]int `json:"cells"` // Rows of 0/1 values, 1 = filled
}

// Matrix returns the shape as a binary matrix.
func (s *ShapeDef) Matrix() shape.Matrix {
	return shape.FromInts(s.Cells)
}

// validate checks that the grid is rectangular and has at least one filled cell.
func (s *ShapeDef) validate() error {
	if len(s.Cells) == 0 || len(s.Cells[0]) == 0 {
		return fmt.Errorf("shape %q: empty grid", s.ID)
	}
	width := len(s.Cells[0])
	for r, row := range s.Cells {
		if len(row) != width {
			return fmt.Errorf("shape %q: row %d has %d cells, want %d", s.ID, r, len(row), width)
		}
	}
	if s.Matrix().Count() == 0 {
		return fmt.Errorf("shape %q: no filled cells", s.ID)
	}
	return nil
}

// ShapesFile represents the structure of shapes.json.
type ShapesFile struct {
	Shapes []ShapeDef `json:"shapes"`
}

// LoadShapes loads shape definitions from the embedded shapes.json file.
func LoadShapes() ([]ShapeDef, error) {
	file, err := Load[ShapesFile]("shapes.json")
	if err != nil {
		return nil, err
	}
	for i := range file.Shapes {
		if err := file.Shapes[i].validate(); err != nil {
			return nil, err
		}
	}
	return file.Shapes, nil
}
