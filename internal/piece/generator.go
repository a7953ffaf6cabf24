package piece

import (
	"math/rand"

	"github.com/samdwyer/blockfall/internal/board"
	"github.com/samdwyer/blockfall/internal/gamedata"
)

// Generator supplies the next piece to spawn.
type Generator interface {
	Next() Template
}

// RandomGenerator picks a shape and a color independently and uniformly
// from the catalog.
type RandomGenerator struct {
	catalog *gamedata.Catalog
	rng     *rand.Rand
}

// NewRandomGenerator creates a generator drawing from catalog with rng.
func NewRandomGenerator(catalog *gamedata.Catalog, rng *rand.Rand) *RandomGenerator {
	return &RandomGenerator{catalog: catalog, rng: rng}
}

// Next returns a random shape paired with a random color.
func (g *RandomGenerator) Next() Template {
	def := g.catalog.RandomShape(g.rng)
	color := g.catalog.RandomColor(g.rng)
	return Template{
		Name:   def.ID,
		Matrix: def.Matrix(),
		Color:  board.Cell(color.Name),
	}
}

// Sequence is a Generator that cycles through a fixed list of templates.
type Sequence struct {
	templates []Template
	next      int
}

// NewSequence creates a generator that repeats templates in order.
func NewSequence(templates ...Template) *Sequence {
	return &Sequence{templates: templates}
}

// Next returns the next template in the cycle.
func (s *Sequence) Next() Template {
	t := s.templates[s.next%len(s.templates)]
	s.next++
	return t
}
