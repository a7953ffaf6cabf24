// Package session implements the game-state engine: spawning, movement,
// gravity, locking, line clears, scoring and game over.
package session

import (
	"errors"
	"fmt"
	"time"

	"github.com/samdwyer/blockfall/internal/board"
)

// ErrInvalidConfig is returned by Validate and New for unusable settings.
var ErrInvalidConfig = errors.New("session: invalid config")

// Config holds the tunable rules of a session.
type Config struct {
	Rows int
	Cols int

	// CellSize is the on-screen size of one cell. Front ends interpret the unit.
	CellSize int

	// InitialSpeed is the gravity interval at level 1.
	InitialSpeed time.Duration
	// SpeedFloor is the shortest gravity interval.
	SpeedFloor time.Duration
	// SpeedStep is how much the interval shrinks per level.
	SpeedStep time.Duration

	// LevelThreshold is the score needed per level.
	LevelThreshold int
	// LinePoints is the score per cleared line.
	LinePoints int

	// Seed for random number generation. Used for reproducible piece sequences.
	// A seed of 0 means a random seed will be generated.
	Seed int64
}

// DefaultConfig returns the classic rules on a 10x20 board.
func DefaultConfig() Config {
	return Config{
		Rows:           board.DefaultRows,
		Cols:           board.DefaultCols,
		CellSize:       30,
		InitialSpeed:   500 * time.Millisecond,
		SpeedFloor:     100 * time.Millisecond,
		SpeedStep:      40 * time.Millisecond,
		LevelThreshold: 500,
		LinePoints:     100,
	}
}

// Validate reports the first unusable setting.
func (c Config) Validate() error {
	switch {
	case c.Rows <= 0 || c.Cols <= 0:
		return fmt.Errorf("%w: board %dx%d", ErrInvalidConfig, c.Cols, c.Rows)
	case c.CellSize <= 0:
		return fmt.Errorf("%w: cell size %d", ErrInvalidConfig, c.CellSize)
	case c.InitialSpeed <= 0 || c.SpeedFloor <= 0:
		return fmt.Errorf("%w: speeds must be positive (initial %v, floor %v)", ErrInvalidConfig, c.InitialSpeed, c.SpeedFloor)
	case c.SpeedFloor > c.InitialSpeed:
		return fmt.Errorf("%w: speed floor %v above initial speed %v", ErrInvalidConfig, c.SpeedFloor, c.InitialSpeed)
	case c.SpeedStep < 0:
		return fmt.Errorf("%w: negative speed step %v", ErrInvalidConfig, c.SpeedStep)
	case c.LevelThreshold <= 0:
		return fmt.Errorf("%w: level threshold %d", ErrInvalidConfig, c.LevelThreshold)
	case c.LinePoints <= 0:
		return fmt.Errorf("%w: line points %d", ErrInvalidConfig, c.LinePoints)
	}
	return nil
}
