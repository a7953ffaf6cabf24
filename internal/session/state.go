package session

// State represents the current session state.
type State int

const (
	// StateRunning is the normal play state: gravity ticks and commands apply.
	StateRunning State = iota
	// StateGameOver is entered when a new piece collides at its spawn position.
	// Only Restart is accepted.
	StateGameOver
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StateGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}
