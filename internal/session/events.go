package session

// EventKind identifies a notable session transition.
type EventKind int

const (
	EventSpawn EventKind = iota
	EventLock
	EventLinesCleared
	EventHardDrop
	EventGameOver
	EventRestart
)

// String returns a human-readable event name.
func (k EventKind) String() string {
	switch k {
	case EventSpawn:
		return "spawn"
	case EventLock:
		return "lock"
	case EventLinesCleared:
		return "lines_cleared"
	case EventHardDrop:
		return "hard_drop"
	case EventGameOver:
		return "game_over"
	case EventRestart:
		return "restart"
	default:
		return "unknown"
	}
}

// Event is delivered to observers after the state change it describes.
type Event struct {
	Kind  EventKind
	Lines int // lines cleared, for EventLinesCleared
	Score int
	Level int
}

// Observer receives session events. It must not call back into the session.
type Observer func(Event)
