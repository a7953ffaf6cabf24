package session

import "time"

// Timer schedules the next gravity tick. Implementations call Session.Tick
// on the same goroutine that issues player commands.
type Timer interface {
	// Arm schedules one tick after d, replacing any pending tick.
	Arm(d time.Duration)
	// Stop cancels the pending tick, if any.
	Stop()
}

type nopTimer struct{}

func (nopTimer) Arm(time.Duration) {}

func (nopTimer) Stop() {}
