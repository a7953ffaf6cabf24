package game

import (
	"time"

	"github.com/gdamore/tcell/v2"
)

// tickEvent is posted to the screen's event queue when gravity fires.
type tickEvent struct {
	tcell.EventTime
	gen uint64
}

// gravityTimer delivers gravity ticks through the tcell event queue so they
// are handled on the event-loop goroutine alongside key presses. Arm and
// Stop must be called from that goroutine.
type gravityTimer struct {
	post  func(tcell.Event) error
	timer *time.Timer
	gen   uint64
}

func newGravityTimer(post func(tcell.Event) error) *gravityTimer {
	return &gravityTimer{post: post}
}

// Arm schedules a tick after d, discarding any pending one.
func (t *gravityTimer) Arm(d time.Duration) {
	t.Stop()
	gen := t.gen
	t.timer = time.AfterFunc(d, func() {
		ev := &tickEvent{gen: gen}
		ev.SetEventNow()
		_ = t.post(ev)
	})
}

// Stop cancels the pending tick. A tick already queued becomes stale.
func (t *gravityTimer) Stop() {
	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
	t.gen++
}

// current reports whether ev came from the latest Arm.
func (t *gravityTimer) current(ev *tickEvent) bool {
	return ev.gen == t.gen
}
