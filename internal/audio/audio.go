// Package audio plays short sine-tone cues for game events.
package audio

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Cue is a single tone.
type Cue struct {
	Freq     float64
	Duration time.Duration
}

var (
	// CueHardDrop is a short low click.
	CueHardDrop = Cue{Freq: 220, Duration: 30 * time.Millisecond}
	// CueGameOver is a long low tone.
	CueGameOver = Cue{Freq: 110, Duration: 600 * time.Millisecond}
)

// CueLines returns a tone that rises with the number of lines cleared.
func CueLines(lines int) Cue {
	return Cue{Freq: 440 * float64(lines+1) / 2, Duration: 80 * time.Millisecond}
}

// Player plays cues on the system speaker. A Player whose speaker failed to
// initialize is silent.
type Player struct {
	enabled bool
}

// NewPlayer initializes the speaker. The error is non-fatal: the returned
// Player is always usable and simply stays silent on failure.
func NewPlayer() (*Player, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return &Player{}, err
	}
	return &Player{enabled: true}, nil
}

// Enabled reports whether cues reach the speaker.
func (p *Player) Enabled() bool {
	return p != nil && p.enabled
}

// Play starts a cue without blocking.
func (p *Player) Play(c Cue) {
	if !p.Enabled() {
		return
	}
	sine, err := generators.SineTone(sampleRate, c.Freq)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(sampleRate.N(c.Duration), sine))
}

// Close releases the speaker.
func (p *Player) Close() {
	if p.Enabled() {
		speaker.Close()
		p.enabled = false
	}
}
