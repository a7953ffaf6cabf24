// Package game runs the terminal front end: it binds keys to session
// commands, delivers gravity ticks and redraws after every event.
package game

import (
	"context"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"

	"github.com/samdwyer/blockfall/internal/audio"
	"github.com/samdwyer/blockfall/internal/gamedata"
	"github.com/samdwyer/blockfall/internal/session"
	"github.com/samdwyer/blockfall/internal/telemetry"
	"github.com/samdwyer/blockfall/internal/ui"
)

// Game holds the screen, the session and the input loop.
type Game struct {
	screen   *ui.Screen
	renderer *ui.Renderer
	session  *session.Session
	timer    *gravityTimer
	sound    *audio.Player
	log      *logrus.Entry
	running  bool
}

// New creates a game on the real terminal.
func New(ctx context.Context, cfg session.Config, opts Options) (*Game, error) {
	screen, err := ui.NewScreen()
	if err != nil {
		return nil, err
	}

	g, err := newGame(ctx, screen, cfg, opts)
	if err != nil {
		screen.Close()
		return nil, err
	}
	return g, nil
}

// newGame wires a session to an initialized screen.
func newGame(ctx context.Context, screen *ui.Screen, cfg session.Config, opts Options) (*Game, error) {
	catalog, err := gamedata.LoadCatalog()
	if err != nil {
		return nil, err
	}

	g := &Game{
		screen:   screen,
		renderer: ui.NewRenderer(screen, catalog, opts.CellWidth),
		timer:    newGravityTimer(screen.PostEvent),
		log:      logrus.WithField("component", "game"),
		running:  true,
	}

	if opts.Sound {
		player, err := audio.NewPlayer()
		if err != nil {
			g.log.WithError(err).Warn("audio unavailable, continuing without sound")
		}
		g.sound = player
	}

	g.session, err = session.New(cfg,
		session.WithTimer(g.timer),
		session.WithObserver(g.onEvent),
		session.WithContext(ctx),
	)
	if err != nil {
		return nil, err
	}
	return g, nil
}

// Run executes the main game loop until the player quits.
func (g *Game) Run(ctx context.Context) error {
	_, span := telemetry.Tracer("game").Start(ctx, "game.run")
	defer span.End()

	g.log.WithField("session_id", g.session.ID()).Info("game started")
	g.session.Start()

	for g.running {
		g.renderer.Render(g.session)
		g.handleEvent(g.screen.PollEvent())
	}

	g.session.Stop()
	g.Close()
	return nil
}

// handleEvent processes a single event from the screen queue.
func (g *Game) handleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tickEvent:
		if g.timer.current(ev) {
			g.session.Tick()
		}
	case *tcell.EventKey:
		g.handleKeyEvent(ev)
	case *tcell.EventResize:
		g.screen.Sync()
	case nil:
		// Screen finalized.
		g.running = false
	}
}

// handleKeyEvent maps keys to session commands.
func (g *Game) handleKeyEvent(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		g.running = false

	case tcell.KeyLeft:
		g.session.MoveLeft()
	case tcell.KeyRight:
		g.session.MoveRight()
	case tcell.KeyDown:
		g.session.SoftDrop()
	case tcell.KeyUp:
		g.session.Rotate()

	case tcell.KeyRune:
		switch ev.Rune() {
		case ' ':
			g.session.HardDrop()
		case 'r', 'R':
			g.session.Restart()
		case 'q', 'Q':
			g.running = false
		}
	}
}

// onEvent plays sound cues. It only reads the event.
func (g *Game) onEvent(ev session.Event) {
	if g.sound == nil {
		return
	}
	switch ev.Kind {
	case session.EventHardDrop:
		g.sound.Play(audio.CueHardDrop)
	case session.EventLinesCleared:
		g.sound.Play(audio.CueLines(ev.Lines))
	case session.EventGameOver:
		g.sound.Play(audio.CueGameOver)
	}
}

// Session returns the game's session.
func (g *Game) Session() *session.Session {
	return g.session
}

// Close cleans up game resources.
func (g *Game) Close() {
	g.timer.Stop()
	if g.sound != nil {
		g.sound.Close()
	}
	if g.screen != nil {
		g.screen.Close()
		g.screen = nil
	}
}
