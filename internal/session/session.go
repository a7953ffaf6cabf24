package session

import (
	"context"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/blockfall/internal/board"
	"github.com/samdwyer/blockfall/internal/gamedata"
	"github.com/samdwyer/blockfall/internal/piece"
	"github.com/samdwyer/blockfall/internal/telemetry"
)

// Session owns the board and the active piece and applies every command.
// It is not safe for concurrent use: commands and ticks must be issued
// from one goroutine.
type Session struct {
	cfg   Config
	board *board.Board
	gen   piece.Generator
	timer Timer

	active *piece.Piece
	state  State
	score  int
	level  int
	lines  int
	speed  time.Duration

	id        string
	gameID    string
	ctx       context.Context
	log       *logrus.Entry
	observers []Observer
}

// Option configures a Session.
type Option func(*Session)

// WithGenerator sets the piece source. The default draws uniformly from
// the embedded catalog.
func WithGenerator(g piece.Generator) Option {
	return func(s *Session) { s.gen = g }
}

// WithTimer sets the gravity timer. The default never fires.
func WithTimer(t Timer) Option {
	return func(s *Session) { s.timer = t }
}

// WithObserver registers fn for session events.
func WithObserver(fn Observer) Option {
	return func(s *Session) { s.observers = append(s.observers, fn) }
}

// WithLogger sets the base log entry.
func WithLogger(l *logrus.Entry) Option {
	return func(s *Session) { s.log = l }
}

// WithContext sets the parent context for trace spans.
func WithContext(ctx context.Context) Option {
	return func(s *Session) { s.ctx = ctx }
}

// New validates cfg, builds the board and spawns the first piece.
func New(cfg Config, opts ...Option) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	b, err := board.New(cfg.Rows, cfg.Cols)
	if err != nil {
		return nil, err
	}

	s := &Session{
		cfg:   cfg,
		board: b,
		timer: nopTimer{},
		id:    uuid.NewString(),
		ctx:   context.Background(),
		log:   logrus.NewEntry(logrus.StandardLogger()),
	}
	for _, opt := range opts {
		opt(s)
	}

	if s.gen == nil {
		catalog, err := gamedata.LoadCatalog()
		if err != nil {
			return nil, err
		}
		seed := cfg.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		s.gen = piece.NewRandomGenerator(catalog, rand.New(rand.NewSource(seed)))
	}
	s.log = s.log.WithField("session_id", s.id)

	s.reset()
	s.spawn()
	return s, nil
}

// Start arms the gravity timer.
func (s *Session) Start() {
	_, span := telemetry.Tracer("session").Start(s.ctx, "session.start")
	span.SetAttributes(
		attribute.String("session.id", s.id),
		attribute.Int("board.rows", s.cfg.Rows),
		attribute.Int("board.cols", s.cfg.Cols),
	)
	span.End()

	if s.state == StateRunning {
		s.timer.Arm(s.speed)
	}
}

// Stop cancels any pending gravity tick.
func (s *Session) Stop() {
	s.timer.Stop()
}

// Tick applies one gravity step and re-arms the timer at the current speed.
func (s *Session) Tick() bool {
	if s.state != StateRunning {
		return false
	}
	applied := s.translate(0, 1)
	if s.state == StateRunning {
		s.timer.Arm(s.speed)
	}
	return applied
}

// MoveLeft shifts the piece one column left.
func (s *Session) MoveLeft() bool {
	return s.running() && s.translate(-1, 0)
}

// MoveRight shifts the piece one column right.
func (s *Session) MoveRight() bool {
	return s.running() && s.translate(1, 0)
}

// SoftDrop moves the piece one row down, locking it if it cannot move.
func (s *Session) SoftDrop() bool {
	return s.running() && s.translate(0, 1)
}

// Rotate turns the piece clockwise if it fits where it is.
func (s *Session) Rotate() bool {
	return s.running() && s.active.Rotate(s.board)
}

// HardDrop drops the piece to its resting row and locks it.
func (s *Session) HardDrop() bool {
	if !s.running() {
		return false
	}
	rows := s.active.HardDrop(s.board)
	s.log.WithField("rows", rows).Debug("hard drop")
	s.emit(Event{Kind: EventHardDrop, Score: s.score, Level: s.level})
	s.lock()
	return true
}

// Restart clears the board and scores and starts a new game. It is valid
// in any state.
func (s *Session) Restart() {
	_, span := telemetry.Tracer("session").Start(s.ctx, "session.restart")
	span.SetAttributes(
		attribute.String("session.id", s.id),
		attribute.String("game.previous_id", s.gameID),
		attribute.Int("game.previous_score", s.score),
	)
	defer span.End()

	s.timer.Stop()
	s.reset()
	s.log.Info("game restarted")
	s.emit(Event{Kind: EventRestart, Score: s.score, Level: s.level})
	s.spawn()
	if s.state == StateRunning {
		s.timer.Arm(s.speed)
	}
}

// reset puts the session in its initial Running state with an empty board
// and no active piece.
func (s *Session) reset() {
	s.board.Reset()
	s.active = nil
	s.state = StateRunning
	s.score = 0
	s.lines = 0
	s.level = 1
	s.speed = s.cfg.InitialSpeed
	s.gameID = uuid.NewString()
}

func (s *Session) running() bool {
	return s.state == StateRunning
}

// translate moves the active piece, locking it when a downward step lands.
func (s *Session) translate(dx, dy int) bool {
	switch s.active.Translate(s.board, dx, dy) {
	case piece.Moved:
		return true
	case piece.Landed:
		s.lock()
		return true
	default:
		return false
	}
}

// spawn makes the next piece active, entering GameOver if it collides.
func (s *Session) spawn() {
	p, ok := piece.Spawn(s.board, s.gen.Next())
	s.active = p
	if !ok {
		s.gameOver()
		return
	}
	s.emit(Event{Kind: EventSpawn, Score: s.score, Level: s.level})
}

// lock freezes the active piece, clears lines, updates score, level and
// speed, then spawns the next piece.
func (s *Session) lock() {
	s.active.Lock(s.board)
	lines := s.board.ClearFullLines()

	s.score += s.cfg.scoreFor(lines)
	s.lines += lines
	s.level = s.cfg.levelFor(s.score)
	s.speed = s.cfg.speedFor(s.level)

	_, span := telemetry.Tracer("session").Start(s.ctx, "session.lock")
	span.SetAttributes(
		attribute.String("game.id", s.gameID),
		attribute.String("piece.shape", s.active.Name),
		attribute.Int("lines", lines),
		attribute.Int("score", s.score),
		attribute.Int("level", s.level),
		attribute.Int64("speed_ms", s.speed.Milliseconds()),
	)
	span.End()

	s.emit(Event{Kind: EventLock, Score: s.score, Level: s.level})
	if lines > 0 {
		s.log.WithFields(logrus.Fields{
			"game_id": s.gameID,
			"lines":   lines,
			"score":   s.score,
			"level":   s.level,
		}).Debug("lines cleared")
		s.emit(Event{Kind: EventLinesCleared, Lines: lines, Score: s.score, Level: s.level})
	}

	s.spawn()
}

func (s *Session) gameOver() {
	s.state = StateGameOver
	s.timer.Stop()

	_, span := telemetry.Tracer("session").Start(s.ctx, "session.game_over")
	span.SetAttributes(
		attribute.String("game.id", s.gameID),
		attribute.Int("score", s.score),
		attribute.Int("level", s.level),
		attribute.Int("lines", s.lines),
	)
	span.End()

	s.log.WithFields(logrus.Fields{
		"game_id": s.gameID,
		"score":   s.score,
		"level":   s.level,
		"lines":   s.lines,
	}).Info("game over")
	s.emit(Event{Kind: EventGameOver, Score: s.score, Level: s.level})
}

func (s *Session) emit(ev Event) {
	for _, fn := range s.observers {
		fn(ev)
	}
}

// BoardSnapshot returns a copy of the settled cells, indexed [y][x].
func (s *Session) BoardSnapshot() [][]board.Cell {
	return s.board.Snapshot()
}

// ActivePieceCells returns the cells of the falling piece. After game over
// it still reports the piece that failed to spawn.
func (s *Session) ActivePieceCells() []piece.CellPos {
	if s.active == nil {
		return nil
	}
	return s.active.Cells()
}

// ActivePiece returns a copy of the falling piece.
func (s *Session) ActivePiece() piece.Piece {
	if s.active == nil {
		return piece.Piece{}
	}
	p := *s.active
	p.Matrix = p.Matrix.Clone()
	return p
}

// Score returns the points earned this game.
func (s *Session) Score() int {
	return s.score
}

// Level returns the current level, starting at 1.
func (s *Session) Level() int {
	return s.level
}

// Lines returns the total lines cleared this game.
func (s *Session) Lines() int {
	return s.lines
}

// Speed returns the current gravity interval.
func (s *Session) Speed() time.Duration {
	return s.speed
}

// State returns the current session state.
func (s *Session) State() State {
	return s.state
}

// IsGameOver returns true once a spawned piece has collided.
func (s *Session) IsGameOver() bool {
	return s.state == StateGameOver
}

// Config returns the rules the session was created with.
func (s *Session) Config() Config {
	return s.cfg
}

// ID identifies the session. It survives restarts.
func (s *Session) ID() string {
	return s.id
}

// GameID identifies the current game. Restart assigns a new one.
func (s *Session) GameID() string {
	return s.gameID
}
