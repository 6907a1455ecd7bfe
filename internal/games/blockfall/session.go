package blockfall

import (
	"math/rand"

	"github.com/tinypulse/arcade/internal/config"
)

// State is the controller state of a Session.
type State int

const (
	StatePlaying State = iota
	StateGameOver
)

func (s State) String() string {
	switch s {
	case StatePlaying:
		return "playing"
	case StateGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Input is one frame of player intent. SoftDrop is level-triggered (held);
// the others are edge-triggered presses.
type Input struct {
	MoveLeft  bool
	MoveRight bool
	Rotate    bool
	SoftDrop  bool
	Restart   bool
}

// ScoreReporter receives the final score when a run ends.
type ScoreReporter interface {
	ReportScore(score int)
}

// ScoreReporterFunc adapts a function to ScoreReporter.
type ScoreReporterFunc func(score int)

// ReportScore calls f(score).
func (f ScoreReporterFunc) ReportScore(score int) {
	f(score)
}

// ShapeSource picks the next shape to spawn.
type ShapeSource interface {
	NextShape() ShapeID
}

// RandomSource draws shapes uniformly with replacement.
type RandomSource struct {
	rng *rand.Rand
}

// NewRandomSource creates a source seeded with seed.
func NewRandomSource(seed int64) *RandomSource {
	return &RandomSource{rng: rand.New(rand.NewSource(seed))}
}

// NextShape returns one of the seven shapes.
func (r *RandomSource) NextShape() ShapeID {
	return ShapeID(r.rng.Intn(ShapeCount) + 1)
}

// Option configures a Session.
type Option func(*Session)

// WithConfig replaces the default board, timing and scoring settings.
func WithConfig(cfg config.BlockfallConfig) Option {
	return func(s *Session) {
		s.cfg = cfg
	}
}

// WithShapeSource sets where spawned shapes come from.
func WithShapeSource(src ShapeSource) Option {
	return func(s *Session) {
		s.source = src
	}
}

// WithSeed seeds the default random shape source.
func WithSeed(seed int64) Option {
	return func(s *Session) {
		s.source = NewRandomSource(seed)
	}
}

// WithReporter sets the game-over callback.
func WithReporter(r ScoreReporter) Option {
	return func(s *Session) {
		s.reporter = r
	}
}

// Session runs one Blockfall game: falling piece, gravity, locking,
// line clears, scoring and the playing/game-over cycle.
// A Session is driven from a single goroutine.
type Session struct {
	cfg        config.BlockfallConfig
	difficulty *config.DifficultyManager
	source     ShapeSource
	reporter   ScoreReporter

	board  *Board
	active Piece
	next   ShapeID
	score  int
	lines  int
	timer  float64
	state  State
}

// NewSession creates a session and starts its first run.
func NewSession(opts ...Option) *Session {
	s := &Session{cfg: config.DefaultBlockfallConfig()}
	for _, opt := range opts {
		opt(s)
	}
	if s.source == nil {
		s.source = NewRandomSource(rand.Int63())
	}
	if len(s.cfg.Scoring.LinePoints) == 0 {
		s.cfg.Scoring.LinePoints = DefaultLinePoints
	}
	s.difficulty = config.NewDifficultyManager(s.cfg.Difficulty)
	s.board = NewBoard(s.cfg.Board.Rows, s.cfg.Board.Cols)
	s.reset()
	return s
}

// SetReporter replaces the game-over callback.
func (s *Session) SetReporter(r ScoreReporter) {
	s.reporter = r
}

// reset starts a fresh run on an empty board.
func (s *Session) reset() {
	s.board.Reset()
	s.score = 0
	s.lines = 0
	s.timer = 0
	s.state = StatePlaying
	s.active = s.spawnPiece(s.source.NextShape())
	s.next = s.source.NextShape()
}

func (s *Session) spawnPiece(id ShapeID) Piece {
	return SpawnPiece(id, s.cfg.Board.SpawnColumn(), s.cfg.Board.SpawnRow)
}

// timerEpsilon absorbs rounding when fixed deltas like 1/60 are summed.
const timerEpsilon = 1e-9

// Update advances one frame: rotate, move left, move right, then gravity.
// During game over only Restart is honored.
func (s *Session) Update(in Input, dt float64) {
	if s.state == StateGameOver {
		if in.Restart {
			s.Restart()
		}
		return
	}

	if in.Rotate {
		s.Rotate()
	}
	if in.MoveLeft {
		s.MoveLeft()
	}
	if in.MoveRight {
		s.MoveRight()
	}

	if dt > 0 {
		s.timer += dt
	}
	if s.timer+timerEpsilon >= s.DropInterval() || in.SoftDrop {
		s.Step()
		s.timer = 0
	}
}

// MoveLeft shifts the active piece one column left if legal.
func (s *Session) MoveLeft() bool {
	return s.try(s.active.Moved(-1, 0))
}

// MoveRight shifts the active piece one column right if legal.
func (s *Session) MoveRight() bool {
	return s.try(s.active.Moved(1, 0))
}

// Rotate turns the active piece clockwise in place if legal.
// There are no wall kicks: a blocked rotation is dropped.
func (s *Session) Rotate() bool {
	return s.try(s.active.Rotated())
}

func (s *Session) try(candidate Piece) bool {
	if s.state != StatePlaying || !s.board.Fits(candidate) {
		return false
	}
	s.active = candidate
	return true
}

// Step applies one gravity step: the piece falls a row, or locks when it
// cannot. It returns whether a lock happened and how many rows it cleared.
func (s *Session) Step() (locked bool, cleared int) {
	if s.state != StatePlaying {
		return false, 0
	}
	if s.try(s.active.Moved(0, 1)) {
		return false, 0
	}
	return true, s.lock()
}

// lock merges the active piece, scores cleared rows and spawns the next piece.
func (s *Session) lock() int {
	s.board.Merge(s.active)
	cleared := s.board.ClearFullRows()
	s.score += PointsFor(s.cfg.Scoring.LinePoints, cleared)
	s.lines += cleared

	s.active = s.spawnPiece(s.next)
	s.next = s.source.NextShape()
	if !s.board.Fits(s.active) {
		s.state = StateGameOver
		if s.reporter != nil {
			s.reporter.ReportScore(s.score)
		}
	}
	return cleared
}

// Restart clears the board and begins a new run.
func (s *Session) Restart() {
	s.reset()
}

// DropInterval returns the current gravity interval in seconds.
func (s *Session) DropInterval() float64 {
	return s.difficulty.DropInterval(s.cfg.Timing.DropInterval, s.cfg.Timing.MinDropInterval, s.score, s.lines)
}

// Level is 1 plus one per LinesPerLevel rows cleared.
func (s *Session) Level() int {
	per := s.cfg.Scoring.LinesPerLevel
	if per <= 0 {
		return 1
	}
	return s.lines/per + 1
}

// State returns the controller state.
func (s *Session) State() State {
	return s.state
}

// GameOver reports whether the run has ended.
func (s *Session) GameOver() bool {
	return s.state == StateGameOver
}

// Score returns the points earned this run.
func (s *Session) Score() int {
	return s.score
}

// Lines returns the rows cleared this run.
func (s *Session) Lines() int {
	return s.lines
}

// Active returns the falling piece.
func (s *Session) Active() Piece {
	return s.active
}

// Next returns the shape that spawns after the current piece locks.
func (s *Session) Next() ShapeID {
	return s.next
}

// Board returns the live board. Callers must not mutate it.
func (s *Session) Board() *Board {
	return s.board
}

// Config returns the settings the session was built with.
func (s *Session) Config() config.BlockfallConfig {
	return s.cfg
}
