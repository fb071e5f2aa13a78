package tetris

import (
	"math/rand"
	"time"

	"github.com/kamstrup/intmap"

	"github.com/vovakirdan/mini-arcade/internal/config"
)

// Rules holds the tunable numbers of a game.
type Rules struct {
	Width  int
	Height int

	LineClear []int // Points per lock indexed by lines cleared, multiplied by level
	SoftDrop  int   // Points per successful downward step
	HardDrop  int   // Points per row of a hard drop

	BaseInterval  time.Duration
	Step          time.Duration
	MinInterval   time.Duration
	LinesPerLevel int
}

// RulesFromConfig converts a loaded config into engine rules.
func RulesFromConfig(cfg config.TetrisConfig) Rules {
	return Rules{
		Width:         cfg.Board.Width,
		Height:        cfg.Board.Height,
		LineClear:     append([]int(nil), cfg.Scoring.LineClear...),
		SoftDrop:      cfg.Scoring.SoftDrop,
		HardDrop:      cfg.Scoring.HardDrop,
		BaseInterval:  cfg.Speed.BaseInterval(),
		Step:          cfg.Speed.Step(),
		MinInterval:   cfg.Speed.MinInterval(),
		LinesPerLevel: cfg.Speed.LinesPerLevel,
	}
}

// DefaultRules returns the classic 10x20 rules.
func DefaultRules() Rules {
	return RulesFromConfig(config.DefaultTetrisConfig())
}

// DropInterval returns the gravity period at the given level.
func (r Rules) DropInterval(level int) time.Duration {
	d := r.BaseInterval - time.Duration(level-1)*r.Step
	if d < r.MinInterval {
		return r.MinInterval
	}
	return d
}

// LevelFor returns the level reached after clearing lines in total.
func (r Rules) LevelFor(lines int) int {
	return lines/r.LinesPerLevel + 1
}

// LineClearScore returns the points for clearing n lines at once.
func (r Rules) LineClearScore(n, level int) int {
	if n <= 0 || len(r.LineClear) == 0 {
		return 0
	}
	if n >= len(r.LineClear) {
		n = len(r.LineClear) - 1
	}
	return r.LineClear[n] * level
}

// PieceSource decides which piece comes next.
type PieceSource interface {
	Next() Kind
}

// RandomSource draws every kind with equal probability.
type RandomSource struct {
	rng *rand.Rand
}

// NewRandomSource creates a source backed by rng.
func NewRandomSource(rng *rand.Rand) *RandomSource {
	return &RandomSource{rng: rng}
}

// Next returns a uniformly random kind.
func (s *RandomSource) Next() Kind {
	return Kind(s.rng.Intn(kindCount))
}

// SequenceSource repeats a fixed order of kinds.
type SequenceSource struct {
	kinds []Kind
	pos   int
}

// NewSequenceSource creates a source that cycles through kinds.
func NewSequenceSource(kinds ...Kind) *SequenceSource {
	return &SequenceSource{kinds: kinds}
}

// Next returns the next kind in the sequence.
func (s *SequenceSource) Next() Kind {
	k := s.kinds[s.pos%len(s.kinds)]
	s.pos++
	return k
}

// Active is the falling piece and its top-left anchor.
type Active struct {
	Piece Piece
	X, Y  int
}

// Engine runs a single Tetris game. It has no timer of its own: the host
// reports time through Start, Advance and Resume, and gravity is applied
// when enough of it has passed.
type Engine struct {
	rules  Rules
	source PieceSource
	board  *Board
	life   *lifecycle

	current Active
	next    Piece

	score int
	lines int
	level int

	now       time.Duration
	lastDrop  time.Duration
	lastClear int

	spawned *intmap.Map[Kind, int]
}

// NewEngine creates a game with an empty board and the first two pieces
// drawn. The game waits in StateNotStarted until Start is called.
func NewEngine(rules Rules, source PieceSource) *Engine {
	e := &Engine{
		rules:   rules,
		source:  source,
		board:   NewBoard(rules.Width, rules.Height),
		life:    newLifecycle(),
		level:   1,
		spawned: intmap.New[Kind, int](kindCount),
	}
	e.next = NewPiece(source.Next())
	e.spawn()
	return e
}

// Start begins play. It returns false if the game was already started.
func (e *Engine) Start(now time.Duration) bool {
	if !e.life.fire(eventStart, now) {
		return false
	}
	e.now = now
	e.lastDrop = now
	return true
}

// Pause suspends gravity and input.
func (e *Engine) Pause() bool {
	return e.life.fire(eventPause, e.now)
}

// Resume continues a paused game. The next gravity step comes a full
// interval after now; time spent paused is not made up.
func (e *Engine) Resume(now time.Duration) bool {
	if !e.life.fire(eventResume, now) {
		return false
	}
	e.now = now
	e.lastDrop = now
	return true
}

// Advance applies gravity. At most one row is dropped per call, when at
// least one drop interval has passed since the last drop. It reports
// whether a gravity step happened.
func (e *Engine) Advance(now time.Duration) bool {
	if e.State() != StatePlaying {
		return false
	}
	e.now = now
	if now-e.lastDrop < e.DropInterval() {
		return false
	}
	e.lastDrop = now
	e.Move(0, 1)
	return true
}

// Move shifts the piece by (dx, dy). A blocked downward move locks the
// piece in place. It reports whether the piece moved.
func (e *Engine) Move(dx, dy int) bool {
	if e.State() != StatePlaying {
		return false
	}
	x, y := e.current.X+dx, e.current.Y+dy
	if e.board.IsValidPosition(e.current.Piece, x, y) {
		e.current.X, e.current.Y = x, y
		if dy > 0 {
			e.score += e.rules.SoftDrop * dy
		}
		return true
	}
	if dy > 0 {
		e.lock()
	}
	return false
}

// Rotate turns the piece clockwise in place. Blocked rotations are dropped.
func (e *Engine) Rotate() bool {
	if e.State() != StatePlaying {
		return false
	}
	rotated := e.current.Piece.Rotated()
	if !e.board.IsValidPosition(rotated, e.current.X, e.current.Y) {
		return false
	}
	e.current.Piece = rotated
	return true
}

// HardDrop drops the piece as far as it goes and locks it.
// It returns the number of rows fallen.
func (e *Engine) HardDrop() int {
	if e.State() != StatePlaying {
		return 0
	}
	landing := e.DropPosition()
	distance := landing - e.current.Y
	e.current.Y = landing
	e.score += distance * e.rules.HardDrop
	e.lock()
	return distance
}

// DropPosition returns the row a hard drop would land the piece on.
func (e *Engine) DropPosition() int {
	y := e.current.Y
	for e.board.IsValidPosition(e.current.Piece, e.current.X, y+1) {
		y++
	}
	return y
}

func (e *Engine) lock() {
	e.board.Merge(e.current.Piece, e.current.X, e.current.Y)

	n := e.board.ClearLines()
	e.lastClear = n
	if n > 0 {
		e.score += e.rules.LineClearScore(n, e.level)
		e.lines += n
		e.level = e.rules.LevelFor(e.lines)
	}

	if !e.spawn() {
		e.life.fire(eventEnd, e.now)
	}
}

// spawn promotes the next piece to the top of the board. When it does not
// fit, the board and the current piece are left untouched and spawn
// returns false.
func (e *Engine) spawn() bool {
	p := e.next
	x := e.rules.Width/2 - p.Width()/2
	if !e.board.IsValidPosition(p, x, 0) {
		return false
	}
	e.current = Active{Piece: p, X: x, Y: 0}
	e.next = NewPiece(e.source.Next())

	count, _ := e.spawned.Get(p.Kind)
	e.spawned.Put(p.Kind, count+1)
	return true
}

// State returns the lifecycle state.
func (e *Engine) State() State { return e.life.state() }

// Board returns the playfield.
func (e *Engine) Board() *Board { return e.board }

// Rules returns the rules the game was created with.
func (e *Engine) Rules() Rules { return e.rules }

// Current returns the falling piece.
func (e *Engine) Current() Active { return e.current }

// Next returns the piece that spawns after the current one locks.
func (e *Engine) Next() Piece { return e.next }

// Score returns the accumulated score.
func (e *Engine) Score() int { return e.score }

// Lines returns the total number of cleared lines.
func (e *Engine) Lines() int { return e.lines }

// Level returns the current level, starting at 1.
func (e *Engine) Level() int { return e.level }

// LastClear returns how many lines the most recent lock cleared.
func (e *Engine) LastClear() int { return e.lastClear }

// DropInterval returns the gravity period at the current level.
func (e *Engine) DropInterval() time.Duration {
	return e.rules.DropInterval(e.level)
}

// Elapsed returns the time spent playing, excluding pauses.
func (e *Engine) Elapsed() time.Duration {
	return e.life.playedAt(e.now)
}

// Stats returns how many pieces of each kind have spawned.
func (e *Engine) Stats() map[Kind]int {
	out := make(map[Kind]int, kindCount)
	for _, k := range Kinds() {
		if n, ok := e.spawned.Get(k); ok {
			out[k] = n
		}
	}
	return out
}
