package stabilizer

import (
	"time"

	"github.com/datachomps/stabilizer/internal/core"
)

// DefaultPointsPerLine is the score awarded for each cleared row.
const DefaultPointsPerLine = 100

// Phase is the coarse state of a session.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseRunning
	PhaseGameOver
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseRunning:
		return "running"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Randomizer picks the next piece kind. *rand.Rand satisfies it; tests
// substitute a fixed sequence.
type Randomizer interface {
	Intn(n int) int
}

// Settings holds the tunable rules of a session.
type Settings struct {
	Width         int
	Height        int
	DropInterval  time.Duration
	PointsPerLine int
	Palette       map[Kind]core.Color // colour per kind; missing kinds use ColorGold
}

// DefaultSettings returns the classic 10x20 board, 800ms gravity and
// 100 points per line.
func DefaultSettings() Settings {
	return Settings{
		Width:         DefaultWidth,
		Height:        DefaultHeight,
		DropInterval:  DefaultDropInterval,
		PointsPerLine: DefaultPointsPerLine,
	}
}

// color returns the display colour for a kind.
func (s Settings) color(k Kind) core.Color {
	if c, ok := s.Palette[k]; ok && c != core.ColorDefault {
		return c
	}
	return core.ColorGold
}

// DropResult describes what a single gravity drop did.
type DropResult struct {
	Moved    bool // piece fell one row
	Locked   bool // piece was merged into the board
	Cleared  int  // rows removed by the lock
	Points   int  // score awarded by the lock
	GameOver bool // the next piece could not be placed
}

// Session owns one game: board, active piece, score and phase.
// It is not safe for concurrent use; the platform drives it from a
// single event loop.
type Session struct {
	settings Settings
	rng      Randomizer
	gravity  Gravity

	board   Board
	piece   Piece
	phase   Phase
	started bool

	score  int
	lines  int
	pieces int
}

// NewSession creates an idle session with an empty board and a freshly
// spawned piece. rng must not be nil.
func NewSession(settings Settings, rng Randomizer) *Session {
	if settings.Width <= 0 {
		settings.Width = DefaultWidth
	}
	if settings.Height <= 0 {
		settings.Height = DefaultHeight
	}
	if settings.PointsPerLine < 0 {
		settings.PointsPerLine = DefaultPointsPerLine
	}

	s := &Session{
		settings: settings,
		rng:      rng,
		gravity:  NewGravity(settings.DropInterval),
	}
	s.reset()
	return s
}

// reset empties the board and counters and installs a new piece.
func (s *Session) reset() {
	s.board = NewBoard(s.settings.Width, s.settings.Height)
	s.score = 0
	s.lines = 0
	s.pieces = 0
	s.gravity.Reset()
	s.install(s.spawn())
}

// spawn picks a random kind and places it horizontally centred on row 0.
func (s *Session) spawn() Piece {
	kind := Kind(s.rng.Intn(kindCount))
	return NewPiece(kind, s.settings.color(kind), s.SpawnPoint())
}

// install makes p the active piece and counts it as played.
func (s *Session) install(p Piece) {
	s.piece = p
	s.pieces++
}

// SpawnPoint returns the top-left position new pieces appear at.
func (s *Session) SpawnPoint() core.Point {
	return core.Point{X: s.settings.Width/2 - 1, Y: 0}
}

// Start moves an idle session to running. The board and piece are kept.
// Returns false if the session was not idle.
func (s *Session) Start() bool {
	if s.phase != PhaseIdle {
		return false
	}
	s.phase = PhaseRunning
	s.started = true
	s.gravity.Reset()
	return true
}

// Restart empties the board, zeroes the score and spawns a new piece.
// A session that was started before goes straight back to running;
// one that never left the start prompt stays idle.
func (s *Session) Restart() {
	s.reset()
	if s.started {
		s.phase = PhaseRunning
	} else {
		s.phase = PhaseIdle
	}
}

// Tick feeds elapsed refresh time into the gravity clock and performs a
// drop when one is due. Ticks outside the running phase are ignored.
func (s *Session) Tick(dt time.Duration) (DropResult, bool) {
	if s.phase != PhaseRunning {
		return DropResult{}, false
	}
	if !s.gravity.Advance(dt) {
		return DropResult{}, false
	}
	return s.Drop(), true
}

// Drop moves the piece down one row, or locks it when it cannot fall:
// the piece is merged, full rows are cleared and scored, and the next
// piece is spawned. If the next piece does not fit the session is over
// and the piece is not installed.
func (s *Session) Drop() DropResult {
	if s.phase != PhaseRunning {
		return DropResult{}
	}

	if IsValidPlacement(s.board, s.piece.Shape, s.piece.Pos, core.Point{Y: 1}) {
		s.piece = s.piece.Moved(0, 1)
		return DropResult{Moved: true}
	}

	merged := s.board.Merge(s.piece)
	board, cleared := ClearLines(merged)
	s.board = board

	res := DropResult{Locked: true, Cleared: cleared}
	if cleared > 0 {
		res.Points = cleared * s.settings.PointsPerLine
		s.score += res.Points
		s.lines += cleared
	}

	next := s.spawn()
	if !next.Fits(s.board) {
		s.phase = PhaseGameOver
		res.GameOver = true
		return res
	}
	s.install(next)
	return res
}

// SoftDrop is the player-triggered equivalent of one gravity drop.
func (s *Session) SoftDrop() DropResult {
	return s.Drop()
}

// MoveLeft shifts the piece one column left if it fits.
func (s *Session) MoveLeft() bool {
	return s.shift(-1)
}

// MoveRight shifts the piece one column right if it fits.
func (s *Session) MoveRight() bool {
	return s.shift(1)
}

func (s *Session) shift(dx int) bool {
	if s.phase != PhaseRunning {
		return false
	}
	if !IsValidPlacement(s.board, s.piece.Shape, s.piece.Pos, core.Point{X: dx}) {
		return false
	}
	s.piece = s.piece.Moved(dx, 0)
	return true
}

// Rotate turns the piece clockwise if the rotated shape fits where the
// piece is. Blocked rotations are dropped without any offset correction.
func (s *Session) Rotate() bool {
	if s.phase != PhaseRunning {
		return false
	}
	rotated := s.piece.Rotated()
	if !rotated.Fits(s.board) {
		return false
	}
	s.piece = rotated
	return true
}

// Board returns a copy of the locked cells.
func (s *Session) Board() Board {
	return s.board.Clone()
}

// Piece returns a copy of the active piece.
func (s *Session) Piece() Piece {
	p := s.piece
	p.Shape = p.Shape.Clone()
	return p
}

// Phase returns the current phase.
func (s *Session) Phase() Phase {
	return s.phase
}

// Score returns the current score.
func (s *Session) Score() int {
	return s.score
}

// Lines returns the number of rows cleared this game.
func (s *Session) Lines() int {
	return s.lines
}

// Pieces returns the number of pieces put in play this game. A spawn
// that ends the game is not counted.
func (s *Session) Pieces() int {
	return s.pieces
}

// Settings returns the rules the session was created with.
func (s *Session) Settings() Settings {
	return s.settings
}
