package stabilizer

import (
	"testing"
	"time"

	"github.com/datachomps/stabilizer/internal/core"
)

// seqRand returns a fixed sequence of kinds, wrapping around.
type seqRand struct {
	seq []int
	i   int
}

func (r *seqRand) Intn(n int) int {
	v := r.seq[r.i%len(r.seq)] % n
	r.i++
	return v
}

func newTestSession(kinds ...Kind) *Session {
	seq := make([]int, len(kinds))
	for i, k := range kinds {
		seq[i] = int(k)
	}
	return NewSession(DefaultSettings(), &seqRand{seq: seq})
}

func newRunningSession(kinds ...Kind) *Session {
	s := newTestSession(kinds...)
	s.Start()
	return s
}

// dropUntilLocked drops the active piece until it locks.
func dropUntilLocked(t *testing.T, s *Session) DropResult {
	t.Helper()
	for range s.settings.Height + 5 {
		if res := s.Drop(); res.Locked || !res.Moved {
			return res
		}
	}
	t.Fatal("Piece never locked")
	return DropResult{}
}

func TestNewSession(t *testing.T) {
	s := newTestSession(KindT)

	if s.Phase() != PhaseIdle {
		t.Errorf("Phase = %v, want idle", s.Phase())
	}
	if s.Score() != 0 || s.Lines() != 0 {
		t.Errorf("Score/Lines = %d/%d, want 0/0", s.Score(), s.Lines())
	}
	if s.Board().FilledCount() != 0 {
		t.Error("Board should start empty")
	}

	p := s.Piece()
	if p.Kind != KindT {
		t.Errorf("Piece kind = %v, want T", p.Kind)
	}
	if p.Pos != (core.Point{X: 4, Y: 0}) {
		t.Errorf("Spawn position = %v, want (4,0)", p.Pos)
	}
	if p.Color != core.ColorGold {
		t.Errorf("Piece colour = %q, want gold", p.Color)
	}
}

func TestSpawnPointFollowsWidth(t *testing.T) {
	settings := DefaultSettings()
	settings.Width = 7
	s := NewSession(settings, &seqRand{seq: []int{0}})

	if got := s.SpawnPoint(); got != (core.Point{X: 2, Y: 0}) {
		t.Errorf("SpawnPoint = %v, want (2,0)", got)
	}
}

func TestPaletteColour(t *testing.T) {
	settings := DefaultSettings()
	settings.Palette = map[Kind]core.Color{KindS: core.ColorEmerald}
	s := NewSession(settings, &seqRand{seq: []int{int(KindS)}})

	if got := s.Piece().Color; got != core.ColorEmerald {
		t.Errorf("Piece colour = %q, want emerald", got)
	}
}

func TestInputIgnoredWhenIdle(t *testing.T) {
	s := newTestSession(KindT)
	before := s.Snapshot()

	if s.MoveLeft() || s.MoveRight() || s.Rotate() {
		t.Error("Moves should be ignored while idle")
	}
	if res := s.SoftDrop(); res.Moved || res.Locked {
		t.Error("Drop should be ignored while idle")
	}
	if _, dropped := s.Tick(time.Hour); dropped {
		t.Error("Gravity should not run while idle")
	}
	if !s.Snapshot().Equal(before) {
		t.Error("Idle session changed state")
	}
}

func TestStartKeepsBoard(t *testing.T) {
	s := newTestSession(KindT)
	before := s.Snapshot()

	if !s.Start() {
		t.Fatal("Start from idle should succeed")
	}
	if s.Start() {
		t.Error("Start while running should fail")
	}

	after := s.Snapshot()
	if after.Phase != PhaseRunning {
		t.Errorf("Phase = %v, want running", after.Phase)
	}
	after.Phase = before.Phase
	if !after.Equal(before) {
		t.Error("Start should not change the board or piece")
	}
}

func TestMoveStopsAtWalls(t *testing.T) {
	s := newRunningSession(KindI)

	moves := 0
	for s.MoveLeft() {
		moves++
	}
	if moves != 4 {
		t.Errorf("Moved left %d times, want 4", moves)
	}
	if s.Piece().Pos.X != 0 {
		t.Errorf("X = %d, want 0", s.Piece().Pos.X)
	}

	moves = 0
	for s.MoveRight() {
		moves++
	}
	// I spans four columns, so its left edge stops at 6
	if moves != 6 || s.Piece().Pos.X != 6 {
		t.Errorf("Moved right %d times to x=%d, want 6 to x=6", moves, s.Piece().Pos.X)
	}
}

func TestMoveBlockedByCells(t *testing.T) {
	s := newRunningSession(KindO)
	s.board[0][3] = core.ColorGold

	if s.MoveLeft() {
		t.Error("Move into an occupied cell should fail")
	}
	if s.Piece().Pos.X != 4 {
		t.Errorf("Blocked move changed X to %d", s.Piece().Pos.X)
	}
}

func TestRotate(t *testing.T) {
	s := newRunningSession(KindI)

	if !s.Rotate() {
		t.Fatal("Rotation in open space should succeed")
	}
	cells := s.Piece().Cells()
	for _, c := range cells {
		if c.X != 6 {
			t.Errorf("Vertical I cell at x=%d, want 6", c.X)
		}
	}
}

func TestRotateBlocked(t *testing.T) {
	s := newRunningSession(KindI)
	s.board[3][6] = core.ColorGold
	before := s.Piece()

	if s.Rotate() {
		t.Error("Rotation into an occupied cell should fail")
	}
	if !s.Piece().Shape.Equal(before.Shape) || s.Piece().Pos != before.Pos {
		t.Error("Blocked rotation changed the piece")
	}
}

func TestRotateAtWallHasNoKick(t *testing.T) {
	s := newRunningSession(KindI)
	s.Rotate()
	for s.MoveRight() {
	}
	// Vertical I in the last column; turning it back would cross the wall
	before := s.Piece()
	if s.Rotate() {
		t.Errorf("Rotation past the wall should fail, piece now at %v", s.Piece().Pos)
	}
	if s.Piece().Pos != before.Pos {
		t.Error("Blocked rotation moved the piece")
	}
}

func TestDropLocksAndSpawns(t *testing.T) {
	s := newRunningSession(KindO, KindT)

	res := dropUntilLocked(t, s)
	if !res.Locked || res.GameOver {
		t.Fatalf("Drop result = %+v, want a lock", res)
	}
	if res.Cleared != 0 || s.Score() != 0 {
		t.Errorf("No line should clear, got %d (score %d)", res.Cleared, s.Score())
	}

	b := s.Board()
	for _, c := range []core.Point{{X: 4, Y: 18}, {X: 5, Y: 18}, {X: 4, Y: 19}, {X: 5, Y: 19}} {
		if !b.Filled(c.X, c.Y) {
			t.Errorf("Cell %v should be locked", c)
		}
	}

	p := s.Piece()
	if p.Kind != KindT || p.Pos != s.SpawnPoint() {
		t.Errorf("Next piece = %v at %v, want T at spawn", p.Kind, p.Pos)
	}
	if s.Pieces() != 2 {
		t.Errorf("Pieces = %d, want 2", s.Pieces())
	}
}

func TestDropClearsAndScores(t *testing.T) {
	tests := []struct {
		name  string
		rows  int
		score int
	}{
		{"single", 1, 100},
		{"double", 2, 200},
		{"triple", 3, 300},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newRunningSession(KindI)
			s.Rotate()
			for s.MoveLeft() {
			}
			// Vertical I falls into column 0; the rows it completes are
			// full everywhere else
			for y := 20 - tt.rows; y < 20; y++ {
				for x := 1; x < 10; x++ {
					s.board[y][x] = core.ColorGold
				}
			}

			res := dropUntilLocked(t, s)
			if res.Cleared != tt.rows {
				t.Errorf("Cleared %d rows, want %d", res.Cleared, tt.rows)
			}
			if res.Points != tt.score || s.Score() != tt.score {
				t.Errorf("Points %d, score %d, want %d", res.Points, s.Score(), tt.score)
			}
			if s.Lines() != tt.rows {
				t.Errorf("Lines = %d, want %d", s.Lines(), tt.rows)
			}
			// Only the part of the I above the cleared rows is left
			if n := s.Board().FilledCount(); n != 4-tt.rows {
				t.Errorf("%d cells remain, want %d", n, 4-tt.rows)
			}
		})
	}
}

func TestTetrisScoresFourHundred(t *testing.T) {
	s := newRunningSession(KindI)
	s.Rotate()
	for s.MoveLeft() {
	}
	for y := 16; y < 20; y++ {
		for x := 1; x < 10; x++ {
			s.board[y][x] = core.ColorGold
		}
	}

	res := dropUntilLocked(t, s)
	if res.Cleared != 4 || s.Score() != 400 {
		t.Errorf("Cleared %d, score %d, want 4 and 400", res.Cleared, s.Score())
	}
	if s.Board().FilledCount() != 0 {
		t.Error("Board should be empty")
	}
}

func TestGameOverWhenSpawnBlocked(t *testing.T) {
	s := newRunningSession(KindI)
	for y := 2; y < 20; y++ {
		s.board[y][4] = core.ColorGold
	}
	old := s.Piece()

	res := s.Drop()
	if !res.Locked || !res.GameOver {
		t.Fatalf("Drop result = %+v, want lock and game over", res)
	}
	if s.Phase() != PhaseGameOver {
		t.Errorf("Phase = %v, want game_over", s.Phase())
	}
	// The blocked piece is not installed
	if p := s.Piece(); p.Pos != old.Pos || !p.Shape.Equal(old.Shape) {
		t.Error("Active piece should be the one that locked")
	}
	if s.Pieces() != 1 {
		t.Errorf("Pieces = %d, want 1 (blocked spawn not counted)", s.Pieces())
	}
}

func TestNarrowestBoardFitsEverySpawn(t *testing.T) {
	settings := DefaultSettings()
	settings.Width = 5
	settings.Height = 4

	for _, k := range Kinds() {
		t.Run(k.String(), func(t *testing.T) {
			s := NewSession(settings, &seqRand{seq: []int{int(k)}})
			if !s.Piece().Fits(s.Board()) {
				t.Errorf("%v does not fit at spawn %v on a 5-wide board", k, s.SpawnPoint())
			}
		})
	}
}

func TestGameOverIsInert(t *testing.T) {
	s := newRunningSession(KindI)
	for y := 2; y < 20; y++ {
		s.board[y][4] = core.ColorGold
	}
	s.Drop()
	before := s.Snapshot()

	s.MoveLeft()
	s.MoveRight()
	s.Rotate()
	s.SoftDrop()
	s.Tick(time.Hour)
	if s.Start() {
		t.Error("Start should not leave game over")
	}

	if !s.Snapshot().Equal(before) {
		t.Error("Game over session changed state")
	}
}

func TestRestartAfterGameOver(t *testing.T) {
	s := newRunningSession(KindI)
	s.score = 700
	for y := 2; y < 20; y++ {
		s.board[y][4] = core.ColorGold
	}
	s.Drop()

	s.Restart()
	if s.Phase() != PhaseRunning {
		t.Errorf("Phase = %v, want running", s.Phase())
	}
	if s.Score() != 0 || s.Lines() != 0 || s.Pieces() != 1 {
		t.Errorf("Counters = %d/%d/%d, want 0/0/1", s.Score(), s.Lines(), s.Pieces())
	}
	if s.Board().FilledCount() != 0 {
		t.Error("Board should be empty after restart")
	}
	if s.Piece().Pos != s.SpawnPoint() {
		t.Error("New piece should be at the spawn point")
	}
}

func TestRestartBeforeStartStaysIdle(t *testing.T) {
	s := newTestSession(KindT)
	s.Restart()

	if s.Phase() != PhaseIdle {
		t.Errorf("Phase = %v, want idle", s.Phase())
	}
}

func TestTickDrivesGravity(t *testing.T) {
	s := newRunningSession(KindT)

	if _, dropped := s.Tick(800 * time.Millisecond); dropped {
		t.Error("Exactly one interval should not drop yet")
	}
	res, dropped := s.Tick(time.Millisecond)
	if !dropped || !res.Moved {
		t.Fatalf("Tick past the interval should drop, got %+v", res)
	}
	if s.Piece().Pos.Y != 1 {
		t.Errorf("Y = %d, want 1", s.Piece().Pos.Y)
	}

	// A long stall still drops a single row
	s.Tick(10 * time.Second)
	if s.Piece().Pos.Y != 2 {
		t.Errorf("Y = %d after stall, want 2", s.Piece().Pos.Y)
	}
}

func TestPhaseString(t *testing.T) {
	tests := map[Phase]string{
		PhaseIdle:     "idle",
		PhaseRunning:  "running",
		PhaseGameOver: "game_over",
		Phase(99):     "unknown",
	}
	for p, want := range tests {
		if got := p.String(); got != want {
			t.Errorf("Phase(%d).String() = %q, want %q", p, got, want)
		}
	}
}
