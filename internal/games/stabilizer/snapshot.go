package stabilizer

import "github.com/datachomps/stabilizer/internal/core"

// Snapshot captures the complete session state for determinism testing.
type Snapshot struct {
	Phase  Phase
	Score  int
	Lines  int
	Pieces int
	Kind   Kind
	Pos    core.Point
	Shape  Matrix
	Board  Board
}

// Snapshot returns a copy of the session state.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		Phase:  s.phase,
		Score:  s.score,
		Lines:  s.lines,
		Pieces: s.pieces,
		Kind:   s.piece.Kind,
		Pos:    s.piece.Pos,
		Shape:  s.piece.Shape.Clone(),
		Board:  s.board.Clone(),
	}
}

// Equal reports whether two snapshots describe the same state.
func (a Snapshot) Equal(b Snapshot) bool {
	if a.Phase != b.Phase || a.Score != b.Score || a.Lines != b.Lines ||
		a.Pieces != b.Pieces || a.Kind != b.Kind || a.Pos != b.Pos {
		return false
	}
	if !a.Shape.Equal(b.Shape) || a.Board.Height() != b.Board.Height() {
		return false
	}
	for y := range a.Board {
		if len(a.Board[y]) != len(b.Board[y]) {
			return false
		}
		for x := range a.Board[y] {
			if a.Board[y][x] != b.Board[y][x] {
				return false
			}
		}
	}
	return true
}
