package stabilizer

import (
	"github.com/datachomps/stabilizer/internal/core"
)

// Default board dimensions.
const (
	DefaultWidth  = 10
	DefaultHeight = 20
)

// Board is the grid of locked cells, indexed [y][x]. A cell holds the colour
// of the piece that filled it; the empty colour marks an empty cell.
type Board [][]core.Color

// NewBoard creates an empty board with the given dimensions.
func NewBoard(width, height int) Board {
	b := make(Board, height)
	for y := range b {
		b[y] = make([]core.Color, width)
	}
	return b
}

// Width returns the number of columns.
func (b Board) Width() int {
	if len(b) == 0 {
		return 0
	}
	return len(b[0])
}

// Height returns the number of rows.
func (b Board) Height() int {
	return len(b)
}

// InBounds reports whether (x, y) lies on the board.
func (b Board) InBounds(x, y int) bool {
	return x >= 0 && x < b.Width() && y >= 0 && y < b.Height()
}

// Filled reports whether the cell at (x, y) is occupied.
// Out-of-bounds cells are reported empty.
func (b Board) Filled(x, y int) bool {
	return b.InBounds(x, y) && b[y][x] != core.ColorDefault
}

// Clone returns a deep copy of the board.
func (b Board) Clone() Board {
	out := make(Board, len(b))
	for y := range b {
		out[y] = append([]core.Color(nil), b[y]...)
	}
	return out
}

// RowFull reports whether every cell of row y is occupied.
func (b Board) RowFull(y int) bool {
	for _, c := range b[y] {
		if c == core.ColorDefault {
			return false
		}
	}
	return true
}

// FilledCount returns the number of occupied cells.
func (b Board) FilledCount() int {
	n := 0
	for y := range b {
		for _, c := range b[y] {
			if c != core.ColorDefault {
				n++
			}
		}
	}
	return n
}

// Merge returns a copy of the board with the piece's cells written in its
// colour. Cells above the top edge are dropped.
func (b Board) Merge(p Piece) Board {
	out := b.Clone()
	for _, c := range p.Cells() {
		if c.Y < 0 || !out.InBounds(c.X, c.Y) {
			continue
		}
		out[c.Y][c.X] = p.Color
	}
	return out
}

// ClearLines removes every full row. Remaining rows keep their relative
// order and empty rows are prepended so the height is unchanged.
// Returns the resulting board and the number of rows removed. When rows
// are removed the result shares no rows with b; when no row is full the
// input board is returned as is.
func ClearLines(b Board) (Board, int) {
	kept := make(Board, 0, len(b))
	for y := range b {
		if !b.RowFull(y) {
			kept = append(kept, append([]core.Color(nil), b[y]...))
		}
	}

	cleared := len(b) - len(kept)
	if cleared == 0 {
		return b, 0
	}

	out := NewBoard(b.Width(), cleared)
	return append(out, kept...), cleared
}
