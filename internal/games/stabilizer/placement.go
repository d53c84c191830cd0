package stabilizer

import (
	"github.com/datachomps/stabilizer/internal/core"
)

// IsValidPlacement reports whether shape, anchored at pos and shifted by
// offset, fits on the board. A filled cell fails when it is left or right of
// the walls, below the floor, or on an occupied board cell. Cells above the
// top edge (y < 0) only have their column checked.
func IsValidPlacement(board Board, shape Matrix, pos, offset core.Point) bool {
	w, h := board.Width(), board.Height()
	origin := pos.Add(offset)
	for _, c := range shape.Offsets() {
		x, y := origin.X+c.X, origin.Y+c.Y
		if x < 0 || x >= w || y >= h {
			return false
		}
		if y >= 0 && board[y][x] != core.ColorDefault {
			return false
		}
	}
	return true
}
