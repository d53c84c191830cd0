// Package stabilizer implements the DATA_CHOMPS falling-block puzzle:
// seven square-matrix pieces fall into a 10x20 board, full rows are cleared
// for points, and the game ends when a new piece cannot be placed.
package stabilizer

import (
	"github.com/datachomps/stabilizer/internal/core"
)

// Kind identifies one of the seven piece templates.
type Kind int

const (
	KindI Kind = iota
	KindJ
	KindL
	KindO
	KindS
	KindT
	KindZ
)

// kindCount is the number of piece kinds drawn from on spawn.
const kindCount = 7

// Matrix is a square grid of 0/1 cells describing a piece in one rotation.
type Matrix [][]uint8

var templates = [kindCount]Matrix{
	KindI: {
		{0, 0, 0, 0},
		{1, 1, 1, 1},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	},
	KindJ: {
		{1, 0, 0},
		{1, 1, 1},
		{0, 0, 0},
	},
	KindL: {
		{0, 0, 1},
		{1, 1, 1},
		{0, 0, 0},
	},
	KindO: {
		{1, 1},
		{1, 1},
	},
	KindS: {
		{0, 1, 1},
		{1, 1, 0},
		{0, 0, 0},
	},
	KindT: {
		{0, 1, 0},
		{1, 1, 1},
		{0, 0, 0},
	},
	KindZ: {
		{1, 1, 0},
		{0, 1, 1},
		{0, 0, 0},
	},
}

// Kinds returns all piece kinds in spawn-table order.
func Kinds() []Kind {
	return []Kind{KindI, KindJ, KindL, KindO, KindS, KindT, KindZ}
}

// String returns the conventional single-letter name of the kind.
func (k Kind) String() string {
	switch k {
	case KindI:
		return "I"
	case KindJ:
		return "J"
	case KindL:
		return "L"
	case KindO:
		return "O"
	case KindS:
		return "S"
	case KindT:
		return "T"
	case KindZ:
		return "Z"
	default:
		return "?"
	}
}

// ParseKind maps a single-letter name back to its kind.
func ParseKind(s string) (Kind, bool) {
	for _, k := range Kinds() {
		if k.String() == s {
			return k, true
		}
	}
	return 0, false
}

// Matrix returns a fresh copy of the kind's spawn rotation.
// The templates themselves are never handed out.
func (k Kind) Matrix() Matrix {
	if k < 0 || int(k) >= kindCount {
		return nil
	}
	return templates[k].Clone()
}

// Clone returns a deep copy of the matrix.
func (m Matrix) Clone() Matrix {
	out := make(Matrix, len(m))
	for y := range m {
		out[y] = append([]uint8(nil), m[y]...)
	}
	return out
}

// Equal reports whether two matrices have the same dimensions and cells.
func (m Matrix) Equal(o Matrix) bool {
	if len(m) != len(o) {
		return false
	}
	for y := range m {
		if len(m[y]) != len(o[y]) {
			return false
		}
		for x := range m[y] {
			if m[y][x] != o[y][x] {
				return false
			}
		}
	}
	return true
}

// Offsets returns the positions of the filled cells relative to the
// matrix's top-left corner, in row-major order.
func (m Matrix) Offsets() []core.Point {
	var pts []core.Point
	for y, row := range m {
		for x, v := range row {
			if v != 0 {
				pts = append(pts, core.Point{X: x, Y: y})
			}
		}
	}
	return pts
}

// Rotate returns the matrix turned 90 degrees clockwise: row i of the
// result is column i of the input read bottom to top. The input is not
// modified.
func Rotate(m Matrix) Matrix {
	if len(m) == 0 {
		return Matrix{}
	}
	rows, cols := len(m), len(m[0])
	out := make(Matrix, cols)
	for i := range cols {
		out[i] = make([]uint8, rows)
		for j := range rows {
			out[i][j] = m[rows-1-j][i]
		}
	}
	return out
}
