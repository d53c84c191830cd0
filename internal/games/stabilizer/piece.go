package stabilizer

import (
	"github.com/datachomps/stabilizer/internal/core"
)

// Piece is the falling shape. It is a value: moves and rotations return a
// new Piece and never modify the receiver or its matrix.
type Piece struct {
	Kind  Kind
	Shape Matrix
	Color core.Color
	Pos   core.Point // board position of the matrix's top-left cell
}

// NewPiece creates a piece of the given kind at pos using a copy of the
// kind's template.
func NewPiece(k Kind, color core.Color, pos core.Point) Piece {
	return Piece{
		Kind:  k,
		Shape: k.Matrix(),
		Color: color,
		Pos:   pos,
	}
}

// Moved returns the piece shifted by (dx, dy).
func (p Piece) Moved(dx, dy int) Piece {
	p.Pos = p.Pos.Add(core.Point{X: dx, Y: dy})
	return p
}

// Rotated returns the piece turned 90 degrees clockwise in place.
func (p Piece) Rotated() Piece {
	p.Shape = Rotate(p.Shape)
	return p
}

// Cells returns the absolute board coordinates of the piece's filled cells.
func (p Piece) Cells() []core.Point {
	offs := p.Shape.Offsets()
	for i := range offs {
		offs[i] = offs[i].Add(p.Pos)
	}
	return offs
}

// Fits reports whether the piece can sit at its current position.
func (p Piece) Fits(b Board) bool {
	return IsValidPlacement(b, p.Shape, p.Pos, core.Point{})
}
