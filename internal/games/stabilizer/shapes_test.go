package stabilizer

import (
	"testing"

	"github.com/datachomps/stabilizer/internal/core"
)

func TestTemplatesAreSquare(t *testing.T) {
	for _, k := range Kinds() {
		m := k.Matrix()
		for y, row := range m {
			if len(row) != len(m) {
				t.Errorf("%s: row %d has %d cells, want %d", k, y, len(row), len(m))
			}
		}
		if got := len(m.Offsets()); got != 4 {
			t.Errorf("%s: %d filled cells, want 4", k, got)
		}
	}
}

func TestKindMatrixIsCopy(t *testing.T) {
	m := KindT.Matrix()
	m[0][0] = 1

	if KindT.Matrix()[0][0] != 0 {
		t.Error("Mutating a returned matrix changed the template")
	}
}

func TestParseKind(t *testing.T) {
	for _, k := range Kinds() {
		got, ok := ParseKind(k.String())
		if !ok || got != k {
			t.Errorf("ParseKind(%q) = %v, %v", k.String(), got, ok)
		}
	}
	if _, ok := ParseKind("X"); ok {
		t.Error("ParseKind(\"X\") should fail")
	}
}

func TestRotateClockwise(t *testing.T) {
	got := Rotate(KindT.Matrix())
	want := Matrix{
		{0, 1, 0},
		{0, 1, 1},
		{0, 1, 0},
	}
	if !got.Equal(want) {
		t.Errorf("Rotate(T) = %v, want %v", got, want)
	}

	// Horizontal I becomes vertical in the third column
	got = Rotate(KindI.Matrix())
	for y := range 4 {
		for x := range 4 {
			want := uint8(0)
			if x == 2 {
				want = 1
			}
			if got[y][x] != want {
				t.Errorf("Rotate(I)[%d][%d] = %d, want %d", y, x, got[y][x], want)
			}
		}
	}
}

func TestRotateFourTimesIsIdentity(t *testing.T) {
	for _, k := range Kinds() {
		orig := k.Matrix()
		m := orig
		for range 4 {
			m = Rotate(m)
		}
		if !m.Equal(orig) {
			t.Errorf("%s: four rotations = %v, want %v", k, m, orig)
		}
	}
}

func TestRotateDoesNotMutateInput(t *testing.T) {
	m := KindL.Matrix()
	before := m.Clone()
	Rotate(m)

	if !m.Equal(before) {
		t.Errorf("Rotate modified its input: %v, want %v", m, before)
	}
}

func TestRotateNonSquare(t *testing.T) {
	got := Rotate(Matrix{{1, 1, 1}})
	want := Matrix{{1}, {1}, {1}}
	if !got.Equal(want) {
		t.Errorf("Rotate(1x3) = %v, want %v", got, want)
	}

	if len(Rotate(nil)) != 0 {
		t.Error("Rotate(nil) should be empty")
	}
}

func TestPieceMovedIsValue(t *testing.T) {
	p := NewPiece(KindO, core.ColorGold, core.Point{X: 4, Y: 0})
	q := p.Moved(1, 2)

	if p.Pos != (core.Point{X: 4, Y: 0}) {
		t.Errorf("Moved changed the receiver: %v", p.Pos)
	}
	if q.Pos != (core.Point{X: 5, Y: 2}) {
		t.Errorf("Moved position = %v, want (5,2)", q.Pos)
	}

	r := p.Rotated()
	if !p.Shape.Equal(KindO.Matrix()) {
		t.Error("Rotated changed the receiver's shape")
	}
	if !r.Shape.Equal(Rotate(p.Shape)) {
		t.Error("Rotated shape mismatch")
	}
}

func TestPieceCells(t *testing.T) {
	p := NewPiece(KindI, core.ColorGold, core.Point{X: 4, Y: 0})
	want := []core.Point{{X: 4, Y: 1}, {X: 5, Y: 1}, {X: 6, Y: 1}, {X: 7, Y: 1}}

	got := p.Cells()
	if len(got) != len(want) {
		t.Fatalf("Cells() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Cells()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}
