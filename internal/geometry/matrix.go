package geometry

import "fmt"

// IntMatrix2D is a 2x2 integer matrix plus a translation row (M31, M32),
// applied to row vectors: v*m = (x*M11 + y*M21 + M31, x*M12 + y*M22 + M32).
type IntMatrix2D struct {
	M11, M12 int
	M21, M22 int
	M31, M32 int
}

func NewIntMatrix2D(m11, m12, m21, m22, m31, m32 int) IntMatrix2D {
	return IntMatrix2D{M11: m11, M12: m12, M21: m21, M22: m22, M31: m31, M32: m32}
}

var (
	Identity = NewIntMatrix2D(1, 0, 0, 1, 0, 0)

	// HexTop maps Canon(i,j) to 3*(i+2/3, j+1/3), the top corner of the cell.
	HexTop = NewIntMatrix2D(3, 0, 0, 3, 2, 1)
	// HexBottom maps Canon(i,j) to 3*(i-2/3, j-1/3), the bottom corner of the cell.
	HexBottom = NewIntMatrix2D(3, 0, 0, 3, -2, -1)

	// Rotate60 turns canonical coordinates one sextant: (i,j) -> (i-j, i).
	Rotate60 = NewIntMatrix2D(1, 1, -1, 0, 0, 0)
	// ReflectSextant swaps the J axis with the (1,1) diagonal, fixing the
	// bisector (1,2): (i,j) -> (j-i, j).
	ReflectSextant = NewIntMatrix2D(-1, 0, 1, 1, 0, 0)
)

func (m IntMatrix2D) String() string {
	return fmt.Sprintf("[%d %d; %d %d; %d %d]", m.M11, m.M12, m.M21, m.M22, m.M31, m.M32)
}

// Times returns v*m.
func (v IntVector2D) Times(m IntMatrix2D) IntVector2D {
	return IntVector2D{
		X: v.X*m.M11 + v.Y*m.M21 + m.M31,
		Y: v.X*m.M12 + v.Y*m.M22 + m.M32,
	}
}

// Multiply composes m then n, so that v.Times(m.Multiply(n)) == v.Times(m).Times(n).
func (m IntMatrix2D) Multiply(n IntMatrix2D) IntMatrix2D {
	return IntMatrix2D{
		M11: m.M11*n.M11 + m.M12*n.M21,
		M12: m.M11*n.M12 + m.M12*n.M22,
		M21: m.M21*n.M11 + m.M22*n.M21,
		M22: m.M21*n.M12 + m.M22*n.M22,
		M31: m.M31*n.M11 + m.M32*n.M21 + n.M31,
		M32: m.M31*n.M12 + m.M32*n.M22 + n.M32,
	}
}

// Translate adds an offset after the linear part.
func (m IntMatrix2D) Translate(dx, dy int) IntMatrix2D {
	m.M31 += dx
	m.M32 += dy
	return m
}

func (m IntMatrix2D) Determinant() int {
	return m.M11*m.M22 - m.M12*m.M21
}

// Dodecants returns the twelve transforms that carry dodecant-zero
// coordinates onto every other dodecant around the origin. Even entries
// are pure rotations, odd entries are the mirrored half of the same sextant.
func Dodecants() [12]IntMatrix2D {
	var out [12]IntMatrix2D
	rot := Identity
	for s := range 6 {
		out[2*s] = rot
		out[2*s+1] = ReflectSextant.Multiply(rot)
		rot = rot.Multiply(Rotate60)
	}
	return out
}
