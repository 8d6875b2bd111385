package geometry

import "fmt"

// IntVector2D is a direction from the observer, read as the rational slope X/Y.
type IntVector2D struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func (v IntVector2D) String() string {
	return fmt.Sprintf("(%d,%d)", v.X, v.Y)
}

func (v IntVector2D) Add(w IntVector2D) IntVector2D {
	return IntVector2D{X: v.X + w.X, Y: v.Y + w.Y}
}

func (v IntVector2D) Scale(k int) IntVector2D {
	return IntVector2D{X: v.X * k, Y: v.Y * k}
}

// GreaterThan reports whether lhs lies angularly above rhs. The test is the
// sign of the cross product, so it is exact for integers. It is a total order
// only while both vectors lie in the same dodecant; nothing here checks that.
func GreaterThan(lhs, rhs IntVector2D) bool {
	return lhs.X*rhs.Y > lhs.Y*rhs.X
}

func LessOrEqual(lhs, rhs IntVector2D) bool {
	return !GreaterThan(lhs, rhs)
}

// Max returns the angularly larger vector. Ties go to rhs.
func Max(lhs, rhs IntVector2D) IntVector2D {
	if GreaterThan(lhs, rhs) {
		return lhs
	}
	return rhs
}

// Min returns the angularly smaller vector. Ties go to rhs.
func Min(lhs, rhs IntVector2D) IntVector2D {
	if GreaterThan(rhs, lhs) {
		return lhs
	}
	return rhs
}

// Dodecant zero runs from the canonical J axis (0,1) to the sextant
// bisector (1,2).
var (
	DodecantBottom = IntVector2D{X: 0, Y: 1}
	DodecantTop    = IntVector2D{X: 1, Y: 2}
)

// InDodecant reports whether v lies in the closed wedge of dodecant zero.
func InDodecant(v IntVector2D) bool {
	return v.Y > 0 && v.X >= 0 && 2*v.X <= v.Y
}

// CheckDodecant returns ErrOutsideDodecant for the first vector that falls
// outside dodecant zero.
func CheckDodecant(vs ...IntVector2D) error {
	for _, v := range vs {
		if !InDodecant(v) {
			return fmt.Errorf("vector %s: %w", v, ErrOutsideDodecant)
		}
	}
	return nil
}
