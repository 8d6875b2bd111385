package geometry

import "fmt"

// HexCoords is the canonical address of a hex cell. The I and J axes are
// 120 degrees apart, so the six neighbours are ±(1,0), ±(0,1) and ±(1,1).
type HexCoords struct {
	I int `json:"i"`
	J int `json:"j"`
}

func (h HexCoords) String() string {
	return fmt.Sprintf("(%d,%d)", h.I, h.J)
}

func (h HexCoords) Canon() IntVector2D {
	return IntVector2D{X: h.I, Y: h.J}
}

// HexFromVector is the inverse of Canon.
func HexFromVector(v IntVector2D) HexCoords {
	return HexCoords{I: v.X, J: v.Y}
}

// Transform maps h through m.
func (h HexCoords) Transform(m IntMatrix2D) HexCoords {
	return HexFromVector(h.Canon().Times(m))
}

var neighbourOffsets = [6]HexCoords{
	{I: 0, J: 1},
	{I: 1, J: 1},
	{I: 1, J: 0},
	{I: 0, J: -1},
	{I: -1, J: -1},
	{I: -1, J: 0},
}

func (h HexCoords) Neighbors() [6]HexCoords {
	var out [6]HexCoords
	for k, d := range neighbourOffsets {
		out[k] = HexCoords{I: h.I + d.I, J: h.J + d.J}
	}
	return out
}

// Distance is the hex range between a and b.
func Distance(a, b HexCoords) int {
	di := a.I - b.I
	dj := a.J - b.J
	if (di >= 0) == (dj >= 0) {
		return max(abs(di), abs(dj))
	}
	return abs(di) + abs(dj)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// TopCorner is the scaled-by-3 vector to the upper angular boundary of hex,
// valid in dodecant zero.
func TopCorner(hex HexCoords) IntVector2D {
	return hex.Canon().Times(HexTop)
}

// BottomCorner is the scaled-by-3 vector to the lower angular boundary of hex,
// valid in dodecant zero.
func BottomCorner(hex HexCoords) IntVector2D {
	return hex.Canon().Times(HexBottom)
}

// XFromVector returns the first column of row y whose top corner is not
// below the ray v. The arithmetic stays in the x3 scaled space and uses
// truncating division.
func XFromVector(y int, v IntVector2D) (int, error) {
	if v.Y == 0 {
		return 0, fmt.Errorf("row %d, vector %s: %w", y, v, ErrZeroDenominator)
	}
	return (-2*v.Y + v.X*(3*y+1) + 3*v.Y - 1) / (3 * v.Y), nil
}
