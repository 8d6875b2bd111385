package geometry

import "errors"

var (
	// ErrZeroDenominator is returned when a projection divides by a vector with Y == 0.
	ErrZeroDenominator = errors.New("geometry: zero denominator in projection")
	// ErrOutsideDodecant is returned when a vector breaks the single-dodecant precondition.
	ErrOutsideDodecant = errors.New("geometry: vector outside dodecant")
)
