package grid

import (
	"math"
	"strconv"
)

// Validity bounds. RASP writes values at or beyond these magnitudes where the
// model produced no usable output (terrain masks, boundary cells).
const (
	InvalidLow  = -999999
	InvalidHigh = 999999
)

// IsValid reports whether v lies strictly between InvalidLow and InvalidHigh.
// NaN is never valid.
func IsValid(v float64) bool {
	return v > InvalidLow && v < InvalidHigh
}

// Coordinate identifies one cell of a grid. X grows eastward and Y grows
// northward: row 0 of a RASP grid is its southern edge.
type Coordinate struct {
	X, Y int
}

// C is shorthand for Coordinate{X: x, Y: y}.
func C(x, y int) Coordinate {
	return Coordinate{X: x, Y: y}
}

// String formats the coordinate as "(x,y)".
func (c Coordinate) String() string {
	return "(" + strconv.Itoa(c.X) + "," + strconv.Itoa(c.Y) + ")"
}

// Field is a read-only scalar surface over a rectangular domain.
//
// Value must return NaN for coordinates outside the domain so that callers
// iterating with a validity filter skip them naturally.
type Field interface {
	Dimensions() (width, height int)
	Value(x, y int) float64
}

// nan is returned by Value implementations outside their domain.
var nan = math.NaN()
