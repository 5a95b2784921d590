package grid

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDimensions indicates a non-positive width or height.
	ErrInvalidDimensions = errors.New("grid: dimensions must be > 0")
	// ErrSampleCount indicates the sample slice does not hold width*height values.
	ErrSampleCount = errors.New("grid: sample count does not match dimensions")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrOutOfBounds indicates a coordinate outside [0,width)×[0,height).
	ErrOutOfBounds = errors.New("grid: coordinate out of bounds")
	// ErrFormat indicates an encoded grid that cannot be decoded.
	// Both the text and the PGZ codecs wrap it.
	ErrFormat = errors.New("grid: malformed grid data")
)

// boundsErrorf wraps ErrOutOfBounds with the offending coordinate and domain.
func boundsErrorf(x, y, width, height int) error {
	return fmt.Errorf("%w: (%d, %d) not in (0..%d, 0..%d)", ErrOutOfBounds, x, y, width-1, height-1)
}
