// Package grid holds the scalar forecast field shared by every other package
// of GliderWeatherBot: one meteorological parameter sampled over a
// rectangular integer-coordinate domain.
//
// What:
//
//   - Grid stores width×height signed 32-bit samples in a single row-major
//     buffer indexed by y*width+x. It is immutable once constructed.
//   - Samples outside the open interval (InvalidLow, InvalidHigh) mark
//     missing or invalid model output; IsValid reports which is which.
//   - Coordinate is the lightweight (x,y) value used as graph-node identity.
//   - Field is the read-only view consumed by the analytics and path
//     packages. Grid implements it, and Surface implements it for derived
//     float-valued quantities built eagerly with Derive.
//
// Construction:
//
//   - New(width, height, samples) copies a row-major slice.
//   - FromRows(rows) copies a rectangular [][]int32.
//   - Build(width, height, fn) accumulates samples from a generator.
//
// Complexity:
//
//   - New, FromRows, Build, Derive: O(W×H) time and memory.
//   - At, Value, InBounds:          O(1).
//
// Errors:
//
//   - ErrInvalidDimensions: width or height is not positive.
//   - ErrSampleCount:       len(samples) != width*height.
//   - ErrNonRectangular:    rows of differing lengths.
//   - ErrOutOfBounds:       coordinate outside the domain.
//   - ErrFormat:            malformed encoded grid (shared by the codecs).
//
// Grids are not safe for concurrent mutation simply because they cannot be
// mutated; concurrent reads are fine.
package grid
