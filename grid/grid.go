package grid

import "fmt"

// Grid is an immutable width×height field of signed 32-bit samples.
// samples holds width*height values in row-major order: samples[y*width+x].
type Grid struct {
	width, height int
	samples       []int32
}

// New constructs a Grid from a row-major sample slice.
// The slice is copied so later changes by the caller are not observed.
// Returns ErrInvalidDimensions if width or height is not positive, and
// ErrSampleCount if len(samples) != width*height.
// Complexity: O(W×H) time and memory.
func New(width, height int, samples []int32) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	if len(samples) != width*height {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrSampleCount, len(samples), width*height)
	}
	data := make([]int32, len(samples))
	copy(data, samples)

	return &Grid{width: width, height: height, samples: data}, nil
}

// FromRows constructs a Grid from rows[y][x]. Rows are copied.
// Returns ErrInvalidDimensions for an empty input and ErrNonRectangular
// if any row length differs from the first.
// Complexity: O(W×H).
func FromRows(rows [][]int32) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrInvalidDimensions
	}
	h, w := len(rows), len(rows[0])
	data := make([]int32, 0, w*h)
	for y, row := range rows {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d", ErrNonRectangular, y, len(row), w)
		}
		data = append(data, row...)
	}

	return &Grid{width: w, height: h, samples: data}, nil
}

// Build fills a new width×height Grid by calling fn once per cell in
// row-major order. It is the encode-time accumulator used by tests and by
// tools that synthesise grids.
// Complexity: O(W×H) calls to fn.
func Build(width, height int, fn func(x, y int) int32) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	data := make([]int32, width*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			data[y*width+x] = fn(x, y)
		}
	}

	return &Grid{width: width, height: height, samples: data}, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// Dimensions returns (width, height).
func (g *Grid) Dimensions() (width, height int) {
	return g.width, g.height
}

// Len returns width*height.
func (g *Grid) Len() int { return len(g.samples) }

// InBounds reports whether (x,y) lies within the grid.
// Complexity: O(1).
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// At returns the sample at (x,y), or an error wrapping ErrOutOfBounds.
// Complexity: O(1).
func (g *Grid) At(x, y int) (int32, error) {
	if !g.InBounds(x, y) {
		return 0, boundsErrorf(x, y, g.width, g.height)
	}

	return g.samples[y*g.width+x], nil
}

// AtCoordinate is At for a Coordinate.
func (g *Grid) AtCoordinate(c Coordinate) (int32, error) {
	return g.At(c.X, c.Y)
}

// Value implements Field. Outside the domain it returns NaN.
func (g *Grid) Value(x, y int) float64 {
	if !g.InBounds(x, y) {
		return nan
	}

	return float64(g.samples[y*g.width+x])
}

// Each calls fn for every cell in row-major order: row 0 first, each row
// left to right.
func (g *Grid) Each(fn func(x, y int, v int32)) {
	for i, v := range g.samples {
		fn(i%g.width, i/g.width, v)
	}
}

// Row returns a copy of row y, or an error wrapping ErrOutOfBounds.
func (g *Grid) Row(y int) ([]int32, error) {
	if y < 0 || y >= g.height {
		return nil, boundsErrorf(0, y, g.width, g.height)
	}
	row := make([]int32, g.width)
	copy(row, g.samples[y*g.width:(y+1)*g.width])

	return row, nil
}

// Samples returns a row-major copy of all samples.
func (g *Grid) Samples() []int32 {
	out := make([]int32, len(g.samples))
	copy(out, g.samples)

	return out
}

// Equal reports whether g and o have the same dimensions and samples.
func (g *Grid) Equal(o *Grid) bool {
	if g == nil || o == nil {
		return g == o
	}
	if g.width != o.width || g.height != o.height {
		return false
	}
	for i := range g.samples {
		if g.samples[i] != o.samples[i] {
			return false
		}
	}

	return true
}

// String summarises the grid for debugging; samples are not printed.
func (g *Grid) String() string {
	return fmt.Sprintf("Grid(%dx%d)", g.width, g.height)
}
