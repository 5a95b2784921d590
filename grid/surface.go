package grid

import "fmt"

// Surface is a dense, immutable float64 field used for quantities derived
// from one or more grids (glide ratio, region-of-interest masks, lift
// modulated by cloud cover). It shares Grid's row-major layout.
type Surface struct {
	width, height int
	data          []float64
}

// Derive evaluates fn once per cell in row-major order and stores the
// results. Derived fields are materialised eagerly so that repeated passes
// by the analytics functions do not recompute them.
// Complexity: O(W×H) calls to fn.
func Derive(width, height int, fn func(x, y int) float64) (*Surface, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	data := make([]float64, width*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			data[y*width+x] = fn(x, y)
		}
	}

	return &Surface{width: width, height: height, data: data}, nil
}

// DeriveFrom is Derive over the domain of f.
func DeriveFrom(f Field, fn func(x, y int) float64) (*Surface, error) {
	w, h := f.Dimensions()

	return Derive(w, h, fn)
}

// Dimensions implements Field.
func (s *Surface) Dimensions() (width, height int) {
	return s.width, s.height
}

// Value implements Field. Outside the domain it returns NaN.
func (s *Surface) Value(x, y int) float64 {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return nan
	}

	return s.data[y*s.width+x]
}

// SameDimensions reports whether every field shares the domain of the first.
func SameDimensions(fields ...Field) bool {
	if len(fields) == 0 {
		return true
	}
	w0, h0 := fields[0].Dimensions()
	for _, f := range fields[1:] {
		if w, h := f.Dimensions(); w != w0 || h != h0 {
			return false
		}
	}

	return true
}
