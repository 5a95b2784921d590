package analytics

import (
	"fmt"

	"github.com/rocketman768/GliderWeatherBot/grid"
)

// ValidCount returns the number of valid samples in f.
// Complexity: O(W×H).
func ValidCount(f grid.Field) int {
	n := 0
	each(f, func(_, _ int, v float64) {
		if grid.IsValid(v) {
			n++
		}
	})

	return n
}

// AreaFraction returns the fraction of valid samples of f for which pred is
// true. The result is in [0,1]. Returns ErrEmptyGrid if f has no valid
// samples.
// Complexity: O(W×H).
func AreaFraction(f grid.Field, pred func(v float64) bool) (float64, error) {
	var valid, hit int
	each(f, func(_, _ int, v float64) {
		if !grid.IsValid(v) {
			return
		}
		valid++
		if pred(v) {
			hit++
		}
	})
	if valid == 0 {
		return 0, fmt.Errorf("%w: area fraction", ErrEmptyGrid)
	}

	return float64(hit) / float64(valid), nil
}

// Integral sums transform(x, y, value) over every cell of f. A nil transform
// sums the raw values. Invalid samples are passed to transform unfiltered.
// Complexity: O(W×H).
func Integral(f grid.Field, transform func(x, y int, v float64) float64) float64 {
	if transform == nil {
		transform = func(_, _ int, v float64) float64 { return v }
	}
	sum := 0.0
	each(f, func(x, y int, v float64) {
		sum += transform(x, y, v)
	})

	return sum
}

// MinMax returns the smallest and largest valid samples of f.
// Returns ErrEmptyGrid if f has no valid samples.
// Complexity: O(W×H).
func MinMax(f grid.Field) (lo, hi float64, err error) {
	found := false
	each(f, func(_, _ int, v float64) {
		if !grid.IsValid(v) {
			return
		}
		if !found {
			lo, hi, found = v, v, true
			return
		}
		lo = min(lo, v)
		hi = max(hi, v)
	})
	if !found {
		return 0, 0, fmt.Errorf("%w: min/max", ErrEmptyGrid)
	}

	return lo, hi, nil
}

// each visits every cell of f in row-major order.
func each(f grid.Field, fn func(x, y int, v float64)) {
	w, h := f.Dimensions()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			fn(x, y, f.Value(x, y))
		}
	}
}
