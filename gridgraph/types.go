package gridgraph

import (
	"fmt"
	"math"

	"github.com/rocketman768/GliderWeatherBot/grid"
)

// Connectivity selects neighbour connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// String returns "conn4" or "conn8".
func (c Connectivity) String() string {
	if c == Conn4 {
		return "conn4"
	}
	return "conn8"
}

// CostModel holds the calibration constants of the XC edge cost.
type CostModel struct {
	// RefHeight is the lift ceiling (ft) that contributes zero equivalent climb.
	RefHeight float64 `yaml:"ref_height"`
	// HeightScale is the ceiling change (ft) worth HeightClimb of climb.
	HeightScale float64 `yaml:"height_scale"`
	// HeightClimb is the equivalent climb (fpm) per HeightScale of ceiling.
	HeightClimb float64 `yaml:"height_climb"`
	// ClimbScale is the e-folding equivalent climb (fpm) of the distance ratio.
	ClimbScale float64 `yaml:"climb_scale"`
}

// DefaultCostModel returns the Hollister calibration: below roughly 5000 ft
// of ceiling there is no XC at all, and 8000 ft is worth about 200 fpm of
// convergence.
func DefaultCostModel() CostModel {
	return CostModel{
		RefHeight:   6000,
		HeightScale: 2000,
		HeightClimb: 200,
		ClimbScale:  500,
	}
}

// Validate reports ErrBadCostModel if any constant is not finite or a scale
// is not strictly positive.
func (m CostModel) Validate() error {
	fields := []struct {
		name string
		v    float64
	}{
		{"ref_height", m.RefHeight},
		{"height_scale", m.HeightScale},
		{"height_climb", m.HeightClimb},
		{"climb_scale", m.ClimbScale},
	}
	for _, f := range fields {
		if math.IsNaN(f.v) || math.IsInf(f.v, 0) {
			return fmt.Errorf("%w: %s=%v", ErrBadCostModel, f.name, f.v)
		}
	}
	if m.HeightScale <= 0 {
		return fmt.Errorf("%w: height_scale=%v must be > 0", ErrBadCostModel, m.HeightScale)
	}
	if m.ClimbScale <= 0 {
		return fmt.Errorf("%w: climb_scale=%v must be > 0", ErrBadCostModel, m.ClimbScale)
	}

	return nil
}

// Options contains tunable parameters for a CostGraph.
type Options struct {
	Model CostModel
	Conn  Connectivity
}

// Option configures New.
type Option func(*Options)

// WithCostModel replaces the default cost model.
func WithCostModel(m CostModel) Option {
	return func(o *Options) {
		o.Model = m
	}
}

// WithConnectivity selects Conn4 or Conn8.
func WithConnectivity(c Connectivity) Option {
	return func(o *Options) {
		o.Conn = c
	}
}

// DefaultOptions returns Options with DefaultCostModel and Conn8.
func DefaultOptions() Options {
	return Options{
		Model: DefaultCostModel(),
		Conn:  Conn8,
	}
}

// CostGraph is the implicit XC graph over two equally sized grids.
// It is immutable once built and only reads the grids it was given.
type CostGraph struct {
	Width, Height   int
	Model           CostModel
	Conn            Connectivity
	hcrit, vvert    *grid.Grid
	neighborOffsets [][2]int
}
