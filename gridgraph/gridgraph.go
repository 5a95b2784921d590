package gridgraph

import (
	"fmt"
	"math"

	"github.com/rocketman768/GliderWeatherBot/grid"
)

// New builds a CostGraph over the lift ceiling grid hcrit and the vertical
// velocity grid vvert. Neither grid is copied; both are immutable.
// Returns ErrNilGrid, ErrDimensionMismatch or ErrBadCostModel.
// Complexity: O(1).
func New(hcrit, vvert *grid.Grid, opts ...Option) (*CostGraph, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if hcrit == nil || vvert == nil {
		return nil, ErrNilGrid
	}
	w, h := hcrit.Dimensions()
	if vw, vh := vvert.Dimensions(); vw != w || vh != h {
		return nil, fmt.Errorf("%w: hcrit %dx%d, vvert %dx%d", ErrDimensionMismatch, w, h, vw, vh)
	}
	if err := cfg.Model.Validate(); err != nil {
		return nil, err
	}

	// Precompute neighbour offsets based on connectivity
	var offsets [][2]int
	if cfg.Conn == Conn4 {
		offsets = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	} else {
		offsets = [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
	}

	return &CostGraph{
		Width:           w,
		Height:          h,
		Model:           cfg.Model,
		Conn:            cfg.Conn,
		hcrit:           hcrit,
		vvert:           vvert,
		neighborOffsets: offsets,
	}, nil
}

// Dimensions returns (Width, Height).
func (g *CostGraph) Dimensions() (width, height int) {
	return g.Width, g.Height
}

// InBounds reports whether c lies within the grid boundaries.
// Complexity: O(1).
func (g *CostGraph) InBounds(c grid.Coordinate) bool {
	return c.X >= 0 && c.X < g.Width && c.Y >= 0 && c.Y < g.Height
}

// NeighborOffsets returns the precomputed neighbour offsets.
// Complexity: O(1).
func (g *CostGraph) NeighborOffsets() [][2]int {
	return g.neighborOffsets
}

// Neighbors returns the cells adjacent to c, clamped at the borders.
// Under Conn8 a corner has 3, a non-corner edge cell 5, and an interior
// cell 8 neighbours.
// Complexity: O(d).
func (g *CostGraph) Neighbors(c grid.Coordinate) ([]grid.Coordinate, error) {
	if !g.InBounds(c) {
		return nil, fmt.Errorf("gridgraph: neighbors of %v: %w", c, grid.ErrOutOfBounds)
	}
	out := make([]grid.Coordinate, 0, len(g.neighborOffsets))
	for _, d := range g.neighborOffsets {
		n := grid.Coordinate{X: c.X + d[0], Y: c.Y + d[1]}
		if g.InBounds(n) {
			out = append(out, n)
		}
	}

	return out, nil
}

// Adjacent reports whether u and v share an edge.
func (g *CostGraph) Adjacent(u, v grid.Coordinate) bool {
	dx, dy := v.X-u.X, v.Y-u.Y
	if dx == 0 && dy == 0 {
		return false
	}
	if dx < -1 || dx > 1 || dy < -1 || dy > 1 {
		return false
	}
	if g.Conn == Conn4 && dx != 0 && dy != 0 {
		return false
	}

	return true
}

// Weight returns the cost of the edge between u and v.
// Returns grid.ErrOutOfBounds if either endpoint is off-grid and
// ErrNotAdjacent if they share no edge.
// Complexity: O(1).
func (g *CostGraph) Weight(u, v grid.Coordinate) (float64, error) {
	if !g.InBounds(u) || !g.InBounds(v) {
		return 0, fmt.Errorf("gridgraph: weight %v-%v: %w", u, v, grid.ErrOutOfBounds)
	}
	if !g.Adjacent(u, v) {
		return 0, fmt.Errorf("%w: %v-%v", ErrNotAdjacent, u, v)
	}
	dist := math.Hypot(float64(v.X-u.X), float64(v.Y-u.Y))

	return g.Model.EdgeWeight(
		g.hcrit.Value(u.X, u.Y), g.hcrit.Value(v.X, v.Y),
		g.vvert.Value(u.X, u.Y), g.vvert.Value(v.X, v.Y),
		dist,
	), nil
}

// Index maps c to a row-major index: y*Width + x.
// Complexity: O(1).
func (g *CostGraph) Index(c grid.Coordinate) int {
	return c.Y*g.Width + c.X
}

// Coordinate converts a row-major index back to a Coordinate.
// Complexity: O(1).
func (g *CostGraph) Coordinate(idx int) grid.Coordinate {
	return grid.Coordinate{X: idx % g.Width, Y: idx / g.Width}
}

// Nodes returns every coordinate in row-major order.
// Complexity: O(W×H).
func (g *CostGraph) Nodes() []grid.Coordinate {
	out := make([]grid.Coordinate, 0, g.Width*g.Height)
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			out = append(out, grid.Coordinate{X: x, Y: y})
		}
	}

	return out
}
