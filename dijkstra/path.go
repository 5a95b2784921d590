package dijkstra

import (
	"fmt"
	"math"

	"github.com/rocketman768/GliderWeatherBot/grid"
)

func (r *Result) inBounds(c grid.Coordinate) bool {
	return c.X >= 0 && c.X < r.width && c.Y >= 0 && c.Y < r.height
}

// State returns the lifecycle stage c ended the run in. Off-grid cells
// report Unvisited.
func (r *Result) State(c grid.Coordinate) State {
	if !r.inBounds(c) {
		return Unvisited
	}

	return r.state[c.Y*r.width+c.X]
}

// Distance returns the best known distance to c, or +Inf when c was
// never discovered or lies off the grid. The value is final only for
// Settled cells.
func (r *Result) Distance(c grid.Coordinate) float64 {
	if !r.inBounds(c) {
		return math.Inf(1)
	}

	return r.dist[c.Y*r.width+c.X]
}

// PathTo reconstructs the minimum-cost path from Source to dst by
// following predecessor links.
// Returns ErrDestinationOutOfBounds or ErrUnreachableDestination.
// Complexity: O(len(path)).
func (r *Result) PathTo(dst grid.Coordinate) (*Path, error) {
	if !r.inBounds(dst) {
		return nil, fmt.Errorf("%w: %v not in (0..%d, 0..%d)", ErrDestinationOutOfBounds, dst, r.width-1, r.height-1)
	}
	di := dst.Y*r.width + dst.X
	if r.state[di] != Settled {
		return nil, fmt.Errorf("%w: %v from %v", ErrUnreachableDestination, dst, r.Source)
	}

	var rev []grid.Coordinate
	for i := di; i >= 0; i = r.prev[i] {
		rev = append(rev, grid.Coordinate{X: i % r.width, Y: i / r.width})
	}
	nodes := make([]grid.Coordinate, len(rev))
	for i, c := range rev {
		nodes[len(rev)-1-i] = c
	}

	return &Path{Nodes: nodes, Cost: r.dist[di]}, nil
}

// Len returns the number of cells on the path.
func (p *Path) Len() int { return len(p.Nodes) }

// Profile samples ref at every cell of the path and returns the maximum,
// mean and minimum. Invalid sentinel samples are included as they are.
// Returns ErrEmptyPath or grid.ErrOutOfBounds if ref does not cover a cell.
func (p *Path) Profile(ref grid.Field) (Profile, error) {
	if p == nil || len(p.Nodes) == 0 {
		return Profile{}, ErrEmptyPath
	}
	w, h := ref.Dimensions()

	out := Profile{Max: math.Inf(-1), Min: math.Inf(1)}
	var sum float64
	for _, c := range p.Nodes {
		if c.X < 0 || c.X >= w || c.Y < 0 || c.Y >= h {
			return Profile{}, fmt.Errorf("dijkstra: profile at %v: %w", c, grid.ErrOutOfBounds)
		}
		v := ref.Value(c.X, c.Y)
		out.Max = max(out.Max, v)
		out.Min = min(out.Min, v)
		sum += v
	}
	out.Avg = sum / float64(len(p.Nodes))

	return out, nil
}
