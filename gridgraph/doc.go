// Package gridgraph treats a pair of forecast grids as an implicit, weighted
// graph over cell coordinates, for cross-country (XC) glide-feasibility
// analysis.
//
// What:
//
//   - Nodes are every Coordinate of a fixed width×height domain.
//   - Edges join each cell to its grid neighbours: up to 8 under Conn8 (the
//     default) or up to 4 under Conn4. Borders clamp, nothing wraps, and a
//     cell is never its own neighbour.
//   - Edge weights come from CostModel, a pure function of the lift ceiling
//     grid H (hcrit, feet) and the vertical velocity grid V (wblmaxmin, fpm)
//     sampled at both endpoints.
//   - Nothing is materialised: Neighbors and Weight compute on demand, so
//     the graph costs O(1) memory beyond the two grids.
//
// Cost model:
//
//	hval   = (H(u) + H(v)) / 2
//	vval   = (V(u) + V(v)) / 2
//	equiv  = vval + ((hval - RefHeight) / HeightScale) * HeightClimb
//	weight = exp(-equiv / ClimbScale) * euclid(u, v)
//
// A higher ceiling is converted into an equivalent climb rate, and a higher
// equivalent climb shrinks the effective distance. Weights are symmetric,
// non-negative and strictly decreasing in equiv. The four constants are
// site calibration and default to 6000 ft, 2000 ft, 200 fpm and 500 fpm.
//
// Complexity:
//
//   - Neighbors: O(d), d = 4 or 8.
//   - Weight:    O(1).
//
// Errors:
//
//   - ErrDimensionMismatch: H and V differ in size.
//   - ErrBadCostModel:      a scale constant is zero, negative or not finite.
//   - grid.ErrOutOfBounds:  a coordinate outside the domain.
//   - ErrNotAdjacent:       Weight asked for a pair that shares no edge.
package gridgraph
