package gridgraph

import "errors"

var (
	// ErrNilGrid indicates a nil H or V grid.
	ErrNilGrid = errors.New("gridgraph: grid is nil")
	// ErrDimensionMismatch indicates the lift ceiling and vertical velocity
	// grids do not share dimensions.
	ErrDimensionMismatch = errors.New("gridgraph: grids must have identical dimensions")
	// ErrBadCostModel indicates an unusable cost model constant.
	ErrBadCostModel = errors.New("gridgraph: invalid cost model")
	// ErrNotAdjacent indicates a weight was requested for two cells that are
	// not neighbours under the graph's connectivity.
	ErrNotAdjacent = errors.New("gridgraph: cells are not adjacent")
)
