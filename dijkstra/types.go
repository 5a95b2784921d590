package dijkstra

import (
	"errors"
	"math"

	"github.com/rocketman768/GliderWeatherBot/grid"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNilGraph indicates that a nil Graph was passed to Dijkstra.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrNoSource indicates that the Source option was never applied.
	ErrNoSource = errors.New("dijkstra: source cell not set")

	// ErrSourceOutOfBounds indicates that the source cell lies off the grid.
	ErrSourceOutOfBounds = errors.New("dijkstra: source out of bounds")

	// ErrNegativeWeight indicates that a negative edge weight was encountered.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrBadMaxDistance indicates that MaxDistance was negative or NaN.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrDestinationOutOfBounds indicates a path query for an off-grid cell.
	ErrDestinationOutOfBounds = errors.New("dijkstra: destination out of bounds")

	// ErrUnreachableDestination indicates that the destination was never settled.
	ErrUnreachableDestination = errors.New("dijkstra: destination unreachable")

	// ErrEmptyPath indicates a profile request on a path without nodes.
	ErrEmptyPath = errors.New("dijkstra: path is empty")
)

// Graph is the implicit graph the solver walks. Nodes are the cells of a
// width×height grid.
type Graph interface {
	Dimensions() (width, height int)
	Neighbors(c grid.Coordinate) ([]grid.Coordinate, error)
	Weight(u, v grid.Coordinate) (float64, error)
}

// State is the lifecycle stage of a node during one run.
type State uint8

const (
	// Unvisited nodes have not been discovered.
	Unvisited State = iota
	// Frontier nodes hold a tentative distance.
	Frontier
	// Settled nodes hold their final distance.
	Settled
)

// String implements fmt.Stringer.
func (s State) String() string {
	switch s {
	case Unvisited:
		return "unvisited"
	case Frontier:
		return "frontier"
	case Settled:
		return "settled"
	default:
		return "unknown"
	}
}

// Options configures the behavior of the Dijkstra algorithm.
//
// Source      – starting cell; must be set and lie on the grid.
// MaxDistance – cells farther than this stay unsettled. Must be ≥ 0.
//
//	Default is +Inf (no cap).
type Options struct {
	Source      grid.Coordinate
	MaxDistance float64

	hasSource bool
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// Source sets the starting cell. It must be supplied.
func Source(c grid.Coordinate) Option {
	return func(o *Options) {
		o.Source = c
		o.hasSource = true
	}
}

// WithMaxDistance caps exploration. Dijkstra rejects a negative or NaN
// cap with ErrBadMaxDistance.
func WithMaxDistance(limit float64) Option {
	return func(o *Options) {
		o.MaxDistance = limit
	}
}

// DefaultOptions returns Options with no source and no distance cap.
func DefaultOptions() Options {
	return Options{MaxDistance: math.Inf(1)}
}

// Result holds the outcome of one single-source run. It is read-only.
type Result struct {
	// Source is the cell the run started from.
	Source grid.Coordinate

	width, height int
	dist          []float64
	prev          []int
	state         []State
}

// Path is an ordered sequence of cells from source to destination
// inclusive, with its total edge cost.
type Path struct {
	Nodes []grid.Coordinate
	Cost  float64
}

// Profile summarises a reference field sampled along a path.
type Profile struct {
	Max float64
	Avg float64
	Min float64
}
