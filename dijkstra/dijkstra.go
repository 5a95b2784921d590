package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/rocketman768/GliderWeatherBot/grid"
)

// Dijkstra computes shortest distances from Options.Source to every
// reachable cell of g.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. Source must be given (ErrNoSource) and on the grid (ErrSourceOutOfBounds).
//  3. MaxDistance must be ≥ 0 (ErrBadMaxDistance).
//  4. Every relaxed edge must be non-negative (ErrNegativeWeight).
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func Dijkstra(g Graph, opts ...Option) (*Result, error) {
	// 1) Build Options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate inputs
	if g == nil {
		return nil, ErrNilGraph
	}
	if !cfg.hasSource {
		return nil, ErrNoSource
	}
	w, h := g.Dimensions()
	src := cfg.Source
	if src.X < 0 || src.X >= w || src.Y < 0 || src.Y >= h {
		return nil, fmt.Errorf("%w: %v not in (0..%d, 0..%d)", ErrSourceOutOfBounds, src, w-1, h-1)
	}
	if cfg.MaxDistance < 0 || math.IsNaN(cfg.MaxDistance) {
		return nil, fmt.Errorf("%w: got %v", ErrBadMaxDistance, cfg.MaxDistance)
	}

	// 3) Dense per-node buffers indexed by y*w+x
	n := w * h
	r := &runner{
		g:       g,
		options: cfg,
		width:   w,
		dist:    make([]float64, n),
		prev:    make([]int, n),
		state:   make([]State, n),
		pq:      make(nodePQ, 0, n),
	}

	// 4) Initialize and run the main loop
	r.init()
	if err := r.process(); err != nil {
		return nil, err
	}

	return &Result{
		Source: src,
		width:  w,
		height: h,
		dist:   r.dist,
		prev:   r.prev,
		state:  r.state,
	}, nil
}

// BestPath runs Dijkstra from src and returns the cheapest path to dst.
func BestPath(g Graph, src, dst grid.Coordinate) (*Path, error) {
	res, err := Dijkstra(g, Source(src))
	if err != nil {
		return nil, err
	}

	return res.PathTo(dst)
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       Graph
	options Options
	width   int
	dist    []float64 // best known distance, +Inf when undiscovered
	prev    []int     // predecessor index, -1 for none
	state   []State
	pq      nodePQ
}

func (r *runner) index(c grid.Coordinate) int { return c.Y*r.width + c.X }

// init sets every distance to +Inf, clears predecessors, and pushes the
// source at distance 0.
func (r *runner) init() {
	for i := range r.dist {
		r.dist[i] = math.Inf(1)
		r.prev[i] = -1
	}

	s := r.index(r.options.Source)
	r.dist[s] = 0
	r.state[s] = Frontier

	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{c: r.options.Source, dist: 0})
}

// process pops the closest frontier node, settles it and relaxes its edges
// until the heap is empty or the next distance exceeds MaxDistance.
func (r *runner) process() error {
	for r.pq.Len() > 0 {
		// 1) Pop the smallest-distance item.
		item := heap.Pop(&r.pq).(*nodeItem)
		u := r.index(item.c)

		// 2) Skip stale entries left behind by lazy decrease-key.
		if r.state[u] == Settled || item.dist > r.dist[u] {
			continue
		}

		// 3) Everything left in the heap is at least this far away.
		if item.dist > r.options.MaxDistance {
			break
		}

		// 4) Final distance.
		r.state[u] = Settled

		// 5) Relax outgoing edges.
		if err := r.relax(item.c); err != nil {
			return err
		}
	}

	return nil
}

// relax tries to improve the distance of every unsettled neighbour of u.
func (r *runner) relax(u grid.Coordinate) error {
	neighbors, err := r.g.Neighbors(u)
	if err != nil {
		return fmt.Errorf("dijkstra: neighbors of %v: %w", u, err)
	}

	ui := r.index(u)
	for _, v := range neighbors {
		vi := r.index(v)
		if r.state[vi] == Settled {
			continue
		}

		w, err := r.g.Weight(u, v)
		if err != nil {
			return fmt.Errorf("dijkstra: weight %v-%v: %w", u, v, err)
		}
		// Impassable edge.
		if math.IsInf(w, 1) || math.IsNaN(w) {
			continue
		}
		if w < 0 {
			return fmt.Errorf("%w: edge %v→%v weight=%g", ErrNegativeWeight, u, v, w)
		}

		newDist := r.dist[ui] + w
		if newDist > r.options.MaxDistance || newDist >= r.dist[vi] {
			continue
		}

		r.dist[vi] = newDist
		r.prev[vi] = ui
		r.state[vi] = Frontier
		heap.Push(&r.pq, &nodeItem{c: v, dist: newDist})
	}

	return nil
}

// nodeItem is a cell and its tentative distance from the source.
type nodeItem struct {
	c    grid.Coordinate
	dist float64
}

// nodePQ is a min-heap of *nodeItem ordered by dist. Shorter distances to
// an already queued cell are pushed as new items; outdated items are
// skipped when popped.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int           { return len(pq) }
func (pq nodePQ) Less(i, j int) bool { return pq[i].dist < pq[j].dist }
func (pq nodePQ) Swap(i, j int)      { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x any) { *pq = append(*pq, x.(*nodeItem)) }

func (pq *nodePQ) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
