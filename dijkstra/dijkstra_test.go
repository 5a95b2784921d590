package dijkstra_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketman768/GliderWeatherBot/dijkstra"
	"github.com/rocketman768/GliderWeatherBot/grid"
	"github.com/rocketman768/GliderWeatherBot/gridgraph"
)

// mustGraph builds a CostGraph from row-major hcrit/vvert rows.
func mustGraph(t testing.TB, hRows, vRows [][]int32) *gridgraph.CostGraph {
	t.Helper()
	h, err := grid.FromRows(hRows)
	require.NoError(t, err)
	v, err := grid.FromRows(vRows)
	require.NoError(t, err)
	g, err := gridgraph.New(h, v)
	require.NoError(t, err)
	return g
}

// stubGraph is a width×height 4-connected grid whose weights come from fn.
type stubGraph struct {
	w, h int
	fn   func(u, v grid.Coordinate) float64
}

func (s stubGraph) Dimensions() (int, int) { return s.w, s.h }

func (s stubGraph) Neighbors(c grid.Coordinate) ([]grid.Coordinate, error) {
	var out []grid.Coordinate
	for _, d := range [][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}} {
		n := grid.C(c.X+d[0], c.Y+d[1])
		if n.X >= 0 && n.X < s.w && n.Y >= 0 && n.Y < s.h {
			out = append(out, n)
		}
	}
	return out, nil
}

func (s stubGraph) Weight(u, v grid.Coordinate) (float64, error) { return s.fn(u, v), nil }

//----------------------------------------------------------------------------//
// Validation
//----------------------------------------------------------------------------//

func TestDijkstra_Validation(t *testing.T) {
	g := mustGraph(t, [][]int32{{6000, 6000}, {6000, 6000}}, [][]int32{{0, 0}, {0, 0}})

	cases := []struct {
		name string
		g    dijkstra.Graph
		opts []dijkstra.Option
		err  error
	}{
		{"NilGraph", nil, []dijkstra.Option{dijkstra.Source(grid.C(0, 0))}, dijkstra.ErrNilGraph},
		{"NoSource", g, nil, dijkstra.ErrNoSource},
		{"SourceOff", g, []dijkstra.Option{dijkstra.Source(grid.C(2, 0))}, dijkstra.ErrSourceOutOfBounds},
		{"SourceNegative", g, []dijkstra.Option{dijkstra.Source(grid.C(0, -1))}, dijkstra.ErrSourceOutOfBounds},
		{"NegMax", g, []dijkstra.Option{dijkstra.Source(grid.C(0, 0)), dijkstra.WithMaxDistance(-1)}, dijkstra.ErrBadMaxDistance},
		{"NaNMax", g, []dijkstra.Option{dijkstra.Source(grid.C(0, 0)), dijkstra.WithMaxDistance(math.NaN())}, dijkstra.ErrBadMaxDistance},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := dijkstra.Dijkstra(tc.g, tc.opts...)
			if !errors.Is(err, tc.err) {
				t.Errorf("Dijkstra error = %v; want %v", err, tc.err)
			}
		})
	}
}

func TestDijkstra_NegativeWeight(t *testing.T) {
	g := stubGraph{w: 2, h: 1, fn: func(u, v grid.Coordinate) float64 { return -1 }}
	_, err := dijkstra.Dijkstra(g, dijkstra.Source(grid.C(0, 0)))
	require.ErrorIs(t, err, dijkstra.ErrNegativeWeight)
}

//----------------------------------------------------------------------------//
// Optimality
//----------------------------------------------------------------------------//

// enumerate returns the cheapest simple path cost between src and dst by
// exhaustive DFS.
func enumerate(t *testing.T, g dijkstra.Graph, src, dst grid.Coordinate) float64 {
	t.Helper()
	seen := map[grid.Coordinate]bool{src: true}
	best := math.Inf(1)
	var walk func(c grid.Coordinate, cost float64)
	walk = func(c grid.Coordinate, cost float64) {
		if c == dst {
			best = min(best, cost)
			return
		}
		ns, err := g.Neighbors(c)
		require.NoError(t, err)
		for _, n := range ns {
			if seen[n] {
				continue
			}
			w, err := g.Weight(c, n)
			require.NoError(t, err)
			seen[n] = true
			walk(n, cost+w)
			seen[n] = false
		}
	}
	walk(src, 0)
	return best
}

// TestDijkstra_OptimalOn3x3 compares against every simple corner-to-corner
// path on small synthetic grids.
func TestDijkstra_OptimalOn3x3(t *testing.T) {
	cases := []struct {
		name  string
		hRows [][]int32
		vRows [][]int32
	}{
		{
			"Uniform",
			[][]int32{{6000, 6000, 6000}, {6000, 6000, 6000}, {6000, 6000, 6000}},
			[][]int32{{0, 0, 0}, {0, 0, 0}, {0, 0, 0}},
		},
		{
			"WeakCentre",
			[][]int32{{8000, 8000, 8000}, {8000, 1000, 8000}, {8000, 8000, 8000}},
			[][]int32{{200, 200, 200}, {200, -400, 200}, {200, 200, 200}},
		},
		{
			"StrongEdge",
			[][]int32{{9000, 9000, 9000}, {4000, 4000, 9000}, {4000, 4000, 9000}},
			[][]int32{{400, 400, 400}, {0, 0, 400}, {0, 0, 400}},
		},
	}
	src, dst := grid.C(0, 0), grid.C(2, 2)
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := mustGraph(t, tc.hRows, tc.vRows)
			p, err := dijkstra.BestPath(g, src, dst)
			require.NoError(t, err)

			assert.InDelta(t, enumerate(t, g, src, dst), p.Cost, 1e-9)
			assert.Equal(t, src, p.Nodes[0])
			assert.Equal(t, dst, p.Nodes[len(p.Nodes)-1])

			// The reported cost is the sum of the path's edges.
			var sum float64
			for i := 1; i < len(p.Nodes); i++ {
				w, err := g.Weight(p.Nodes[i-1], p.Nodes[i])
				require.NoError(t, err)
				sum += w
			}
			assert.InDelta(t, sum, p.Cost, 1e-9)
		})
	}
}

// TestDijkstra_UniformDiagonal takes the straight diagonal on a flat field.
func TestDijkstra_UniformDiagonal(t *testing.T) {
	g := mustGraph(t,
		[][]int32{{6000, 6000, 6000}, {6000, 6000, 6000}, {6000, 6000, 6000}},
		[][]int32{{0, 0, 0}, {0, 0, 0}, {0, 0, 0}},
	)
	p, err := dijkstra.BestPath(g, grid.C(0, 0), grid.C(2, 2))
	require.NoError(t, err)
	assert.Equal(t, []grid.Coordinate{grid.C(0, 0), grid.C(1, 1), grid.C(2, 2)}, p.Nodes)
	assert.InDelta(t, 2*math.Sqrt2, p.Cost, 1e-12)
}

func TestDijkstra_SourceIsDestination(t *testing.T) {
	g := mustGraph(t, [][]int32{{6000, 6000}}, [][]int32{{0, 0}})
	p, err := dijkstra.BestPath(g, grid.C(1, 0), grid.C(1, 0))
	require.NoError(t, err)
	assert.Equal(t, []grid.Coordinate{grid.C(1, 0)}, p.Nodes)
	assert.Zero(t, p.Cost)
}

//----------------------------------------------------------------------------//
// States and reachability
//----------------------------------------------------------------------------//

func TestDijkstra_AllSettled(t *testing.T) {
	g := mustGraph(t,
		[][]int32{{6000, 7000, 8000}, {5000, 6000, 7000}},
		[][]int32{{0, 100, 200}, {-100, 0, 100}},
	)
	res, err := dijkstra.Dijkstra(g, dijkstra.Source(grid.C(1, 1)))
	require.NoError(t, err)
	for _, c := range g.Nodes() {
		assert.Equal(t, dijkstra.Settled, res.State(c), "cell %v", c)
		assert.False(t, math.IsInf(res.Distance(c), 1))
	}
	assert.Zero(t, res.Distance(grid.C(1, 1)))
	assert.Equal(t, dijkstra.Unvisited, res.State(grid.C(9, 9)))
	assert.True(t, math.IsInf(res.Distance(grid.C(-1, 0)), 1))
}

// TestDijkstra_Unreachable walls off the right column with +Inf edges.
func TestDijkstra_Unreachable(t *testing.T) {
	g := stubGraph{w: 3, h: 2, fn: func(u, v grid.Coordinate) float64 {
		if u.X == 2 || v.X == 2 {
			return math.Inf(1)
		}
		return 1
	}}
	res, err := dijkstra.Dijkstra(g, dijkstra.Source(grid.C(0, 0)))
	require.NoError(t, err)

	assert.Equal(t, dijkstra.Unvisited, res.State(grid.C(2, 0)))
	_, err = res.PathTo(grid.C(2, 1))
	assert.ErrorIs(t, err, dijkstra.ErrUnreachableDestination)

	_, err = res.PathTo(grid.C(3, 0))
	assert.ErrorIs(t, err, dijkstra.ErrDestinationOutOfBounds)

	p, err := res.PathTo(grid.C(1, 1))
	require.NoError(t, err)
	assert.Equal(t, 2.0, p.Cost)
}

// TestDijkstra_MaxDistance leaves far cells on the frontier or unvisited.
func TestDijkstra_MaxDistance(t *testing.T) {
	g := stubGraph{w: 5, h: 1, fn: func(u, v grid.Coordinate) float64 { return 1 }}
	res, err := dijkstra.Dijkstra(g, dijkstra.Source(grid.C(0, 0)), dijkstra.WithMaxDistance(2))
	require.NoError(t, err)

	want := []dijkstra.State{dijkstra.Settled, dijkstra.Settled, dijkstra.Settled, dijkstra.Unvisited, dijkstra.Unvisited}
	for x, s := range want {
		assert.Equal(t, s, res.State(grid.C(x, 0)), "x=%d", x)
	}
	_, err = res.PathTo(grid.C(3, 0))
	assert.ErrorIs(t, err, dijkstra.ErrUnreachableDestination)
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "unvisited", dijkstra.Unvisited.String())
	assert.Equal(t, "frontier", dijkstra.Frontier.String())
	assert.Equal(t, "settled", dijkstra.Settled.String())
}

//----------------------------------------------------------------------------//
// Profile
//----------------------------------------------------------------------------//

func TestPath_Profile(t *testing.T) {
	ref, err := grid.FromRows([][]int32{{1000, 2000, 3000}})
	require.NoError(t, err)

	p := &dijkstra.Path{Nodes: []grid.Coordinate{grid.C(0, 0), grid.C(1, 0), grid.C(2, 0)}}
	prof, err := p.Profile(ref)
	require.NoError(t, err)
	assert.Equal(t, dijkstra.Profile{Max: 3000, Avg: 2000, Min: 1000}, prof)

	_, err = (&dijkstra.Path{}).Profile(ref)
	assert.ErrorIs(t, err, dijkstra.ErrEmptyPath)

	off := &dijkstra.Path{Nodes: []grid.Coordinate{grid.C(0, 1)}}
	_, err = off.Profile(ref)
	assert.ErrorIs(t, err, grid.ErrOutOfBounds)
}
