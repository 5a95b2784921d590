// Package dijkstra implements Dijkstra's shortest-path algorithm over an
// implicit grid graph such as *gridgraph.CostGraph.
//
// Dijkstra computes the minimum-cost path from a single source cell to all
// other reachable cells in a graph with non-negative edge weights. Nodes
// move through three states:
//
//	Unvisited -> Frontier  when first discovered from a settled neighbour.
//	Frontier  -> Settled   when popped with the minimum tentative distance.
//
// Once a node is Settled its distance is final. Ties in tentative distance
// are broken arbitrarily.
//
// Complexity:
//
//	– Time:  O((V + E) log V)   where V = W×H cells, E ≤ 8V edges.
//	   • Each cell is settled at most once (V extracts).
//	   • Each edge relaxation may push into the priority queue (up to E pushes).
//	– Space: O(V + E)
//	   • O(V) for the dense distance, predecessor and state buffers.
//	   • O(E) in the priority queue in the worst case (lazy decrease-key).
//
// Options:
//
//	– Source:          the starting cell (required).
//	– WithMaxDistance: cells whose distance would exceed the cap stay unsettled.
//
// Edges whose weight is +Inf or NaN are impassable and skipped.
//
// Errors (sentinel):
//
//	– ErrNilGraph               if the graph is nil.
//	– ErrNoSource               if Source was not given.
//	– ErrSourceOutOfBounds      if the source lies off the grid.
//	– ErrBadMaxDistance         if MaxDistance is negative or NaN.
//	– ErrNegativeWeight         if a relaxed edge has negative weight.
//	– ErrDestinationOutOfBounds if PathTo is asked for an off-grid cell.
//	– ErrUnreachableDestination if PathTo is asked for a cell never settled.
//
// Example usage:
//
//	res, err := dijkstra.Dijkstra(g, dijkstra.Source(grid.C(19, 80)))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	path, err := res.PathTo(grid.C(24, 56))
package dijkstra
