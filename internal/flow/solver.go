package flow

// Flow is the result of a max-flow computation. Edges holds the positive
// per-edge flow assignment; reverse cancellations are already folded in,
// so every recorded flow respects the original edge capacity.
type Flow struct {
	Value int
	Edges map[string]map[string]int
}

// EdgeFlow returns the assigned flow on (u, v), 0 when none.
func (f *Flow) EdgeFlow(u, v string) int {
	return f.Edges[u][v]
}

// Solve computes the maximum SOURCE-to-SINK flow with the Edmonds-Karp
// method: repeated BFS for the shortest augmenting path in the residual
// graph. Neighbor expansion is in sorted node order, so the result is
// deterministic for a given network. The network's residual state is
// consumed; build a fresh network to solve again.
func Solve(n *Network) *Flow {
	f := &Flow{Edges: make(map[string]map[string]int)}

	for {
		parent, ok := bfs(n)
		if !ok {
			break
		}

		// Bottleneck along the augmenting path.
		pathFlow := 0
		for v := Sink; v != Source; v = parent[v] {
			u := parent[v]
			r := n.residual[u][v]
			if pathFlow == 0 || r < pathFlow {
				pathFlow = r
			}
		}

		for v := Sink; v != Source; v = parent[v] {
			u := parent[v]
			n.residual[u][v] -= pathFlow
			n.residual[v][u] += pathFlow
			f.record(u, v, pathFlow)
		}
		f.Value += pathFlow
	}
	return f
}

// record books pathFlow on (u, v), cancelling previously recorded flow
// on the reverse edge first so assignments never exceed capacity.
func (f *Flow) record(u, v string, pathFlow int) {
	if back := f.Edges[v][u]; back > 0 {
		dec := pathFlow
		if back < dec {
			dec = back
		}
		f.Edges[v][u] -= dec
		if f.Edges[v][u] == 0 {
			delete(f.Edges[v], u)
		}
		pathFlow -= dec
	}
	if pathFlow == 0 {
		return
	}
	if f.Edges[u] == nil {
		f.Edges[u] = make(map[string]int)
	}
	f.Edges[u][v] += pathFlow
}

// bfs finds the shortest augmenting path from SOURCE to SINK in the
// residual graph, returning the parent map and whether SINK was reached.
func bfs(n *Network) (map[string]string, bool) {
	parent := map[string]string{Source: Source}
	queue := []string{Source}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for _, v := range n.residualNeighbors(u) {
			if _, seen := parent[v]; seen || n.residual[u][v] <= 0 {
				continue
			}
			parent[v] = u
			if v == Sink {
				return parent, true
			}
			queue = append(queue, v)
		}
	}
	return nil, false
}
