// Package flow models customer movement between candidate locations as a
// capacitated flow network and computes maximum flow over it.
package flow

import (
	"sort"

	"github.com/rotisserie/eris"
)

// Reserved node identifiers.
const (
	Source = "SOURCE"
	Sink   = "SINK"
)

// Network is a directed capacitated graph over location names plus the
// reserved SOURCE and SINK nodes. The residual mirror is consumed by the
// solver; a Network is built once per request and discarded after
// analysis.
type Network struct {
	nodes         map[string]struct{}
	capacity      map[string]map[string]int
	residual      map[string]map[string]int
	edgeCount     int
	totalCapacity int
}

// NewNetwork returns an empty network containing only SOURCE and SINK.
func NewNetwork() *Network {
	n := &Network{
		nodes:    make(map[string]struct{}),
		capacity: make(map[string]map[string]int),
		residual: make(map[string]map[string]int),
	}
	n.nodes[Source] = struct{}{}
	n.nodes[Sink] = struct{}{}
	return n
}

// AddEdge inserts a directed edge with the given capacity. Zero capacity
// is a no-op; negative capacity is a precondition violation. Inserting
// the same edge twice accumulates capacity. The reverse residual edge is
// seeded with zero capacity so the solver can cancel flow.
func (n *Network) AddEdge(u, v string, capacity int) error {
	if capacity < 0 {
		return eris.Errorf("flow: negative capacity %d on edge %s -> %s", capacity, u, v)
	}
	if capacity == 0 {
		return nil
	}

	if n.capacity[u] == nil {
		n.capacity[u] = make(map[string]int)
	}
	if n.residual[u] == nil {
		n.residual[u] = make(map[string]int)
	}
	if _, exists := n.capacity[u][v]; !exists {
		n.edgeCount++
	}
	n.capacity[u][v] += capacity
	n.residual[u][v] += capacity

	if n.residual[v] == nil {
		n.residual[v] = make(map[string]int)
	}
	if _, ok := n.residual[v][u]; !ok {
		n.residual[v][u] = 0
	}

	n.nodes[u] = struct{}{}
	n.nodes[v] = struct{}{}
	n.totalCapacity += capacity
	return nil
}

// Capacity returns the original capacity of an edge, 0 when absent.
func (n *Network) Capacity(u, v string) int {
	return n.capacity[u][v]
}

// NodeCount returns the number of nodes including SOURCE and SINK.
func (n *Network) NodeCount() int { return len(n.nodes) }

// EdgeCount returns the number of forward edges.
func (n *Network) EdgeCount() int { return n.edgeCount }

// TotalCapacity returns the sum of all forward edge capacities.
func (n *Network) TotalCapacity() int { return n.totalCapacity }

// Nodes returns all node names in sorted order.
func (n *Network) Nodes() []string {
	out := make([]string, 0, len(n.nodes))
	for node := range n.nodes {
		out = append(out, node)
	}
	sort.Strings(out)
	return out
}

// residualNeighbors returns u's residual-graph neighbors in sorted
// order. Sorted iteration keeps augmenting-path selection, and therefore
// the final flow assignment, deterministic across runs.
func (n *Network) residualNeighbors(u string) []string {
	edges := n.residual[u]
	if len(edges) == 0 {
		return nil
	}
	out := make([]string, 0, len(edges))
	for v := range edges {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}
