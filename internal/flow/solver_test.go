package flow

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildClassic is two independent chains with a known max flow of 15.
func buildClassic(t *testing.T) *Network {
	t.Helper()
	n := NewNetwork()
	require.NoError(t, n.AddEdge(Source, "A", 10))
	require.NoError(t, n.AddEdge("A", Sink, 10))
	require.NoError(t, n.AddEdge(Source, "B", 5))
	require.NoError(t, n.AddEdge("B", Sink, 5))
	return n
}

func TestSolve_ClassicNetwork(t *testing.T) {
	f := Solve(buildClassic(t))
	assert.Equal(t, 15, f.Value)
}

func TestSolve_EmptyNetwork(t *testing.T) {
	f := Solve(NewNetwork())
	assert.Equal(t, 0, f.Value)
	assert.Empty(t, f.Edges)
}

func TestSolve_DisconnectedSink(t *testing.T) {
	n := NewNetwork()
	require.NoError(t, n.AddEdge(Source, "A", 10))
	f := Solve(n)
	assert.Equal(t, 0, f.Value)
}

func TestSolve_SingleChain(t *testing.T) {
	n := NewNetwork()
	require.NoError(t, n.AddEdge(Source, "A", 5))
	require.NoError(t, n.AddEdge("A", Sink, 3))

	f := Solve(n)
	assert.Equal(t, 3, f.Value)
	assert.Equal(t, 3, f.EdgeFlow(Source, "A"))
	assert.Equal(t, 3, f.EdgeFlow("A", Sink))
}

func TestSolve_FlowConservation(t *testing.T) {
	n := buildClassic(t)
	f := Solve(n)

	inflow := make(map[string]int)
	outflow := make(map[string]int)
	for from, dests := range f.Edges {
		for to, amount := range dests {
			outflow[from] += amount
			inflow[to] += amount
		}
	}
	for _, node := range []string{"A", "B"} {
		assert.Equal(t, inflow[node], outflow[node], "conservation at %s", node)
	}
	assert.Equal(t, f.Value, outflow[Source])
	assert.Equal(t, f.Value, inflow[Sink])
}

func TestSolve_RespectsCapacities(t *testing.T) {
	n := NewNetwork()
	// Network where the best route requires cancelling an early greedy
	// push through the middle edge.
	require.NoError(t, n.AddEdge(Source, "A", 10))
	require.NoError(t, n.AddEdge(Source, "B", 10))
	require.NoError(t, n.AddEdge("A", "B", 10))
	require.NoError(t, n.AddEdge("A", Sink, 10))
	require.NoError(t, n.AddEdge("B", Sink, 10))

	// Capture capacities before solving; Solve consumes the residual.
	caps := make(map[string]map[string]int)
	for u, dests := range n.capacity {
		caps[u] = make(map[string]int)
		for v, c := range dests {
			caps[u][v] = c
		}
	}

	f := Solve(n)
	assert.Equal(t, 20, f.Value)
	for from, dests := range f.Edges {
		for to, amount := range dests {
			assert.GreaterOrEqual(t, amount, 0)
			assert.LessOrEqual(t, amount, caps[from][to], "edge %s -> %s", from, to)
		}
	}
}

func TestSolve_Deterministic(t *testing.T) {
	first := Solve(buildClassic(t))
	for i := 0; i < 5; i++ {
		again := Solve(buildClassic(t))
		assert.Equal(t, first.Value, again.Value)
		assert.Equal(t, first.Edges, again.Edges)
	}
}
