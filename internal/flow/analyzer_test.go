package flow

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dakyeoman/25-1-computing/internal/config"
	"github.com/dakyeoman/25-1-computing/internal/model"
)

func TestAnalyze_ClassicNetwork(t *testing.T) {
	f := Solve(buildClassic(t))
	require.Equal(t, 15, f.Value)

	locs := []model.LocationDataset{{Name: "A"}, {Name: "B"}}
	a := Analyze(f, locs)

	assert.Equal(t, 15, a.MaxFlow)
	require.Len(t, a.Locations, 2)

	total := 0
	for name, lf := range a.Locations {
		assert.Equal(t, lf.FromSource+lf.FromOthers, lf.TotalInflow, name)
		assert.Equal(t, 0, lf.Balance, "conserved flow leaves no residue at %s", name)
		total += lf.ToSink
	}
	assert.Equal(t, 15, total)
}

func TestAnalyze_EfficiencyRatio(t *testing.T) {
	n := NewNetwork()
	require.NoError(t, n.AddEdge(Source, "A", 10))
	require.NoError(t, n.AddEdge("A", "B", 6))
	require.NoError(t, n.AddEdge("A", Sink, 4))
	require.NoError(t, n.AddEdge("B", Sink, 6))

	f := Solve(n)
	require.Equal(t, 10, f.Value)

	a := Analyze(f, []model.LocationDataset{{Name: "A"}, {Name: "B"}})

	lfA := a.Locations["A"]
	assert.Equal(t, 10, lfA.TotalInflow)
	assert.Equal(t, 4, lfA.ToSink)
	assert.Equal(t, 6, lfA.ToOthers)
	assert.InDelta(t, 0.4, lfA.Efficiency, 0.001)

	lfB := a.Locations["B"]
	assert.Equal(t, 6, lfB.FromOthers)
	assert.InDelta(t, 1.0, lfB.Efficiency, 0.001)
}

func TestAnalyze_EstimatedNetworkScenario(t *testing.T) {
	mk := func(name string, pop, payments int) model.LocationDataset {
		return model.LocationDataset{
			Name: name,
			Population: model.PopulationMetrics{
				Max:              pop,
				NonResidentRatio: 50,
			},
			Commercial: model.CommercialMetrics{PaymentCount: payments},
		}
	}
	locs := []model.LocationDataset{
		mk("Alpha", 100000, 50000),
		mk("Beta", 80000, 40000),
		mk("Gamma", 20000, 5000),
	}

	n, err := NewBuilder(config.EstimatedProfile(), nil).Build(locs, nil)
	require.NoError(t, err)

	f := Solve(n)
	assert.Positive(t, f.Value)

	a := Analyze(f, locs)
	require.Len(t, a.Locations, 3)
	for name, lf := range a.Locations {
		assert.GreaterOrEqual(t, lf.Efficiency, 0.0, name)
		assert.LessOrEqual(t, lf.Efficiency, 1.0, name)
	}
}

func TestAnalyze_UntouchedLocationIsZero(t *testing.T) {
	f := Solve(NewNetwork())
	a := Analyze(f, []model.LocationDataset{{Name: "Nowhere"}})

	lf, ok := a.Locations["Nowhere"]
	require.True(t, ok)
	assert.Zero(t, lf.TotalInflow)
	assert.Zero(t, lf.Efficiency)
}
