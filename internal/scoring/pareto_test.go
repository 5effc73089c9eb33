package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dakyeoman/25-1-computing/internal/model"
)

func normScore(name string, prof, stab, acc float64) LocationScore {
	return LocationScore{
		Location: model.LocationDataset{Name: name},
		Normalized: model.ObjectiveVector{
			model.ObjProfitability: prof,
			model.ObjStability:     stab,
			model.ObjAccessibility: acc,
		},
	}
}

func names(scores []LocationScore) []string {
	out := make([]string, len(scores))
	for i, s := range scores {
		out[i] = s.Location.Name
	}
	return out
}

func TestParetoFront_DominatedDropped(t *testing.T) {
	scores := []LocationScore{
		normScore("Best", 0.9, 0.9, 0.9),
		normScore("Dominated", 0.5, 0.5, 0.5),
		normScore("Tradeoff", 1.0, 0.2, 0.2),
	}

	front := ParetoFront(scores, false)
	assert.Equal(t, []string{"Best", "Tradeoff"}, names(front))
}

func TestParetoFront_EqualVectorsAllSurvive(t *testing.T) {
	scores := []LocationScore{
		normScore("A", 0.5, 0.5, 0.5),
		normScore("B", 0.5, 0.5, 0.5),
	}

	front := ParetoFront(scores, false)
	assert.Len(t, front, 2)
}

func TestParetoFront_NoMemberDominatesAnother(t *testing.T) {
	scores := []LocationScore{
		normScore("A", 0.9, 0.1, 0.5),
		normScore("B", 0.1, 0.9, 0.5),
		normScore("C", 0.5, 0.5, 0.9),
		normScore("D", 0.4, 0.4, 0.4),
		normScore("E", 0.95, 0.15, 0.55),
	}

	front := ParetoFront(scores, false)
	objs := model.DominanceObjectives(false)
	for i, a := range front {
		for j, b := range front {
			if i == j {
				continue
			}
			assert.False(t, dominates(a.Normalized, b.Normalized, objs),
				"%s dominates %s inside the front", a.Location.Name, b.Location.Name)
		}
	}
}

func TestParetoFront_FlowObjectiveChangesDominance(t *testing.T) {
	a := normScore("A", 0.8, 0.8, 0.8)
	a.Normalized[model.ObjNetworkEfficiency] = 0.1
	b := normScore("B", 0.6, 0.6, 0.6)
	b.Normalized[model.ObjNetworkEfficiency] = 0.9

	// Without flow, B is dominated on the three base objectives.
	front := ParetoFront([]LocationScore{a, b}, false)
	assert.Equal(t, []string{"A"}, names(front))

	// With flow, B's efficiency advantage keeps it in the front.
	front = ParetoFront([]LocationScore{a, b}, true)
	assert.Equal(t, []string{"A", "B"}, names(front))
}

func TestParetoFront_Empty(t *testing.T) {
	assert.Empty(t, ParetoFront(nil, false))
}
