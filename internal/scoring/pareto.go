package scoring

import "github.com/dakyeoman/25-1-computing/internal/model"

// ParetoFront returns the candidates not dominated by any other
// candidate on the normalized dominance objectives. A dominates B when
// A ≥ B on every objective and A > B on at least one. Auxiliary keys in
// the vectors are ignored. Input order is preserved in the output.
func ParetoFront(scores []LocationScore, withFlow bool) []LocationScore {
	objs := model.DominanceObjectives(withFlow)
	front := make([]LocationScore, 0, len(scores))
	for i, a := range scores {
		dominated := false
		for j, b := range scores {
			if i == j {
				continue
			}
			if dominates(b.Normalized, a.Normalized, objs) {
				dominated = true
				break
			}
		}
		if !dominated {
			front = append(front, a)
		}
	}
	return front
}

func dominates(a, b model.ObjectiveVector, objs []model.Objective) bool {
	strict := false
	for _, obj := range objs {
		if a[obj] < b[obj] {
			return false
		}
		if a[obj] > b[obj] {
			strict = true
		}
	}
	return strict
}
