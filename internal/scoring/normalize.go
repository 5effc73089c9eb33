package scoring

import "github.com/dakyeoman/25-1-computing/internal/model"

// Normalize min-max rescales every objective independently across the
// candidate set into [0, 1], writing the result into each score's
// Normalized vector. Raw vectors are left untouched. When every
// candidate ties on a key the whole column gets 0.5: the key carries no
// discriminating information, and division by zero is avoided.
func Normalize(scores []LocationScore) {
	if len(scores) == 0 {
		return
	}

	for _, obj := range model.RankedObjectives() {
		lo, hi := scores[0].Raw[obj], scores[0].Raw[obj]
		for _, s := range scores[1:] {
			v := s.Raw[obj]
			if v < lo {
				lo = v
			}
			if v > hi {
				hi = v
			}
		}

		for i := range scores {
			if scores[i].Normalized == nil {
				scores[i].Normalized = make(model.ObjectiveVector, len(scores[i].Raw))
			}
			if hi == lo {
				scores[i].Normalized[obj] = 0.5
				continue
			}
			scores[i].Normalized[obj] = (scores[i].Raw[obj] - lo) / (hi - lo)
		}
	}
}
