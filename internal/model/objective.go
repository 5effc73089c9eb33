package model

// Objective names the tracked scoring dimensions.
type Objective string

// Objectives. The first four participate in Pareto dominance; the last
// two exist only for preference-weighted ranking.
const (
	ObjProfitability     Objective = "profitability"
	ObjStability         Objective = "stability"
	ObjAccessibility     Objective = "accessibility"
	ObjNetworkEfficiency Objective = "network_efficiency"
	ObjMorningShare      Objective = "morning_share"
	ObjWeekdayShare      Objective = "weekday_share"
)

// ObjectiveVector maps objective names to scores. Raw vectors are on a
// 0-100 scale; normalized vectors are on [0, 1].
type ObjectiveVector map[Objective]float64

// Clone returns an independent copy of the vector.
func (v ObjectiveVector) Clone() ObjectiveVector {
	out := make(ObjectiveVector, len(v))
	for k, val := range v {
		out[k] = val
	}
	return out
}

// DominanceObjectives returns the objectives used for Pareto dominance.
// Network efficiency participates only when flow analysis was performed.
func DominanceObjectives(withFlow bool) []Objective {
	objs := []Objective{ObjProfitability, ObjStability, ObjAccessibility}
	if withFlow {
		objs = append(objs, ObjNetworkEfficiency)
	}
	return objs
}

// RankedObjectives returns every objective carried through ranking, in
// stable order.
func RankedObjectives() []Objective {
	return []Objective{
		ObjProfitability, ObjStability, ObjAccessibility,
		ObjNetworkEfficiency, ObjMorningShare, ObjWeekdayShare,
	}
}
