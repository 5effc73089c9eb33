// Package rank turns a filtered candidate set into the final ordered
// recommendation list.
package rank

import (
	"sort"

	"github.com/dakyeoman/25-1-computing/internal/config"
	"github.com/dakyeoman/25-1-computing/internal/model"
	"github.com/dakyeoman/25-1-computing/internal/scoring"
)

// RecommendationResult is one ranked location with the raw metrics
// needed for display.
type RecommendationResult struct {
	Rank     int                   `json:"rank"`
	Name     string                `json:"name"`
	Region   string                `json:"region"`
	Score    float64               `json:"score"`
	Raw      model.ObjectiveVector `json:"objectives"`
	Sub      scoring.SubScores     `json:"sub_scores"`
	MaxPop   int                   `json:"population_max"`
	Payments int                   `json:"payment_count"`
	Price    int64                 `json:"price_per_person"`
	Stores   int                   `json:"store_count"`
}

// Ranker scores candidates with preference-adjusted objective weights.
type Ranker struct {
	defaults config.RankWeights
}

// NewRanker creates a Ranker with the configured default weights.
func NewRanker(defaults config.RankWeights) *Ranker {
	return &Ranker{defaults: defaults}
}

// Rank computes a weighted sum of normalized objectives per candidate,
// sorts descending with an ascending name tie-break, and returns the
// top n results. n <= 0 returns everything.
func (r *Ranker) Rank(candidates []scoring.LocationScore, cons model.Constraints, n int) []RecommendationResult {
	weights := r.Weights(cons)

	type ranked struct {
		score float64
		cand  scoring.LocationScore
	}
	// Sum in a fixed objective order so equal vectors produce
	// bit-identical scores and the name tie-break can engage.
	all := make([]ranked, 0, len(candidates))
	for _, cand := range candidates {
		score := 0.0
		for _, obj := range model.RankedObjectives() {
			score += cand.Normalized[obj] * weights[obj]
		}
		all = append(all, ranked{score: score, cand: cand})
	}

	sort.SliceStable(all, func(i, j int) bool {
		if all[i].score != all[j].score {
			return all[i].score > all[j].score
		}
		return all[i].cand.Location.Name < all[j].cand.Location.Name
	})

	if n > 0 && len(all) > n {
		all = all[:n]
	}

	out := make([]RecommendationResult, len(all))
	for i, rr := range all {
		loc := rr.cand.Location
		out[i] = RecommendationResult{
			Rank:     i + 1,
			Name:     loc.Name,
			Region:   loc.Region,
			Score:    rr.score,
			Raw:      rr.cand.Raw.Clone(),
			Sub:      rr.cand.Sub,
			MaxPop:   loc.Population.Max,
			Payments: loc.Commercial.PaymentCount,
			Price:    scoring.PricePerPerson(loc, cons.Business),
			Stores:   loc.StoreCount(),
		}
	}
	return out
}

// Weights returns the preference-adjusted objective weights,
// re-normalized to sum to 1.
func (r *Ranker) Weights(cons model.Constraints) map[model.Objective]float64 {
	w := map[model.Objective]float64{
		model.ObjProfitability:     r.defaults.Profitability,
		model.ObjStability:         r.defaults.Stability,
		model.ObjAccessibility:     r.defaults.Accessibility,
		model.ObjNetworkEfficiency: r.defaults.NetworkEfficiency,
		model.ObjMorningShare:      r.defaults.MorningShare,
		model.ObjWeekdayShare:      r.defaults.WeekdayShare,
	}

	switch cons.Subway {
	case model.SubwayRequired:
		w[model.ObjAccessibility] = 0.25
		w[model.ObjProfitability] = 0.25
	case model.SubwayPreferred:
		w[model.ObjAccessibility] = 0.20
	}
	if cons.PeakTime == model.PeakMorning {
		w[model.ObjMorningShare] = 0.20
		w[model.ObjNetworkEfficiency] = 0.10
	}
	if cons.Weekday == model.WeekdayFocused {
		w[model.ObjWeekdayShare] = 0.20
		w[model.ObjMorningShare] = 0.05
	}

	total := 0.0
	for _, obj := range model.RankedObjectives() {
		total += w[obj]
	}
	if total > 0 {
		for _, obj := range model.RankedObjectives() {
			w[obj] /= total
		}
	}
	return w
}
