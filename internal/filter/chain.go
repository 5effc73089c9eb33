// Package filter narrows a scored candidate set through a fixed chain
// of preference filters.
package filter

import (
	"go.uber.org/zap"

	"github.com/dakyeoman/25-1-computing/internal/config"
	"github.com/dakyeoman/25-1-computing/internal/model"
	"github.com/dakyeoman/25-1-computing/internal/scoring"
)

// Result is the outcome of running the chain. Skipped lists, in chain
// order, the active filters that would have emptied the candidate set
// and were therefore bypassed.
type Result struct {
	Candidates []scoring.LocationScore
	Skipped    []string
}

// Chain applies the eight preference filters in a fixed order. Each
// filter is monotone (output is a subset of input) except for the
// fail-open rule: a filter that would eliminate every remaining
// candidate is skipped and reported, so one overly strict sub-criterion
// never produces an empty recommendation on its own.
type Chain struct {
	cfg config.FilterThresholds
}

// NewChain creates a Chain with the given bucket thresholds.
func NewChain(cfg config.FilterThresholds) *Chain {
	return &Chain{cfg: cfg}
}

type step struct {
	name   string
	active func(model.Constraints) bool
	keep   func(scoring.LocationScore, model.Constraints) bool
}

// Apply runs every active filter over the candidates. Unset or ANY
// preferences skip their filter without inspecting location data.
func (c *Chain) Apply(candidates []scoring.LocationScore, cons model.Constraints) Result {
	res := Result{Candidates: candidates}
	for _, s := range c.steps() {
		if !s.active(cons) || len(res.Candidates) == 0 {
			continue
		}
		kept := make([]scoring.LocationScore, 0, len(res.Candidates))
		for _, cand := range res.Candidates {
			if s.keep(cand, cons) {
				kept = append(kept, cand)
			}
		}
		if len(kept) == 0 {
			zap.L().Warn("filter: skipping filter that would empty the candidate set",
				zap.String("filter", s.name),
				zap.Int("candidates", len(res.Candidates)),
			)
			res.Skipped = append(res.Skipped, s.name)
			continue
		}
		res.Candidates = kept
	}
	return res
}

func (c *Chain) steps() []step {
	return []step{
		{
			name:   "revenue_range",
			active: func(cons model.Constraints) bool { return cons.RevenueMin > 0 || cons.RevenueMax > 0 },
			keep: func(cand scoring.LocationScore, cons model.Constraints) bool {
				if cand.Location.Sales == nil {
					return true // no revenue data, cannot exclude
				}
				rev := cand.Location.Sales.Revenue
				if cons.RevenueMin > 0 && rev < cons.RevenueMin {
					return false
				}
				if cons.RevenueMax > 0 && rev > cons.RevenueMax {
					return false
				}
				return true
			},
		},
		{
			name: "gender_mix",
			active: func(cons model.Constraints) bool {
				return cons.GenderMix != "" && cons.GenderMix != model.MixAny
			},
			keep: func(cand scoring.LocationScore, cons model.Constraints) bool {
				ratio := femaleRevenueRatio(cand.Location)
				switch cons.GenderMix {
				case model.MixFemaleCentered:
					return ratio >= c.cfg.FemaleCenteredMin
				case model.MixMaleCentered:
					return ratio <= c.cfg.MaleCenteredMax
				case model.MixBalanced:
					return ratio >= c.cfg.BalancedMin && ratio <= c.cfg.BalancedMax
				}
				return true
			},
		},
		{
			name: "competition_level",
			active: func(cons model.Constraints) bool {
				return cons.Competition != "" && cons.Competition != model.CompetitionAny
			},
			keep: func(cand scoring.LocationScore, cons model.Constraints) bool {
				n := scoring.CompetitorCount(cand.Location, cons.Business)
				switch cons.Competition {
				case model.CompetitionBlueOcean:
					return n <= c.cfg.CompetitionBlueOceanMax
				case model.CompetitionModerate:
					return n >= c.cfg.CompetitionModerateMin && n <= c.cfg.CompetitionModerateMax
				case model.CompetitionHigh:
					return n >= c.cfg.CompetitionCompetitiveMin && n <= c.cfg.CompetitionCompetitiveMax
				}
				return true
			},
		},
		{
			name:   "subway",
			active: func(cons model.Constraints) bool { return cons.Subway == model.SubwayRequired },
			keep: func(cand scoring.LocationScore, _ model.Constraints) bool {
				return cand.Location.SubwayAccess
			},
		},
		{
			name: "peak_time",
			active: func(cons model.Constraints) bool {
				_, ok := cons.PeakTime.Slot()
				return ok
			},
			keep: func(cand scoring.LocationScore, cons model.Constraints) bool {
				if cand.Location.Sales == nil {
					return true
				}
				slot, _ := cons.PeakTime.Slot()
				return cand.Location.Sales.TimeShare(slot) >= c.cfg.PeakShareMin
			},
		},
		{
			name: "weekday_share",
			active: func(cons model.Constraints) bool {
				return cons.Weekday == model.WeekdayFocused || cons.Weekday == model.WeekendFocused
			},
			keep: func(cand scoring.LocationScore, cons model.Constraints) bool {
				ratio := weekdayRevenueRatio(cand.Location)
				if cons.Weekday == model.WeekdayFocused {
					return ratio >= c.cfg.WeekdayMin
				}
				return ratio <= c.cfg.WeekendMax
			},
		},
		{
			name: "price_range",
			active: func(cons model.Constraints) bool {
				return cons.PriceRange != "" && cons.PriceRange != model.PriceAny
			},
			keep: func(cand scoring.LocationScore, cons model.Constraints) bool {
				price := scoring.PricePerPerson(cand.Location, cons.Business)
				switch cons.PriceRange {
				case model.PriceLow:
					return price <= c.cfg.PriceLowMax
				case model.PriceMidLow:
					return price > c.cfg.PriceLowMax && price <= c.cfg.PriceMidLowMax
				case model.PriceMid:
					return price > c.cfg.PriceMidLowMax && price <= c.cfg.PriceMidMax
				case model.PriceMidHigh:
					return price > c.cfg.PriceMidMax && price <= c.cfg.PriceMidHighMax
				case model.PriceHigh:
					return price > c.cfg.PriceMidHighMax
				}
				return true
			},
		},
		{
			name:   "min_stores",
			active: func(cons model.Constraints) bool { return cons.MinStores > 0 },
			keep: func(cand scoring.LocationScore, cons model.Constraints) bool {
				return cand.Location.StoreCount() >= cons.MinStores
			},
		},
	}
}

// femaleRevenueRatio is the female share of gendered revenue, neutral
// 0.5 without sales data.
func femaleRevenueRatio(loc model.LocationDataset) float64 {
	if loc.Sales == nil {
		return 0.5
	}
	return loc.Sales.FemaleRatio()
}

// weekdayRevenueRatio is the weekday share of revenue, 0.7 without
// sales data, matching the upstream data's city-wide average.
func weekdayRevenueRatio(loc model.LocationDataset) float64 {
	if loc.Sales == nil {
		return 0.7
	}
	return loc.Sales.WeekdayRatio()
}
