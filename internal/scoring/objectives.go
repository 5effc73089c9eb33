// Package scoring computes per-location objective vectors, normalizes
// them across the candidate set, and reduces the set to its
// Pareto-optimal front.
package scoring

import (
	"github.com/dakyeoman/25-1-computing/internal/config"
	"github.com/dakyeoman/25-1-computing/internal/flow"
	"github.com/dakyeoman/25-1-computing/internal/model"
)

// SubScores are the 0-100 component scores feeding the objectives.
// Carried on results for display and diagnostics.
type SubScores struct {
	Population  float64 `json:"population"`
	Payment     float64 `json:"payment"`
	TargetMatch float64 `json:"target_match"`
	Competition float64 `json:"competition"`
	BudgetFit   float64 `json:"budget_fit"`
	GenderMatch float64 `json:"gender_match"`
	AreaType    float64 `json:"area_type"`
}

// LocationScore pairs a location with its raw and normalized objective
// vectors. Normalized is nil until the Normalizer runs.
type LocationScore struct {
	Location   model.LocationDataset
	Flow       *flow.LocationFlow
	Sub        SubScores
	Raw        model.ObjectiveVector
	Normalized model.ObjectiveVector
}

// Calculator computes objective vectors. Pure over its inputs; one
// instance serves concurrent requests.
type Calculator struct {
	cfg config.ScoringConfig
}

// NewCalculator creates a Calculator with the given scoring knobs.
func NewCalculator(cfg config.ScoringConfig) *Calculator {
	return &Calculator{cfg: cfg}
}

// Score computes the full objective vector for one location. fl may be
// nil when no flow analysis was run; network efficiency is then 0 and
// excluded from dominance downstream.
func (c *Calculator) Score(loc model.LocationDataset, cons model.Constraints, fl *flow.LocationFlow) LocationScore {
	sub := SubScores{
		Population:  capScore(float64(loc.Population.Max) / c.cfg.IdealPopulation * 100),
		Payment:     c.paymentScore(loc, cons.Business),
		TargetMatch: TargetMatch(loc, cons.TargetSegments),
		Competition: competitionScore(CompetitorCount(loc, cons.Business), cons.Business),
		BudgetFit:   budgetFit(PricePerPerson(loc, cons.Business), cons.BudgetMin, cons.BudgetMax),
		GenderMatch: GenderMatch(loc.Population, cons),
		AreaType:    AreaTypeScore(loc, cons),
	}

	profitability := sub.Population*0.35 + sub.Payment*0.35 + sub.TargetMatch*0.30
	if cons.GenderTargetSet() {
		profitability = profitability*0.9 + sub.GenderMatch*0.1
	}

	nonResident := loc.Population.NonResidentShare()
	areaComponent := loc.Commercial.ActivityLevel.Score()
	if cons.PreferTourist || cons.PreferOffice || cons.PreferResidential || cons.PreferUniversity {
		areaComponent = (areaComponent + sub.AreaType) / 2
	}
	accessibility := nonResident*0.6 + areaComponent*0.4

	raw := model.ObjectiveVector{
		model.ObjProfitability: profitability,
		model.ObjStability:     sub.Competition*0.6 + sub.BudgetFit*0.4,
		model.ObjAccessibility: accessibility,
	}

	raw[model.ObjNetworkEfficiency] = 0
	if fl != nil {
		raw[model.ObjNetworkEfficiency] = fl.Efficiency * 100
	}

	// Auxiliary ranking objectives; neutral zero without sales data.
	raw[model.ObjMorningShare] = 0
	raw[model.ObjWeekdayShare] = 0
	if loc.Sales != nil {
		raw[model.ObjMorningShare] = loc.Sales.TimeShare(model.SlotMorning) * 100
		raw[model.ObjWeekdayShare] = loc.Sales.WeekdayRatio() * 100
	}

	return LocationScore{Location: loc, Flow: fl, Sub: sub, Raw: raw}
}

// paymentScore rates monthly payment activity against the ideal,
// preferring the business category's own payment counts.
func (c *Calculator) paymentScore(loc model.LocationDataset, business model.BusinessCategory) float64 {
	count := 0
	for _, cs := range loc.Commercial.Categories {
		if business.MatchesCategory(cs.LargeCategory + " " + cs.MidCategory) {
			count += cs.PaymentCount
		}
	}
	if count == 0 {
		count = loc.Commercial.PaymentCount
	}
	return capScore(float64(count) / c.cfg.IdealPayment * 100)
}

// competitionScore is an inverted-U peaking at the category's ideal
// competitor count: under-proven markets score below the peak, and
// saturated ones decay toward a floor of 30.
func competitionScore(competitors int, business model.BusinessCategory) float64 {
	ideal := float64(business.Profile().IdealCompetition)
	c := float64(competitors)
	if c <= ideal {
		return 60 + c/ideal*40
	}
	s := 100 - (c-ideal)/ideal*70
	if s < 30 {
		return 30
	}
	return s
}

// budgetFit rates the estimated price point against the requested band.
// Inside the band the score decays gently from the center; outside it
// decays with the relative distance from the nearer bound.
func budgetFit(price, budgetMin, budgetMax int64) float64 {
	if budgetMin <= 0 && budgetMax <= 0 {
		return 50
	}
	if price <= 0 {
		return 50
	}
	p := float64(price)
	lo, hi := float64(budgetMin), float64(budgetMax)
	switch {
	case p >= lo && p <= hi:
		center := (lo + hi) / 2
		half := (hi - lo) / 2
		if half <= 0 {
			return 100
		}
		return 100 - abs(p-center)/half*20
	case p < lo:
		return p / lo * 50
	default:
		return hi / p * 50
	}
}

// CompetitorCount counts same-category merchants, estimating from the
// category's area-wide merchant share when no breakdown matches.
func CompetitorCount(loc model.LocationDataset, business model.BusinessCategory) int {
	count := 0
	total := 0
	for _, cs := range loc.Commercial.Categories {
		total += cs.MerchantCount
		if business.MatchesCategory(cs.LargeCategory + " " + cs.MidCategory) {
			count += cs.MerchantCount
		}
	}
	if count == 0 {
		count = int(float64(total) * business.Profile().MerchantShare)
	}
	return count
}

// PricePerPerson estimates the per-person price point from category
// payment data, falling back to an area-wide estimate scaled by the
// category's revenue share, then to the category default. The result is
// clamped to the category's plausible price band.
func PricePerPerson(loc model.LocationDataset, business model.BusinessCategory) int64 {
	p := business.Profile()

	for _, cs := range loc.Commercial.Categories {
		if !business.MatchesCategory(cs.LargeCategory + " " + cs.MidCategory) {
			continue
		}
		amount := float64(cs.PaymentMin+cs.PaymentMax) / 2
		if cs.PaymentCount <= 0 || amount <= 0 {
			continue
		}
		perTransaction := amount / float64(cs.PaymentCount)
		return clampPrice(perTransaction/p.PersonsPerTransaction, p)
	}

	areaAmount := float64(loc.Commercial.PaymentMin+loc.Commercial.PaymentMax) / 2
	if loc.Commercial.PaymentCount > 0 && areaAmount > 0 {
		perTransaction := areaAmount / float64(loc.Commercial.PaymentCount)
		estimated := perTransaction * p.RevenueShare * 10
		return clampPrice(estimated/p.PersonsPerTransaction, p)
	}

	return p.DefaultPrice
}

func clampPrice(v float64, p model.CategoryProfile) int64 {
	price := int64(v)
	if price < p.MinPrice {
		return p.MinPrice
	}
	if price > p.MaxPrice {
		return p.MaxPrice
	}
	return price
}

func capScore(v float64) float64 {
	if v > 100 {
		return 100
	}
	if v < 0 {
		return 0
	}
	return v
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
