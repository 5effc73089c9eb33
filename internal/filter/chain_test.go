package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dakyeoman/25-1-computing/internal/config"
	"github.com/dakyeoman/25-1-computing/internal/model"
	"github.com/dakyeoman/25-1-computing/internal/scoring"
)

func testThresholds() config.FilterThresholds {
	return config.FilterThresholds{
		CompetitionBlueOceanMax:   10,
		CompetitionModerateMin:    11,
		CompetitionModerateMax:    30,
		CompetitionCompetitiveMin: 31,
		CompetitionCompetitiveMax: 50,
		PriceLowMax:               5000,
		PriceMidLowMax:            8000,
		PriceMidMax:               12000,
		PriceMidHighMax:           15000,
		PeakShareMin:              0.2,
		WeekdayMin:                0.7,
		WeekendMax:                0.5,
		FemaleCenteredMin:         0.6,
		MaleCenteredMax:           0.4,
		BalancedMin:               0.4,
		BalancedMax:               0.6,
	}
}

func candidate(loc model.LocationDataset) scoring.LocationScore {
	return scoring.LocationScore{Location: loc}
}

func candidateNames(r Result) []string {
	out := make([]string, len(r.Candidates))
	for i, c := range r.Candidates {
		out[i] = c.Location.Name
	}
	return out
}

func TestApply_NoConstraintsPassesThrough(t *testing.T) {
	chain := NewChain(testThresholds())
	in := []scoring.LocationScore{
		candidate(model.LocationDataset{Name: "A"}),
		candidate(model.LocationDataset{Name: "B"}),
	}

	res := chain.Apply(in, model.Constraints{})
	assert.Equal(t, []string{"A", "B"}, candidateNames(res))
	assert.Empty(t, res.Skipped)
}

func TestApply_SubwayRequired(t *testing.T) {
	chain := NewChain(testThresholds())
	in := []scoring.LocationScore{
		candidate(model.LocationDataset{Name: "Near", SubwayAccess: true}),
		candidate(model.LocationDataset{Name: "Far"}),
	}

	res := chain.Apply(in, model.Constraints{Subway: model.SubwayRequired})
	assert.Equal(t, []string{"Near"}, candidateNames(res))
}

func TestApply_SubwayPreferredIsNoOp(t *testing.T) {
	chain := NewChain(testThresholds())
	in := []scoring.LocationScore{candidate(model.LocationDataset{Name: "Far"})}

	res := chain.Apply(in, model.Constraints{Subway: model.SubwayPreferred})
	assert.Len(t, res.Candidates, 1)
	assert.Empty(t, res.Skipped)
}

func TestApply_FailOpenRecordsSkip(t *testing.T) {
	chain := NewChain(testThresholds())
	in := []scoring.LocationScore{
		candidate(model.LocationDataset{Name: "A"}),
		candidate(model.LocationDataset{Name: "B"}),
	}

	// No candidate has subway access; the filter would empty the set.
	res := chain.Apply(in, model.Constraints{Subway: model.SubwayRequired})
	assert.Equal(t, []string{"A", "B"}, candidateNames(res))
	assert.Equal(t, []string{"subway"}, res.Skipped)
}

func TestApply_RevenueRange(t *testing.T) {
	chain := NewChain(testThresholds())
	in := []scoring.LocationScore{
		candidate(model.LocationDataset{Name: "Low", Sales: &model.SalesMetrics{Revenue: 1_000_000}}),
		candidate(model.LocationDataset{Name: "Mid", Sales: &model.SalesMetrics{Revenue: 5_000_000}}),
		candidate(model.LocationDataset{Name: "NoData"}),
	}

	res := chain.Apply(in, model.Constraints{RevenueMin: 2_000_000, RevenueMax: 8_000_000})
	// Missing sales data cannot exclude a candidate.
	assert.Equal(t, []string{"Mid", "NoData"}, candidateNames(res))
}

func TestApply_GenderMix(t *testing.T) {
	female := &model.SalesMetrics{FemaleRevenue: 70, MaleRevenue: 30}
	male := &model.SalesMetrics{FemaleRevenue: 20, MaleRevenue: 80}
	in := []scoring.LocationScore{
		candidate(model.LocationDataset{Name: "F", Sales: female}),
		candidate(model.LocationDataset{Name: "M", Sales: male}),
		candidate(model.LocationDataset{Name: "N"}), // neutral 0.5
	}
	chain := NewChain(testThresholds())

	res := chain.Apply(in, model.Constraints{GenderMix: model.MixFemaleCentered})
	assert.Equal(t, []string{"F"}, candidateNames(res))

	res = chain.Apply(in, model.Constraints{GenderMix: model.MixBalanced})
	assert.Equal(t, []string{"N"}, candidateNames(res))
}

func TestApply_CompetitionBuckets(t *testing.T) {
	mk := func(name string, merchants int) scoring.LocationScore {
		return candidate(model.LocationDataset{
			Name: name,
			Commercial: model.CommercialMetrics{
				Categories: []model.CategorySales{
					{MidCategory: "coffee shop", MerchantCount: merchants},
				},
			},
		})
	}
	in := []scoring.LocationScore{mk("Quiet", 5), mk("Busy", 25), mk("Packed", 45)}
	chain := NewChain(testThresholds())

	res := chain.Apply(in, model.Constraints{Business: model.Cafe, Competition: model.CompetitionBlueOcean})
	assert.Equal(t, []string{"Quiet"}, candidateNames(res))

	res = chain.Apply(in, model.Constraints{Business: model.Cafe, Competition: model.CompetitionModerate})
	assert.Equal(t, []string{"Busy"}, candidateNames(res))

	res = chain.Apply(in, model.Constraints{Business: model.Cafe, Competition: model.CompetitionHigh})
	assert.Equal(t, []string{"Packed"}, candidateNames(res))
}

func TestApply_PeakTimeShare(t *testing.T) {
	morning := &model.SalesMetrics{
		Revenue:     1000,
		TimeRevenue: map[model.TimeSlot]float64{model.SlotMorning: 300},
	}
	evening := &model.SalesMetrics{
		Revenue:     1000,
		TimeRevenue: map[model.TimeSlot]float64{model.SlotMorning: 50},
	}
	in := []scoring.LocationScore{
		candidate(model.LocationDataset{Name: "Morning", Sales: morning}),
		candidate(model.LocationDataset{Name: "Evening", Sales: evening}),
	}
	chain := NewChain(testThresholds())

	res := chain.Apply(in, model.Constraints{PeakTime: model.PeakMorning})
	assert.Equal(t, []string{"Morning"}, candidateNames(res))
}

func TestApply_WeekdayShare(t *testing.T) {
	weekday := &model.SalesMetrics{WeekdayRevenue: 80, WeekendRevenue: 20}
	weekend := &model.SalesMetrics{WeekdayRevenue: 40, WeekendRevenue: 60}
	in := []scoring.LocationScore{
		candidate(model.LocationDataset{Name: "Wd", Sales: weekday}),
		candidate(model.LocationDataset{Name: "We", Sales: weekend}),
	}
	chain := NewChain(testThresholds())

	res := chain.Apply(in, model.Constraints{Weekday: model.WeekdayFocused})
	assert.Equal(t, []string{"Wd"}, candidateNames(res))

	res = chain.Apply(in, model.Constraints{Weekday: model.WeekendFocused})
	assert.Equal(t, []string{"We"}, candidateNames(res))
}

func TestApply_PriceBuckets(t *testing.T) {
	// No commercial data: cafe default price 6000 lands in mid_low.
	in := []scoring.LocationScore{candidate(model.LocationDataset{Name: "Default"})}
	chain := NewChain(testThresholds())

	res := chain.Apply(in, model.Constraints{Business: model.Cafe, PriceRange: model.PriceMidLow})
	assert.Len(t, res.Candidates, 1)
	assert.Empty(t, res.Skipped)

	res = chain.Apply(in, model.Constraints{Business: model.Cafe, PriceRange: model.PriceHigh})
	// Would empty the set: fail-open and record.
	assert.Len(t, res.Candidates, 1)
	assert.Equal(t, []string{"price_range"}, res.Skipped)
}

func TestApply_MinStores(t *testing.T) {
	in := []scoring.LocationScore{
		candidate(model.LocationDataset{Name: "Active", Dynamics: &model.BusinessDynamics{StoreCount: 12}}),
		candidate(model.LocationDataset{Name: "Sparse", Dynamics: &model.BusinessDynamics{StoreCount: 2}}),
	}
	chain := NewChain(testThresholds())

	res := chain.Apply(in, model.Constraints{MinStores: 5})
	assert.Equal(t, []string{"Active"}, candidateNames(res))
}

func TestApply_MonotoneAcrossChain(t *testing.T) {
	in := []scoring.LocationScore{
		candidate(model.LocationDataset{Name: "A", SubwayAccess: true, Dynamics: &model.BusinessDynamics{StoreCount: 10}}),
		candidate(model.LocationDataset{Name: "B", Dynamics: &model.BusinessDynamics{StoreCount: 10}}),
		candidate(model.LocationDataset{Name: "C", SubwayAccess: true}),
	}
	chain := NewChain(testThresholds())

	res := chain.Apply(in, model.Constraints{Subway: model.SubwayRequired, MinStores: 5})
	assert.Equal(t, []string{"A"}, candidateNames(res))

	// Every survivor was in the input (subset property).
	inputNames := map[string]bool{"A": true, "B": true, "C": true}
	for _, c := range res.Candidates {
		assert.True(t, inputNames[c.Location.Name])
	}
}
