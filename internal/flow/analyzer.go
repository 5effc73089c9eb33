package flow

import "github.com/dakyeoman/25-1-computing/internal/model"

// LocationFlow summarizes the solved flow through a single location node.
type LocationFlow struct {
	FromSource  int     `json:"from_source"`
	FromOthers  int     `json:"from_others"`
	ToSink      int     `json:"to_sink"`
	ToOthers    int     `json:"to_others"`
	TotalInflow int     `json:"total_inflow"`
	Efficiency  float64 `json:"efficiency"` // ToSink / TotalInflow
	Balance     int     `json:"balance"`    // inflow not pushed onward
}

// Analysis is the per-location decomposition of a solved flow.
type Analysis struct {
	MaxFlow   int                     `json:"max_flow"`
	Locations map[string]LocationFlow `json:"locations"`
}

// Analyze decomposes a solved flow into per-location aggregates. Every
// input location gets an entry, zero-valued when no flow touched it.
func Analyze(f *Flow, locations []model.LocationDataset) *Analysis {
	a := &Analysis{
		MaxFlow:   f.Value,
		Locations: make(map[string]LocationFlow, len(locations)),
	}
	for _, loc := range locations {
		lf := LocationFlow{}
		for from, dests := range f.Edges {
			for to, amount := range dests {
				switch {
				case to == loc.Name && from == Source:
					lf.FromSource += amount
				case to == loc.Name:
					lf.FromOthers += amount
				case from == loc.Name && to == Sink:
					lf.ToSink += amount
				case from == loc.Name:
					lf.ToOthers += amount
				}
			}
		}
		lf.TotalInflow = lf.FromSource + lf.FromOthers
		lf.Balance = lf.TotalInflow - (lf.ToSink + lf.ToOthers)
		if lf.TotalInflow > 0 {
			lf.Efficiency = float64(lf.ToSink) / float64(lf.TotalInflow)
		}
		a.Locations[loc.Name] = lf
	}
	return a
}
