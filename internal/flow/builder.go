package flow

import (
	"go.uber.org/zap"

	"github.com/dakyeoman/25-1-computing/internal/config"
	"github.com/dakyeoman/25-1-computing/internal/model"
)

// Builder constructs a Network from location datasets, using observed
// movement data when available and heuristic-profile estimates otherwise.
type Builder struct {
	profile   config.HeuristicProfile
	adjacency map[string][]string
}

// NewBuilder creates a Builder. The adjacency table is a static lookup
// of registered geographic neighbors; it may be nil.
func NewBuilder(profile config.HeuristicProfile, adjacency map[string][]string) *Builder {
	return &Builder{profile: profile, adjacency: adjacency}
}

// Build produces a network with one node per location plus SOURCE and
// SINK. An empty location list yields a valid network with zero edges.
// movement may be nil, in which case every capacity is estimated from
// population and payment data.
func (b *Builder) Build(locations []model.LocationDataset, movement *model.MovementData) (*Network, error) {
	n := NewNetwork()
	if len(locations) == 0 {
		return n, nil
	}

	var err error
	if movement != nil && len(movement.DailyCounts) > 0 {
		err = b.buildObserved(n, locations, movement)
	} else {
		err = b.buildEstimated(n, locations)
	}
	if err != nil {
		return nil, err
	}

	zap.L().Debug("flow: network built",
		zap.String("profile", b.profile.Name),
		zap.Int("nodes", n.NodeCount()),
		zap.Int("edges", n.EdgeCount()),
		zap.Int("total_capacity", n.TotalCapacity()),
	)
	return n, nil
}

// buildObserved wires capacities from real movement counts.
func (b *Builder) buildObserved(n *Network, locations []model.LocationDataset, movement *model.MovementData) error {
	names := make(map[string]bool, len(locations))
	for _, loc := range locations {
		names[loc.Name] = true
	}

	// SOURCE -> location: external inflow is the observed total inflow
	// minus trips arriving from other candidate locations.
	for _, loc := range locations {
		total := movement.DailyInflow[loc.Name]
		fromOthers := 0
		for from, dests := range movement.DailyCounts {
			if from == loc.Name || !names[from] {
				continue
			}
			fromOthers += dests[loc.Name]
		}
		external := total - fromOthers
		if external < 0 {
			external = 0
		}
		if err := n.AddEdge(Source, loc.Name, external/b.profile.HourlyDivisor); err != nil {
			return err
		}
	}

	// location -> location: observed daily counts, bucketed.
	for from, dests := range movement.DailyCounts {
		if !names[from] {
			continue
		}
		for to, daily := range dests {
			if !names[to] || to == from {
				continue
			}
			if err := n.AddEdge(from, to, daily/b.profile.HourlyDivisor); err != nil {
				return err
			}
		}
	}

	// location -> SINK: expected converting customers, falling back to
	// monthly payment counts.
	for _, loc := range locations {
		daily := movement.ExpectedCustomers[loc.Name]
		if daily <= 0 {
			daily = loc.Commercial.PaymentCount / b.profile.MonthlyToDaily
		}
		if err := n.AddEdge(loc.Name, Sink, daily/b.profile.HourlyDivisor); err != nil {
			return err
		}
	}
	return nil
}

// buildEstimated wires capacities from population and payment estimates.
// Floors keep every location structurally reachable.
func (b *Builder) buildEstimated(n *Network, locations []model.LocationDataset) error {
	for _, loc := range locations {
		nonResident := loc.Population.NonResidentShare() / 100
		capacity := int(float64(loc.Population.Max) * nonResident * b.profile.SourceScale)
		if capacity < b.profile.SourceFloor {
			capacity = b.profile.SourceFloor
		}
		if err := n.AddEdge(Source, loc.Name, capacity); err != nil {
			return err
		}
	}

	for i := range locations {
		for j := i + 1; j < len(locations); j++ {
			a, c := locations[i], locations[j]
			smaller := a.Population.Max
			if c.Population.Max < smaller {
				smaller = c.Population.Max
			}
			base := int(float64(smaller) * b.profile.LinkScale)
			if base < b.profile.LinkFloor {
				base = b.profile.LinkFloor
			}
			boost := b.profile.BaseBoost
			if b.isAdjacent(a.Name, c.Name) {
				boost = b.profile.AdjacentBoost
			}
			capacity := base * boost
			if err := n.AddEdge(a.Name, c.Name, capacity); err != nil {
				return err
			}
			if err := n.AddEdge(c.Name, a.Name, capacity); err != nil {
				return err
			}
		}
	}

	for _, loc := range locations {
		capacity := int(float64(loc.Commercial.PaymentCount) * b.profile.SinkScale)
		if capacity < b.profile.SinkFloor {
			capacity = b.profile.SinkFloor
		}
		if err := n.AddEdge(loc.Name, Sink, capacity); err != nil {
			return err
		}
	}
	return nil
}

// isAdjacent checks the static neighbor table in both directions.
func (b *Builder) isAdjacent(a, c string) bool {
	for _, x := range b.adjacency[a] {
		if x == c {
			return true
		}
	}
	for _, x := range b.adjacency[c] {
		if x == a {
			return true
		}
	}
	return false
}
