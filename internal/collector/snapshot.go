package collector

import (
	"context"
	"os"

	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"

	"github.com/dakyeoman/25-1-computing/internal/model"
)

// Snapshot is a YAML-file DataSource: a fully materialized input
// snapshot of location datasets plus the optional movement and
// adjacency tables.
type Snapshot struct {
	Locations []model.LocationDataset   `yaml:"locations"`
	Movements map[string]map[string]int `yaml:"movements,omitempty"`
	Inflow    map[string]int            `yaml:"daily_inflow,omitempty"`
	Customers map[string]int            `yaml:"expected_customers,omitempty"`
	Neighbors map[string][]string       `yaml:"adjacency,omitempty"`

	byName map[string]model.LocationDataset
}

// LoadSnapshot reads a snapshot file.
func LoadSnapshot(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, eris.Wrapf(err, "collector: read snapshot %s", path)
	}
	var s Snapshot
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, eris.Wrapf(err, "collector: parse snapshot %s", path)
	}
	s.index()
	return &s, nil
}

func (s *Snapshot) index() {
	s.byName = make(map[string]model.LocationDataset, len(s.Locations))
	for _, loc := range s.Locations {
		s.byName[loc.Name] = loc
	}
}

// Names returns every location name in snapshot order.
func (s *Snapshot) Names() []string {
	out := make([]string, len(s.Locations))
	for i, loc := range s.Locations {
		out[i] = loc.Name
	}
	return out
}

// Fetch implements DataSource.
func (s *Snapshot) Fetch(_ context.Context, name string) (model.LocationDataset, error) {
	loc, ok := s.byName[name]
	if !ok {
		return model.LocationDataset{}, eris.Errorf("collector: location %q not in snapshot", name)
	}
	return loc, nil
}

// Movement implements DataSource. It returns nil when the snapshot
// carries no movement table, which selects the estimated capacity path.
func (s *Snapshot) Movement(context.Context) (*model.MovementData, error) {
	if len(s.Movements) == 0 && len(s.Inflow) == 0 {
		return nil, nil
	}
	return &model.MovementData{
		DailyCounts:       s.Movements,
		DailyInflow:       s.Inflow,
		ExpectedCustomers: s.Customers,
	}, nil
}

// Adjacency implements DataSource.
func (s *Snapshot) Adjacency() map[string][]string {
	return s.Neighbors
}
