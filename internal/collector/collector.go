// Package collector assembles the per-location input snapshot the
// recommendation pipeline runs over.
package collector

import (
	"context"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/dakyeoman/25-1-computing/internal/config"
	"github.com/dakyeoman/25-1-computing/internal/model"
)

// DataSource supplies one location's dataset by name.
type DataSource interface {
	Fetch(ctx context.Context, name string) (model.LocationDataset, error)
	// Movement returns the pairwise movement table, nil when the
	// source has none.
	Movement(ctx context.Context) (*model.MovementData, error)
	// Adjacency returns the static geographic-neighbor table, nil
	// when the source has none.
	Adjacency() map[string][]string
}

// Collector fans location fetches out over a DataSource with bounded
// concurrency and a shared rate limit.
type Collector struct {
	source  DataSource
	limiter *rate.Limiter
	cfg     config.CollectorConfig
}

// New creates a Collector.
func New(source DataSource, cfg config.CollectorConfig) *Collector {
	if cfg.Concurrency <= 0 {
		cfg.Concurrency = 5
	}
	if cfg.RatePerSec <= 0 {
		cfg.RatePerSec = 10
	}
	return &Collector{
		source:  source,
		limiter: rate.NewLimiter(rate.Limit(cfg.RatePerSec), cfg.Concurrency),
		cfg:     cfg,
	}
}

// Collect fetches every named location. Locations that fail to fetch
// are logged and dropped; the returned slice preserves the input order
// of the locations that succeeded. The pipeline starts only after the
// full join, so a partial snapshot is never observed downstream.
func (c *Collector) Collect(ctx context.Context, names []string) ([]model.LocationDataset, error) {
	results := make([]*model.LocationDataset, len(names))
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.cfg.Concurrency)

	for i, name := range names {
		i, name := i, name
		g.Go(func() error {
			if err := c.limiter.Wait(gctx); err != nil {
				return err
			}
			loc, err := c.source.Fetch(gctx, name)
			if err != nil {
				zap.L().Warn("collector: location fetch failed, skipping",
					zap.String("location", name),
					zap.Error(err))
				return nil // don't fail the group
			}
			mu.Lock()
			results[i] = &loc
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make([]model.LocationDataset, 0, len(names))
	for _, r := range results {
		if r != nil {
			out = append(out, *r)
		}
	}
	zap.L().Info("collector: snapshot assembled",
		zap.Int("requested", len(names)),
		zap.Int("collected", len(out)))
	return out, nil
}

// Movement exposes the source's movement table.
func (c *Collector) Movement(ctx context.Context) (*model.MovementData, error) {
	return c.source.Movement(ctx)
}

// Adjacency exposes the source's neighbor table.
func (c *Collector) Adjacency() map[string][]string {
	return c.source.Adjacency()
}
