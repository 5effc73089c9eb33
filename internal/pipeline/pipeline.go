// Package pipeline orchestrates the full recommendation run: hard
// constraint pre-filtering, flow analysis, objective scoring, Pareto
// reduction, preference filtering, and final ranking.
package pipeline

import (
	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/dakyeoman/25-1-computing/internal/config"
	"github.com/dakyeoman/25-1-computing/internal/filter"
	"github.com/dakyeoman/25-1-computing/internal/flow"
	"github.com/dakyeoman/25-1-computing/internal/model"
	"github.com/dakyeoman/25-1-computing/internal/rank"
	"github.com/dakyeoman/25-1-computing/internal/scoring"
)

// DefaultTopN is the result count when the request does not specify one.
const DefaultTopN = 5

// Recommendation is the full outcome of one engine run.
type Recommendation struct {
	RunID   uuid.UUID                   `json:"run_id"`
	Results []rank.RecommendationResult `json:"results"`

	MaxFlow int `json:"max_flow"`

	// UsedFullCandidateSetFallback is set when the Pareto front was
	// smaller than the configured minimum and the full candidate set
	// was ranked instead.
	UsedFullCandidateSetFallback bool `json:"used_full_candidate_set_fallback"`
	// SkippedFilters lists preference filters bypassed because they
	// would have eliminated every candidate.
	SkippedFilters []string `json:"skipped_filters,omitempty"`
	// Relaxed is set when the filtered set fell short of the requested
	// result count and ranking widened back to the eligible set.
	Relaxed bool `json:"relaxed"`

	TotalLocations int `json:"total_locations"`
	EligibleCount  int `json:"eligible_count"`
	ParetoCount    int `json:"pareto_count"`
	FilteredCount  int `json:"filtered_count"`
}

// Engine wires the pipeline stages together. It is stateless across
// runs; one Engine safely serves concurrent independent requests.
type Engine struct {
	cfg     config.ScoringConfig
	builder *flow.Builder
	calc    *scoring.Calculator
	chain   *filter.Chain
	ranker  *rank.Ranker
}

// New creates an Engine. adjacency is the static geographic-neighbor
// table used by the estimated capacity profile; it may be nil.
func New(cfg config.ScoringConfig, profile config.HeuristicProfile, adjacency map[string][]string) *Engine {
	return &Engine{
		cfg:     cfg,
		builder: flow.NewBuilder(profile, adjacency),
		calc:    scoring.NewCalculator(cfg),
		chain:   filter.NewChain(cfg.Filters),
		ranker:  rank.NewRanker(cfg.Weights),
	}
}

// Recommend runs the full pipeline over an immutable snapshot of
// location data. An empty location list, or hard constraints that no
// location satisfies, yields an empty result rather than an error.
func (e *Engine) Recommend(locations []model.LocationDataset, movement *model.MovementData, cons model.Constraints) (*Recommendation, error) {
	rec := &Recommendation{
		RunID:          uuid.New(),
		TotalLocations: len(locations),
	}
	topN := cons.TopN
	if topN <= 0 {
		topN = DefaultTopN
	}

	eligible := e.preFilter(locations, cons)
	rec.EligibleCount = len(eligible)
	if len(eligible) == 0 {
		zap.L().Info("pipeline: no locations satisfy the hard constraints",
			zap.Stringer("run_id", rec.RunID),
			zap.Int("total", len(locations)),
		)
		return rec, nil
	}

	network, err := e.builder.Build(eligible, movement)
	if err != nil {
		return nil, eris.Wrap(err, "pipeline: build flow network")
	}
	analysis := flow.Analyze(flow.Solve(network), eligible)
	rec.MaxFlow = analysis.MaxFlow
	withFlow := analysis.MaxFlow > 0

	scored := make([]scoring.LocationScore, 0, len(eligible))
	for _, loc := range eligible {
		var lf *flow.LocationFlow
		if withFlow {
			if v, ok := analysis.Locations[loc.Name]; ok {
				lf = &v
			}
		}
		scored = append(scored, e.calc.Score(loc, cons, lf))
	}
	scoring.Normalize(scored)

	candidates := scoring.ParetoFront(scored, withFlow)
	rec.ParetoCount = len(candidates)
	if len(candidates) < e.cfg.MinParetoSize {
		candidates = scored
		rec.UsedFullCandidateSetFallback = true
		zap.L().Debug("pipeline: pareto front below minimum, ranking full candidate set",
			zap.Stringer("run_id", rec.RunID),
			zap.Int("front", rec.ParetoCount),
			zap.Int("minimum", e.cfg.MinParetoSize),
		)
	}

	filtered := e.chain.Apply(candidates, cons)
	rec.SkippedFilters = filtered.Skipped
	rec.FilteredCount = len(filtered.Candidates)

	final := filtered.Candidates
	if len(final) < topN {
		relaxed := e.relax(scored)
		if len(relaxed) > len(final) {
			zap.L().Info("pipeline: relaxing filters to fill requested result count",
				zap.Stringer("run_id", rec.RunID),
				zap.Int("filtered", len(final)),
				zap.Int("relaxed", len(relaxed)),
			)
			final = relaxed
			rec.Relaxed = true
		}
	}

	rec.Results = e.ranker.Rank(final, cons, topN)
	zap.L().Info("pipeline: recommendation complete",
		zap.Stringer("run_id", rec.RunID),
		zap.Int("results", len(rec.Results)),
		zap.Int("max_flow", rec.MaxFlow),
		zap.Bool("pareto_fallback", rec.UsedFullCandidateSetFallback),
		zap.Strings("skipped_filters", rec.SkippedFilters),
	)
	return rec, nil
}

// preFilter applies the hard constraints: budget band on the estimated
// price point, competitor ceiling, minimum target match, and minimum
// gender ratio. An empty result is a normal outcome.
func (e *Engine) preFilter(locations []model.LocationDataset, cons model.Constraints) []model.LocationDataset {
	eligible := make([]model.LocationDataset, 0, len(locations))
	for _, loc := range locations {
		if cons.BudgetMin > 0 || cons.BudgetMax > 0 {
			price := scoring.PricePerPerson(loc, cons.Business)
			if price < cons.BudgetMin || (cons.BudgetMax > 0 && price > cons.BudgetMax) {
				zap.L().Debug("pipeline: price point outside budget",
					zap.String("location", loc.Name),
					zap.Int64("price", price),
				)
				continue
			}
		}
		if cons.MaxCompetitors > 0 && scoring.CompetitorCount(loc, cons.Business) > cons.MaxCompetitors {
			continue
		}
		if cons.MinTargetMatch > 0 && scoring.TargetMatch(loc, cons.TargetSegments) < cons.MinTargetMatch {
			continue
		}
		if cons.GenderTargetSet() && cons.MinGenderRatio > 0 &&
			cons.TargetGenderRatio(loc.Population) < cons.MinGenderRatio {
			continue
		}
		eligible = append(eligible, loc)
	}
	return eligible
}

// relax widens the candidate set back to every scored location with at
// least the configured store count, preserving scoring order.
func (e *Engine) relax(scored []scoring.LocationScore) []scoring.LocationScore {
	out := make([]scoring.LocationScore, 0, len(scored))
	for _, s := range scored {
		if s.Location.StoreCount() >= e.cfg.MinRelaxStores {
			out = append(out, s)
		}
	}
	if len(out) == 0 {
		return scored
	}
	return out
}
