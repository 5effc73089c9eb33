package main

import (
	"encoding/json"
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/dakyeoman/25-1-computing/internal/collector"
	"github.com/dakyeoman/25-1-computing/internal/config"
	"github.com/dakyeoman/25-1-computing/internal/model"
	"github.com/dakyeoman/25-1-computing/internal/pipeline"
)

var (
	recSnapshot    string
	recBusiness    string
	recSegments    []string
	recBudgetMin   int64
	recBudgetMax   int64
	recMaxComp     int
	recMinMatch    float64
	recGender      string
	recMinGender   float64
	recGenderMix   string
	recCompetition string
	recSubway      string
	recPeak        string
	recWeekday     string
	recPrice       string
	recMinStores   int
	recTopN        int
)

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Rank candidate locations for a business",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		business, err := model.ParseBusinessCategory(recBusiness)
		if err != nil {
			return err
		}
		segments, err := parseSegments(recSegments)
		if err != nil {
			return err
		}

		cons := model.Constraints{
			Business:       business,
			TargetSegments: segments,
			BudgetMin:      recBudgetMin,
			BudgetMax:      recBudgetMax,
			MaxCompetitors: recMaxComp,
			MinTargetMatch: recMinMatch,
			TargetGender:   model.GenderTarget(recGender),
			MinGenderRatio: recMinGender,
			GenderMix:      model.GenderMix(recGenderMix),
			Competition:    model.CompetitionLevel(recCompetition),
			Subway:         model.SubwayPreference(recSubway),
			PeakTime:       model.PeakTime(recPeak),
			Weekday:        model.WeekdayPreference(recWeekday),
			PriceRange:     model.PriceRange(recPrice),
			MinStores:      recMinStores,
			TopN:           recTopN,
		}

		snap, err := collector.LoadSnapshot(recSnapshot)
		if err != nil {
			return err
		}

		coll := collector.New(snap, cfg.Collector)
		locations, err := coll.Collect(ctx, snap.Names())
		if err != nil {
			return eris.Wrap(err, "collect locations")
		}
		movement, err := coll.Movement(ctx)
		if err != nil {
			return eris.Wrap(err, "load movement data")
		}

		profile, err := config.ProfileByName(cfg.Profile)
		if err != nil {
			return err
		}

		engine := pipeline.New(cfg.Scoring, profile, coll.Adjacency())
		rec, err := engine.Recommend(locations, movement, cons)
		if err != nil {
			return eris.Wrap(err, "recommend")
		}

		zap.L().Info("recommendation run finished",
			zap.Stringer("run_id", rec.RunID),
			zap.Int("results", len(rec.Results)),
			zap.Int("eligible", rec.EligibleCount),
		)

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(rec)
	},
}

func parseSegments(names []string) ([]model.Segment, error) {
	out := make([]model.Segment, 0, len(names))
	for _, n := range names {
		switch s := model.Segment(n); s {
		case model.SegmentOfficeWorkers, model.SegmentStudents, model.SegmentResidents, model.SegmentTourists:
			out = append(out, s)
		default:
			return nil, eris.Errorf("unknown target segment %q", n)
		}
	}
	return out, nil
}

func init() {
	recommendCmd.Flags().StringVar(&recSnapshot, "snapshot", "", "path to the location snapshot YAML (required)")
	recommendCmd.Flags().StringVar(&recBusiness, "business", "", "business category, e.g. cafe, restaurant (required)")
	recommendCmd.Flags().StringSliceVar(&recSegments, "targets", nil, "target customer segments (office_workers, students, residents, tourists)")
	recommendCmd.Flags().Int64Var(&recBudgetMin, "budget-min", 0, "minimum per-person price point, won")
	recommendCmd.Flags().Int64Var(&recBudgetMax, "budget-max", 0, "maximum per-person price point, won")
	recommendCmd.Flags().IntVar(&recMaxComp, "max-competitors", 0, "competitor count ceiling")
	recommendCmd.Flags().Float64Var(&recMinMatch, "min-target-match", 0, "minimum target-match score, 0-100")
	recommendCmd.Flags().StringVar(&recGender, "gender", "any", "target population gender (any, male, female)")
	recommendCmd.Flags().Float64Var(&recMinGender, "min-gender-ratio", 0, "minimum targeted-gender population share, percent")
	recommendCmd.Flags().StringVar(&recGenderMix, "gender-mix", "any", "sales gender mix (any, female_centered, male_centered, balanced)")
	recommendCmd.Flags().StringVar(&recCompetition, "competition", "any", "competition bucket (any, blue_ocean, moderate, competitive)")
	recommendCmd.Flags().StringVar(&recSubway, "subway", "any", "subway access (any, preferred, required)")
	recommendCmd.Flags().StringVar(&recPeak, "peak", "balanced", "main business time (balanced, morning, lunch, afternoon, evening)")
	recommendCmd.Flags().StringVar(&recWeekday, "weekday", "balanced", "revenue tilt (balanced, weekday, weekend)")
	recommendCmd.Flags().StringVar(&recPrice, "price-range", "any", "price bucket (any, low, mid_low, mid, mid_high, high)")
	recommendCmd.Flags().IntVar(&recMinStores, "min-stores", 0, "minimum store count")
	recommendCmd.Flags().IntVar(&recTopN, "top", pipeline.DefaultTopN, "number of results")
	_ = recommendCmd.MarkFlagRequired("snapshot")
	_ = recommendCmd.MarkFlagRequired("business")
	rootCmd.AddCommand(recommendCmd)
}
