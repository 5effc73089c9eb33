package config

import "github.com/rotisserie/eris"

// Profile names.
const (
	ProfileEstimated = "estimated"
	ProfileLegacy    = "legacy"
)

// HeuristicProfile consolidates the capacity heuristics used to build
// the flow network. Each named profile is a versioned set of constants;
// the estimated constants apply when no movement data exists, and the
// divisor constants convert observed movement counts into per-bucket
// capacities when it does.
type HeuristicProfile struct {
	Name string

	// SOURCE -> location: max(SourceFloor, population * non_resident * SourceScale).
	SourceFloor int
	SourceScale float64

	// location <-> location: max(LinkFloor, min(pop_i, pop_j) * LinkScale),
	// multiplied by AdjacentBoost for registered neighbors and BaseBoost
	// otherwise.
	LinkFloor     int
	LinkScale     float64
	AdjacentBoost int
	BaseBoost     int

	// location -> SINK: max(SinkFloor, payment_count * SinkScale).
	SinkFloor int
	SinkScale float64

	// HourlyDivisor converts daily movement counts to per-bucket
	// capacities; MonthlyToDaily converts monthly payment counts to
	// daily volumes.
	HourlyDivisor  int
	MonthlyToDaily int
}

// EstimatedProfile is the current estimation profile.
func EstimatedProfile() HeuristicProfile {
	return HeuristicProfile{
		Name:           ProfileEstimated,
		SourceFloor:    5000,
		SourceScale:    0.5,
		LinkFloor:      500,
		LinkScale:      0.1,
		AdjacentBoost:  5,
		BaseBoost:      2,
		SinkFloor:      2000,
		SinkScale:      0.4,
		HourlyDivisor:  10,
		MonthlyToDaily: 30,
	}
}

// LegacyProfile reproduces the earlier, more conservative estimation
// constants. Kept as a selectable profile for result comparison.
func LegacyProfile() HeuristicProfile {
	return HeuristicProfile{
		Name:           ProfileLegacy,
		SourceFloor:    1000,
		SourceScale:    0.3,
		LinkFloor:      100,
		LinkScale:      0.05,
		AdjacentBoost:  3,
		BaseBoost:      1,
		SinkFloor:      2000,
		SinkScale:      0.2,
		HourlyDivisor:  10,
		MonthlyToDaily: 30,
	}
}

// ProfileByName resolves a named heuristic profile.
func ProfileByName(name string) (HeuristicProfile, error) {
	switch name {
	case ProfileEstimated, "":
		return EstimatedProfile(), nil
	case ProfileLegacy:
		return LegacyProfile(), nil
	}
	return HeuristicProfile{}, eris.Errorf("config: unknown heuristic profile %q", name)
}
