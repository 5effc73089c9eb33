package model

import (
	"strings"

	"github.com/rotisserie/eris"
)

// BusinessCategory is the enumerated business type a recommendation
// request is scored for.
type BusinessCategory string

// Supported business categories.
const (
	Cafe             BusinessCategory = "cafe"
	Restaurant       BusinessCategory = "restaurant"
	Bar              BusinessCategory = "bar"
	ConvenienceStore BusinessCategory = "convenience_store"
	Academy          BusinessCategory = "academy"
	HairSalon        BusinessCategory = "hair_salon"
	Pharmacy         BusinessCategory = "pharmacy"
	Gym              BusinessCategory = "gym"
)

// CategoryProfile holds the per-category heuristics used for competitor
// counting, price estimation, and peak-hour selection.
type CategoryProfile struct {
	// Keywords match against merchant category labels (case-insensitive
	// substring match).
	Keywords []string
	// IdealCompetition is the competitor count at the peak of the
	// inverted-U competition score.
	IdealCompetition int
	// PersonsPerTransaction converts a per-transaction amount to a
	// per-person price point.
	PersonsPerTransaction float64
	// RevenueShare estimates the category's share of area-wide revenue
	// when no category breakdown exists.
	RevenueShare float64
	// MerchantShare estimates the category's share of area-wide
	// merchants when no category breakdown exists.
	MerchantShare float64
	// Price band and fallback, in won per person.
	MinPrice     int64
	MaxPrice     int64
	DefaultPrice int64
	// PeakHours are the hours-of-day used to select movement buckets.
	PeakHours []int
}

var categoryProfiles = map[BusinessCategory]CategoryProfile{
	Cafe: {
		Keywords:              []string{"cafe", "coffee", "beverage", "dessert"},
		IdealCompetition:      40,
		PersonsPerTransaction: 1.2,
		RevenueShare:          0.05,
		MerchantShare:         0.15,
		MinPrice:              3000,
		MaxPrice:              20000,
		DefaultPrice:          6000,
		PeakHours:             []int{7, 8, 9, 12, 13},
	},
	Restaurant: {
		Keywords:              []string{"korean", "chinese", "japanese", "western", "snack", "restaurant"},
		IdealCompetition:      50,
		PersonsPerTransaction: 2.5,
		RevenueShare:          0.25,
		MerchantShare:         0.25,
		MinPrice:              8000,
		MaxPrice:              50000,
		DefaultPrice:          12000,
		PeakHours:             []int{12, 13, 18, 19, 20},
	},
	Bar: {
		Keywords:              []string{"bar", "pub", "tavern"},
		IdealCompetition:      30,
		PersonsPerTransaction: 3.0,
		RevenueShare:          0.10,
		MerchantShare:         0.10,
		MinPrice:              5000,
		MaxPrice:              100000,
		DefaultPrice:          25000,
		PeakHours:             []int{18, 19, 20, 21, 22},
	},
	ConvenienceStore: {
		Keywords:              []string{"convenience"},
		IdealCompetition:      20,
		PersonsPerTransaction: 1.1,
		RevenueShare:          0.03,
		MerchantShare:         0.05,
		MinPrice:              2000,
		MaxPrice:              15000,
		DefaultPrice:          4000,
		PeakHours:             []int{7, 8, 19, 20, 21},
	},
	Academy: {
		Keywords:              []string{"academy", "education", "tutoring"},
		IdealCompetition:      15,
		PersonsPerTransaction: 1.0,
		RevenueShare:          0.05,
		MerchantShare:         0.05,
		MinPrice:              5000,
		MaxPrice:              100000,
		DefaultPrice:          150000,
		PeakHours:             []int{15, 16, 17, 18, 19},
	},
	HairSalon: {
		Keywords:              []string{"hair", "beauty", "nail", "salon"},
		IdealCompetition:      25,
		PersonsPerTransaction: 1.0,
		RevenueShare:          0.02,
		MerchantShare:         0.08,
		MinPrice:              5000,
		MaxPrice:              100000,
		DefaultPrice:          30000,
		PeakHours:             []int{10, 11, 14, 15, 16},
	},
	Pharmacy: {
		Keywords:              []string{"pharmacy", "drugstore"},
		IdealCompetition:      10,
		PersonsPerTransaction: 1.2,
		RevenueShare:          0.02,
		MerchantShare:         0.02,
		MinPrice:              5000,
		MaxPrice:              100000,
		DefaultPrice:          8000,
		PeakHours:             []int{9, 10, 11, 18, 19},
	},
	Gym: {
		Keywords:              []string{"sports", "gym", "fitness", "yoga"},
		IdealCompetition:      8,
		PersonsPerTransaction: 1.0,
		RevenueShare:          0.01,
		MerchantShare:         0.02,
		MinPrice:              5000,
		MaxPrice:              100000,
		DefaultPrice:          50000,
		PeakHours:             []int{6, 7, 18, 19, 20},
	},
}

// genericProfile is used for categories outside the lookup table.
var genericProfile = CategoryProfile{
	IdealCompetition:      30,
	PersonsPerTransaction: 1.5,
	RevenueShare:          0.05,
	MerchantShare:         0.10,
	MinPrice:              5000,
	MaxPrice:              100000,
	DefaultPrice:          10000,
	PeakHours:             []int{8, 12, 18},
}

// Profile returns the category's heuristic profile. Unknown categories
// get a generic profile rather than failing.
func (b BusinessCategory) Profile() CategoryProfile {
	if p, ok := categoryProfiles[b]; ok {
		return p
	}
	return genericProfile
}

// MatchesCategory reports whether a merchant category label belongs to
// this business category.
func (b BusinessCategory) MatchesCategory(label string) bool {
	label = strings.ToLower(label)
	for _, kw := range b.Profile().Keywords {
		if strings.Contains(label, kw) {
			return true
		}
	}
	return false
}

// Categories returns all supported business categories in stable order.
func Categories() []BusinessCategory {
	return []BusinessCategory{
		Cafe, Restaurant, Bar, ConvenienceStore,
		Academy, HairSalon, Pharmacy, Gym,
	}
}

// ParseBusinessCategory parses a category name as used on the CLI.
func ParseBusinessCategory(s string) (BusinessCategory, error) {
	b := BusinessCategory(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := categoryProfiles[b]; !ok {
		return "", eris.Errorf("model: unknown business category %q", s)
	}
	return b, nil
}

// ActivityLevel is the categorical commercial activity label attached to
// a location by the upstream data source.
type ActivityLevel string

// Activity levels, best to worst.
const (
	ActivityVeryHigh ActivityLevel = "very_high"
	ActivityHigh     ActivityLevel = "high"
	ActivityNormal   ActivityLevel = "normal"
	ActivityLow      ActivityLevel = "low"
	ActivityVeryLow  ActivityLevel = "very_low"
)

var activityScores = map[ActivityLevel]float64{
	ActivityVeryHigh: 100,
	ActivityHigh:     80,
	ActivityNormal:   60,
	ActivityLow:      40,
	ActivityVeryLow:  20,
}

// Score maps the level to a 0-100 score; unknown labels score neutral 60.
func (a ActivityLevel) Score() float64 {
	if s, ok := activityScores[a]; ok {
		return s
	}
	return 60
}
