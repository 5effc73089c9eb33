// Package model defines the immutable value objects consumed and produced
// by the location recommendation engine.
package model

// AgeBucket identifies a ten-year age band in a population breakdown.
type AgeBucket string

// Age buckets used by the floating-population data.
const (
	Age10s AgeBucket = "10s"
	Age20s AgeBucket = "20s"
	Age30s AgeBucket = "30s"
	Age40s AgeBucket = "40s"
	Age50s AgeBucket = "50s"
	Age60s AgeBucket = "60s"
)

// TimeSlot identifies a revenue time band within a day.
type TimeSlot string

// Time slots used by the sales breakdown.
const (
	SlotMorning   TimeSlot = "morning"   // 06-11
	SlotLunch     TimeSlot = "lunch"     // 11-14
	SlotAfternoon TimeSlot = "afternoon" // 14-17
	SlotEvening   TimeSlot = "evening"   // 17-21
	SlotNight     TimeSlot = "night"     // 21-24
)

// PopulationMetrics holds floating-population facts for a location.
// Ratio fields are percentages in [0, 100].
type PopulationMetrics struct {
	Min              int                   `yaml:"min" json:"min"`
	Max              int                   `yaml:"max" json:"max"`
	AgeShare         map[AgeBucket]float64 `yaml:"age_share" json:"age_share"`
	FemaleRatio      float64               `yaml:"female_ratio" json:"female_ratio"`
	ResidentRatio    float64               `yaml:"resident_ratio" json:"resident_ratio"`
	NonResidentRatio float64               `yaml:"non_resident_ratio" json:"non_resident_ratio"`
}

// AgeShareOf returns the population share of a bucket, 0 when unknown.
func (p PopulationMetrics) AgeShareOf(b AgeBucket) float64 {
	return p.AgeShare[b]
}

// NonResidentShare returns the non-resident percentage, 50 when unknown.
func (p PopulationMetrics) NonResidentShare() float64 {
	if p.NonResidentRatio <= 0 {
		return 50
	}
	return p.NonResidentRatio
}

// CategorySales holds per-merchant-category commercial activity.
type CategorySales struct {
	LargeCategory string `yaml:"large_category" json:"large_category"`
	MidCategory   string `yaml:"mid_category" json:"mid_category"`
	MerchantCount int    `yaml:"merchant_count" json:"merchant_count"`
	PaymentCount  int    `yaml:"payment_count" json:"payment_count"`
	PaymentMin    int64  `yaml:"payment_min" json:"payment_min"`
	PaymentMax    int64  `yaml:"payment_max" json:"payment_max"`
}

// CommercialMetrics holds area-level commercial activity for a location.
// Payment counts are monthly totals.
type CommercialMetrics struct {
	PaymentCount  int             `yaml:"payment_count" json:"payment_count"`
	PaymentMin    int64           `yaml:"payment_min" json:"payment_min"`
	PaymentMax    int64           `yaml:"payment_max" json:"payment_max"`
	ActivityLevel ActivityLevel   `yaml:"activity_level" json:"activity_level"`
	Categories    []CategorySales `yaml:"categories" json:"categories"`
}

// SalesMetrics holds optional monthly sales facts for a location.
// Ratio accessors return revenue shares in [0, 1].
type SalesMetrics struct {
	Revenue        float64              `yaml:"revenue" json:"revenue"`
	Count          float64              `yaml:"count" json:"count"`
	AvgPrice       float64              `yaml:"avg_price" json:"avg_price"`
	FemaleRevenue  float64              `yaml:"female_revenue" json:"female_revenue"`
	MaleRevenue    float64              `yaml:"male_revenue" json:"male_revenue"`
	WeekdayRevenue float64              `yaml:"weekday_revenue" json:"weekday_revenue"`
	WeekendRevenue float64              `yaml:"weekend_revenue" json:"weekend_revenue"`
	TimeRevenue    map[TimeSlot]float64 `yaml:"time_revenue" json:"time_revenue"`
}

// FemaleRatio returns the female share of gendered revenue, 0.5 when unknown.
func (s SalesMetrics) FemaleRatio() float64 {
	total := s.FemaleRevenue + s.MaleRevenue
	if total <= 0 {
		return 0.5
	}
	return s.FemaleRevenue / total
}

// WeekdayRatio returns the weekday share of revenue, 0.7 when unknown.
func (s SalesMetrics) WeekdayRatio() float64 {
	total := s.WeekdayRevenue + s.WeekendRevenue
	if total <= 0 {
		return 0.7
	}
	return s.WeekdayRevenue / total
}

// TimeShare returns the revenue share of a time slot, 0 when revenue is zero.
func (s SalesMetrics) TimeShare(slot TimeSlot) float64 {
	if s.Revenue <= 0 {
		return 0
	}
	return s.TimeRevenue[slot] / s.Revenue
}

// RentMetrics holds optional rent facts for a location.
type RentMetrics struct {
	AvgMonthlyRent int64 `yaml:"avg_monthly_rent" json:"avg_monthly_rent"`
}

// BusinessDynamics holds optional store-churn facts for a location.
// Rates are fractions in [0, 1].
type BusinessDynamics struct {
	StoreCount     int     `yaml:"store_count" json:"store_count"`
	OpenRate       float64 `yaml:"open_rate" json:"open_rate"`
	CloseRate      float64 `yaml:"close_rate" json:"close_rate"`
	FranchiseCount int     `yaml:"franchise_count" json:"franchise_count"`
}

// LocationDataset is the immutable per-location input record. The engine
// treats it as read-only; optional sections are nil when the upstream
// collector had no data for them.
type LocationDataset struct {
	Name       string            `yaml:"name" json:"name"`
	Region     string            `yaml:"region" json:"region"`
	Population PopulationMetrics `yaml:"population" json:"population"`
	Commercial CommercialMetrics `yaml:"commercial" json:"commercial"`
	Sales      *SalesMetrics     `yaml:"sales,omitempty" json:"sales,omitempty"`
	Rent       *RentMetrics      `yaml:"rent,omitempty" json:"rent,omitempty"`
	Dynamics   *BusinessDynamics `yaml:"dynamics,omitempty" json:"dynamics,omitempty"`

	SubwayAccess   bool `yaml:"subway_access" json:"subway_access"`
	TouristZone    bool `yaml:"tourist_zone" json:"tourist_zone"`
	OfficeZone     bool `yaml:"office_zone" json:"office_zone"`
	UniversityZone bool `yaml:"university_zone" json:"university_zone"`
}

// StoreCount returns the observed store count, 0 when dynamics are missing.
func (l LocationDataset) StoreCount() int {
	if l.Dynamics == nil {
		return 0
	}
	return l.Dynamics.StoreCount
}

// MovementData holds the optional pairwise movement table supplied by the
// upstream collector. All counts are daily person-trips.
type MovementData struct {
	// DailyCounts maps origin -> destination -> daily trip count.
	DailyCounts map[string]map[string]int `yaml:"daily_counts" json:"daily_counts"`
	// DailyInflow is the total observed daily inflow per location,
	// including trips from other candidate locations.
	DailyInflow map[string]int `yaml:"daily_inflow" json:"daily_inflow"`
	// ExpectedCustomers is the expected daily converting customers per
	// location, when the commercial data supports estimating it.
	ExpectedCustomers map[string]int `yaml:"expected_customers" json:"expected_customers"`
}
