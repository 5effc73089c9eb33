package model

// Segment identifies a requested customer segment for target matching.
type Segment string

// Customer segments.
const (
	SegmentOfficeWorkers Segment = "office_workers"
	SegmentStudents      Segment = "students"
	SegmentResidents     Segment = "residents"
	SegmentTourists      Segment = "tourists"
)

// GenderTarget is the population gender the business targets.
type GenderTarget string

// Gender targets.
const (
	GenderAny    GenderTarget = "any"
	GenderMale   GenderTarget = "male"
	GenderFemale GenderTarget = "female"
)

// GenderMix is the requested sales gender mix bucket used by the filter
// chain (distinct from GenderTarget, which drives population scoring).
type GenderMix string

// Gender mix buckets.
const (
	MixAny            GenderMix = "any"
	MixFemaleCentered GenderMix = "female_centered"
	MixMaleCentered   GenderMix = "male_centered"
	MixBalanced       GenderMix = "balanced"
)

// CompetitionLevel is the requested competition bucket.
type CompetitionLevel string

// Competition buckets.
const (
	CompetitionAny       CompetitionLevel = "any"
	CompetitionBlueOcean CompetitionLevel = "blue_ocean"
	CompetitionModerate  CompetitionLevel = "moderate"
	CompetitionHigh      CompetitionLevel = "competitive"
)

// SubwayPreference is the requested subway-access requirement.
type SubwayPreference string

// Subway preferences.
const (
	SubwayAny       SubwayPreference = "any"
	SubwayPreferred SubwayPreference = "preferred"
	SubwayRequired  SubwayPreference = "required"
)

// PeakTime is the requested main business time band.
type PeakTime string

// Peak time preferences.
const (
	PeakBalanced  PeakTime = "balanced"
	PeakMorning   PeakTime = "morning"
	PeakLunch     PeakTime = "lunch"
	PeakAfternoon PeakTime = "afternoon"
	PeakEvening   PeakTime = "evening"
)

// Slot maps the preference to the sales time slot it inspects; the
// second return is false for PeakBalanced.
func (p PeakTime) Slot() (TimeSlot, bool) {
	switch p {
	case PeakMorning:
		return SlotMorning, true
	case PeakLunch:
		return SlotLunch, true
	case PeakAfternoon:
		return SlotAfternoon, true
	case PeakEvening:
		return SlotEvening, true
	}
	return "", false
}

// WeekdayPreference is the requested weekday/weekend revenue tilt.
type WeekdayPreference string

// Weekday preferences.
const (
	WeekdayBalanced WeekdayPreference = "balanced"
	WeekdayFocused  WeekdayPreference = "weekday"
	WeekendFocused  WeekdayPreference = "weekend"
)

// PriceRange is the requested average price-point bucket.
type PriceRange string

// Price range buckets.
const (
	PriceAny     PriceRange = "any"
	PriceLow     PriceRange = "low"
	PriceMidLow  PriceRange = "mid_low"
	PriceMid     PriceRange = "mid"
	PriceMidHigh PriceRange = "mid_high"
	PriceHigh    PriceRange = "high"
)

// Constraints is the immutable per-request preference object. Zero
// values mean "unset": zero numeric bounds and the *Any/*Balanced enum
// values disable the corresponding filter or adjustment.
type Constraints struct {
	Business       BusinessCategory
	TargetSegments []Segment

	// Target price-per-person band, won.
	BudgetMin int64
	BudgetMax int64
	// MaxCompetitors caps same-category competitor count (0 = unset).
	MaxCompetitors int
	// MinTargetMatch is the minimum target-match score, 0-100.
	MinTargetMatch float64

	// Population gender targeting.
	TargetGender   GenderTarget
	MinGenderRatio float64 // percent, applied when TargetGender != any

	// Area-type preferences.
	PreferTourist     bool
	PreferOffice      bool
	PreferResidential bool
	PreferUniversity  bool

	// Filter chain preferences.
	RevenueMin  float64 // monthly revenue band, won (0 = unset)
	RevenueMax  float64
	GenderMix   GenderMix
	Competition CompetitionLevel
	Subway      SubwayPreference
	PeakTime    PeakTime
	Weekday     WeekdayPreference
	PriceRange  PriceRange
	MinStores   int

	// TopN is the requested result count (default applied by the pipeline).
	TopN int
}

// GenderTargetSet reports whether population gender targeting is active.
func (c Constraints) GenderTargetSet() bool {
	return c.TargetGender == GenderMale || c.TargetGender == GenderFemale
}

// TargetGenderRatio returns the population share of the targeted gender
// as a percentage, 50 when the breakdown is unknown.
func (c Constraints) TargetGenderRatio(pop PopulationMetrics) float64 {
	female := pop.FemaleRatio
	if female <= 0 {
		female = 50
	}
	if c.TargetGender == GenderMale {
		return 100 - female
	}
	return female
}
