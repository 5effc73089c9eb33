package scoring

import "github.com/dakyeoman/25-1-computing/internal/model"

// TargetMatch rates how well a location's demographics match the
// requested customer segments, averaged over the requested segments on
// a 0-100 scale. No requested segments means no discriminating
// information, scored neutral 50.
func TargetMatch(loc model.LocationDataset, segments []model.Segment) float64 {
	if len(segments) == 0 {
		return 50
	}

	pop := loc.Population
	total := 0.0
	for _, seg := range segments {
		switch seg {
		case model.SegmentOfficeWorkers:
			working := pop.AgeShareOf(model.Age20s)*0.3 +
				pop.AgeShareOf(model.Age30s)*0.3 +
				pop.AgeShareOf(model.Age40s)*0.2 +
				pop.AgeShareOf(model.Age50s)*0.2
			total += working*0.8 + pop.NonResidentShare()*0.2
		case model.SegmentStudents:
			total += pop.AgeShareOf(model.Age10s)*0.2 + pop.AgeShareOf(model.Age20s)*0.8
		case model.SegmentResidents:
			total += pop.ResidentRatio
		case model.SegmentTourists:
			s := pop.NonResidentShare()
			if loc.TouristZone {
				s += 30
				if s > 100 {
					s = 100
				}
			}
			total += s
		}
	}
	return total / float64(len(segments))
}

// GenderMatch rates the targeted gender's population share against the
// requested minimum. No gender target earns a flat 80; a location that
// clears the minimum with margin earns up to 100; one below the minimum
// still scores 50, since the hard pre-filter already admitted it.
func GenderMatch(pop model.PopulationMetrics, cons model.Constraints) float64 {
	if !cons.GenderTargetSet() {
		return 80
	}
	ratio := cons.TargetGenderRatio(pop)
	switch {
	case ratio >= cons.MinGenderRatio+10:
		return 100
	case ratio >= cons.MinGenderRatio:
		return 80 + (ratio-cons.MinGenderRatio)*2
	default:
		return 50
	}
}

// AreaTypeScore rates a location against the requested area-type
// preferences using the dataset's zone flags, with demographic
// fallbacks when a flag is absent. No preferences earns a flat 70.
func AreaTypeScore(loc model.LocationDataset, cons model.Constraints) float64 {
	pop := loc.Population
	matched := 0.0
	prefs := 0

	if cons.PreferTourist {
		prefs++
		switch {
		case loc.TouristZone:
			matched++
		case pop.NonResidentRatio > 80:
			matched += 0.5
		}
	}
	if cons.PreferOffice {
		prefs++
		working := pop.AgeShareOf(model.Age20s) + pop.AgeShareOf(model.Age30s) + pop.AgeShareOf(model.Age40s)
		switch {
		case loc.OfficeZone:
			matched++
		case pop.NonResidentRatio > 70 && working > 60:
			matched += 0.7
		}
	}
	if cons.PreferResidential {
		prefs++
		switch {
		case pop.ResidentRatio > 70:
			matched++
		case pop.ResidentRatio > 60:
			matched += 0.5
		}
	}
	if cons.PreferUniversity {
		prefs++
		switch {
		case loc.UniversityZone:
			matched++
		case pop.AgeShareOf(model.Age20s) > 35:
			matched += 0.7
		}
	}

	if prefs == 0 {
		return 70
	}
	score := 50 + matched/float64(prefs)*50
	if score > 100 {
		return 100
	}
	return score
}
