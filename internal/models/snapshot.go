package models

// Breakdown is the demographic reduction over one facility's occupants.
type Breakdown struct {
	Total       int            `json:"total"`
	ByAgeGroup  map[string]int `json:"by_age_group"`
	ByGender    map[string]int `json:"by_gender"`
	ByArchetype map[string]int `json:"by_archetype"`
}

// OccupancySnapshot is the full persona-to-facility resolution for one
// simulated instant. It is rebuilt wholesale at every tick; callers must
// treat it as immutable and never patch a previous snapshot.
type OccupancySnapshot struct {
	Tick int       `json:"tick"`
	Time TimeOfDay `json:"time"`
	Day  DayOfWeek `json:"day"`

	// PerFacility maps facility name to occupant persona IDs. The
	// NoVisit key collects everyone not at a facility.
	PerFacility map[string][]string `json:"per_facility"`

	// Reasons records why each absent persona is in the NoVisit bucket.
	Reasons map[string]NoVisitReason `json:"reasons,omitempty"`

	Breakdowns map[string]Breakdown `json:"breakdowns"`
}

// Occupants returns the persona IDs at a facility, nil when empty.
func (s *OccupancySnapshot) Occupants(facility string) []string {
	if s.PerFacility == nil {
		return nil
	}
	return s.PerFacility[facility]
}
