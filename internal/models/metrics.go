package models

// FacilityMetrics is the per-facility slice of a usage baseline.
type FacilityMetrics struct {
	Peak         int `json:"peak"`
	Average      int `json:"average"`
	Satisfaction int `json:"satisfaction"`
}

// HourlyRow is one row of the hourly usage table: a time label plus the
// per-facility user counts at that hour.
type HourlyRow struct {
	Time  string         `json:"time"`
	Usage map[string]int `json:"usage"`
}

// OverallMetrics are the headline figures across all facilities.
type OverallMetrics struct {
	TotalDailyVisitors  int `json:"total_daily_visitors"`
	AverageWaitMinutes  int `json:"average_wait_minutes"`
	FacilityUtilization int `json:"facility_utilization"`
	UserSatisfaction    int `json:"user_satisfaction"`
}

// BaselineMetrics is the immutable usage snapshot the scenario projector
// works against.
type BaselineMetrics struct {
	DailyVisitors       map[string]FacilityMetrics `json:"daily_visitors"`
	HourlyUsage         []HourlyRow                `json:"hourly_usage"`
	PersonaDistribution map[string]int             `json:"persona_distribution"`
	Overall             OverallMetrics             `json:"overall_metrics"`
}

// Clone deep-copies the baseline so a projection never mutates its input.
func (b BaselineMetrics) Clone() BaselineMetrics {
	out := BaselineMetrics{
		DailyVisitors:       make(map[string]FacilityMetrics, len(b.DailyVisitors)),
		HourlyUsage:         make([]HourlyRow, len(b.HourlyUsage)),
		PersonaDistribution: make(map[string]int, len(b.PersonaDistribution)),
		Overall:             b.Overall,
	}
	for name, m := range b.DailyVisitors {
		out.DailyVisitors[name] = m
	}
	for i, row := range b.HourlyUsage {
		usage := make(map[string]int, len(row.Usage))
		for name, n := range row.Usage {
			usage[name] = n
		}
		out.HourlyUsage[i] = HourlyRow{Time: row.Time, Usage: usage}
	}
	for name, n := range b.PersonaDistribution {
		out.PersonaDistribution[name] = n
	}
	return out
}

// FacilityNames lists the facilities in the baseline, order unspecified.
func (b BaselineMetrics) FacilityNames() []string {
	names := make([]string, 0, len(b.DailyVisitors))
	for name := range b.DailyVisitors {
		names = append(names, name)
	}
	return names
}

// ScenarioKind selects which what-if transformation to apply.
type ScenarioKind string

const (
	ScenarioCapacity    ScenarioKind = "capacity"
	ScenarioClosure     ScenarioKind = "closure"
	ScenarioHours       ScenarioKind = "hours"
	ScenarioNewFacility ScenarioKind = "new_facility"
)

type CapacityParams struct {
	FacilityName  string `json:"facility_name"`
	ChangePercent int    `json:"change_percent"` // bounded to [-50, 100]
}

type ClosureParams struct {
	FacilityName string    `json:"facility_name"`
	Day          DayOfWeek `json:"day"`
	Duration     string    `json:"duration,omitempty"`
}

type HoursParams struct {
	FacilityName string    `json:"facility_name"`
	NewOpen      TimeOfDay `json:"new_open"`
	NewClose     TimeOfDay `json:"new_close"`
}

type NewFacilityParams struct {
	Name     string `json:"name"`
	Capacity int    `json:"capacity"`
	// Location is descriptive metadata only; it never enters the math.
	Location string `json:"location,omitempty"`
}

// ScenarioParams is a tagged union: Kind selects which member is read.
type ScenarioParams struct {
	Kind        ScenarioKind       `json:"kind"`
	Capacity    *CapacityParams    `json:"capacity,omitempty"`
	Closure     *ClosureParams     `json:"closure,omitempty"`
	Hours       *HoursParams       `json:"hours,omitempty"`
	NewFacility *NewFacilityParams `json:"new_facility,omitempty"`
}

// MetricDelta is one before/after comparison line in a scenario result.
type MetricDelta struct {
	Metric string `json:"metric"`
	Before int    `json:"before"`
	After  int    `json:"after"`
	Delta  int    `json:"delta"`
	Unit   string `json:"unit"`
}

type Summary string

const (
	SummaryPositive Summary = "positive"
	SummaryMixed    Summary = "mixed"
	SummaryNeutral  Summary = "neutral"
)

type Recommendation string

const (
	RecommendAdopt     Recommendation = "adopt"
	RecommendCaution   Recommendation = "caution"
	RecommendTestSmall Recommendation = "test-small"
)

// ScenarioResult is the projector's full output for one scenario run.
type ScenarioResult struct {
	Scenario       ScenarioKind    `json:"scenario"`
	Baseline       BaselineMetrics `json:"baseline"`
	Projected      BaselineMetrics `json:"projected"`
	Changes        []MetricDelta   `json:"changes"`
	Summary        Summary         `json:"summary"`
	Recommendation Recommendation  `json:"recommendation"`
}
