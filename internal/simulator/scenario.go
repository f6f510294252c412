package simulator

import (
	"math"
	"math/rand"
	"sort"

	"github.com/suhlee/facilitysim/internal/models"
)

// Projector computes what-if projections against a baseline snapshot.
// It is a pure function of its inputs apart from Rng, which only feeds
// the synthetic early-adoption noise of the new-facility scenario; seed
// it for reproducible projections.
type Projector struct {
	Tuning     models.ScenarioTuning
	Facilities map[string]*models.Facility
	Rng        *rand.Rand
}

func NewProjector(tuning models.ScenarioTuning, facilities map[string]*models.Facility, rng *rand.Rand) *Projector {
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	return &Projector{Tuning: tuning, Facilities: facilities, Rng: rng}
}

// Project applies exactly one scenario kind to the baseline and returns
// the projected snapshot, the metric deltas, and the derived summary and
// recommendation. A scenario naming a facility the baseline does not
// know yields a no-op result with an empty changes list; analysis
// tooling never throws at the user.
func (p *Projector) Project(baseline models.BaselineMetrics, params models.ScenarioParams) models.ScenarioResult {
	projected := baseline.Clone()
	var changes []models.MetricDelta

	switch params.Kind {
	case models.ScenarioCapacity:
		if params.Capacity != nil {
			changes = p.projectCapacity(baseline, &projected, *params.Capacity)
		}
	case models.ScenarioClosure:
		if params.Closure != nil {
			changes = p.projectClosure(baseline, &projected, *params.Closure)
		}
	case models.ScenarioHours:
		if params.Hours != nil {
			changes = p.projectHours(baseline, &projected, *params.Hours)
		}
	case models.ScenarioNewFacility:
		if params.NewFacility != nil {
			changes = p.projectNewFacility(baseline, &projected, *params.NewFacility)
		}
	}

	if changes == nil {
		changes = []models.MetricDelta{}
	}

	return models.ScenarioResult{
		Scenario:       params.Kind,
		Baseline:       baseline,
		Projected:      projected,
		Changes:        changes,
		Summary:        summarize(changes),
		Recommendation: recommend(changes),
	}
}

func (p *Projector) projectCapacity(baseline models.BaselineMetrics, projected *models.BaselineMetrics, params models.CapacityParams) []models.MetricDelta {
	metrics, ok := projected.DailyVisitors[params.FacilityName]
	if !ok {
		return nil
	}

	changePercent := params.ChangePercent
	if changePercent < -50 {
		changePercent = -50
	} else if changePercent > 100 {
		changePercent = 100
	}

	currentCapacity := 20
	if f, ok := p.Facilities[params.FacilityName]; ok && f.Capacity > 0 {
		currentCapacity = f.Capacity
	}
	newCapacity := roundMul(currentCapacity, 1+float64(changePercent)/100)

	// uptake grows slower than capacity; the damping denominator models
	// diminishing marginal demand
	uptake := 1 + float64(changePercent)/p.Tuning.PeakDamping
	oldPeak := metrics.Peak
	newPeak := minInt(newCapacity, roundMul(oldPeak, uptake))

	metrics.Peak = newPeak
	metrics.Average = roundMul(newPeak, p.Tuning.AverageRatio)

	oldSatisfaction := metrics.Satisfaction
	if changePercent > 0 {
		metrics.Satisfaction = minInt(p.Tuning.SatisfactionMax,
			metrics.Satisfaction+roundF(float64(changePercent)/p.Tuning.SatisfactionGainDivisor))
	} else {
		metrics.Satisfaction = maxInt(p.Tuning.SatisfactionMin,
			metrics.Satisfaction+roundF(float64(changePercent)/p.Tuning.SatisfactionLossDivisor))
	}
	projected.DailyVisitors[params.FacilityName] = metrics

	for _, row := range projected.HourlyUsage {
		if n, ok := row.Usage[params.FacilityName]; ok {
			row.Usage[params.FacilityName] = minInt(newCapacity, roundMul(n, uptake))
		}
	}

	return []models.MetricDelta{
		delta("Peak Usage", oldPeak, newPeak, "people"),
		delta("User Satisfaction", oldSatisfaction, metrics.Satisfaction, "%"),
		delta("Facility Capacity", currentCapacity, newCapacity, "people"),
	}
}

func (p *Projector) projectClosure(baseline models.BaselineMetrics, projected *models.BaselineMetrics, params models.ClosureParams) []models.MetricDelta {
	closed, ok := projected.DailyVisitors[params.FacilityName]
	if !ok {
		return nil
	}
	displaced := closed.Average

	projected.DailyVisitors[params.FacilityName] = models.FacilityMetrics{}

	var others []string
	for name := range projected.DailyVisitors {
		if name != params.FacilityName {
			others = append(others, name)
		}
	}
	sort.Strings(others)

	// even redistribution is a modeling approximation; nobody actually
	// splits themselves uniformly across the remaining facilities
	if len(others) > 0 {
		additional := roundF(float64(displaced) / float64(len(others)))
		for _, name := range others {
			m := projected.DailyVisitors[name]
			m.Average += additional
			m.Peak += roundMul(additional, p.Tuning.ClosurePeakFactor)
			m.Satisfaction = maxInt(p.Tuning.ClosureSatisfactionFloor, m.Satisfaction-p.Tuning.ClosureSatisfactionDrop)
			projected.DailyVisitors[name] = m
		}
	}

	for _, row := range projected.HourlyUsage {
		if _, ok := row.Usage[params.FacilityName]; ok {
			row.Usage[params.FacilityName] = 0
		}
		for _, name := range others {
			if n, ok := row.Usage[name]; ok {
				row.Usage[name] = roundMul(n, p.Tuning.OvercrowdFactor)
			}
		}
	}

	afterSatisfaction := meanSatisfaction(projected.DailyVisitors)
	return []models.MetricDelta{
		delta("Displaced Users", 0, displaced, "people"),
		delta("Overall Satisfaction", baseline.Overall.UserSatisfaction, afterSatisfaction, "%"),
	}
}

func (p *Projector) projectHours(baseline models.BaselineMetrics, projected *models.BaselineMetrics, params models.HoursParams) []models.MetricDelta {
	metrics, ok := projected.DailyVisitors[params.FacilityName]
	if !ok {
		return nil
	}

	early := p.Tuning.ExtensionEarlyUsers
	late := p.Tuning.ExtensionLateUsers

	oldAverage := metrics.Average
	oldSatisfaction := metrics.Satisfaction
	metrics.Average += early + late
	metrics.Peak += roundMul(early+late, p.Tuning.ExtensionPeakRatio)
	metrics.Satisfaction = minInt(p.Tuning.SatisfactionMax, metrics.Satisfaction+p.Tuning.ExtensionSatisfactionGain)
	projected.DailyVisitors[params.FacilityName] = metrics

	// synthetic boundary buckets holding only the extended facility's
	// flat early/late figures
	projected.HourlyUsage = append(
		[]models.HourlyRow{boundaryRow(params.NewOpen.String(), params.FacilityName, early, projected.DailyVisitors)},
		projected.HourlyUsage...,
	)
	projected.HourlyUsage = append(projected.HourlyUsage,
		boundaryRow(params.NewClose.String(), params.FacilityName, late, projected.DailyVisitors))

	beforeHours := 14
	if f, ok := p.Facilities[params.FacilityName]; ok && f.Hours.Weekday.Set {
		beforeHours = spanHours(f.Hours.Weekday.Open, f.Hours.Weekday.Close, f.Hours.Weekday.Wraps)
	}
	afterHours := spanHours(params.NewOpen, params.NewClose, params.NewClose <= params.NewOpen)

	return []models.MetricDelta{
		delta("Daily Users", oldAverage, metrics.Average, "people"),
		delta("Operating Hours", beforeHours, afterHours, "hours"),
		delta("User Convenience", oldSatisfaction, metrics.Satisfaction, "%"),
	}
}

func (p *Projector) projectNewFacility(baseline models.BaselineMetrics, projected *models.BaselineMetrics, params models.NewFacilityParams) []models.MetricDelta {
	if params.Name == "" || params.Capacity <= 0 {
		return nil
	}

	projected.DailyVisitors[params.Name] = models.FacilityMetrics{
		Peak:         roundMul(params.Capacity, p.Tuning.NewFacilityPeakRatio),
		Average:      roundMul(params.Capacity, p.Tuning.NewFacilityAverageRatio),
		Satisfaction: p.Tuning.NewFacilitySatisfaction,
	}

	// light, volatile early adoption across every existing hour bucket
	for _, row := range projected.HourlyUsage {
		row.Usage[params.Name] = roundF(p.Rng.Float64()*10) + 2
	}

	return []models.MetricDelta{
		delta("New Daily Users", 0, projected.DailyVisitors[params.Name].Average, "people"),
		delta("Total Facility Count", len(baseline.DailyVisitors), len(projected.DailyVisitors), "facilities"),
	}
}

func summarize(changes []models.MetricDelta) models.Summary {
	positive, negative := 0, 0
	for _, c := range changes {
		switch {
		case c.Delta > 0:
			positive++
		case c.Delta < 0:
			negative++
		}
	}
	switch {
	case positive > negative:
		return models.SummaryPositive
	case negative > positive:
		return models.SummaryMixed
	default:
		return models.SummaryNeutral
	}
}

func recommend(changes []models.MetricDelta) models.Recommendation {
	var major []models.MetricDelta
	for _, c := range changes {
		if c.Delta > 10 || c.Delta < -10 {
			major = append(major, c)
		}
	}
	for _, c := range major {
		if c.Delta < -15 {
			return models.RecommendCaution
		}
	}
	if len(major) > 0 {
		allPositive := true
		for _, c := range major {
			if c.Delta <= 0 {
				allPositive = false
				break
			}
		}
		if allPositive {
			return models.RecommendAdopt
		}
	}
	return models.RecommendTestSmall
}

func delta(metric string, before, after int, unit string) models.MetricDelta {
	return models.MetricDelta{Metric: metric, Before: before, After: after, Delta: after - before, Unit: unit}
}

func boundaryRow(label, facility string, users int, visitors map[string]models.FacilityMetrics) models.HourlyRow {
	usage := make(map[string]int, len(visitors))
	for name := range visitors {
		usage[name] = 0
	}
	usage[facility] = users
	return models.HourlyRow{Time: label, Usage: usage}
}

func meanSatisfaction(visitors map[string]models.FacilityMetrics) int {
	if len(visitors) == 0 {
		return 0
	}
	sum := 0
	for _, m := range visitors {
		sum += m.Satisfaction
	}
	return roundF(float64(sum) / float64(len(visitors)))
}

// spanHours measures an open interval's length in whole hours, taking
// the wrap into the next day into account.
func spanHours(open, close models.TimeOfDay, wraps bool) int {
	minutes := int(close) - int(open)
	if wraps || minutes < 0 {
		minutes += models.MinutesPerDay
	}
	return roundF(float64(minutes) / 60)
}

func roundF(v float64) int { return int(math.Round(v)) }

func roundMul(n int, factor float64) int { return roundF(float64(n) * factor) }

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
