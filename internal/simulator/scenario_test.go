package simulator

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/suhlee/facilitysim/internal/models"
)

func newTestProjector() *Projector {
	facilities := facilityMap(models.DefaultFacilities())
	return NewProjector(models.DefaultScenarioTuning(), facilities, rand.New(rand.NewSource(7)))
}

func capacityScenario(facility string, percent int) models.ScenarioParams {
	return models.ScenarioParams{
		Kind:     models.ScenarioCapacity,
		Capacity: &models.CapacityParams{FacilityName: facility, ChangePercent: percent},
	}
}

func TestProjectCapacityIncrease(t *testing.T) {
	p := newTestProjector()
	baseline := models.DefaultBaseline()

	result := p.Project(baseline, capacityScenario("Cafe", 50))

	cafe := result.Projected.DailyVisitors["Cafe"]
	// cap 20 -> 30; peak 18 grows by the damped 50/150 -> 24; avg 70% of peak
	assert.Equal(t, 24, cafe.Peak)
	assert.Equal(t, 17, cafe.Average)
	assert.Equal(t, 95, cafe.Satisfaction)

	require.Len(t, result.Changes, 3)
	assert.Equal(t, "Facility Capacity", result.Changes[2].Metric)
	assert.Equal(t, 20, result.Changes[2].Before)
	assert.Equal(t, 30, result.Changes[2].After)
	assert.Equal(t, models.SummaryPositive, result.Summary)
}

func TestProjectCapacityDecreaseClampsSatisfaction(t *testing.T) {
	p := newTestProjector()
	baseline := models.DefaultBaseline()

	result := p.Project(baseline, capacityScenario("Gym", -200))

	gym := result.Projected.DailyVisitors["Gym"]
	// percent clamps to -50; satisfaction floors at 50
	assert.Equal(t, 55, gym.Satisfaction)

	assert.Equal(t, 8, result.Changes[2].After, "capacity halves from 15 to 8")
}

func TestProjectCapacityHourlyNeverExceedsNewCapacity(t *testing.T) {
	p := newTestProjector()
	baseline := models.DefaultBaseline()

	result := p.Project(baseline, capacityScenario("Library", 100))

	for _, row := range result.Projected.HourlyUsage {
		assert.LessOrEqual(t, row.Usage["Library"], 80)
	}
}

func TestProjectClosure(t *testing.T) {
	p := newTestProjector()
	baseline := models.DefaultBaseline()

	result := p.Project(baseline, models.ScenarioParams{
		Kind:    models.ScenarioClosure,
		Closure: &models.ClosureParams{FacilityName: "Library", Day: models.Monday},
	})

	projected := result.Projected.DailyVisitors
	assert.Equal(t, models.FacilityMetrics{}, projected["Library"])

	// 25 displaced across 3 others: +8 average each, peaks +10
	assert.Equal(t, 12+8, projected["Cafe"].Average)
	assert.Equal(t, 18+10, projected["Cafe"].Peak)
	assert.Equal(t, 85-15, projected["Cafe"].Satisfaction)
	assert.Equal(t, 72-15, projected["Gym"].Satisfaction)

	for _, row := range result.Projected.HourlyUsage {
		assert.Zero(t, row.Usage["Library"])
	}

	require.Len(t, result.Changes, 2)
	assert.Equal(t, 25, result.Changes[0].After, "displaced users equal the closed average")
	assert.Equal(t, models.RecommendCaution, result.Recommendation)
}

func TestProjectClosureSatisfactionFloor(t *testing.T) {
	p := newTestProjector()
	baseline := models.DefaultBaseline()
	visitors := baseline.DailyVisitors
	visitors["Gym"] = models.FacilityMetrics{Peak: 12, Average: 8, Satisfaction: 45}

	result := p.Project(baseline, models.ScenarioParams{
		Kind:    models.ScenarioClosure,
		Closure: &models.ClosureParams{FacilityName: "Library", Day: models.Monday},
	})

	assert.Equal(t, 40, result.Projected.DailyVisitors["Gym"].Satisfaction, "drop floors at 40")
}

func TestProjectHoursExtension(t *testing.T) {
	p := newTestProjector()
	baseline := models.DefaultBaseline()

	newOpen, err := models.ParseClock("06:00")
	require.NoError(t, err)
	newClose, err := models.ParseClock("24:00")
	require.NoError(t, err)

	result := p.Project(baseline, models.ScenarioParams{
		Kind:  models.ScenarioHours,
		Hours: &models.HoursParams{FacilityName: "Cafe", NewOpen: newOpen, NewClose: newClose},
	})

	cafe := result.Projected.DailyVisitors["Cafe"]
	assert.Equal(t, 12+8+12, cafe.Average)
	assert.Equal(t, 18+12, cafe.Peak) // 60% of the 20 extra users
	assert.Equal(t, 93, cafe.Satisfaction)

	rows := result.Projected.HourlyUsage
	require.Len(t, rows, 9, "boundary rows added at the new open and close")
	assert.Equal(t, 8, rows[0].Usage["Cafe"])
	assert.Equal(t, 12, rows[len(rows)-1].Usage["Cafe"])
	assert.Zero(t, rows[0].Usage["Library"])

	// operating hours 14 -> 18
	hoursDelta := result.Changes[1]
	assert.Equal(t, 14, hoursDelta.Before)
	assert.Equal(t, 18, hoursDelta.After)
}

func TestProjectNewFacility(t *testing.T) {
	p := newTestProjector()
	baseline := models.DefaultBaseline()

	result := p.Project(baseline, models.ScenarioParams{
		Kind:        models.ScenarioNewFacility,
		NewFacility: &models.NewFacilityParams{Name: "Pool", Capacity: 30},
	})

	pool := result.Projected.DailyVisitors["Pool"]
	assert.Equal(t, 24, pool.Peak)
	assert.Equal(t, 18, pool.Average)
	assert.Equal(t, 88, pool.Satisfaction)

	for _, row := range result.Projected.HourlyUsage {
		usage := row.Usage["Pool"]
		assert.GreaterOrEqual(t, usage, 2)
		assert.LessOrEqual(t, usage, 12)
	}

	assert.Equal(t, models.RecommendAdopt, result.Recommendation)
	assert.Equal(t, 5, result.Changes[1].After, "facility count grows by one")
}

func TestProjectUnknownFacilityIsNoOp(t *testing.T) {
	p := newTestProjector()
	baseline := models.DefaultBaseline()

	result := p.Project(baseline, capacityScenario("Helipad", 50))

	assert.Empty(t, result.Changes)
	assert.Equal(t, models.SummaryNeutral, result.Summary)
	assert.Equal(t, models.RecommendTestSmall, result.Recommendation)
	assert.Equal(t, baseline.DailyVisitors, result.Projected.DailyVisitors)
}

func TestProjectDoesNotMutateBaseline(t *testing.T) {
	p := newTestProjector()
	baseline := models.DefaultBaseline()
	before := baseline.Clone()

	_ = p.Project(baseline, capacityScenario("Cafe", 80))
	_ = p.Project(baseline, models.ScenarioParams{
		Kind:    models.ScenarioClosure,
		Closure: &models.ClosureParams{FacilityName: "Cafe", Day: models.Friday},
	})

	assert.Equal(t, before.DailyVisitors, baseline.DailyVisitors)
	assert.Equal(t, before.HourlyUsage, baseline.HourlyUsage)
}

func TestProjectDeterministicForSeed(t *testing.T) {
	facilities := facilityMap(models.DefaultFacilities())
	params := models.ScenarioParams{
		Kind:        models.ScenarioNewFacility,
		NewFacility: &models.NewFacilityParams{Name: "Pool", Capacity: 30},
	}

	a := NewProjector(models.DefaultScenarioTuning(), facilities, rand.New(rand.NewSource(11))).
		Project(models.DefaultBaseline(), params)
	b := NewProjector(models.DefaultScenarioTuning(), facilities, rand.New(rand.NewSource(11))).
		Project(models.DefaultBaseline(), params)

	assert.Equal(t, a.Projected.HourlyUsage, b.Projected.HourlyUsage)
}

func TestProjectHonorsTuningOverrides(t *testing.T) {
	tuning := models.DefaultScenarioTuning()
	tuning.NewFacilityPeakRatio = 0.5
	tuning.NewFacilitySatisfaction = 70
	p := NewProjector(tuning, facilityMap(models.DefaultFacilities()), rand.New(rand.NewSource(7)))

	result := p.Project(models.DefaultBaseline(), models.ScenarioParams{
		Kind:        models.ScenarioNewFacility,
		NewFacility: &models.NewFacilityParams{Name: "Pool", Capacity: 30},
	})

	pool := result.Projected.DailyVisitors["Pool"]
	assert.Equal(t, 15, pool.Peak)
	assert.Equal(t, 70, pool.Satisfaction)
}
