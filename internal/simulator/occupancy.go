package simulator

import (
	"github.com/suhlee/facilitysim/internal/models"
)

// Snapshot resolves every persona's location at the given instant and
// groups them by facility, with demographic breakdowns per group. The
// result is built fresh on every call; nothing is reused or mutated
// incrementally, so callers can hold snapshots across ticks safely.
//
// A persona whose schedule points at a facility that is closed at this
// instant lands in the no-visit bucket with a "facility closed" reason
// rather than being counted inside a closed building.
func Snapshot(personas []*models.Persona, facilities map[string]*models.Facility, tick int, day models.DayOfWeek) *models.OccupancySnapshot {
	tick = models.ClampTick(tick)

	snap := &models.OccupancySnapshot{
		Tick:        tick,
		Time:        models.TickTime(tick),
		Day:         day,
		PerFacility: make(map[string][]string, len(facilities)+1),
		Reasons:     make(map[string]models.NoVisitReason),
		Breakdowns:  make(map[string]models.Breakdown, len(facilities)+1),
	}

	// every facility gets a bucket even when empty
	for name := range facilities {
		snap.PerFacility[name] = []string{}
	}
	snap.PerFacility[models.NoVisit] = []string{}

	byLocation := make(map[string][]*models.Persona)
	for _, p := range personas {
		location, reason := Resolve(p.Schedule, tick)

		if location != models.NoVisit {
			if facility, ok := facilities[location]; ok && !IsOpen(facility, day, models.TickTime(tick)) {
				location = models.NoVisit
				reason = models.ReasonClosed
			}
		}

		snap.PerFacility[location] = append(snap.PerFacility[location], p.ID)
		byLocation[location] = append(byLocation[location], p)
		if location == models.NoVisit {
			snap.Reasons[p.ID] = reason
		}
	}

	for location, group := range byLocation {
		snap.Breakdowns[location] = breakdown(group)
	}
	for name := range facilities {
		if _, ok := snap.Breakdowns[name]; !ok {
			snap.Breakdowns[name] = breakdown(nil)
		}
	}

	return snap
}

func breakdown(group []*models.Persona) models.Breakdown {
	b := models.Breakdown{
		Total:       len(group),
		ByAgeGroup:  make(map[string]int),
		ByGender:    make(map[string]int),
		ByArchetype: make(map[string]int),
	}
	for _, p := range group {
		ageGroup := p.Details.AgeGroup
		if ageGroup == "" {
			ageGroup = models.AgeGroupOf(p.Details.Age)
		}
		b.ByAgeGroup[ageGroup]++
		if p.Details.Gender != "" {
			b.ByGender[p.Details.Gender]++
		}
		if p.Archetype != "" {
			b.ByArchetype[p.Archetype]++
		}
	}
	return b
}
