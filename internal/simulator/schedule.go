package simulator

import (
	"github.com/suhlee/facilitysim/internal/models"
)

// LocationAt resolves where a schedule places its persona at the given
// tick. Matching is quantized to the whole hour the tick falls in: slots
// are authored at hour granularity even though the clock ticks finer.
// The first slot whose [StartHour, EndHour) window contains the hour
// wins; overlaps are not validated and silently prefer the earlier slot.
func LocationAt(schedule models.PersonaSchedule, tick int) string {
	location, _ := Resolve(schedule, tick)
	return location
}

// Resolve is LocationAt plus the reason when the answer is NoVisit:
// before the first slot is "too early", after the last is "too late",
// a gap between slots is "nothing scheduled".
func Resolve(schedule models.PersonaSchedule, tick int) (string, models.NoVisitReason) {
	hour := models.TickHour(tick)

	for _, slot := range schedule {
		if hour >= slot.StartHour && hour < slot.EndHour {
			if slot.Location == "" || slot.Location == models.NoVisit {
				return models.NoVisit, models.ReasonUnscheduled
			}
			return slot.Location, models.ReasonNone
		}
	}

	if len(schedule) == 0 {
		return models.NoVisit, models.ReasonUnscheduled
	}
	if hour < schedule[0].StartHour {
		return models.NoVisit, models.ReasonTooEarly
	}
	if hour >= schedule[len(schedule)-1].EndHour {
		return models.NoVisit, models.ReasonTooLate
	}
	return models.NoVisit, models.ReasonUnscheduled
}
