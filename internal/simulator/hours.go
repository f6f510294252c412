package simulator

import (
	"github.com/suhlee/facilitysim/internal/models"
)

// hourBucket picks the operating-hours rule for a day. Monday uses its
// override when one exists; its close falls back to the weekday close
// when the override only sets an open, matching how the source data
// authored Monday-specific hours.
func hourBucket(f *models.Facility, day models.DayOfWeek) models.HourRange {
	if day == models.Monday && f.Hours.Monday.Set {
		bucket := f.Hours.Monday
		if bucket.Close == 0 && !bucket.Wraps {
			fallback := f.Hours.Weekday
			if fallback.Set {
				bucket.Close = fallback.Close
				bucket.Wraps = fallback.Wraps
			}
		}
		return bucket
	}
	if day.IsWeekend() {
		return f.Hours.Weekend
	}
	return f.Hours.Weekday
}

// IsOpen reports whether a facility admits visitors at the given day and
// time. Closed-day membership wins over any hour rule, and a day with no
// usable hour bucket resolves to closed rather than open.
func IsOpen(f *models.Facility, day models.DayOfWeek, t models.TimeOfDay) bool {
	if f == nil || f.IsClosedOn(day) {
		return false
	}
	return hourBucket(f, day).Contains(t)
}

// OpenRange exposes the day's effective bucket for callers that need
// the boundaries themselves (the per-day event builder). ok is false
// when the facility is closed all day.
func OpenRange(f *models.Facility, day models.DayOfWeek) (models.HourRange, bool) {
	if f == nil || f.IsClosedOn(day) {
		return models.HourRange{}, false
	}
	bucket := hourBucket(f, day)
	if !bucket.Set {
		return models.HourRange{}, false
	}
	return bucket, true
}
