package models

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	MinutesPerDay  = 24 * 60
	MinutesPerTick = 15
	TicksPerDay    = MinutesPerDay / MinutesPerTick // 96

	// DayStartHour anchors tick 0. Schedules are authored against a
	// simulated day that begins at 08:00.
	DayStartHour = 8
)

// TimeOfDay is a clock value in minutes since midnight, kept in [0, 1440).
type TimeOfDay int

func NewTimeOfDay(hour, minute int) TimeOfDay {
	total := hour*60 + minute
	total %= MinutesPerDay
	if total < 0 {
		total += MinutesPerDay
	}
	return TimeOfDay(total)
}

func (t TimeOfDay) Hour() int   { return int(t) / 60 }
func (t TimeOfDay) Minute() int { return int(t) % 60 }

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute())
}

// ParseClock parses an "HH:MM" string. Hours past 24 are accepted and
// wrapped, so the "25:00" convention for one-past-midnight closes
// normalizes to 01:00.
func ParseClock(s string) (TimeOfDay, error) {
	hour, minute, err := splitClock(s)
	if err != nil {
		return 0, err
	}
	return NewTimeOfDay(hour, minute), nil
}

// ClockHour returns the raw hour component of an "HH:MM" string without
// wrapping. Schedule slots are matched on these whole-hour values.
func ClockHour(s string) (int, error) {
	hour, _, err := splitClock(s)
	if err != nil {
		return 0, err
	}
	return hour, nil
}

func splitClock(s string) (int, int, error) {
	parts := strings.SplitN(strings.TrimSpace(s), ":", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid clock value %q", s)
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid clock value %q: %w", s, err)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid clock value %q: %w", s, err)
	}
	if hour < 0 || minute < 0 || minute > 59 {
		return 0, 0, fmt.Errorf("invalid clock value %q", s)
	}
	return hour, minute, nil
}

// TickTime converts a tick index to its wall-clock value.
func TickTime(tick int) TimeOfDay {
	tick = ClampTick(tick)
	return NewTimeOfDay(DayStartHour+tick/4, (tick%4)*MinutesPerTick)
}

// TickHour is the unwrapped hour a tick falls in, used for schedule slot
// matching. Ticks past midnight keep counting (24, 25, ...) so that
// slots authored as e.g. "20:00-22:00" never spuriously match the small
// hours of the simulated day.
func TickHour(tick int) int {
	return DayStartHour + ClampTick(tick)/4
}

// ClampTick forces a tick index into [0, TicksPerDay).
func ClampTick(tick int) int {
	if tick < 0 {
		return 0
	}
	if tick >= TicksPerDay {
		return TicksPerDay - 1
	}
	return tick
}

// DayOfWeek is a simulated weekday, Monday first.
type DayOfWeek int

const (
	Monday DayOfWeek = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

var dayNames = [...]string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

func (d DayOfWeek) String() string {
	if d < Monday || d > Sunday {
		return "Monday"
	}
	return dayNames[d]
}

func (d DayOfWeek) Short() string { return d.String()[:3] }

func (d DayOfWeek) IsWeekend() bool { return d == Saturday || d == Sunday }

// Next advances cyclically, Sunday wrapping back to Monday.
func (d DayOfWeek) Next() DayOfWeek { return (d.clamp() + 1) % 7 }

func (d DayOfWeek) clamp() DayOfWeek {
	if d < Monday || d > Sunday {
		return Monday
	}
	return d
}

// ParseDay accepts full ("Saturday") or short ("Sat") day names.
// Unrecognized values fall back to Monday rather than erroring.
func ParseDay(s string) DayOfWeek {
	s = strings.TrimSpace(s)
	for i, name := range dayNames {
		if strings.EqualFold(s, name) || strings.EqualFold(s, name[:3]) {
			return DayOfWeek(i)
		}
	}
	return Monday
}
