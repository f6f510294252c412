package models

import (
	"fmt"
	"strings"
)

// NoVisit is the synthetic location for a persona not at any facility.
const NoVisit = "no-visit"

// NoVisitReason explains an absence, mirroring the reasons the source
// simulation data carried alongside its no-visit results.
type NoVisitReason string

const (
	ReasonNone        NoVisitReason = ""
	ReasonTooEarly    NoVisitReason = "too early"
	ReasonTooLate     NoVisitReason = "too late"
	ReasonClosed      NoVisitReason = "facility closed"
	ReasonUnscheduled NoVisitReason = "nothing scheduled"
)

// ScheduleSlot is one entry of a persona's day. Matching happens on
// whole hours regardless of the clock's finer tick resolution, because
// that is the granularity slots are authored at.
type ScheduleSlot struct {
	StartHour int    `json:"start_hour"`
	EndHour   int    `json:"end_hour"`
	Location  string `json:"location"`
	Reasoning string `json:"reasoning,omitempty"`
}

// ParseTimeSlot parses an "HH:MM-HH:MM" slot string into its whole-hour
// boundaries.
func ParseTimeSlot(s string) (start, end int, err error) {
	parts := strings.SplitN(strings.TrimSpace(s), "-", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid time slot %q", s)
	}
	start, err = ClockHour(parts[0])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid time slot %q: %w", s, err)
	}
	end, err = ClockHour(parts[1])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid time slot %q: %w", s, err)
	}
	if end < start {
		return 0, 0, fmt.Errorf("invalid time slot %q: end before start", s)
	}
	return start, end, nil
}

// PersonaSchedule is an ordered slot list. Slots are expected not to
// overlap; the resolver does not enforce that and prefers the earlier
// slot when they do.
type PersonaSchedule []ScheduleSlot

// Demographics describes a persona for the aggregator's breakdowns.
type Demographics struct {
	Age         int    `json:"age,omitempty"`
	AgeGroup    string `json:"age_group"`
	Gender      string `json:"gender"`
	Role        string `json:"role,omitempty"`
	Description string `json:"description,omitempty"`
}

// Persona is a simulated individual with a fixed daily schedule.
// Personas are created once per run and immutable during playback.
type Persona struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Archetype string          `json:"archetype"`
	Details   Demographics    `json:"details"`
	Schedule  PersonaSchedule `json:"daily_schedule"`
}

// AgeGroupOf buckets an age the way the persona generator labels them
// ("10s", "20s", ... "50s+").
func AgeGroupOf(age int) string {
	if age <= 0 {
		return "unknown"
	}
	decade := age / 10 * 10
	if decade < 10 {
		decade = 10
	}
	if decade >= 50 {
		return "50s+"
	}
	return fmt.Sprintf("%ds", decade)
}
