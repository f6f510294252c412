package models

// HourRange is one operating-hours bucket. Wraps marks a close that
// rolls past midnight (an authored "25:00" close), in which case Close
// holds the already-normalized next-day value.
type HourRange struct {
	Open  TimeOfDay `json:"open"`
	Close TimeOfDay `json:"close"`
	Wraps bool      `json:"wraps,omitempty"`
	Set   bool      `json:"set"`
}

// NewHourRange builds a bucket from "HH:MM" strings. A close at or past
// "24:00" wraps into the next day.
func NewHourRange(open, close string) (HourRange, error) {
	o, err := ParseClock(open)
	if err != nil {
		return HourRange{}, err
	}
	closeHour, err := ClockHour(close)
	if err != nil {
		return HourRange{}, err
	}
	c, err := ParseClock(close)
	if err != nil {
		return HourRange{}, err
	}
	return HourRange{Open: o, Close: c, Wraps: closeHour >= 24, Set: true}, nil
}

// Contains reports whether t falls inside the bucket. A wrapped bucket
// covers open..midnight plus midnight..close of the next day.
func (r HourRange) Contains(t TimeOfDay) bool {
	if !r.Set {
		return false
	}
	if r.Wraps {
		return t >= r.Open || t <= r.Close
	}
	return t >= r.Open && t <= r.Close
}

// OperatingHours carries the weekday/weekend buckets plus an optional
// Monday override for facilities that keep distinct Monday hours.
type OperatingHours struct {
	Weekday HourRange `json:"weekday"`
	Weekend HourRange `json:"weekend"`
	Monday  HourRange `json:"monday,omitempty"`
}

// Facility is a visitable space with capacity and operating-hours rules.
type Facility struct {
	ID           string             `json:"id"`
	Name         string             `json:"name"`
	Type         string             `json:"type,omitempty"`
	Location     string             `json:"location,omitempty"`
	Capacity     int                `json:"capacity"`
	Hours        OperatingHours     `json:"hours"`
	ClosedDays   map[DayOfWeek]bool `json:"closed_days,omitempty"`
	Restrictions []string           `json:"restrictions,omitempty"`
}

func (f *Facility) IsClosedOn(day DayOfWeek) bool {
	return f.ClosedDays != nil && f.ClosedDays[day]
}
