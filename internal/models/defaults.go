package models

// Fallback data sets. The engine substitutes these whenever a facility
// or persona source is absent or malformed; bad input is never fatal.

func mustHours(open, close string) HourRange {
	r, err := NewHourRange(open, close)
	if err != nil {
		panic(err)
	}
	return r
}

func allDayHours(open, close string) OperatingHours {
	r := mustHours(open, close)
	return OperatingHours{Weekday: r, Weekend: r}
}

// DefaultFacilities returns the built-in nine-facility community set.
func DefaultFacilities() []*Facility {
	return []*Facility{
		{ID: "facility_cafe", Name: "Cafe", Type: "dining", Capacity: 20, Hours: allDayHours("08:00", "22:00")},
		{ID: "facility_library", Name: "Library", Type: "study", Capacity: 40, Hours: allDayHours("08:00", "22:00")},
		{ID: "facility_gym", Name: "Gym", Type: "fitness", Capacity: 15, Hours: allDayHours("08:00", "22:00")},
		{ID: "facility_conference", Name: "Conference Room", Type: "meeting", Capacity: 12, Hours: allDayHours("08:00", "20:00")},
		{ID: "facility_lounge", Name: "Lounge", Type: "social", Capacity: 25, Hours: OperatingHours{
			Weekday: mustHours("08:00", "22:00"),
			Weekend: mustHours("10:00", "24:00"),
		}},
		{ID: "facility_lab", Name: "Lab", Type: "research", Capacity: 16, Hours: allDayHours("08:00", "22:00")},
		{ID: "facility_office", Name: "Office", Type: "work", Capacity: 30, Hours: allDayHours("08:00", "20:00")},
		{ID: "facility_study", Name: "Study Room", Type: "study", Capacity: 18, Hours: allDayHours("08:00", "22:00")},
		{ID: "facility_reception", Name: "Reception", Type: "service", Capacity: 8, Hours: allDayHours("08:00", "18:00")},
	}
}

// ArchetypeSchedules are the built-in day plans per persona archetype.
var ArchetypeSchedules = map[string]PersonaSchedule{
	"student": {
		{StartHour: 8, EndHour: 10, Location: "Library"},
		{StartHour: 10, EndHour: 12, Location: "Cafe"},
		{StartHour: 12, EndHour: 16, Location: "Library"},
		{StartHour: 16, EndHour: 18, Location: "Gym"},
		{StartHour: 18, EndHour: 20, Location: "Lounge"},
	},
	"professional": {
		{StartHour: 8, EndHour: 10, Location: "Cafe"},
		{StartHour: 10, EndHour: 12, Location: "Conference Room"},
		{StartHour: 12, EndHour: 14, Location: "Cafe"},
		{StartHour: 14, EndHour: 18, Location: "Conference Room"},
		{StartHour: 18, EndHour: 20, Location: "Gym"},
	},
	"researcher": {
		{StartHour: 8, EndHour: 10, Location: "Library"},
		{StartHour: 10, EndHour: 12, Location: "Conference Room"},
		{StartHour: 12, EndHour: 14, Location: "Cafe"},
		{StartHour: 14, EndHour: 18, Location: "Library"},
		{StartHour: 18, EndHour: 20, Location: "Lounge"},
	},
	"visitor": {
		{StartHour: 8, EndHour: 10, Location: NoVisit},
		{StartHour: 10, EndHour: 12, Location: "Conference Room"},
		{StartHour: 12, EndHour: 14, Location: "Cafe"},
		{StartHour: 14, EndHour: 16, Location: "Lounge"},
		{StartHour: 16, EndHour: 18, Location: "Library"},
	},
	"staff": {
		{StartHour: 8, EndHour: 12, Location: "Cafe"},
		{StartHour: 12, EndHour: 16, Location: "Cafe"},
		{StartHour: 16, EndHour: 18, Location: "Conference Room"},
		{StartHour: 18, EndHour: 20, Location: "Lounge"},
		{StartHour: 20, EndHour: 22, Location: "Gym"},
	},
}

// DefaultPersonas returns the built-in eight-person cast, each bound to
// an archetype schedule.
func DefaultPersonas() []*Persona {
	cast := []struct {
		id, name, archetype, role, gender string
		age                               int
	}{
		{"persona_1", "Jane", "staff", "Building Manager", "Female", 32},
		{"persona_2", "Sue", "staff", "Receptionist", "Female", 24},
		{"persona_3", "Sana", "visitor", "Guest", "Female", 28},
		{"persona_4", "Edgar", "researcher", "Data Scientist", "Male", 35},
		{"persona_5", "Mel", "researcher", "Research Fellow", "Female", 29},
		{"persona_6", "Juneha", "student", "Graduate Student", "Female", 24},
		{"persona_7", "Yun", "professional", "Software Engineer", "Female", 31},
		{"persona_8", "Hyu", "professional", "Product Manager", "Male", 34},
	}

	personas := make([]*Persona, len(cast))
	for i, c := range cast {
		personas[i] = &Persona{
			ID:        c.id,
			Name:      c.name,
			Archetype: c.archetype,
			Details: Demographics{
				Age:      c.age,
				AgeGroup: AgeGroupOf(c.age),
				Gender:   c.gender,
				Role:     c.role,
			},
			Schedule: ArchetypeSchedules[c.archetype],
		}
	}
	return personas
}

// DefaultBaseline returns the reference usage snapshot the projector
// falls back to when no simulated baseline has been derived.
func DefaultBaseline() BaselineMetrics {
	return BaselineMetrics{
		DailyVisitors: map[string]FacilityMetrics{
			"Cafe":            {Peak: 18, Average: 12, Satisfaction: 85},
			"Library":         {Peak: 35, Average: 25, Satisfaction: 78},
			"Gym":             {Peak: 12, Average: 8, Satisfaction: 72},
			"Conference Room": {Peak: 10, Average: 6, Satisfaction: 90},
		},
		HourlyUsage: []HourlyRow{
			{Time: "08:00", Usage: map[string]int{"Cafe": 8, "Library": 15, "Gym": 5, "Conference Room": 2}},
			{Time: "10:00", Usage: map[string]int{"Cafe": 12, "Library": 25, "Gym": 8, "Conference Room": 6}},
			{Time: "12:00", Usage: map[string]int{"Cafe": 18, "Library": 30, "Gym": 6, "Conference Room": 8}},
			{Time: "14:00", Usage: map[string]int{"Cafe": 15, "Library": 35, "Gym": 10, "Conference Room": 10}},
			{Time: "16:00", Usage: map[string]int{"Cafe": 10, "Library": 28, "Gym": 12, "Conference Room": 6}},
			{Time: "18:00", Usage: map[string]int{"Cafe": 8, "Library": 20, "Gym": 8, "Conference Room": 3}},
			{Time: "20:00", Usage: map[string]int{"Cafe": 5, "Library": 15, "Gym": 6, "Conference Room": 1}},
		},
		PersonaDistribution: map[string]int{
			"Student":      45,
			"Professional": 35,
			"Researcher":   20,
		},
		Overall: OverallMetrics{
			TotalDailyVisitors:  150,
			AverageWaitMinutes:  8,
			FacilityUtilization: 72,
			UserSatisfaction:    81,
		},
	}
}
