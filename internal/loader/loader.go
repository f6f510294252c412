package loader

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/lucsky/cuid"
	"github.com/suhlee/facilitysim/internal/models"
)

// File shapes mirror the exported planning documents: a facility list
// with clock-string hours, and personas carrying an LLM-authored daily
// schedule of "HH:MM-HH:MM" slots.

type facilityFile struct {
	Facilities []facilityRecord `json:"facilities"`
}

type facilityRecord struct {
	ID                  string   `json:"id"`
	Name                string   `json:"name"`
	Type                string   `json:"type"`
	Location            string   `json:"location"`
	Capacity            int      `json:"capacity"`
	OpeningHours        string   `json:"openingHours"`
	ClosingHours        string   `json:"closingHours"`
	WeekendOpeningHours string   `json:"weekendOpeningHours"`
	WeekendClosingHours string   `json:"weekendClosingHours"`
	MondayOpeningHours  string   `json:"mondayOpeningHours"`
	MondayClosingHours  string   `json:"mondayClosingHours"`
	ClosedDays          []string `json:"closedDays"`
	Restrictions        []string `json:"restrictions"`
}

type personaFile struct {
	Personas []personaRecord `json:"personas"`
}

type personaRecord struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Details struct {
		Age         int    `json:"age"`
		Gender      string `json:"gender"`
		Role        string `json:"role"`
		Archetype   string `json:"archetype"`
		Description string `json:"description"`
	} `json:"details"`
	DailySchedule []scheduleRecord `json:"daily_schedule"`
}

type scheduleRecord struct {
	TimeSlot     string `json:"time_slot"`
	Location     string `json:"location"`
	LLMReasoning string `json:"llm_reasoning"`
}

// LoadFacilities reads a facility list from path. A missing or
// malformed file is not fatal; the built-in set carries the run.
func LoadFacilities(path string) []*models.Facility {
	if path == "" {
		return models.DefaultFacilities()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		log.Printf("Cannot read facilities file %s, using defaults: %v", path, err)
		return models.DefaultFacilities()
	}

	var file facilityFile
	if err := json.Unmarshal(data, &file); err != nil || len(file.Facilities) == 0 {
		log.Printf("Cannot parse facilities file %s, using defaults", path)
		return models.DefaultFacilities()
	}

	facilities := make([]*models.Facility, 0, len(file.Facilities))
	for _, rec := range file.Facilities {
		facility, err := buildFacility(rec)
		if err != nil {
			log.Printf("Skipping facility %q: %v", rec.Name, err)
			continue
		}
		facilities = append(facilities, facility)
	}

	if len(facilities) == 0 {
		log.Printf("No usable facilities in %s, using defaults", path)
		return models.DefaultFacilities()
	}
	return facilities
}

func buildFacility(rec facilityRecord) (*models.Facility, error) {
	if rec.Name == "" {
		return nil, fmt.Errorf("missing name")
	}
	if rec.Capacity <= 0 {
		return nil, fmt.Errorf("capacity must be positive, got %d", rec.Capacity)
	}

	var hours models.OperatingHours
	if rec.OpeningHours != "" {
		r, err := models.NewHourRange(rec.OpeningHours, rec.ClosingHours)
		if err != nil {
			return nil, fmt.Errorf("weekday hours: %w", err)
		}
		hours.Weekday = r
	}
	if rec.WeekendOpeningHours != "" {
		r, err := models.NewHourRange(rec.WeekendOpeningHours, rec.WeekendClosingHours)
		if err != nil {
			return nil, fmt.Errorf("weekend hours: %w", err)
		}
		hours.Weekend = r
	} else {
		hours.Weekend = hours.Weekday
	}
	if rec.MondayOpeningHours != "" {
		if rec.MondayClosingHours != "" {
			r, err := models.NewHourRange(rec.MondayOpeningHours, rec.MondayClosingHours)
			if err != nil {
				return nil, fmt.Errorf("monday hours: %w", err)
			}
			hours.Monday = r
		} else {
			// close omitted; the evaluator borrows the weekday close
			open, err := models.ParseClock(rec.MondayOpeningHours)
			if err != nil {
				return nil, fmt.Errorf("monday hours: %w", err)
			}
			hours.Monday = models.HourRange{Open: open, Set: true}
		}
	}

	id := rec.ID
	if id == "" {
		id = cuid.New()
	}

	closedDays := make(map[models.DayOfWeek]bool, len(rec.ClosedDays))
	for _, name := range rec.ClosedDays {
		closedDays[models.ParseDay(name)] = true
	}

	return &models.Facility{
		ID:           id,
		Name:         rec.Name,
		Type:         rec.Type,
		Location:     rec.Location,
		Capacity:     rec.Capacity,
		Hours:        hours,
		ClosedDays:   closedDays,
		Restrictions: rec.Restrictions,
	}, nil
}

// LoadPersonas reads a persona list from path. Bad schedule slots are
// skipped individually; a wholly unusable file yields the default cast.
func LoadPersonas(path string) []*models.Persona {
	if path == "" {
		return models.DefaultPersonas()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		log.Printf("Cannot read personas file %s, using defaults: %v", path, err)
		return models.DefaultPersonas()
	}

	var file personaFile
	if err := json.Unmarshal(data, &file); err != nil || len(file.Personas) == 0 {
		log.Printf("Cannot parse personas file %s, using defaults", path)
		return models.DefaultPersonas()
	}

	personas := make([]*models.Persona, 0, len(file.Personas))
	for _, rec := range file.Personas {
		personas = append(personas, buildPersona(rec))
	}
	return personas
}

func buildPersona(rec personaRecord) *models.Persona {
	id := rec.ID
	if id == "" {
		id = cuid.New()
	}
	name := rec.Name
	if name == "" {
		name = id
	}

	schedule := make(models.PersonaSchedule, 0, len(rec.DailySchedule))
	for _, slot := range rec.DailySchedule {
		start, end, err := models.ParseTimeSlot(slot.TimeSlot)
		if err != nil {
			log.Printf("Skipping slot %q for persona %s: %v", slot.TimeSlot, id, err)
			continue
		}
		schedule = append(schedule, models.ScheduleSlot{
			StartHour: start,
			EndHour:   end,
			Location:  slot.Location,
			Reasoning: slot.LLMReasoning,
		})
	}

	return &models.Persona{
		ID:        id,
		Name:      name,
		Archetype: rec.Details.Archetype,
		Details: models.Demographics{
			Age:         rec.Details.Age,
			AgeGroup:    models.AgeGroupOf(rec.Details.Age),
			Gender:      rec.Details.Gender,
			Role:        rec.Details.Role,
			Description: rec.Details.Description,
		},
		Schedule: schedule,
	}
}
