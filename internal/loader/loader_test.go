package loader

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/suhlee/facilitysim/internal/models"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadFacilities(t *testing.T) {
	path := writeFile(t, "facilities.json", `{
		"facilities": [
			{
				"name": "Night Cafe",
				"type": "dining",
				"capacity": 25,
				"openingHours": "18:00",
				"closingHours": "25:00",
				"closedDays": ["Sunday"],
				"restrictions": ["members only"]
			},
			{
				"name": "Pool",
				"capacity": 30,
				"openingHours": "08:00",
				"closingHours": "20:00",
				"weekendOpeningHours": "10:00",
				"weekendClosingHours": "18:00"
			}
		]
	}`)

	facilities := LoadFacilities(path)
	require.Len(t, facilities, 2)

	cafe := facilities[0]
	assert.Equal(t, "Night Cafe", cafe.Name)
	assert.Equal(t, 25, cafe.Capacity)
	assert.True(t, cafe.Hours.Weekday.Wraps, "25:00 close wraps past midnight")
	assert.True(t, cafe.ClosedDays[models.Sunday])
	assert.NotEmpty(t, cafe.ID, "missing id gets generated")

	pool := facilities[1]
	assert.Equal(t, models.NewTimeOfDay(10, 0), pool.Hours.Weekend.Open)
	assert.Equal(t, models.NewTimeOfDay(8, 0), pool.Hours.Weekday.Open)
}

func TestLoadFacilitiesSkipsBadRecords(t *testing.T) {
	path := writeFile(t, "facilities.json", `{
		"facilities": [
			{"name": "", "capacity": 10, "openingHours": "08:00", "closingHours": "20:00"},
			{"name": "Broken Hours", "capacity": 10, "openingHours": "late", "closingHours": "later"},
			{"name": "Fine", "capacity": 10, "openingHours": "08:00", "closingHours": "20:00"}
		]
	}`)

	facilities := LoadFacilities(path)
	require.Len(t, facilities, 1)
	assert.Equal(t, "Fine", facilities[0].Name)
}

func TestLoadFacilitiesFallsBackToDefaults(t *testing.T) {
	assert.Len(t, LoadFacilities(""), 9)
	assert.Len(t, LoadFacilities("/nonexistent/path.json"), 9)

	malformed := writeFile(t, "facilities.json", `{"facilities": [{`)
	assert.Len(t, LoadFacilities(malformed), 9)

	empty := writeFile(t, "empty.json", `{"facilities": []}`)
	assert.Len(t, LoadFacilities(empty), 9)
}

func TestLoadPersonas(t *testing.T) {
	path := writeFile(t, "personas.json", `{
		"personas": [
			{
				"id": "persona_9",
				"name": "Avery",
				"details": {"age": 27, "gender": "Female", "role": "Analyst", "archetype": "professional"},
				"daily_schedule": [
					{"time_slot": "09:00-12:00", "location": "Office", "llm_reasoning": "focus block"},
					{"time_slot": "12:00-13:00", "location": "Cafe"}
				]
			}
		]
	}`)

	personas := LoadPersonas(path)
	require.Len(t, personas, 1)

	p := personas[0]
	assert.Equal(t, "persona_9", p.ID)
	assert.Equal(t, "professional", p.Archetype)
	assert.Equal(t, "20s", p.Details.AgeGroup, "age group derived from age")
	require.Len(t, p.Schedule, 2)
	assert.Equal(t, 9, p.Schedule[0].StartHour)
	assert.Equal(t, 12, p.Schedule[0].EndHour)
	assert.Equal(t, "focus block", p.Schedule[0].Reasoning)
}

func TestLoadPersonasSkipsBadSlots(t *testing.T) {
	path := writeFile(t, "personas.json", `{
		"personas": [
			{
				"id": "p1",
				"daily_schedule": [
					{"time_slot": "garbage", "location": "Cafe"},
					{"time_slot": "14:00-10:00", "location": "Gym"},
					{"time_slot": "10:00-12:00", "location": "Library"}
				]
			}
		]
	}`)

	personas := LoadPersonas(path)
	require.Len(t, personas, 1)
	require.Len(t, personas[0].Schedule, 1, "unparseable slots are dropped")
	assert.Equal(t, "Library", personas[0].Schedule[0].Location)
}

func TestLoadPersonasFallsBackToDefaults(t *testing.T) {
	assert.Len(t, LoadPersonas(""), 8)
	assert.Len(t, LoadPersonas("/nonexistent/path.json"), 8)

	malformed := writeFile(t, "personas.json", `not json at all`)
	assert.Len(t, LoadPersonas(malformed), 8)
}
