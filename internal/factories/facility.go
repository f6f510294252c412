package factories

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/jaswdr/faker"
	"github.com/lucsky/cuid"
	"github.com/suhlee/facilitysim/internal/models"
)

var facilityTypes = []string{"dining", "study", "fitness", "meeting", "social", "research", "work", "service"}

var facilityNamesByType = map[string][]string{
	"dining":   {"Cafe", "Canteen", "Juice Bar"},
	"study":    {"Library", "Study Room", "Reading Room"},
	"fitness":  {"Gym", "Yoga Studio", "Pool"},
	"meeting":  {"Conference Room", "Boardroom", "Huddle Space"},
	"social":   {"Lounge", "Game Room", "Terrace"},
	"research": {"Lab", "Workshop", "Maker Space"},
	"work":     {"Office", "Open Desk Area", "Quiet Zone"},
	"service":  {"Reception", "Mail Room", "Help Desk"},
}

// FacilityFactory generates synthetic facilities with plausible
// operating hours. Seed the rand source for reproducible sets.
type FacilityFactory struct {
	fake  faker.Faker
	rng   *rand.Rand
	taken map[string]int
}

func NewFacilityFactory(seed int64) *FacilityFactory {
	return &FacilityFactory{
		fake:  faker.NewWithSeed(rand.NewSource(seed)),
		rng:   rand.New(rand.NewSource(seed)),
		taken: make(map[string]int),
	}
}

func (ff *FacilityFactory) CreateFacility(config *models.Config) *models.Facility {
	fType := facilityTypes[ff.rng.Intn(len(facilityTypes))]
	names := facilityNamesByType[fType]
	name := ff.uniqueName(names[ff.rng.Intn(len(names))])

	minCap, maxCap := config.MinCapacity, config.MaxCapacity
	if minCap <= 0 {
		minCap = 10
	}
	if maxCap <= minCap {
		maxCap = minCap + 40
	}

	openHour := 7 + ff.rng.Intn(3)
	closeHour := 18 + ff.rng.Intn(5)
	hours, _ := models.NewHourRange(
		fmt.Sprintf("%02d:00", openHour),
		fmt.Sprintf("%02d:00", closeHour),
	)

	weekend := hours
	if ff.rng.Float64() < 0.3 {
		weekend, _ = models.NewHourRange(
			fmt.Sprintf("%02d:00", openHour+2),
			fmt.Sprintf("%02d:00", closeHour-2),
		)
	}

	return &models.Facility{
		ID:       cuid.New(),
		Name:     name,
		Type:     fType,
		Location: ff.fake.Address().StreetName(),
		Capacity: ff.fake.IntBetween(minCap, maxCap),
		Hours: models.OperatingHours{
			Weekday: hours,
			Weekend: weekend,
		},
	}
}

func (ff *FacilityFactory) CreateFacilities(config *models.Config, count int) []*models.Facility {
	facilities := make([]*models.Facility, count)
	for i := range facilities {
		facilities[i] = ff.CreateFacility(config)
	}
	return facilities
}

func (ff *FacilityFactory) uniqueName(base string) string {
	ff.taken[base]++
	if ff.taken[base] == 1 {
		return base
	}
	return strings.TrimSpace(fmt.Sprintf("%s %d", base, ff.taken[base]))
}
