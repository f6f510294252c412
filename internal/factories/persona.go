package factories

import (
	"math/rand"

	"github.com/jaswdr/faker"
	"github.com/lucsky/cuid"
	"github.com/suhlee/facilitysim/internal/models"
)

var archetypes = []string{"student", "professional", "researcher", "visitor", "staff"}

var rolesByArchetype = map[string][]string{
	"student":      {"Undergraduate", "Graduate Student", "PhD Candidate", "Exchange Student"},
	"professional": {"Software Engineer", "Product Manager", "Accountant", "Consultant"},
	"researcher":   {"Data Scientist", "Research Fellow", "Lab Technician", "Postdoc"},
	"visitor":      {"Guest", "Contractor", "Auditor", "Tour Guide"},
	"staff":        {"Building Manager", "Receptionist", "Facilities Technician", "Security Officer"},
}

// PersonaFactory generates synthetic personas bound to archetype
// schedules. Seed the rand source for reproducible casts.
type PersonaFactory struct {
	fake faker.Faker
	rng  *rand.Rand
}

func NewPersonaFactory(seed int64) *PersonaFactory {
	return &PersonaFactory{
		fake: faker.NewWithSeed(rand.NewSource(seed)),
		rng:  rand.New(rand.NewSource(seed)),
	}
}

func (pf *PersonaFactory) CreatePersona(config *models.Config) *models.Persona {
	archetype := archetypes[pf.rng.Intn(len(archetypes))]
	roles := rolesByArchetype[archetype]

	age := pf.fake.IntBetween(18, 65)
	gender := "Female"
	if pf.rng.Float64() < 0.5 {
		gender = "Male"
	}

	return &models.Persona{
		ID:        cuid.New(),
		Name:      pf.fake.Person().FirstName(),
		Archetype: archetype,
		Details: models.Demographics{
			Age:         age,
			AgeGroup:    models.AgeGroupOf(age),
			Gender:      gender,
			Role:        roles[pf.rng.Intn(len(roles))],
			Description: pf.fake.Lorem().Sentence(8),
		},
		Schedule: pf.varySchedule(models.ArchetypeSchedules[archetype]),
	}
}

func (pf *PersonaFactory) CreatePersonas(config *models.Config, count int) []*models.Persona {
	personas := make([]*models.Persona, count)
	for i := range personas {
		personas[i] = pf.CreatePersona(config)
	}
	return personas
}

// varySchedule nudges slot boundaries by up to an hour so generated
// personas do not all move in lockstep. Interior boundaries shift in
// pairs to keep the plan gap-free.
func (pf *PersonaFactory) varySchedule(base models.PersonaSchedule) models.PersonaSchedule {
	if len(base) == 0 {
		return base
	}
	schedule := make(models.PersonaSchedule, len(base))
	copy(schedule, base)

	for i := 0; i < len(schedule)-1; i++ {
		if schedule[i].EndHour-schedule[i].StartHour < 2 {
			continue
		}
		shift := pf.rng.Intn(2)
		schedule[i].EndHour -= shift
		schedule[i+1].StartHour -= shift
	}
	return schedule
}
