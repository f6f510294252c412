package factories

import (
	"testing"

	"github.com/suhlee/facilitysim/internal/models"
)

func testConfig() *models.Config {
	return &models.Config{Seed: 42, MinCapacity: 10, MaxCapacity: 50}
}

func TestPersonaFactoryDeterministicForSeed(t *testing.T) {
	cfg := testConfig()
	a := NewPersonaFactory(42).CreatePersonas(cfg, 20)
	b := NewPersonaFactory(42).CreatePersonas(cfg, 20)

	for i := range a {
		if a[i].Name != b[i].Name || a[i].Archetype != b[i].Archetype {
			t.Fatalf("persona %d differs between identical seeds: %s/%s vs %s/%s",
				i, a[i].Name, a[i].Archetype, b[i].Name, b[i].Archetype)
		}
		if a[i].Details.Age != b[i].Details.Age {
			t.Fatalf("persona %d age differs between identical seeds", i)
		}
	}
}

func TestPersonaFactoryProducesUsableSchedules(t *testing.T) {
	personas := NewPersonaFactory(7).CreatePersonas(testConfig(), 50)

	for _, p := range personas {
		if p.ID == "" || p.Name == "" {
			t.Fatalf("persona missing identity: %+v", p)
		}
		if _, ok := models.ArchetypeSchedules[p.Archetype]; !ok {
			t.Fatalf("unknown archetype %q", p.Archetype)
		}
		if len(p.Schedule) == 0 {
			t.Fatalf("persona %s has no schedule", p.ID)
		}
		for i, slot := range p.Schedule {
			if slot.EndHour <= slot.StartHour {
				t.Fatalf("persona %s slot %d inverted: %d-%d", p.ID, i, slot.StartHour, slot.EndHour)
			}
			if i > 0 && slot.StartHour < p.Schedule[i-1].EndHour {
				t.Fatalf("persona %s slots %d/%d overlap", p.ID, i-1, i)
			}
		}
		if p.Details.AgeGroup != models.AgeGroupOf(p.Details.Age) {
			t.Fatalf("persona %s age group mismatch", p.ID)
		}
	}
}

func TestFacilityFactoryDeterministicForSeed(t *testing.T) {
	cfg := testConfig()
	a := NewFacilityFactory(42).CreateFacilities(cfg, 10)
	b := NewFacilityFactory(42).CreateFacilities(cfg, 10)

	for i := range a {
		if a[i].Name != b[i].Name || a[i].Capacity != b[i].Capacity {
			t.Fatalf("facility %d differs between identical seeds", i)
		}
	}
}

func TestFacilityFactoryRespectsCapacityBounds(t *testing.T) {
	cfg := testConfig()
	facilities := NewFacilityFactory(3).CreateFacilities(cfg, 40)

	seen := make(map[string]bool)
	for _, f := range facilities {
		if f.Capacity < cfg.MinCapacity || f.Capacity > cfg.MaxCapacity {
			t.Fatalf("capacity %d outside [%d, %d]", f.Capacity, cfg.MinCapacity, cfg.MaxCapacity)
		}
		if seen[f.Name] {
			t.Fatalf("duplicate facility name %q", f.Name)
		}
		seen[f.Name] = true
		if !f.Hours.Weekday.Set || !f.Hours.Weekend.Set {
			t.Fatalf("facility %s missing hour buckets", f.Name)
		}
	}
}
