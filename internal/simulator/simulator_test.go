package simulator

import (
	"encoding/json"
	"reflect"
	"sync"
	"testing"

	"github.com/suhlee/facilitysim/internal/models"
)

type memorySink struct {
	mu       sync.Mutex
	messages map[string][][]byte
}

func newMemorySink() *memorySink {
	return &memorySink{messages: make(map[string][][]byte)}
}

func (m *memorySink) WriteMessage(topic string, msg []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	buf := make([]byte, len(msg))
	copy(buf, msg)
	m.messages[topic] = append(m.messages[topic], buf)
	return nil
}

func (m *memorySink) Close() error { return nil }

func (m *memorySink) count(topic string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.messages[topic])
}

func defaultTestConfig() *models.Config {
	return &models.Config{
		Seed:     42,
		Days:     1,
		StartDay: "Monday",
		Speed:    1,
	}
}

func TestRunBatchEmitsFullDay(t *testing.T) {
	sim := NewSimulator(defaultTestConfig())
	sink := newMemorySink()

	sim.buildDayEvents(0, models.Monday)
	sim.runBatch(models.Monday, 1, sink)

	wantOccupancy := len(sim.Facilities) * models.TicksPerDay
	if got := sink.count("occupancy_level_events"); got != wantOccupancy {
		t.Errorf("occupancy events = %d, want %d", got, wantOccupancy)
	}

	// every facility opens and closes once
	if got := sink.count("facility_status_events"); got != len(sim.Facilities)*2 {
		t.Errorf("facility status events = %d, want %d", got, len(sim.Facilities)*2)
	}

	if got := sink.count("persona_arrival_events"); got == 0 {
		t.Error("expected persona arrivals from the default cast")
	}
	if got := sink.count("day_summary_events"); got != len(sim.Facilities) {
		t.Errorf("day summaries = %d, want %d", got, len(sim.Facilities))
	}
}

func TestRunBatchOccupancyEventShape(t *testing.T) {
	sim := NewSimulator(defaultTestConfig())
	sink := newMemorySink()

	sim.buildDayEvents(0, models.Monday)
	sim.runBatch(models.Monday, 1, sink)

	var event OccupancyLevelEvent
	if err := json.Unmarshal(sink.messages["occupancy_level_events"][0], &event); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if event.EventType != "occupancy_level" {
		t.Errorf("eventType = %q", event.EventType)
	}
	if event.Day != "Monday" {
		t.Errorf("day = %q", event.Day)
	}
	if event.Clock != "08:00" {
		t.Errorf("clock = %q, want 08:00 at tick 0", event.Clock)
	}
	if event.Capacity <= 0 {
		t.Errorf("capacity = %d", event.Capacity)
	}
}

func TestBuildDayEventsSkipsClosedFacilities(t *testing.T) {
	sim := NewSimulator(defaultTestConfig())
	for _, f := range sim.Facilities {
		f.ClosedDays = map[models.DayOfWeek]bool{models.Monday: true}
	}

	sim.buildDayEvents(0, models.Monday)

	for _, event := range sim.EventQueue.DequeueDue(0, models.TicksPerDay-1) {
		if event.Type == models.EventFacilityOpen || event.Type == models.EventFacilityClose {
			t.Fatalf("no facility transitions expected on a fully closed day, got %s", event.Type)
		}
	}
}

func TestDeriveBaselineWithoutPersonas(t *testing.T) {
	cfg := defaultTestConfig()
	cfg.GenerateData = true
	cfg.InitialPersonas = 0
	sim := NewSimulator(cfg)

	baseline := sim.DeriveBaseline(models.Monday)

	if len(baseline.DailyVisitors) != len(sim.Facilities) {
		t.Fatalf("facilities in baseline = %d, want %d", len(baseline.DailyVisitors), len(sim.Facilities))
	}
	for name, m := range baseline.DailyVisitors {
		if m.Peak != 0 || m.Average != 0 {
			t.Errorf("%s should be empty with no personas: %+v", name, m)
		}
	}
	if baseline.Overall.TotalDailyVisitors != 0 {
		t.Errorf("total visitors = %d", baseline.Overall.TotalDailyVisitors)
	}
}

func TestDeriveBaselineDefaultCast(t *testing.T) {
	sim := NewSimulator(defaultTestConfig())

	baseline := sim.DeriveBaseline(models.Monday)

	if len(baseline.HourlyUsage) != 7 {
		t.Fatalf("hourly rows = %d, want 7 (08:00 to 20:00 every 2h)", len(baseline.HourlyUsage))
	}
	if baseline.HourlyUsage[0].Time != "08:00" || baseline.HourlyUsage[6].Time != "20:00" {
		t.Errorf("row labels = %s .. %s", baseline.HourlyUsage[0].Time, baseline.HourlyUsage[6].Time)
	}

	// three default personas start their day in the Library
	if peak := baseline.DailyVisitors["Library"].Peak; peak < 3 {
		t.Errorf("Library peak = %d, want at least 3", peak)
	}

	total := 0
	for _, n := range baseline.PersonaDistribution {
		total += n
	}
	if total != len(sim.Personas) {
		t.Errorf("distribution covers %d personas, want %d", total, len(sim.Personas))
	}

	for name, m := range baseline.DailyVisitors {
		if m.Satisfaction < 50 || m.Satisfaction > 95 {
			t.Errorf("%s satisfaction %d outside [50, 95]", name, m.Satisfaction)
		}
	}
}

func TestDeriveBaselineDeterministic(t *testing.T) {
	a := NewSimulator(defaultTestConfig()).DeriveBaseline(models.Monday)
	b := NewSimulator(defaultTestConfig()).DeriveBaseline(models.Monday)

	if !reflect.DeepEqual(a, b) {
		t.Fatal("identical configs must derive identical baselines")
	}
}

func TestGeneratedDataDeterministic(t *testing.T) {
	cfg := defaultTestConfig()
	cfg.GenerateData = true
	cfg.InitialPersonas = 12

	a := NewSimulator(cfg)
	b := NewSimulator(cfg)

	if len(a.Personas) != 12 || len(b.Personas) != 12 {
		t.Fatalf("persona counts = %d/%d", len(a.Personas), len(b.Personas))
	}
	for i := range a.Personas {
		if a.Personas[i].Name != b.Personas[i].Name {
			t.Fatal("generated personas differ between identical seeds")
		}
	}
	if !reflect.DeepEqual(facilityNames(a), facilityNames(b)) {
		t.Fatal("generated facilities differ between identical seeds")
	}
}

func facilityNames(s *Simulator) map[string]int {
	names := make(map[string]int, len(s.Facilities))
	for name, f := range s.Facilities {
		names[name] = f.Capacity
	}
	return names
}
