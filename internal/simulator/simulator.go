package simulator

import (
	"encoding/json"
	"fmt"
	"log"
	"math/rand"
	"sync"

	"github.com/schollz/progressbar/v3"
	"github.com/suhlee/facilitysim/internal/factories"
	"github.com/suhlee/facilitysim/internal/loader"
	"github.com/suhlee/facilitysim/internal/models"
)

// Simulator drives facility occupancy over one or more simulated days
// and streams the resulting events to the configured destination.
type Simulator struct {
	Config     *models.Config
	Clock      *TimeClock
	Facilities map[string]*models.Facility
	Personas   []*models.Persona
	Rng        *rand.Rand
	EventQueue *models.EventQueue

	prevLocation map[string]string
	dayStats     map[string]*facilityDayStats
}

type facilityDayStats struct {
	peak        int
	totalTicks  int
	sumOccupied int
	visits      int
}

func NewSimulator(config *models.Config) *Simulator {
	sim := &Simulator{
		Config:       config,
		Rng:          rand.New(rand.NewSource(int64(config.Seed))),
		EventQueue:   models.NewEventQueue(),
		prevLocation: make(map[string]string),
		dayStats:     make(map[string]*facilityDayStats),
	}
	sim.initializeData()
	return sim
}

func (s *Simulator) initializeData() {
	var facilities []*models.Facility
	var personas []*models.Persona

	if s.Config.GenerateData {
		facilityFactory := factories.NewFacilityFactory(int64(s.Config.Seed))
		personaFactory := factories.NewPersonaFactory(int64(s.Config.Seed))
		facilities = facilityFactory.CreateFacilities(s.Config, len(models.DefaultFacilities()))
		personas = personaFactory.CreatePersonas(s.Config, s.Config.InitialPersonas)
	} else {
		facilities = loader.LoadFacilities(s.Config.FacilitiesFile)
		personas = loader.LoadPersonas(s.Config.PersonasFile)
	}

	s.Facilities = make(map[string]*models.Facility, len(facilities))
	for _, f := range facilities {
		s.Facilities[f.Name] = f
	}
	s.Personas = personas

	log.Printf("Initialized %d facilities and %d personas", len(s.Facilities), len(s.Personas))
}

// Run plays the configured number of days. Batch mode sweeps every tick
// as fast as the sink allows; realtime mode advances on the wall clock
// at the configured speed.
func (s *Simulator) Run() {
	sink := s.determineOutputDestination()
	defer func() {
		if err := sink.Close(); err != nil {
			log.Printf("Error closing output: %v", err)
		}
	}()

	startDay := models.ParseDay(s.Config.StartDay)
	days := s.Config.Days
	if days <= 0 {
		days = 1
	}

	for dayIndex := 0; dayIndex < days; dayIndex++ {
		day := startDay
		for i := 0; i < dayIndex; i++ {
			day = day.Next()
		}
		s.buildDayEvents(dayIndex, day)
	}

	if s.Config.Realtime {
		s.runRealtime(startDay, days, sink)
		return
	}
	s.runBatch(startDay, days, sink)
}

func (s *Simulator) runBatch(startDay models.DayOfWeek, days int, sink OutputDestination) {
	bar := progressbar.Default(int64(days * models.TicksPerDay))

	day := startDay
	for dayIndex := 0; dayIndex < days; dayIndex++ {
		s.beginDay()
		for tick := 0; tick < models.TicksPerDay; tick++ {
			s.processTick(dayIndex, tick, day, sink)
			_ = bar.Add(1)
		}
		s.endDay(dayIndex, day, sink)
		day = day.Next()
	}
}

func (s *Simulator) runRealtime(startDay models.DayOfWeek, days int, sink OutputDestination) {
	total := days * models.TicksPerDay
	processed := 0
	dayIndex := 0
	var done sync.WaitGroup
	done.Add(1)

	s.beginDay()
	var clock *TimeClock
	clock = NewTimeClock(startDay, s.Config.TickInterval(), func(tick int, day models.DayOfWeek) {
		s.processTick(dayIndex, tick, day, sink)
		processed++
		if tick == models.TicksPerDay-1 {
			s.endDay(dayIndex, day, sink)
			dayIndex++
			if processed < total {
				s.beginDay()
			}
		}
		if processed >= total {
			clock.Pause()
			done.Done()
		}
	})
	s.Clock = clock

	// tick 0 fires manually; Play advances from there
	s.processTick(0, 0, startDay, sink)
	processed++
	clock.Play(s.Config.Speed)
	done.Wait()
}

// buildDayEvents schedules the day's facility transitions and persona
// movements onto the queue ahead of playback.
func (s *Simulator) buildDayEvents(dayIndex int, day models.DayOfWeek) {
	for _, facility := range s.Facilities {
		hours, ok := OpenRange(facility, day)
		if !ok {
			continue
		}
		s.EventQueue.Enqueue(&models.Event{
			DayIndex: dayIndex,
			Tick:     tickFor(hours.Open),
			Type:     models.EventFacilityOpen,
			Data:     facility,
		})
		closeTick := models.TicksPerDay - 1
		if !hours.Wraps {
			closeTick = tickFor(hours.Close)
		}
		s.EventQueue.Enqueue(&models.Event{
			DayIndex: dayIndex,
			Tick:     closeTick,
			Type:     models.EventFacilityClose,
			Data:     facility,
		})
	}

	for _, persona := range s.Personas {
		prev := models.NoVisit
		for _, slot := range persona.Schedule {
			tick := tickForHour(slot.StartHour)
			if slot.Location != "" && slot.Location != models.NoVisit {
				s.EventQueue.Enqueue(&models.Event{
					DayIndex: dayIndex,
					Tick:     tick,
					Type:     models.EventPersonaArrive,
					Data:     movement{Persona: persona, Location: slot.Location, From: prev, Reasoning: slot.Reasoning},
				})
			} else if prev != models.NoVisit {
				s.EventQueue.Enqueue(&models.Event{
					DayIndex: dayIndex,
					Tick:     tick,
					Type:     models.EventPersonaDepart,
					Data:     movement{Persona: persona, Location: prev, From: prev},
				})
			}
			prev = slot.Location
		}
		if len(persona.Schedule) > 0 {
			last := persona.Schedule[len(persona.Schedule)-1]
			if last.Location != "" && last.Location != models.NoVisit {
				s.EventQueue.Enqueue(&models.Event{
					DayIndex: dayIndex,
					Tick:     tickForHour(last.EndHour),
					Type:     models.EventPersonaDepart,
					Data:     movement{Persona: persona, Location: last.Location, From: last.Location},
				})
			}
		}
	}

	s.EventQueue.Enqueue(&models.Event{
		DayIndex: dayIndex,
		Tick:     models.TicksPerDay - 1,
		Type:     models.EventDayRollover,
	})
}

type movement struct {
	Persona   *models.Persona
	Location  string
	From      string
	Reasoning string
}

func (s *Simulator) beginDay() {
	s.dayStats = make(map[string]*facilityDayStats, len(s.Facilities))
	for name := range s.Facilities {
		s.dayStats[name] = &facilityDayStats{}
	}
	s.prevLocation = make(map[string]string, len(s.Personas))
}

func (s *Simulator) processTick(dayIndex, tick int, day models.DayOfWeek, sink OutputDestination) {
	for _, event := range s.EventQueue.DequeueDue(dayIndex, tick) {
		s.emitQueuedEvent(event, day, sink)
	}

	snap := Snapshot(s.Personas, s.Facilities, tick, day)
	for name, facility := range s.Facilities {
		occupants := len(snap.Occupants(name))
		stats := s.dayStats[name]
		stats.totalTicks++
		stats.sumOccupied += occupants
		if occupants > stats.peak {
			stats.peak = occupants
		}

		utilization := 0.0
		if facility.Capacity > 0 {
			utilization = float64(occupants) / float64(facility.Capacity)
		}
		s.emit(sink, "occupancy_level_events", OccupancyLevelEvent{
			BaseEvent:    NewBaseEvent("occupancy_level", dayIndex, tick, day),
			FacilityName: name,
			Occupants:    int32(occupants),
			Capacity:     int32(facility.Capacity),
			Utilization:  utilization,
		})
	}

	for _, persona := range s.Personas {
		location, _ := Resolve(persona.Schedule, tick)
		if stats, ok := s.dayStats[location]; ok && s.prevLocation[persona.ID] != location {
			stats.visits++
		}
		s.prevLocation[persona.ID] = location
	}
}

func (s *Simulator) emitQueuedEvent(event *models.Event, day models.DayOfWeek, sink OutputDestination) {
	switch event.Type {
	case models.EventFacilityOpen, models.EventFacilityClose:
		facility, ok := event.Data.(*models.Facility)
		if !ok {
			return
		}
		status := "open"
		if event.Type == models.EventFacilityClose {
			status = "closed"
		}
		s.emit(sink, "facility_status_events", FacilityStatusEvent{
			BaseEvent:    NewBaseEvent("facility_status", event.DayIndex, event.Tick, day),
			FacilityID:   facility.ID,
			FacilityName: facility.Name,
			Status:       status,
			Capacity:     int32(facility.Capacity),
		})
	case models.EventPersonaArrive:
		m, ok := event.Data.(movement)
		if !ok {
			return
		}
		s.emit(sink, "persona_arrival_events", PersonaArrivalEvent{
			BaseEvent:    NewBaseEvent("persona_arrival", event.DayIndex, event.Tick, day),
			PersonaID:    m.Persona.ID,
			PersonaName:  m.Persona.Name,
			FacilityName: m.Location,
			Reasoning:    m.Reasoning,
		})
	case models.EventPersonaDepart:
		m, ok := event.Data.(movement)
		if !ok {
			return
		}
		s.emit(sink, "persona_departure_events", PersonaDepartureEvent{
			BaseEvent:    NewBaseEvent("persona_departure", event.DayIndex, event.Tick, day),
			PersonaID:    m.Persona.ID,
			PersonaName:  m.Persona.Name,
			FacilityName: m.Location,
			NextLocation: models.NoVisit,
		})
	case models.EventDayRollover:
		// endDay handles the summary; nothing to emit here
	}
}

func (s *Simulator) endDay(dayIndex int, day models.DayOfWeek, sink OutputDestination) {
	for name, stats := range s.dayStats {
		average := 0
		if stats.totalTicks > 0 {
			average = (stats.sumOccupied + stats.totalTicks/2) / stats.totalTicks
		}
		s.emit(sink, "day_summary_events", DaySummaryEvent{
			BaseEvent:     NewBaseEvent("day_summary", dayIndex, models.TicksPerDay-1, day),
			FacilityName:  name,
			PeakOccupancy: int32(stats.peak),
			AverageUsage:  int32(average),
			TotalVisits:   int32(stats.visits),
		})
	}
}

func (s *Simulator) emit(sink OutputDestination, topic string, event interface{}) {
	msg, err := json.Marshal(event)
	if err != nil {
		log.Printf("Failed to marshal %s event: %v", topic, err)
		return
	}
	if err := sink.WriteMessage(topic, msg); err != nil {
		log.Printf("Failed to write %s event: %v", topic, err)
	}
}

// tickFor maps a wall-clock value onto the day's tick range. Times
// before the simulated day start clamp to tick 0; times past the end
// (including wrapped closes) clamp to the final tick.
func tickFor(t models.TimeOfDay) int {
	minutes := int(t) - models.DayStartHour*60
	if minutes < 0 {
		return 0
	}
	return models.ClampTick(minutes / models.MinutesPerTick)
}

func tickForHour(hour int) int {
	return models.ClampTick((hour - models.DayStartHour) * 4)
}

// DeriveBaseline sweeps one simulated day and reduces it to the metrics
// snapshot the scenario projector consumes. With no personas loaded the
// result still names every facility, all figures zero.
func (s *Simulator) DeriveBaseline(day models.DayOfWeek) models.BaselineMetrics {
	baseline := models.BaselineMetrics{
		DailyVisitors:       make(map[string]models.FacilityMetrics, len(s.Facilities)),
		PersonaDistribution: make(map[string]int),
	}

	type sweep struct {
		peak int
		sum  int
	}
	perFacility := make(map[string]*sweep, len(s.Facilities))
	for name := range s.Facilities {
		perFacility[name] = &sweep{}
	}

	for tick := 0; tick < models.TicksPerDay; tick++ {
		snap := Snapshot(s.Personas, s.Facilities, tick, day)
		for name, sw := range perFacility {
			occupants := len(snap.Occupants(name))
			sw.sum += occupants
			if occupants > sw.peak {
				sw.peak = occupants
			}
		}

		hour := models.TickHour(tick)
		if hour >= 8 && hour <= 20 && hour%2 == 0 && tick%4 == 0 {
			row := models.HourlyRow{
				Time:  models.TickTime(tick).String(),
				Usage: make(map[string]int, len(s.Facilities)),
			}
			for name := range s.Facilities {
				row.Usage[name] = len(snap.Occupants(name))
			}
			baseline.HourlyUsage = append(baseline.HourlyUsage, row)
		}
	}

	totalUtilization := 0.0
	totalSatisfaction := 0
	for name, sw := range perFacility {
		facility := s.Facilities[name]
		average := (sw.sum + models.TicksPerDay/2) / models.TicksPerDay

		utilization := 0.0
		if facility.Capacity > 0 {
			utilization = float64(sw.peak) / float64(facility.Capacity) * 100
		}
		satisfaction := clampInt(95-int(utilization)/4, 50, 95)

		baseline.DailyVisitors[name] = models.FacilityMetrics{
			Peak:         sw.peak,
			Average:      average,
			Satisfaction: satisfaction,
		}
		totalUtilization += utilization
		totalSatisfaction += satisfaction
	}

	for _, persona := range s.Personas {
		if persona.Archetype != "" {
			baseline.PersonaDistribution[persona.Archetype]++
		}
	}

	if len(perFacility) > 0 {
		baseline.Overall = models.OverallMetrics{
			TotalDailyVisitors:  totalVisitors(baseline.DailyVisitors),
			AverageWaitMinutes:  clampInt(int(totalUtilization)/len(perFacility)/10, 0, 30),
			FacilityUtilization: int(totalUtilization) / len(perFacility),
			UserSatisfaction:    totalSatisfaction / len(perFacility),
		}
	}

	return baseline
}

func totalVisitors(visitors map[string]models.FacilityMetrics) int {
	total := 0
	for _, m := range visitors {
		total += m.Average
	}
	return total
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// String gives a one-line run description for logs.
func (s *Simulator) String() string {
	return fmt.Sprintf("facilitysim: %d facilities, %d personas, %d day(s) from %s",
		len(s.Facilities), len(s.Personas), s.Config.Days, s.Config.StartDay)
}
