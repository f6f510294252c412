package simulator

import (
	"fmt"
	"log"

	"github.com/suhlee/facilitysim/internal/models"
	"github.com/xitongsys/parquet-go/schema"
)

// BaseEvent is the common structure for all events
type BaseEvent struct {
	Timestamp int64  `json:"timestamp" parquet:"name=timestamp,type=INT64"`
	EventType string `json:"eventType" parquet:"name=eventType,type=BYTE_ARRAY,convertedtype=UTF8"`
	Day       string `json:"day" parquet:"name=day,type=BYTE_ARRAY,convertedtype=UTF8"`
	Tick      int32  `json:"tick" parquet:"name=tick,type=INT32"`
	Clock     string `json:"clock" parquet:"name=clock,type=BYTE_ARRAY,convertedtype=UTF8"`
}

// FacilityStatusEvent represents a facility opening or closing
type FacilityStatusEvent struct {
	BaseEvent
	FacilityID   string `json:"facilityId" parquet:"name=facilityId,type=BYTE_ARRAY,convertedtype=UTF8"`
	FacilityName string `json:"facilityName" parquet:"name=facilityName,type=BYTE_ARRAY,convertedtype=UTF8"`
	Status       string `json:"status" parquet:"name=status,type=BYTE_ARRAY,convertedtype=UTF8"`
	Capacity     int32  `json:"capacity" parquet:"name=capacity,type=INT32"`
}

// PersonaArrivalEvent represents a persona entering a facility
type PersonaArrivalEvent struct {
	BaseEvent
	PersonaID    string `json:"personaId" parquet:"name=personaId,type=BYTE_ARRAY,convertedtype=UTF8"`
	PersonaName  string `json:"personaName" parquet:"name=personaName,type=BYTE_ARRAY,convertedtype=UTF8"`
	FacilityName string `json:"facilityName" parquet:"name=facilityName,type=BYTE_ARRAY,convertedtype=UTF8"`
	Reasoning    string `json:"reasoning,omitempty" parquet:"name=reasoning,type=BYTE_ARRAY,convertedtype=UTF8,repetitiontype=OPTIONAL"`
}

// PersonaDepartureEvent represents a persona leaving a facility
type PersonaDepartureEvent struct {
	BaseEvent
	PersonaID    string `json:"personaId" parquet:"name=personaId,type=BYTE_ARRAY,convertedtype=UTF8"`
	PersonaName  string `json:"personaName" parquet:"name=personaName,type=BYTE_ARRAY,convertedtype=UTF8"`
	FacilityName string `json:"facilityName" parquet:"name=facilityName,type=BYTE_ARRAY,convertedtype=UTF8"`
	NextLocation string `json:"nextLocation" parquet:"name=nextLocation,type=BYTE_ARRAY,convertedtype=UTF8"`
	Reason       string `json:"reason,omitempty" parquet:"name=reason,type=BYTE_ARRAY,convertedtype=UTF8,repetitiontype=OPTIONAL"`
}

// OccupancyLevelEvent represents a facility headcount at one tick
type OccupancyLevelEvent struct {
	BaseEvent
	FacilityName string  `json:"facilityName" parquet:"name=facilityName,type=BYTE_ARRAY,convertedtype=UTF8"`
	Occupants    int32   `json:"occupants" parquet:"name=occupants,type=INT32"`
	Capacity     int32   `json:"capacity" parquet:"name=capacity,type=INT32"`
	Utilization  float64 `json:"utilization" parquet:"name=utilization,type=DOUBLE"`
}

// DaySummaryEvent represents one facility's totals at end of day
type DaySummaryEvent struct {
	BaseEvent
	FacilityName  string `json:"facilityName" parquet:"name=facilityName,type=BYTE_ARRAY,convertedtype=UTF8"`
	PeakOccupancy int32  `json:"peakOccupancy" parquet:"name=peakOccupancy,type=INT32"`
	AverageUsage  int32  `json:"averageUsage" parquet:"name=averageUsage,type=INT32"`
	TotalVisits   int32  `json:"totalVisits" parquet:"name=totalVisits,type=INT32"`
}

func GetSchema(eventType string) (*schema.SchemaHandler, error) {
	var sh *schema.SchemaHandler
	var err error

	switch eventType {
	case "facility_status_events":
		sh, err = schema.NewSchemaHandlerFromStruct(new(FacilityStatusEvent))
	case "persona_arrival_events":
		sh, err = schema.NewSchemaHandlerFromStruct(new(PersonaArrivalEvent))
	case "persona_departure_events":
		sh, err = schema.NewSchemaHandlerFromStruct(new(PersonaDepartureEvent))
	case "occupancy_level_events":
		sh, err = schema.NewSchemaHandlerFromStruct(new(OccupancyLevelEvent))
	case "day_summary_events":
		sh, err = schema.NewSchemaHandlerFromStruct(new(DaySummaryEvent))
	default:
		return nil, fmt.Errorf("unknown event type: %s", eventType)
	}

	if err != nil {
		log.Printf("Error creating schema for %s: %v", eventType, err)
		return nil, fmt.Errorf("error creating schema for %s: %w", eventType, err)
	}

	return sh, nil
}

func NewBaseEvent(eventType string, dayIndex int, tick int, day models.DayOfWeek) BaseEvent {
	// synthetic timeline: seconds since the start of day zero, one day
	// per 86400 regardless of the real clock
	seconds := int64(dayIndex)*86400 + int64(models.TickTime(tick))*60
	return BaseEvent{
		Timestamp: seconds,
		EventType: eventType,
		Day:       day.String(),
		Tick:      int32(tick),
		Clock:     models.TickTime(tick).String(),
	}
}
