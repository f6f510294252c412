package models

import (
	"container/heap"
	"sync"
)

const (
	EventFacilityOpen  = "FacilityOpen"
	EventFacilityClose = "FacilityClose"
	EventPersonaArrive = "PersonaArrive"
	EventPersonaDepart = "PersonaDepart"
	EventDayRollover   = "DayRollover"
)

// Event is a simulation event scheduled for a tick of a given run day.
type Event struct {
	DayIndex int // 0-based day within the run, orders events across midnights
	Tick     int
	Type     string
	Data     interface{}
}

func (e *Event) before(other *Event) bool {
	if e.DayIndex != other.DayIndex {
		return e.DayIndex < other.DayIndex
	}
	return e.Tick < other.Tick
}

// EventQueue is a priority queue of events ordered by (day, tick).
type EventQueue struct {
	events []*Event
	mutex  sync.Mutex
}

// eventHeap implements heap.Interface and holds Events
type eventHeap []*Event

func (h eventHeap) Len() int           { return len(h) }
func (h eventHeap) Less(i, j int) bool { return h[i].before(h[j]) }
func (h eventHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }

func (h *eventHeap) Push(x interface{}) {
	*h = append(*h, x.(*Event))
}

func (h *eventHeap) Pop() interface{} {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[0 : n-1]
	return x
}

// NewEventQueue creates a new EventQueue
func NewEventQueue() *EventQueue {
	return &EventQueue{events: make([]*Event, 0)}
}

// Enqueue adds an event to the queue
func (eq *EventQueue) Enqueue(event *Event) {
	eq.mutex.Lock()
	defer eq.mutex.Unlock()
	heap.Push((*eventHeap)(&eq.events), event)
}

// Dequeue removes and returns the earliest event from the queue
func (eq *EventQueue) Dequeue() *Event {
	eq.mutex.Lock()
	defer eq.mutex.Unlock()
	if len(eq.events) == 0 {
		return nil
	}
	return heap.Pop((*eventHeap)(&eq.events)).(*Event)
}

// Peek returns the earliest event without removing it
func (eq *EventQueue) Peek() *Event {
	eq.mutex.Lock()
	defer eq.mutex.Unlock()
	if len(eq.events) == 0 {
		return nil
	}
	return eq.events[0]
}

// IsEmpty returns true if the queue is empty
func (eq *EventQueue) IsEmpty() bool {
	eq.mutex.Lock()
	defer eq.mutex.Unlock()
	return len(eq.events) == 0
}

// Len returns the number of events in the queue
func (eq *EventQueue) Len() int {
	eq.mutex.Lock()
	defer eq.mutex.Unlock()
	return len(eq.events)
}

// DequeueDue drains every event scheduled at or before (dayIndex, tick),
// earliest first.
func (eq *EventQueue) DequeueDue(dayIndex, tick int) []*Event {
	eq.mutex.Lock()
	defer eq.mutex.Unlock()

	cutoff := &Event{DayIndex: dayIndex, Tick: tick + 1}
	var due []*Event
	for len(eq.events) > 0 && eq.events[0].before(cutoff) {
		due = append(due, heap.Pop((*eventHeap)(&eq.events)).(*Event))
	}
	return due
}
