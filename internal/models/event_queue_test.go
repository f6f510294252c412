package models

import "testing"

func TestEventQueueOrdering(t *testing.T) {
	q := NewEventQueue()
	q.Enqueue(&Event{DayIndex: 1, Tick: 0, Type: EventFacilityOpen})
	q.Enqueue(&Event{DayIndex: 0, Tick: 40, Type: EventPersonaDepart})
	q.Enqueue(&Event{DayIndex: 0, Tick: 8, Type: EventPersonaArrive})

	first := q.Dequeue()
	if first.DayIndex != 0 || first.Tick != 8 {
		t.Fatalf("first = day %d tick %d", first.DayIndex, first.Tick)
	}
	second := q.Dequeue()
	if second.DayIndex != 0 || second.Tick != 40 {
		t.Fatalf("second = day %d tick %d", second.DayIndex, second.Tick)
	}
	third := q.Dequeue()
	if third.DayIndex != 1 {
		t.Fatalf("third = day %d", third.DayIndex)
	}
	if q.Dequeue() != nil {
		t.Fatal("queue should be empty")
	}
}

func TestEventQueueDequeueDue(t *testing.T) {
	q := NewEventQueue()
	for _, tick := range []int{10, 5, 20, 15} {
		q.Enqueue(&Event{DayIndex: 0, Tick: tick})
	}
	q.Enqueue(&Event{DayIndex: 1, Tick: 0})

	due := q.DequeueDue(0, 15)
	if len(due) != 3 {
		t.Fatalf("due = %d events, want 3", len(due))
	}
	for i := 1; i < len(due); i++ {
		if due[i].Tick < due[i-1].Tick {
			t.Fatal("due events out of order")
		}
	}
	if q.Len() != 2 {
		t.Fatalf("remaining = %d, want 2", q.Len())
	}

	rest := q.DequeueDue(1, TicksPerDay-1)
	if len(rest) != 2 {
		t.Fatalf("rest = %d events, want 2", len(rest))
	}
	if !q.IsEmpty() {
		t.Fatal("queue should be empty")
	}
}
