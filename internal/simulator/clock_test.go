package simulator

import (
	"sync"
	"testing"
	"time"

	"github.com/suhlee/facilitysim/internal/models"
)

func TestClockAdvanceWrapsDay(t *testing.T) {
	c := NewTimeClock(models.Sunday, time.Second, nil)
	c.SetTick(models.TicksPerDay - 1)

	c.Advance(1)

	tick, day := c.Now()
	if tick != 0 {
		t.Errorf("tick = %d, want 0", tick)
	}
	if day != models.Monday {
		t.Errorf("day = %v, want Monday (cyclic)", day)
	}
}

func TestClockAdvanceMultiple(t *testing.T) {
	c := NewTimeClock(models.Monday, time.Second, nil)

	c.Advance(models.TicksPerDay + 10)

	tick, day := c.Now()
	if tick != 10 || day != models.Tuesday {
		t.Errorf("got tick %d day %v, want 10 Tuesday", tick, day)
	}
}

func TestClockSettersClamp(t *testing.T) {
	c := NewTimeClock(models.Monday, time.Second, nil)

	c.SetTick(-3)
	if tick, _ := c.Now(); tick != 0 {
		t.Errorf("negative tick clamps to 0, got %d", tick)
	}
	c.SetTick(1000)
	if tick, _ := c.Now(); tick != models.TicksPerDay-1 {
		t.Errorf("oversized tick clamps to last, got %d", tick)
	}

	c.SetDay(models.DayOfWeek(99))
	if _, day := c.Now(); day != models.Monday {
		t.Errorf("unknown day normalizes to Monday, got %v", day)
	}
}

func TestClockPlayPause(t *testing.T) {
	var mu sync.Mutex
	fired := 0
	done := make(chan struct{})

	var c *TimeClock
	c = NewTimeClock(models.Monday, time.Millisecond, func(tick int, day models.DayOfWeek) {
		mu.Lock()
		fired++
		n := fired
		mu.Unlock()
		if n == 3 {
			close(done)
		}
	})

	c.Play(1)
	if !c.Playing() {
		t.Fatal("clock should be playing")
	}
	c.Play(1) // second Play is a no-op

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("clock never ticked")
	}

	c.Pause()
	if c.Playing() {
		t.Fatal("clock should be paused")
	}
	c.Pause() // pausing twice is safe

	mu.Lock()
	after := fired
	mu.Unlock()
	time.Sleep(20 * time.Millisecond)
	mu.Lock()
	later := fired
	mu.Unlock()
	if later > after+1 {
		t.Errorf("ticks kept firing after pause: %d -> %d", after, later)
	}

	if tick, _ := c.Now(); tick < 3 {
		t.Errorf("tick = %d, want at least 3", tick)
	}
}
