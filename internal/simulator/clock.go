package simulator

import (
	"sync"
	"time"

	"github.com/suhlee/facilitysim/internal/models"
)

// TimeClock holds the simulated instant: a tick in [0, TicksPerDay) and
// a day of week. It is long-lived for the session and owns no data
// beyond that pair; states are Idle and Playing only.
type TimeClock struct {
	mu      sync.Mutex
	tick    int
	day     models.DayOfWeek
	playing bool
	stop    chan struct{}

	baseInterval time.Duration
	onTick       func(tick int, day models.DayOfWeek)
}

// NewTimeClock starts Idle at tick 0 of the given day. onTick, if
// non-nil, fires after every automatic advance while Playing.
func NewTimeClock(day models.DayOfWeek, baseInterval time.Duration, onTick func(int, models.DayOfWeek)) *TimeClock {
	if baseInterval <= 0 {
		baseInterval = time.Second
	}
	return &TimeClock{day: day, baseInterval: baseInterval, onTick: onTick}
}

// Now returns the current (tick, day) pair.
func (c *TimeClock) Now() (int, models.DayOfWeek) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.tick, c.day
}

// Advance moves the clock forward n ticks. Wrapping past the end of the
// day resets the tick and cycles the day of week. Manual advance is
// valid whether Idle or Playing.
func (c *TimeClock) Advance(n int) {
	if n <= 0 {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := 0; i < n; i++ {
		c.tick++
		if c.tick == models.TicksPerDay {
			c.tick = 0
			c.day = c.day.Next()
		}
	}
}

// SetTick seeks directly, clamping out-of-range values rather than
// erroring; scrubbing controls feed this.
func (c *TimeClock) SetTick(tick int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.tick = models.ClampTick(tick)
}

// SetDay seeks to a day of week; unknown values normalize to Monday.
func (c *TimeClock) SetDay(day models.DayOfWeek) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if day < models.Monday || day > models.Sunday {
		day = models.Monday
	}
	c.day = day
}

// Playing reports whether automatic ticking is active.
func (c *TimeClock) Playing() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.playing
}

// Play begins automatic advancing at baseInterval / speed. Calling Play
// while already Playing is a no-op.
func (c *TimeClock) Play(speed float64) {
	c.mu.Lock()
	if c.playing {
		c.mu.Unlock()
		return
	}
	if speed <= 0 {
		speed = 1
	}
	interval := time.Duration(float64(c.baseInterval) / speed)
	c.playing = true
	c.stop = make(chan struct{})
	stop := c.stop
	c.mu.Unlock()

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-stop:
				return
			case <-ticker.C:
				c.Advance(1)
				if c.onTick != nil {
					tick, day := c.Now()
					c.onTick(tick, day)
				}
			}
		}
	}()
}

// Pause stops scheduling further automatic advances. There is no
// in-flight work to abort; the next queued tick simply never fires.
func (c *TimeClock) Pause() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.playing {
		return
	}
	c.playing = false
	close(c.stop)
	c.stop = nil
}
