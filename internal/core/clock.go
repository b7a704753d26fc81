package core

import "time"

// Clock is a monotonically increasing performance counter.
type Clock interface {
	// Counter returns the current counter value.
	Counter() uint64
	// Frequency returns the number of counter units per second.
	Frequency() uint64
}

// MonotonicClock counts nanoseconds since its creation using the runtime's
// monotonic clock.
type MonotonicClock struct {
	start time.Time
}

// NewMonotonicClock starts a clock at zero.
func NewMonotonicClock() *MonotonicClock {
	return &MonotonicClock{start: time.Now()}
}

func (c *MonotonicClock) Counter() uint64 { return uint64(time.Since(c.start)) }

func (c *MonotonicClock) Frequency() uint64 { return uint64(time.Second) }

// FrameStats describes the duration of one loop iteration.
type FrameStats struct {
	Delta time.Duration
	MSPF  float64
	FPS   float64
}

// Measure converts an elapsed counter span into frame statistics.
func Measure(elapsed, freq uint64) FrameStats {
	if freq == 0 {
		return FrameStats{}
	}
	whole := time.Duration(elapsed/freq) * time.Second
	frac := time.Duration((elapsed % freq) * uint64(time.Second) / freq)
	stats := FrameStats{
		Delta: whole + frac,
		MSPF:  1000 * float64(elapsed) / float64(freq),
	}
	if elapsed > 0 {
		stats.FPS = float64(freq) / float64(elapsed)
	}
	return stats
}

// FrameTimer measures the time between successive Tick calls.
type FrameTimer struct {
	clock Clock
	last  uint64
}

// NewFrameTimer starts measuring from the clock's current counter.
func NewFrameTimer(clock Clock) *FrameTimer {
	return &FrameTimer{clock: clock, last: clock.Counter()}
}

// Tick returns the stats for the span since the previous Tick.
func (t *FrameTimer) Tick() FrameStats {
	now := t.clock.Counter()
	elapsed := now - t.last
	if now < t.last {
		elapsed = 0
	}
	t.last = now
	return Measure(elapsed, t.clock.Frequency())
}
