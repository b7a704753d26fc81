package core

import "time"

// DefaultTickInterval is the simulation period used when none is configured.
const DefaultTickInterval = 50 * time.Millisecond

// FixedStep paces simulation ticks against wall-clock deltas. It counts the
// remaining time down and fires once when the counter reaches zero. Overshoot
// is dropped: a single Advance never fires more than once, however large dt is.
type FixedStep struct {
	interval  time.Duration
	remaining time.Duration
}

// NewFixedStep constructs a FixedStep controller firing every interval.
func NewFixedStep(interval time.Duration) *FixedStep {
	fs := &FixedStep{}
	fs.SetInterval(interval)
	fs.remaining = fs.interval
	return fs
}

// SetInterval changes the tick period. The pending countdown is left alone.
func (f *FixedStep) SetInterval(interval time.Duration) {
	if interval <= 0 {
		interval = DefaultTickInterval
	}
	f.interval = interval
}

// SetTPS changes the tick rate to tps ticks per second.
func (f *FixedStep) SetTPS(tps int) {
	if tps <= 0 {
		f.SetInterval(0)
		return
	}
	f.SetInterval(time.Second / time.Duration(tps))
}

// Interval returns the tick period.
func (f *FixedStep) Interval() time.Duration { return f.interval }

// Remaining returns the time left until the next tick.
func (f *FixedStep) Remaining() time.Duration { return f.remaining }

// Reset restarts the countdown from a full interval.
func (f *FixedStep) Reset() { f.remaining = f.interval }

// Advance consumes dt and reports whether the simulation should step.
func (f *FixedStep) Advance(dt time.Duration) bool {
	f.remaining -= dt
	if f.remaining <= 0 {
		f.remaining = f.interval
		return true
	}
	return false
}
