package sim

// Timer is a repeating countdown measured in ticks. It never pauses or
// resets; each firing carries over into the next period.
type Timer struct {
	Period  int
	elapsed int
}

// NewTimer creates a timer that fires every period ticks (minimum 1).
func NewTimer(period int) Timer {
	if period < 1 {
		period = 1
	}
	return Timer{Period: period}
}

// Tick advances the timer by one tick and reports whether it fired.
func (t *Timer) Tick() bool {
	t.elapsed++
	if t.elapsed >= t.Period {
		t.elapsed -= t.Period
		return true
	}
	return false
}

// Elapsed returns ticks since the last firing.
func (t Timer) Elapsed() int {
	return t.elapsed
}
