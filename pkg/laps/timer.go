// Package laps keeps lap times by watching for finish-line crossings.
package laps

import (
	"log"
	"time"

	"github.com/golangdaddy/circuit/pkg/geom"
)

// Clock supplies timestamps for lap timing.
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a function to Clock.
type ClockFunc func() time.Time

// Now implements Clock.
func (f ClockFunc) Now() time.Time {
	return f()
}

// SystemClock reads the wall clock.
var SystemClock Clock = ClockFunc(time.Now)

// State is the timer's phase.
type State int

const (
	// NotStarted means the car has not yet crossed the line.
	NotStarted State = iota
	// Running means a lap is being timed.
	Running
)

// Event describes what an observation did to the timer.
type Event int

const (
	// EventNone means no crossing happened.
	EventNone Event = iota
	// EventStart is the first crossing, which starts the clock.
	EventStart
	// EventLap is a completed lap.
	EventLap
	// EventRejected is a crossing whose lap time came out negative. The
	// lap is not counted and timing restarts.
	EventRejected
)

// Timer tracks the current lap start along with last and best lap times.
type Timer struct {
	clock Clock

	state    State
	start    time.Time
	last     time.Duration
	best     time.Duration
	hasLast  bool
	hasBest  bool
	complete int
}

// NewTimer creates a timer reading from clock.
func NewTimer(clock Clock) *Timer {
	if clock == nil {
		clock = SystemClock
	}
	return &Timer{clock: clock}
}

// Crossed reports whether a car moving at speed has just entered gate.
// prev is the car's footprint on the previous tick; a nil prev counts as
// outside the gate. Reversing over the line never counts.
func Crossed(gate geom.Quad, cur geom.Rect, prev *geom.Rect, speed float64) bool {
	if speed <= 0 || !gate.OverlapsRect(cur) {
		return false
	}
	return prev == nil || !gate.OverlapsRect(*prev)
}

// Observe checks one tick for a crossing and updates the timer.
func (t *Timer) Observe(gate geom.Quad, cur geom.Rect, prev *geom.Rect, speed float64) Event {
	if !Crossed(gate, cur, prev, speed) {
		return EventNone
	}
	return t.Cross()
}

// Cross records a finish-line crossing at the current time.
func (t *Timer) Cross() Event {
	now := t.clock.Now()

	if t.state == NotStarted {
		t.state = Running
		t.start = now
		log.Printf("Timing started")
		return EventStart
	}

	elapsed := now.Sub(t.start)
	t.start = now
	if elapsed < 0 {
		log.Printf("Discarding lap with negative time %v", elapsed)
		return EventRejected
	}

	t.last, t.hasLast = elapsed, true
	if !t.hasBest || elapsed < t.best {
		t.best, t.hasBest = elapsed, true
	}
	t.complete++
	log.Printf("Lap %d: %.2f s (best %.2f s)", t.complete, elapsed.Seconds(), t.best.Seconds())
	return EventLap
}

// State returns the current phase.
func (t *Timer) State() State {
	return t.state
}

// Start returns when the current lap began, if timing has started.
func (t *Timer) Start() (time.Time, bool) {
	return t.start, t.state == Running
}

// Current returns the time spent on the lap in progress.
func (t *Timer) Current() (time.Duration, bool) {
	if t.state != Running {
		return 0, false
	}
	return t.clock.Now().Sub(t.start), true
}

// Last returns the most recent lap time.
func (t *Timer) Last() (time.Duration, bool) {
	return t.last, t.hasLast
}

// Best returns the fastest lap time.
func (t *Timer) Best() (time.Duration, bool) {
	return t.best, t.hasBest
}

// Laps returns the number of completed laps.
func (t *Timer) Laps() int {
	return t.complete
}
