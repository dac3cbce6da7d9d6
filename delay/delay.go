// Package delay provides the one-shot countdown used to hold the game in a
// timed transition, such as fading the music out before the window closes.
package delay

import "time"

// Delay tracks elapsed against target duration for a single timed transition.
// The zero value is not usable; create one with New or NewWithClock.
type Delay struct {
	now      func() time.Time
	start    time.Time
	duration time.Duration
	active   bool
}

// New creates an inactive Delay driven by the wall clock.
func New() *Delay {
	return NewWithClock(time.Now)
}

// NewWithClock creates an inactive Delay that reads time from now.
func NewWithClock(now func() time.Time) *Delay {
	return &Delay{now: now}
}

// Start arms the delay for duration, restarting it if it was already running.
func (d *Delay) Start(duration time.Duration) {
	d.start = d.now()
	d.duration = duration
	d.active = true
}

// IsActive reports whether the delay has been started and not yet reset.
func (d *Delay) IsActive() bool {
	return d.active
}

// IsDone reports whether an active delay has run for its full duration.
func (d *Delay) IsDone() bool {
	return d.active && d.Elapsed() >= d.duration
}

// Elapsed returns the time since Start, or zero when inactive.
func (d *Delay) Elapsed() time.Duration {
	if !d.active {
		return 0
	}
	return d.now().Sub(d.start)
}

// Duration returns the target duration passed to Start.
func (d *Delay) Duration() time.Duration {
	return d.duration
}

// Reset returns the delay to the inactive state.
func (d *Delay) Reset() {
	d.active = false
	d.start = time.Time{}
	d.duration = 0
}
