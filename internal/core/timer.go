package core

import "time"

// Debouncer coalesces bursts of triggers into a single firing once the
// triggers have been quiet for the configured delay. Callers pass the current
// time explicitly so front-ends can drive it from their own frame loop.
type Debouncer struct {
	delay    time.Duration
	deadline time.Time
	pending  bool
}

// NewDebouncer constructs a Debouncer. Non-positive delays fire on the next
// Ready call after a trigger.
func NewDebouncer(delay time.Duration) *Debouncer {
	if delay < 0 {
		delay = 0
	}
	return &Debouncer{delay: delay}
}

// Delay reports the quiet period.
func (d *Debouncer) Delay() time.Duration { return d.delay }

// Trigger records activity at now and pushes the deadline back.
func (d *Debouncer) Trigger(now time.Time) {
	d.deadline = now.Add(d.delay)
	d.pending = true
}

// Pending reports whether a firing is outstanding.
func (d *Debouncer) Pending() bool { return d.pending }

// Ready reports whether the debouncer fires at now. It returns true at most
// once per burst of triggers.
func (d *Debouncer) Ready(now time.Time) bool {
	if !d.pending || now.Before(d.deadline) {
		return false
	}
	d.pending = false
	return true
}
