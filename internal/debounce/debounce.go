// Package debounce collapses bursts of trigger signals into a single call
// that runs once the signals have been quiet for a fixed delay.
package debounce

import (
	"sync"
	"time"
)

// Debouncer runs fn after delay has elapsed since the last Trigger.
// Every Trigger cancels the pending call and schedules a new one.
// It is safe for concurrent use; fn runs on its own goroutine.
type Debouncer struct {
	delay time.Duration
	fn    func()

	mu    sync.Mutex
	timer *time.Timer
	gen   uint64
}

// New creates a Debouncer. A non-positive delay still defers fn to a timer
// goroutine but fires as soon as possible.
func New(delay time.Duration, fn func()) *Debouncer {
	return &Debouncer{delay: max(delay, 0), fn: fn}
}

// Trigger schedules fn, replacing any pending invocation.
func (d *Debouncer) Trigger() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}
	d.gen++
	gen := d.gen
	d.timer = time.AfterFunc(d.delay, func() { d.fire(gen) })
}

// Cancel drops the pending invocation, if any, and reports whether one was
// pending.
func (d *Debouncer) Cancel() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.cancelLocked()
}

// Flush runs a pending invocation immediately on the calling goroutine.
// It reports whether anything was pending.
func (d *Debouncer) Flush() bool {
	d.mu.Lock()
	pending := d.cancelLocked()
	d.mu.Unlock()

	if pending {
		d.fn()
	}
	return pending
}

func (d *Debouncer) cancelLocked() bool {
	if d.timer == nil {
		return false
	}
	d.timer.Stop()
	d.timer = nil
	// a timer that already fired but has not taken the lock sees a stale gen
	d.gen++
	return true
}

func (d *Debouncer) fire(gen uint64) {
	d.mu.Lock()
	if gen != d.gen {
		d.mu.Unlock()
		return
	}
	d.timer = nil
	d.mu.Unlock()

	d.fn()
}
