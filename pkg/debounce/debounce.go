// Package debounce delays a stream of values until input goes quiet.
package debounce

import (
	"sync"
	"time"
)

// DefaultDelay is the quiet period used by the listing view's search input.
const DefaultDelay = 500 * time.Millisecond

// Debouncer emits the most recent pushed value once no new value has arrived
// for the configured delay. A value superseded by a later Push or a Cancel is
// never emitted, even if its timer already fired.
type Debouncer[T any] struct {
	mu    sync.Mutex
	delay time.Duration
	emit  func(T)
	timer *time.Timer
	gen   uint64
}

// New creates a Debouncer that calls emit on its own goroutine after each quiet period.
// A non-positive delay uses DefaultDelay.
func New[T any](delay time.Duration, emit func(T)) *Debouncer[T] {
	if delay <= 0 {
		delay = DefaultDelay
	}
	return &Debouncer[T]{
		delay: delay,
		emit:  emit,
	}
}

// Push records v as the latest value and restarts the quiet period.
func (d *Debouncer[T]) Push(v T) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.stop()
	gen := d.gen
	d.timer = time.AfterFunc(d.delay, func() {
		d.mu.Lock()
		if gen != d.gen {
			d.mu.Unlock()
			return
		}
		d.timer = nil
		d.mu.Unlock()

		d.emit(v)
	})
}

// Cancel drops any pending value.
func (d *Debouncer[T]) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.stop()
}

// Pending reports whether a value is waiting for its quiet period to elapse.
func (d *Debouncer[T]) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.timer != nil
}

// Delay returns the configured quiet period.
func (d *Debouncer[T]) Delay() time.Duration {
	return d.delay
}

// stop invalidates the current timer. Callers hold mu.
func (d *Debouncer[T]) stop() {
	d.gen++
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
