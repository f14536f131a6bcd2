// Package debounce provides a trailing-edge value stabilizer. A Debouncer
// forwards a value only after it stayed unchanged for the whole delay; every
// newer value cancels and reschedules the pending one.
package debounce

import (
	"sync"
	"time"
)

// Timer is the part of *time.Timer a Debouncer needs.
type Timer interface {
	Stop() bool
}

// Clock schedules callbacks. The zero configuration uses the wall clock.
type Clock interface {
	AfterFunc(d time.Duration, f func()) Timer
}

type wallClock struct{}

func (wallClock) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// Option configures a Debouncer.
type Option func(*options)

type options struct {
	clock Clock
}

// WithClock replaces the wall clock, typically with a ManualClock in tests.
func WithClock(c Clock) Option {
	return func(o *options) {
		if c != nil {
			o.clock = c
		}
	}
}

// Debouncer delays values of type T until they settle. It is safe for
// concurrent use. The callback runs on the clock's goroutine, never while
// the Debouncer's lock is held.
type Debouncer[T any] struct {
	delay time.Duration
	fn    func(T)
	clock Clock

	mu         sync.Mutex
	gen        uint64
	timer      Timer
	pending    T
	hasPending bool
	settled    T
	hasSettled bool
}

// New returns a Debouncer that calls fn with the last value passed to Set
// once delay has elapsed without another Set. fn may be nil when only
// Settled is read.
func New[T any](delay time.Duration, fn func(T), opts ...Option) *Debouncer[T] {
	o := options{clock: wallClock{}}
	for _, opt := range opts {
		opt(&o)
	}
	return &Debouncer[T]{delay: delay, fn: fn, clock: o.clock}
}

// Set records v as the newest input and restarts the delay.
func (d *Debouncer[T]) Set(v T) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.gen++
	gen := d.gen
	if d.timer != nil {
		d.timer.Stop()
	}
	d.pending, d.hasPending = v, true
	d.timer = d.clock.AfterFunc(d.delay, func() { d.fire(gen) })
}

// Cancel drops the pending value, if any. The settled value is kept.
func (d *Debouncer[T]) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.gen++
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	var zero T
	d.pending, d.hasPending = zero, false
}

// Pending reports whether a value is waiting for the delay to elapse.
func (d *Debouncer[T]) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.hasPending
}

// Settled returns the last value that survived the delay.
func (d *Debouncer[T]) Settled() (T, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.settled, d.hasSettled
}

func (d *Debouncer[T]) fire(gen uint64) {
	d.mu.Lock()
	// A stopped timer may still fire if it raced with Set or Cancel.
	if gen != d.gen || !d.hasPending {
		d.mu.Unlock()
		return
	}
	v := d.pending
	var zero T
	d.pending, d.hasPending = zero, false
	d.settled, d.hasSettled = v, true
	d.timer = nil
	fn := d.fn
	d.mu.Unlock()

	if fn != nil {
		fn(v)
	}
}
