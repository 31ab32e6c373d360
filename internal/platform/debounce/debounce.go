// Package debounce provides a reusable debounced value. A rapid sequence
// of Set calls produces exactly one fire with the final value after the
// quiescence window elapses; every Set cancels the pending fire.
package debounce

import (
	"sync"
	"time"
)

// DefaultWindow is the quiescence window used when none is configured.
const DefaultWindow = 500 * time.Millisecond

// Value debounces updates of type T. The fire callback runs on a timer
// goroutine once no Set has arrived for a full window.
type Value[T any] struct {
	mu      sync.Mutex
	window  time.Duration
	fire    func(T)
	timer   *time.Timer
	pending T
	gen     uint64
}

// New constructs a Value firing fn after window of quiescence.
func New[T any](window time.Duration, fn func(T)) *Value[T] {
	if window <= 0 {
		window = DefaultWindow
	}
	return &Value[T]{window: window, fire: fn}
}

// Set records the latest value and restarts the quiescence window.
func (v *Value[T]) Set(value T) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.pending = value
	v.gen++
	gen := v.gen
	if v.timer != nil {
		v.timer.Stop()
	}
	v.timer = time.AfterFunc(v.window, func() {
		v.expire(gen)
	})
}

// Flush fires the pending value immediately, if any is waiting.
func (v *Value[T]) Flush() {
	v.mu.Lock()
	if v.timer == nil {
		v.mu.Unlock()
		return
	}
	v.timer.Stop()
	v.timer = nil
	value := v.pending
	v.mu.Unlock()
	v.fire(value)
}

// Cancel discards any pending value without firing.
func (v *Value[T]) Cancel() {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.timer != nil {
		v.timer.Stop()
		v.timer = nil
	}
	v.gen++
}

func (v *Value[T]) expire(gen uint64) {
	v.mu.Lock()
	// A Set or Cancel after this timer was armed supersedes it.
	if gen != v.gen || v.timer == nil {
		v.mu.Unlock()
		return
	}
	v.timer = nil
	value := v.pending
	v.mu.Unlock()
	v.fire(value)
}
