package share

import "sync"

// Flag is a single-slot mailbox for one control variable shared between the
// serving task (writer) and the control task (reader). Writes overwrite; there
// is no queue and no blocking on either side. The most recent completed Put
// wins, and intermediate values may be coalesced away.
type Flag[T any] struct {
	mu    sync.Mutex
	value T
	rest  T
}

// New constructs a flag whose rest value equals the zero value of T.
func New[T any](initial T) *Flag[T] {
	return &Flag[T]{value: initial}
}

// NewWithRest constructs a flag that Take resets to rest instead of the zero
// value. Used for one-shot triggers with a non-zero idle state.
func NewWithRest[T any](initial, rest T) *Flag[T] {
	return &Flag[T]{value: initial, rest: rest}
}

// Put overwrites the current value. The lock is held only across the single
// assignment so the reader is never stalled behind handler work.
func (f *Flag[T]) Put(v T) {
	f.mu.Lock()
	f.value = v
	f.mu.Unlock()
}

// Get returns the current value without consuming it. Safe to call on every
// poll tick; repeated reads of an unchanged flag return the same value.
func (f *Flag[T]) Get() T {
	f.mu.Lock()
	v := f.value
	f.mu.Unlock()
	return v
}

// Take returns the current value and resets the slot to its rest value, so a
// one-shot request is observed by at most one poll tick.
func (f *Flag[T]) Take() T {
	f.mu.Lock()
	v := f.value
	f.value = f.rest
	f.mu.Unlock()
	return v
}
