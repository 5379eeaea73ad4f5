package panes

// Readable is the read side of the store contract: Subscribe calls fn once
// immediately with the current value and again on every change, and returns
// a function that removes the subscription.
type Readable[T any] interface {
	Get() T
	Subscribe(fn func(T)) func()
}

// Writable is a Readable that also accepts new values.
type Writable[T any] interface {
	Readable[T]
	Set(v T)
	Update(fn func(T) T)
}

type storeSub[T any] struct {
	id int
	fn func(T)
}

// Store is a single-threaded observable value. Like everything else in the
// package it must only be used from the frame goroutine.
type Store[T any] struct {
	value T
	subs  []storeSub[T]
	next  int

	// equal suppresses notifications for unchanged values when non-nil.
	equal func(a, b T) bool
	// write, when non-nil, receives Set calls instead of storing directly.
	// The owner feeds the accepted value back through set.
	write func(T)
}

// NewStore returns a writable store holding initial.
func NewStore[T any](initial T) *Store[T] {
	return &Store[T]{value: initial}
}

// newComparableStore returns a store that skips notifications when the value
// does not change.
func newComparableStore[T comparable](initial T) *Store[T] {
	return &Store[T]{value: initial, equal: func(a, b T) bool { return a == b }}
}

// Get returns the current value.
func (s *Store[T]) Get() T { return s.value }

// Subscribe registers fn and calls it with the current value.
func (s *Store[T]) Subscribe(fn func(T)) func() {
	id := s.next
	s.next++
	s.subs = append(s.subs, storeSub[T]{id: id, fn: fn})
	fn(s.value)
	return func() {
		for i, sub := range s.subs {
			if sub.id == id {
				s.subs = append(s.subs[:i], s.subs[i+1:]...)
				return
			}
		}
	}
}

// Set stores v and notifies subscribers. Stores owned by a Position route
// the value through Position.Set instead.
func (s *Store[T]) Set(v T) {
	if s.write != nil {
		s.write(v)
		return
	}
	s.set(v)
}

// Update sets the result of fn applied to the current value.
func (s *Store[T]) Update(fn func(T) T) {
	s.Set(fn(s.value))
}

// Len returns the number of subscribers.
func (s *Store[T]) Len() int { return len(s.subs) }

func (s *Store[T]) set(v T) {
	if s.equal != nil && s.equal(s.value, v) {
		return
	}
	s.value = v
	s.notify()
}

func (s *Store[T]) notify() {
	if len(s.subs) == 0 {
		return
	}
	// Subscribers may unsubscribe while being notified.
	subs := make([]storeSub[T], len(s.subs))
	copy(subs, s.subs)
	for _, sub := range subs {
		sub.fn(s.value)
	}
}

// readOnly hides the write side of a store.
type readOnly[T any] struct{ s *Store[T] }

func (r readOnly[T]) Get() T                      { return r.s.Get() }
func (r readOnly[T]) Subscribe(fn func(T)) func() { return r.s.Subscribe(fn) }
