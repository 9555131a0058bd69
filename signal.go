package reactivity

import "github.com/AnatoleLucet/reactivity/internal"

// Signal is an observable value of type T.
type Signal[T any] struct {
	signal *internal.Signal
}

// NewSignal creates a signal. Without an initial value the signal is unset:
// it reads as the zero value of T and its first Set always notifies.
func NewSignal[T any](initial ...T) *Signal[T] {
	value := internal.Unset
	if len(initial) > 0 {
		value = initial[0]
	}

	return &Signal[T]{
		internal.NewSignal(value),
	}
}

func (s *Signal[T]) signalNode() *internal.Signal { return s.signal }

// WithEquals replaces the change detection used by Set.
// The default treats two values as equal only when they are identical.
func (s *Signal[T]) WithEquals(fn func(a, b T) bool) *Signal[T] {
	if fn == nil {
		s.signal.SetEqual(nil)
		return s
	}

	s.signal.SetEqual(func(a, b any) bool {
		// an unset signal is never equal to a written value
		if internal.IsUnset(a) || internal.IsUnset(b) {
			return internal.Identical(a, b)
		}

		return fn(as[T](a), as[T](b))
	})
	return s
}

// WithLabel names the signal for observers.
func (s *Signal[T]) WithLabel(label string) *Signal[T] {
	s.signal.SetLabel(label)
	return s
}

// ID is unique across all signals and reactives of the process.
func (s *Signal[T]) ID() uint64 {
	return s.signal.ID()
}

// Get returns the current value, subscribing the active reactive if any.
func (s *Signal[T]) Get() T {
	return as[T](s.signal.Read())
}

// Peek returns the current value without subscribing anything.
func (s *Signal[T]) Peek() T {
	return as[T](s.signal.Value())
}

// Set writes v. If v is identical to the current value nothing happens,
// otherwise every subscriber is re-run before Set returns.
// Set returns the value held once all subscribers ran.
func (s *Signal[T]) Set(v T) T {
	return as[T](s.signal.Write(v))
}

// Compute sets the signal to fn applied to its current value.
func (s *Signal[T]) Compute(fn func(T) T) T {
	return s.Set(fn(s.Peek()))
}

// Add subscribes r to the signal.
func (s *Signal[T]) Add(r Subscriber) *Signal[T] {
	internal.Link(s.signal, r.reactiveNode())
	return s
}

// Delete unsubscribes r. It reports whether r was subscribed.
func (s *Signal[T]) Delete(r Subscriber) bool {
	return internal.Unlink(s.signal, r.reactiveNode())
}

// Clear unsubscribes every subscriber.
// Call it before dropping a signal so reactives stop referencing it.
func (s *Signal[T]) Clear() {
	s.signal.Clear()
}

// Subscribers returns the number of subscribed reactives.
func (s *Signal[T]) Subscribers() int {
	return s.signal.SubCount()
}

// HasSubscriber reports whether r is subscribed to the signal.
func (s *Signal[T]) HasSubscriber(r Subscriber) bool {
	return s.signal.HasSub(r.reactiveNode())
}
