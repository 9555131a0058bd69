package reactivity

import "github.com/AnatoleLucet/reactivity/internal"

// Reactive is a callback that records the signals it reads.
//
// Tracking only ever adds dependencies: a signal read by an earlier Bind
// stays a dependency even if later runs stop reading it, until Clear or
// Delete removes it.
//
// A callback that writes a signal it also reads re-runs itself from inside
// Set. Nothing stops that recursion, the callback has to end it.
type Reactive[A, R any] struct {
	reactive *internal.Reactive
	callback func(args ...A) R
}

// NewReactive wraps callback. It does not run it.
func NewReactive[A, R any](callback func(args ...A) R) *Reactive[A, R] {
	r := &Reactive[A, R]{callback: callback}
	r.reactive = internal.NewReactive(func() { r.Bind() })

	return r
}

// Use creates a reactive from callback and binds it once with args.
func Use[A, R any](callback func(args ...A) R, args ...A) R {
	return NewReactive(callback).Bind(args...)
}

// NewEffect creates a reactive running fn and binds it right away.
func NewEffect(fn func()) *Reactive[any, struct{}] {
	r := NewReactive(func(...any) struct{} {
		fn()
		return struct{}{}
	})
	r.Bind()

	return r
}

func (r *Reactive[A, R]) reactiveNode() *internal.Reactive { return r.reactive }

// WithLabel names the reactive for observers.
func (r *Reactive[A, R]) WithLabel(label string) *Reactive[A, R] {
	r.reactive.SetLabel(label)
	return r
}

// ID is unique across all signals and reactives of the process.
func (r *Reactive[A, R]) ID() uint64 {
	return r.reactive.ID()
}

// Bind runs the callback with r as the active reactive, so every signal read
// through Get subscribes r. The previous active reactive is restored
// afterwards, also when the callback panics.
func (r *Reactive[A, R]) Bind(args ...A) R {
	var result R
	internal.GetRuntime().Invoke(r.reactive, true, func() {
		result = r.callback(args...)
	})

	return result
}

// Call runs the callback with no active reactive: reads inside it subscribe nothing.
func (r *Reactive[A, R]) Call(args ...A) R {
	var result R
	internal.GetRuntime().Invoke(r.reactive, false, func() {
		result = r.callback(args...)
	})

	return result
}

// Add makes s a dependency of r.
func (r *Reactive[A, R]) Add(s Source) *Reactive[A, R] {
	internal.Link(s.signalNode(), r.reactive)
	return r
}

// Delete removes s from the dependencies. It reports whether s was one.
func (r *Reactive[A, R]) Delete(s Source) bool {
	return internal.Unlink(s.signalNode(), r.reactive)
}

// Clear removes every dependency. Call it before dropping a reactive.
func (r *Reactive[A, R]) Clear() {
	r.reactive.Clear()
}

// Dependencies returns the number of signals r depends on.
func (r *Reactive[A, R]) Dependencies() int {
	return r.reactive.DepCount()
}

// DependsOn reports whether s is a dependency of r.
func (r *Reactive[A, R]) DependsOn(s Source) bool {
	return r.reactive.HasDep(s.signalNode())
}
