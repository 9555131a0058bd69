package reactivity

// ComputedSignal is a signal holding computation(entry) for the last entry
// it was set to. Signals read by computation are tracked by an internal
// reactive, and any change to them recomputes the value.
type ComputedSignal[T any] struct {
	*Signal[T]

	computation func(T) T
	entry       T
	reactive    *Reactive[any, T]
}

// NewComputedSignal creates a computed signal and runs computation(initial) once
// to collect its dependencies.
func NewComputedSignal[T any](computation func(T) T, initial T) *ComputedSignal[T] {
	c := &ComputedSignal[T]{
		Signal:      NewSignal[T](),
		computation: computation,
		entry:       initial,
	}
	c.reactive = NewReactive(func(...any) T {
		return c.Set(c.entry)
	})
	c.reactive.Bind()

	return c
}

// Set stores entry and sets the signal to computation(entry).
// Change detection applies to the computed value, not to entry.
func (c *ComputedSignal[T]) Set(entry T) T {
	c.entry = entry
	return c.Signal.Set(c.computation(entry))
}

// Compute feeds fn applied to the current value back through Set.
func (c *ComputedSignal[T]) Compute(fn func(T) T) T {
	return c.Set(fn(c.Peek()))
}

// Entry returns the last raw input given to computation.
func (c *ComputedSignal[T]) Entry() T {
	return c.entry
}

// Dependencies returns the number of signals the computation depends on.
func (c *ComputedSignal[T]) Dependencies() int {
	return c.reactive.Dependencies()
}

// Clear drops the computation dependencies, then every subscriber of the signal.
func (c *ComputedSignal[T]) Clear() {
	c.reactive.Clear()
	c.Signal.Clear()
}
