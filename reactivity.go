// Package reactivity is a small synchronous reactive state engine.
//
// A [Signal] holds a value. A [Reactive] wraps a callback; while it runs
// through [Reactive.Bind], every signal it reads with Get becomes one of its
// dependencies. Setting a signal to a new value re-runs all of its
// subscribers right away, in the order they subscribed.
//
// Tracking is per goroutine. The dependency graph itself is not
// synchronised and must be used from one goroutine at a time.
package reactivity

import "github.com/AnatoleLucet/reactivity/internal"

func as[T any](v any) T {
	if v == nil || internal.IsUnset(v) {
		var zero T
		return zero
	}

	return v.(T)
}

// Source is anything a reactive can depend on: a [Signal] or a [ComputedSignal].
type Source interface {
	signalNode() *internal.Signal
}

// Subscriber is anything that can subscribe to a signal: a [Reactive].
type Subscriber interface {
	reactiveNode() *internal.Reactive
}

// Node identifies a signal or a reactive in observer callbacks.
type Node = internal.Node

// Observer receives graph and propagation events, see [SetObserver].
type Observer = internal.Observer

// SetObserver installs o for the whole process. Pass nil to remove it.
func SetObserver(o Observer) {
	internal.SetObserver(o)
}

// Release drops the tracking state of the calling goroutine.
// Call it before a long lived goroutine that used signals exits.
// It reports false if there was nothing to release or an invocation is still running.
func Release() bool {
	return internal.ReleaseRuntime()
}
