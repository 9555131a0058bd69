package internal

// Signal is an untyped observable value and the set of reactives subscribed to it.
type Signal struct {
	node

	value any
	equal func(a, b any) bool

	subs *orderedSet[*Reactive]
}

type unset struct{}

// Unset is held by a signal that was never written. It is distinct from
// every value a caller can pass, nil included.
var Unset any = unset{}

// IsUnset reports whether v is the [Unset] marker.
func IsUnset(v any) bool {
	_, ok := v.(unset)
	return ok
}

// NewSignal creates a signal holding initial. Pass [Unset] to create an unset signal.
func NewSignal(initial any) *Signal {
	return &Signal{
		node:  newNode(),
		value: initial,
		equal: Identical,
		subs:  newOrderedSet[*Reactive](),
	}
}

// SetEqual replaces the change detection function. A nil fn restores Identical.
func (s *Signal) SetEqual(fn func(a, b any) bool) {
	if fn == nil {
		fn = Identical
	}

	s.equal = fn
}

// Read returns the value and subscribes the active reactive, if any.
func (s *Signal) Read() any {
	if r, ok := LookupRuntime(); ok {
		r.tracker.Track(s)
	}

	return s.value
}

// Value returns the value without tracking.
func (s *Signal) Value() any {
	return s.value
}

// Write stores v and re-runs every subscriber, unless v is the current value.
// The subscriber set is iterated live: subscribers removed by an earlier
// subscriber are skipped, subscribers added during the loop are run.
func (s *Signal) Write(v any) any {
	if s.equal(s.value, v) {
		return s.value
	}

	s.value = v

	if o := currentObserver(); o != nil {
		o.Changed(s.Info(), s.subs.Len())
	}

	s.subs.Each(func(r *Reactive) bool {
		r.Notify()
		return true
	})

	return s.value
}

// Subs returns a snapshot of the subscribers.
func (s *Signal) Subs() []*Reactive {
	return s.subs.Keys()
}

func (s *Signal) SubCount() int {
	return s.subs.Len()
}

func (s *Signal) HasSub(r *Reactive) bool {
	return s.subs.Has(r)
}

// Clear removes this signal from every subscriber and empties its subscriber set.
func (s *Signal) Clear() {
	for _, r := range s.subs.Keys() {
		r.deps.Delete(s)
		unlinked(s, r)
	}

	s.subs.Clear()
}
