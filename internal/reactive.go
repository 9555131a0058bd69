package internal

// Reactive is an untyped computation and the set of signals it depends on.
type Reactive struct {
	node

	// tracked re-entry point, called with no arguments whenever a dependency changes
	notify func()

	deps *orderedSet[*Signal]
}

func NewReactive(notify func()) *Reactive {
	return &Reactive{
		node:   newNode(),
		notify: notify,
		deps:   newOrderedSet[*Signal](),
	}
}

func (r *Reactive) Notify() {
	if r.notify != nil {
		r.notify()
	}
}

// Deps returns a snapshot of the dependencies.
func (r *Reactive) Deps() []*Signal {
	return r.deps.Keys()
}

func (r *Reactive) DepCount() int {
	return r.deps.Len()
}

func (r *Reactive) HasDep(s *Signal) bool {
	return r.deps.Has(s)
}

// Clear removes this reactive from every dependency and empties its dependency set.
func (r *Reactive) Clear() {
	for _, s := range r.deps.Keys() {
		s.subs.Delete(r)
		unlinked(s, r)
	}

	r.deps.Clear()
}
