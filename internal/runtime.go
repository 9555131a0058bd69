package internal

// Runtime is the per goroutine tracking state.
type Runtime struct {
	tracker *Tracker

	// depth of nested Bind/Call on this runtime
	depth int
}

func NewRuntime() *Runtime {
	return &Runtime{
		tracker: NewTracker(),
	}
}

func (r *Runtime) Current() *Reactive {
	return r.tracker.Current()
}

// Busy reports whether a tracked or untracked invocation is running on this runtime.
func (r *Runtime) Busy() bool {
	return r.depth > 0
}

// Invoke runs fn on behalf of target. When tracked is true target becomes the
// active reactive, otherwise reads are untracked.
func (r *Runtime) Invoke(target *Reactive, tracked bool, fn func()) {
	if o := currentObserver(); o != nil {
		o.Invoked(target.Info(), tracked)
	}

	r.depth++
	defer func() { r.depth-- }()

	if tracked {
		r.tracker.RunWithReactive(target, fn)
	} else {
		r.tracker.RunUntracked(fn)
	}
}
