package internal

// Tracker holds the reactive currently collecting dependencies on a goroutine.
type Tracker struct {
	current *Reactive
}

func NewTracker() *Tracker {
	return &Tracker{}
}

// RunWithReactive runs fn with node as the active reactive.
// The previous one is restored on every exit path, panics included.
func (t *Tracker) RunWithReactive(node *Reactive, fn func()) {
	prev := t.current
	t.current = node
	defer func() { t.current = prev }()

	fn()
}

// RunUntracked runs fn with no active reactive, so reads inside it are not recorded.
func (t *Tracker) RunUntracked(fn func()) {
	t.RunWithReactive(nil, fn)
}

func (t *Tracker) Current() *Reactive {
	return t.current
}

// Track links node to the active reactive, if any.
func (t *Tracker) Track(node *Signal) {
	if t.current != nil {
		Link(node, t.current)
	}
}
