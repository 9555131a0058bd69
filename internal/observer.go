package internal

import "sync/atomic"

// Observer receives graph and propagation events.
// Callbacks run synchronously on the goroutine performing the operation.
type Observer interface {
	// Linked is called when a new edge between a signal and a reactive is created.
	Linked(signal, reactive Node)

	// Unlinked is called when an existing edge is removed.
	Unlinked(signal, reactive Node)

	// Changed is called when a signal accepted a new value, before its subscribers are notified.
	Changed(signal Node, subscribers int)

	// Invoked is called before a reactive callback runs.
	Invoked(reactive Node, tracked bool)
}

type observerBox struct{ Observer }

var observer atomic.Pointer[observerBox]

// SetObserver installs o as the process wide observer. A nil o removes it.
func SetObserver(o Observer) {
	if o == nil {
		observer.Store(nil)
		return
	}

	observer.Store(&observerBox{o})
}

func currentObserver() Observer {
	if box := observer.Load(); box != nil {
		return box.Observer
	}

	return nil
}
