package instrument

import "github.com/AnatoleLucet/reactivity"

type multi []reactivity.Observer

// Multi fans events out to every non nil observer, in order.
func Multi(observers ...reactivity.Observer) reactivity.Observer {
	m := make(multi, 0, len(observers))
	for _, o := range observers {
		if o != nil {
			m = append(m, o)
		}
	}

	return m
}

func (m multi) Linked(signal, reactive reactivity.Node) {
	for _, o := range m {
		o.Linked(signal, reactive)
	}
}

func (m multi) Unlinked(signal, reactive reactivity.Node) {
	for _, o := range m {
		o.Unlinked(signal, reactive)
	}
}

func (m multi) Changed(signal reactivity.Node, subscribers int) {
	for _, o := range m {
		o.Changed(signal, subscribers)
	}
}

func (m multi) Invoked(reactive reactivity.Node, tracked bool) {
	for _, o := range m {
		o.Invoked(reactive, tracked)
	}
}
