package internal

// Link creates the bidirectional edge between dep and sub.
// It reports false if the edge already existed.
func Link(dep *Signal, sub *Reactive) bool {
	added := dep.subs.Add(sub)
	sub.deps.Add(dep)

	if added {
		if o := currentObserver(); o != nil {
			o.Linked(dep.Info(), sub.Info())
		}
	}

	return added
}

// Unlink removes the bidirectional edge between dep and sub.
// It reports false if there was no edge.
func Unlink(dep *Signal, sub *Reactive) bool {
	removed := dep.subs.Delete(sub)
	sub.deps.Delete(dep)

	if removed {
		unlinked(dep, sub)
	}

	return removed
}

func unlinked(dep *Signal, sub *Reactive) {
	if o := currentObserver(); o != nil {
		o.Unlinked(dep.Info(), sub.Info())
	}
}
