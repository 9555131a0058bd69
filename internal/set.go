package internal

// orderedSet is an insertion-ordered set with live iteration:
// entries deleted during Each are skipped if not visited yet,
// entries added during Each are visited.
type orderedSet[K comparable] struct {
	entries []setEntry[K]
	index   map[K]int

	// each nested Each increases the depth by 1
	// while depth > 0, deleted entries stay as tombstones
	iterating int
	dead      int
}

type setEntry[K comparable] struct {
	key   K
	alive bool
}

func newOrderedSet[K comparable]() *orderedSet[K] {
	return &orderedSet[K]{
		index: make(map[K]int),
	}
}

func (s *orderedSet[K]) Len() int {
	return len(s.index)
}

func (s *orderedSet[K]) Has(key K) bool {
	_, ok := s.index[key]
	return ok
}

// Add inserts key at the end of the set. It reports false if key was already present.
func (s *orderedSet[K]) Add(key K) bool {
	if _, ok := s.index[key]; ok {
		return false
	}

	s.index[key] = len(s.entries)
	s.entries = append(s.entries, setEntry[K]{key: key, alive: true})
	return true
}

// Delete removes key. It reports false if key was not present.
func (s *orderedSet[K]) Delete(key K) bool {
	i, ok := s.index[key]
	if !ok {
		return false
	}

	delete(s.index, key)
	s.entries[i] = setEntry[K]{}
	s.dead++

	// compact once tombstones outnumber live entries
	if s.dead*2 > len(s.entries) {
		s.compact()
	}

	return true
}

func (s *orderedSet[K]) Clear() {
	clear(s.index)

	if s.iterating > 0 {
		for i := range s.entries {
			s.entries[i] = setEntry[K]{}
		}
		s.dead = len(s.entries)
		return
	}

	clear(s.entries)
	s.entries = s.entries[:0]
	s.dead = 0
}

// Each calls fn for every live key in insertion order until fn returns false.
func (s *orderedSet[K]) Each(fn func(K) bool) {
	s.iterating++
	defer func() {
		s.iterating--
		s.compact()
	}()

	// len is re-read on every step so keys added by fn are visited
	for i := 0; i < len(s.entries); i++ {
		entry := s.entries[i]
		if !entry.alive {
			continue
		}

		if !fn(entry.key) {
			return
		}
	}
}

// Keys returns a snapshot of the live keys.
func (s *orderedSet[K]) Keys() []K {
	keys := make([]K, 0, len(s.index))
	for _, entry := range s.entries {
		if entry.alive {
			keys = append(keys, entry.key)
		}
	}

	return keys
}

func (s *orderedSet[K]) compact() {
	if s.iterating > 0 || s.dead == 0 {
		return
	}

	live := s.entries[:0]
	for _, entry := range s.entries {
		if entry.alive {
			s.index[entry.key] = len(live)
			live = append(live, entry)
		}
	}

	// zero the tail so removed keys can be collected
	clear(s.entries[len(live):])

	s.entries = live
	s.dead = 0
}
