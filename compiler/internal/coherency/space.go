package coherency

type spaceEntry[T any] struct {
	path  FullPath
	value T
}

// Space maps full paths to stored values (types or entities).
//
// Partial paths are resolved by suffix. When several stored paths share the
// requested suffix, Resolve picks the one inserted first; Matches lists all
// of them so callers can report the ambiguity.
type Space[T any] struct {
	entries map[string]*spaceEntry[T]
	order   []*spaceEntry[T]
}

// Insert stores value under path, overwriting any previous value, and
// returns a pointer to the stored value. The pointer stays valid for the
// life of the space, including across later overwrites.
func (s *Space[T]) Insert(path FullPath, value T) *T {
	if s.entries == nil {
		s.entries = make(map[string]*spaceEntry[T])
	}
	k := path.key()
	if e, ok := s.entries[k]; ok {
		e.value = value
		return &e.value
	}
	e := &spaceEntry[T]{path: append(FullPath(nil), path...), value: value}
	s.entries[k] = e
	s.order = append(s.order, e)
	return &e.value
}

// Find returns the value stored under exactly path.
func (s *Space[T]) Find(path FullPath) (*T, bool) {
	e, ok := s.entries[path.key()]
	if !ok {
		return nil, false
	}
	return &e.value, true
}

// Resolve returns the first stored full path ending with p, or p promoted
// to a full path when nothing matches.
func (s *Space[T]) Resolve(p Path) FullPath {
	if len(p) > 0 {
		for _, e := range s.order {
			if e.path.EndsWith(p) {
				return append(FullPath(nil), e.path...)
			}
		}
	}
	return p.Full()
}

// Matches returns every stored full path ending with p, in insertion order.
func (s *Space[T]) Matches(p Path) []FullPath {
	if len(p) == 0 {
		return nil
	}
	var out []FullPath
	for _, e := range s.order {
		if e.path.EndsWith(p) {
			out = append(out, append(FullPath(nil), e.path...))
		}
	}
	return out
}

// Lookup resolves p and finds the stored value in one step.
func (s *Space[T]) Lookup(p Path) (*T, bool) {
	return s.Find(s.Resolve(p))
}

// Len is the number of stored entries.
func (s *Space[T]) Len() int { return len(s.order) }

// Each calls fn for every entry in insertion order until fn returns false.
func (s *Space[T]) Each(fn func(FullPath, *T) bool) {
	for _, e := range s.order {
		if !fn(e.path, &e.value) {
			return
		}
	}
}
