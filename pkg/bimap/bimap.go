// Package bimap provides a one-to-one map that can be queried from either side.
package bimap

// Map associates left keys with right keys one-to-one. Inserting a pair
// removes any earlier pair that shared either side, so both directions always
// agree. The zero value is not usable; call New.
type Map[L comparable, R comparable] struct {
	byLeft  map[L]R
	byRight map[R]L
}

// Pair is a left/right association.
type Pair[L comparable, R comparable] struct {
	Left  L
	Right R
}

// New returns an empty Map.
func New[L comparable, R comparable]() *Map[L, R] {
	return &Map[L, R]{
		byLeft:  make(map[L]R),
		byRight: make(map[R]L),
	}
}

// Insert associates l with r. Pairs that previously held l or r are removed
// and returned so callers can report them.
func (m *Map[L, R]) Insert(l L, r R) []Pair[L, R] {
	var evicted []Pair[L, R]

	if oldR, ok := m.byLeft[l]; ok {
		if oldR == r {
			return nil
		}
		delete(m.byRight, oldR)
		delete(m.byLeft, l)
		evicted = append(evicted, Pair[L, R]{l, oldR})
	}
	if oldL, ok := m.byRight[r]; ok {
		delete(m.byLeft, oldL)
		delete(m.byRight, r)
		evicted = append(evicted, Pair[L, R]{oldL, r})
	}

	m.byLeft[l] = r
	m.byRight[r] = l
	return evicted
}

// ByLeft returns the right key paired with l.
func (m *Map[L, R]) ByLeft(l L) (R, bool) {
	r, ok := m.byLeft[l]
	return r, ok
}

// ByRight returns the left key paired with r.
func (m *Map[L, R]) ByRight(r R) (L, bool) {
	l, ok := m.byRight[r]
	return l, ok
}

// Len returns the number of pairs.
func (m *Map[L, R]) Len() int {
	return len(m.byLeft)
}

// Range calls fn for each pair until fn returns false. Order is unspecified.
func (m *Map[L, R]) Range(fn func(l L, r R) bool) {
	for l, r := range m.byLeft {
		if !fn(l, r) {
			return
		}
	}
}

// Clear removes all pairs.
func (m *Map[L, R]) Clear() {
	clear(m.byLeft)
	clear(m.byRight)
}
