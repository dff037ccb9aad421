package changelog

// OrderedSet is a set that remembers insertion order. Membership checks are
// O(1) through a map; iteration order is the order of first insertion.
type OrderedSet[T comparable] struct {
	index map[T]struct{}
	items []T
}

// NewOrderedSet returns an empty set.
func NewOrderedSet[T comparable]() *OrderedSet[T] {
	return &OrderedSet[T]{index: make(map[T]struct{})}
}

// Add inserts v and reports whether it was not already present.
func (s *OrderedSet[T]) Add(v T) bool {
	if _, ok := s.index[v]; ok {
		return false
	}
	s.index[v] = struct{}{}
	s.items = append(s.items, v)
	return true
}

// Contains reports whether v has been added.
func (s *OrderedSet[T]) Contains(v T) bool {
	_, ok := s.index[v]
	return ok
}

// Len returns the number of distinct elements.
func (s *OrderedSet[T]) Len() int {
	return len(s.items)
}

// Items returns a copy of the elements in insertion order. The result is
// never nil.
func (s *OrderedSet[T]) Items() []T {
	out := make([]T, len(s.items))
	copy(out, s.items)
	return out
}
