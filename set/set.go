// Package set holds a map-backed set, used to track visited structures by identity
// and to name forbidden globals.
package set

// Set of comparable values. Pointers, channels and interfaces holding them are
// compared by identity.
type Set[T comparable] map[T]struct{}

func New[T comparable]() Set[T] {
	return make(Set[T])
}

func NewWithValues[T comparable](values ...T) Set[T] {
	s := make(Set[T], len(values))
	for _, v := range values {
		s.Add(v)
	}
	return s
}

func (s Set[T]) Add(value T) {
	s[value] = struct{}{}
}

// TryAdd adds value unless already present, and reports whether it was added.
func (s Set[T]) TryAdd(value T) bool {
	if s.Contains(value) {
		return false
	}
	s.Add(value)
	return true
}

func (s Set[T]) Contains(value T) bool {
	_, exists := s[value]
	return exists
}

func (s Set[T]) Remove(value T) {
	delete(s, value)
}
