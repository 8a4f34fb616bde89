package array

import "reflect"

// At returns the element at the given position, negative positions counting from the
// end. The boolean is false when the position is out of range.
func (a *Array[T]) At(pos int) (T, bool) {
	var zero T
	pos, ok := position(pos, len(a.items))
	if !ok {
		return zero, false
	}
	return a.items[pos-1], true
}

// IndexOf returns the position of the first element equal to target, or -1.
//
// The search starts at from (default 1); a negative from counts from the end and is
// clamped to the first element.
func (a *Array[T]) IndexOf(target T, from ...int) int {
	start := 1
	if len(from) > 0 {
		start = clamp(from[0], len(a.items))
	}
	for i := start; i <= len(a.items); i++ {
		if same(a.items[i-1], target) {
			return i
		}
	}
	return -1
}

// LastIndexOf returns the position of the last element equal to target, or -1.
//
// The backward search starts at from (default: the last element). A from past the end
// is clamped to the last element, one resolving before the first element misses.
func (a *Array[T]) LastIndexOf(target T, from ...int) int {
	start := len(a.items)
	if len(from) > 0 {
		start = min(resolve(from[0], len(a.items)), len(a.items))
	}
	for i := start; i >= 1; i-- {
		if same(a.items[i-1], target) {
			return i
		}
	}
	return -1
}

// Includes reports whether an element equal to target exists at or after from.
func (a *Array[T]) Includes(target T, from ...int) bool {
	return a.IndexOf(target, from...) != -1
}

// Find returns the first element matching the predicate.
func (a *Array[T]) Find(predicate Predicate[T]) (T, bool) {
	_, v, ok := a.findFirst(predicate)
	return v, ok
}

// FindIndex returns the position of the first element matching the predicate, or -1.
func (a *Array[T]) FindIndex(predicate Predicate[T]) int {
	i, _, _ := a.findFirst(predicate)
	return i
}

// FindLast returns the last element matching the predicate.
func (a *Array[T]) FindLast(predicate Predicate[T]) (T, bool) {
	_, v, ok := a.findLast(predicate)
	return v, ok
}

// FindLastIndex returns the position of the last element matching the predicate, or -1.
func (a *Array[T]) FindLastIndex(predicate Predicate[T]) int {
	i, _, _ := a.findLast(predicate)
	return i
}

// findFirst visits the positions present when the search starts.
func (a *Array[T]) findFirst(predicate Predicate[T]) (int, T, bool) {
	for i, n := 1, len(a.items); i <= min(n, len(a.items)); i++ {
		if v := a.items[i-1]; predicate(v, i, a) {
			return i, v, true
		}
	}
	var zero T
	return -1, zero, false
}

func (a *Array[T]) findLast(predicate Predicate[T]) (int, T, bool) {
	for i := len(a.items); i >= 1; i-- {
		if i > len(a.items) {
			continue
		}
		if v := a.items[i-1]; predicate(v, i, a) {
			return i, v, true
		}
	}
	var zero T
	return -1, zero, false
}

// same is the element equality used by searches: == for comparable values, reference
// identity for slices, maps and funcs. Nested containers are never compared deeply.
func same(x, y any) bool {
	if x == nil || y == nil {
		return x == nil && y == nil
	}

	vx, vy := reflect.ValueOf(x), reflect.ValueOf(y)
	if vx.Type() != vy.Type() {
		return false
	}
	if vx.Comparable() {
		return x == y
	}

	switch vx.Kind() {
	case reflect.Slice:
		return vx.Pointer() == vy.Pointer() && vx.Len() == vy.Len()
	case reflect.Map, reflect.Func:
		return vx.Pointer() == vy.Pointer()
	default:
		return false
	}
}
