package array

import (
	"fmt"

	"github.com/a-peyrard/luarray/fn"
	"github.com/a-peyrard/luarray/set"
	"github.com/a-peyrard/luarray/slices"
)

// Map returns a new array holding the result of mapper for every element.
func (a *Array[T]) Map(mapper Callback[T, T]) *Array[T] {
	return Map(a, mapper)
}

// Map returns a new array holding the result of mapper for every element of a.
func Map[T any, U any](a *Array[T], mapper Callback[T, U]) *Array[U] {
	items := make([]U, len(a.items))
	for i, v := range a.items {
		items[i] = mapper(v, i+1, a)
	}
	return &Array[U]{items: items}
}

// Filter returns a new array holding the elements matching the predicate, in order.
func (a *Array[T]) Filter(predicate Predicate[T]) *Array[T] {
	items := make([]T, 0, len(a.items))
	for i, v := range a.items {
		if predicate(v, i+1, a) {
			items = append(items, v)
		}
	}
	return &Array[T]{items: items}
}

// Slice returns a new array holding the elements of the range [start, end).
// Both bounds are optional and may be negative.
func (a *Array[T]) Slice(bounds ...int) *Array[T] {
	start, end := span(len(a.items), bounds)
	return New(a.items[start-1 : end-1]...)
}

// Concat returns a new array holding the elements of the receiver followed by every
// argument. Sequence-like arguments contribute their elements, other values are
// appended as is.
func (a *Array[T]) Concat(args ...any) *Array[any] {
	items := a.elements()
	for _, arg := range args {
		if src := classify(arg); src.sequenceLike() {
			items = append(items, src.elements()...)
		} else {
			items = append(items, arg)
		}
	}
	return &Array[any]{items: items}
}

// ConcatArrays returns a new array holding the elements of the receiver followed by
// the elements of every other array.
func (a *Array[T]) ConcatArrays(others ...*Array[T]) *Array[T] {
	out := a.Clone()
	for _, other := range others {
		out.items = append(out.items, other.items...)
	}
	return out
}

// ToReversed returns a new array holding the elements in reverse order.
func (a *Array[T]) ToReversed() *Array[T] {
	return &Array[T]{items: slices.Reverse(a.items)}
}

// ToSorted returns a sorted copy of the array. See Sort.
func (a *Array[T]) ToSorted(comparator ...fn.Comparator[T]) *Array[T] {
	return a.Clone().Sort(comparator...)
}

// ToSpliced returns a copy of the array on which Splice has been applied.
func (a *Array[T]) ToSpliced(start, deleteCount int, items ...T) *Array[T] {
	out := a.Clone()
	out.Splice(start, deleteCount, items...)
	return out
}

// With returns a copy of the array where the element at pos is replaced by value.
// Unlike At, an out of range position is an error.
func (a *Array[T]) With(pos int, value T) (*Array[T], error) {
	resolved, ok := position(pos, len(a.items))
	if !ok {
		return nil, fmt.Errorf("unable to replace position %d of array of length %d: %w", pos, len(a.items), ErrIndexOutOfRange)
	}
	out := a.Clone()
	out.items[resolved-1] = value
	return out, nil
}

// MustWith is like With but panics when the position is out of range.
func (a *Array[T]) MustWith(pos int, value T) *Array[T] {
	out, err := a.With(pos, value)
	if err != nil {
		panic(err)
	}
	return out
}

// Flat returns a new array where nested sequence-like elements are expanded, up to
// depth levels (default 1). A depth of zero or less copies the array as is.
func (a *Array[T]) Flat(depth ...int) *Array[any] {
	d := 1
	if len(depth) > 0 {
		d = depth[0]
	}
	out := &Array[any]{items: make([]any, 0, len(a.items))}
	flatten(a.elements(), d, out, set.NewWithValues[any](any(a)))
	return out
}

// FlatMap maps every element then flattens the results by one level. Results that
// are empty sequences are dropped.
func (a *Array[T]) FlatMap(mapper Callback[T, any]) *Array[any] {
	mapped := slices.Filter(Map(a, mapper).items, func(v any) bool {
		src := classify(v)
		return !src.sequenceLike() || src.length() > 0
	})
	out := &Array[any]{items: make([]any, 0, len(mapped))}
	flatten(mapped, 1, out, set.NewWithValues[any](any(a)))
	return out
}

// FlatMap maps every element of a to a slice and concatenates the results.
func FlatMap[T any, U any](a *Array[T], mapper Callback[T, []U]) *Array[U] {
	out := &Array[U]{items: make([]U, 0, len(a.items))}
	for i, v := range a.items {
		out.items = append(out.items, mapper(v, i+1, a)...)
	}
	return out
}

func flatten(elements []any, depth int, out *Array[any], path set.Set[any]) {
	for _, e := range elements {
		src := classify(e)
		if depth <= 0 || !src.sequenceLike() {
			out.items = append(out.items, e)
			continue
		}

		key, tracked := identity(e)
		if tracked && !path.TryAdd(key) {
			out.items = append(out.items, e)
			continue
		}
		flatten(src.elements(), depth-1, out, path)
		if tracked {
			path.Remove(key)
		}
	}
}
