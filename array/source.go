package array

import (
	"fmt"
	"reflect"

	"github.com/a-peyrard/luarray/reflectutils"
)

// Indexable is the capability a foreign container exposes to be treated as
// sequence-like: a length and 1-based access to its elements.
type Indexable interface {
	Len() int
	Get(pos int) any
}

type sourceKind int

const (
	sourceScalar sourceKind = iota
	sourceText
	sourceList
	sourceIndexable
	sourceWrapper
)

// source is the classification of an arbitrary value, used wherever a value may be
// expanded into elements.
type source struct {
	kind  sourceKind
	value any
	list  reflect.Value
}

func classify(v any) source {
	switch typed := v.(type) {
	case nil:
		return source{kind: sourceScalar}
	case Sequence:
		return source{kind: sourceWrapper, value: typed}
	case Indexable:
		return source{kind: sourceIndexable, value: typed}
	case string:
		return source{kind: sourceText, value: typed}
	}

	rv := reflectutils.Deref(reflect.ValueOf(v))
	if rv.IsValid() && (rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array) {
		return source{kind: sourceList, value: v, list: rv}
	}
	return source{kind: sourceScalar, value: v}
}

// sequenceLike reports whether the value holds elements. Text is not sequence-like.
func (s source) sequenceLike() bool {
	return s.kind >= sourceList
}

func (s source) length() int {
	switch s.kind {
	case sourceWrapper:
		return s.value.(Sequence).Len()
	case sourceIndexable:
		return s.value.(Indexable).Len()
	case sourceList:
		return s.list.Len()
	case sourceText:
		return len([]rune(s.value.(string)))
	}
	return 0
}

func (s source) elements() []any {
	switch s.kind {
	case sourceWrapper:
		return s.value.(Sequence).elements()
	case sourceIndexable:
		idx := s.value.(Indexable)
		out := make([]any, idx.Len())
		for i := range out {
			out[i] = idx.Get(i + 1)
		}
		return out
	case sourceList:
		out := make([]any, s.list.Len())
		for i := range out {
			out[i] = s.list.Index(i).Interface()
		}
		return out
	case sourceText:
		out := make([]any, 0, len(s.value.(string)))
		for _, r := range s.value.(string) {
			out = append(out, string(r))
		}
		return out
	}
	return nil
}

// From creates an array from a source value.
//
// Text yields one element per character, sequence-like values (arrays, Go slices and
// Indexable containers) are copied element by element, and any other value yields an
// empty array. The optional mapper receives each element and its position.
func From(src any, mapper ...func(element any, index int) any) (*Array[any], error) {
	if src == nil {
		return nil, fmt.Errorf("unable to create array: %w", ErrNilSource)
	}

	s := classify(src)
	if s.kind == sourceScalar {
		return &Array[any]{}, nil
	}

	items := s.elements()
	if len(mapper) > 0 && mapper[0] != nil {
		for i := range items {
			items[i] = mapper[0](items[i], i+1)
		}
	}
	return &Array[any]{items: items}, nil
}

// MustFrom is like From but panics when the source is nil.
func MustFrom(src any, mapper ...func(element any, index int) any) *Array[any] {
	arr, err := From(src, mapper...)
	if err != nil {
		panic(err)
	}
	return arr
}

// IsArray reports whether v is sequence-like: an Array, a Go slice or array, or an
// Indexable container. Empty containers are sequence-like, strings are not.
func IsArray(v any) bool {
	return classify(v).sequenceLike()
}

// IsInstance reports whether v is an Array built by this package, regardless of its
// element type.
func IsInstance(v any) bool {
	_, ok := v.(Sequence)
	return ok
}
