package array

import (
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"strings"

	"github.com/a-peyrard/luarray/set"
)

const describeIndent = "  "

type (
	sliceKey struct {
		ptr    uintptr
		length int
	}

	mapKey struct {
		ptr uintptr
	}

	entry struct {
		key   string
		value any
	}
)

// Join concatenates the text of every element, separated by sep (default ",").
// Nested sequences are joined with "," whatever the outer separator, nil elements
// render as empty text.
func (a *Array[T]) Join(sep ...string) string {
	separator := ","
	if len(sep) > 0 {
		separator = sep[0]
	}
	return join(a.elements(), separator, set.NewWithValues[any](any(a)))
}

// String returns the array joined with the default separator.
func (a *Array[T]) String() string {
	return a.Join()
}

func join(elements []any, sep string, path set.Set[any]) string {
	var b strings.Builder
	for i, e := range elements {
		if i > 0 {
			b.WriteString(sep)
		}
		b.WriteString(text(e, path))
	}
	return b.String()
}

func text(v any, path set.Set[any]) string {
	src := classify(v)
	if !src.sequenceLike() {
		return scalarText(v)
	}

	if key, tracked := identity(v); tracked {
		if !path.TryAdd(key) {
			return ""
		}
		defer path.Remove(key)
	}
	return join(src.elements(), ",", path)
}

func scalarText(v any) string {
	switch typed := v.(type) {
	case nil:
		return ""
	case string:
		return typed
	case bool:
		return strconv.FormatBool(typed)
	case float64:
		return strconv.FormatFloat(typed, 'g', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(typed), 'g', -1, 32)
	case int:
		return strconv.Itoa(typed)
	case fmt.Stringer:
		return typed.String()
	case error:
		return typed.Error()
	default:
		return fmt.Sprint(v)
	}
}

// Describe renders a value for humans. Sequences and maps are rendered recursively
// with one element per indented line, strings are quoted, empty structures render as
// {} and a structure containing itself renders as <cycle>.
func Describe(v any) string {
	var b strings.Builder
	describe(&b, v, 0, set.New[any]())
	return b.String()
}

func describe(b *strings.Builder, v any, depth int, path set.Set[any]) {
	src := classify(v)

	var entries []entry
	switch {
	case src.kind == sourceText:
		b.WriteString(strconv.Quote(src.value.(string)))
		return
	case src.sequenceLike():
		for i, e := range src.elements() {
			entries = append(entries, entry{key: fmt.Sprintf("[%d]", i+1), value: e})
		}
	case src.kind == sourceScalar && v != nil && reflect.ValueOf(v).Kind() == reflect.Map:
		entries = mapEntries(reflect.ValueOf(v))
	case v == nil:
		b.WriteString("nil")
		return
	default:
		b.WriteString(scalarText(v))
		return
	}

	if len(entries) == 0 {
		b.WriteString("{}")
		return
	}

	if key, tracked := identity(v); tracked {
		if !path.TryAdd(key) {
			b.WriteString("<cycle>")
			return
		}
		defer path.Remove(key)
	}

	b.WriteString("{\n")
	for i, e := range entries {
		b.WriteString(strings.Repeat(describeIndent, depth+1))
		b.WriteString(e.key)
		b.WriteString(" = ")
		describe(b, e.value, depth+1, path)
		if i < len(entries)-1 {
			b.WriteByte(',')
		}
		b.WriteByte('\n')
	}
	b.WriteString(strings.Repeat(describeIndent, depth))
	b.WriteByte('}')
}

func mapEntries(m reflect.Value) []entry {
	entries := make([]entry, 0, m.Len())
	iter := m.MapRange()
	for iter.Next() {
		k := iter.Key().Interface()
		key := "[" + scalarText(k) + "]"
		if s, ok := k.(string); ok {
			key = "[" + strconv.Quote(s) + "]"
		}
		entries = append(entries, entry{key: key, value: iter.Value().Interface()})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].key < entries[j].key
	})
	return entries
}

// identity returns a comparable key standing for the reference held by v, used to
// detect containers nested into themselves. Value types have no identity.
func identity(v any) (any, bool) {
	switch v.(type) {
	case nil:
		return nil, false
	case Sequence:
		return v, true
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice:
		return sliceKey{ptr: rv.Pointer(), length: rv.Len()}, true
	case reflect.Map:
		return mapKey{ptr: rv.Pointer()}, true
	case reflect.Pointer:
		return v, true
	}
	if rv.Comparable() {
		if _, ok := v.(Indexable); ok {
			return v, true
		}
	}
	return nil, false
}
