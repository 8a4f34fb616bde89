package reflectutils

import (
	"reflect"

	"github.com/a-peyrard/luarray/fn"
)

// Visitor is called for every value reached while walking a struct, with its type and
// the path of field names leading to it.
type Visitor = fn.TriConsumer[reflect.Value, reflect.Type, []string]

// WalkStruct applies the visitor on the given element, then on every exported field,
// descending into nested structs and non-nil struct pointers.
func WalkStruct[T any](element T, visitor Visitor) {
	walk(reflect.ValueOf(element), nil, visitor)
}

func walk(val reflect.Value, path []string, visitor Visitor) {
	visitor(val, val.Type(), path)

	val = Deref(val)
	if !val.IsValid() || val.Kind() != reflect.Struct {
		return
	}

	typ := val.Type()
	for i := 0; i < typ.NumField(); i++ {
		field := typ.Field(i)
		if !field.IsExported() {
			continue
		}
		walk(val.Field(i), append(path[:len(path):len(path)], field.Name), visitor)
	}
}

// Deref follows pointers and interfaces until it reaches a concrete value.
// A nil pointer or interface yields the invalid reflect.Value.
func Deref(value reflect.Value) reflect.Value {
	for value.Kind() == reflect.Pointer || value.Kind() == reflect.Interface {
		value = value.Elem()
	}
	return value
}

// CreateNilStructs is a Visitor allocating nil struct pointers, so that walking can
// continue into them.
func CreateNilStructs(val reflect.Value, typ reflect.Type, _ []string) {
	if typ.Kind() == reflect.Pointer &&
		val.IsNil() &&
		typ.Elem().Kind() == reflect.Struct &&
		val.CanSet() {

		val.Set(reflect.New(typ.Elem()))
	}
}
