package luabind

import (
	"fmt"
	"reflect"

	"github.com/a-peyrard/luarray/array"
	"github.com/a-peyrard/luarray/set"
	lua "github.com/yuin/gopher-lua"
)

type (
	// tableSeq is a Lua table used as a sequence: its elements run from 1 up to the
	// first hole. Other keys are ignored.
	tableSeq struct {
		b *binding
		t *lua.LTable
	}

	// tableRef is any other Lua table, carried around untouched.
	tableRef struct {
		t *lua.LTable
	}
)

func (s tableSeq) Len() int {
	return border(s.t)
}

func (s tableSeq) Get(pos int) any {
	return s.b.fromLua(s.t.RawGetInt(pos))
}

func (r tableRef) String() string {
	return r.t.String()
}

// border is the length of the run of non-nil values starting at 1.
func border(t *lua.LTable) int {
	n := 0
	for t.RawGetInt(n+1) != lua.LNil {
		n++
	}
	return n
}

// arrayLike reports whether t holds a value at position 1, or is empty.
func arrayLike(t *lua.LTable) bool {
	if t.RawGetInt(1) != lua.LNil {
		return true
	}
	key, _ := t.Next(lua.LNil)
	return key == lua.LNil
}

// dense reports whether the keys of t are exactly 1..border(t).
func dense(t *lua.LTable) bool {
	count := 0
	t.ForEach(func(_, _ lua.LValue) {
		count++
	})
	return count == border(t)
}

func (b *binding) fromLua(lv lua.LValue) any {
	switch v := lv.(type) {
	case nil, *lua.LNilType:
		return nil
	case lua.LBool:
		return bool(v)
	case lua.LNumber:
		return float64(v)
	case lua.LString:
		return string(v)
	case *lua.LTable:
		if arrayLike(v) {
			return tableSeq{b: b, t: v}
		}
		return tableRef{t: v}
	case *lua.LUserData:
		if arr, ok := v.Value.(*array.Array[any]); ok {
			return arr
		}
		return v
	default:
		return lv
	}
}

func (b *binding) toLua(v any) lua.LValue {
	switch typed := v.(type) {
	case nil:
		return lua.LNil
	case lua.LValue:
		return typed
	case bool:
		return lua.LBool(typed)
	case string:
		return lua.LString(typed)
	case float64:
		return lua.LNumber(typed)
	case *array.Array[any]:
		return b.wrap(typed)
	case tableSeq:
		return typed.t
	case tableRef:
		return typed.t
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return lua.LNumber(rv.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return lua.LNumber(rv.Uint())
	case reflect.Float32:
		return lua.LNumber(rv.Float())
	}
	ud := b.L.NewUserData()
	ud.Value = v
	return ud
}

// Export converts a Lua value into plain Go values: arrays become *array.Array[any],
// tables whose keys are exactly 1..n []any and other tables map[string]any.
// Functions and foreign userdata are rendered as text. A structure met again while
// being exported becomes nil.
func Export(lv lua.LValue) any {
	b := &binding{}
	return b.export(b.fromLua(lv), set.New[any]())
}

func (b *binding) export(v any, visiting set.Set[any]) any {
	switch typed := v.(type) {
	case *array.Array[any]:
		if !visiting.TryAdd(typed) {
			return nil
		}
		defer visiting.Remove(typed)

		exported := array.New[any]()
		typed.ForEach(func(e any, _ int, _ *array.Array[any]) {
			exported.Push(b.export(e, visiting))
		})
		return exported
	case tableSeq:
		if !dense(typed.t) {
			return b.export(tableRef{t: typed.t}, visiting)
		}
		if !visiting.TryAdd(typed.t) {
			return nil
		}
		defer visiting.Remove(typed.t)

		out := make([]any, typed.Len())
		for i := range out {
			out[i] = b.export(b.fromLua(typed.t.RawGetInt(i+1)), visiting)
		}
		return out
	case tableRef:
		if !visiting.TryAdd(typed.t) {
			return nil
		}
		defer visiting.Remove(typed.t)

		out := make(map[string]any)
		typed.t.ForEach(func(k, e lua.LValue) {
			out[k.String()] = b.export(b.fromLua(e), visiting)
		})
		return out
	case lua.LValue:
		return fmt.Sprint(typed)
	default:
		return typed
	}
}
