package luabind

import (
	"math"

	"github.com/a-peyrard/luarray/array"
	"github.com/a-peyrard/luarray/fn"
	"github.com/a-peyrard/luarray/option"
	"github.com/a-peyrard/luarray/slices"
	lua "github.com/yuin/gopher-lua"
)

const metatableName = "luarray.Array"

type (
	// Options configures Open, see WithGlobal and WithNaturalSort.
	Options struct {
		global  string
		natural bool
	}

	binding struct {
		L       *lua.LState
		options Options
		mt      *lua.LTable
		methods *lua.LTable
	}
)

// WithGlobal changes the name of the global constructor, Array by default.
func WithGlobal(name string) option.Option[Options] {
	return func(opts *Options) {
		opts.global = name
	}
}

// WithNaturalSort makes sort and toSorted order strings naturally when no comparator
// is given.
func WithNaturalSort() option.Option[Options] {
	return func(opts *Options) {
		opts.natural = true
	}
}

// Open registers the array constructor as a global of L and returns it.
//
// The constructor is a table, callable like Array.new, holding the static
// functions new, of, from, isArray, isInstance and describe.
func Open(L *lua.LState, opts ...option.Option[Options]) *lua.LTable {
	b := &binding{
		L:       L,
		options: option.Build(Options{global: "Array"}, opts...),
	}

	b.methods = L.SetFuncs(L.NewTable(), b.methodFuncs())
	b.mt = L.NewTypeMetatable(metatableName)
	L.SetFuncs(b.mt, map[string]lua.LGFunction{
		"__index":    b.index,
		"__newindex": b.newIndex,
		"__len":      b.length,
		"__concat":   b.concat,
		"__tostring": b.toString,
		"__eq":       b.equal,
	})

	module := L.SetFuncs(L.NewTable(), map[string]lua.LGFunction{
		"new":        b.newArray,
		"of":         b.newArray,
		"from":       b.from,
		"isArray":    b.isArray,
		"isInstance": b.isInstance,
		"describe":   b.describe,
	})
	callable := L.NewTable()
	L.SetField(callable, "__call", L.NewFunction(func(L *lua.LState) int {
		return b.construct(L, 2)
	}))
	L.SetMetatable(module, callable)

	L.SetGlobal(b.options.global, module)
	return module
}

func (b *binding) wrap(arr *array.Array[any]) *lua.LUserData {
	ud := b.L.NewUserData()
	ud.Value = arr
	b.L.SetMetatable(ud, b.mt)
	return ud
}

func (b *binding) checkArray(L *lua.LState, n int) *array.Array[any] {
	ud := L.CheckUserData(n)
	arr, ok := ud.Value.(*array.Array[any])
	if !ok {
		L.ArgError(n, "array expected")
	}
	return arr
}

// toInt floors a Lua number into a position, saturating on overflow.
func toInt(n lua.LNumber) int {
	f := math.Floor(float64(n))
	switch {
	case math.IsNaN(f):
		return 0
	case f >= math.MaxInt32:
		return math.MaxInt32
	case f <= math.MinInt32:
		return math.MinInt32
	}
	return int(f)
}

func checkInt(L *lua.LState, n int) int {
	return toInt(L.CheckNumber(n))
}

// optInt reads the optional number at n, as zero or one position.
func optInt(L *lua.LState, n int) []int {
	if L.Get(n) == lua.LNil {
		return nil
	}
	return []int{checkInt(L, n)}
}

// bounds reads the optional start and end at n and n+1. A nil start means 1 and a
// nil end means past the last element, so an end given after a nil start still applies.
func bounds(L *lua.LState, n, length int) []int {
	out := []int{1, length + 1}
	for i := range out {
		if L.Get(n+i) != lua.LNil {
			out[i] = checkInt(L, n+i)
		}
	}
	return out
}

// args converts the arguments from position n to the top of the stack.
func (b *binding) args(L *lua.LState, n int) []any {
	var out []any
	for i := n; i <= L.GetTop(); i++ {
		out = append(out, b.fromLua(L.Get(i)))
	}
	return out
}

// call invokes f with one result. Errors raised by f propagate to the caller's
// protected call.
func (b *binding) call(L *lua.LState, f *lua.LFunction, args ...any) lua.LValue {
	if err := L.CallByParam(lua.P{Fn: f, NRet: 1, Protect: false}, slices.Map(args, b.toLua)...); err != nil {
		L.RaiseError("%s", err)
	}
	ret := L.Get(-1)
	L.Pop(1)
	return ret
}

func (b *binding) callback(L *lua.LState, f *lua.LFunction) array.Callback[any, any] {
	return func(element any, index int, arr *array.Array[any]) any {
		return b.fromLua(b.call(L, f, element, index, arr))
	}
}

func (b *binding) predicate(L *lua.LState, f *lua.LFunction) array.Predicate[any] {
	return func(element any, index int, arr *array.Array[any]) bool {
		return lua.LVAsBool(b.call(L, f, element, index, arr))
	}
}

func (b *binding) reducer(L *lua.LState, f *lua.LFunction) array.Reducer[any, any] {
	return func(acc any, element any, index int, arr *array.Array[any]) any {
		return b.fromLua(b.call(L, f, acc, element, index, arr))
	}
}

// comparator reads the optional comparator at n. A Lua comparator returns either a
// number whose sign orders the pair, or a boolean telling whether a sorts before b.
// A boolean in place of the comparator asks for the default order, descending when true.
func (b *binding) comparator(L *lua.LState, n int) []fn.Comparator[any] {
	switch v := L.Get(n).(type) {
	case *lua.LNilType:
		if b.options.natural {
			return []fn.Comparator[any]{array.NaturalCompare}
		}
		return nil
	case lua.LBool:
		base := fn.Comparator[any](array.DefaultCompare)
		if b.options.natural {
			base = array.NaturalCompare
		}
		if v {
			base = fn.ReverseComparator(base)
		}
		return []fn.Comparator[any]{base}
	}

	f := L.CheckFunction(n)
	return []fn.Comparator[any]{func(x, y any) fn.ComparisonResult {
		switch r := b.call(L, f, x, y).(type) {
		case lua.LNumber:
			return fn.Ordered(float64(r), 0)
		default:
			if lua.LVAsBool(r) {
				return fn.Less
			}
			return fn.Equal
		}
	}}
}

func (b *binding) construct(L *lua.LState, n int) int {
	L.Push(b.wrap(array.Of(b.args(L, n)...)))
	return 1
}

func (b *binding) newArray(L *lua.LState) int {
	return b.construct(L, 1)
}

func (b *binding) from(L *lua.LState) int {
	var mapper []func(any, int) any
	if L.Get(2) != lua.LNil {
		f := L.CheckFunction(2)
		mapper = append(mapper, func(element any, index int) any {
			return b.fromLua(b.call(L, f, element, index))
		})
	}

	arr, err := array.From(b.fromLua(L.Get(1)), mapper...)
	if err != nil {
		L.RaiseError("%s", err)
	}
	L.Push(b.wrap(arr))
	return 1
}

func (b *binding) isArray(L *lua.LState) int {
	L.Push(lua.LBool(array.IsArray(b.fromLua(L.Get(1)))))
	return 1
}

func (b *binding) isInstance(L *lua.LState) int {
	L.Push(lua.LBool(array.IsInstance(b.fromLua(L.Get(1)))))
	return 1
}

func (b *binding) describe(L *lua.LState) int {
	L.Push(lua.LString(array.Describe(b.fromLua(L.Get(1)))))
	return 1
}

func (b *binding) index(L *lua.LState) int {
	arr := b.checkArray(L, 1)
	switch key := L.Get(2).(type) {
	case lua.LNumber:
		v, _ := arr.At(toInt(key))
		L.Push(b.toLua(v))
	case lua.LString:
		L.Push(b.methods.RawGetString(string(key)))
	default:
		L.Push(lua.LNil)
	}
	return 1
}

// newIndex assigns a position. Assigning just past the end appends.
func (b *binding) newIndex(L *lua.LState) int {
	arr := b.checkArray(L, 1)
	pos := checkInt(L, 2)
	value := b.fromLua(L.Get(3))

	if pos == arr.Len()+1 {
		arr.Push(value)
		return 0
	}
	if err := arr.Set(pos, value); err != nil {
		L.RaiseError("%s", err)
	}
	return 0
}

func (b *binding) length(L *lua.LState) int {
	L.Push(lua.LNumber(b.checkArray(L, 1).Len()))
	return 1
}

func (b *binding) concat(L *lua.LState) int {
	merged, err := array.Merge(b.fromLua(L.Get(1)), b.fromLua(L.Get(2)))
	if err != nil {
		L.RaiseError("%s", err)
	}
	L.Push(b.wrap(merged))
	return 1
}

func (b *binding) toString(L *lua.LState) int {
	L.Push(lua.LString(b.checkArray(L, 1).String()))
	return 1
}

// equal compares identities: two userdata wrapping the same array are equal.
func (b *binding) equal(L *lua.LState) int {
	L.Push(lua.LBool(b.checkArray(L, 1) == b.checkArray(L, 2)))
	return 1
}
