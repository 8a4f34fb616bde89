package luabind

import (
	"github.com/a-peyrard/luarray/array"
	lua "github.com/yuin/gopher-lua"
)

func (b *binding) methodFuncs() map[string]lua.LGFunction {
	return map[string]lua.LGFunction{
		// access & search
		"at":            b.at,
		"indexOf":       b.indexOf,
		"lastIndexOf":   b.lastIndexOf,
		"includes":      b.includes,
		"find":          b.find,
		"findIndex":     b.findIndex,
		"findLast":      b.findLast,
		"findLastIndex": b.findLastIndex,

		// transformation
		"map":        b.mapElements,
		"filter":     b.filter,
		"slice":      b.slice,
		"concat":     b.concatArgs,
		"toReversed": b.toReversed,
		"toSorted":   b.toSorted,
		"toSpliced":  b.toSpliced,
		"with":       b.with,
		"flat":       b.flat,
		"flatMap":    b.flatMap,

		// mutation
		"push":       b.push,
		"pop":        b.pop,
		"shift":      b.shift,
		"unshift":    b.unshift,
		"fill":       b.fill,
		"copyWithin": b.copyWithin,
		"splice":     b.splice,
		"sort":       b.sort,
		"reverse":    b.reverse,

		// aggregation & iteration
		"reduce":      b.reduce,
		"reduceRight": b.reduceRight,
		"every":       b.every,
		"some":        b.some,
		"forEach":     b.forEach,
		"entries":     b.entries,
		"keys":        b.keys,
		"values":      b.values,

		// conversion
		"join":     b.join,
		"toString": b.toString,
	}
}

func (b *binding) at(L *lua.LState) int {
	v, _ := b.checkArray(L, 1).At(checkInt(L, 2))
	L.Push(b.toLua(v))
	return 1
}

func (b *binding) indexOf(L *lua.LState) int {
	arr := b.checkArray(L, 1)
	L.Push(lua.LNumber(arr.IndexOf(b.fromLua(L.Get(2)), optInt(L, 3)...)))
	return 1
}

func (b *binding) lastIndexOf(L *lua.LState) int {
	arr := b.checkArray(L, 1)
	L.Push(lua.LNumber(arr.LastIndexOf(b.fromLua(L.Get(2)), optInt(L, 3)...)))
	return 1
}

func (b *binding) includes(L *lua.LState) int {
	arr := b.checkArray(L, 1)
	L.Push(lua.LBool(arr.Includes(b.fromLua(L.Get(2)), optInt(L, 3)...)))
	return 1
}

func (b *binding) find(L *lua.LState) int {
	arr := b.checkArray(L, 1)
	v, _ := arr.Find(b.predicate(L, L.CheckFunction(2)))
	L.Push(b.toLua(v))
	return 1
}

func (b *binding) findIndex(L *lua.LState) int {
	arr := b.checkArray(L, 1)
	L.Push(lua.LNumber(arr.FindIndex(b.predicate(L, L.CheckFunction(2)))))
	return 1
}

func (b *binding) findLast(L *lua.LState) int {
	arr := b.checkArray(L, 1)
	v, _ := arr.FindLast(b.predicate(L, L.CheckFunction(2)))
	L.Push(b.toLua(v))
	return 1
}

func (b *binding) findLastIndex(L *lua.LState) int {
	arr := b.checkArray(L, 1)
	L.Push(lua.LNumber(arr.FindLastIndex(b.predicate(L, L.CheckFunction(2)))))
	return 1
}

func (b *binding) mapElements(L *lua.LState) int {
	arr := b.checkArray(L, 1)
	L.Push(b.wrap(arr.Map(b.callback(L, L.CheckFunction(2)))))
	return 1
}

func (b *binding) filter(L *lua.LState) int {
	arr := b.checkArray(L, 1)
	L.Push(b.wrap(arr.Filter(b.predicate(L, L.CheckFunction(2)))))
	return 1
}

func (b *binding) slice(L *lua.LState) int {
	arr := b.checkArray(L, 1)
	L.Push(b.wrap(arr.Slice(bounds(L, 2, arr.Len())...)))
	return 1
}

func (b *binding) concatArgs(L *lua.LState) int {
	arr := b.checkArray(L, 1)
	L.Push(b.wrap(arr.Concat(b.args(L, 2)...)))
	return 1
}

func (b *binding) toReversed(L *lua.LState) int {
	L.Push(b.wrap(b.checkArray(L, 1).ToReversed()))
	return 1
}

func (b *binding) toSorted(L *lua.LState) int {
	arr := b.checkArray(L, 1)
	L.Push(b.wrap(arr.ToSorted(b.comparator(L, 2)...)))
	return 1
}

// spliceArgs reads start, the optional delete count and the items to insert. An
// omitted count removes everything from start.
func (b *binding) spliceArgs(L *lua.LState, arr *array.Array[any]) (int, int, []any) {
	start := checkInt(L, 2)
	if L.GetTop() < 3 {
		return start, arr.Len(), nil
	}
	return start, checkInt(L, 3), b.args(L, 4)
}

func (b *binding) toSpliced(L *lua.LState) int {
	arr := b.checkArray(L, 1)
	start, count, items := b.spliceArgs(L, arr)
	L.Push(b.wrap(arr.ToSpliced(start, count, items...)))
	return 1
}

func (b *binding) with(L *lua.LState) int {
	arr := b.checkArray(L, 1)
	updated, err := arr.With(checkInt(L, 2), b.fromLua(L.Get(3)))
	if err != nil {
		L.RaiseError("%s", err)
	}
	L.Push(b.wrap(updated))
	return 1
}

func (b *binding) flat(L *lua.LState) int {
	arr := b.checkArray(L, 1)
	L.Push(b.wrap(arr.Flat(optInt(L, 2)...)))
	return 1
}

func (b *binding) flatMap(L *lua.LState) int {
	arr := b.checkArray(L, 1)
	L.Push(b.wrap(arr.FlatMap(b.callback(L, L.CheckFunction(2)))))
	return 1
}

func (b *binding) push(L *lua.LState) int {
	arr := b.checkArray(L, 1)
	L.Push(lua.LNumber(arr.Push(b.args(L, 2)...)))
	return 1
}

func (b *binding) pop(L *lua.LState) int {
	v, _ := b.checkArray(L, 1).Pop()
	L.Push(b.toLua(v))
	return 1
}

func (b *binding) shift(L *lua.LState) int {
	v, _ := b.checkArray(L, 1).Shift()
	L.Push(b.toLua(v))
	return 1
}

func (b *binding) unshift(L *lua.LState) int {
	arr := b.checkArray(L, 1)
	L.Push(lua.LNumber(arr.Unshift(b.args(L, 2)...)))
	return 1
}

func (b *binding) fill(L *lua.LState) int {
	arr := b.checkArray(L, 1)
	arr.Fill(b.fromLua(L.Get(2)), bounds(L, 3, arr.Len())...)
	L.Push(L.Get(1))
	return 1
}

func (b *binding) copyWithin(L *lua.LState) int {
	arr := b.checkArray(L, 1)
	arr.CopyWithin(checkInt(L, 2), bounds(L, 3, arr.Len())...)
	L.Push(L.Get(1))
	return 1
}

func (b *binding) splice(L *lua.LState) int {
	arr := b.checkArray(L, 1)
	start, count, items := b.spliceArgs(L, arr)
	L.Push(b.wrap(arr.Splice(start, count, items...)))
	return 1
}

func (b *binding) sort(L *lua.LState) int {
	arr := b.checkArray(L, 1)
	arr.Sort(b.comparator(L, 2)...)
	L.Push(L.Get(1))
	return 1
}

func (b *binding) reverse(L *lua.LState) int {
	b.checkArray(L, 1).Reverse()
	L.Push(L.Get(1))
	return 1
}

func (b *binding) reduce(L *lua.LState) int {
	arr := b.checkArray(L, 1)
	reducer := b.reducer(L, L.CheckFunction(2))
	var initial []any
	if L.GetTop() >= 3 {
		initial = append(initial, b.fromLua(L.Get(3)))
	}

	acc, err := arr.Reduce(reducer, initial...)
	if err != nil {
		L.RaiseError("%s", err)
	}
	L.Push(b.toLua(acc))
	return 1
}

func (b *binding) reduceRight(L *lua.LState) int {
	arr := b.checkArray(L, 1)
	reducer := b.reducer(L, L.CheckFunction(2))
	var initial []any
	if L.GetTop() >= 3 {
		initial = append(initial, b.fromLua(L.Get(3)))
	}

	acc, err := arr.ReduceRight(reducer, initial...)
	if err != nil {
		L.RaiseError("%s", err)
	}
	L.Push(b.toLua(acc))
	return 1
}

func (b *binding) every(L *lua.LState) int {
	arr := b.checkArray(L, 1)
	L.Push(lua.LBool(arr.Every(b.predicate(L, L.CheckFunction(2)))))
	return 1
}

func (b *binding) some(L *lua.LState) int {
	arr := b.checkArray(L, 1)
	L.Push(lua.LBool(arr.Some(b.predicate(L, L.CheckFunction(2)))))
	return 1
}

func (b *binding) forEach(L *lua.LState) int {
	arr := b.checkArray(L, 1)
	f := L.CheckFunction(2)
	arr.ForEach(func(element any, index int, current *array.Array[any]) {
		b.call(L, f, element, index, current)
	})
	return 0
}

// entries returns a generic-for iterator yielding (position, element). It shares the
// single-pass cursor of the Go iterator: each call pulls one pair.
func (b *binding) entries(L *lua.LState) int {
	seq := b.checkArray(L, 1).Entries()
	L.Push(L.NewFunction(func(L *lua.LState) int {
		pulled := 0
		seq(func(pos int, v any) bool {
			L.Push(lua.LNumber(pos))
			L.Push(b.toLua(v))
			pulled = 2
			return false
		})
		if pulled == 0 {
			L.Push(lua.LNil)
			return 1
		}
		return pulled
	}))
	return 1
}

func (b *binding) keys(L *lua.LState) int {
	seq := b.checkArray(L, 1).Keys()
	L.Push(L.NewFunction(func(L *lua.LState) int {
		next := lua.LValue(lua.LNil)
		seq(func(pos int) bool {
			next = lua.LNumber(pos)
			return false
		})
		L.Push(next)
		return 1
	}))
	return 1
}

// values returns a generic-for iterator over elements. As with any generic for, a
// nil element ends the loop.
func (b *binding) values(L *lua.LState) int {
	seq := b.checkArray(L, 1).Values()
	L.Push(L.NewFunction(func(L *lua.LState) int {
		next := lua.LValue(lua.LNil)
		seq(func(v any) bool {
			next = b.toLua(v)
			return false
		})
		L.Push(next)
		return 1
	}))
	return 1
}

func (b *binding) join(L *lua.LState) int {
	arr := b.checkArray(L, 1)
	L.Push(lua.LString(arr.Join(L.OptString(2, ","))))
	return 1
}
