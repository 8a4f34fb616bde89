// Package luabind exposes the array package to Lua scripts running on gopher-lua.
//
// Open registers a global constructor (named Array by default) whose instances are
// userdata backed by an *array.Array[any]. Every array method is available under its
// camelCase name with the usual colon syntax:
//
//	local a = Array(1, 2, 3)
//	a:push(4)
//	print(a:map(function(v) return v * 2 end):join(" "))
//
// Values cross the boundary as follows: Lua numbers become float64, strings and
// booleans keep their Go counterparts, and nil is stored as a nil element. A Lua table
// holding a value at position 1, or the empty table, is sequence-like: its elements
// run up to the first hole and other keys are ignored. Any other table is kept as an
// opaque value. Positions given from Lua are floored, and a nil range bound stands
// for its default.
//
// Executor runs whole scripts in a fresh sandboxed state, with a timeout.
package luabind
