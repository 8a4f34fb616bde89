package array

import (
	"cmp"
	"fmt"
	"reflect"
	"strings"

	"github.com/a-peyrard/luarray/fn"
)

const (
	rankNil = iota
	rankBool
	rankNumber
	rankString
	rankOther
)

// DefaultCompare is the ordering used by Sort without comparator.
//
// Values of different kinds are ordered nil < bool < number < string < anything else.
// Numbers compare numerically whatever their Go type, strings bytewise, booleans
// false first, and other values by their fmt rendering.
func DefaultCompare(x, y any) fn.ComparisonResult {
	return compareWith(x, y, func(s1, s2 string) fn.ComparisonResult {
		return fn.ComparisonResult(strings.Compare(s1, s2))
	})
}

// NaturalCompare is DefaultCompare where strings are ordered naturally ("a2" < "a10").
func NaturalCompare(x, y any) fn.ComparisonResult {
	return compareWith(x, y, fn.Natural)
}

func compareWith(x, y any, strCompare fn.Comparator[string]) fn.ComparisonResult {
	rx, ry := rank(x), rank(y)
	if rx != ry {
		return fn.ComparisonResult(cmp.Compare(rx, ry))
	}

	switch rx {
	case rankNil:
		return fn.Equal
	case rankBool:
		bx, by := reflect.ValueOf(x).Bool(), reflect.ValueOf(y).Bool()
		switch {
		case bx == by:
			return fn.Equal
		case by:
			return fn.Less
		default:
			return fn.Greater
		}
	case rankNumber:
		nx, _ := number(x)
		ny, _ := number(y)
		return fn.ComparisonResult(cmp.Compare(nx, ny))
	case rankString:
		return strCompare(reflect.ValueOf(x).String(), reflect.ValueOf(y).String())
	default:
		return strCompare(fmt.Sprint(x), fmt.Sprint(y))
	}
}

func rank(v any) int {
	if v == nil {
		return rankNil
	}
	if _, ok := number(v); ok {
		return rankNumber
	}
	switch reflect.ValueOf(v).Kind() {
	case reflect.Bool:
		return rankBool
	case reflect.String:
		return rankString
	default:
		return rankOther
	}
}

func number(v any) (float64, bool) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	default:
		return 0, false
	}
}
