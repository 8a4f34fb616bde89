package reflectutils

import (
	"reflect"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type (
	outerConfig struct {
		Script  *scriptConfig
		Output  string
		private *scriptConfig
	}
	scriptConfig struct {
		Timeout int
		Name    string
	}
)

func TestWalkStruct(t *testing.T) {
	t.Run("it should visit every exported field with its path", func(t *testing.T) {
		// GIVEN
		element := &outerConfig{Script: &scriptConfig{}}
		var paths []string

		// WHEN
		WalkStruct(element, func(_ reflect.Value, _ reflect.Type, path []string) {
			paths = append(paths, strings.Join(path, "."))
		})

		// THEN
		assert.Equal(t, []string{"", "Script", "Script.Timeout", "Script.Name", "Output"}, paths)
	})

	t.Run("it should allocate nil struct pointers", func(t *testing.T) {
		// GIVEN
		element := &outerConfig{}

		// WHEN
		WalkStruct(element, CreateNilStructs)

		// THEN
		require.NotNil(t, element.Script)
		assert.Nil(t, element.private)
	})

	t.Run("it should not descend into nil pointers without allocating them", func(t *testing.T) {
		// GIVEN
		element := &outerConfig{}
		visited := 0

		// WHEN
		WalkStruct(element, func(_ reflect.Value, _ reflect.Type, _ []string) {
			visited++
		})

		// THEN
		assert.Equal(t, 3, visited) // root, Script (nil), Output
	})
}

func TestDeref(t *testing.T) {
	t.Run("it should follow pointers and interfaces", func(t *testing.T) {
		// GIVEN
		values := []int{1, 2}
		var boxed any = &values

		// WHEN
		val := Deref(reflect.ValueOf(&boxed))

		// THEN
		require.True(t, val.IsValid())
		assert.Equal(t, reflect.Slice, val.Kind())
		assert.Equal(t, 2, val.Len())
	})

	t.Run("it should return an invalid value for nil pointers", func(t *testing.T) {
		// GIVEN
		var nilSlice *[]int

		// WHEN
		val := Deref(reflect.ValueOf(nilSlice))

		// THEN
		assert.False(t, val.IsValid())
	})
}
