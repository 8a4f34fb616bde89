package array

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJoin(t *testing.T) {
	testCases := []struct {
		name     string
		arr      *Array[any]
		sep      []string
		expected string
	}{
		{name: "default separator", arr: Of("Fire", "Air", "Water"), expected: "Fire,Air,Water"},
		{name: "empty separator", arr: Of("Fire", "Air", "Water"), sep: []string{""}, expected: "FireAirWater"},
		{name: "custom separator", arr: Of("Fire", "Air", "Water"), sep: []string{" - "}, expected: "Fire - Air - Water"},
		{name: "empty array", arr: Of(), expected: ""},
		{name: "nil elements", arr: Of(1, nil, 3), expected: "1,,3"},
		{name: "scalars", arr: Of(1.5, true, 2, float32(0.25)), sep: []string{" "}, expected: "1.5 true 2 0.25"},
		{name: "nested sequences", arr: Of(1, Of(2, []int{3, 4}), 5), sep: []string{";"}, expected: "1;2,3,4;5"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.arr.Join(tc.sep...))
		})
	}

	t.Run("it should render a self reference as empty text", func(t *testing.T) {
		// GIVEN
		arr := Of(1, 2)
		arr.Push(arr)

		// WHEN
		result := arr.Join()

		// THEN
		assert.Equal(t, "1,2,", result)
	})
}

func TestString(t *testing.T) {
	t.Run("it should join with commas", func(t *testing.T) {
		assert.Equal(t, "1,2,3", New(1, 2, 3).String())
		assert.Equal(t, "", New[string]().String())
	})
}

func TestDescribe(t *testing.T) {
	t.Run("it should render scalars", func(t *testing.T) {
		assert.Equal(t, "nil", Describe(nil))
		assert.Equal(t, "42", Describe(42))
		assert.Equal(t, "true", Describe(true))
		assert.Equal(t, `"a\"b"`, Describe(`a"b`))
	})

	t.Run("it should render empty structures", func(t *testing.T) {
		assert.Equal(t, "{}", Describe(New[int]()))
		assert.Equal(t, "{}", Describe([]string{}))
		assert.Equal(t, "{}", Describe(map[string]int{}))
	})

	t.Run("it should render nested arrays", func(t *testing.T) {
		// GIVEN
		arr := Of(1, "two", Of(nil, 3))

		// WHEN
		result := Describe(arr)

		// THEN
		expected := "{\n" +
			"  [1] = 1,\n" +
			"  [2] = \"two\",\n" +
			"  [3] = {\n" +
			"    [1] = nil,\n" +
			"    [2] = 3\n" +
			"  }\n" +
			"}"
		assert.Equal(t, expected, result)
	})

	t.Run("it should render maps with sorted keys", func(t *testing.T) {
		// GIVEN
		m := map[string]any{"b": 2, "a": []int{1}}

		// WHEN
		result := Describe(m)

		// THEN
		expected := "{\n" +
			"  [\"a\"] = {\n" +
			"    [1] = 1\n" +
			"  },\n" +
			"  [\"b\"] = 2\n" +
			"}"
		assert.Equal(t, expected, result)
	})

	t.Run("it should render cycles", func(t *testing.T) {
		// GIVEN
		arr := Of(1)
		arr.Push(arr)

		// WHEN
		result := Describe(arr)

		// THEN
		assert.Equal(t, "{\n  [1] = 1,\n  [2] = <cycle>\n}", result)
	})

	t.Run("it should render shared but acyclic references fully", func(t *testing.T) {
		// GIVEN
		shared := Of(1)

		// WHEN
		result := Describe(Of(shared, shared))

		// THEN
		assert.Equal(t, "{\n  [1] = {\n    [1] = 1\n  },\n  [2] = {\n    [1] = 1\n  }\n}", result)
	})
}
