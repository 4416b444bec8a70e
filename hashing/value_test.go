package hashing

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zeebo/xxh3"
)

type point struct {
	x, y  int
	label string
	tags  map[string]int
	next  *point
}

type fixedCode int

func (f fixedCode) HashCode() uint64 { return 7 } //nolint:mnd

func TestCode_EqualValuesAgree(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		a, b any
	}{
		{"nil", nil, nil},
		{"int", 42, 42},
		{"string", "hello", "hello"},
		{"negative zero", math.Copysign(0, -1), 0.0},
		{"complex", complex(1, 2), complex(1, 2)},
		{"slice", []string{"a", "b"}, []string{"a", "b"}},
		{"array", [2]int{1, 2}, [2]int{1, 2}},
		{"map", map[string]int{"a": 1, "b": 2, "c": 3}, map[string]int{"c": 3, "b": 2, "a": 1}},
		{"pointer to equal values", &point{x: 1}, &point{x: 1}},
		{
			"struct with unexported fields",
			point{x: 1, y: 2, label: "p", tags: map[string]int{"k": 1}},
			point{x: 1, y: 2, label: "p", tags: map[string]int{"k": 1}},
		},
		{"nil func", (func())(nil), (func())(nil)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, Code(tt.a), Code(tt.b))
		})
	}
}

func TestCode_DifferentValuesDiffer(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		a, b any
	}{
		{"int", 1, 2},
		{"string vs int", "1", 1},
		{"int vs uint", 1, uint(1)},
		{"slice order", []int{1, 2}, []int{2, 1}},
		{"slice length", []int{1}, []int{1, 1}},
		{"map value", map[string]int{"a": 1}, map[string]int{"a": 2}},
		{"struct field", point{x: 1}, point{y: 1}},
		{"nil vs value", nil, 0},
		{"bool", true, false},
		{"string boundaries", []string{"ab", "c"}, []string{"a", "bc"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.NotEqual(t, Code(tt.a), Code(tt.b))
		})
	}
}

func TestCode_HashCoder(t *testing.T) {
	t.Parallel()

	assert.Equal(t, uint64(7), Code(fixedCode(1)))
	assert.Equal(t, Code(fixedCode(1)), Code(fixedCode(2)))
}

func TestCode_Cycles(t *testing.T) {
	t.Parallel()

	a := &point{x: 1}
	a.next = a

	b := &point{x: 1}
	b.next = b

	assert.Equal(t, Code(a), Code(b))

	ring := func() *point {
		first, second := &point{x: 1}, &point{x: 1}
		first.next, second.next = second, first

		return first
	}

	assert.Equal(t, Code(ring()), Code(ring()))
	assert.NotPanics(t, func() { Code(ring()) })

	self := []any{nil}
	self[0] = self

	assert.NotPanics(t, func() { Code(self) })
}

func TestCode_Deterministic(t *testing.T) {
	t.Parallel()

	value := map[string][]int{"a": {1, 2}, "b": {3}, "c": nil}

	first := Code(value)
	for range 20 {
		assert.Equal(t, first, Code(value))
	}
}

func TestUpdateValue_MatchesCode(t *testing.T) {
	t.Parallel()

	h := xxh3.New()

	require.NoError(t, UpdateValue(h, point{x: 3, label: "p"}))
	assert.Equal(t, Code(point{x: 3, label: "p"}), h.Sum64())
}

func TestUpdateValue_PropagatesWriteErrors(t *testing.T) {
	t.Parallel()

	err := UpdateValue(&brokenHash{}, []int{1, 2, 3})
	require.ErrorIs(t, err, errHashTest)
}

type brokenHash struct {
	recordingHash
}

func (b *brokenHash) Write([]byte) (int, error) {
	return 0, errHashTest
}

func TestCombine(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Combine(1, 2, 3), Combine(1, 2, 3))
	assert.NotEqual(t, Combine(1, 2, 3), Combine(3, 2, 1))
	assert.NotEqual(t, Combine(1, 1), Combine(1, 1, 1))
	assert.NotEqual(t, Combine(1, 2, 3, 4), Combine(1, 2, 3, 5))
}
