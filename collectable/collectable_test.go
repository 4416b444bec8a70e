package collectable

import (
	"testing"

	"github.com/amp-labs/amp-tuple/hashing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type coordinate struct {
	Lat, Lng float64
}

func TestFromComparable_Equals(t *testing.T) {
	t.Parallel()

	assert.True(t, FromComparable(42).Equals(42))
	assert.False(t, FromComparable(42).Equals(43))
	assert.True(t, FromComparable("a").Equals("a"))
	assert.True(t, FromComparable(coordinate{1, 2}).Equals(coordinate{1, 2}))
	assert.False(t, FromComparable(coordinate{1, 2}).Equals(coordinate{2, 1}))
}

func TestFromComparable_HashConsistency(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		wrap   hashing.Hashable
		direct hashing.Hashable
	}{
		{"int", FromComparable(42), hashing.HashableInt(42)},
		{"int8", FromComparable(int8(42)), hashing.HashableInt8(42)},
		{"uint32", FromComparable(uint32(42)), hashing.HashableUint32(42)},
		{"float64", FromComparable(3.5), hashing.HashableFloat64(3.5)},
		{"bool", FromComparable(true), hashing.HashableBool(true)},
		{"string", FromComparable("test"), hashing.HashableString("test")},
		{"hashable", FromComparable(hashing.HashableString("x")), hashing.HashableString("x")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			wrapped, err := hashing.Sha256(tt.wrap)
			require.NoError(t, err)

			direct, err := hashing.Sha256(tt.direct)
			require.NoError(t, err)

			assert.Equal(t, direct, wrapped)
		})
	}
}

func TestFromComparable_Structs(t *testing.T) {
	t.Parallel()

	a, err := hashing.Xxh3(FromComparable(coordinate{1, 2}))
	require.NoError(t, err)

	b, err := hashing.Xxh3(FromComparable(coordinate{1, 2}))
	require.NoError(t, err)

	c, err := hashing.Xxh3(FromComparable(coordinate{2, 1}))
	require.NoError(t, err)

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
}

func TestComparableWrapper_ImplementsCollectable(t *testing.T) {
	t.Parallel()

	var _ Collectable[int] = &comparableWrapper[int]{value: 42}

	var _ Collectable[coordinate] = &comparableWrapper[coordinate]{}
}
