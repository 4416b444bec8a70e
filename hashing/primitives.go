package hashing

import (
	"encoding/binary"
	"hash"
	"math"
)

// The HashableX types wrap Go primitives so they can be used wherever a
// Hashable is expected. Integers are written as 8 little-endian bytes
// regardless of their width.

type (
	HashableInt     int
	HashableInt8    int8
	HashableInt16   int16
	HashableInt32   int32
	HashableInt64   int64
	HashableUint    uint
	HashableUint8   uint8
	HashableUint16  uint16
	HashableUint32  uint32
	HashableUint64  uint64
	HashableFloat32 float32
	HashableFloat64 float64
	HashableBool    bool
)

func writeUint64(h hash.Hash, value uint64) error {
	var buf [8]byte

	binary.LittleEndian.PutUint64(buf[:], value)

	_, err := h.Write(buf[:])

	return err
}

func (i HashableInt) UpdateHash(h hash.Hash) error   { return writeUint64(h, uint64(i)) } //nolint:gosec
func (i HashableInt8) UpdateHash(h hash.Hash) error  { return writeUint64(h, uint64(i)) } //nolint:gosec
func (i HashableInt16) UpdateHash(h hash.Hash) error { return writeUint64(h, uint64(i)) } //nolint:gosec
func (i HashableInt32) UpdateHash(h hash.Hash) error { return writeUint64(h, uint64(i)) } //nolint:gosec
func (i HashableInt64) UpdateHash(h hash.Hash) error { return writeUint64(h, uint64(i)) } //nolint:gosec

func (u HashableUint) UpdateHash(h hash.Hash) error   { return writeUint64(h, uint64(u)) }
func (u HashableUint8) UpdateHash(h hash.Hash) error  { return writeUint64(h, uint64(u)) }
func (u HashableUint16) UpdateHash(h hash.Hash) error { return writeUint64(h, uint64(u)) }
func (u HashableUint32) UpdateHash(h hash.Hash) error { return writeUint64(h, uint64(u)) }
func (u HashableUint64) UpdateHash(h hash.Hash) error { return writeUint64(h, uint64(u)) }

// UpdateHash writes the IEEE 754 bits, with -0 folded into +0 so that values
// equal under == hash the same.
func (f HashableFloat32) UpdateHash(h hash.Hash) error {
	return writeUint64(h, math.Float64bits(normalizeFloat(float64(f))))
}

func (f HashableFloat64) UpdateHash(h hash.Hash) error {
	return writeUint64(h, math.Float64bits(normalizeFloat(float64(f))))
}

func (b HashableBool) UpdateHash(h hash.Hash) error {
	if b {
		return writeUint64(h, 1)
	}

	return writeUint64(h, 0)
}

func (i HashableInt) Equals(other HashableInt) bool         { return i == other }
func (i HashableInt8) Equals(other HashableInt8) bool       { return i == other }
func (i HashableInt16) Equals(other HashableInt16) bool     { return i == other }
func (i HashableInt32) Equals(other HashableInt32) bool     { return i == other }
func (i HashableInt64) Equals(other HashableInt64) bool     { return i == other }
func (u HashableUint) Equals(other HashableUint) bool       { return u == other }
func (u HashableUint8) Equals(other HashableUint8) bool     { return u == other }
func (u HashableUint16) Equals(other HashableUint16) bool   { return u == other }
func (u HashableUint32) Equals(other HashableUint32) bool   { return u == other }
func (u HashableUint64) Equals(other HashableUint64) bool   { return u == other }
func (f HashableFloat32) Equals(other HashableFloat32) bool { return f == other }
func (f HashableFloat64) Equals(other HashableFloat64) bool { return f == other }
func (b HashableBool) Equals(other HashableBool) bool       { return b == other }

func normalizeFloat(f float64) float64 {
	if f == 0 {
		return 0
	}

	return f
}
