package tuple

import (
	"bytes"
	"fmt"
	"hash"
	"reflect"
	"strings"

	"github.com/amp-labs/amp-tuple/errors"
	"github.com/amp-labs/amp-tuple/hashing"
	"github.com/amp-labs/amp-tuple/zero"
)

// ErrInvalidArity is returned when a tuple is built from a sequence whose
// length differs from the tuple's arity.
var ErrInvalidArity = errors.ErrInvalidArity

// Tuple is implemented by every TupleN type in this package.
type Tuple interface {
	hashing.Hashable
	hashing.HashCoder
	fmt.Stringer

	// Len returns the arity of the tuple.
	Len() int

	// ToSlice returns the tuple's values in order, as a new slice.
	ToSlice() []any

	equalsTuple(other Tuple) bool
}

// Equal reports whether a and b have the same arity and field types, and all
// of their values are pairwise equal. It returns false, rather than failing,
// when the tuples have different shapes.
func Equal(a, b Tuple) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	return a.equalsTuple(b)
}

func checkArity(arity int, items []any) error {
	if len(items) != arity {
		return fmt.Errorf("%w: expected %d items, got %d", ErrInvalidArity, arity, len(items))
	}

	return nil
}

// itemAt converts items[index] to T. A nil item is accepted when T can hold nil.
func itemAt[T any](items []any, index int) (T, error) { //nolint:ireturn
	item := items[index]

	if item == nil {
		if zero.IsNillable[T]() {
			return zero.Value[T](), nil
		}

		return zero.Value[T](), fmt.Errorf("%w: item %d is nil, want %s",
			errors.ErrWrongType, index+1, reflect.TypeFor[T]())
	}

	value, ok := item.(T)
	if !ok {
		return zero.Value[T](), fmt.Errorf("%w: item %d is %T, want %s",
			errors.ErrWrongType, index+1, item, reflect.TypeFor[T]())
	}

	return value, nil
}

func format(values ...any) string {
	var sb strings.Builder

	sb.WriteByte('[')

	for i, value := range values {
		if i > 0 {
			sb.WriteString(", ")
		}

		_, _ = fmt.Fprint(&sb, value)
	}

	sb.WriteByte(']')

	return sb.String()
}

// updateHash writes each value to h. Hashable values are length-prefixed so
// that the boundary between neighbouring values is part of the hash.
func updateHash(h hash.Hash, values ...any) error {
	for _, value := range values {
		hashable, ok := value.(hashing.Hashable)
		if !ok || isNilPointer(value) {
			if err := hashing.UpdateValue(h, value); err != nil {
				return err
			}

			continue
		}

		var buf frame

		if err := hashable.UpdateHash(&buf); err != nil {
			return err
		}

		if err := hashing.HashableUint64(buf.Len()).UpdateHash(h); err != nil {
			return err
		}

		if _, err := h.Write(buf.Bytes()); err != nil {
			return err
		}
	}

	return nil
}

func isNilPointer(value any) bool {
	v := reflect.ValueOf(value)

	return v.Kind() == reflect.Pointer && v.IsNil()
}

// frame is a hash.Hash that only records what is written to it.
type frame struct {
	bytes.Buffer
}

func (f *frame) Sum(b []byte) []byte { return append(b, f.Bytes()...) }
func (f *frame) Size() int           { return f.Len() }
func (f *frame) BlockSize() int      { return 1 }
