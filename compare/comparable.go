// Package compare provides utilities for comparing values.
package compare

import "reflect"

// Comparable is a generic interface for types that can compare themselves for equality.
// Types implementing this interface must provide their own Equals method that determines
// whether two values are equal according to the type's semantics.
type Comparable[T any] interface {
	Equals(other T) bool
}

// Equals compares two values using the Comparable interface.
// It delegates to the Equals method of the first argument.
func Equals[T any](a Comparable[T], b T) bool {
	return a.Equals(b)
}

// Values reports whether a and b are equal. When T implements Comparable[T]
// its Equals method decides; otherwise the values are compared with
// reflect.DeepEqual. A nil pointer on either side is never passed to Equals,
// so it only equals another nil pointer.
func Values[T any](a, b T) bool {
	if c, ok := any(a).(Comparable[T]); ok && !isNilPointer(a) && !isNilPointer(b) {
		return c.Equals(b)
	}

	return reflect.DeepEqual(a, b)
}

func isNilPointer(value any) bool {
	v := reflect.ValueOf(value)

	return v.Kind() == reflect.Pointer && v.IsNil()
}
