// Package errors holds the sentinel errors shared across packages and a
// helper for reporting several failures at once.
package errors

import "errors"

var (
	// ErrWrongType is returned when a value does not have the type a caller asked for.
	ErrWrongType = errors.New("wrong type")

	// ErrInvalidArity is returned when a sequence does not hold exactly as many
	// elements as the fixed-size value being built from it.
	ErrInvalidArity = errors.New("invalid arity")
)

// Collection is a thread-unsafe utility for accumulating multiple errors.
// Use this when you need to collect errors from multiple operations and return them together.
type Collection struct {
	errors []error
}

// Add appends an error to the collection. Nil errors are automatically ignored.
func (c *Collection) Add(err error) {
	if err != nil {
		c.errors = append(c.errors, err)
	}
}

// Clear removes all errors from the collection, resetting it to an empty state.
func (c *Collection) Clear() {
	c.errors = nil
}

// HasError returns true if the collection contains at least one error.
func (c *Collection) HasError() bool {
	return len(c.errors) > 0
}

// GetError returns the collected errors as a single error.
// Returns nil if the collection is empty, the single error if there's only one,
// or a joined error (using errors.Join) if there are multiple errors.
func (c *Collection) GetError() error {
	switch len(c.errors) {
	case 0:
		return nil
	case 1:
		return c.errors[0]
	default:
		return errors.Join(c.errors...)
	}
}
