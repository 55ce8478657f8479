// Package errors holds the sentinel errors shared across staticmap packages,
// plus a small accumulator for reporting several problems at once.
package errors

import (
	"errors"
	"fmt"
)

var (
	// ErrIndexOutOfRange is returned (or panicked with) when positional access
	// falls outside a sequence. Every index of an empty sequence is out of range.
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrNotSorted is returned when entries that were promised to be sorted are not.
	ErrNotSorted = errors.New("entries are not sorted")

	// ErrDuplicateKey is returned when a key appears more than once where keys
	// must be unique.
	ErrDuplicateKey = errors.New("duplicate key")

	ErrWrongType = errors.New("wrong type")
)

// IndexOutOfRange builds an error wrapping ErrIndexOutOfRange that names the
// offending index and the length it was checked against.
func IndexOutOfRange(index, length int) error {
	return fmt.Errorf("%w: index %d, length %d", ErrIndexOutOfRange, index, length)
}

// Collection is a thread-unsafe utility for accumulating multiple errors.
// It provides methods to add errors, check for errors, and retrieve them as a single combined error.
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

// Addf formats and appends an error. Use %w to wrap a sentinel.
func (c *Collection) Addf(format string, args ...any) {
	c.errors = append(c.errors, fmt.Errorf(format, args...)) //nolint:err113
}

// Clear removes all errors from the collection, resetting it to an empty state.
func (c *Collection) Clear() {
	c.errors = nil
}

// HasError returns true if the collection contains at least one error.
func (c *Collection) HasError() bool {
	return len(c.errors) > 0
}

// Len returns the number of errors collected so far.
func (c *Collection) Len() int {
	return len(c.errors)
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
