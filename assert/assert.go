// Package assert provides type assertion utilities with error handling, plus
// internal invariant checks that can be compiled out with the
// assertions_disabled build tag.
package assert

import (
	"fmt"

	"github.com/amp-labs/staticmap/errors"
)

// Type asserts that the given value is of the expected type T.
// If the assertion fails, it returns an error indicating the mismatch.
//
//nolint:ireturn
func Type[T any](val any) (T, error) {
	of, ok := val.(T)
	if !ok {
		return of, fmt.Errorf("%w: expected type %T, but received %T", errors.ErrWrongType, of, val)
	}

	return of, nil
}
