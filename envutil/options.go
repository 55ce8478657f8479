package envutil

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"
)

var (
	ErrInvalidChoice   = errors.New("invalid choice")
	ErrInvalidLogLevel = errors.New("invalid log level")
	ErrNotPositive     = errors.New("value must be positive")
)

// Option is a function which modifies a Reader. It's used by
// functions like String and Bool so that the caller can easily
// provide defaults, missing errors and validation.
type Option[T any] func(Reader[T]) Reader[T]

// Default allows you to provide a default value for the Reader.
func Default[T any](dfl T) Option[T] {
	return func(rdr Reader[T]) Reader[T] {
		return rdr.WithDefault(dfl)
	}
}

// IfMissing allows you to provide an error to return if the
// Reader is missing a value.
func IfMissing[T any](err error) Option[T] {
	return func(rdr Reader[T]) Reader[T] {
		return rdr.WithErrorIfMissing(err)
	}
}

// Validate allows you to provide a validation function to run
// on the Reader's value. If the validation function returns an
// error, the Reader will return that error.
func Validate[T any](f func(T) error) Option[T] {
	return func(rdr Reader[T]) Reader[T] {
		return rdr.Map(func(val T) (T, error) {
			err := f(val)

			return val, err
		})
	}
}

// OneOf rejects any value that isn't one of choices.
func OneOf[T comparable](choices ...T) Option[T] {
	return Validate(func(val T) error {
		if slices.Contains(choices, val) {
			return nil
		}

		return fmt.Errorf("%w: %v not in %v", ErrInvalidChoice, val, choices)
	})
}

// Positive rejects zero and negative values.
func Positive() Option[int] {
	return Validate(func(val int) error {
		if val > 0 {
			return nil
		}

		return fmt.Errorf("%w: %d", ErrNotPositive, val)
	})
}

func slogLevel(value string) (slog.Level, error) {
	switch value {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidLogLevel, value)
	}
}
