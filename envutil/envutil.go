// Package envutil reads typed configuration from environment variables.
//
// Every accessor returns a Reader, which carries the key, whether a value was
// present, any parse error and the value itself. Options such as Default and
// Validate are applied in order, and the caller decides at the end how to
// treat a missing or malformed value (Value, ValueOrElse, ValueOrFatal).
//
// Values are looked up in the context first (see WithEnvOverride) and then in
// the process environment, so tests can inject configuration without touching
// os.Setenv.
//
//nolint:ireturn
package envutil

import (
	"context"
	"log/slog"
	"os"
	"strconv"
	"strings"
)

// get returns a Reader for the given environment variable key.
func get(ctx context.Context, key string) Reader[string] {
	if val, ok := getEnvOverride(ctx, key); ok {
		return Reader[string]{key: key, present: true, value: val}
	}

	val, ok := os.LookupEnv(key)

	return Reader[string]{
		key:     key,
		present: ok,
		value:   val,
	}
}

func apply[T any](rdr Reader[T], opts []Option[T]) Reader[T] {
	for _, opt := range opts {
		rdr = opt(rdr)
	}

	return rdr
}

// String returns a Reader for the given environment variable key.
func String(ctx context.Context, key string, opts ...Option[string]) Reader[string] {
	return apply(get(ctx, key), opts)
}

// Bool parses the variable with strconv.ParseBool.
func Bool(ctx context.Context, key string, opts ...Option[bool]) Reader[bool] {
	return apply(Map(Map(get(ctx, key), trimString), strconv.ParseBool), opts)
}

// Int parses the variable as a base-10 integer.
func Int(ctx context.Context, key string, opts ...Option[int]) Reader[int] {
	return apply(Map(Map(get(ctx, key), trimString), strconv.Atoi), opts)
}

// SlogLevel parses debug, info, warn or error (case-insensitive).
func SlogLevel(ctx context.Context, key string, opts ...Option[slog.Level]) Reader[slog.Level] {
	return apply(Map(Map(Map(get(ctx, key), trimString), toLower), slogLevel), opts)
}

func trimString(s string) (string, error) {
	return strings.TrimSpace(s), nil
}

func toLower(s string) (string, error) {
	return strings.ToLower(s), nil
}
