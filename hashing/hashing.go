// Package hashing fingerprints values that know how to feed themselves into a
// hash.Hash. The code generator uses it to stamp generated tables with a digest
// of their source definition, so stale output can be detected.
package hashing

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"hash"
	"strings"

	"github.com/OneOfOne/xxhash"
	"github.com/zeebo/xxh3"
)

// ErrUnknownHash is returned by ByName for an unrecognised algorithm name.
var ErrUnknownHash = errors.New("unknown hash function")

// HashFunc is a function that takes a Hashable object
// and returns a string representation of its hashing.
// As an example, the Sha256 function is a HashFunc.
// This lets us talk about hashing functions in a generic way.
type HashFunc func(hashable Hashable) (string, error)

// Hashable is an interface that allows an object to update
// a hash.Hash with its contents. This is useful for hashing
// objects so that they can be easily compared.
type Hashable interface {
	UpdateHash(h hash.Hash) error
}

// Sha256 returns the SHA256 hashing of the given Hashable
// as a hex-encoded string. If the Hashable fails to
// update the hashing, an error is returned.
func Sha256(hashable Hashable) (string, error) {
	h := sha256.New()

	if err := hashable.UpdateHash(h); err != nil {
		return "", err
	}

	return hex.EncodeToString(h.Sum(nil)), nil
}

// Xxh3 returns the 64-bit XXH3 digest of the given Hashable as 16 hex digits.
func Xxh3(hashable Hashable) (string, error) {
	return sum64(xxh3.New(), hashable)
}

// Xxh64 returns the classic 64-bit xxHash (seed 0) of the given Hashable as
// 16 hex digits.
func Xxh64(hashable Hashable) (string, error) {
	return sum64(xxhash.New64(), hashable)
}

func sum64(h hash.Hash64, hashable Hashable) (string, error) {
	if err := hashable.UpdateHash(h); err != nil {
		return "", err
	}

	return fmt.Sprintf("%016x", h.Sum64()), nil
}

// ByName maps an algorithm name (xxh3, xxh64, sha256; case-insensitive) to its
// HashFunc.
func ByName(name string) (HashFunc, error) {
	switch strings.ToLower(name) {
	case "xxh3":
		return Xxh3, nil
	case "xxh64":
		return Xxh64, nil
	case "sha256":
		return Sha256, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownHash, name)
	}
}
