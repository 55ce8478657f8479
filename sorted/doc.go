// Package sorted builds fixed-length, immutable sequences ordered by a
// caller-supplied strict weak order.
//
// # Overview
//
// A [Vector] is created once, from a complete list of items, and never changes
// afterwards. [New] copies its input, sorts the copy with an in-place
// partition-exchange sort ([Sort]) and wraps the result. There is no API to
// add, remove or replace elements, so a Vector can be shared freely between
// goroutines.
//
//	v := sorted.NewOrdered(3, 6, 1, 8)
//	v.At(0) // 1
//	v.At(3) // 8
//
// # Ordering
//
// The ordering is a [compare.LessFunc]. Equal elements may end up in any
// relative order: the sort is not stable, and callers must not rely on
// insertion order surviving among equivalent items.
//
// # Edge cases
//
// An empty Vector is valid; every positional access on it fails with
// [errors.ErrIndexOutOfRange]. A single-item Vector is stored as given and the
// ordering is never consulted.
package sorted
