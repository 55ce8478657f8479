// Package staticmap provides an immutable associative table for key/value sets
// that are fully known before the program needs them, such as name to handler
// dispatch tables.
//
// # Overview
//
// A [Table] is built once from its complete entry list. Construction sorts the
// entries by key and never fails; afterwards the table offers binary-search
// lookup, positional access and ordered iteration, and nothing else. There is
// no way to add, remove or update an entry.
//
//	var handlers = staticmap.NewOrdered(
//	    staticmap.E("func0", func0),
//	    staticmap.E("func3", func3),
//	    staticmap.E("func1", func1),
//	)
//
//	if fn, ok := handlers.Get(name); ok {
//	    fn(arg)
//	}
//
// Declaring a table as a package-level variable builds it during package
// initialisation. For large tables the staticmapgen command can sort the
// entries ahead of time and emit Go source that only verifies the order at
// start-up (see [FromSorted]).
//
// # Ordering and equality
//
// Lookups order keys with the table's [compare.LessFunc] and confirm a hit
// with ==. The two must agree: keys that are neither less than one another
// have to be ==. Violating this is a caller error and produces unspecified
// (but memory-safe) lookup results.
//
// Duplicate keys are accepted. Which of the duplicates a lookup returns is
// unspecified, since the sort does not preserve insertion order.
//
// # Concurrency
//
// Every method is read-only, so a Table may be used from any number of
// goroutines without synchronisation.
package staticmap
