// Package sortable provides wrapper types for primitive types that implement
// the Sortable interface, enabling their use as keys in static lookup tables.
//
// # Overview
//
// The sortable package defines the [Sortable] interface and provides ready-to-use
// implementations for common primitive types: [Int], [Byte], [String] and
// [NaturalString]. These types plug straight into
// [github.com/amp-labs/staticmap/staticmap.NewSortable], which takes its key
// ordering from LessThan and its key equality from ==.
//
// The Sortable interface extends [github.com/amp-labs/staticmap/compare.Comparable]
// by adding a LessThan method, providing both equality comparison and ordering.
// A table built over Sortable keys relies on Equals, LessThan and == agreeing:
// keys that are neither LessThan each other must be == equal.
//
// # Usage
//
//	table := staticmap.NewSortable(
//	    staticmap.E(sortable.NaturalString("page10"), 10),
//	    staticmap.E(sortable.NaturalString("page2"), 2),
//	)
//
//	// Entries come back as page2, page10.
//	for key, value := range table.All() {
//	    fmt.Println(key, value)
//	}
//
// # Creating Custom Sortable Types
//
// To create a custom sortable type, implement the Sortable interface:
//
//	type Version struct {
//	    Major int
//	    Minor int
//	}
//
//	func (v Version) Equals(other Version) bool {
//	    return v == other
//	}
//
//	func (v Version) LessThan(other Version) bool {
//	    if v.Major != other.Major {
//	        return v.Major < other.Major
//	    }
//	    return v.Minor < other.Minor
//	}
//
// Use [Less] to turn any Sortable type into a compare.LessFunc when an API asks
// for an explicit ordering.
//
// # Thread Safety
//
// The wrapper types in this package are value types and are inherently safe
// for concurrent reads.
package sortable
