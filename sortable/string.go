package sortable

import "github.com/amp-labs/staticmap/compare"

type String string

var _ Sortable[String] = (*String)(nil)

func (s String) Equals(other String) bool {
	return string(s) == string(other)
}

func (s String) LessThan(other String) bool {
	return string(s) < string(other)
}

// NaturalString is a string key ordered by natural sort order, so that
// "item9" sorts before "item10". Two NaturalStrings are equal only when their
// bytes are equal.
type NaturalString string

var _ Sortable[NaturalString] = (*NaturalString)(nil)

func (s NaturalString) Equals(other NaturalString) bool {
	return string(s) == string(other)
}

func (s NaturalString) LessThan(other NaturalString) bool {
	return compare.Natural(string(s), string(other))
}
