package staticmap

import "fmt"

// Entry is one key/value pair stored in a Table.
type Entry[K any, V any] struct {
	Key   K
	Value V
}

// E is shorthand for Entry[K, V]{Key: key, Value: value}.
func E[K any, V any](key K, value V) Entry[K, V] {
	return Entry[K, V]{Key: key, Value: value}
}

// String renders the entry as key: value.
func (e Entry[K, V]) String() string {
	return fmt.Sprintf("%v: %v", e.Key, e.Value)
}
