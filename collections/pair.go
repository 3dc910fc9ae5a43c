package collections

import "fmt"

// Entry holds one key/value pair of a [Map].
// It is the element type produced by [Map.Entries].
type Entry[K comparable, V any] struct {
	Key   K
	Value V
}

// String returns a human-readable representation: "(key, value)".
func (e Entry[K, V]) String() string {
	return fmt.Sprintf("(%v, %v)", e.Key, e.Value)
}
