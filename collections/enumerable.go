package collections

import "iter"

// Enumerable is the read-only surface of an insertion-ordered mapping.
// [*Map] satisfies it.
//
// Accept Enumerable in your own functions so that callers can pass a view
// over their own ordered storage without converting it to a *Map.
type Enumerable[K comparable, V any] interface {
	// Get returns the value stored under key and whether it was present.
	Get(key K) (V, bool)

	// Has reports whether key is present.
	Has(key K) bool

	// Len returns the number of entries.
	Len() int

	// Keys returns the keys in insertion order.
	Keys() []K

	// Values returns the values in key insertion order.
	Values() []V

	// All iterates over the entries in insertion order.
	All() iter.Seq2[K, V]
}

var _ Enumerable[string, int] = (*Map[string, int])(nil)
