// Package collections provides an insertion-ordered generic mapping, [Map],
// used as the result type of the keyed grouping helpers in package arr.
//
// Go's built-in maps iterate in random order. Grouping and indexing results
// are expected to list keys in the order their first element was encountered,
// so they are returned as a *Map instead:
//
//	groups := collections.NewMap[string, []int]()
//	groups.Set("odd", []int{1, 3})
//	groups.Set("even", []int{2})
//	groups.Keys() // → ["odd", "even"]
//
// # Immutability
//
// Methods that return slices (Keys, Values, Entries) return copies, so
// callers can modify them without affecting the map.
//
// # JSON
//
// [Map.MarshalJSON] writes object members in insertion order, so a grouped
// result serialises the way it iterates.
package collections
