package arr

import (
	"cmp"
	"slices"

	"github.com/hasbyte1/go-fn-utils/collections"
)

// ─────────────────────────────────────────────────────────────────────────────
// Keyed grouping, indexing & set operations
//
// Every helper here takes a key function fn that maps an element to a
// comparable key. fn may be called more than once per element and must be
// deterministic. A panic raised by fn is not recovered.
//
// Results that are mappings are returned as *collections.Map so that keys
// iterate in the order their first element appeared in the input.
// ─────────────────────────────────────────────────────────────────────────────

// buildIndex appends each item to the group stored under fn(item).
func buildIndex[T any, K comparable](items []T, fn func(T) K) *collections.Map[K, []T] {
	groups := collections.NewMap[K, []T]()
	for _, item := range items {
		k := fn(item)
		group, _ := groups.Get(k)
		groups.Set(k, append(group, item))
	}
	return groups
}

// GroupBy groups items by the key extracted by fn. Keys appear in order of
// first occurrence; each group keeps input order.
//
//	GroupBy(cars, func(c Car) string { return c.Make })
//	// → {tesla: [3, y], ford: [mach-e]}
func GroupBy[T any, K comparable](items []T, fn func(T) K) *collections.Map[K, []T] {
	return buildIndex(items, fn)
}

// CollectBy returns the groups of [GroupBy] without their keys, in order of
// first occurrence.
func CollectBy[T any, K comparable](items []T, fn func(T) K) [][]T {
	return buildIndex(items, fn).Values()
}

// IndexBy keys every item by fn. When several items share a key the last one
// wins; the key keeps the position of its first occurrence.
func IndexBy[T any, K comparable](items []T, fn func(T) K) *collections.Map[K, T] {
	out := collections.NewMap[K, T](len(items))
	for _, item := range items {
		out.Set(fn(item), item)
	}
	return out
}

// DifferenceBy returns the items of a whose key does not occur among the
// keys of b. Order and duplicates of a are preserved.
//
//	DifferenceBy([]int{1, 2, 3}, []int{3, 4, 5}, func(n int) int { return n })
//	// → [1 2]
func DifferenceBy[T any, K comparable](a, b []T, fn func(T) K) []T {
	index := IndexBy(b, fn)
	out := make([]T, 0, len(a))
	for _, item := range a {
		if !index.Has(fn(item)) {
			out = append(out, item)
		}
	}
	return out
}

// IntersectionBy returns the items of a whose key occurs among the keys of b.
// Order and duplicates of a are preserved.
//
//	IntersectionBy([]int{1, 2, 3}, []int{2, 3, 4}, func(n int) int { return n })
//	// → [2 3]
func IntersectionBy[T any, K comparable](a, b []T, fn func(T) K) []T {
	keys := make(map[K]struct{}, len(b))
	for _, item := range b {
		keys[fn(item)] = struct{}{}
	}
	out := make([]T, 0, len(a))
	for _, item := range a {
		if _, found := keys[fn(item)]; found {
			out = append(out, item)
		}
	}
	return out
}

// FindKey returns the first key, in iteration order, whose value satisfies
// pred. pred also receives the key and the index itself. Returns the zero key
// and false when nothing matches.
//
//	FindKey(cars, func(c Car, _ string, _ collections.Enumerable[string, Car]) bool {
//	    return !c.Available
//	})
func FindKey[K comparable, V any](
	index collections.Enumerable[K, V],
	pred func(V, K, collections.Enumerable[K, V]) bool,
) (K, bool) {
	for k, v := range index.All() {
		if pred(v, k, index) {
			return k, true
		}
	}
	var zero K
	return zero, false
}

// FindKeyIn is [FindKey] for a plain Go map. Built-in maps have no insertion
// order, so keys are visited in ascending order.
func FindKeyIn[K cmp.Ordered, V any](m map[K]V, pred func(V, K, map[K]V) bool) (K, bool) {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	for _, k := range keys {
		if pred(m[k], k, m) {
			return k, true
		}
	}
	var zero K
	return zero, false
}
