// Package arr provides standalone, stateless helper functions for nested
// values and generic slices, inspired by Laravel's Arr facade.
//
// # Path lookup
//
// [Value] resolves a path expression against any nested structure of
// map[string]any, []any, typed maps, slices, arrays, structs and pointers.
// Segments are separated by "." and may also be written in brackets:
//
//	doc := map[string]any{"a": map[string]any{"b": map[string]any{"c": []any{1, 2}}}}
//	arr.Value(doc, "a.b.c[1]")   // → 2, true
//	arr.Value(doc, "a.missing")  // → nil, false
//
// A missing member is reported through the boolean result, never as an error
// or a panic, so a stored nil and an absent member stay distinguishable.
//
// # Keyed operations
//
// [GroupBy], [CollectBy], [IndexBy], [DifferenceBy] and [IntersectionBy]
// parameterise grouping and set semantics over a caller-supplied key
// function:
//
//	byMake := arr.GroupBy(cars, func(c Car) string { return c.Make })
//	byMake.Keys() // makes in order of first appearance
//
//	rest := arr.DifferenceBy(mine, theirs, func(c Car) string { return c.Make })
//
// Mapping results are [collections.Map] values, which iterate in insertion
// order.
//
// # Inputs are never modified
//
// Every helper builds and returns new slices and maps.
package arr
