package arr

import "cmp"

// Number is the set of types [SumBy] can accumulate.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// ─────────────────────────────────────────────────────────────────────────────
// Head & tail
// ─────────────────────────────────────────────────────────────────────────────

// Head returns the first element.
// Returns the zero value and false when items is empty.
func Head[T any](items []T) (T, bool) {
	if len(items) == 0 {
		var zero T
		return zero, false
	}
	return items[0], true
}

// Tail returns a copy of every element but the first. An empty input yields
// an empty slice.
func Tail[T any](items []T) []T {
	if len(items) <= 1 {
		return []T{}
	}
	out := make([]T, len(items)-1)
	copy(out, items[1:])
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// Restructuring
// ─────────────────────────────────────────────────────────────────────────────

// Flatten recursively flattens any nested []any structure.
//
//	Flatten([]any{1, []any{2, []any{3, 4}}, 5}) // → [1 2 3 4 5]
func Flatten(items any) []any {
	out := make([]any, 0)
	var flatten func(v any)
	flatten = func(v any) {
		switch val := v.(type) {
		case []any:
			for _, elem := range val {
				flatten(elem)
			}
		default:
			out = append(out, val)
		}
	}
	flatten(items)
	return out
}

// DropWhile drops leading elements for as long as pred holds and returns a
// copy of the rest.
//
//	DropWhile([]int{1, 2, 5, 1}, func(n int) bool { return n < 5 }) // → [5 1]
func DropWhile[T any](items []T, pred func(T) bool) []T {
	i := 0
	for i < len(items) && pred(items[i]) {
		i++
	}
	out := make([]T, len(items)-i)
	copy(out, items[i:])
	return out
}

// BifurcateBy splits items into those for which pred(item, index) holds and
// those for which it does not. Both keep input order.
func BifurcateBy[T any](items []T, pred func(T, int) bool) ([]T, []T) {
	pass := make([]T, 0)
	fail := make([]T, 0)
	for i, item := range items {
		if pred(item, i) {
			pass = append(pass, item)
		} else {
			fail = append(fail, item)
		}
	}
	return pass, fail
}

// ─────────────────────────────────────────────────────────────────────────────
// Aggregation & ordering
// ─────────────────────────────────────────────────────────────────────────────

// SumBy returns the sum of fn(item) over items.
func SumBy[T any, N Number](items []T, fn func(T) N) N {
	var total N
	for _, item := range items {
		total += fn(item)
	}
	return total
}

// Ascending builds a comparator ordering elements by the value fn extracts,
// smallest first. Use it with slices.SortFunc.
//
//	slices.SortFunc(products, arr.Ascending(func(p Product) float64 { return p.Price }))
func Ascending[T any, V cmp.Ordered](fn func(T) V) func(a, b T) int {
	return func(a, b T) int {
		return cmp.Compare(fn(a), fn(b))
	}
}

// Descending is the reverse of [Ascending]: largest first.
func Descending[T any, V cmp.Ordered](fn func(T) V) func(a, b T) int {
	return func(a, b T) int {
		return cmp.Compare(fn(b), fn(a))
	}
}
