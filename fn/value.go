package fn

import (
	"fmt"
	"slices"
	"strings"
)

// Value is the accumulator carried between pipeline stages: either a single
// value or a tuple of positional arguments. The zero Value is an empty tuple.
type Value struct {
	single bool
	vals   []any
}

// Single wraps v as a single-value result.
func Single(v any) Value {
	return Value{single: true, vals: []any{v}}
}

// Tuple wraps vs as a positional-argument tuple. The next stage receives
// each element as a separate argument.
func Tuple(vs ...any) Value {
	return Value{vals: slices.Clone(vs)}
}

// IsTuple reports whether v is a tuple.
func (v Value) IsTuple() bool { return !v.single }

// Len returns the number of values carried: 1 for a single value.
func (v Value) Len() int { return len(v.vals) }

// Get returns the single value, or a copy of the tuple elements as []any.
func (v Value) Get() any {
	if v.single {
		return v.vals[0]
	}
	return v.Values()
}

// Values returns the carried values as a slice. A single value yields a
// one-element slice.
func (v Value) Values() []any {
	out := make([]any, len(v.vals))
	copy(out, v.vals)
	return out
}

// String renders a single value with %v and a tuple as "(a, b, ...)".
func (v Value) String() string {
	if v.single {
		return fmt.Sprint(v.vals[0])
	}
	parts := make([]string, len(v.vals))
	for i, e := range v.vals {
		parts[i] = fmt.Sprint(e)
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

// lift turns a step's return value into the next accumulator.
func lift(out any) Value {
	if v, ok := out.(Value); ok {
		return v
	}
	return Single(out)
}
