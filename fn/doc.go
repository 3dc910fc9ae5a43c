// Package fn provides left-to-right function composition for stages of
// arbitrary arity, plus small helpers that are commonly composed with it.
//
// # Pipe
//
// [Pipe] threads an accumulator through a list of [Step] functions. The
// accumulator is a [Value]: either a single value or a tuple of positional
// arguments. It starts as the tuple of extra arguments given to Pipe. A tuple
// accumulator is spread into the next step's arguments; a single value is
// passed as the only argument.
//
//	out := fn.Pipe([]fn.Step{
//	    fn.Binary(func(a, b int) int { return a - b }),
//	    fn.Unary(func(n int) int { if n < 0 { return -n }; return n }),
//	}, 5, 10)
//	out.Get() // → 5
//
// A step hands a tuple to its successor by returning [Tuple]. Steps built with
// [Func] do so automatically for functions with several results.
//
// # Errors
//
// Pipe recovers nothing. A panicking step, or a step that cannot accept the
// arguments it is handed, panics straight through to the caller. Wrap a
// step with [Recover], or the whole call with [RecoverWith], to substitute a
// default instead.
package fn
