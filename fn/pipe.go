package fn

import (
	"fmt"
	"reflect"
)

// Step is one pipeline stage. It receives the spread accumulator and returns
// the next one. Return a [Tuple] to pass several arguments on; any other
// return value is a single value.
type Step func(args ...any) any

// Pipe composes steps left to right. The accumulator starts as
// Tuple(args...). At each step a tuple accumulator is spread into the step's
// arguments and a single accumulator is passed alone. With no steps the
// initial tuple is returned unchanged.
//
//	fn.Pipe(nil, 1, 2)                        // → (1, 2)
//	fn.Pipe(steps, 4.2).Get()                  // → result of the last step
func Pipe(steps []Step, args ...any) Value {
	acc := Tuple(args...)
	for _, s := range steps {
		acc = invoke(s, acc)
	}
	return acc
}

// Compose returns a function that runs [Pipe] over steps with its arguments.
func Compose(steps ...Step) func(args ...any) Value {
	return func(args ...any) Value {
		return Pipe(steps, args...)
	}
}

func invoke(s Step, acc Value) Value {
	if acc.single {
		return lift(s(acc.vals[0]))
	}
	return lift(s(acc.vals...))
}

// Chain applies fns to value in order. All functions share one type, so no
// dispatch is needed.
//
//	fn.Chain("go", strings.ToUpper, func(s string) string { return s + "!" }) // → "GO!"
func Chain[T any](value T, fns ...func(T) T) T {
	result := value
	for _, f := range fns {
		result = f(result)
	}
	return result
}

// ─────────────────────────────────────────────────────────────────────────────
// Step adapters
// ─────────────────────────────────────────────────────────────────────────────

// Unary adapts a one-argument function. Invoking the step with any other
// number of arguments panics with an [*ArityError]; an argument of the wrong
// type panics with a runtime type assertion error.
func Unary[A, R any](f func(A) R) Step {
	return func(args ...any) any {
		if len(args) != 1 {
			panic(&ArityError{Want: 1, Got: len(args)})
		}
		return f(argAs[A](args[0]))
	}
}

// Binary adapts a two-argument function. See [Unary] for mismatch behaviour.
func Binary[A, B, R any](f func(A, B) R) Step {
	return func(args ...any) any {
		if len(args) != 2 {
			panic(&ArityError{Want: 2, Got: len(args)})
		}
		return f(argAs[A](args[0]), argAs[B](args[1]))
	}
}

// Spread adapts a function that returns two values into a step whose result
// is a two-element [Tuple].
func Spread[A, R1, R2 any](f func(A) (R1, R2)) Step {
	return func(args ...any) any {
		if len(args) != 1 {
			panic(&ArityError{Want: 1, Got: len(args)})
		}
		r1, r2 := f(argAs[A](args[0]))
		return Tuple(r1, r2)
	}
}

// Func adapts any function value via reflection. Arguments are passed
// positionally, nil becoming the parameter's zero value. No result yields a
// nil single value, one result a single value, and several results a
// [Tuple]. Arity or type mismatches panic the way reflect.Value.Call does.
//
//	fn.Func(strings.Repeat)  // (string, int) → string
//	fn.Func(math.Modf)       // float64 → (float64, float64) tuple
func Func(f any) Step {
	fv := reflect.ValueOf(f)
	if fv.Kind() != reflect.Func {
		panic(fmt.Errorf("%w: %T", ErrNotFunc, f))
	}
	ft := fv.Type()
	return func(args ...any) any {
		in := make([]reflect.Value, len(args))
		for i, a := range args {
			in[i] = argValue(ft, i, a)
		}
		out := fv.Call(in)
		switch len(out) {
		case 0:
			return nil
		case 1:
			return out[0].Interface()
		}
		vals := make([]any, len(out))
		for i, o := range out {
			vals[i] = o.Interface()
		}
		return Tuple(vals...)
	}
}

func argAs[A any](v any) A {
	if v == nil {
		var zero A
		return zero
	}
	return v.(A)
}

// argValue returns the reflect.Value for argument i. A nil argument becomes
// the zero value of the matching parameter when one exists.
func argValue(ft reflect.Type, i int, a any) reflect.Value {
	if a != nil {
		return reflect.ValueOf(a)
	}
	var pt reflect.Type
	switch {
	case ft.IsVariadic() && i >= ft.NumIn()-1:
		pt = ft.In(ft.NumIn() - 1).Elem()
	case i < ft.NumIn():
		pt = ft.In(i)
	default:
		return reflect.Value{}
	}
	return reflect.Zero(pt)
}
