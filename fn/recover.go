package fn

import (
	"context"
	"time"
)

// RecoverWith runs f and returns its result, or def when f returns an error
// or panics.
//
//	n := fn.RecoverWith(0, func() (int, error) { return strconv.Atoi(s) })
func RecoverWith[T any](def T, f func() (T, error)) (result T) {
	defer func() {
		if r := recover(); r != nil {
			result = def
		}
	}()
	v, err := f()
	if err != nil {
		return def
	}
	return v
}

// Recover wraps s so that a panic inside it yields Single(def) instead.
// This is the per-stage counterpart of [RecoverWith] for use inside [Pipe].
func Recover(def any, s Step) Step {
	return func(args ...any) (out any) {
		defer func() {
			if r := recover(); r != nil {
				out = Single(def)
			}
		}()
		return s(args...)
	}
}

// Sleep waits for d or until ctx is done, whichever comes first. It returns
// ctx.Err() when the context ends the wait.
func Sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
