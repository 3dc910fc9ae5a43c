package fn

import (
	"errors"
	"fmt"
)

// ErrNotFunc is the panic value (wrapped) raised by [Func] when it is given
// something other than a function.
var ErrNotFunc = errors.New("fn: value is not a function")

// ArityError is the panic value raised by the typed adapters ([Unary],
// [Binary]) when a step is invoked with the wrong number of arguments.
type ArityError struct {
	Want int
	Got  int
}

func (e *ArityError) Error() string {
	return fmt.Sprintf("fn: step expects %d argument(s), got %d", e.Want, e.Got)
}
