package deferred

import (
	"errors"
	"fmt"
)

// ErrArgument is returned when an operation gets arguments it cannot use
var ErrArgument = errors.New("bad argument")

// Arg returns positional argument i as a T
func Arg[T any](args []any, i int) (T, error) {
	var zero T
	if i < 0 || i >= len(args) {
		return zero, fmt.Errorf("%w: missing positional argument %d (got %d)", ErrArgument, i, len(args))
	}
	v, ok := args[i].(T)
	if !ok {
		return zero, fmt.Errorf("%w: positional argument %d is %T, want %T", ErrArgument, i, args[i], zero)
	}
	return v, nil
}

// Kwarg returns the named argument as a T. The bool is false when the name
// is absent, which is not an error.
func Kwarg[T any](kwargs Kwargs, name string) (T, bool, error) {
	var zero T
	raw, ok := kwargs[name]
	if !ok {
		return zero, false, nil
	}
	v, ok := raw.(T)
	if !ok {
		return zero, true, fmt.Errorf("%w: named argument %q is %T, want %T", ErrArgument, name, raw, zero)
	}
	return v, true, nil
}
