// Package deferred bundles an operation with its arguments so the call can be
// made later, possibly more than once.
package deferred

import (
	"fmt"
	"maps"
	"reflect"
	"runtime"
	"slices"
	"strings"
)

// DefaultTraceMessage is used when Invoke is called without a message.
// The verbs are filled with the operation name, args and kwargs.
const DefaultTraceMessage = "deferred call of %s with: args=%v, kwargs=%v"

// Kwargs holds named arguments
type Kwargs map[string]any

// Func is an operation that can be deferred
type Func[R any] func(args []any, kwargs Kwargs) (R, error)

// Template is the plain, mutable triple form of a Call
type Template[R any] struct {
	Op     Func[R]
	Args   []any
	Kwargs Kwargs
}

// Call is an immutable operation plus arguments. A Call is a reusable
// template: Invoke never consumes it.
type Call[R any] struct {
	op     Func[R]
	args   []any
	kwargs Kwargs
	tracer Tracer
}

// New creates a call with positional arguments only
func New[R any](op Func[R], args ...any) Call[R] {
	return Make(op, args, nil)
}

// Make creates a call with positional and named arguments. Arguments are
// not checked against the operation; mismatches surface on Invoke.
func Make[R any](op Func[R], args []any, kwargs Kwargs) Call[R] {
	c := Call[R]{
		op:     op,
		args:   slices.Clone(args),
		kwargs: maps.Clone(kwargs),
	}
	if c.args == nil {
		c.args = []any{}
	}
	if c.kwargs == nil {
		c.kwargs = Kwargs{}
	}
	return c
}

// FromTemplate wraps a plain triple in a Call
func FromTemplate[R any](t Template[R]) Call[R] {
	return Make(t.Op, t.Args, t.Kwargs)
}

// Op returns the wrapped operation
func (c Call[R]) Op() Func[R] {
	return c.op
}

// Args returns a copy of the positional arguments
func (c Call[R]) Args() []any {
	return slices.Clone(c.args)
}

// Kwargs returns a copy of the named arguments
func (c Call[R]) Kwargs() Kwargs {
	return maps.Clone(c.kwargs)
}

// Template returns the call as a plain triple
func (c Call[R]) Template() Template[R] {
	return Template[R]{Op: c.op, Args: c.Args(), Kwargs: c.Kwargs()}
}

// WithTracer returns a copy of the call that reports to t
func (c Call[R]) WithTracer(t Tracer) Call[R] {
	c.tracer = t
	return c
}

// IsZero reports whether the call has no operation
func (c Call[R]) IsZero() bool {
	return c.op == nil
}

// Invoke runs the operation and returns its result. Errors from the
// operation are returned unchanged and suppress the trace record; on success
// exactly one record is emitted, using msg or DefaultTraceMessage.
func (c Call[R]) Invoke(msg string) (R, error) {
	if c.op == nil {
		var zero R
		return zero, fmt.Errorf("%w: call has no operation", ErrArgument)
	}

	result, err := c.op(c.Args(), c.Kwargs())
	if err != nil {
		return result, err
	}

	if msg == "" {
		msg = DefaultTraceMessage
	}
	c.traceSink().Trace(Record{
		Message: msg,
		Op:      c.Name(),
		Args:    c.Args(),
		Kwargs:  c.Kwargs(),
	})

	return result, nil
}

// Len is always 3, for code that treats a call as a triple
func (c Call[R]) Len() int {
	return 3
}

// At returns the op, args or kwargs for index 0, 1 or 2
func (c Call[R]) At(i int) any {
	switch i {
	case 0:
		return c.op
	case 1:
		return c.Args()
	case 2:
		return c.Kwargs()
	}
	panic(fmt.Sprintf("deferred: index out of range [%d] with length 3", i))
}

// Equal reports whether both calls wrap the same function with deeply equal
// arguments. Tracers are not compared.
//
// Functions are compared by code pointer, so method values of one method
// bound to different receivers are equal, as are closures from the same
// literal.
func (c Call[R]) Equal(o Call[R]) bool {
	if funcPointer(c.op) != funcPointer(o.op) {
		return false
	}
	return reflect.DeepEqual(c.args, o.args) && reflect.DeepEqual(c.kwargs, o.kwargs)
}

// Name returns the symbol name of the wrapped operation
func (c Call[R]) Name() string {
	if c.op == nil {
		return "<nil>"
	}
	fn := runtime.FuncForPC(funcPointer(c.op))
	if fn == nil {
		return "<unknown>"
	}
	name := fn.Name()
	if i := strings.LastIndex(name, "/"); i >= 0 {
		name = name[i+1:]
	}
	return name
}

func (c Call[R]) String() string {
	return fmt.Sprintf("%s(args=%v, kwargs=%v)", c.Name(), c.args, map[string]any(c.kwargs))
}

func (c Call[R]) traceSink() Tracer {
	if c.tracer == nil {
		return nopTracer{}
	}
	return c.tracer
}

func funcPointer(fn any) uintptr {
	v := reflect.ValueOf(fn)
	if !v.IsValid() || v.IsNil() {
		return 0
	}
	return v.Pointer()
}
