package core

import (
	"errors"
	"fmt"
	"reflect"
)

// BadCastError reports a typed access whose requested type does not match
// the type the context was built for.
type BadCastError struct {
	Want reflect.Type // type the caller asked for
	Got  reflect.Type // type declared at construction
}

func (e *BadCastError) Error() string {
	return fmt.Sprintf("type cast failed: want %v, context holds %v", e.Want, e.Got)
}

// MissingArgumentError is the fault stored when a call is made before every
// argument slot has been set.
type MissingArgumentError struct {
	Index int // first empty slot
}

func (e *MissingArgumentError) Error() string {
	return fmt.Sprintf("argument %d of called function is not initialized", e.Index)
}

// ErrNoResult is returned by typed result access on a context that has not
// completed with a value. A wrong requested type takes precedence and is
// reported as *BadCastError instead.
var ErrNoResult = errors.New("no result stored")

// ErrArgumentNotSet is returned by typed argument access on an empty slot
// of the right type.
var ErrArgumentNotSet = errors.New("argument not set")

// ErrBadIndex is returned for argument access outside [0, ArgumentCount).
var ErrBadIndex = errors.New("argument index out of range")

// ErrCompleted is returned by argument writes on an already-completed
// context. Completion is final; the slots no longer accept values.
var ErrCompleted = errors.New("call already completed")

// ErrNotFunction is returned by the reflection constructor when the
// supplied callable is not a function.
var ErrNotFunction = errors.New("callable is not a function")

// ErrVariadicFunction is returned by the reflection constructor for
// variadic callables; argument slots have fixed arity.
var ErrVariadicFunction = errors.New("variadic functions are not supported")

// ErrBadReturn is returned by the reflection constructor for functions with
// more than two results or a second result that is not error.
var ErrBadReturn = errors.New("unsupported function return shape")
