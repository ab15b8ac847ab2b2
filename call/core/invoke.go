package core

import (
	"reflect"
)

// Unit is the result type of callables that return nothing. A completed
// void call stores a Unit value so that "has result" and "result of type"
// questions keep one uniform answer.
type Unit struct{}

// Invoker binds one concrete callable behind the erased context. Each typed
// constructor instantiation (Func0 through Func3) and the reflection path
// produce their own implementation; the context only ever speaks to this
// interface.
//
// Invoke receives one value per argument slot, each already checked against
// ArgType, and reports the callable's value or error. Panics are allowed to
// escape; the context captures them.
type Invoker interface {
	Arity() int
	ArgType(i int) reflect.Type
	ResultType() reflect.Type
	Invoke(args []any) (any, error)
}

// Typed instantiations. The comma-ok assertions cannot fail for concrete
// parameter types (slots enforce exact identity); for interface parameters
// they convert a stored nil into the interface's zero value.

type func0[R any] struct {
	fn func() (R, error)
}

func (f func0[R]) Arity() int               { return 0 }
func (f func0[R]) ArgType(int) reflect.Type { return nil }
func (f func0[R]) ResultType() reflect.Type { return reflect.TypeOf((*R)(nil)).Elem() }
func (f func0[R]) Invoke([]any) (any, error) {
	r, err := f.fn()
	if err != nil {
		return nil, err
	}
	return r, nil
}

type func1[A, R any] struct {
	fn func(A) (R, error)
}

func (f func1[A, R]) Arity() int               { return 1 }
func (f func1[A, R]) ArgType(int) reflect.Type { return reflect.TypeOf((*A)(nil)).Elem() }
func (f func1[A, R]) ResultType() reflect.Type { return reflect.TypeOf((*R)(nil)).Elem() }
func (f func1[A, R]) Invoke(args []any) (any, error) {
	a, _ := args[0].(A)
	r, err := f.fn(a)
	if err != nil {
		return nil, err
	}
	return r, nil
}

type func2[A, B, R any] struct {
	fn func(A, B) (R, error)
}

func (f func2[A, B, R]) Arity() int { return 2 }
func (f func2[A, B, R]) ArgType(i int) reflect.Type {
	if i == 0 {
		return reflect.TypeOf((*A)(nil)).Elem()
	}
	return reflect.TypeOf((*B)(nil)).Elem()
}
func (f func2[A, B, R]) ResultType() reflect.Type { return reflect.TypeOf((*R)(nil)).Elem() }
func (f func2[A, B, R]) Invoke(args []any) (any, error) {
	a, _ := args[0].(A)
	b, _ := args[1].(B)
	r, err := f.fn(a, b)
	if err != nil {
		return nil, err
	}
	return r, nil
}

type func3[A, B, C, R any] struct {
	fn func(A, B, C) (R, error)
}

func (f func3[A, B, C, R]) Arity() int { return 3 }
func (f func3[A, B, C, R]) ArgType(i int) reflect.Type {
	switch i {
	case 0:
		return reflect.TypeOf((*A)(nil)).Elem()
	case 1:
		return reflect.TypeOf((*B)(nil)).Elem()
	default:
		return reflect.TypeOf((*C)(nil)).Elem()
	}
}
func (f func3[A, B, C, R]) ResultType() reflect.Type { return reflect.TypeOf((*R)(nil)).Elem() }
func (f func3[A, B, C, R]) Invoke(args []any) (any, error) {
	a, _ := args[0].(A)
	b, _ := args[1].(B)
	c, _ := args[2].(C)
	r, err := f.fn(a, b, c)
	if err != nil {
		return nil, err
	}
	return r, nil
}

// Func0 builds the Invoker for a nullary callable.
func Func0[R any](fn func() (R, error)) Invoker { return func0[R]{fn} }

// Func1 builds the Invoker for a unary callable.
func Func1[A, R any](fn func(A) (R, error)) Invoker { return func1[A, R]{fn} }

// Func2 builds the Invoker for a binary callable.
func Func2[A, B, R any](fn func(A, B) (R, error)) Invoker { return func2[A, B, R]{fn} }

// Func3 builds the Invoker for a ternary callable.
func Func3[A, B, C, R any](fn func(A, B, C) (R, error)) Invoker { return func3[A, B, C, R]{fn} }

// reflectInvoker is the dynamic instantiation used when the callable's
// signature is only known at runtime.
type reflectInvoker struct {
	fn       reflect.Value
	args     TypeList
	result   reflect.Type
	hasValue bool // function returns a value (beyond a trailing error)
	hasError bool // function returns a trailing error
}

var errType = reflect.TypeOf((*error)(nil)).Elem()

// Reflect builds an Invoker for any non-variadic function. Supported shapes
// are func(...), func(...) error, func(...) R and func(...) (R, error);
// functions returning nothing (or only error) store Unit as their result.
func Reflect(fn any) (Invoker, error) {
	v := reflect.ValueOf(fn)
	if !v.IsValid() || v.Kind() != reflect.Func {
		return nil, ErrNotFunction
	}
	if v.IsNil() {
		return nil, ErrNotFunction
	}
	t := v.Type()
	if t.IsVariadic() {
		return nil, ErrVariadicFunction
	}

	inv := reflectInvoker{fn: v, result: reflect.TypeOf((*Unit)(nil)).Elem()}
	switch t.NumOut() {
	case 0:
	case 1:
		if t.Out(0) == errType {
			inv.hasError = true
		} else {
			inv.hasValue = true
			inv.result = t.Out(0)
		}
	case 2:
		if t.Out(1) != errType {
			return nil, ErrBadReturn
		}
		inv.hasValue = true
		inv.hasError = true
		inv.result = t.Out(0)
	default:
		return nil, ErrBadReturn
	}

	inv.args = make(TypeList, t.NumIn())
	for i := range inv.args {
		inv.args[i] = t.In(i)
	}
	return inv, nil
}

func (r reflectInvoker) Arity() int { return len(r.args) }

func (r reflectInvoker) ArgType(i int) reflect.Type { return r.args[i] }

func (r reflectInvoker) ResultType() reflect.Type { return r.result }

func (r reflectInvoker) Invoke(args []any) (any, error) {
	in := make([]reflect.Value, len(args))
	for i, a := range args {
		if a == nil {
			in[i] = reflect.Zero(r.args[i])
			continue
		}
		in[i] = reflect.ValueOf(a)
	}
	out := r.fn.Call(in)

	if r.hasError {
		if e := out[len(out)-1]; !e.IsNil() {
			return nil, e.Interface().(error)
		}
	}
	if r.hasValue {
		return out[0].Interface(), nil
	}
	return Unit{}, nil
}
