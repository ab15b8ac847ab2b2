package call

import (
	"reflect"
)

// Typed access comes in two forms throughout this file: an error-returning
// form and a non-throwing (comma-ok) form. In the error-returning form a
// type-check failure takes precedence over emptiness - asking for the
// wrong T reports *BadCastError even when nothing is stored yet, and only
// the right T on an empty slot reports the not-set sentinel.

// IsResultOfType reports whether the context's declared result type is
// exactly T.
func IsResultOfType[T any](h Handle) bool {
	h.check()
	return h.ctx.ResultType() == reflect.TypeOf((*T)(nil)).Elem()
}

// ResultAs returns the stored result as T. It reports *BadCastError when T
// is not the declared result type and ErrNoResult when the context has not
// completed with a value.
func ResultAs[T any](h Handle) (T, error) {
	h.check()
	var zero T
	if want, got := reflect.TypeOf((*T)(nil)).Elem(), h.ctx.ResultType(); want != got {
		return zero, &BadCastError{Want: want, Got: got}
	}
	v, ok := h.ctx.Result()
	if !ok {
		return zero, ErrNoResult
	}
	t, _ := v.(T)
	return t, nil
}

// TryResultAs is the non-throwing form of ResultAs: it reports false both
// for a mismatched T and for a context without a stored result.
func TryResultAs[T any](h Handle) (T, bool) {
	v, err := ResultAs[T](h)
	return v, err == nil
}

// IsArgumentOfType reports whether argument slot i is declared exactly T.
func IsArgumentOfType[T any](h Handle, i int) bool {
	h.check()
	return h.ctx.ArgumentType(i) == reflect.TypeOf((*T)(nil)).Elem()
}

// ArgumentAs returns the value stored in argument slot i as T. It reports
// ErrBadIndex for an out-of-range index, *BadCastError when T is not the
// declared slot type and ErrArgumentNotSet for an empty slot.
func ArgumentAs[T any](h Handle, i int) (T, error) {
	h.check()
	var zero T
	got := h.ctx.ArgumentType(i)
	if got == nil {
		return zero, ErrBadIndex
	}
	if want := reflect.TypeOf((*T)(nil)).Elem(); want != got {
		return zero, &BadCastError{Want: want, Got: got}
	}
	v, ok := h.ctx.Argument(i)
	if !ok {
		return zero, ErrArgumentNotSet
	}
	t, _ := v.(T)
	return t, nil
}

// TryArgumentAs is the non-throwing form of ArgumentAs.
func TryArgumentAs[T any](h Handle, i int) (T, bool) {
	v, err := ArgumentAs[T](h, i)
	return v, err == nil
}

// FutureOf builds a typed Future over the Handle's context, adding a
// reference. It reports *BadCastError when T does not match the declared
// result type.
func FutureOf[T any](h Handle) (Future[T], error) {
	h.check()
	if want, got := reflect.TypeOf((*T)(nil)).Elem(), h.ctx.ResultType(); want != got {
		return Future[T]{}, &BadCastError{Want: want, Got: got}
	}
	return Future[T]{ctx: h.ctx.Retain()}, nil
}
