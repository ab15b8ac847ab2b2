package core

import "reflect"

// Type identity is built on reflect.Type: the runtime guarantees one
// canonical descriptor per type, so descriptors compare with == and are
// stable across packages within a process. A TypeList extends that identity
// to an ordered list of types, which is what argument-tuple checks need.

// TypeList is an ordered list of type identity tokens.
type TypeList []reflect.Type

// TypesOf builds a TypeList from the dynamic types of the given values.
// A nil value contributes a nil token, which never equals a real type.
func TypesOf(values ...any) TypeList {
	types := make(TypeList, len(values))
	for i, v := range values {
		types[i] = reflect.TypeOf(v)
	}
	return types
}

// Equal reports whether both lists contain identical types in the same
// order. Identity is exact: distinct named types with the same underlying
// type are not equal.
func (l TypeList) Equal(other TypeList) bool {
	if len(l) != len(other) {
		return false
	}
	for i := range l {
		if l[i] != other[i] {
			return false
		}
	}
	return true
}

// assignableTo reports whether a value of dynamic type got may be stored in
// a slot declared as want. Interface slots accept any implementation, the
// way a Go call site would; concrete slots require exact identity so that
// typed retrieval can never misinterpret the stored value.
func assignableTo(got, want reflect.Type) bool {
	if got == nil {
		return nilable(want)
	}
	if want.Kind() == reflect.Interface {
		return got.AssignableTo(want)
	}
	return got == want
}

// nilable reports whether t has a usable zero value for an untyped nil.
func nilable(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface,
		reflect.Map, reflect.Pointer, reflect.Slice, reflect.UnsafePointer:
		return true
	}
	return false
}

// coerce normalizes a value for storage in a slot of type t. Untyped nil
// becomes the slot type's zero value so that later retrieval and invocation
// always see a properly typed value.
func coerce(v any, t reflect.Type) any {
	if v == nil {
		return reflect.Zero(t).Interface()
	}
	return v
}
