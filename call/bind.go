package call

import (
	"github.com/lguimbarda/min-call/call/core"
)

// Option configures construction of a deferred call context.
type Option func(*options)

type options struct {
	alloc core.Allocator
	hooks []core.Hooks
}

// WithAllocator selects the allocator providing context storage.
func WithAllocator(a Allocator) Option {
	return func(o *options) { o.alloc = a }
}

// WithHooks attaches observation hooks to the context. Multiple options
// compose in FIFO order - hooks from earlier options fire before hooks from
// later ones.
func WithHooks(h Hooks) Option {
	return func(o *options) { o.hooks = append(o.hooks, h) }
}

func buildOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// New builds a Handle over any non-variadic function, with the signature
// discovered through reflection. Supported shapes are func(...),
// func(...) error, func(...) R and func(...) (R, error); a trailing error
// becomes the stored fault, and functions without a value result store
// Unit. Use FutureOf to obtain a typed Future afterwards.
func New(p Policy, fn any, opts ...Option) (Handle, error) {
	inv, err := core.Reflect(fn)
	if err != nil {
		return Handle{}, err
	}
	o := buildOptions(opts)
	return Handle{ctx: core.NewContext(p, inv, o.alloc, o.hooks...)}, nil
}

// pair builds the Handle and a typed Future sharing one context. The
// context starts with one reference for the Handle; the Future takes its
// own.
func pair[R any](ctx *core.Context) (Handle, Future[R]) {
	return Handle{ctx: ctx}, Future[R]{ctx: ctx.Retain()}
}

// Func0 builds a Handle and Future for a nullary callable.
func Func0[R any](p Policy, fn func() (R, error), opts ...Option) (Handle, Future[R]) {
	o := buildOptions(opts)
	return pair[R](core.NewContext(p, core.Func0(fn), o.alloc, o.hooks...))
}

// Func1 builds a Handle and Future for a unary callable.
func Func1[A, R any](p Policy, fn func(A) (R, error), opts ...Option) (Handle, Future[R]) {
	o := buildOptions(opts)
	return pair[R](core.NewContext(p, core.Func1(fn), o.alloc, o.hooks...))
}

// Func2 builds a Handle and Future for a binary callable.
func Func2[A, B, R any](p Policy, fn func(A, B) (R, error), opts ...Option) (Handle, Future[R]) {
	o := buildOptions(opts)
	return pair[R](core.NewContext(p, core.Func2(fn), o.alloc, o.hooks...))
}

// Func3 builds a Handle and Future for a ternary callable.
func Func3[A, B, C, R any](p Policy, fn func(A, B, C) (R, error), opts ...Option) (Handle, Future[R]) {
	o := buildOptions(opts)
	return pair[R](core.NewContext(p, core.Func3(fn), o.alloc, o.hooks...))
}

// Proc0 builds a Handle and Future for a nullary procedure. The future
// completes with Unit.
func Proc0(p Policy, fn func() error, opts ...Option) (Handle, Future[Unit]) {
	return Func0(p, func() (Unit, error) { return Unit{}, fn() }, opts...)
}

// Proc1 builds a Handle and Future for a unary procedure.
func Proc1[A any](p Policy, fn func(A) error, opts ...Option) (Handle, Future[Unit]) {
	return Func1(p, func(a A) (Unit, error) { return Unit{}, fn(a) }, opts...)
}

// Proc2 builds a Handle and Future for a binary procedure.
func Proc2[A, B any](p Policy, fn func(A, B) error, opts ...Option) (Handle, Future[Unit]) {
	return Func2(p, func(a A, b B) (Unit, error) { return Unit{}, fn(a, b) }, opts...)
}

// Proc3 builds a Handle and Future for a ternary procedure.
func Proc3[A, B, C any](p Policy, fn func(A, B, C) error, opts ...Option) (Handle, Future[Unit]) {
	return Func3(p, func(a A, b B, c C) (Unit, error) { return Unit{}, fn(a, b, c) }, opts...)
}
