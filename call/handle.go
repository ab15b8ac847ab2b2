package call

import (
	"github.com/lguimbarda/min-call/call/core"
)

// Handle is a type-erased owning reference to a deferred call context.
// Handles are small values; Clone shares the context (adding a reference)
// and Equal compares identity. The zero Handle is invalid, and every
// operation except Valid and Equal panics on an invalid Handle -
// precondition-check with Valid when a zero value can reach you.
//
// Release drops the Handle's reference. With the default allocator this is
// optional (the garbage collector reclaims unreferenced contexts); with a
// pool allocator it is what returns the context to the pool, and a released
// Handle must not be used again.
type Handle struct {
	ctx *core.Context
}

// Valid reports whether the Handle references a context.
func (h Handle) Valid() bool { return h.ctx != nil }

func (h Handle) check() {
	if h.ctx == nil {
		panic("call: use of invalid Handle")
	}
}

// Clone returns a Handle sharing the same context, adding a reference.
func (h Handle) Clone() Handle {
	h.check()
	h.ctx.Retain()
	return h
}

// Release drops this Handle's reference to the context.
func (h Handle) Release() {
	h.check()
	h.ctx.Release()
}

// Equal reports whether both handles reference the same context.
func (h Handle) Equal(other Handle) bool { return h.ctx == other.ctx }

// Policy reports the guard policy the context was built with.
func (h Handle) Policy() Policy {
	h.check()
	return h.ctx.Policy()
}

// Call invokes the stored callable with whatever arguments are already
// stored. No type check is performed because no new arguments are supplied.
// Calling a completed context reports the stored disposition without
// re-invoking; calling with an unset argument completes the context with a
// MissingArgumentError fault and reports Exception.
func (h Handle) Call() CallResult {
	h.check()
	return h.ctx.Call()
}

// CallWith sets all arguments atomically as one unit - replacing any
// partially-set arguments - and invokes the call. When the argument count
// or types do not match the stored signature, nothing is mutated and
// ArgumentsNotAccepted is reported.
func (h Handle) CallWith(args ...any) CallResult {
	h.check()
	return h.ctx.CallWith(args...)
}

// SetArg stores a single argument into slot i. It reports ErrBadIndex for
// an out-of-range index, a *BadCastError for a value the slot cannot hold
// and ErrCompleted once the context has completed.
func (h Handle) SetArg(i int, v any) error {
	h.check()
	return h.ctx.SetArgument(i, v)
}

// HasArgument reports whether argument slot i holds a value.
func (h Handle) HasArgument(i int) bool {
	h.check()
	return h.ctx.HasArgument(i)
}

// ArgumentCount reports the stored callable's arity.
func (h Handle) ArgumentCount() int {
	h.check()
	return h.ctx.ArgumentCount()
}

// HasResult reports completion with a result value.
func (h Handle) HasResult() bool {
	h.check()
	return h.ctx.HasResult()
}

// HasException reports completion with a fault.
func (h Handle) HasException() bool {
	h.check()
	return h.ctx.HasFault()
}

// HasAnything reports completion of either kind.
func (h Handle) HasAnything() bool {
	h.check()
	return h.ctx.HasAnything()
}

// Err returns the stored fault, or nil. This is the inspection analog of
// rethrowing a captured exception: faults are stored, not thrown, so they
// can cross to whichever goroutine inspects the outcome.
func (h Handle) Err() error {
	h.check()
	return h.ctx.Fault()
}

// Done returns the completion latch shared with every Future over this
// context.
func (h Handle) Done() <-chan struct{} {
	h.check()
	return h.ctx.Done()
}
