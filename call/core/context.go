package core

import (
	"reflect"
	"sync/atomic"
)

// CallResult reports the disposition of a call through a Handle.
type CallResult uint8

const (
	// CallSucceeded: the context holds (or already held) a result.
	CallSucceeded CallResult = iota
	// CallException: the context holds (or already held) a fault.
	CallException
	// CallArgumentsNotAccepted: the supplied argument values do not match
	// the stored signature; nothing was mutated.
	CallArgumentsNotAccepted
)

func (r CallResult) String() string {
	switch r {
	case CallSucceeded:
		return "succeeded"
	case CallException:
		return "exception"
	case CallArgumentsNotAccepted:
		return "arguments not accepted"
	default:
		return "unknown"
	}
}

// Context is the shared unit of state behind every Handle and Future: the
// callable (behind its Invoker), one slot per argument, a write-once
// completion cell, a guard, a completion latch and a reference count.
//
// A context never spawns execution. The callable runs on whichever
// goroutine performs the winning Call; completion is recorded once and is
// final.
//
// Mutating operations take the guard of the policy chosen at construction.
// Under Unsafe and Shared the guard is a no-op and synchronization is the
// caller's responsibility.
type Context struct {
	inv    Invoker
	policy Policy
	guard  Guard
	alloc  Allocator
	hooks  []Hooks

	args []slot
	out  outcome

	refs atomic.Int64
	done chan struct{}
}

// NewContext builds a context for the given invoker with one reference.
// A nil allocator selects DefaultAllocator. Hook sets fire in FIFO order.
func NewContext(policy Policy, inv Invoker, alloc Allocator, hooks ...Hooks) *Context {
	if alloc == nil {
		alloc = DefaultAllocator
	}
	c := alloc.New()

	c.inv = inv
	c.policy = policy
	c.guard = NewGuard(policy)
	c.alloc = alloc
	c.hooks = hooks

	n := inv.Arity()
	if cap(c.args) >= n {
		c.args = c.args[:n]
	} else {
		c.args = make([]slot, n)
	}
	for i := range c.args {
		c.args[i] = slot{typ: inv.ArgType(i)}
	}

	c.out = outcome{}
	c.done = make(chan struct{})
	c.refs.Store(1)
	return c
}

// recycle zeroes a context before it returns to a pool. Slot capacity is
// kept so pooled contexts do not reallocate for same-or-smaller arities.
func (c *Context) recycle() {
	c.inv = nil
	c.policy = 0
	c.guard = nil
	c.alloc = nil
	c.hooks = nil
	for i := range c.args {
		c.args[i] = slot{}
	}
	c.args = c.args[:0]
	c.out = outcome{}
	c.done = nil
	c.refs.Store(0)
}

// Retain adds a reference and returns the context.
func (c *Context) Retain() *Context {
	c.refs.Add(1)
	return c
}

// Release drops a reference. The last release frees the context through its
// allocator; the counter reaches zero exactly once.
func (c *Context) Release() {
	if n := c.refs.Add(-1); n == 0 {
		c.alloc.Free(c)
	} else if n < 0 {
		panic("core: context released more times than retained")
	}
}

// Refs reports the current reference count.
func (c *Context) Refs() int64 { return c.refs.Load() }

// Policy reports the guard policy chosen at construction.
func (c *Context) Policy() Policy { return c.policy }

// ArgumentCount reports the callable's arity.
func (c *Context) ArgumentCount() int { return c.inv.Arity() }

// ArgumentType reports the declared type of slot i, or nil when i is out of
// range.
func (c *Context) ArgumentType(i int) reflect.Type {
	if i < 0 || i >= len(c.args) {
		return nil
	}
	return c.args[i].typ
}

// ResultType reports the declared result type.
func (c *Context) ResultType() reflect.Type { return c.inv.ResultType() }

// Done returns the completion latch. It is closed exactly once, after the
// completing goroutine releases the guard, so a receive on it observes the
// recorded outcome.
func (c *Context) Done() <-chan struct{} { return c.done }

// Completed reports completion without taking the guard.
func (c *Context) Completed() bool {
	select {
	case <-c.done:
		return true
	default:
		return false
	}
}

// SetArgument stores a value into slot i. The value's dynamic type must be
// assignable to the declared type; writes are rejected once the context has
// completed.
func (c *Context) SetArgument(i int, v any) error {
	if i < 0 || i >= len(c.args) {
		return ErrBadIndex
	}
	declared := c.args[i].typ
	if vt := reflect.TypeOf(v); !assignableTo(vt, declared) {
		return &BadCastError{Want: vt, Got: declared}
	}

	c.guard.Lock()
	defer c.guard.Unlock()
	if c.out.completed() {
		return ErrCompleted
	}
	c.args[i].set(v)
	return nil
}

// HasArgument reports whether slot i holds a value.
func (c *Context) HasArgument(i int) bool {
	if i < 0 || i >= len(c.args) {
		return false
	}
	c.guard.Lock()
	defer c.guard.Unlock()
	return c.args[i].has()
}

// Argument returns the value stored in slot i.
func (c *Context) Argument(i int) (any, bool) {
	if i < 0 || i >= len(c.args) {
		return nil, false
	}
	c.guard.Lock()
	defer c.guard.Unlock()
	if !c.args[i].has() {
		return nil, false
	}
	return c.args[i].value, true
}

// HasResult reports completion with a value.
func (c *Context) HasResult() bool {
	c.guard.Lock()
	defer c.guard.Unlock()
	return c.out.state == outcomeValue
}

// HasFault reports completion with a fault.
func (c *Context) HasFault() bool {
	c.guard.Lock()
	defer c.guard.Unlock()
	return c.out.state == outcomeFault
}

// HasAnything reports completion of either kind.
func (c *Context) HasAnything() bool {
	c.guard.Lock()
	defer c.guard.Unlock()
	return c.out.completed()
}

// Result returns the stored result value.
func (c *Context) Result() (any, bool) {
	c.guard.Lock()
	defer c.guard.Unlock()
	if c.out.state != outcomeValue {
		return nil, false
	}
	return c.out.value, true
}

// Fault returns the stored fault, or nil.
func (c *Context) Fault() error {
	c.guard.Lock()
	defer c.guard.Unlock()
	if c.out.state != outcomeFault {
		return nil
	}
	return c.out.fault
}

// Call invokes the stored callable with whatever arguments are present.
// A completed context reports its stored disposition without re-invoking;
// an unset argument completes the context with a MissingArgumentError
// fault. The effective call happens at most once per context.
func (c *Context) Call() CallResult {
	c.guard.Lock()
	res, transitioned := c.callLocked()
	c.guard.Unlock()
	if transitioned {
		close(c.done)
	}
	return res
}

// CallWith replaces every argument slot with the given values as one unit
// and then calls. The values must match the stored signature in count and
// types; on mismatch nothing is mutated and CallArgumentsNotAccepted is
// reported.
func (c *Context) CallWith(values ...any) CallResult {
	if !c.accepts(values) {
		return CallArgumentsNotAccepted
	}

	c.guard.Lock()
	if c.out.completed() {
		// Completion is final; late argument sets are discarded.
		res, _ := c.callLocked()
		c.guard.Unlock()
		return res
	}
	for i, v := range values {
		c.args[i].set(v)
	}
	res, transitioned := c.callLocked()
	c.guard.Unlock()
	if transitioned {
		close(c.done)
	}
	return res
}

// StealCall performs the call on the caller's goroutine when the context is
// prepared: every argument set and no completion recorded. Used by waiting
// futures; only one contender can win, and a context that is not prepared
// is left untouched.
func (c *Context) StealCall() {
	if c.Completed() {
		return
	}
	if !c.guard.TryLock() {
		return
	}
	transitioned := false
	if !c.out.completed() && c.argumentsReady() {
		_, transitioned = c.callLocked()
	}
	c.guard.Unlock()
	if transitioned {
		close(c.done)
	}
}

// accepts checks values against the declared argument types without taking
// the guard; the declared types are immutable after construction.
func (c *Context) accepts(values []any) bool {
	if len(values) != len(c.args) {
		return false
	}
	for i, v := range values {
		if !assignableTo(reflect.TypeOf(v), c.args[i].typ) {
			return false
		}
	}
	return true
}

func (c *Context) argumentsReady() bool {
	for i := range c.args {
		if !c.args[i].has() {
			return false
		}
	}
	return true
}

// callLocked runs the call algorithm with the guard held. It reports the
// call disposition and whether this invocation performed the pending ->
// completed transition (the caller then closes the latch, after releasing
// the guard).
func (c *Context) callLocked() (CallResult, bool) {
	switch c.out.state {
	case outcomeValue:
		return CallSucceeded, false
	case outcomeFault:
		return CallException, false
	}

	for i := range c.args {
		if !c.args[i].has() {
			err := &MissingArgumentError{Index: i}
			c.out.setFault(err)
			fireFault(c.hooks, err)
			return CallException, true
		}
	}

	fireCall(c.hooks)
	v, err := c.invoke()
	if err != nil {
		c.out.setFault(err)
		fireFault(c.hooks, err)
		return CallException, true
	}
	c.out.setValue(v)
	fireResult(c.hooks, v)
	return CallSucceeded, true
}

// invoke runs the callable, converting a panic into an ErrPanic fault.
func (c *Context) invoke() (v any, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = NewPanicError(r)
		}
	}()
	in := make([]any, len(c.args))
	for i := range c.args {
		in[i] = c.args[i].value
	}
	return c.inv.Invoke(in)
}
