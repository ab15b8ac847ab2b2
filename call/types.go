// Package call provides a type-erased deferred call primitive: a callable
// stored together with its not-yet-known arguments, invoked at most once,
// and observed through a future-like handle.
//
// This package is the primary user-facing API. Most users should only need
// to import this package. The call/core subpackage contains the low-level
// context, guard and dispatch abstractions that are rarely needed directly.
//
// Nothing here spawns execution: a Handle only stores, guards and
// eventually runs a callable on whichever goroutine invokes it. A Future is
// a typed view over the same shared context for blocking and timed result
// retrieval. Cancellation is not supported.
package call

import (
	"github.com/lguimbarda/min-call/call/core"
)

// Type aliases for core abstractions.
// These allow users to work with the package without importing core directly.
type (
	// Policy selects the synchronization discipline guarding a context.
	Policy = core.Policy

	// CallResult reports the disposition of a call.
	CallResult = core.CallResult

	// Allocator controls how context storage is obtained and released.
	Allocator = core.Allocator

	// Hooks holds observation callbacks for one context.
	Hooks = core.Hooks

	// Unit is the result type of callables that return nothing.
	Unit = core.Unit

	// BadCastError reports a typed access with a mismatched type.
	BadCastError = core.BadCastError

	// MissingArgumentError is the fault stored when a call runs before
	// every argument is set.
	MissingArgumentError = core.MissingArgumentError

	// ErrPanic is the fault stored when a callable panics.
	ErrPanic = core.ErrPanic
)

// Guard policies.
const (
	Unsafe   = core.Unsafe
	Shared   = core.Shared
	Spinlock = core.Spinlock
	Waitable = core.Waitable
)

// Call dispositions.
const (
	Succeeded            = core.CallSucceeded
	Exception            = core.CallException
	ArgumentsNotAccepted = core.CallArgumentsNotAccepted
)

// Sentinel errors re-exported from core.
var (
	ErrNoResult       = core.ErrNoResult
	ErrArgumentNotSet = core.ErrArgumentNotSet
	ErrBadIndex       = core.ErrBadIndex
	ErrCompleted      = core.ErrCompleted
	ErrNotFunction    = core.ErrNotFunction
)

// NewPoolAllocator creates a context pool usable with WithAllocator.
// Pooled contexts are recycled on the last Release, so every Handle and
// Future built over them must be released.
func NewPoolAllocator() Allocator { return core.NewPoolAllocator() }
