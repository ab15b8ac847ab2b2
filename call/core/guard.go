package core

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// Policy selects the synchronization discipline guarding a context.
type Policy uint8

const (
	// Unsafe performs no locking. The context must not be shared across
	// goroutines.
	Unsafe Policy = iota
	// Shared performs no locking but the context may be shared; the caller
	// is responsible for external synchronization.
	Shared
	// Spinlock guards the context with a busy-wait on an atomic flag.
	// Good for short critical sections.
	Spinlock
	// Waitable guards the context with a mutex. Good for long-running
	// callables and the policy of choice when futures block concurrently
	// with mutation.
	Waitable
)

func (p Policy) String() string {
	switch p {
	case Unsafe:
		return "unsafe"
	case Shared:
		return "shared"
	case Spinlock:
		return "spinlock"
	case Waitable:
		return "waitable"
	default:
		return "unknown"
	}
}

// Guard is the mutual exclusion strategy injected into a context.
// Implementations must be usable from their zero-ish constructed state and
// never fail observably.
type Guard interface {
	Lock()
	TryLock() bool
	Unlock()
}

// NewGuard builds the guard implementing the given policy.
func NewGuard(p Policy) Guard {
	switch p {
	case Unsafe, Shared:
		return nopGuard{}
	case Spinlock:
		return new(spinGuard)
	case Waitable:
		return new(mutexGuard)
	default:
		panic("core: unknown guard policy")
	}
}

// nopGuard serves both the Unsafe and Shared policies: no locking, and
// TryLock always wins.
type nopGuard struct{}

func (nopGuard) Lock()         {}
func (nopGuard) TryLock() bool { return true }
func (nopGuard) Unlock()       {}

// spinGuard busy-waits on an atomic flag, yielding to the scheduler between
// attempts so a spinning goroutine cannot starve the lock holder.
type spinGuard struct {
	flag atomic.Bool
}

func (g *spinGuard) Lock() {
	for !g.flag.CompareAndSwap(false, true) {
		runtime.Gosched()
	}
}

func (g *spinGuard) TryLock() bool {
	return g.flag.CompareAndSwap(false, true)
}

func (g *spinGuard) Unlock() {
	g.flag.Store(false)
}

// mutexGuard wraps sync.Mutex for the Waitable policy.
type mutexGuard struct {
	mu sync.Mutex
}

func (g *mutexGuard) Lock()         { g.mu.Lock() }
func (g *mutexGuard) TryLock() bool { return g.mu.TryLock() }
func (g *mutexGuard) Unlock()       { g.mu.Unlock() }
