package call

import (
	"time"

	"github.com/lguimbarda/min-call/call/core"
)

// Status reports the outcome of a timed wait.
type Status uint8

const (
	// Ready: completion was observed before the deadline.
	Ready Status = iota
	// Timeout: the deadline passed first.
	Timeout
)

func (s Status) String() string {
	switch s {
	case Ready:
		return "ready"
	case Timeout:
		return "timeout"
	default:
		return "unknown"
	}
}

// Future is a typed view over a deferred call context for blocking and
// timed result retrieval. Futures are built by the Func and Proc
// constructors and by FutureOf, which check at construction time that T
// matches the context's declared result type.
//
// The zero Future is invalid; waiting on it panics. Check Valid first when
// a zero value can reach you.
type Future[T any] struct {
	ctx *core.Context
}

// Valid reports whether the Future references a context.
func (f Future[T]) Valid() bool { return f.ctx != nil }

func (f Future[T]) check() {
	if f.ctx == nil {
		panic("call: use of invalid Future")
	}
}

// Clone returns a Future sharing the same context, adding a reference.
func (f Future[T]) Clone() Future[T] {
	f.check()
	f.ctx.Retain()
	return f
}

// Release drops this Future's reference to the context.
func (f Future[T]) Release() {
	f.check()
	f.ctx.Release()
}

// Equal reports whether both futures reference the same context.
func (f Future[T]) Equal(other Future[T]) bool { return f.ctx == other.ctx }

// Handle returns a Handle over the same context, adding a reference.
func (f Future[T]) Handle() Handle {
	f.check()
	return Handle{ctx: f.ctx.Retain()}
}

// Done returns the completion latch.
func (f Future[T]) Done() <-chan struct{} {
	f.check()
	return f.ctx.Done()
}

// Wait blocks until the context completes. When the context is prepared -
// every argument set, nobody has called yet - the waiter performs the call
// itself on this goroutine rather than blocking; only one waiter can win
// that race. Wait without a deadline is the only operation that may block
// indefinitely.
func (f Future[T]) Wait() {
	f.check()
	f.ctx.StealCall()
	<-f.ctx.Done()
}

// WaitFor blocks until completion or until the duration elapses. Unlike
// Wait it never performs the call itself.
func (f Future[T]) WaitFor(d time.Duration) Status {
	f.check()
	if f.ctx.Completed() {
		return Ready
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-f.ctx.Done():
		return Ready
	case <-timer.C:
		return Timeout
	}
}

// WaitUntil blocks until completion or until the given point in time.
func (f Future[T]) WaitUntil(t time.Time) Status {
	return f.WaitFor(time.Until(t))
}

// Get waits for completion, then returns the stored result or the stored
// fault as an error.
func (f Future[T]) Get() (T, error) {
	f.Wait()
	if err := f.ctx.Fault(); err != nil {
		var zero T
		return zero, err
	}
	v, _ := f.ctx.Result()
	t, _ := v.(T)
	return t, nil
}
