// Package observe provides observation helpers for deferred calls:
// counters and latency trackers installable as context hooks, ready to be
// bridged into metrics backends.
//
// Usage pattern:
//
//	counter := &observe.Counter{}
//	h, fut := call.Func1(call.Waitable, work, call.WithHooks(counter.Hooks()))
package observe

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/lguimbarda/min-call/call/core"
)

// Counter provides thread-safe counting of call dispositions. One Counter
// may be shared across any number of contexts.
type Counter struct {
	calls   atomic.Int64
	results atomic.Int64
	faults  atomic.Int64
}

// Calls returns the count of callable invocations.
func (c *Counter) Calls() int64 { return c.calls.Load() }

// Results returns the count of completions with a value.
func (c *Counter) Results() int64 { return c.results.Load() }

// Faults returns the count of completions with a fault, including missing
// arguments and captured panics.
func (c *Counter) Faults() int64 { return c.faults.Load() }

// Completions returns the total count of completions of either kind.
func (c *Counter) Completions() int64 { return c.results.Load() + c.faults.Load() }

// Hooks returns the hook set that feeds this counter.
func (c *Counter) Hooks() core.Hooks {
	return core.Hooks{
		OnCall:   func() { c.calls.Add(1) },
		OnResult: func(any) { c.results.Add(1) },
		OnFault:  func(error) { c.faults.Add(1) },
	}
}

// LatencyStats holds aggregate call duration statistics.
type LatencyStats struct {
	Count int64
	Min   time.Duration
	Max   time.Duration
	Avg   time.Duration
}

// Latency measures wall time from invocation to completion. Durations are
// aggregated across every context the hook set is attached to.
type Latency struct {
	mu      sync.Mutex
	started time.Time
	count   int64
	min     time.Duration
	max     time.Duration
	total   time.Duration
}

// Hooks returns the hook set that feeds this tracker. Start and completion
// pair up within one guarded call; attach a separate tracker per context
// when calls on different contexts may run concurrently.
func (l *Latency) Hooks() core.Hooks {
	record := func() {
		now := time.Now()
		l.mu.Lock()
		defer l.mu.Unlock()
		if l.started.IsZero() {
			// Completion without invocation: a missing-argument fault.
			return
		}
		d := now.Sub(l.started)
		l.started = time.Time{}
		l.count++
		l.total += d
		if l.count == 1 || d < l.min {
			l.min = d
		}
		if d > l.max {
			l.max = d
		}
	}
	return core.Hooks{
		OnCall: func() {
			l.mu.Lock()
			l.started = time.Now()
			l.mu.Unlock()
		},
		OnResult: func(any) { record() },
		OnFault:  func(error) { record() },
	}
}

// Stats returns a snapshot of the aggregated durations.
func (l *Latency) Stats() LatencyStats {
	l.mu.Lock()
	defer l.mu.Unlock()
	s := LatencyStats{
		Count: l.count,
		Min:   l.min,
		Max:   l.max,
	}
	if l.count > 0 {
		s.Avg = l.total / time.Duration(l.count)
	}
	return s
}
