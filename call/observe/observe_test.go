package observe_test

import (
	"errors"
	"testing"
	"time"

	"github.com/lguimbarda/min-call/call"
	"github.com/lguimbarda/min-call/call/observe"
)

func TestCounter(t *testing.T) {
	counter := &observe.Counter{}

	ok, okFut := call.Func1(call.Unsafe, func(n int) (int, error) { return n * 2, nil },
		call.WithHooks(counter.Hooks()))
	defer ok.Release()
	defer okFut.Release()

	bad, badFut := call.Func0(call.Unsafe, func() (int, error) { return 0, errors.New("boom") },
		call.WithHooks(counter.Hooks()))
	defer bad.Release()
	defer badFut.Release()

	ok.CallWith(21)
	bad.Call()

	if counter.Calls() != 2 {
		t.Errorf("expected 2 calls, got %d", counter.Calls())
	}
	if counter.Results() != 1 {
		t.Errorf("expected 1 result, got %d", counter.Results())
	}
	if counter.Faults() != 1 {
		t.Errorf("expected 1 fault, got %d", counter.Faults())
	}
	if counter.Completions() != 2 {
		t.Errorf("expected 2 completions, got %d", counter.Completions())
	}
}

func TestCounterMissingArgumentFault(t *testing.T) {
	counter := &observe.Counter{}

	h, fut := call.Func1(call.Unsafe, func(n int) (int, error) { return n, nil },
		call.WithHooks(counter.Hooks()))
	defer h.Release()
	defer fut.Release()

	h.Call()

	if counter.Calls() != 0 {
		t.Errorf("expected 0 calls, got %d", counter.Calls())
	}
	if counter.Faults() != 1 {
		t.Errorf("expected 1 fault, got %d", counter.Faults())
	}
}

func TestLatency(t *testing.T) {
	tracker := &observe.Latency{}

	h, fut := call.Func0(call.Unsafe, func() (int, error) {
		time.Sleep(5 * time.Millisecond)
		return 1, nil
	}, call.WithHooks(tracker.Hooks()))
	defer h.Release()
	defer fut.Release()

	h.Call()

	stats := tracker.Stats()
	if stats.Count != 1 {
		t.Fatalf("expected 1 sample, got %d", stats.Count)
	}
	if stats.Min <= 0 {
		t.Errorf("expected positive min, got %v", stats.Min)
	}
	if stats.Max < stats.Min {
		t.Errorf("max %v below min %v", stats.Max, stats.Min)
	}
	if stats.Avg < stats.Min || stats.Avg > stats.Max {
		t.Errorf("avg %v outside [%v, %v]", stats.Avg, stats.Min, stats.Max)
	}
}

func TestLatencyIgnoresMissingArgumentFault(t *testing.T) {
	tracker := &observe.Latency{}

	h, fut := call.Func1(call.Unsafe, func(n int) (int, error) { return n, nil },
		call.WithHooks(tracker.Hooks()))
	defer h.Release()
	defer fut.Release()

	// Completes with a fault before the callable ever runs, so there is no
	// start timestamp to pair with.
	h.Call()

	if stats := tracker.Stats(); stats.Count != 0 {
		t.Errorf("expected 0 samples, got %d", stats.Count)
	}
}

func TestCounterSharedAcrossPolicies(t *testing.T) {
	counter := &observe.Counter{}

	for _, policy := range []call.Policy{call.Unsafe, call.Shared, call.Spinlock, call.Waitable} {
		h, fut := call.Func0(policy, func() (int, error) { return 1, nil },
			call.WithHooks(counter.Hooks()))
		h.Call()
		h.Release()
		fut.Release()
	}

	if counter.Results() != 4 {
		t.Errorf("expected 4 results, got %d", counter.Results())
	}
}
