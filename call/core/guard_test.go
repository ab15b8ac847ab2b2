package core

import (
	"sync"
	"testing"
)

func TestNewGuard(t *testing.T) {
	tests := []struct {
		policy Policy
		name   string
	}{
		{Unsafe, "unsafe"},
		{Shared, "shared"},
		{Spinlock, "spinlock"},
		{Waitable, "waitable"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewGuard(tt.policy)
			if g == nil {
				t.Fatal("NewGuard returned nil")
			}
			if tt.policy.String() != tt.name {
				t.Errorf("String() = %q, want %q", tt.policy.String(), tt.name)
			}
			// A fresh guard must be acquirable.
			if !g.TryLock() {
				t.Fatal("TryLock on fresh guard failed")
			}
			g.Unlock()
			g.Lock()
			g.Unlock()
		})
	}
}

func TestNewGuardUnknownPolicy(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for unknown policy")
		}
	}()
	NewGuard(Policy(42))
}

func TestSpinGuardTryLock(t *testing.T) {
	g := NewGuard(Spinlock)
	if !g.TryLock() {
		t.Fatal("first TryLock should succeed")
	}
	if g.TryLock() {
		t.Fatal("second TryLock should fail while held")
	}
	g.Unlock()
	if !g.TryLock() {
		t.Fatal("TryLock after Unlock should succeed")
	}
	g.Unlock()
}

func TestSpinGuardMutualExclusion(t *testing.T) {
	const goroutines = 8
	const iterations = 1000

	g := NewGuard(Spinlock)
	counter := 0

	var wg sync.WaitGroup
	wg.Add(goroutines)
	for i := 0; i < goroutines; i++ {
		go func() {
			defer wg.Done()
			for j := 0; j < iterations; j++ {
				g.Lock()
				counter++
				g.Unlock()
			}
		}()
	}
	wg.Wait()

	if counter != goroutines*iterations {
		t.Fatalf("counter = %d, want %d (lost updates under spinlock)", counter, goroutines*iterations)
	}
}

func TestNopGuardAlwaysAcquirable(t *testing.T) {
	for _, p := range []Policy{Unsafe, Shared} {
		g := NewGuard(p)
		if !g.TryLock() {
			t.Fatalf("%v guard TryLock failed", p)
		}
		// No-op guards never exclude.
		if !g.TryLock() {
			t.Fatalf("%v guard second TryLock failed", p)
		}
		g.Unlock()
		g.Unlock()
	}
}
