package call

import (
	"testing"
)

func BenchmarkCallWithUnsafe(b *testing.B) {
	fn := func(n int) (int, error) { return n * 2, nil }
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		h, fut := Func1(Unsafe, fn)
		h.CallWith(i)
		h.Release()
		fut.Release()
	}
}

func BenchmarkCallWithSpinlock(b *testing.B) {
	fn := func(n int) (int, error) { return n * 2, nil }
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		h, fut := Func1(Spinlock, fn)
		h.CallWith(i)
		h.Release()
		fut.Release()
	}
}

func BenchmarkCallWithPooled(b *testing.B) {
	fn := func(n int) (int, error) { return n * 2, nil }
	alloc := NewPoolAllocator()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		h, fut := Func1(Unsafe, fn, WithAllocator(alloc))
		h.CallWith(i)
		h.Release()
		fut.Release()
	}
}

func BenchmarkFutureGet(b *testing.B) {
	fn := func() (int, error) { return 42, nil }
	h, fut := Func0(Waitable, fn)
	defer h.Release()
	defer fut.Release()
	h.Call()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = fut.Get()
	}
}

func BenchmarkSetArg(b *testing.B) {
	fn := func(n int) (int, error) { return n, nil }
	h, fut := Func1(Unsafe, fn)
	defer h.Release()
	defer fut.Release()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = h.SetArg(0, i)
	}
}

func BenchmarkReflectedCall(b *testing.B) {
	fn := func(n int) (int, error) { return n * 2, nil }
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		h, err := New(Unsafe, fn)
		if err != nil {
			b.Fatal(err)
		}
		h.CallWith(i)
		h.Release()
	}
}
