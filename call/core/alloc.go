package core

import "sync"

// Allocator controls how context storage is obtained and released. Release
// happens exactly once, when the last reference to a context goes away.
//
// The default heap allocator leaves disposal to the garbage collector; the
// pool allocator recycles contexts and requires callers to release every
// Handle and Future they hold.
type Allocator interface {
	New() *Context
	Free(*Context)
}

// DefaultAllocator allocates contexts on the heap and lets the garbage
// collector reclaim them.
var DefaultAllocator Allocator = heapAllocator{}

type heapAllocator struct{}

func (heapAllocator) New() *Context { return new(Context) }
func (heapAllocator) Free(*Context) {}

// PoolAllocator recycles contexts through a sync.Pool. Freed contexts are
// zeroed before being pooled; a context must not be touched after its last
// reference is released.
type PoolAllocator struct {
	pool sync.Pool
}

// NewPoolAllocator creates an empty context pool.
func NewPoolAllocator() *PoolAllocator {
	a := &PoolAllocator{}
	a.pool.New = func() any { return new(Context) }
	return a
}

func (a *PoolAllocator) New() *Context {
	return a.pool.Get().(*Context)
}

func (a *PoolAllocator) Free(c *Context) {
	c.recycle()
	a.pool.Put(c)
}
