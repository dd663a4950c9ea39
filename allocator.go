package gedo

import (
	"errors"
	"sync/atomic"
)

// ErrOutOfMemory is returned by Allocate when the request cannot be
// satisfied: the arena does not have enough remaining space, or the
// request is invalid.
var ErrOutOfMemory = errors.New("gedo: out of memory")

// Allocator is the capability every container and helper in this library
// allocates through. An Allocator instance may be shared by reference
// across many containers, but is not safe for concurrent use.
type Allocator interface {
	// Allocate returns a zero-filled block of exactly size bytes,
	// attributed to this allocator. On exhaustion it returns an error
	// wrapping ErrOutOfMemory.
	Allocate(size int) (Block, error)

	// Free releases block back to the allocator. It returns true and
	// clears *block iff the block belongs to this allocator; otherwise
	// it returns false and leaves *block untouched. Whether the memory
	// is actually reclaimed is an allocator policy: the heap reclaims
	// per block, the arena reclaims only on Reset.
	Free(block *Block) bool

	// Reset invalidates every outstanding block and makes the
	// allocator's full capacity available again. A no-op for the heap.
	Reset()
}

// defaultAllocator is the process-wide slot read by every constructor
// that is not given an explicit allocator. Reads and swaps are atomic so
// the slot itself is safe to change while other goroutines allocate; the
// installed allocator is still single-goroutine. The holder keeps
// atomic.Value happy when the concrete allocator type changes.
var defaultAllocator atomic.Value

type allocatorHolder struct {
	alloc Allocator
}

func init() {
	defaultAllocator.Store(allocatorHolder{alloc: NewHeap()})
}

// Default returns the current process-wide default allocator.
func Default() Allocator {
	return defaultAllocator.Load().(allocatorHolder).alloc
}

// SetDefault installs alloc as the process-wide default. The caller
// keeps lifetime responsibility for alloc. Containers constructed before
// the swap keep the allocator they captured at construction.
func SetDefault(alloc Allocator) {
	if alloc == nil {
		panic("gedo: nil default allocator")
	}
	defaultAllocator.Store(allocatorHolder{alloc: alloc})
}
