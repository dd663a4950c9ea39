package gedo

import (
	"go.uber.org/zap"
)

// Heap is the process-heap allocator: every Allocate is an independent
// allocation and every Free releases exactly that allocation. The heap
// keeps a reference to every block it issued until the block is freed,
// so allocator-issued memory stays reachable even when the only pointer
// to it lives inside another allocator-issued block.
type Heap struct {
	live  map[uintptr][]byte
	inUse int
}

// NewHeap creates a heap allocator.
func NewHeap() *Heap {
	return &Heap{live: make(map[uintptr][]byte)}
}

// Allocate returns a fresh zero-filled block of exactly size bytes.
func (h *Heap) Allocate(size int) (Block, error) {
	if size < 0 {
		return Block{}, ErrOutOfMemory
	}
	if size == 0 {
		return Block{}, nil
	}
	b := MakeBlock(make([]byte, size))
	h.live[b.base()] = b.data
	h.inUse += size
	return b, nil
}

// Free releases block iff the heap issued it. On success *block is
// cleared and the memory becomes reclaimable; on a foreign block Free
// returns false and leaves *block untouched.
func (h *Heap) Free(block *Block) bool {
	if block == nil || block.IsEmpty() {
		return false
	}
	data, ok := h.live[block.base()]
	if !ok || len(data) != block.Size() {
		logger.Warn("free of block not issued by this heap",
			zap.Int("size", block.Size()))
		return false
	}
	delete(h.live, block.base())
	h.inUse -= block.Size()
	*block = Block{}
	return true
}

// Reset is a no-op for the heap.
func (h *Heap) Reset() {
}

// Live returns the number of outstanding blocks.
func (h *Heap) Live() int {
	return len(h.live)
}

// InUse returns the total bytes of outstanding blocks.
func (h *Heap) InUse() int {
	return h.inUse
}

// Close drops every outstanding block. After Close the allocator is
// still usable, but all previously issued blocks stop being tracked.
func (h *Heap) Close() {
	h.live = make(map[uintptr][]byte)
	h.inUse = 0
}
