package gedo

import (
	"unsafe"
)

// Block describes a contiguous span of memory. A Block is a plain value:
// it carries no ownership information by itself, ownership is determined
// by which Allocator issued it. The zero Block describes no memory.
//
// Invariant: Size() == 0 if and only if the block describes no memory.
type Block struct {
	data []byte
}

// MakeBlock wraps an existing byte slice in a Block. An empty or nil
// slice yields the zero Block.
func MakeBlock(data []byte) Block {
	if len(data) == 0 {
		return Block{}
	}
	return Block{data: data}
}

// Size returns the number of bytes the block describes.
func (b Block) Size() int {
	return len(b.data)
}

// IsEmpty reports whether the block describes no memory.
func (b Block) IsEmpty() bool {
	return len(b.data) == 0
}

// Data returns the underlying bytes. The returned slice aliases the
// block, it does not copy.
func (b Block) Data() []byte {
	return b.data
}

// Zero overwrites every byte of the block with 0.
func (b Block) Zero() {
	clear(b.data)
}

// base returns the address of the first byte, or 0 for the empty block.
func (b Block) base() uintptr {
	if len(b.data) == 0 {
		return 0
	}
	return uintptr(unsafe.Pointer(unsafe.SliceData(b.data)))
}

// Contains reports whether ptr lies in [base, base+size).
func (b Block) Contains(ptr unsafe.Pointer) bool {
	if b.IsEmpty() {
		return false
	}
	p := uintptr(ptr)
	return p >= b.base() && p < b.base()+uintptr(len(b.data))
}

// ContainsBlock reports whether small's full byte range, start and
// one-past-end, lies inside b.
func (b Block) ContainsBlock(small Block) bool {
	if b.IsEmpty() || small.IsEmpty() {
		return false
	}
	start := small.base()
	end := start + uintptr(small.Size())
	return start >= b.base() && end <= b.base()+uintptr(b.Size())
}
