package gedo

import (
	"fmt"

	"go.uber.org/zap"
)

// Arena is a bump-pointer allocator over one fixed upfront reservation.
// Allocation is O(1); individual frees are advisory and never reclaim
// space; Reset reclaims everything at once. Typical use is per-frame or
// per-parse scratch memory.
type Arena struct {
	backing Block
	cursor  int
	peak    int
}

// NewArena reserves bytes upfront and returns an arena over the
// reservation. The reservation is released by Close.
func NewArena(bytes int) (*Arena, error) {
	if bytes <= 0 {
		return nil, fmt.Errorf("gedo: invalid arena size %d: %w", bytes, ErrOutOfMemory)
	}
	a := &Arena{backing: MakeBlock(make([]byte, bytes))}
	logger.Debug("arena created", zap.Int("bytes", bytes))
	return a, nil
}

// Allocate bumps the cursor and returns a zero-filled block of exactly
// size bytes from the reservation. It fails with ErrOutOfMemory when the
// remaining space cannot satisfy the request; the cursor is untouched on
// failure.
func (a *Arena) Allocate(size int) (Block, error) {
	if size < 0 {
		return Block{}, fmt.Errorf("gedo: invalid allocation size %d: %w", size, ErrOutOfMemory)
	}
	if size == 0 {
		return Block{}, nil
	}
	if a.cursor+size > a.backing.Size() {
		logger.Debug("arena exhausted",
			zap.Int("requested", size),
			zap.Int("remaining", a.backing.Size()-a.cursor))
		return Block{}, fmt.Errorf("gedo: arena has %d of %d bytes left, need %d: %w",
			a.backing.Size()-a.cursor, a.backing.Size(), size, ErrOutOfMemory)
	}
	b := MakeBlock(a.backing.data[a.cursor : a.cursor+size : a.cursor+size])
	a.cursor += size
	if a.cursor > a.peak {
		a.peak = a.cursor
	}
	b.Zero()
	return b, nil
}

// Free validates that block lies inside the arena span and clears the
// caller's handle. The memory itself stays live until Reset; a block the
// arena did not issue is rejected with false.
func (a *Arena) Free(block *Block) bool {
	if block == nil || block.IsEmpty() {
		return false
	}
	if !a.backing.ContainsBlock(*block) {
		logger.Warn("free of block outside the arena span",
			zap.Int("size", block.Size()))
		return false
	}
	*block = Block{}
	return true
}

// Reset rewinds the cursor so the full reservation is available again.
// Every block previously issued becomes invalid; contents are not zeroed
// here, each new allocation re-zeroes its own span.
func (a *Arena) Reset() {
	a.cursor = 0
}

// Len returns the bytes currently allocated, i.e. the cursor.
func (a *Arena) Len() int {
	return a.cursor
}

// Cap returns the size of the reservation.
func (a *Arena) Cap() int {
	return a.backing.Size()
}

// Peak returns the allocation high-water mark. Reset does not rewind it.
func (a *Arena) Peak() int {
	return a.peak
}

// Close releases the backing reservation. The arena must not be used
// after Close.
func (a *Arena) Close() {
	a.backing = Block{}
	a.cursor = 0
}
