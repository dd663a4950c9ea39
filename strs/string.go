// Package strs provides an allocator-aware string container and string
// helpers built on it.
package strs

import (
	"fmt"

	"github.com/fagongzi/util/hack"

	"github.com/ahmedabdelhay/gedo"
)

const minCapacity = 8

// String is a growable byte string whose storage is a single block
// borrowed from an Allocator. The block always keeps one reserved byte
// beyond the logical length set to 0, so the raw bytes are safely
// nul-terminated after any mutating operation.
type String struct {
	alloc gedo.Allocator
	block gedo.Block
	count int
}

// New creates an empty string container. A nil alloc selects the
// process default allocator.
func New(alloc gedo.Allocator) String {
	if alloc == nil {
		alloc = gedo.Default()
	}
	return String{alloc: alloc}
}

// NewFrom creates a string container holding s.
func NewFrom(s string, alloc gedo.Allocator) (String, error) {
	out := New(alloc)
	if err := out.Append(s); err != nil {
		return String{}, err
	}
	return out, nil
}

// FromBlock adopts an already nul-terminated block issued by alloc and
// derives the length by scanning for the terminator. Handing over a
// block without a terminator is a caller contract violation, not a
// detected error.
func FromBlock(block gedo.Block, alloc gedo.Allocator) String {
	if alloc == nil {
		alloc = gedo.Default()
	}
	count := 0
	for _, c := range block.Data() {
		if c == 0 {
			break
		}
		count++
	}
	return String{alloc: alloc, block: block, count: count}
}

// Len returns the logical length in bytes, excluding the terminator.
func (s *String) Len() int {
	return s.count
}

// Cap returns how many bytes fit before the next reallocation, the
// terminator byte excluded.
func (s *String) Cap() int {
	if s.block.IsEmpty() {
		return 0
	}
	return s.block.Size() - 1
}

// At returns the byte at index i. It panics if i is out of range.
func (s *String) At(i int) byte {
	if i < 0 || i >= s.count {
		panic(fmt.Sprintf("index %d out of range [0, %d)", i, s.count))
	}
	return s.block.Data()[i]
}

// Bytes returns a live view of the logical bytes, without the
// terminator. The view is invalidated by any operation that reallocates.
func (s *String) Bytes() []byte {
	if s.block.IsEmpty() {
		return nil
	}
	return s.block.Data()[:s.count]
}

// RawBytes returns the logical bytes plus the trailing terminator.
func (s *String) RawBytes() []byte {
	if s.block.IsEmpty() {
		return nil
	}
	return s.block.Data()[:s.count+1]
}

// String returns the contents as a Go string without copying.
func (s *String) String() string {
	if s.count == 0 {
		return ""
	}
	return hack.SliceToString(s.Bytes())
}

// Reserve grows capacity so at least n logical bytes fit. The block is
// allocated with one extra byte for the terminator and arrives
// zero-filled, which establishes the termination invariant for free.
func (s *String) Reserve(n int) error {
	if s.Cap() >= n {
		return nil
	}
	newBlock, err := s.alloc.Allocate(n + 1)
	if err != nil {
		return err
	}
	if !s.block.IsEmpty() {
		copy(newBlock.Data(), s.block.Data()[:s.count])
		s.alloc.Free(&s.block)
	}
	s.block = newBlock
	return nil
}

// Resize sets the logical length to n, growing first if needed. Bytes in
// [oldLen, n) are whatever the block already held, zero for freshly
// reserved space.
func (s *String) Resize(n int) error {
	if err := s.Reserve(n); err != nil {
		return err
	}
	s.count = n
	s.terminate()
	return nil
}

// Append appends v, growing geometrically through the same reserve path
// as every other mutation.
func (s *String) Append(v string) error {
	if len(v) == 0 {
		return nil
	}
	if err := s.grow(s.count + len(v)); err != nil {
		return err
	}
	copy(s.block.Data()[s.count:], v)
	s.count += len(v)
	s.terminate()
	return nil
}

// AppendByte appends a single byte.
func (s *String) AppendByte(c byte) error {
	if err := s.grow(s.count + 1); err != nil {
		return err
	}
	s.block.Data()[s.count] = c
	s.count++
	s.terminate()
	return nil
}

// grow reserves capacity for need bytes, doubling from the current
// length so a run of appends costs amortized O(1).
func (s *String) grow(need int) error {
	if s.Cap() >= need {
		return nil
	}
	target := 2 * s.count
	if target < minCapacity {
		target = minCapacity
	}
	if target < need {
		target = need
	}
	return s.Reserve(target)
}

func (s *String) terminate() {
	if !s.block.IsEmpty() {
		s.block.Data()[s.count] = 0
	}
}

// Clear drops the contents but keeps the block.
func (s *String) Clear() {
	s.count = 0
	s.terminate()
}

// Equal reports whether s and other hold the same bytes.
func (s *String) Equal(other string) bool {
	return s.String() == other
}

// Clone deep-copies the string through the same allocator, sized to the
// source's full block.
func (s *String) Clone() (String, error) {
	out := String{alloc: s.alloc}
	if s.block.IsEmpty() {
		return out, nil
	}
	newBlock, err := s.alloc.Allocate(s.block.Size())
	if err != nil {
		return String{}, err
	}
	copy(newBlock.Data(), s.block.Data())
	out.block = newBlock
	out.count = s.count
	return out, nil
}

// Move transfers block ownership to the returned string and leaves the
// receiver empty and safely closeable.
func (s *String) Move() String {
	out := String{alloc: s.alloc, block: s.block, count: s.count}
	s.block = gedo.Block{}
	s.count = 0
	return out
}

// Close returns the block to the owning allocator.
func (s *String) Close() {
	if !s.block.IsEmpty() {
		s.alloc.Free(&s.block)
	}
	s.count = 0
}

// Allocator returns the allocator captured at construction.
func (s *String) Allocator() gedo.Allocator {
	return s.alloc
}
