// Package container provides allocator-aware growable containers.
package container

import (
	"fmt"
	"unsafe"

	"github.com/ahmedabdelhay/gedo"
)

const minCapacity = 8

// Array is a growable array of T whose storage is a single block
// borrowed from an Allocator. Growth is geometric (capacity doubling,
// minimum 8 elements) and every reallocation routes through the same
// allocator that issued the current block.
//
// T must not contain Go pointers: element storage is raw block memory
// and the garbage collector does not scan it. Blocks issued by gedo
// allocators are themselves kept reachable by their allocator, so
// allocator-issued handles stored inside an Array stay live for the
// allocator's lifetime.
//
// The zero Array is not usable; construct with New or NewWith.
type Array[T any] struct {
	alloc gedo.Allocator
	block gedo.Block
	count int
}

// New creates an empty array using the process default allocator.
func New[T any]() Array[T] {
	return NewWith[T](nil)
}

// NewWith creates an empty array using alloc. A nil alloc selects the
// process default allocator.
func NewWith[T any](alloc gedo.Allocator) Array[T] {
	if alloc == nil {
		alloc = gedo.Default()
	}
	return Array[T]{alloc: alloc}
}

func elemSize[T any]() int {
	var zero T
	return int(unsafe.Sizeof(zero))
}

// elems views the block as []T with len == capacity.
func (a *Array[T]) elems() []T {
	if a.block.IsEmpty() {
		return nil
	}
	data := a.block.Data()
	return unsafe.Slice((*T)(unsafe.Pointer(unsafe.SliceData(data))), a.Cap())
}

// Len returns the logical element count.
func (a *Array[T]) Len() int {
	return a.count
}

// Cap returns how many elements the current block can hold.
func (a *Array[T]) Cap() int {
	return a.block.Size() / elemSize[T]()
}

// Get returns the element at index i. It panics if i is out of range,
// out-of-range access is a defect in caller logic, not a runtime
// condition.
func (a *Array[T]) Get(i int) T {
	if i < 0 || i >= a.count {
		panic(fmt.Sprintf("index %d out of range [0, %d)", i, a.count))
	}
	return a.elems()[i]
}

// Set overwrites the element at index i. It panics if i is out of range.
func (a *Array[T]) Set(i int, v T) {
	if i < 0 || i >= a.count {
		panic(fmt.Sprintf("index %d out of range [0, %d)", i, a.count))
	}
	a.elems()[i] = v
}

// Slice returns a live view of the logical elements. The view is
// invalidated by any operation that reallocates.
func (a *Array[T]) Slice() []T {
	return a.elems()[:a.count]
}

// Reserve grows capacity to at least n elements. It never changes Len.
// This is the single reallocation path: allocate a new block from the
// owning allocator, copy the old bytes forward, free the old block,
// adopt the new one.
func (a *Array[T]) Reserve(n int) error {
	if a.Cap() >= n {
		return nil
	}
	newBlock, err := a.alloc.Allocate(n * elemSize[T]())
	if err != nil {
		return err
	}
	if !a.block.IsEmpty() {
		copy(newBlock.Data(), a.block.Data())
		a.alloc.Free(&a.block)
	}
	a.block = newBlock
	return nil
}

// Resize sets the logical length to n, growing capacity first if needed.
// Elements in [oldLen, n) are zero-valued, they are not constructed by
// the caller.
func (a *Array[T]) Resize(n int) error {
	if err := a.Reserve(n); err != nil {
		return err
	}
	a.count = n
	return nil
}

// Append adds v at the end, doubling capacity when full.
func (a *Array[T]) Append(v T) error {
	if a.count >= a.Cap() {
		next := 2 * a.count
		if next < minCapacity {
			next = minCapacity
		}
		if err := a.Reserve(next); err != nil {
			return err
		}
	}
	a.elems()[a.count] = v
	a.count++
	return nil
}

// Pop removes and returns the last element. It panics on an empty array.
func (a *Array[T]) Pop() T {
	if a.count == 0 {
		panic("pop from empty array")
	}
	a.count--
	return a.elems()[a.count]
}

// Clear drops the logical elements but keeps the block.
func (a *Array[T]) Clear() {
	a.count = 0
}

// Clone deep-copies the array through the same allocator. The new block
// is sized to the source's full block, not just its logical count.
func (a *Array[T]) Clone() (Array[T], error) {
	out := Array[T]{alloc: a.alloc}
	if a.block.IsEmpty() {
		return out, nil
	}
	newBlock, err := a.alloc.Allocate(a.block.Size())
	if err != nil {
		return Array[T]{}, err
	}
	copy(newBlock.Data(), a.block.Data())
	out.block = newBlock
	out.count = a.count
	return out, nil
}

// Move transfers block ownership to the returned array and leaves the
// receiver empty and safely closeable.
func (a *Array[T]) Move() Array[T] {
	out := Array[T]{alloc: a.alloc, block: a.block, count: a.count}
	a.block = gedo.Block{}
	a.count = 0
	return out
}

// Close returns the block to the owning allocator. The array is empty
// afterwards and can be reused.
func (a *Array[T]) Close() {
	if !a.block.IsEmpty() {
		a.alloc.Free(&a.block)
	}
	a.count = 0
}

// Allocator returns the allocator the array captured at construction.
func (a *Array[T]) Allocator() gedo.Allocator {
	return a.alloc
}
