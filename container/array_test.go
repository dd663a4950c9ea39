package container

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ahmedabdelhay/gedo"
)

// countingAllocator wraps another allocator and counts Allocate calls.
type countingAllocator struct {
	gedo.Allocator
	allocs int
}

func (c *countingAllocator) Allocate(size int) (gedo.Block, error) {
	c.allocs++
	return c.Allocator.Allocate(size)
}

func TestArrayGrowthLaw(t *testing.T) {
	alloc := &countingAllocator{Allocator: gedo.NewHeap()}
	arr := NewWith[int64](alloc)
	defer arr.Close()

	const n = 1000
	for i := int64(0); i < n; i++ {
		require.NoError(t, arr.Append(i))
	}

	assert.Equal(t, n, arr.Len())
	assert.GreaterOrEqual(t, arr.Cap(), n)
	// doubling from 8: 8, 16, 32, ... 1024 -> 8 reallocations for 1000 appends
	assert.LessOrEqual(t, alloc.allocs, 8)

	for i := int64(0); i < n; i++ {
		assert.Equal(t, i, arr.Get(int(i)))
	}
}

func TestArrayAppendPop(t *testing.T) {
	arr := New[uint32]()
	defer arr.Close()

	require.NoError(t, arr.Append(7))
	require.NoError(t, arr.Append(9))
	assert.Equal(t, 2, arr.Len())
	assert.Equal(t, uint32(9), arr.Pop())
	assert.Equal(t, uint32(7), arr.Pop())
	assert.Equal(t, 0, arr.Len())

	assert.Panics(t, func() {
		arr.Pop()
	})
}

func TestArrayBounds(t *testing.T) {
	arr := New[byte]()
	defer arr.Close()

	require.NoError(t, arr.Append(1))
	assert.Equal(t, byte(1), arr.Get(0))

	assert.Panics(t, func() {
		arr.Get(1)
	})
	assert.Panics(t, func() {
		arr.Get(-1)
	})
	assert.Panics(t, func() {
		arr.Set(1, 0)
	})
}

func TestArrayResizeZeroFills(t *testing.T) {
	arr := New[int32]()
	defer arr.Close()

	require.NoError(t, arr.Append(5))
	require.NoError(t, arr.Resize(4))
	assert.Equal(t, 4, arr.Len())
	assert.Equal(t, int32(5), arr.Get(0))
	for i := 1; i < 4; i++ {
		assert.Equal(t, int32(0), arr.Get(i))
	}
}

func TestArrayReserveKeepsLen(t *testing.T) {
	arr := New[int16]()
	defer arr.Close()

	require.NoError(t, arr.Append(3))
	require.NoError(t, arr.Reserve(100))
	assert.Equal(t, 1, arr.Len())
	assert.GreaterOrEqual(t, arr.Cap(), 100)
	assert.Equal(t, int16(3), arr.Get(0))
}

func TestArrayClone(t *testing.T) {
	arr := New[int]()
	defer arr.Close()
	for i := 0; i < 10; i++ {
		require.NoError(t, arr.Append(i))
	}

	cp, err := arr.Clone()
	require.NoError(t, err)
	defer cp.Close()

	require.Equal(t, arr.Len(), cp.Len())
	assert.Equal(t, arr.Slice(), cp.Slice())

	// mutating the copy never changes the source
	cp.Set(0, 99)
	assert.Equal(t, 0, arr.Get(0))
	assert.Equal(t, 99, cp.Get(0))
}

func TestArrayMoveLeavesSourceEmpty(t *testing.T) {
	arr := New[int]()
	require.NoError(t, arr.Append(1))
	require.NoError(t, arr.Append(2))

	moved := arr.Move()
	defer moved.Close()

	assert.Equal(t, 0, arr.Len())
	assert.Equal(t, 0, arr.Cap())
	assert.Equal(t, 2, moved.Len())
	assert.Equal(t, 1, moved.Get(0))

	// source is safely closeable after the move
	arr.Close()
}

func TestArrayOnArena(t *testing.T) {
	a, err := gedo.NewArena(1024)
	require.NoError(t, err)
	defer a.Close()

	arr := NewWith[uint64](a)
	for i := uint64(0); i < 16; i++ {
		require.NoError(t, arr.Append(i))
	}
	assert.Equal(t, 16, arr.Len())
	assert.Equal(t, uint64(15), arr.Get(15))

	// growth stays inside the arena
	assert.Greater(t, a.Len(), 0)
	arr.Close()
}

func TestArrayArenaExhaustion(t *testing.T) {
	a, err := gedo.NewArena(64)
	require.NoError(t, err)
	defer a.Close()

	arr := NewWith[uint64](a)
	var appendErr error
	for i := 0; i < 100; i++ {
		if appendErr = arr.Append(uint64(i)); appendErr != nil {
			break
		}
	}
	assert.ErrorIs(t, appendErr, gedo.ErrOutOfMemory)
}

func TestArrayClear(t *testing.T) {
	arr := New[int]()
	defer arr.Close()

	require.NoError(t, arr.Append(1))
	c := arr.Cap()
	arr.Clear()
	assert.Equal(t, 0, arr.Len())
	assert.Equal(t, c, arr.Cap())
}
