package gedo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArenaMonotonicity(t *testing.T) {
	a, err := NewArena(256)
	require.NoError(t, err)
	defer a.Close()

	sizes := []int{8, 16, 32, 64}
	sum := 0
	var blocks []Block
	for _, size := range sizes {
		b, err := a.Allocate(size)
		require.NoError(t, err)
		assert.Equal(t, size, b.Size())
		sum += size
		assert.Equal(t, sum, a.Len())

		for _, prev := range blocks {
			assert.False(t, prev.ContainsBlock(b))
			assert.False(t, b.ContainsBlock(prev))
		}
		blocks = append(blocks, b)
	}
}

func TestArenaExhaustion(t *testing.T) {
	a, err := NewArena(64)
	require.NoError(t, err)
	defer a.Close()

	_, err = a.Allocate(40)
	require.NoError(t, err)
	assert.Equal(t, 40, a.Len())

	// one byte past the remaining space must fail without moving the cursor
	_, err = a.Allocate(25)
	assert.ErrorIs(t, err, ErrOutOfMemory)
	assert.Equal(t, 40, a.Len())

	// an exact fit succeeds and exhausts the arena
	_, err = a.Allocate(24)
	require.NoError(t, err)
	assert.Equal(t, 64, a.Len())
}

func TestArenaScenario(t *testing.T) {
	a, err := NewArena(64)
	require.NoError(t, err)
	defer a.Close()

	_, err = a.Allocate(40)
	require.NoError(t, err)

	_, err = a.Allocate(30)
	assert.ErrorIs(t, err, ErrOutOfMemory)

	a.Reset()
	b, err := a.Allocate(64)
	require.NoError(t, err)
	assert.Equal(t, 64, b.Size())
}

func TestArenaResetIdempotence(t *testing.T) {
	a, err := NewArena(128)
	require.NoError(t, err)
	defer a.Close()

	_, err = a.Allocate(100)
	require.NoError(t, err)

	a.Reset()
	a.Reset()
	assert.Equal(t, 0, a.Len())

	b, err := a.Allocate(128)
	require.NoError(t, err)
	assert.Equal(t, 128, b.Size())

	_, err = a.Allocate(1)
	assert.ErrorIs(t, err, ErrOutOfMemory)
}

func TestArenaZeroFill(t *testing.T) {
	a, err := NewArena(64)
	require.NoError(t, err)
	defer a.Close()

	b, err := a.Allocate(64)
	require.NoError(t, err)
	for i := range b.Data() {
		b.Data()[i] = 0xff
	}

	a.Reset()
	b, err = a.Allocate(64)
	require.NoError(t, err)
	for _, c := range b.Data() {
		assert.Equal(t, byte(0), c)
	}
}

func TestArenaFreeValidatesMembership(t *testing.T) {
	a, err := NewArena(64)
	require.NoError(t, err)
	defer a.Close()

	b, err := a.Allocate(16)
	require.NoError(t, err)

	// free does not reclaim, it only validates and clears the handle
	assert.True(t, a.Free(&b))
	assert.True(t, b.IsEmpty())
	assert.Equal(t, 16, a.Len())

	foreign := MakeBlock(make([]byte, 16))
	assert.False(t, a.Free(&foreign))
	assert.Equal(t, 16, foreign.Size())

	assert.False(t, a.Free(nil))
	empty := Block{}
	assert.False(t, a.Free(&empty))
}

func TestArenaStats(t *testing.T) {
	a, err := NewArena(128)
	require.NoError(t, err)
	defer a.Close()

	assert.Equal(t, 128, a.Cap())
	assert.Equal(t, 0, a.Peak())

	_, err = a.Allocate(100)
	require.NoError(t, err)
	assert.Equal(t, 100, a.Peak())

	a.Reset()
	assert.Equal(t, 0, a.Len())
	assert.Equal(t, 100, a.Peak())

	_, err = a.Allocate(20)
	require.NoError(t, err)
	assert.Equal(t, 100, a.Peak())
}

func TestArenaInvalidSize(t *testing.T) {
	_, err := NewArena(0)
	assert.ErrorIs(t, err, ErrOutOfMemory)

	a, err := NewArena(16)
	require.NoError(t, err)
	defer a.Close()

	_, err = a.Allocate(-1)
	assert.ErrorIs(t, err, ErrOutOfMemory)

	b, err := a.Allocate(0)
	assert.NoError(t, err)
	assert.True(t, b.IsEmpty())
}
