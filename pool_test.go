package gedo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPoolAcquireRelease(t *testing.T) {
	p := NewPool(256)
	defer p.Close()

	a, err := p.Acquire()
	require.NoError(t, err)
	assert.Equal(t, 256, a.Cap())

	_, err = a.Allocate(100)
	require.NoError(t, err)
	p.Release(a)

	// the same arena comes back, rewound
	b, err := p.Acquire()
	require.NoError(t, err)
	assert.Same(t, a, b)
	assert.Equal(t, 0, b.Len())
	p.Release(b)
}

func TestPoolGrowsOnDemand(t *testing.T) {
	p := NewPool(128)
	defer p.Close()

	a, err := p.Acquire()
	require.NoError(t, err)
	b, err := p.Acquire()
	require.NoError(t, err)
	assert.NotSame(t, a, b)

	p.Release(a)
	p.Release(b)
}
