package dawg

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestObjectPoolAllocateStableIndices(t *testing.T) {
	var p objectPool[int]
	require.Equal(t, 0, p.size_())

	indices := make([]int, 0, defaultBlockSize*3)
	for i := 0; i < defaultBlockSize*3; i++ {
		idx := p.allocate()
		*p.at(idx) = i
		indices = append(indices, idx)
	}

	require.Equal(t, defaultBlockSize*3, p.size_())
	for i, idx := range indices {
		require.Equal(t, i, *p.at(idx))
	}
}

func TestObjectPoolClearAndSwap(t *testing.T) {
	var a, b objectPool[int]
	ai := a.allocate()
	*a.at(ai) = 42

	a.swap(&b)
	require.Equal(t, 0, a.size_())
	require.Equal(t, 1, b.size_())
	require.Equal(t, 42, *b.at(ai))

	b.clear()
	require.Equal(t, 0, b.size_())
}

func TestBitPoolSetGet(t *testing.T) {
	var p bitPool
	for i := 0; i < 80; i++ {
		p.allocate()
	}
	p.set(3, true)
	p.set(66, true) // touches a later underlying byte

	require.True(t, p.get(3))
	require.False(t, p.get(4))
	require.True(t, p.get(66))
	require.False(t, p.get(65))
}
