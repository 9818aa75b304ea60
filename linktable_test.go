package dawg

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLinkTableInsertFind(t *testing.T) {
	lt := newLinkTable(8)

	ok := lt.insert(5, 100)
	require.True(t, ok)

	off, ok := lt.find(5)
	require.True(t, ok)
	require.Equal(t, uint32(100), off)

	_, ok = lt.find(6)
	require.False(t, ok)
}

func TestLinkTableOverwrite(t *testing.T) {
	lt := newLinkTable(4)
	require.True(t, lt.insert(1, 10))
	require.True(t, lt.insert(1, 20))

	off, ok := lt.find(1)
	require.True(t, ok)
	require.Equal(t, uint32(20), off)
}

// A table sized exactly to its entry count should still accept every
// distinct index up to capacity, and report full rather than looping
// forever once it genuinely has no room.
func TestLinkTableFullReturnsFalse(t *testing.T) {
	lt := newLinkTable(4)
	for i := uint32(1); i <= 4; i++ {
		require.True(t, lt.insert(i, i*10), "index %d", i)
	}

	// index 0 is never used by callers (DictionaryBuilder never probes a
	// merging state numbered 0), so probing distinct nonzero indices past
	// capacity must eventually report the table full instead of hanging.
	_, ok := lt.findID(5)
	require.False(t, ok)
}
