package dawg

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuildDictionaryEmptyDawg(t *testing.T) {
	b := NewDawgBuilder()
	d := b.Finish() // no keys inserted

	dic, numUnused, err := BuildDictionary(d)
	require.NoError(t, err)
	require.GreaterOrEqual(t, dic.Size(), 1)
	require.Greater(t, numUnused, uint32(0)) // the rest of the first block goes unused

	_, ok := dic.Find("anything")
	require.False(t, ok)
}

// A merging subtree shared by >=2 parents exercises the link table's reuse
// path in dictionaryBuilder.buildNode.
func TestBuildDictionaryMergingStates(t *testing.T) {
	pairs := []kv{
		{"ax", 1}, {"ay", 2},
		{"bx", 1}, {"by", 2}, // same suffix DAWG shape as "ax"/"ay" under a
		// different parent byte: the minimizer should merge these two
		// suffix subtrees into one shared state.
	}
	d, dic, _, err := buildFromPairs(pairs)
	require.NoError(t, err)
	require.Greater(t, d.NumOfMergingStates(), 0)

	for _, p := range pairs {
		v, ok := dic.Find(p.key)
		require.True(t, ok, p.key)
		require.Equal(t, p.value, v)
	}
}

// Every existing transition must be reachable via
// index ^ offset(index) ^ label and land on a unit whose own label
// matches.
func TestDictionaryTransitionValidity(t *testing.T) {
	pairs := []kv{
		{"a", 1}, {"ab", 2}, {"abc", 3}, {"abd", 4}, {"b", 5}, {"ba", 6},
	}
	_, dic, _, err := buildFromPairs(pairs)
	require.NoError(t, err)

	for _, p := range pairs {
		index := dic.Root()
		for i := 0; i < len(p.key); i++ {
			label := p.key[i]
			next := index ^ dic.units[index].offset() ^ uint32(label)
			require.Equal(t, uint32(label), dic.units[next].label(), "key %q byte %d", p.key, i)
			index = next
		}
		require.True(t, dic.HasValue(index))
		require.Equal(t, p.value, dic.Value(index))
	}
}

func TestBuildDictionaryWriteReadRoundTrip(t *testing.T) {
	pairs := []kv{{"a", 1}, {"ab", 2}, {"abc", 3}, {"abd", 4}, {"b", 5}}
	_, dic, guide, err := buildFromPairs(pairs)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, dic.Write(&buf))

	var dic2 Dictionary
	require.NoError(t, dic2.Read(&buf))

	for _, p := range pairs {
		v, ok := dic2.Find(p.key)
		require.True(t, ok)
		require.Equal(t, p.value, v)
	}

	var gbuf bytes.Buffer
	require.NoError(t, guide.Write(&gbuf))
	var guide2 Guide
	require.NoError(t, guide2.Read(&gbuf))
	require.Equal(t, guide.units, guide2.units)
}

func TestDictionaryReadTruncated(t *testing.T) {
	pairs := []kv{{"a", 1}, {"b", 2}}
	_, dic, _, err := buildFromPairs(pairs)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, dic.Write(&buf))

	truncated := buf.Bytes()[:buf.Len()-1]
	var dic2 Dictionary
	err = dic2.Read(bytes.NewReader(truncated))
	require.ErrorIs(t, err, ErrTruncated)
}
