package dawg

import (
	"bytes"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
)

// Dictionary, Guide and RankedGuide all survive a Write/Read round trip
// with identical query results.
func TestRoundTripPreservesQueryResults(t *testing.T) {
	pairs := []kv{
		{"a", 1}, {"ab", 2}, {"abc", 3}, {"abd", 4}, {"b", 5},
	}
	d, dic, guide, err := buildFromPairs(pairs)
	require.NoError(t, err)

	rguide, err := BuildRankedGuide(d, dic, nil)
	require.NoError(t, err)

	var dicBuf, guideBuf, rguideBuf bytes.Buffer
	require.NoError(t, dic.Write(&dicBuf))
	require.NoError(t, guide.Write(&guideBuf))
	require.NoError(t, rguide.Write(&rguideBuf))

	var dic2 Dictionary
	var guide2 Guide
	var rguide2 RankedGuide
	require.NoError(t, dic2.Read(&dicBuf))
	require.NoError(t, guide2.Read(&guideBuf))
	require.NoError(t, rguide2.Read(&rguideBuf))

	for _, p := range pairs {
		v, ok := dic2.Find(p.key)
		require.True(t, ok, p.key)
		require.Equal(t, p.value, v)
	}
	_, ok := dic2.Find("abcd")
	require.False(t, ok)

	require.Equal(t, completions(dic, guide, dic.Root(), nil), completions(&dic2, &guide2, dic2.Root(), nil))

	rc := NewRankedCompleter(&dic2, &rguide2, nil)
	rc.Start(dic2.Root(), nil)
	seen := map[string]int32{}
	for rc.Next() {
		seen[string(append([]byte(nil), rc.Key()...))] = rc.Value()
	}
	require.Len(t, seen, len(pairs))
	for _, p := range pairs {
		require.Equal(t, p.value, seen[p.key])
	}
}

// generateKeys deterministically produces a large, distinct key set from a
// small alphabet so the builder exercises its hash-table growth and the
// minimizer produces a substantial number of merged states, standing in for
// a natural-language wordlist
// (no such list is available in this environment; this synthetic set is
// sized to trigger the same structural behavior: repeated suffixes shared
// across many branches).
func generateKeys(n int) []kv {
	const alphabet = "abcdefghij"
	out := make([]kv, 0, n)
	seen := map[string]bool{}
	for i := 0; len(out) < n; i++ {
		w := i
		var buf []byte
		for j := 0; j < 5; j++ {
			buf = append(buf, alphabet[w%len(alphabet)])
			w /= len(alphabet)
		}
		key := string(buf)
		if seen[key] {
			continue
		}
		seen[key] = true
		// The value depends only on the bytes after the first, so every
		// first byte leads to an identical, mergeable suffix subtree.
		out = append(out, kv{key, int32(i/len(alphabet)) + 1})
	}
	return out
}

// A large key set (thousands of entries rather than a hypothetical
// million-word wordlist) still builds, is fully findable, completes in
// sorted order, and survives a write/read round trip.
func TestLargeKeySetBuildAndRoundTrip(t *testing.T) {
	pairs := generateKeys(8000)
	d, dic, guide, err := buildFromPairs(pairs)
	require.NoError(t, err)
	require.Greater(t, d.NumOfMergingStates(), 0)

	for _, p := range pairs {
		v, ok := dic.Find(p.key)
		require.True(t, ok, p.key)
		require.Equal(t, p.value, v)
	}

	got := completions(dic, guide, dic.Root(), nil)
	require.Len(t, got, len(pairs))

	want := append([]kv(nil), pairs...)
	sort.Slice(want, func(i, j int) bool { return want[i].key < want[j].key })
	require.Equal(t, want, got)

	var buf bytes.Buffer
	require.NoError(t, dic.Write(&buf))
	var dic2 Dictionary
	require.NoError(t, dic2.Read(&buf))
	for i := 0; i < len(pairs); i += 37 { // sample rather than re-check all 8000
		v, ok := dic2.Find(pairs[i].key)
		require.True(t, ok, pairs[i].key)
		require.Equal(t, pairs[i].value, v)
	}
}
