package dawg

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
)

func levenshtein(a, b string) int {
	prev := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(a); i++ {
		cur := make([]int, len(b)+1)
		cur[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			cur[j] = cur[j-1] + 1
			if prev[j]+1 < cur[j] {
				cur[j] = prev[j] + 1
			}
			if prev[j-1]+cost < cur[j] {
				cur[j] = prev[j-1] + cost
			}
		}
		prev = cur
	}
	return prev[len(b)]
}

func nearestMatches(dic *Dictionary, guide *Guide, word string, maxCost int) []kv {
	nr := NewNearest(dic, guide)
	nr.Start(word, maxCost)
	var got []kv
	for nr.Next() {
		got = append(got, kv{string(append([]byte(nil), nr.Key()...)), nr.Value()})
	}
	sort.Slice(got, func(i, j int) bool { return got[i].key < got[j].key })
	return got
}

// Words within a bounded edit distance of a misspelled query are found,
// and words outside the bound are not.
func TestNearestBoundedEditDistance(t *testing.T) {
	pairs := []kv{{"apple", 1}, {"apply", 2}, {"ape", 3}}
	_, dic, guide, err := buildFromPairs(pairs)
	require.NoError(t, err)

	got := nearestMatches(dic, guide, "appl", 1)
	require.Equal(t, []kv{{"apple", 1}, {"apply", 2}}, got)

	got = nearestMatches(dic, guide, "appl", 0)
	require.Empty(t, got)
}

func TestNearestExactMatchCostZero(t *testing.T) {
	pairs := []kv{{"apple", 1}, {"apply", 2}, {"ape", 3}}
	_, dic, guide, err := buildFromPairs(pairs)
	require.NoError(t, err)

	nr := NewNearest(dic, guide)
	nr.Start("ape", 0)
	require.True(t, nr.Next())
	require.Equal(t, "ape", string(nr.Key()))
	require.Equal(t, 0, nr.Cost())
	require.False(t, nr.Next())
}

// Nearest(word, k) returns all and only the inserted keys with edit
// distance <= k, with no duplicates, and the reported cost matches the
// true edit distance.
func TestNearestMatchesBruteForceEditDistance(t *testing.T) {
	pairs := []kv{
		{"cat", 1}, {"cats", 2}, {"car", 3}, {"cart", 4}, {"card", 5},
		{"care", 6}, {"dog", 7}, {"dogs", 8}, {"do", 9}, {"cot", 10},
	}
	_, dic, guide, err := buildFromPairs(pairs)
	require.NoError(t, err)

	for _, target := range []string{"cat", "car", "do", "cots", "xyz"} {
		for _, maxCost := range []int{0, 1, 2} {
			var want []kv
			for _, p := range pairs {
				if levenshtein(target, p.key) <= maxCost {
					want = append(want, p)
				}
			}
			sort.Slice(want, func(i, j int) bool { return want[i].key < want[j].key })

			got := nearestMatches(dic, guide, target, maxCost)
			require.Equal(t, want, got, "target=%q maxCost=%d", target, maxCost)

			nr := NewNearest(dic, guide)
			nr.Start(target, maxCost)
			seen := map[string]bool{}
			for nr.Next() {
				key := string(nr.Key())
				require.False(t, seen[key], "duplicate match %q", key)
				seen[key] = true
				require.Equal(t, levenshtein(target, key), nr.Cost())
			}
		}
	}
}

func TestNearestEmptyDictionary(t *testing.T) {
	_, dic, guide, err := buildFromPairs(nil)
	require.NoError(t, err)

	got := nearestMatches(dic, guide, "anything", 5)
	require.Empty(t, got)
}
