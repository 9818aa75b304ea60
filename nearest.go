package dawg

// Nearest enumerates every key within a bounded edit (Levenshtein) distance
// of a target word, via a guide-ordered DFS that maintains one new dynamic-
// programming row per depth and prunes as soon as a subtree's minimum
// possible cost exceeds the bound. Based on the approach described by
// Steven Hanov for trie-based fuzzy search.
type Nearest struct {
	dic   *Dictionary
	guide *Guide

	word    []byte
	maxCost int

	columns int
	rows    []int // flattened DP table, one row of `columns` ints per depth

	key       []byte
	indexStack []uint32
	state      nearestState

	foundCost int
}

type nearestState int

const (
	nearestNextChild nearestState = iota
	nearestNextSibling
)

// NewNearest returns a Nearest over dic/guide.
func NewNearest(dic *Dictionary, guide *Guide) *Nearest {
	return &Nearest{dic: dic, guide: guide}
}

// Key returns the current match's key bytes. Valid only after Next has
// returned true.
func (n *Nearest) Key() []byte { return n.key }

// Value returns the current match's payload. Valid only after Next has
// returned true.
func (n *Nearest) Value() int32 { return n.dic.Value(n.indexStack[len(n.indexStack)-1]) }

// Cost returns the current match's edit distance from word. Valid only
// after Next has returned true.
func (n *Nearest) Cost() int { return n.foundCost }

// Start positions the cursor to search for keys within maxCost edits of
// word, starting from dic's root.
func (n *Nearest) Start(word string, maxCost int) {
	n.word = append(n.word[:0], word...)
	n.maxCost = maxCost
	n.columns = len(n.word) + 1

	n.rows = append(n.rows[:0], make([]int, n.columns)...)
	for i := 0; i < n.columns; i++ {
		n.rows[i] = i
	}

	n.key = n.key[:0]
	n.indexStack = n.indexStack[:0]
	if n.guide.Size() != 0 {
		n.indexStack = append(n.indexStack, n.dic.Root())
	}
	n.state = nearestNextChild
	n.foundCost = -1
}

func (n *Nearest) row(depth int) []int {
	for len(n.rows) < (depth+1)*n.columns {
		n.rows = append(n.rows, make([]int, n.columns)...)
	}
	return n.rows[depth*n.columns : (depth+1)*n.columns]
}

// dfs computes the DP row for stepping into index via letter, at the given
// depth (1-based, depth-1 is the parent row). It reports whether the row's
// minimum value is still within maxCost, meaning descent should continue.
func (n *Nearest) dfs(depth int, letter byte, index uint32) bool {
	prev := n.row(depth - 1)
	cur := n.row(depth)
	cur[0] = depth

	smallest := cur[0]
	for i := 1; i < n.columns; i++ {
		insertCost := cur[i-1] + 1
		deleteCost := prev[i] + 1
		replaceCost := prev[i-1]
		if n.word[i-1] != letter {
			replaceCost++
		}

		cost := insertCost
		if deleteCost < cost {
			cost = deleteCost
		}
		if replaceCost < cost {
			cost = replaceCost
		}
		cur[i] = cost
		if cost < smallest {
			smallest = cost
		}
	}

	if cur[n.columns-1] <= n.maxCost && n.dic.HasValue(index) {
		n.foundCost = cur[n.columns-1]
	} else {
		n.foundCost = -1
	}

	return smallest <= n.maxCost
}

// Next advances to the next key within the bound, returning false once the
// whole reachable subtree has been exhausted.
func (n *Nearest) Next() bool {
	if len(n.indexStack) == 0 {
		return false
	}
	for {
		switch n.state {
		case nearestNextChild:
			index := n.indexStack[len(n.indexStack)-1]
			label := n.guide.Child(index)
			if label == 0 {
				n.state = nearestNextSibling
				continue
			}
			if !n.dic.Follow(label, &index) {
				n.state = nearestNextSibling
				continue
			}
			depth := len(n.indexStack)
			n.key = append(n.key, label)
			n.indexStack = append(n.indexStack, index)
			if !n.dfs(depth, label, index) {
				n.state = nearestNextSibling
				continue
			}
			if n.foundCost >= 0 {
				return true
			}
			// stay in nearestNextChild to descend further
		case nearestNextSibling:
			if len(n.indexStack) <= 1 {
				return false
			}
			index := n.indexStack[len(n.indexStack)-1]
			siblingLabel := n.guide.Sibling(index)

			n.key = n.key[:len(n.key)-1]
			n.indexStack = n.indexStack[:len(n.indexStack)-1]

			if siblingLabel == 0 {
				continue
			}
			parent := n.indexStack[len(n.indexStack)-1]
			siblingIndex := parent
			if !n.dic.Follow(siblingLabel, &siblingIndex) {
				continue
			}
			depth := len(n.indexStack)
			n.key = append(n.key, siblingLabel)
			n.indexStack = append(n.indexStack, siblingIndex)
			if !n.dfs(depth, siblingLabel, siblingIndex) {
				continue
			}
			n.state = nearestNextChild
			if n.foundCost >= 0 {
				return true
			}
		}
	}
}
