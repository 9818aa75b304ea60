package dawg

import "container/heap"

// rankedCompleterNode is one step of a path from a RankedCompleter's start
// index: it remembers the label and parent step that reached it, so a
// popped candidate's full key can be rebuilt by walking prevNodeIndex back
// to the root, and so its ancestors can each be offered a turn at their
// next-best sibling once that candidate is consumed.
type rankedCompleterNode struct {
	dicIndex      uint32
	prevNodeIndex int // -1 at the root
	label         byte
	siblingTried  bool
}

type rankedCompleterCandidate struct {
	nodeIndex int
	value     int32
}

type rankedCompleterHeap struct {
	items []rankedCompleterCandidate
	cmp   ValueComparer
}

func (h *rankedCompleterHeap) Len() int { return len(h.items) }
func (h *rankedCompleterHeap) Less(i, j int) bool {
	a, b := h.items[i], h.items[j]
	if a.value != b.value {
		return h.cmp(b.value, a.value)
	}
	return a.nodeIndex > b.nodeIndex
}
func (h *rankedCompleterHeap) Swap(i, j int) { h.items[i], h.items[j] = h.items[j], h.items[i] }
func (h *rankedCompleterHeap) Push(x any)     { h.items = append(h.items, x.(rankedCompleterCandidate)) }
func (h *rankedCompleterHeap) Pop() any {
	old := h.items
	n := len(old)
	item := old[n-1]
	h.items = old[:n-1]
	return item
}

// RankedCompleter enumerates completions from a given dictionary index in
// best-first order (by value, highest first with the default comparer),
// using a RankedGuide to know each node's value-ranked child order. Unlike
// Completer it is not a plain DFS cursor: it lazily expands a priority
// queue of candidate paths, so Next can be stopped early (e.g. after the
// top K completions) without having walked the rest of the subtree.
type RankedCompleter struct {
	dic   *Dictionary
	guide *RankedGuide
	cmp   ValueComparer

	nodes []rankedCompleterNode
	queue rankedCompleterHeap

	key       []byte
	prefixLen int
	value     int32
}

// NewRankedCompleter returns a RankedCompleter over dic/guide, ranking
// candidates with cmp (nil selects the same default BuildRankedGuide uses).
func NewRankedCompleter(dic *Dictionary, guide *RankedGuide, cmp ValueComparer) *RankedCompleter {
	if cmp == nil {
		cmp = ascendingValueComparer
	}
	return &RankedCompleter{dic: dic, guide: guide, cmp: cmp}
}

// Key returns the current completion's full key bytes. Valid only after
// Next has returned true.
func (c *RankedCompleter) Key() []byte { return c.key }

// Value returns the current completion's payload. Valid only after Next
// has returned true.
func (c *RankedCompleter) Value() int32 { return c.value }

// Start positions the cursor at index, with prefix as the already-known
// leading bytes of every key that will be produced.
func (c *RankedCompleter) Start(index uint32, prefix []byte) {
	c.nodes = c.nodes[:0]
	c.queue.items = c.queue.items[:0]
	c.queue.cmp = c.cmp
	c.key = append(c.key[:0], prefix...)
	c.prefixLen = len(prefix)
	c.value = 0

	if c.guide.Size() == 0 {
		return
	}
	root := c.createNode(index, -1, 0)
	c.seedTerminal(root)
}

// Next advances to the next-best completion, returning false once every
// key reachable from the starting index has been produced.
func (c *RankedCompleter) Next() bool {
	if c.queue.Len() == 0 {
		return false
	}
	best := heap.Pop(&c.queue).(rankedCompleterCandidate)
	c.value = best.value
	c.rebuildKey(best.nodeIndex)
	c.expandSiblings(best.nodeIndex)
	return true
}

func (c *RankedCompleter) createNode(dicIndex uint32, prevNodeIndex int, label byte) int {
	c.nodes = append(c.nodes, rankedCompleterNode{dicIndex: dicIndex, prevNodeIndex: prevNodeIndex, label: label})
	return len(c.nodes) - 1
}

// seedTerminal walks nodeIndex's guide-ranked real-child chain, registering
// every intermediate step as its own node (so each can later offer its
// sibling as an alternative) and pushing one candidate per node along the
// way that is itself a complete key. A node can be both a complete key and
// an ancestor of longer ones (e.g. "car" under "cart"), and since the
// ranked guide never chains the value transition itself (enumerateLinks),
// the only way to discover such a node's own completion is this direct
// dic.HasValue check at every step, not just at the walk's end.
func (c *RankedCompleter) seedTerminal(nodeIndex int) {
	for {
		index := c.nodes[nodeIndex].dicIndex
		if c.dic.HasValue(index) {
			heap.Push(&c.queue, rankedCompleterCandidate{nodeIndex: nodeIndex, value: c.dic.Value(index)})
		}
		label := c.guide.Child(index)
		if label == 0 {
			return
		}
		next := index
		if !c.dic.Follow(label, &next) {
			return
		}
		nodeIndex = c.createNode(next, nodeIndex, label)
	}
}

func (c *RankedCompleter) rebuildKey(nodeIndex int) {
	c.key = c.key[:c.prefixLen]
	for n := nodeIndex; c.nodes[n].prevNodeIndex != -1; n = c.nodes[n].prevNodeIndex {
		c.key = append(c.key, c.nodes[n].label)
	}
	for i, j := c.prefixLen, len(c.key)-1; i < j; i, j = i+1, j-1 {
		c.key[i], c.key[j] = c.key[j], c.key[i]
	}
}

// expandSiblings walks from nodeIndex back to the root, giving every node
// on the just-emitted path one chance to contribute its sibling as a fresh
// candidate. A completion diverging partway down this path is only ever
// discovered this way, once its prefix has actually been emitted.
func (c *RankedCompleter) expandSiblings(nodeIndex int) {
	for n := nodeIndex; n != -1; n = c.nodes[n].prevNodeIndex {
		node := &c.nodes[n]
		if node.siblingTried {
			continue
		}
		node.siblingTried = true

		siblingLabel := c.guide.Sibling(node.dicIndex)
		if siblingLabel == 0 {
			continue
		}
		parentDicIndex := node.dicIndex
		if node.prevNodeIndex != -1 {
			parentDicIndex = c.nodes[node.prevNodeIndex].dicIndex
		}
		siblingDicIndex := parentDicIndex
		if !c.dic.Follow(siblingLabel, &siblingDicIndex) {
			continue
		}
		siblingNodeIndex := c.createNode(siblingDicIndex, node.prevNodeIndex, siblingLabel)
		c.seedTerminal(siblingNodeIndex)
	}
}
