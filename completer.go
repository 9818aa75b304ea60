package dawg

// Completer enumerates, in lexicographic order, every key reachable from a
// given dictionary index — the traversal primitive behind prefix
// completion. It is a cursor: Start positions it, then repeated calls to
// Next advance it one key at a time until it returns false. A Completer is
// not safe for concurrent use; give each goroutine its own.
type Completer struct {
	dic   *Dictionary
	guide *Guide

	key        []byte
	indexStack []uint32
	lastIndex  uint32
}

// NewCompleter returns a Completer over dic/guide. guide must have been
// built from dic (via BuildGuide or BuildRankedGuide's sibling, see
// RankedCompleter for the latter).
func NewCompleter(dic *Dictionary, guide *Guide) *Completer {
	return &Completer{dic: dic, guide: guide}
}

// Key returns the current completion's full key bytes. Valid only after
// Next has returned true.
func (c *Completer) Key() []byte { return c.key }

// Value returns the current completion's payload. Valid only after Next
// has returned true.
func (c *Completer) Value() int32 { return c.dic.Value(c.lastIndex) }

// Start positions the cursor at index, with prefix as the already-known
// leading bytes of every key that will be produced (index must be the
// dictionary node reached by following prefix from the root).
func (c *Completer) Start(index uint32, prefix []byte) {
	c.key = append(c.key[:0], prefix...)
	c.lastIndex = 0
	c.indexStack = c.indexStack[:0]
	if c.guide.Size() != 0 {
		c.indexStack = append(c.indexStack, index)
	}
}

// Next advances to the next completion in lexicographic order, returning
// false once every key under the starting index has been produced.
func (c *Completer) Next() bool {
	if len(c.indexStack) == 0 {
		return false
	}
	index := c.indexStack[len(c.indexStack)-1]

	if c.lastIndex != c.dic.Root() {
		childLabel := c.guide.Child(index)
		if childLabel != 0 {
			if !c.follow(childLabel, &index) {
				return false
			}
		} else {
			for {
				siblingLabel := c.guide.Sibling(index)

				if len(c.key) > 0 {
					c.key = c.key[:len(c.key)-1]
				}
				c.indexStack = c.indexStack[:len(c.indexStack)-1]
				if len(c.indexStack) == 0 {
					return false
				}

				index = c.indexStack[len(c.indexStack)-1]
				if siblingLabel != 0 {
					if !c.follow(siblingLabel, &index) {
						return false
					}
					break
				}
			}
		}
	}

	return c.findTerminal(index)
}

func (c *Completer) follow(label byte, index *uint32) bool {
	if !c.dic.Follow(label, index) {
		return false
	}
	c.key = append(c.key, label)
	c.indexStack = append(c.indexStack, *index)
	return true
}

func (c *Completer) findTerminal(index uint32) bool {
	for !c.dic.HasValue(index) {
		label := c.guide.Child(index)
		if label == 0 {
			return false
		}
		if !c.dic.Follow(label, &index) {
			return false
		}
		c.key = append(c.key, label)
		c.indexStack = append(c.indexStack, index)
	}
	c.lastIndex = index
	return true
}
