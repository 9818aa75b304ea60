package dawg

// linkTable is an open-addressed hash map from a dawg's merging-state
// index to the double-array offset it was last placed at, letting
// DictionaryBuilder reuse a merging state's child layout instead of
// re-arranging it at every path that reaches it. It mirrors dawgdic's
// LinkTable: sized once from an estimate of the number of merging states
// and never resized.
//
// Unlike the original, Find and Insert bound their linear probe to the
// table length: a full table returns (0, false) / ErrLinkTableFull rather
// than looping forever, since nothing here can grow the table mid-build.
type linkTable struct {
	index  []uint32
	offset []uint32
}

// newLinkTable allocates a table with room for tableSize entries.
func newLinkTable(tableSize int) *linkTable {
	if tableSize < 1 {
		tableSize = 1
	}
	return &linkTable{
		index:  make([]uint32, tableSize),
		offset: make([]uint32, tableSize),
	}
}

// find returns the offset recorded for index, or (0, false) if none.
func (t *linkTable) find(index uint32) (uint32, bool) {
	id, ok := t.findID(index)
	if !ok || t.index[id] == 0 {
		return 0, false
	}
	return t.offset[id], true
}

// insert records offset for index, overwriting any previous entry.
func (t *linkTable) insert(index, offset uint32) bool {
	id, ok := t.findID(index)
	if !ok {
		return false
	}
	t.index[id] = index
	t.offset[id] = offset
	return true
}

// findID returns the bucket index is stored at (or belongs in, if absent),
// probing linearly from its hash. ok is false only if the table is full
// and index was not already present.
func (t *linkTable) findID(index uint32) (uint32, bool) {
	n := uint32(len(t.index))
	id := wangHash(index) % n
	for i := uint32(0); i < n; i++ {
		if t.index[id] == 0 || t.index[id] == index {
			return id, true
		}
		id = (id + 1) % n
	}
	return 0, false
}
