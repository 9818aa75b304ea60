package dawg

// dawgUnit is a not-yet-fixed trie node: child/sibling pointers into the
// same pool, a label, and the is-state/has-sibling flags DawgBuilder needs
// while a key's suffix is still mutable. Once FixUnits folds a run of
// siblings into the dawg's base/label pools it is discarded.
type dawgUnit struct {
	child      uint32
	sibling    uint32
	label      byte
	isState    bool
	hasSibling bool
}

func (u *dawgUnit) clear() { *u = dawgUnit{} }

func (u *dawgUnit) setValue(v int32) { u.child = uint32(v) }
func (u *dawgUnit) value() int32     { return int32(u.child) }

// base computes the packed value FixUnits copies into a baseUnit: the
// terminal unit (label 0) has no is-state bit, since BaseUnit packs
// child/value one bit to the left in that case.
func (u *dawgUnit) base() uint32 {
	if u.label == 0 {
		v := u.child << 1
		if u.hasSibling {
			v |= 1
		}
		return v
	}
	v := u.child << 2
	if u.isState {
		v |= 2
	}
	if u.hasSibling {
		v |= 1
	}
	return v
}

const defaultInitialHashTableSize = 1 << 8

// DawgBuilder incrementally builds a minimal acyclic DFA from keys inserted
// in strictly ascending order, using the Daciuk/Mihov/Watson on-the-fly
// minimization algorithm: each key's unique suffix is built as a chain of
// mutable units, and as soon as a sibling run can no longer change (because
// a key diverged earlier, or because the builder is finishing) it is
// looked up in a fingerprint hash table and folded into an existing
// equivalent transition chain if one exists.
type DawgBuilder struct {
	initialHashTableSize int

	basePool  objectPool[baseUnit]
	labelPool objectPool[byte]
	flagPool  bitPool
	unitPool  objectPool[dawgUnit]

	hashTable    []uint32
	unfixedUnits []uint32
	unusedUnits  []uint32

	numOfStates            int
	numOfMergedTransitions int
	numOfMergingStates     int

	hasLastKey bool
	lastKey    string
}

// NewDawgBuilder constructs a builder with the default initial hash table
// size (256 buckets, matching dawgdic's DEFAULT_INITIAL_HASH_TABLE_SIZE).
func NewDawgBuilder() *DawgBuilder {
	return NewDawgBuilderSize(defaultInitialHashTableSize)
}

// NewDawgBuilderSize constructs a builder with a caller-chosen initial hash
// table size; useful when the approximate number of states is known ahead
// of time and the default would force several doublings.
func NewDawgBuilderSize(initialHashTableSize int) *DawgBuilder {
	return &DawgBuilder{initialHashTableSize: initialHashTableSize, numOfStates: 1}
}

// Clear resets the builder to its initial, empty state.
func (b *DawgBuilder) Clear() {
	b.basePool.clear()
	b.labelPool.clear()
	b.flagPool.clear()
	b.unitPool.clear()
	b.hashTable = nil
	b.unfixedUnits = b.unfixedUnits[:0]
	b.unusedUnits = b.unusedUnits[:0]
	b.numOfStates = 1
	b.numOfMergedTransitions = 0
	b.numOfMergingStates = 0
	b.hasLastKey = false
	b.lastKey = ""
}

// Insert adds key with the given value. Keys must be inserted in strictly
// ascending byte order; value must be non-negative and key must not
// contain a NUL byte (reserved as the internal terminator label).
func (b *DawgBuilder) Insert(key string, value int32) error {
	if len(key) == 0 {
		return ErrEmptyKey
	}
	if value < 0 {
		return ErrNegativeValue
	}
	for i := 0; i < len(key); i++ {
		if key[i] == 0 {
			return ErrContainsNUL
		}
	}
	// The trie-divergence check in insertKey only ever compares a key
	// against a strictly shorter already-fixed prefix chain, so it can't
	// by itself catch a key equal to the previous one (every byte,
	// including the terminator, matches and the loop just falls through
	// to overwriting the existing value). Keys must be strictly
	// ascending, so reject that case explicitly.
	if b.hasLastKey && key <= b.lastKey {
		return ErrOutOfOrder
	}
	if err := b.insertKey(key, value); err != nil {
		return err
	}
	b.hasLastKey = true
	b.lastKey = key
	return nil
}

func (b *DawgBuilder) insertKey(key string, value int32) error {
	if len(b.hashTable) == 0 {
		b.init()
	}

	var index uint32
	length := len(key)
	keyPos := 0

	// Finds the unit where this key's suffix diverges from the trie
	// built so far, checking along the way that keys arrive sorted.
	for ; keyPos <= length; keyPos++ {
		childIndex := b.unitPool.at(int(index)).child
		if childIndex == 0 {
			break
		}

		var keyLabel byte
		if keyPos < length {
			keyLabel = key[keyPos]
		}
		unitLabel := b.unitPool.at(int(childIndex)).label

		if keyLabel < unitLabel {
			return ErrOutOfOrder
		} else if keyLabel > unitLabel {
			b.unitPool.at(int(childIndex)).hasSibling = true
			b.fixUnits(childIndex)
			break
		}
		index = childIndex
	}

	// Adds new units for the rest of the key.
	for ; keyPos <= length; keyPos++ {
		var keyLabel byte
		if keyPos < length {
			keyLabel = key[keyPos]
		}
		childIndex := b.allocateUnit()

		if b.unitPool.at(int(index)).child == 0 {
			b.unitPool.at(int(childIndex)).isState = true
		}
		b.unitPool.at(int(childIndex)).sibling = b.unitPool.at(int(index)).child
		b.unitPool.at(int(childIndex)).label = keyLabel
		b.unitPool.at(int(index)).child = childIndex
		b.unfixedUnits = append(b.unfixedUnits, childIndex)

		index = childIndex
	}
	b.unitPool.at(int(index)).setValue(value)
	return nil
}

// Finish finalizes construction and returns the resulting Dawg. The
// builder is reset to empty afterwards and may be reused.
func (b *DawgBuilder) Finish() *Dawg {
	if len(b.hashTable) == 0 {
		b.init()
	}

	b.fixUnits(0)
	root := b.unitPool.at(0)
	b.basePool.at(0).setBase(root.base())
	*b.labelPool.at(0) = root.label

	numOfTransitions := b.basePool.size_() - 1
	dawg := &Dawg{
		numOfStates:            b.numOfStates,
		numOfMergedTransitions: b.numOfMergedTransitions,
		numOfMergedStates:      numOfTransitions + b.numOfMergedTransitions + 1 - b.numOfStates,
		numOfMergingStates:     b.numOfMergingStates,
	}
	dawg.basePool.swap(&b.basePool)
	dawg.labelPool.swap(&b.labelPool)
	dawg.flagPool.swap(&b.flagPool)

	b.Clear()
	return dawg
}

func (b *DawgBuilder) init() {
	b.hashTable = make([]uint32, b.initialHashTableSize)
	b.allocateUnit()
	b.allocateTransition()
	b.unitPool.at(0).label = 0xFF
	b.unfixedUnits = append(b.unfixedUnits, 0)
}

// fixUnits folds every not-yet-fixed unit above index into the base/label
// pools, merging sibling runs that already exist elsewhere in the
// automaton and recording the states they merge into.
func (b *DawgBuilder) fixUnits(index uint32) {
	for b.unfixedUnits[len(b.unfixedUnits)-1] != index {
		unfixedIndex := b.unfixedUnits[len(b.unfixedUnits)-1]
		b.unfixedUnits = b.unfixedUnits[:len(b.unfixedUnits)-1]

		if b.numOfStates >= len(b.hashTable)-(len(b.hashTable)>>2) {
			b.expandHashTable()
		}

		numOfSiblings := 0
		for i := unfixedIndex; i != 0; i = b.unitPool.at(int(i)).sibling {
			numOfSiblings++
		}

		var hashID uint32
		matchedIndex := b.findUnit(unfixedIndex, &hashID)
		if matchedIndex != 0 {
			b.numOfMergedTransitions += numOfSiblings

			if !b.flagPool.get(int(matchedIndex)) {
				b.numOfMergingStates++
				b.flagPool.set(int(matchedIndex), true)
			}
		} else {
			var transitionIndex uint32
			for i := 0; i < numOfSiblings; i++ {
				transitionIndex = b.allocateTransition()
			}
			for i := unfixedIndex; i != 0; i = b.unitPool.at(int(i)).sibling {
				u := b.unitPool.at(int(i))
				b.basePool.at(int(transitionIndex)).setBase(u.base())
				*b.labelPool.at(int(transitionIndex)) = u.label
				transitionIndex--
			}
			matchedIndex = transitionIndex + 1
			b.hashTable[hashID] = matchedIndex
			b.numOfStates++
		}

		for current := unfixedIndex; current != 0; {
			next := b.unitPool.at(int(current)).sibling
			b.freeUnit(current)
			current = next
		}

		b.unitPool.at(int(b.unfixedUnits[len(b.unfixedUnits)-1])).child = matchedIndex
	}
	b.unfixedUnits = b.unfixedUnits[:len(b.unfixedUnits)-1]
}

func (b *DawgBuilder) expandHashTable() {
	newSize := len(b.hashTable) << 1
	b.hashTable = make([]uint32, newSize)

	for i := 1; i < b.basePool.size_(); i++ {
		index := uint32(i)
		if *b.labelPool.at(i) == 0 || b.basePool.at(i).isState() {
			var hashID uint32
			b.findTransition(index, &hashID)
			b.hashTable[hashID] = index
		}
	}
}

// findTransition locates the hash bucket a rehashed transition belongs in.
// It never needs to return the transition itself: ExpandHashTable already
// knows the index it is reinserting, and there is, by construction, never
// a second transition with the same base value to detect a collision
// against.
func (b *DawgBuilder) findTransition(index uint32, hashID *uint32) {
	*hashID = b.hashTransition(index) % uint32(len(b.hashTable))
	for {
		if b.hashTable[*hashID] == 0 {
			break
		}
		*hashID = (*hashID + 1) % uint32(len(b.hashTable))
	}
}

func (b *DawgBuilder) findUnit(unitIndex uint32, hashID *uint32) uint32 {
	*hashID = b.hashUnit(unitIndex) % uint32(len(b.hashTable))
	for {
		transitionID := b.hashTable[*hashID]
		if transitionID == 0 {
			break
		}
		if b.areEqual(unitIndex, transitionID) {
			return transitionID
		}
		*hashID = (*hashID + 1) % uint32(len(b.hashTable))
	}
	return 0
}

func (b *DawgBuilder) areEqual(unitIndex, transitionIndex uint32) bool {
	ti := transitionIndex
	for i := b.unitPool.at(int(unitIndex)).sibling; i != 0; i = b.unitPool.at(int(i)).sibling {
		if !b.basePool.at(int(ti)).hasSibling() {
			return false
		}
		ti++
	}
	if b.basePool.at(int(ti)).hasSibling() {
		return false
	}

	for i := unitIndex; i != 0; i, ti = b.unitPool.at(int(i)).sibling, ti-1 {
		u := b.unitPool.at(int(i))
		if u.base() != b.basePool.at(int(ti)).base || u.label != *b.labelPool.at(int(ti)) {
			return false
		}
	}
	return true
}

func (b *DawgBuilder) hashTransition(index uint32) uint32 {
	var hashValue uint32
	for index != 0 {
		base := b.basePool.at(int(index)).base
		label := *b.labelPool.at(int(index))
		hashValue ^= wangHash((uint32(label) << 24) ^ base)

		if !b.basePool.at(int(index)).hasSibling() {
			break
		}
		index++
	}
	return hashValue
}

func (b *DawgBuilder) hashUnit(index uint32) uint32 {
	var hashValue uint32
	for index != 0 {
		u := b.unitPool.at(int(index))
		hashValue ^= wangHash((uint32(u.label) << 24) ^ u.base())
		index = u.sibling
	}
	return hashValue
}

func (b *DawgBuilder) allocateTransition() uint32 {
	b.flagPool.allocate()
	b.basePool.allocate()
	return uint32(b.labelPool.allocate())
}

func (b *DawgBuilder) allocateUnit() uint32 {
	var index uint32
	if len(b.unusedUnits) == 0 {
		index = uint32(b.unitPool.allocate())
	} else {
		index = b.unusedUnits[len(b.unusedUnits)-1]
		b.unusedUnits = b.unusedUnits[:len(b.unusedUnits)-1]
	}
	b.unitPool.at(int(index)).clear()
	return index
}

func (b *DawgBuilder) freeUnit(index uint32) {
	b.unusedUnits = append(b.unusedUnits, index)
}
