package dawg

// baseUnit is a transition fixed by DawgBuilder into the dawg's base pool:
// a packed (child-or-value, is_state, has_sibling) triple, mirroring
// dawgdic::BaseUnit exactly.
type baseUnit struct {
	base uint32
}

func (u baseUnit) child() uint32      { return u.base >> 2 }
func (u baseUnit) hasSibling() bool   { return u.base&1 != 0 }
func (u baseUnit) value() int32       { return int32(u.base >> 1) }
func (u baseUnit) isState() bool      { return u.base&2 != 0 }
func (u *baseUnit) setBase(v uint32)  { u.base = v }

// Dawg is the compact, read-only list-form automaton produced by
// DawgBuilder.Finish. It stores one fixed transition per unit, split into a
// base pool (child index / value, packed with a has-sibling flag and, for
// states, an is-state flag), a parallel label pool, and a bit pool flagging
// which states are shared by more than one path (merging states).
//
// A Dawg is not searched directly by callers; DictionaryBuilder compiles it
// into a Dictionary, which is what supports Follow/Find.
type Dawg struct {
	basePool  objectPool[baseUnit]
	labelPool objectPool[byte]
	flagPool  bitPool

	numOfStates            int
	numOfMergedTransitions int
	numOfMergedStates      int
	numOfMergingStates     int
}

// Root is the index of the automaton's start state; always 0.
func (d *Dawg) Root() uint32 { return 0 }

// Size is the number of units, including the root unit at index 0, which
// holds the root's child index rather than a transition.
func (d *Dawg) Size() int { return d.basePool.size_() }

// NumOfTransitions is the number of real transitions (Size - 1).
func (d *Dawg) NumOfTransitions() int { return d.basePool.size_() - 1 }

// NumOfStates is the number of distinct states after minimization.
func (d *Dawg) NumOfStates() int { return d.numOfStates }

// NumOfMergedTransitions counts transitions that were collapsed into an
// already-existing equivalent transition during minimization.
func (d *Dawg) NumOfMergedTransitions() int { return d.numOfMergedTransitions }

// NumOfMergedStates counts states removed by minimization, computed as
// num_of_transitions() + num_of_merged_transitions() + 1 - num_of_states().
func (d *Dawg) NumOfMergedStates() int { return d.numOfMergedStates }

// NumOfMergingStates counts states that multiple paths converge on (the
// states DictionaryBuilder's link table exists to let it place only once).
func (d *Dawg) NumOfMergingStates() int { return d.numOfMergingStates }

// Child returns the first child transition's index. It is meaningful only
// when index is not a leaf; a leaf's unit holds a value instead.
func (d *Dawg) Child(index uint32) uint32 { return d.basePool.at(int(index)).child() }

// Sibling returns the next sibling transition's index, or 0 if there is none.
func (d *Dawg) Sibling(index uint32) uint32 {
	if d.basePool.at(int(index)).hasSibling() {
		return index + 1
	}
	return 0
}

// Value returns the payload stored at a leaf transition.
func (d *Dawg) Value(index uint32) int32 { return d.basePool.at(int(index)).value() }

// IsLeaf reports whether index has no label, i.e. represents a value rather
// than a labeled transition.
func (d *Dawg) IsLeaf(index uint32) bool { return d.Label(index) == 0 }

// Label returns the byte labeling the transition at index.
func (d *Dawg) Label(index uint32) byte { return *d.labelPool.at(int(index)) }

// IsMerging reports whether index is a state reached by more than one
// minimized path, making it a candidate for link-table based offset reuse.
func (d *Dawg) IsMerging(index uint32) bool { return d.flagPool.get(int(index)) }
