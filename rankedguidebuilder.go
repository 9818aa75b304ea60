package dawg

import "sort"

// ValueComparer reports whether a should be considered to rank below b,
// the same role std::less plays in dawgdic's RankedGuideBuilder template
// parameter. The zero value (nil, handled by BuildRankedGuide) is
// ascending order, which — because RankedGuide sorts descending by rank —
// yields completions from highest value to lowest, matching the library
// default.
type ValueComparer func(a, b int32) bool

func ascendingValueComparer(a, b int32) bool { return a < b }

type rankedGuideLink struct {
	label byte
	value int32
}

type rankedGuideBuilder struct {
	dawg *Dawg
	dic  *Dictionary

	units   []byte
	links   []rankedGuideLink
	isFixed []byte

	// values holds each already-fixed dictionary index's max reachable
	// value, looked up directly instead of re-walking units_ on revisit.
	// A node can be both a complete key and the parent of longer keys (the
	// "car"/"cart" case), and its own value then has no unambiguous place
	// in the child/sibling byte chain (see enumerateLinks), so the chain
	// alone cannot be re-walked to recover it.
	values []int32
}

// BuildRankedGuide derives a RankedGuide for dic from the dawg it was
// compiled from, ordering each node's children by cmp (nil selects
// ascending ValueType order, i.e. highest value first).
func BuildRankedGuide(dawg *Dawg, dic *Dictionary, cmp ValueComparer) (*RankedGuide, error) {
	if cmp == nil {
		cmp = ascendingValueComparer
	}

	b := &rankedGuideBuilder{
		dawg:    dawg,
		dic:     dic,
		units:   make([]byte, dic.Size()*2),
		isFixed: make([]byte, (dic.Size()+7)/8),
		values:  make([]int32, dic.Size()),
	}

	if dawg.Size() > 1 {
		if _, err := b.build(dawg.Root(), dic.Root(), cmp); err != nil {
			return nil, err
		}
	}

	return &RankedGuide{units: b.units}, nil
}

func (b *rankedGuideBuilder) setChild(index uint32, label byte)   { b.units[index*2] = label }
func (b *rankedGuideBuilder) setSibling(index uint32, label byte) { b.units[index*2+1] = label }

func (b *rankedGuideBuilder) setIsFixed(index uint32) { b.isFixed[index/8] |= 1 << (index % 8) }
func (b *rankedGuideBuilder) fixed(index uint32) bool { return b.isFixed[index/8]&(1<<(index%8)) != 0 }

// build returns the maximum value reachable under dawgIndex/dicIndex,
// after sorting that node's real-labeled children by cmp and writing them
// into units_. The node's own value, if dicIndex is itself a complete key,
// only feeds into that max and into the parent's ranking — it is never
// chained as a byte-0 child or sibling (see enumerateLinks), so callers
// needing it must read it from RankedCompleter's direct dic.HasValue check
// rather than from the guide bytes.
func (b *rankedGuideBuilder) build(dawgIndex, dicIndex uint32, cmp ValueComparer) (int32, error) {
	if b.fixed(dicIndex) {
		return b.values[dicIndex], nil
	}
	b.setIsFixed(dicIndex)

	initialNumLinks := len(b.links)
	hasTerminal, terminalValue, err := b.enumerateLinks(dawgIndex, dicIndex, cmp)
	if err != nil {
		return 0, err
	}

	links := b.links[initialNumLinks:]
	sort.SliceStable(links, func(i, j int) bool {
		if links[i].value != links[j].value {
			return cmp(links[j].value, links[i].value)
		}
		return links[i].label < links[j].label
	})

	var maxValue int32
	switch {
	case len(links) == 0:
		// A leaf key: no real-labeled children to chain at all.
		maxValue = terminalValue
	case !hasTerminal:
		maxValue = links[0].value
		b.turnLinksToUnits(dicIndex, initialNumLinks)
	default:
		if cmp(terminalValue, links[0].value) {
			maxValue = links[0].value
		} else {
			maxValue = terminalValue
		}
		b.turnLinksToUnits(dicIndex, initialNumLinks)
	}

	b.links = b.links[:initialNumLinks]
	b.values[dicIndex] = maxValue
	return maxValue, nil
}

// enumerateLinks appends dawgIndex's real-labeled (non-terminal) children to
// b.links for sorting, and separately reports whether dicIndex is itself a
// complete key. The terminal transition (dawg label 0) is never appended as
// a link: RankedGuide's 2-byte-per-index child/sibling encoding has no way
// to distinguish "next real label is 0" from "no more real children", so
// unlike a real label it can never occupy a chain slot.
func (b *rankedGuideBuilder) enumerateLinks(dawgIndex, dicIndex uint32, cmp ValueComparer) (hasTerminal bool, terminalValue int32, err error) {
	for dawgChildIndex := b.dawg.Child(dawgIndex); dawgChildIndex != 0; dawgChildIndex = b.dawg.Sibling(dawgChildIndex) {
		childLabel := b.dawg.Label(dawgChildIndex)

		if childLabel == 0 {
			if !b.dic.HasValue(dicIndex) {
				return false, 0, ErrMismatchedDictionary
			}
			hasTerminal = true
			terminalValue = b.dic.Value(dicIndex)
			continue
		}

		dicChildIndex := dicIndex
		if !b.dic.Follow(childLabel, &dicChildIndex) {
			return false, 0, ErrMismatchedDictionary
		}
		value, buildErr := b.build(dawgChildIndex, dicChildIndex, cmp)
		if buildErr != nil {
			return false, 0, buildErr
		}
		b.links = append(b.links, rankedGuideLink{label: childLabel, value: value})
	}
	return hasTerminal, terminalValue, nil
}

func (b *rankedGuideBuilder) turnLinksToUnits(dicIndex uint32, linksBegin int) {
	firstLabel := b.links[linksBegin].label
	b.setChild(dicIndex, firstLabel)
	dicChildIndex := b.followWithoutCheck(dicIndex, firstLabel)

	for i := linksBegin + 1; i < len(b.links); i++ {
		siblingLabel := b.links[i].label
		dicSiblingIndex := b.followWithoutCheck(dicIndex, siblingLabel)
		b.setSibling(dicChildIndex, siblingLabel)
		dicChildIndex = dicSiblingIndex
	}
}

func (b *rankedGuideBuilder) followWithoutCheck(index uint32, label byte) uint32 {
	return index ^ b.dic.units[index].offset() ^ uint32(label)
}
