package dawg

// guideBuilder restores lexicographic child/sibling order over a compiled
// Dictionary by walking the Dawg in parallel with it: the double array
// alone can't answer "what's this node's first child" once minimization
// has merged states, so the guide is derived once, here, from the dawg
// that still remembers full tree shape.
type guideBuilder struct {
	dawg *Dawg
	dic  *Dictionary

	units   []byte
	isFixed []byte // bitmap over dic cells, 8 per byte
}

// BuildGuide derives a Guide for dic from the dawg it was compiled from.
func BuildGuide(dawg *Dawg, dic *Dictionary) (*Guide, error) {
	b := &guideBuilder{
		dawg:    dawg,
		dic:     dic,
		units:   make([]byte, dic.Size()*2),
		isFixed: make([]byte, (dic.Size()+7)/8),
	}

	if dawg.Size() > 1 {
		if err := b.build(dawg.Root(), dic.Root()); err != nil {
			return nil, err
		}
	}

	return &Guide{units: b.units}, nil
}

func (b *guideBuilder) setChild(index uint32, label byte)   { b.units[index*2] = label }
func (b *guideBuilder) setSibling(index uint32, label byte) { b.units[index*2+1] = label }

func (b *guideBuilder) setIsFixed(index uint32) { b.isFixed[index/8] |= 1 << (index % 8) }
func (b *guideBuilder) fixed(index uint32) bool { return b.isFixed[index/8]&(1<<(index%8)) != 0 }

func (b *guideBuilder) build(dawgIndex, dicIndex uint32) error {
	if b.fixed(dicIndex) {
		return nil
	}
	b.setIsFixed(dicIndex)

	// Skips a leading terminal transition: it has no label of its own to
	// record as "the first child".
	dawgChildIndex := b.dawg.Child(dawgIndex)
	if b.dawg.Label(dawgChildIndex) == 0 {
		dawgChildIndex = b.dawg.Sibling(dawgChildIndex)
		if dawgChildIndex == 0 {
			return nil
		}
	}
	b.setChild(dicIndex, b.dawg.Label(dawgChildIndex))

	for {
		childLabel := b.dawg.Label(dawgChildIndex)
		dicChildIndex := dicIndex
		if !b.dic.Follow(childLabel, &dicChildIndex) {
			return ErrMismatchedDictionary
		}

		if err := b.build(dawgChildIndex, dicChildIndex); err != nil {
			return err
		}

		dawgSiblingIndex := b.dawg.Sibling(dawgChildIndex)
		if dawgSiblingIndex != 0 {
			b.setSibling(dicChildIndex, b.dawg.Label(dawgSiblingIndex))
		}

		dawgChildIndex = dawgSiblingIndex
		if dawgChildIndex == 0 {
			break
		}
	}
	return nil
}
