package dawg

// defaultBlockSize is the number of elements per block, matching
// dawgdic::ObjectPool's default template parameter.
const defaultBlockSize = 1 << 10

// objectPool is a block-allocated growable array. Appended elements keep a
// stable index for their lifetime (blocks are never moved once allocated),
// which is what lets DawgBuilder and DictionaryBuilder hand out indices
// into a pool that is still growing. The zero value is an empty, ready to
// use pool, sized in defaultBlockSize blocks.
type objectPool[T any] struct {
	blocks [][]T
	size   int
}

// at returns a pointer to the element at index, valid until the pool is
// cleared or swapped.
func (p *objectPool[T]) at(index int) *T {
	return &p.blocks[index/defaultBlockSize][index%defaultBlockSize]
}

func (p *objectPool[T]) size_() int { return p.size }

// clear drops all blocks.
func (p *objectPool[T]) clear() {
	p.blocks = nil
	p.size = 0
}

// swap exchanges the contents of two pools.
func (p *objectPool[T]) swap(other *objectPool[T]) {
	p.blocks, other.blocks = other.blocks, p.blocks
	p.size, other.size = other.size, p.size
}

// allocate grows the pool by one element and returns its index.
func (p *objectPool[T]) allocate() int {
	if p.size == defaultBlockSize*len(p.blocks) {
		p.blocks = append(p.blocks, make([]T, defaultBlockSize))
	}
	index := p.size
	p.size++
	return index
}

// bitPool is an array of bit flags with the same block-structured growth as
// objectPool, built directly on objectPool[byte] the way bit-pool.h builds
// BitPool<> on ObjectPool<UCharType>. The zero value is ready to use.
type bitPool struct {
	pool objectPool[byte]
	size int
}

func (b *bitPool) set(index int, bit bool) {
	pi, flag := index/8, byte(1)<<(uint(index)%8)
	if bit {
		*b.pool.at(pi) |= flag
	} else {
		*b.pool.at(pi) &^= flag
	}
}

func (b *bitPool) get(index int) bool {
	pi, flag := index/8, byte(1)<<(uint(index)%8)
	return *b.pool.at(pi)&flag != 0
}

func (b *bitPool) clear() {
	b.pool.clear()
	b.size = 0
}

func (b *bitPool) swap(other *bitPool) {
	b.pool.swap(&other.pool)
	b.size, other.size = other.size, b.size
}

// allocate reserves the next bit, initialized to false.
func (b *bitPool) allocate() int {
	poolIndex := b.size / 8
	if poolIndex == b.pool.size {
		b.pool.allocate()
	}
	index := b.size
	b.size++
	return index
}
