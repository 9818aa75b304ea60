package dawg

import (
	"encoding/binary"
	"io"

	"github.com/pkg/errors"
)

// Dictionary unit bit layout, mirroring dawgdic::DictionaryUnit exactly:
//
//	bit 31            : IS_LEAF  (unit holds a value, not a label)
//	bit 9             : EXTENSION (offset was too wide for the 21-bit form)
//	bit 8             : HAS_LEAF (this unit's first child is a leaf)
//	bits 10..31 or 2..31 (narrow/wide): offset, shifted by 10 or 2
//	bits 0..7         : label (non-leaf) / low value bits (leaf)
const (
	offsetMax    uint32 = 1 << 21
	isLeafBit    uint32 = 1 << 31
	hasLeafBit   uint32 = 1 << 8
	extensionBit uint32 = 1 << 9
)

// dictionaryUnit is the packed representation of one double-array cell.
type dictionaryUnit uint32

func (u dictionaryUnit) hasLeaf() bool { return uint32(u)&hasLeafBit != 0 }
func (u dictionaryUnit) value() int32  { return int32(uint32(u) &^ isLeafBit) }
func (u dictionaryUnit) label() uint32 { return uint32(u) & (isLeafBit | 0xFF) }
func (u dictionaryUnit) offset() uint32 {
	base := uint32(u)
	return (base >> 10) << ((base & extensionBit) >> 6)
}

func (u *dictionaryUnit) setHasLeaf() { *u |= dictionaryUnit(hasLeafBit) }

func (u *dictionaryUnit) setValue(v int32) {
	*u = dictionaryUnit(uint32(v) | isLeafBit)
}

func (u *dictionaryUnit) setLabel(label byte) {
	*u = dictionaryUnit((uint32(*u) &^ 0xFF) | uint32(label))
}

// setOffset packs offset into the unit, choosing the narrow (21-bit, shift
// 10) or wide (29-bit, shift 2, extension bit set) encoding. It reports
// whether offset was representable at all.
func (u *dictionaryUnit) setOffset(offset uint32) bool {
	if offset >= offsetMax<<8 {
		return false
	}

	base := uint32(*u) & (isLeafBit | hasLeafBit | 0xFF)
	if offset < offsetMax {
		base |= offset << 10
	} else {
		base |= (offset << 2) | extensionBit
	}
	*u = dictionaryUnit(base)
	return true
}

// Dictionary is the immutable double-array compilation of a Dawg: Follow
// walks one byte of transition in O(1) via child = index ^ offset(index) ^
// label, with no pointer chasing. It is safe for concurrent read access
// from multiple goroutines.
type Dictionary struct {
	units []dictionaryUnit
}

// Root is the dictionary's start index; always 0.
func (d *Dictionary) Root() uint32 { return 0 }

// Size is the number of double-array cells.
func (d *Dictionary) Size() int { return len(d.units) }

// HasValue reports whether index corresponds to the end of some key.
func (d *Dictionary) HasValue(index uint32) bool { return d.units[index].hasLeaf() }

// Value returns the payload stored for index. Only meaningful when
// HasValue(index) is true.
func (d *Dictionary) Value(index uint32) int32 {
	off := d.units[index].offset()
	return d.units[index^off].value()
}

// Follow advances index across a single byte label, reporting whether that
// transition exists.
func (d *Dictionary) Follow(label byte, index *uint32) bool {
	off := d.units[*index].offset()
	next := *index ^ off ^ uint32(label)
	if d.units[next].label() != uint32(label) {
		return false
	}
	*index = next
	return true
}

// FollowBytes advances index across every byte of s in turn, stopping (and
// reporting false) at the first missing transition.
func (d *Dictionary) FollowBytes(s []byte, index *uint32) bool {
	for _, c := range s {
		if !d.Follow(c, index) {
			return false
		}
	}
	return true
}

// Contains reports whether key is present in the dictionary.
func (d *Dictionary) Contains(key string) bool {
	index := d.Root()
	if !d.FollowBytes([]byte(key), &index) {
		return false
	}
	return d.HasValue(index)
}

// Find looks up key, returning its value and true, or (0, false) if absent.
func (d *Dictionary) Find(key string) (int32, bool) {
	index := d.Root()
	if !d.FollowBytes([]byte(key), &index) || !d.HasValue(index) {
		return 0, false
	}
	return d.Value(index), true
}

// Write serializes the dictionary in the shared container format: a
// host-endian uint32 unit count followed by that many 4-byte units.
func (d *Dictionary) Write(w io.Writer) error {
	if err := binary.Write(w, binary.NativeEndian, uint32(len(d.units))); err != nil {
		return errors.Wrap(err, "dawg: writing dictionary unit count")
	}
	if err := binary.Write(w, binary.NativeEndian, d.units); err != nil {
		return errors.Wrap(err, "dawg: writing dictionary units")
	}
	return nil
}

// Read loads a dictionary previously written by Write.
func (d *Dictionary) Read(r io.Reader) error {
	var count uint32
	if err := binary.Read(r, binary.NativeEndian, &count); err != nil {
		return wrapReadErr(err, "dawg: reading dictionary unit count")
	}
	units := make([]dictionaryUnit, count)
	if err := binary.Read(r, binary.NativeEndian, units); err != nil {
		return wrapReadErr(err, "dawg: reading dictionary units")
	}
	d.units = units
	return nil
}

// wrapReadErr normalizes a short read against the container format into
// ErrTruncated, and wraps any other I/O failure with context.
func wrapReadErr(err error, context string) error {
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		return ErrTruncated
	}
	return errors.Wrap(err, context)
}
