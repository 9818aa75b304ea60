package dawg

import (
	"encoding/binary"
	"io"
)

// RankedGuide is a Guide whose child/sibling order is sorted by value
// (descending, by default) rather than by label, so a RankedCompleter can
// produce completions best-first. Binary layout is identical to Guide's.
type RankedGuide struct {
	units []byte
}

// Root is the guide's root index; always 0.
func (g *RankedGuide) Root() uint32 { return 0 }

// Size is the number of guide units.
func (g *RankedGuide) Size() int { return len(g.units) / 2 }

// Child returns the label of index's highest-ranked child, or 0.
func (g *RankedGuide) Child(index uint32) byte { return g.units[index*2] }

// Sibling returns the label of index's next-ranked sibling, or 0.
func (g *RankedGuide) Sibling(index uint32) byte { return g.units[index*2+1] }

// Write serializes the guide in the shared container format.
func (g *RankedGuide) Write(w io.Writer) error {
	if err := binary.Write(w, binary.NativeEndian, uint32(g.Size())); err != nil {
		return err
	}
	_, err := w.Write(g.units)
	return err
}

// Read loads a guide previously written by Write.
func (g *RankedGuide) Read(r io.Reader) error {
	var count uint32
	if err := binary.Read(r, binary.NativeEndian, &count); err != nil {
		return wrapReadErr(err, "dawg: reading ranked guide unit count")
	}
	units := make([]byte, count*2)
	if _, err := io.ReadFull(r, units); err != nil {
		return wrapReadErr(err, "dawg: reading ranked guide units")
	}
	g.units = units
	return nil
}
