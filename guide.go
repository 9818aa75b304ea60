package dawg

import (
	"encoding/binary"
	"io"
)

// Guide stores, per dictionary cell, the label of its first non-terminal
// child and the label of its next sibling — exactly enough to let
// Completer descend lexicographically without re-deriving child order
// from the double array (which has none once minimization has merged
// nodes). Units are two bytes each: child label, then sibling label.
type Guide struct {
	units []byte
}

// Root is the guide's root index; always 0.
func (g *Guide) Root() uint32 { return 0 }

// Size is the number of guide units.
func (g *Guide) Size() int { return len(g.units) / 2 }

// Child returns the label of index's first non-terminal child, or 0.
func (g *Guide) Child(index uint32) byte { return g.units[index*2] }

// Sibling returns the label of index's next sibling, or 0.
func (g *Guide) Sibling(index uint32) byte { return g.units[index*2+1] }

// Write serializes the guide in the shared container format.
func (g *Guide) Write(w io.Writer) error {
	if err := binary.Write(w, binary.NativeEndian, uint32(g.Size())); err != nil {
		return err
	}
	_, err := w.Write(g.units)
	return err
}

// Read loads a guide previously written by Write.
func (g *Guide) Read(r io.Reader) error {
	var count uint32
	if err := binary.Read(r, binary.NativeEndian, &count); err != nil {
		return wrapReadErr(err, "dawg: reading guide unit count")
	}
	units := make([]byte, count*2)
	if _, err := io.ReadFull(r, units); err != nil {
		return wrapReadErr(err, "dawg: reading guide units")
	}
	g.units = units
	return nil
}
