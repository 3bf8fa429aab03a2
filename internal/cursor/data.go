package cursor

import (
	"verdant/green"
)

// nodeData is the shared backing of red node handles. Immutable trees
// materialize fresh nodeData on every navigation step. Mutable trees
// memoize children, so every handle for one tree position aliases one
// spine object and edits through any handle are seen by all of them.
type nodeData struct {
	green   *green.Node
	parent  *nodeData
	slot    uint32
	offset  uint32 // absolute start; authoritative only while immutable
	mutable bool

	// materialized children, mutable mode only
	kidNodes map[uint32]*nodeData
	kidToks  map[uint32]*tokenData
}

type tokenData struct {
	green   *green.Token
	parent  *nodeData
	slot    uint32
	offset  uint32
	mutable bool
}

func (d *nodeData) startOffset() uint32 {
	if !d.mutable {
		return d.offset
	}
	if d.parent == nil {
		return 0
	}
	return d.parent.startOffset() + d.parent.green.Slot(int(d.slot)).Rel()
}

func (t *tokenData) startOffset() uint32 {
	if !t.mutable {
		return t.offset
	}
	if t.parent == nil {
		return 0
	}
	return t.parent.startOffset() + t.parent.green.Slot(int(t.slot)).Rel()
}

// nodeAt materializes the red view of the node child in the given slot.
func (d *nodeData) nodeAt(slot uint32, g *green.Node) *nodeData {
	if d.mutable {
		if k, ok := d.kidNodes[slot]; ok {
			return k
		}
		k := &nodeData{green: g, parent: d, slot: slot, mutable: true}
		if d.kidNodes == nil {
			d.kidNodes = make(map[uint32]*nodeData)
		}
		d.kidNodes[slot] = k
		return k
	}
	return &nodeData{
		green:  g,
		parent: d,
		slot:   slot,
		offset: d.offset + d.green.Slot(int(slot)).Rel(),
	}
}

// tokenAt materializes the red view of the token child in the given slot.
func (d *nodeData) tokenAt(slot uint32, g *green.Token) *tokenData {
	if d.mutable {
		if k, ok := d.kidToks[slot]; ok {
			return k
		}
		k := &tokenData{green: g, parent: d, slot: slot, mutable: true}
		if d.kidToks == nil {
			d.kidToks = make(map[uint32]*tokenData)
		}
		d.kidToks[slot] = k
		return k
	}
	return &tokenData{
		green:  g,
		parent: d,
		slot:   slot,
		offset: d.offset + d.green.Slot(int(slot)).Rel(),
	}
}

// elementAt returns the element in the given slot, or nil for an empty slot.
func (d *nodeData) elementAt(slot int) *Element {
	s := d.green.Slot(slot)
	if n := s.Node(); n != nil {
		sn := SyntaxNode{d: d.nodeAt(uint32(slot), n)}
		return &Element{node: &sn}
	}
	if t := s.Token(); t != nil {
		st := SyntaxToken{d: d.tokenAt(uint32(slot), t)}
		return &Element{token: &st}
	}
	return nil
}

// elementAfter returns the first non-empty slot element strictly after slot,
// or nil. Pass -1 to get the first element.
func (d *nodeData) elementAfter(slot int) *Element {
	for i := slot + 1; i < d.green.NumSlots(); i++ {
		if el := d.elementAt(i); el != nil {
			return el
		}
	}
	return nil
}

// elementBefore returns the last non-empty slot element strictly before
// slot, or nil. Pass NumSlots to get the last element.
func (d *nodeData) elementBefore(slot int) *Element {
	for i := slot - 1; i >= 0; i-- {
		if el := d.elementAt(i); el != nil {
			return el
		}
	}
	return nil
}

// nodeAfter returns the first node child strictly after slot, or nil.
func (d *nodeData) nodeAfter(slot int) *SyntaxNode {
	for i := slot + 1; i < d.green.NumSlots(); i++ {
		if g := d.green.Slot(i).Node(); g != nil {
			n := SyntaxNode{d: d.nodeAt(uint32(i), g)}
			return &n
		}
	}
	return nil
}

// nodeBefore returns the last node child strictly before slot, or nil.
func (d *nodeData) nodeBefore(slot int) *SyntaxNode {
	for i := slot - 1; i >= 0; i-- {
		if g := d.green.Slot(i).Node(); g != nil {
			n := SyntaxNode{d: d.nodeAt(uint32(i), g)}
			return &n
		}
	}
	return nil
}
