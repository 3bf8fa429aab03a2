package cursor

import (
	"fmt"
	"slices"

	"verdant/green"
)

// CloneSubtree returns an immutable, parentless snapshot of the subtree at
// offset zero. The snapshot shares green values with the source, which is
// safe: edits never touch existing greens, they swap in new ones.
func (n SyntaxNode) CloneSubtree() SyntaxNode {
	return NewRoot(n.d.green)
}

// CloneForUpdate returns a mutable, parentless copy of the subtree.
// Handles derived from the returned root share one spine: an edit through
// any of them is seen by all of them, and by nothing derived from the
// source or from other clones.
func (n SyntaxNode) CloneForUpdate() SyntaxNode {
	return SyntaxNode{d: &nodeData{green: n.d.green, mutable: true}}
}

func mustMutable(mutable bool, op string) {
	if !mutable {
		panic(fmt.Sprintf("cursor: %s on an immutable tree; CloneForUpdate first", op))
	}
}

// Detach removes the node from its parent. On a list-kind parent the slot
// is removed outright; on any other parent the slot turns empty so the
// remaining children keep their positions. The node stays usable as the
// root of its own subtree. Detaching an immutable node panics.
func (n SyntaxNode) Detach(listKind green.Kind) {
	mustMutable(n.d.mutable, "Detach")
	p := n.d.parent
	if p == nil {
		return
	}
	p.removeSlot(n.d.slot, listKind)
	n.d.parent = nil
	n.d.slot = 0
}

// Detach removes the token from its parent; see SyntaxNode.Detach.
func (t SyntaxToken) Detach(listKind green.Kind) {
	mustMutable(t.d.mutable, "Detach")
	p := t.d.parent
	if p == nil {
		return
	}
	p.removeSlot(t.d.slot, listKind)
	t.d.parent = nil
	t.d.slot = 0
}

// SpliceChildren replaces the children at positions [from, to) with the
// given elements. Positions count non-empty children in order, tokens
// included. Empty slots inside the replaced run are removed with it.
// The engine does only mechanical slot bookkeeping here: keeping a
// non-list node at its grammar-fixed arity is the caller's contract.
// Splicing an immutable node panics, as does a position out of range.
func (n SyntaxNode) SpliceChildren(from, to int, elements []Element) {
	mustMutable(n.d.mutable, "SpliceChildren")
	d := n.d
	slots := d.green.Slots()

	occupied := make([]int, 0, len(slots))
	for i, s := range slots {
		if !s.IsEmpty() {
			occupied = append(occupied, i)
		}
	}
	if from < 0 || to < from || to > len(occupied) {
		panic(fmt.Sprintf("cursor: splice positions %d..%d out of range for %d children", from, to, len(occupied)))
	}
	slotFrom := len(slots)
	if from < len(occupied) {
		slotFrom = occupied[from]
	}
	slotTo := len(slots)
	if to < len(occupied) {
		slotTo = occupied[to]
	}

	newSlots := make([]green.Slot, 0, len(slots)-(slotTo-slotFrom)+len(elements))
	newSlots = append(newSlots, slots[:slotFrom]...)
	for _, el := range elements {
		if node := el.Node(); node != nil {
			newSlots = append(newSlots, green.NodeSlot(node.d.green))
		} else {
			newSlots = append(newSlots, green.TokenSlot(el.Token().d.green))
		}
	}
	newSlots = append(newSlots, slots[slotTo:]...)

	d.dropKids(uint32(slotFrom), uint32(slotTo))
	d.shiftKids(uint32(slotTo), len(elements)-(slotTo-slotFrom))
	d.replaceGreen(green.NewNode(d.green.Kind(), newSlots))
}

// removeSlot deletes (list parent) or empties (fixed-arity parent) one
// slot and rebuilds the green spine.
func (p *nodeData) removeSlot(slot uint32, listKind green.Kind) {
	slots := p.green.Slots()
	isList := p.green.Kind() == listKind
	newSlots := make([]green.Slot, 0, len(slots))
	for i, s := range slots {
		if uint32(i) == slot {
			if !isList {
				newSlots = append(newSlots, green.EmptySlot())
			}
			continue
		}
		newSlots = append(newSlots, s)
	}
	p.dropKids(slot, slot+1)
	if isList {
		p.shiftKids(slot+1, -1)
	}
	p.replaceGreen(green.NewNode(p.green.Kind(), newSlots))
}

// dropKids detaches materialized children in slot range [from, to).
func (d *nodeData) dropKids(from, to uint32) {
	for slot, k := range d.kidNodes {
		if slot >= from && slot < to {
			k.parent = nil
			k.slot = 0
			delete(d.kidNodes, slot)
		}
	}
	for slot, k := range d.kidToks {
		if slot >= from && slot < to {
			k.parent = nil
			k.slot = 0
			delete(d.kidToks, slot)
		}
	}
}

// shiftKids renumbers materialized children at slots >= from by delta.
func (d *nodeData) shiftKids(from uint32, delta int) {
	if delta == 0 {
		return
	}
	if len(d.kidNodes) > 0 {
		shifted := make(map[uint32]*nodeData, len(d.kidNodes))
		for slot, k := range d.kidNodes {
			if slot >= from {
				k.slot = uint32(int(slot) + delta)
			}
			shifted[k.slot] = k
		}
		d.kidNodes = shifted
	}
	if len(d.kidToks) > 0 {
		shifted := make(map[uint32]*tokenData, len(d.kidToks))
		for slot, k := range d.kidToks {
			if slot >= from {
				k.slot = uint32(int(slot) + delta)
			}
			shifted[k.slot] = k
		}
		d.kidToks = shifted
	}
}

// replaceGreen swaps in a node's new green and rebuilds every ancestor so
// aggregate lengths and slot arrays stay consistent up to the root.
func (d *nodeData) replaceGreen(g *green.Node) {
	d.green = g
	for c, p := d, d.parent; p != nil; c, p = p, p.parent {
		slots := slices.Clone(p.green.Slots())
		slots[c.slot] = green.NodeSlot(c.green)
		p.green = green.NewNode(p.green.Kind(), slots)
	}
}
