package cursor

import (
	"verdant/green"
	"verdant/span"
)

// SyntaxNode is a positioned red view of a green node.
type SyntaxNode struct {
	d *nodeData
}

// NewRoot wraps a green tree as a parentless red node at offset zero.
func NewRoot(g *green.Node) SyntaxNode {
	return SyntaxNode{d: &nodeData{green: g}}
}

func (n SyntaxNode) Kind() green.Kind {
	return n.d.green.Kind()
}

// Green returns the backing green node. READONLY.
func (n SyntaxNode) Green() *green.Node {
	return n.d.green
}

// Index returns the node's slot index in its parent, 0 for a root.
func (n SyntaxNode) Index() uint32 {
	return n.d.slot
}

// Mutable reports whether the node belongs to a tree cloned for update.
func (n SyntaxNode) Mutable() bool {
	return n.d.mutable
}

// NumSlots returns the node's slot count, empty slots included.
func (n SyntaxNode) NumSlots() int {
	return n.d.green.NumSlots()
}

// ElementInSlot returns the element in the exact slot index, nil if the
// slot is empty. It panics if the index is out of range.
func (n SyntaxNode) ElementInSlot(slot int) *Element {
	return n.d.elementAt(slot)
}

// Equal reports whether the two handles view the same tree position.
func (n SyntaxNode) Equal(other SyntaxNode) bool {
	if n.d == other.d {
		return true
	}
	if n.d.mutable || other.d.mutable {
		return false // mutable handles for one position share backing
	}
	return n.d.green == other.d.green && n.d.offset == other.d.offset
}

func (n SyntaxNode) Parent() *SyntaxNode {
	if n.d.parent == nil {
		return nil
	}
	p := SyntaxNode{d: n.d.parent}
	return &p
}

// Ancestors returns the node and its parents, innermost first, root last.
func (n SyntaxNode) Ancestors() []SyntaxNode {
	var out []SyntaxNode
	for d := n.d; d != nil; d = d.parent {
		out = append(out, SyntaxNode{d: d})
	}
	return out
}

func (n SyntaxNode) FirstChild() *SyntaxNode {
	return n.d.nodeAfter(-1)
}

func (n SyntaxNode) LastChild() *SyntaxNode {
	return n.d.nodeBefore(n.d.green.NumSlots())
}

func (n SyntaxNode) FirstChildOrToken() *Element {
	return n.d.elementAfter(-1)
}

func (n SyntaxNode) LastChildOrToken() *Element {
	return n.d.elementBefore(n.d.green.NumSlots())
}

// NextSibling returns the next sibling node, stepping over tokens and
// empty slots.
func (n SyntaxNode) NextSibling() *SyntaxNode {
	if n.d.parent == nil {
		return nil
	}
	return n.d.parent.nodeAfter(int(n.d.slot))
}

// PrevSibling returns the previous sibling node, stepping over tokens and
// empty slots.
func (n SyntaxNode) PrevSibling() *SyntaxNode {
	if n.d.parent == nil {
		return nil
	}
	return n.d.parent.nodeBefore(int(n.d.slot))
}

// NextSiblingOrToken returns the next sibling element, stepping over empty
// slots only.
func (n SyntaxNode) NextSiblingOrToken() *Element {
	if n.d.parent == nil {
		return nil
	}
	return n.d.parent.elementAfter(int(n.d.slot))
}

// PrevSiblingOrToken returns the previous sibling element, stepping over
// empty slots only.
func (n SyntaxNode) PrevSiblingOrToken() *Element {
	if n.d.parent == nil {
		return nil
	}
	return n.d.parent.elementBefore(int(n.d.slot))
}

// FirstToken returns the leftmost token of the subtree, or nil when the
// subtree holds no tokens at all.
func (n SyntaxNode) FirstToken() *SyntaxToken {
	d := n.d
	for {
		descended := false
		for i, s := range d.green.Slots() {
			if t := s.Token(); t != nil {
				st := SyntaxToken{d: d.tokenAt(uint32(i), t)}
				return &st
			}
			if c := s.Node(); c != nil && c.FirstToken() != nil {
				d = d.nodeAt(uint32(i), c)
				descended = true
				break
			}
		}
		if !descended {
			return nil
		}
	}
}

// LastToken returns the rightmost token of the subtree, or nil when the
// subtree holds no tokens at all.
func (n SyntaxNode) LastToken() *SyntaxToken {
	d := n.d
	for {
		descended := false
		for i := d.green.NumSlots() - 1; i >= 0; i-- {
			s := d.green.Slot(i)
			if t := s.Token(); t != nil {
				st := SyntaxToken{d: d.tokenAt(uint32(i), t)}
				return &st
			}
			if c := s.Node(); c != nil && c.LastToken() != nil {
				d = d.nodeAt(uint32(i), c)
				descended = true
				break
			}
		}
		if !descended {
			return nil
		}
	}
}

// TextRange returns the absolute span of the subtree, trivia included.
func (n SyntaxNode) TextRange() span.Span {
	return span.At(n.d.startOffset(), n.d.green.TextLen())
}

// TextTrimmedRange returns TextRange with the first token's leading trivia
// and the last token's trailing trivia excluded.
func (n SyntaxNode) TextTrimmedRange() span.Span {
	r := n.TextRange()
	first := n.FirstToken()
	last := n.LastToken()
	if first == nil || last == nil {
		return r
	}
	return span.New(r.Start+first.d.green.LeadingLen(), r.End-last.d.green.TrailingLen())
}

// Text reconstructs the exact source text of the subtree, trivia included.
func (n SyntaxNode) Text() string {
	return n.d.green.Text()
}

// TextTrimmed returns Text with only the outermost leading and trailing
// trivia removed; interior trivia stays.
func (n SyntaxNode) TextTrimmed() string {
	full := n.Text()
	r := n.TextRange()
	tr := n.TextTrimmedRange()
	return full[tr.Start-r.Start : tr.End-r.Start]
}

// FirstLeadingTrivia returns the leading trivia of the first token, nil
// when the subtree holds no tokens.
func (n SyntaxNode) FirstLeadingTrivia() *Trivia {
	t := n.FirstToken()
	if t == nil {
		return nil
	}
	tr := t.LeadingTrivia()
	return &tr
}

// LastTrailingTrivia returns the trailing trivia of the last token, nil
// when the subtree holds no tokens.
func (n SyntaxNode) LastTrailingTrivia() *Trivia {
	t := n.LastToken()
	if t == nil {
		return nil
	}
	tr := t.TrailingTrivia()
	return &tr
}
