package syntax

import (
	"verdant/green"
	"verdant/internal/cursor"
	"verdant/span"
)

// Node is a positioned, grammar-typed view of a green node.
type Node[L Language[K], K Kind] struct {
	raw cursor.SyntaxNode
}

// Root wraps a green tree as a parentless immutable node at offset zero.
func Root[L Language[K], K Kind](g *green.Node) Node[L, K] {
	return Node[L, K]{raw: cursor.NewRoot(g)}
}

func wrapNode[L Language[K], K Kind](n *cursor.SyntaxNode) *Node[L, K] {
	if n == nil {
		return nil
	}
	return &Node[L, K]{raw: *n}
}

func (n Node[L, K]) Kind() K {
	return kindFromRaw[L, K](n.raw.Kind())
}

// Green returns the backing green node. READONLY.
func (n Node[L, K]) Green() *green.Node {
	return n.raw.Green()
}

// Index returns the node's slot index in its parent, 0 for a root.
func (n Node[L, K]) Index() uint32 {
	return n.raw.Index()
}

// Mutable reports whether the node belongs to a tree cloned for update.
func (n Node[L, K]) Mutable() bool {
	return n.raw.Mutable()
}

// NumSlots returns the node's slot count, empty slots included.
func (n Node[L, K]) NumSlots() int {
	return n.raw.NumSlots()
}

// ElementInSlot returns the element in the exact slot index, nil if the
// slot is empty. It panics if the index is out of range.
func (n Node[L, K]) ElementInSlot(slot int) *Element[L, K] {
	return wrapElement[L, K](n.raw.ElementInSlot(slot))
}

// Equal reports whether the two handles view the same tree position.
func (n Node[L, K]) Equal(other Node[L, K]) bool {
	return n.raw.Equal(other.raw)
}

func (n Node[L, K]) Parent() *Node[L, K] {
	return wrapNode[L, K](n.raw.Parent())
}

// Ancestors returns the node and its parents, innermost first, root last.
func (n Node[L, K]) Ancestors() []Node[L, K] {
	raw := n.raw.Ancestors()
	out := make([]Node[L, K], len(raw))
	for i, a := range raw {
		out[i] = Node[L, K]{raw: a}
	}
	return out
}

func (n Node[L, K]) FirstChild() *Node[L, K] {
	return wrapNode[L, K](n.raw.FirstChild())
}

func (n Node[L, K]) LastChild() *Node[L, K] {
	return wrapNode[L, K](n.raw.LastChild())
}

func (n Node[L, K]) FirstChildOrToken() *Element[L, K] {
	return wrapElement[L, K](n.raw.FirstChildOrToken())
}

func (n Node[L, K]) LastChildOrToken() *Element[L, K] {
	return wrapElement[L, K](n.raw.LastChildOrToken())
}

// NextSibling returns the next sibling node, stepping over tokens and
// empty slots.
func (n Node[L, K]) NextSibling() *Node[L, K] {
	return wrapNode[L, K](n.raw.NextSibling())
}

// PrevSibling returns the previous sibling node, stepping over tokens and
// empty slots.
func (n Node[L, K]) PrevSibling() *Node[L, K] {
	return wrapNode[L, K](n.raw.PrevSibling())
}

// NextSiblingOrToken returns the next sibling element, stepping over
// empty slots only.
func (n Node[L, K]) NextSiblingOrToken() *Element[L, K] {
	return wrapElement[L, K](n.raw.NextSiblingOrToken())
}

// PrevSiblingOrToken returns the previous sibling element, stepping over
// empty slots only.
func (n Node[L, K]) PrevSiblingOrToken() *Element[L, K] {
	return wrapElement[L, K](n.raw.PrevSiblingOrToken())
}

// FirstToken returns the leftmost token of the subtree, nil when the
// subtree holds no tokens.
func (n Node[L, K]) FirstToken() *Token[L, K] {
	return wrapToken[L, K](n.raw.FirstToken())
}

// LastToken returns the rightmost token of the subtree, nil when the
// subtree holds no tokens.
func (n Node[L, K]) LastToken() *Token[L, K] {
	return wrapToken[L, K](n.raw.LastToken())
}

// TextRange returns the absolute span of the subtree, trivia included.
func (n Node[L, K]) TextRange() span.Span {
	return n.raw.TextRange()
}

// TextTrimmedRange returns TextRange with the first token's leading
// trivia and the last token's trailing trivia excluded.
func (n Node[L, K]) TextTrimmedRange() span.Span {
	return n.raw.TextTrimmedRange()
}

// Text reconstructs the exact source text of the subtree, trivia included.
func (n Node[L, K]) Text() string {
	return n.raw.Text()
}

// TextTrimmed returns Text with only the outermost leading and trailing
// trivia removed; interior trivia stays.
func (n Node[L, K]) TextTrimmed() string {
	return n.raw.TextTrimmed()
}

// FirstLeadingTrivia returns the leading trivia of the first token, nil
// when the subtree holds no tokens.
func (n Node[L, K]) FirstLeadingTrivia() *Trivia {
	return wrapTrivia(n.raw.FirstLeadingTrivia())
}

// LastTrailingTrivia returns the trailing trivia of the last token, nil
// when the subtree holds no tokens.
func (n Node[L, K]) LastTrailingTrivia() *Trivia {
	return wrapTrivia(n.raw.LastTrailingTrivia())
}

// CloneSubtree returns an immutable, parentless snapshot of the subtree
// at offset zero, unaffected by later edits to the source tree.
func (n Node[L, K]) CloneSubtree() Node[L, K] {
	return Node[L, K]{raw: n.raw.CloneSubtree()}
}

// CloneForUpdate returns a mutable, parentless copy of the subtree.
// Edits through any handle derived from the copy are seen by all of
// them, and never by the source or by other clones.
func (n Node[L, K]) CloneForUpdate() Node[L, K] {
	return Node[L, K]{raw: n.raw.CloneForUpdate()}
}

// Detach removes the node from its parent: a list-kind parent loses the
// slot, any other parent keeps it as an empty slot. Requires a mutable
// tree; detaching from an immutable tree panics.
func (n Node[L, K]) Detach() {
	n.raw.Detach(rawListKind[L, K]())
}

// SpliceChildren replaces the children at positions [from, to) with the
// given elements. Positions count non-empty children in order, tokens
// included. Keeping a non-list node at its grammar-fixed arity is the
// caller's contract; the facade does slot bookkeeping only. Requires a
// mutable tree.
func (n Node[L, K]) SpliceChildren(from, to int, elements []Element[L, K]) {
	raw := make([]cursor.Element, len(elements))
	for i, el := range elements {
		raw[i] = el.raw
	}
	n.raw.SpliceChildren(from, to, raw)
}
