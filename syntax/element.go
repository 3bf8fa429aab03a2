package syntax

import (
	"verdant/internal/cursor"
	"verdant/span"
)

// Element is a child position's occupant: either a node or a token.
type Element[L Language[K], K Kind] struct {
	raw cursor.Element
}

func NodeElement[L Language[K], K Kind](n Node[L, K]) Element[L, K] {
	return Element[L, K]{raw: cursor.NodeElement(n.raw)}
}

func TokenElement[L Language[K], K Kind](t Token[L, K]) Element[L, K] {
	return Element[L, K]{raw: cursor.TokenElement(t.raw)}
}

func wrapElement[L Language[K], K Kind](el *cursor.Element) *Element[L, K] {
	if el == nil {
		return nil
	}
	return &Element[L, K]{raw: *el}
}

// Node returns the node view, or nil if the element is a token.
func (e Element[L, K]) Node() *Node[L, K] {
	return wrapNode[L, K](e.raw.Node())
}

// Token returns the token view, or nil if the element is a node.
func (e Element[L, K]) Token() *Token[L, K] {
	return wrapToken[L, K](e.raw.Token())
}

func (e Element[L, K]) Kind() K {
	return kindFromRaw[L, K](e.raw.Kind())
}

// Index returns the element's slot index in its parent.
func (e Element[L, K]) Index() uint32 {
	return e.raw.Index()
}

func (e Element[L, K]) TextRange() span.Span {
	return e.raw.TextRange()
}

func (e Element[L, K]) TextTrimmedRange() span.Span {
	return e.raw.TextTrimmedRange()
}

func (e Element[L, K]) Text() string {
	return e.raw.Text()
}

// LeadingTrivia returns the element's leading trivia: the token's own
// for a token, the first descendant token's for a node (nil if it has
// none).
func (e Element[L, K]) LeadingTrivia() *Trivia {
	return wrapTrivia(e.raw.LeadingTrivia())
}

// TrailingTrivia mirrors LeadingTrivia for the trailing side.
func (e Element[L, K]) TrailingTrivia() *Trivia {
	return wrapTrivia(e.raw.TrailingTrivia())
}

func (e Element[L, K]) Parent() *Node[L, K] {
	return wrapNode[L, K](e.raw.Parent())
}

func (e Element[L, K]) Ancestors() []Node[L, K] {
	raw := e.raw.Ancestors()
	if raw == nil {
		return nil
	}
	out := make([]Node[L, K], len(raw))
	for i, a := range raw {
		out[i] = Node[L, K]{raw: a}
	}
	return out
}

func (e Element[L, K]) NextSiblingOrToken() *Element[L, K] {
	return wrapElement[L, K](e.raw.NextSiblingOrToken())
}

func (e Element[L, K]) PrevSiblingOrToken() *Element[L, K] {
	return wrapElement[L, K](e.raw.PrevSiblingOrToken())
}

func (e Element[L, K]) Equal(other Element[L, K]) bool {
	return e.raw.Equal(other.raw)
}
