package cursor

import (
	"verdant/green"
	"verdant/span"
)

// Element is a child position's occupant: either a node or a token.
type Element struct {
	node  *SyntaxNode
	token *SyntaxToken
}

func NodeElement(n SyntaxNode) Element {
	return Element{node: &n}
}

func TokenElement(t SyntaxToken) Element {
	return Element{token: &t}
}

// Node returns the node view, or nil if the element is a token.
func (e Element) Node() *SyntaxNode {
	return e.node
}

// Token returns the token view, or nil if the element is a node.
func (e Element) Token() *SyntaxToken {
	return e.token
}

func (e Element) Kind() green.Kind {
	if e.node != nil {
		return e.node.Kind()
	}
	return e.token.Kind()
}

// Index returns the element's slot index in its parent.
func (e Element) Index() uint32 {
	if e.node != nil {
		return e.node.Index()
	}
	return e.token.Index()
}

func (e Element) TextRange() span.Span {
	if e.node != nil {
		return e.node.TextRange()
	}
	return e.token.TextRange()
}

func (e Element) TextTrimmedRange() span.Span {
	if e.node != nil {
		return e.node.TextTrimmedRange()
	}
	return e.token.TextTrimmedRange()
}

func (e Element) Text() string {
	if e.node != nil {
		return e.node.Text()
	}
	return e.token.Text()
}

// LeadingTrivia returns the element's leading trivia: the token's own for
// a token, the first descendant token's for a node (nil if it has none).
func (e Element) LeadingTrivia() *Trivia {
	if e.node != nil {
		return e.node.FirstLeadingTrivia()
	}
	tr := e.token.LeadingTrivia()
	return &tr
}

// TrailingTrivia mirrors LeadingTrivia for the trailing side.
func (e Element) TrailingTrivia() *Trivia {
	if e.node != nil {
		return e.node.LastTrailingTrivia()
	}
	tr := e.token.TrailingTrivia()
	return &tr
}

func (e Element) Parent() *SyntaxNode {
	if e.node != nil {
		return e.node.Parent()
	}
	return e.token.Parent()
}

func (e Element) Ancestors() []SyntaxNode {
	if e.node != nil {
		return e.node.Ancestors()
	}
	return e.token.Ancestors()
}

func (e Element) NextSiblingOrToken() *Element {
	if e.node != nil {
		return e.node.NextSiblingOrToken()
	}
	return e.token.NextSiblingOrToken()
}

func (e Element) PrevSiblingOrToken() *Element {
	if e.node != nil {
		return e.node.PrevSiblingOrToken()
	}
	return e.token.PrevSiblingOrToken()
}

func (e Element) Equal(other Element) bool {
	if e.node != nil {
		return other.node != nil && e.node.Equal(*other.node)
	}
	return other.token != nil && e.token.Equal(*other.token)
}

// firstToken returns the leftmost token under the element.
func (e Element) firstToken() *SyntaxToken {
	if e.token != nil {
		return e.token
	}
	return e.node.FirstToken()
}

// lastToken returns the rightmost token under the element.
func (e Element) lastToken() *SyntaxToken {
	if e.token != nil {
		return e.token
	}
	return e.node.LastToken()
}
