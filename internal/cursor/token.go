package cursor

import (
	"verdant/green"
	"verdant/span"
)

// SyntaxToken is a positioned red view of a green token.
type SyntaxToken struct {
	d *tokenData
}

func (t SyntaxToken) Kind() green.Kind {
	return t.d.green.Kind()
}

// Green returns the backing green token. READONLY.
func (t SyntaxToken) Green() *green.Token {
	return t.d.green
}

// Index returns the token's slot index in its parent.
func (t SyntaxToken) Index() uint32 {
	return t.d.slot
}

// Text returns the token's full text, trivia included.
func (t SyntaxToken) Text() string {
	return t.d.green.Text()
}

// TextTrimmed returns the token's own text with both trivia sides removed.
func (t SyntaxToken) TextTrimmed() string {
	return t.d.green.TextTrimmed()
}

func (t SyntaxToken) TextRange() span.Span {
	return span.At(t.d.startOffset(), t.d.green.TextLen())
}

func (t SyntaxToken) TextTrimmedRange() span.Span {
	r := t.TextRange()
	return span.New(r.Start+t.d.green.LeadingLen(), r.End-t.d.green.TrailingLen())
}

// Equal reports whether the two handles view the same tree position.
func (t SyntaxToken) Equal(other SyntaxToken) bool {
	if t.d == other.d {
		return true
	}
	if t.d.mutable || other.d.mutable {
		return false
	}
	return t.d.green == other.d.green && t.d.offset == other.d.offset
}

func (t SyntaxToken) Parent() *SyntaxNode {
	if t.d.parent == nil {
		return nil
	}
	p := SyntaxNode{d: t.d.parent}
	return &p
}

// Ancestors returns the token's parent chain, innermost first.
func (t SyntaxToken) Ancestors() []SyntaxNode {
	if t.d.parent == nil {
		return nil
	}
	return SyntaxNode{d: t.d.parent}.Ancestors()
}

func (t SyntaxToken) NextSiblingOrToken() *Element {
	if t.d.parent == nil {
		return nil
	}
	return t.d.parent.elementAfter(int(t.d.slot))
}

func (t SyntaxToken) PrevSiblingOrToken() *Element {
	if t.d.parent == nil {
		return nil
	}
	return t.d.parent.elementBefore(int(t.d.slot))
}

// NextToken returns the next token in the whole tree, crossing parent
// boundaries, or nil at the very end.
func (t SyntaxToken) NextToken() *SyntaxToken {
	el := Element{token: &t}
	return nextTokenFrom(el)
}

// PrevToken returns the previous token in the whole tree, crossing parent
// boundaries, or nil at the very start.
func (t SyntaxToken) PrevToken() *SyntaxToken {
	el := Element{token: &t}
	return prevTokenFrom(el)
}

func nextTokenFrom(el Element) *SyntaxToken {
	for {
		for sib := el.NextSiblingOrToken(); sib != nil; sib = sib.NextSiblingOrToken() {
			if t := sib.firstToken(); t != nil {
				return t
			}
		}
		p := el.Parent()
		if p == nil {
			return nil
		}
		el = Element{node: p}
	}
}

func prevTokenFrom(el Element) *SyntaxToken {
	for {
		for sib := el.PrevSiblingOrToken(); sib != nil; sib = sib.PrevSiblingOrToken() {
			if t := sib.lastToken(); t != nil {
				return t
			}
		}
		p := el.Parent()
		if p == nil {
			return nil
		}
		el = Element{node: p}
	}
}

// LeadingTrivia returns the token's leading trivia view; it may be empty
// but always exists.
func (t SyntaxToken) LeadingTrivia() Trivia {
	return Trivia{token: t.d, side: leadingSide}
}

// TrailingTrivia returns the token's trailing trivia view.
func (t SyntaxToken) TrailingTrivia() Trivia {
	return Trivia{token: t.d, side: trailingSide}
}
