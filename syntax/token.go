package syntax

import (
	"verdant/green"
	"verdant/internal/cursor"
	"verdant/span"
)

// Token is a positioned, grammar-typed view of a green token.
type Token[L Language[K], K Kind] struct {
	raw cursor.SyntaxToken
}

func wrapToken[L Language[K], K Kind](t *cursor.SyntaxToken) *Token[L, K] {
	if t == nil {
		return nil
	}
	return &Token[L, K]{raw: *t}
}

func (t Token[L, K]) Kind() K {
	return kindFromRaw[L, K](t.raw.Kind())
}

// Green returns the backing green token. READONLY.
func (t Token[L, K]) Green() *green.Token {
	return t.raw.Green()
}

// Index returns the token's slot index in its parent.
func (t Token[L, K]) Index() uint32 {
	return t.raw.Index()
}

// Text returns the token's full text, trivia included.
func (t Token[L, K]) Text() string {
	return t.raw.Text()
}

// TextTrimmed returns the token's own text with both trivia sides removed.
func (t Token[L, K]) TextTrimmed() string {
	return t.raw.TextTrimmed()
}

func (t Token[L, K]) TextRange() span.Span {
	return t.raw.TextRange()
}

func (t Token[L, K]) TextTrimmedRange() span.Span {
	return t.raw.TextTrimmedRange()
}

// Equal reports whether the two handles view the same tree position.
func (t Token[L, K]) Equal(other Token[L, K]) bool {
	return t.raw.Equal(other.raw)
}

func (t Token[L, K]) Parent() *Node[L, K] {
	return wrapNode[L, K](t.raw.Parent())
}

// Ancestors returns the token's parent chain, innermost first.
func (t Token[L, K]) Ancestors() []Node[L, K] {
	raw := t.raw.Ancestors()
	if raw == nil {
		return nil
	}
	out := make([]Node[L, K], len(raw))
	for i, a := range raw {
		out[i] = Node[L, K]{raw: a}
	}
	return out
}

func (t Token[L, K]) NextSiblingOrToken() *Element[L, K] {
	return wrapElement[L, K](t.raw.NextSiblingOrToken())
}

func (t Token[L, K]) PrevSiblingOrToken() *Element[L, K] {
	return wrapElement[L, K](t.raw.PrevSiblingOrToken())
}

// NextToken returns the next token in the whole tree, crossing parent
// boundaries, or nil at the very end.
func (t Token[L, K]) NextToken() *Token[L, K] {
	return wrapToken[L, K](t.raw.NextToken())
}

// PrevToken returns the previous token in the whole tree, crossing
// parent boundaries, or nil at the very start.
func (t Token[L, K]) PrevToken() *Token[L, K] {
	return wrapToken[L, K](t.raw.PrevToken())
}

// LeadingTrivia returns the token's leading trivia view; it may be empty
// but always exists.
func (t Token[L, K]) LeadingTrivia() Trivia {
	return Trivia{raw: t.raw.LeadingTrivia()}
}

// TrailingTrivia returns the token's trailing trivia view.
func (t Token[L, K]) TrailingTrivia() Trivia {
	return Trivia{raw: t.raw.TrailingTrivia()}
}

// Detach removes the token from its parent; see Node.Detach. Requires a
// mutable tree.
func (t Token[L, K]) Detach() {
	t.raw.Detach(rawListKind[L, K]())
}
