package green

import "fmt"

// Builder assembles a green tree from the event stream a recursive-descent
// parser produces: start a node, emit tokens and missing slots into it,
// finish it. Nodes seal bottom-up; the root seals in Finish.
//
// Start/finish calls must nest. Unbalanced nesting, emitting outside a
// node, or finishing with pending frames is a caller bug and panics rather
// than producing a corrupt tree.
type Builder struct {
	cache    *NodeCache
	parents  []frame
	children []Slot
}

type frame struct {
	kind  Kind
	first int // index of the node's first child in Builder.children
}

// NewBuilder returns a builder with its own private dedup cache.
func NewBuilder() *Builder {
	return NewBuilderWithCache(NewNodeCache())
}

// NewBuilderWithCache returns a builder that shares the given cache, so
// identical subtrees built across many trees resolve to the same green
// values.
func NewBuilderWithCache(cache *NodeCache) *Builder {
	return &Builder{cache: cache}
}

// StartNode opens a node of the given kind. Every child emitted until the
// matching FinishNode lands in its slots, in emission order.
func (b *Builder) StartNode(kind Kind) {
	b.parents = append(b.parents, frame{kind: kind, first: len(b.children)})
}

// Token emits a trivia-less token into the current node.
func (b *Builder) Token(kind Kind, text string) {
	b.push(TokenSlot(b.cache.token(kind, text)))
}

// TokenWithTrivia emits a token whose text starts with the leading pieces
// and ends with the trailing pieces.
func (b *Builder) TokenWithTrivia(kind Kind, text string, leading, trailing []TriviaPiece) {
	b.push(TokenSlot(NewTokenWithTrivia(kind, text, leading, trailing)))
}

// Missing emits an empty slot at the current position, keeping later
// children at their grammar-fixed slot indices.
func (b *Builder) Missing() {
	b.push(EmptySlot())
}

// FinishNode seals the innermost open node.
func (b *Builder) FinishNode() {
	if len(b.parents) == 0 {
		panic("green: FinishNode without matching StartNode")
	}
	f := b.parents[len(b.parents)-1]
	b.parents = b.parents[:len(b.parents)-1]
	node := b.cache.node(f.kind, b.children[f.first:])
	b.children = b.children[:f.first]
	b.children = append(b.children, NodeSlot(node))
}

// Finish returns the root. Exactly one node must have been built and every
// frame closed.
func (b *Builder) Finish() *Node {
	if len(b.parents) != 0 {
		panic(fmt.Sprintf("green: Finish with %d unfinished node(s)", len(b.parents)))
	}
	if len(b.children) != 1 || b.children[0].Node() == nil {
		panic("green: Finish requires exactly one root node")
	}
	root := b.children[0].Node()
	b.children = nil
	return root
}

func (b *Builder) push(s Slot) {
	if len(b.parents) == 0 {
		panic("green: child emitted outside of a node")
	}
	b.children = append(b.children, s)
}
