package syntax

import "verdant/green"

// Builder is the typed wrapper over the raw tree builder: the same event
// protocol, with the grammar's kind enum in the signatures.
type Builder[L Language[K], K Kind] struct {
	raw *green.Builder
}

// NewBuilder returns a builder with its own private dedup cache.
func NewBuilder[L Language[K], K Kind]() *Builder[L, K] {
	return &Builder[L, K]{raw: green.NewBuilder()}
}

// NewBuilderWithCache returns a builder sharing the given cache, so
// identical subtrees across many trees resolve to the same green values.
func NewBuilderWithCache[L Language[K], K Kind](cache *green.NodeCache) *Builder[L, K] {
	return &Builder[L, K]{raw: green.NewBuilderWithCache(cache)}
}

// StartNode opens a node of the given kind. Every child emitted until
// the matching FinishNode lands in its slots, in emission order.
func (b *Builder[L, K]) StartNode(kind K) {
	var l L
	b.raw.StartNode(l.KindToRaw(kind))
}

// Token emits a trivia-less token into the current node.
func (b *Builder[L, K]) Token(kind K, text string) {
	var l L
	b.raw.Token(l.KindToRaw(kind), text)
}

// TokenWithTrivia emits a token whose text starts with the leading
// pieces and ends with the trailing pieces.
func (b *Builder[L, K]) TokenWithTrivia(kind K, text string, leading, trailing []green.TriviaPiece) {
	var l L
	b.raw.TokenWithTrivia(l.KindToRaw(kind), text, leading, trailing)
}

// Missing emits an empty slot at the current position, keeping later
// children at their grammar-fixed slot indices.
func (b *Builder[L, K]) Missing() {
	b.raw.Missing()
}

// FinishNode seals the innermost open node.
func (b *Builder[L, K]) FinishNode() {
	b.raw.FinishNode()
}

// Finish returns the root as an immutable typed node. Exactly one node
// must have been built and every frame closed; anything else panics.
func (b *Builder[L, K]) Finish() Node[L, K] {
	return Root[L, K](b.raw.Finish())
}

// BuildNode runs build inside a single node of the given kind and
// returns the finished tree rooted at it.
func BuildNode[L Language[K], K Kind](kind K, build func(b *Builder[L, K])) Node[L, K] {
	b := NewBuilder[L, K]()
	b.StartNode(kind)
	build(b)
	b.FinishNode()
	return b.Finish()
}
