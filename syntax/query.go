package syntax

import (
	"verdant/internal/cursor"
	"verdant/span"
)

// TokenAtOffsetKind classifies where an offset fell.
type TokenAtOffsetKind uint8

const (
	// TokenAtOffsetNone: no token covers the offset.
	TokenAtOffsetNone TokenAtOffsetKind = iota
	// TokenAtOffsetSingle: the offset is strictly inside one token.
	TokenAtOffsetSingle
	// TokenAtOffsetBetween: the offset is exactly on the boundary between
	// two tokens.
	TokenAtOffsetBetween
)

// TokenAtOffset is the result of Node.TokenAtOffset.
type TokenAtOffset[L Language[K], K Kind] struct {
	kind  TokenAtOffsetKind
	left  *Token[L, K]
	right *Token[L, K]
}

func (r TokenAtOffset[L, K]) Kind() TokenAtOffsetKind {
	return r.kind
}

// Token returns the single covering token, nil unless Kind is Single.
func (r TokenAtOffset[L, K]) Token() *Token[L, K] {
	if r.kind == TokenAtOffsetSingle {
		return r.left
	}
	return nil
}

// Left returns the token ending at the boundary, nil unless Kind is
// Between.
func (r TokenAtOffset[L, K]) Left() *Token[L, K] {
	if r.kind == TokenAtOffsetBetween {
		return r.left
	}
	return nil
}

// Right returns the token starting at the boundary, nil unless Kind is
// Between.
func (r TokenAtOffset[L, K]) Right() *Token[L, K] {
	if r.kind == TokenAtOffsetBetween {
		return r.right
	}
	return nil
}

// TokenAtOffset finds the token covering the offset within the subtree.
// The offset must lie inside the node's range, boundaries included; an
// offset outside is a caller bug and panics.
func (n Node[L, K]) TokenAtOffset(offset uint32) TokenAtOffset[L, K] {
	res := n.raw.TokenAtOffset(offset)
	switch res.Kind() {
	case cursor.TokenAtOffsetSingle:
		return TokenAtOffset[L, K]{
			kind: TokenAtOffsetSingle,
			left: wrapToken[L, K](res.Token()),
		}
	case cursor.TokenAtOffsetBetween:
		return TokenAtOffset[L, K]{
			kind:  TokenAtOffsetBetween,
			left:  wrapToken[L, K](res.Left()),
			right: wrapToken[L, K](res.Right()),
		}
	default:
		return TokenAtOffset[L, K]{}
	}
}

// CoveringElement returns the deepest node or token whose range fully
// contains rng. rng must lie inside the node's own range; violating that
// is a caller bug and panics. An empty rng sitting on a boundary may
// resolve to either neighbor.
func (n Node[L, K]) CoveringElement(rng span.Span) Element[L, K] {
	return Element[L, K]{raw: n.raw.CoveringElement(rng)}
}

// ChildOrTokenAtRange returns a direct child element intersecting rng,
// located by binary search over the slot offsets, or nil if none does.
func (n Node[L, K]) ChildOrTokenAtRange(rng span.Span) *Element[L, K] {
	return wrapElement[L, K](n.raw.ChildOrTokenAtRange(rng))
}
