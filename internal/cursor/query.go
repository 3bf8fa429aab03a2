package cursor

import (
	"fmt"
	"sort"

	"verdant/span"
)

// TokenAtOffsetKind classifies where an offset fell.
type TokenAtOffsetKind uint8

const (
	// TokenAtOffsetNone: the subtree has no token at the offset (it is
	// past the end, or every candidate is token-less).
	TokenAtOffsetNone TokenAtOffsetKind = iota
	// TokenAtOffsetSingle: the offset is strictly inside one token.
	TokenAtOffsetSingle
	// TokenAtOffsetBetween: the offset is exactly on the boundary between
	// two tokens.
	TokenAtOffsetBetween
)

// TokenAtOffset is the result of SyntaxNode.TokenAtOffset.
type TokenAtOffset struct {
	kind  TokenAtOffsetKind
	left  *SyntaxToken
	right *SyntaxToken
}

func (r TokenAtOffset) Kind() TokenAtOffsetKind {
	return r.kind
}

// Token returns the single covering token, nil unless Kind is Single.
func (r TokenAtOffset) Token() *SyntaxToken {
	if r.kind == TokenAtOffsetSingle {
		return r.left
	}
	return nil
}

// Left returns the token ending at the boundary, nil unless Kind is Between.
func (r TokenAtOffset) Left() *SyntaxToken {
	if r.kind == TokenAtOffsetBetween {
		return r.left
	}
	return nil
}

// Right returns the token starting at the boundary, nil unless Kind is Between.
func (r TokenAtOffset) Right() *SyntaxToken {
	if r.kind == TokenAtOffsetBetween {
		return r.right
	}
	return nil
}

func singleToken(t *SyntaxToken) TokenAtOffset {
	return TokenAtOffset{kind: TokenAtOffsetSingle, left: t}
}

// rightmost returns the token a boundary continuation would sit after.
func (r TokenAtOffset) rightmost() *SyntaxToken {
	if r.kind == TokenAtOffsetBetween {
		return r.right
	}
	return r.left
}

func (r TokenAtOffset) leftmost() *SyntaxToken {
	return r.left
}

// TokenAtOffset finds the token covering the offset within the subtree.
// The offset must lie inside the node's range, boundaries included; an
// offset outside is a caller bug and panics.
func (n SyntaxNode) TokenAtOffset(offset uint32) TokenAtOffset {
	r := n.TextRange()
	if !r.ContainsInclusive(offset) {
		panic(fmt.Sprintf("cursor: offset %d outside of node range %s", offset, r))
	}
	return n.tokenAtOffset(offset)
}

func (n SyntaxNode) tokenAtOffset(offset uint32) TokenAtOffset {
	var results []TokenAtOffset
	it := n.ChildrenWithTokens()
	for el := it.Next(); el != nil && len(results) < 2; el = it.Next() {
		er := el.TextRange()
		if offset < er.Start {
			break
		}
		if !er.ContainsInclusive(offset) {
			continue
		}
		var res TokenAtOffset
		if t := el.Token(); t != nil {
			res = singleToken(t)
		} else {
			res = el.Node().tokenAtOffset(offset)
		}
		if res.kind != TokenAtOffsetNone {
			results = append(results, res)
		}
	}
	switch len(results) {
	case 0:
		return TokenAtOffset{}
	case 1:
		return results[0]
	default:
		return TokenAtOffset{
			kind:  TokenAtOffsetBetween,
			left:  results[0].rightmost(),
			right: results[1].leftmost(),
		}
	}
}

// CoveringElement returns the deepest node or token whose range fully
// contains rng. rng must lie inside the node's own range; violating that
// is a caller bug and panics. An empty rng sitting on a boundary may
// resolve to either neighbor.
func (n SyntaxNode) CoveringElement(rng span.Span) Element {
	if !n.TextRange().ContainsSpan(rng) {
		panic(fmt.Sprintf("cursor: range %s outside of node range %s", rng, n.TextRange()))
	}
	cur := NodeElement(n)
	for {
		node := cur.Node()
		if node == nil {
			return cur
		}
		child := node.ChildOrTokenAtRange(rng)
		if child == nil || !child.TextRange().ContainsSpan(rng) {
			return cur
		}
		cur = *child
	}
}

// ChildOrTokenAtRange returns a direct child element intersecting rng, or
// nil if none does. Children are ordered by non-decreasing start offset,
// so the candidate is located by binary search: O(log k) for k slots,
// plus a short scan over zero-length neighbors.
func (n SyntaxNode) ChildOrTokenAtRange(rng span.Span) *Element {
	r := n.TextRange()
	if _, ok := r.Intersect(rng); !ok {
		return nil
	}
	var relStart uint32
	if rng.Start > r.Start {
		relStart = rng.Start - r.Start
	}
	slots := n.d.green.Slots()
	// Last slot starting at or before relStart.
	i := sort.Search(len(slots), func(i int) bool { return slots[i].Rel() > relStart }) - 1
	for j := i; j >= 0; j-- {
		s := slots[j]
		if s.IsEmpty() {
			continue
		}
		childSpan := span.At(r.Start+s.Rel(), s.Len())
		if _, ok := childSpan.Intersect(rng); ok {
			return n.d.elementAt(j)
		}
		if childSpan.End < rng.Start {
			break
		}
	}
	return nil
}
