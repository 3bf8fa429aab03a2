package syntax

import "verdant/internal/cursor"

// Direction selects which way sibling iteration walks.
type Direction uint8

const (
	// DirectionNext walks toward the end of the parent.
	DirectionNext Direction = iota
	// DirectionPrev walks toward the start of the parent.
	DirectionPrev
)

func (d Direction) raw() cursor.Direction {
	if d == DirectionPrev {
		return cursor.Prev
	}
	return cursor.Next
}

// Children iterates a node's direct child nodes in slot order.
type Children[L Language[K], K Kind] struct {
	it *cursor.NodeChildren
}

func (n Node[L, K]) Children() *Children[L, K] {
	return &Children[L, K]{it: n.raw.Children()}
}

// Next returns the next child node, nil when exhausted.
func (c *Children[L, K]) Next() *Node[L, K] {
	return wrapNode[L, K](c.it.Next())
}

// ElementChildren iterates a node's direct children, tokens included, in
// slot order.
type ElementChildren[L Language[K], K Kind] struct {
	it *cursor.ElementChildren
}

func (n Node[L, K]) ChildrenWithTokens() *ElementChildren[L, K] {
	return &ElementChildren[L, K]{it: n.raw.ChildrenWithTokens()}
}

// Next returns the next child element, nil when exhausted.
func (c *ElementChildren[L, K]) Next() *Element[L, K] {
	return wrapElement[L, K](c.it.Next())
}

// Siblings iterates sibling nodes starting with the node itself.
type Siblings[L Language[K], K Kind] struct {
	it *cursor.NodeSiblings
}

func (n Node[L, K]) Siblings(dir Direction) *Siblings[L, K] {
	return &Siblings[L, K]{it: n.raw.Siblings(dir.raw())}
}

func (s *Siblings[L, K]) Next() *Node[L, K] {
	return wrapNode[L, K](s.it.Next())
}

// ElementSiblings iterates sibling elements starting with the element
// itself.
type ElementSiblings[L Language[K], K Kind] struct {
	it *cursor.ElementSiblings
}

func (n Node[L, K]) SiblingsWithTokens(dir Direction) *ElementSiblings[L, K] {
	return &ElementSiblings[L, K]{it: n.raw.SiblingsWithTokens(dir.raw())}
}

func (t Token[L, K]) SiblingsWithTokens(dir Direction) *ElementSiblings[L, K] {
	return &ElementSiblings[L, K]{it: t.raw.SiblingsWithTokens(dir.raw())}
}

func (s *ElementSiblings[L, K]) Next() *Element[L, K] {
	return wrapElement[L, K](s.it.Next())
}

// Descendants iterates every node of the subtree in preorder, the node
// itself included.
type Descendants[L Language[K], K Kind] struct {
	it *cursor.Descendants
}

func (n Node[L, K]) Descendants() *Descendants[L, K] {
	return &Descendants[L, K]{it: n.raw.Descendants()}
}

func (d *Descendants[L, K]) Next() *Node[L, K] {
	return wrapNode[L, K](d.it.Next())
}

// DescendantElements iterates every node and token of the subtree in
// preorder.
type DescendantElements[L Language[K], K Kind] struct {
	it *cursor.DescendantElements
}

func (n Node[L, K]) DescendantsWithTokens() *DescendantElements[L, K] {
	return &DescendantElements[L, K]{it: n.raw.DescendantsWithTokens()}
}

func (d *DescendantElements[L, K]) Next() *Element[L, K] {
	return wrapElement[L, K](d.it.Next())
}

// DescendantTokens iterates every token of the subtree in source order.
type DescendantTokens[L Language[K], K Kind] struct {
	it *cursor.DescendantTokens
}

func (n Node[L, K]) DescendantTokens() *DescendantTokens[L, K] {
	return &DescendantTokens[L, K]{it: n.raw.DescendantTokens()}
}

func (d *DescendantTokens[L, K]) Next() *Token[L, K] {
	return wrapToken[L, K](d.it.Next())
}

// WalkEvent is one step of a node-level preorder walk. Every node is
// reported twice: Enter on the way down, Leave on the way up.
type WalkEvent[L Language[K], K Kind] struct {
	Enter bool
	Node  Node[L, K]
}

// Preorder walks the subtree rooted at a node, the node included,
// yielding Enter/Leave events.
type Preorder[L Language[K], K Kind] struct {
	it *cursor.Preorder
}

func (n Node[L, K]) Preorder() *Preorder[L, K] {
	return &Preorder[L, K]{it: n.raw.Preorder()}
}

func (p *Preorder[L, K]) Next() (WalkEvent[L, K], bool) {
	ev, ok := p.it.Next()
	if !ok {
		return WalkEvent[L, K]{}, false
	}
	return WalkEvent[L, K]{Enter: ev.Enter, Node: Node[L, K]{raw: ev.Node}}, true
}

// SkipSubtree prunes the children of the node whose Enter event was just
// returned; the walk continues with that node's Leave event.
func (p *Preorder[L, K]) SkipSubtree() {
	p.it.SkipSubtree()
}

// ElementWalkEvent is one step of an element-level preorder walk.
type ElementWalkEvent[L Language[K], K Kind] struct {
	Enter   bool
	Element Element[L, K]
}

// PreorderWithTokens is Preorder extended to report tokens.
type PreorderWithTokens[L Language[K], K Kind] struct {
	it *cursor.PreorderWithTokens
}

func (n Node[L, K]) PreorderWithTokens() *PreorderWithTokens[L, K] {
	return &PreorderWithTokens[L, K]{it: n.raw.PreorderWithTokens()}
}

func (p *PreorderWithTokens[L, K]) Next() (ElementWalkEvent[L, K], bool) {
	ev, ok := p.it.Next()
	if !ok {
		return ElementWalkEvent[L, K]{}, false
	}
	return ElementWalkEvent[L, K]{Enter: ev.Enter, Element: Element[L, K]{raw: ev.Element}}, true
}

// SkipSubtree prunes the children of the element whose Enter event was
// just returned.
func (p *PreorderWithTokens[L, K]) SkipSubtree() {
	p.it.SkipSubtree()
}
