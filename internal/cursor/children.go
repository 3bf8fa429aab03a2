package cursor

// Direction selects which way sibling iteration walks.
type Direction uint8

const (
	// Next walks toward the end of the parent.
	Next Direction = iota
	// Prev walks toward the start of the parent.
	Prev
)

// NodeChildren iterates a node's direct child nodes in slot order.
type NodeChildren struct {
	parent *nodeData
	next   int
}

func (n SyntaxNode) Children() *NodeChildren {
	return &NodeChildren{parent: n.d, next: -1}
}

// Next returns the next child node, nil when exhausted.
func (it *NodeChildren) Next() *SyntaxNode {
	if it.parent == nil {
		return nil
	}
	c := it.parent.nodeAfter(it.next)
	if c == nil {
		it.parent = nil
		return nil
	}
	it.next = int(c.d.slot)
	return c
}

// ElementChildren iterates a node's direct children, tokens included, in
// slot order. The zero value is an exhausted iterator.
type ElementChildren struct {
	parent *nodeData
	next   int
}

func (n SyntaxNode) ChildrenWithTokens() *ElementChildren {
	return &ElementChildren{parent: n.d, next: -1}
}

// Next returns the next child element, nil when exhausted.
func (it *ElementChildren) Next() *Element {
	if it.parent == nil {
		return nil
	}
	el := it.parent.elementAfter(it.next)
	if el == nil {
		it.parent = nil
		return nil
	}
	it.next = int(el.Index())
	return el
}

// NodeSiblings iterates sibling nodes starting with the node itself.
type NodeSiblings struct {
	cur *SyntaxNode
	dir Direction
}

func (n SyntaxNode) Siblings(dir Direction) *NodeSiblings {
	return &NodeSiblings{cur: &n, dir: dir}
}

func (it *NodeSiblings) Next() *SyntaxNode {
	cur := it.cur
	if cur == nil {
		return nil
	}
	if it.dir == Next {
		it.cur = cur.NextSibling()
	} else {
		it.cur = cur.PrevSibling()
	}
	return cur
}

// ElementSiblings iterates sibling elements starting with the element
// itself.
type ElementSiblings struct {
	cur *Element
	dir Direction
}

func (n SyntaxNode) SiblingsWithTokens(dir Direction) *ElementSiblings {
	el := NodeElement(n)
	return &ElementSiblings{cur: &el, dir: dir}
}

func (t SyntaxToken) SiblingsWithTokens(dir Direction) *ElementSiblings {
	el := TokenElement(t)
	return &ElementSiblings{cur: &el, dir: dir}
}

func (it *ElementSiblings) Next() *Element {
	cur := it.cur
	if cur == nil {
		return nil
	}
	if it.dir == Next {
		it.cur = cur.NextSiblingOrToken()
	} else {
		it.cur = cur.PrevSiblingOrToken()
	}
	return cur
}

// Descendants iterates every node of the subtree in preorder, the node
// itself included.
type Descendants struct {
	pre *Preorder
}

func (n SyntaxNode) Descendants() *Descendants {
	return &Descendants{pre: n.Preorder()}
}

func (it *Descendants) Next() *SyntaxNode {
	for {
		ev, ok := it.pre.Next()
		if !ok {
			return nil
		}
		if ev.Enter {
			node := ev.Node
			return &node
		}
	}
}

// DescendantElements iterates every node and token of the subtree in
// preorder, the node itself included.
type DescendantElements struct {
	pre *PreorderWithTokens
}

func (n SyntaxNode) DescendantsWithTokens() *DescendantElements {
	return &DescendantElements{pre: n.PreorderWithTokens()}
}

func (it *DescendantElements) Next() *Element {
	for {
		ev, ok := it.pre.Next()
		if !ok {
			return nil
		}
		if ev.Enter {
			el := ev.Element
			return &el
		}
	}
}

// DescendantTokens iterates every token of the subtree in source order.
type DescendantTokens struct {
	pre *PreorderWithTokens
}

func (n SyntaxNode) DescendantTokens() *DescendantTokens {
	return &DescendantTokens{pre: n.PreorderWithTokens()}
}

func (it *DescendantTokens) Next() *SyntaxToken {
	for {
		ev, ok := it.pre.Next()
		if !ok {
			return nil
		}
		if ev.Enter {
			if t := ev.Element.Token(); t != nil {
				return t
			}
		}
	}
}
