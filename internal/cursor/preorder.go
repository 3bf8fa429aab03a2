package cursor

// NodeEvent is one step of a node-level preorder walk. Every node is
// reported twice: Enter on the way down, Leave on the way up.
type NodeEvent struct {
	Enter bool
	Node  SyntaxNode
}

// Preorder walks the subtree rooted at a node, the node included,
// yielding Enter/Leave events. The walk is finite and restartable by
// creating a new one.
type Preorder struct {
	root SyntaxNode
	next *NodeEvent
}

func (n SyntaxNode) Preorder() *Preorder {
	return &Preorder{root: n, next: &NodeEvent{Enter: true, Node: n}}
}

func (p *Preorder) Next() (NodeEvent, bool) {
	if p.next == nil {
		return NodeEvent{}, false
	}
	ev := *p.next
	p.next = p.advance(ev)
	return ev, true
}

func (p *Preorder) advance(ev NodeEvent) *NodeEvent {
	if ev.Enter {
		if c := ev.Node.FirstChild(); c != nil {
			return &NodeEvent{Enter: true, Node: *c}
		}
		return &NodeEvent{Node: ev.Node}
	}
	if ev.Node.Equal(p.root) {
		return nil
	}
	if s := ev.Node.NextSibling(); s != nil {
		return &NodeEvent{Enter: true, Node: *s}
	}
	return &NodeEvent{Node: *ev.Node.Parent()}
}

// SkipSubtree prunes the children of the node whose Enter event was just
// returned; the walk continues with that node's Leave event.
func (p *Preorder) SkipSubtree() {
	if p.next == nil || !p.next.Enter {
		return
	}
	parent := p.next.Node.Parent()
	if parent == nil {
		p.next = nil
		return
	}
	p.next = &NodeEvent{Node: *parent}
}

// ElementEvent is one step of an element-level preorder walk.
type ElementEvent struct {
	Enter   bool
	Element Element
}

// PreorderWithTokens is Preorder extended to report tokens.
type PreorderWithTokens struct {
	root Element
	next *ElementEvent
}

func (n SyntaxNode) PreorderWithTokens() *PreorderWithTokens {
	el := NodeElement(n)
	return &PreorderWithTokens{root: el, next: &ElementEvent{Enter: true, Element: el}}
}

func (p *PreorderWithTokens) Next() (ElementEvent, bool) {
	if p.next == nil {
		return ElementEvent{}, false
	}
	ev := *p.next
	p.next = p.advance(ev)
	return ev, true
}

func (p *PreorderWithTokens) advance(ev ElementEvent) *ElementEvent {
	if ev.Enter {
		if n := ev.Element.Node(); n != nil {
			if c := n.FirstChildOrToken(); c != nil {
				return &ElementEvent{Enter: true, Element: *c}
			}
		}
		return &ElementEvent{Element: ev.Element}
	}
	if ev.Element.Equal(p.root) {
		return nil
	}
	if s := ev.Element.NextSiblingOrToken(); s != nil {
		return &ElementEvent{Enter: true, Element: *s}
	}
	parent := ev.Element.Parent()
	return &ElementEvent{Element: NodeElement(*parent)}
}

// SkipSubtree prunes the children of the element whose Enter event was
// just returned.
func (p *PreorderWithTokens) SkipSubtree() {
	if p.next == nil || !p.next.Enter {
		return
	}
	parent := p.next.Element.Parent()
	if parent == nil {
		p.next = nil
		return
	}
	p.next = &ElementEvent{Element: NodeElement(*parent)}
}

// SlotEvent is one step of a slot-level preorder walk. Unlike the element
// walks above it reports empty slots too: Element is nil for those. Nodes
// get an Enter and a Leave event; tokens and empty slots get Enter only.
type SlotEvent struct {
	Enter   bool
	Slot    uint32
	Element *Element
}

// PreorderSlots walks every slot of the subtree in preorder, empty slots
// included. The root itself is reported first, with its slot index in its
// own parent (0 for a true root).
type PreorderSlots struct {
	stack []slotFrame
}

type slotFrame struct {
	node SyntaxNode
	next int // next slot to visit, -1 before the node's own Enter
}

func (n SyntaxNode) PreorderSlots() *PreorderSlots {
	return &PreorderSlots{stack: []slotFrame{{node: n, next: -1}}}
}

func (p *PreorderSlots) Next() (SlotEvent, bool) {
	for len(p.stack) > 0 {
		top := &p.stack[len(p.stack)-1]
		if top.next < 0 {
			top.next = 0
			el := NodeElement(top.node)
			return SlotEvent{Enter: true, Slot: top.node.Index(), Element: &el}, true
		}
		if top.next >= top.node.NumSlots() {
			el := NodeElement(top.node)
			p.stack = p.stack[:len(p.stack)-1]
			return SlotEvent{Slot: top.node.Index(), Element: &el}, true
		}
		slot := top.next
		top.next++
		el := top.node.ElementInSlot(slot)
		if el == nil {
			return SlotEvent{Enter: true, Slot: uint32(slot)}, true
		}
		if c := el.Node(); c != nil {
			p.stack = append(p.stack, slotFrame{node: *c, next: 0})
		}
		return SlotEvent{Enter: true, Slot: uint32(slot), Element: el}, true
	}
	return SlotEvent{}, false
}
