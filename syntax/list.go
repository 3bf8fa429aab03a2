package syntax

// List is a node of the grammar's list kind viewed as a sequence of
// slots. The zero value is a valid empty list with no underlying node.
type List[L Language[K], K Kind] struct {
	node *Node[L, K]
}

// IntoList views the node as a list. It fails when the node's kind is
// not the grammar's list kind.
func (n Node[L, K]) IntoList() (List[L, K], bool) {
	if n.raw.Kind() != rawListKind[L, K]() {
		return List[L, K]{}, false
	}
	return List[L, K]{node: &n}, true
}

// Node returns the underlying list node, nil for the zero-value list.
func (l List[L, K]) Node() *Node[L, K] {
	return l.node
}

// Len returns the slot count, empty slots included.
func (l List[L, K]) Len() int {
	if l.node == nil {
		return 0
	}
	return l.node.NumSlots()
}

func (l List[L, K]) IsEmpty() bool {
	return l.Len() == 0
}

// First returns the element in the first slot, nil when the list is
// empty or the slot is.
func (l List[L, K]) First() *Element[L, K] {
	if l.Len() == 0 {
		return nil
	}
	return l.node.ElementInSlot(0)
}

// Last returns the element in the last slot, nil when the list is empty
// or the slot is.
func (l List[L, K]) Last() *Element[L, K] {
	n := l.Len()
	if n == 0 {
		return nil
	}
	return l.node.ElementInSlot(n - 1)
}

// Iter returns a slot-order iterator over the list.
func (l List[L, K]) Iter() *ListIter[L, K] {
	return &ListIter[L, K]{list: l}
}

// ListIter yields one entry per slot, in order. An empty slot yields a
// nil element with ok still true; ok turns false only at the end.
type ListIter[L Language[K], K Kind] struct {
	list List[L, K]
	next int
}

func (it *ListIter[L, K]) Next() (*Element[L, K], bool) {
	if it.next >= it.list.Len() {
		return nil, false
	}
	el := it.list.node.ElementInSlot(it.next)
	it.next++
	return el, true
}
