package green

import (
	"encoding/binary"
	"fmt"
	"strings"

	"github.com/cespare/xxhash/v2"
)

type slotTag uint8

const (
	slotEmpty slotTag = iota
	slotNode
	slotToken
)

// Slot is one fixed child position of a node: a child node, a child token,
// or an explicit empty placeholder for a child the grammar expected but the
// parser could not produce.
type Slot struct {
	tag   slotTag
	rel   uint32 // start offset relative to the owning node, set by NewNode
	node  *Node
	token *Token
}

// NodeSlot returns a slot holding a child node.
func NodeSlot(n *Node) Slot {
	if n == nil {
		panic("green: nil node in slot")
	}
	return Slot{tag: slotNode, node: n}
}

// TokenSlot returns a slot holding a child token.
func TokenSlot(t *Token) Slot {
	if t == nil {
		panic("green: nil token in slot")
	}
	return Slot{tag: slotToken, token: t}
}

// EmptySlot returns the positional placeholder for a missing child.
func EmptySlot() Slot {
	return Slot{tag: slotEmpty}
}

func (s Slot) IsEmpty() bool {
	return s.tag == slotEmpty
}

// Node returns the child node, or nil if the slot holds a token or nothing.
func (s Slot) Node() *Node {
	return s.node
}

// Token returns the child token, or nil if the slot holds a node or nothing.
func (s Slot) Token() *Token {
	return s.token
}

// Len returns the text length the slot contributes to its node.
func (s Slot) Len() uint32 {
	switch s.tag {
	case slotNode:
		return s.node.textLen
	case slotToken:
		return s.token.TextLen()
	default:
		return 0
	}
}

// Rel returns the slot's start offset relative to the owning node's start.
func (s Slot) Rel() uint32 {
	return s.rel
}

func (s Slot) equal(other Slot) bool {
	if s.tag != other.tag {
		return false
	}
	switch s.tag {
	case slotNode:
		return s.node.Equal(other.node)
	case slotToken:
		return s.token.Equal(other.token)
	default:
		return true
	}
}

// Node is an immutable interior value of the green tree: a kind plus an
// ordered, fixed-length slot array. Position information lives in the red
// layer; a green node only knows its aggregate text length.
type Node struct {
	kind    Kind
	slots   []Slot
	textLen uint32
	hash    uint64
}

// NewNode seals a node over the given slots. The slice is copied; relative
// slot offsets are computed here.
func NewNode(kind Kind, slots []Slot) *Node {
	owned := make([]Slot, len(slots))
	copy(owned, slots)
	var textLen uint32
	for i := range owned {
		owned[i].rel = textLen
		textLen += owned[i].Len()
	}
	n := &Node{kind: kind, slots: owned, textLen: textLen}
	n.hash = n.computeHash()
	return n
}

func (n *Node) Kind() Kind {
	return n.kind
}

func (n *Node) NumSlots() int {
	return len(n.slots)
}

// Slot returns the slot at index i. It panics if i is out of range.
func (n *Node) Slot(i int) Slot {
	if i < 0 || i >= len(n.slots) {
		panic(fmt.Sprintf("green: slot index %d out of range for node with %d slots", i, len(n.slots)))
	}
	return n.slots[i]
}

// Slots returns the node's slot array. READONLY.
func (n *Node) Slots() []Slot {
	return n.slots
}

// TextLen returns the aggregate byte length of all descendant tokens.
func (n *Node) TextLen() uint32 {
	return n.textLen
}

// Text reconstructs the exact source text of the subtree, trivia included.
func (n *Node) Text() string {
	var sb strings.Builder
	sb.Grow(int(n.textLen))
	n.writeText(&sb)
	return sb.String()
}

func (n *Node) writeText(sb *strings.Builder) {
	for _, s := range n.slots {
		switch s.tag {
		case slotNode:
			s.node.writeText(sb)
		case slotToken:
			sb.WriteString(s.token.text)
		}
	}
}

// FirstToken returns the leftmost token of the subtree, or nil if the
// subtree contains no tokens.
func (n *Node) FirstToken() *Token {
	for _, s := range n.slots {
		switch s.tag {
		case slotToken:
			return s.token
		case slotNode:
			if t := s.node.FirstToken(); t != nil {
				return t
			}
		}
	}
	return nil
}

// LastToken returns the rightmost token of the subtree, or nil if the
// subtree contains no tokens.
func (n *Node) LastToken() *Token {
	for i := len(n.slots) - 1; i >= 0; i-- {
		s := n.slots[i]
		switch s.tag {
		case slotToken:
			return s.token
		case slotNode:
			if t := s.node.LastToken(); t != nil {
				return t
			}
		}
	}
	return nil
}

// Equal reports structural equality: kind and slots, recursively.
func (n *Node) Equal(other *Node) bool {
	if n == other {
		return true
	}
	if other == nil || n.kind != other.kind || n.hash != other.hash ||
		len(n.slots) != len(other.slots) {
		return false
	}
	for i := range n.slots {
		if !n.slots[i].equal(other.slots[i]) {
			return false
		}
	}
	return true
}

// Hash returns a structural hash consistent with Equal.
func (n *Node) Hash() uint64 {
	return n.hash
}

func (n *Node) computeHash() uint64 {
	d := xxhash.New()
	var buf [9]byte
	binary.LittleEndian.PutUint16(buf[:2], uint16(n.kind))
	d.Write(buf[:2])
	for _, s := range n.slots {
		buf[0] = byte(s.tag)
		switch s.tag {
		case slotNode:
			binary.LittleEndian.PutUint64(buf[1:9], s.node.hash)
			d.Write(buf[:9])
		case slotToken:
			binary.LittleEndian.PutUint64(buf[1:9], s.token.hash)
			d.Write(buf[:9])
		default:
			d.Write(buf[:1])
		}
	}
	return d.Sum64()
}
