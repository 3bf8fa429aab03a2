package green

// NodeCache deduplicates structurally identical green values so repeated
// constructs (a `;` token, an empty argument list) share one allocation
// across every tree built through it. Sharing is safe because green values
// never mutate.
//
// Buckets are keyed by structural hash and resolved by structural
// equality, the same scheme the string interner of a compiler front end
// uses. A cache is not safe for concurrent use; share one per builder
// pipeline, not per process.
type NodeCache struct {
	nodes  map[uint64][]*Node
	tokens map[uint64][]*Token
}

func NewNodeCache() *NodeCache {
	return &NodeCache{
		nodes:  make(map[uint64][]*Node),
		tokens: make(map[uint64][]*Token),
	}
}

// token returns the canonical token for (kind, text).
// Tokens carrying trivia bypass the cache: their piece lists make
// collisions rare enough that interning them is wasted bookkeeping.
func (c *NodeCache) token(kind Kind, text string) *Token {
	t := NewToken(kind, text)
	for _, existing := range c.tokens[t.hash] {
		if existing.Equal(t) {
			return existing
		}
	}
	c.tokens[t.hash] = append(c.tokens[t.hash], t)
	return t
}

// node returns the canonical node for (kind, slots).
func (c *NodeCache) node(kind Kind, slots []Slot) *Node {
	n := NewNode(kind, slots)
	for _, existing := range c.nodes[n.hash] {
		if existing.Equal(n) {
			return existing
		}
	}
	c.nodes[n.hash] = append(c.nodes[n.hash], n)
	return n
}
