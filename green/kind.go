package green

import "fmt"

// Kind is a raw, grammar-agnostic syntax kind tag. A grammar maps it to
// and from its own typed enum through the syntax.Language capability; this
// package only carries it.
type Kind uint16

func (k Kind) String() string {
	return fmt.Sprintf("Kind(%d)", uint16(k))
}
