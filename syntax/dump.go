package syntax

import (
	"fmt"
	"strings"
)

// Dump renders the subtree for debugging: one line per slot in preorder,
// two-space indent per depth. Nodes print as "slot: KIND@start..end";
// tokens add the trimmed text and both trivia piece lists; empty slots
// print as "slot: (empty)".
func (n Node[L, K]) Dump() string {
	var sb strings.Builder
	depth := 0
	it := n.raw.PreorderSlots()
	for ev, ok := it.Next(); ok; ev, ok = it.Next() {
		if !ev.Enter {
			depth--
			continue
		}
		for i := 0; i < depth; i++ {
			sb.WriteString("  ")
		}
		switch {
		case ev.Element == nil:
			fmt.Fprintf(&sb, "%d: (empty)\n", ev.Slot)
		case ev.Element.Token() != nil:
			t := Token[L, K]{raw: *ev.Element.Token()}
			fmt.Fprintf(&sb, "%d: %v@%s %q %s %s\n",
				ev.Slot, t.Kind(), t.TextRange(), t.TextTrimmed(),
				dumpPieces(t.LeadingTrivia()), dumpPieces(t.TrailingTrivia()))
		default:
			nd := Node[L, K]{raw: *ev.Element.Node()}
			fmt.Fprintf(&sb, "%d: %v@%s\n", ev.Slot, nd.Kind(), nd.TextRange())
			depth++
		}
	}
	if depth != 0 {
		panic(fmt.Sprintf("syntax: dump nesting off by %d", depth))
	}
	return sb.String()
}

const dumpPieceTextMax = 25

func dumpPieces(tr Trivia) string {
	pieces := tr.Pieces()
	if len(pieces) == 0 {
		return "[]"
	}
	parts := make([]string, len(pieces))
	for i, p := range pieces {
		text := p.Text()
		if len(text) > dumpPieceTextMax {
			text = text[:dumpPieceTextMax] + "..."
		}
		parts[i] = fmt.Sprintf("%s(%q)", p.Kind(), text)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
