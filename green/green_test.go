package green

import (
	"testing"

	"golang.org/x/sync/errgroup"
)

func TestTriviaPiece(t *testing.T) {
	tests := []struct {
		name         string
		piece        TriviaPiece
		length       uint32
		isWhitespace bool
	}{
		{name: "whitespace", piece: Whitespace(3), length: 3, isWhitespace: true},
		{name: "comments", piece: Comments(4), length: 4, isWhitespace: false},
		{name: "zero length whitespace", piece: Whitespace(0), length: 0, isWhitespace: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.piece.Len() != tt.length {
				t.Errorf("Len() = %d, want %d", tt.piece.Len(), tt.length)
			}
			if tt.piece.IsWhitespace() != tt.isWhitespace {
				t.Errorf("IsWhitespace() = %v, want %v", tt.piece.IsWhitespace(), tt.isWhitespace)
			}
			if tt.piece.IsComments() == tt.isWhitespace {
				t.Errorf("IsComments() = %v, want %v", tt.piece.IsComments(), !tt.isWhitespace)
			}
		})
	}
}

func TestNewTokenWithTrivia(t *testing.T) {
	tok := NewTokenWithTrivia(1, "\n\t /**/let \t\t",
		[]TriviaPiece{Whitespace(3), Comments(4)},
		[]TriviaPiece{Whitespace(3)},
	)
	if tok.TextLen() != 13 {
		t.Errorf("TextLen() = %d, want 13", tok.TextLen())
	}
	if tok.TextTrimmed() != "let" {
		t.Errorf("TextTrimmed() = %q, want %q", tok.TextTrimmed(), "let")
	}
	if tok.LeadingLen() != 7 || tok.TrailingLen() != 3 {
		t.Errorf("trivia lens = %d/%d, want 7/3", tok.LeadingLen(), tok.TrailingLen())
	}
	if len(tok.LeadingPieces()) != 2 || len(tok.TrailingPieces()) != 1 {
		t.Errorf("piece counts = %d/%d, want 2/1",
			len(tok.LeadingPieces()), len(tok.TrailingPieces()))
	}
}

func TestNewTokenWithTrivia_LengthMismatchPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for trivia exceeding token text")
		}
	}()
	NewTokenWithTrivia(1, "let", []TriviaPiece{Whitespace(2)}, []TriviaPiece{Whitespace(2)})
}

func TestNode_TextLenIsSlotSum(t *testing.T) {
	let := NewTokenWithTrivia(1, "let ", nil, []TriviaPiece{Whitespace(1)})
	name := NewToken(2, "a")
	inner := NewNode(10, []Slot{TokenSlot(name)})
	node := NewNode(11, []Slot{TokenSlot(let), EmptySlot(), NodeSlot(inner)})

	var sum uint32
	for _, s := range node.Slots() {
		sum += s.Len()
	}
	if node.TextLen() != sum {
		t.Errorf("TextLen() = %d, slot sum = %d", node.TextLen(), sum)
	}
	if node.TextLen() != 5 {
		t.Errorf("TextLen() = %d, want 5", node.TextLen())
	}
	if node.Text() != "let a" {
		t.Errorf("Text() = %q, want %q", node.Text(), "let a")
	}
	// Relative slot offsets skip nothing: the empty slot is zero-width.
	if node.Slot(1).Rel() != 4 || node.Slot(2).Rel() != 4 {
		t.Errorf("slot offsets = %d/%d, want 4/4", node.Slot(1).Rel(), node.Slot(2).Rel())
	}
}

func TestNode_SlotOutOfRangePanics(t *testing.T) {
	node := NewNode(1, []Slot{TokenSlot(NewToken(2, "x"))})
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for out-of-range slot index")
		}
	}()
	node.Slot(1)
}

func TestBuilder_RoundTrip(t *testing.T) {
	b := NewBuilder()
	b.StartNode(1)
	b.TokenWithTrivia(2, "\n\t let \t\t", []TriviaPiece{Whitespace(3)}, []TriviaPiece{Whitespace(3)})
	b.StartNode(3)
	b.Token(4, "a")
	b.FinishNode()
	b.Missing()
	b.Token(5, "; \t\t")
	b.FinishNode()
	root := b.Finish()

	if got := root.Text(); got != "\n\t let \t\ta; \t\t" {
		t.Errorf("Text() = %q, want %q", got, "\n\t let \t\ta; \t\t")
	}
	if root.NumSlots() != 4 {
		t.Errorf("NumSlots() = %d, want 4", root.NumSlots())
	}
	if !root.Slot(2).IsEmpty() {
		t.Error("slot 2 should be empty")
	}
	if root.FirstToken().Kind() != 2 || root.LastToken().Kind() != 5 {
		t.Errorf("first/last token kinds = %v/%v, want 2/5",
			root.FirstToken().Kind(), root.LastToken().Kind())
	}
}

func TestBuilder_UnbalancedPanics(t *testing.T) {
	t.Run("finish without start", func(t *testing.T) {
		defer func() {
			if recover() == nil {
				t.Fatal("expected panic")
			}
		}()
		NewBuilder().FinishNode()
	})
	t.Run("token outside node", func(t *testing.T) {
		defer func() {
			if recover() == nil {
				t.Fatal("expected panic")
			}
		}()
		NewBuilder().Token(1, "x")
	})
	t.Run("finish with open frame", func(t *testing.T) {
		defer func() {
			if recover() == nil {
				t.Fatal("expected panic")
			}
		}()
		b := NewBuilder()
		b.StartNode(1)
		b.Finish()
	})
}

func TestNodeCache_DeduplicatesSubtrees(t *testing.T) {
	cache := NewNodeCache()

	build := func() *Node {
		b := NewBuilderWithCache(cache)
		b.StartNode(1)
		b.StartNode(2)
		b.Token(3, ";")
		b.FinishNode()
		b.StartNode(2)
		b.Token(3, ";")
		b.FinishNode()
		b.FinishNode()
		return b.Finish()
	}

	root := build()
	if root.Slot(0).Node() != root.Slot(1).Node() {
		t.Error("identical sibling subtrees should share one green node")
	}
	other := build()
	if root != other {
		t.Error("identical trees from a shared cache should share the root")
	}
}

func TestNode_StructuralEquality(t *testing.T) {
	make2 := func() *Node {
		return NewNode(1, []Slot{
			TokenSlot(NewTokenWithTrivia(2, " x", []TriviaPiece{Whitespace(1)}, nil)),
			EmptySlot(),
		})
	}
	a, b := make2(), make2()
	if !a.Equal(b) {
		t.Error("structurally identical nodes must be Equal")
	}
	if a.Hash() != b.Hash() {
		t.Error("structurally identical nodes must hash alike")
	}
	c := NewNode(1, []Slot{TokenSlot(NewToken(2, " x")), EmptySlot()})
	if a.Equal(c) {
		t.Error("nodes differing in trivia pieces must not be Equal")
	}
}

func TestNode_ConcurrentReads(t *testing.T) {
	b := NewBuilder()
	b.StartNode(1)
	for i := 0; i < 100; i++ {
		b.StartNode(2)
		b.TokenWithTrivia(3, " x", []TriviaPiece{Whitespace(1)}, nil)
		b.FinishNode()
	}
	b.FinishNode()
	root := b.Finish()
	want := root.Text()

	var g errgroup.Group
	for i := 0; i < 8; i++ {
		g.Go(func() error {
			for j := 0; j < 50; j++ {
				if root.Text() != want {
					t.Error("concurrent read returned different text")
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		t.Fatal(err)
	}
}
