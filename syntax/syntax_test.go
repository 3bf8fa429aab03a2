package syntax_test

import (
	"testing"

	"verdant/green"
	"verdant/minijs"
	"verdant/span"
	"verdant/syntax"
)

// buildFixture assembles the tree for "\n\t /**/let \t\ta = 10;".
func buildFixture() minijs.Node {
	b := minijs.NewBuilder()
	b.StartNode(minijs.Root)
	b.StartNode(minijs.VariableStatement)
	b.TokenWithTrivia(minijs.LetKw, "\n\t /**/let \t\t",
		[]green.TriviaPiece{green.Whitespace(3), green.Comments(4)},
		[]green.TriviaPiece{green.Whitespace(3)})
	b.StartNode(minijs.VariableDeclarator)
	b.TokenWithTrivia(minijs.Ident, "a ", nil, []green.TriviaPiece{green.Whitespace(1)})
	b.TokenWithTrivia(minijs.Eq, "= ", nil, []green.TriviaPiece{green.Whitespace(1)})
	b.Token(minijs.NumberLiteral, "10")
	b.FinishNode()
	b.Token(minijs.Semicolon, ";")
	b.FinishNode()
	b.FinishNode()
	return b.Finish()
}

const fixtureSource = "\n\t /**/let \t\ta = 10;"

func TestTextReconstruction(t *testing.T) {
	root := buildFixture()
	if got := root.Text(); got != fixtureSource {
		t.Fatalf("text = %q, want %q", got, fixtureSource)
	}
	if got := root.TextRange(); got != span.New(0, 20) {
		t.Fatalf("range = %s, want 0..20", got)
	}
	if got := root.TextTrimmedRange(); got != span.New(7, 20) {
		t.Fatalf("trimmed range = %s, want 7..20", got)
	}
	if got, want := root.TextTrimmed(), "let \t\ta = 10;"; got != want {
		t.Fatalf("trimmed text = %q, want %q", got, want)
	}
}

func TestKindNames(t *testing.T) {
	tests := []struct {
		kind minijs.SyntaxKind
		name string
	}{
		{minijs.LetKw, "LET_KW"},
		{minijs.NumberLiteral, "JS_NUMBER_LITERAL"},
		{minijs.UnknownStatement, "JS_UNKNOWN_STATEMENT"},
		{minijs.List, "LIST"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.name {
			t.Errorf("String(%d) = %q, want %q", tt.kind, got, tt.name)
		}
		back, ok := minijs.KindFromString(tt.name)
		if !ok || back != tt.kind {
			t.Errorf("KindFromString(%q) = %v, %v, want %v", tt.name, back, ok, tt.kind)
		}
	}
	if _, ok := minijs.KindFromString("NOT_A_KIND"); ok {
		t.Error("KindFromString accepted an unknown name")
	}
}

func TestTriviaPieces(t *testing.T) {
	root := buildFixture()
	let := root.FirstToken()
	if let == nil || let.Kind() != minijs.LetKw {
		t.Fatalf("first token = %v, want let", let)
	}

	leading := let.LeadingTrivia().Pieces()
	if len(leading) != 2 {
		t.Fatalf("leading pieces = %d, want 2", len(leading))
	}
	if !leading[0].IsWhitespace() || leading[0].Text() != "\n\t " {
		t.Fatalf("piece 0 = %v %q, want whitespace %q", leading[0].Kind(), leading[0].Text(), "\n\t ")
	}
	if !leading[1].IsComments() || leading[1].Text() != "/**/" {
		t.Fatalf("piece 1 = %v %q, want comment %q", leading[1].Kind(), leading[1].Text(), "/**/")
	}
	if got := leading[1].TextRange(); got != span.New(3, 7) {
		t.Fatalf("comment range = %s, want 3..7", got)
	}

	trailing := let.TrailingTrivia().Pieces()
	if len(trailing) != 1 || trailing[0].Text() != " \t\t" {
		t.Fatalf("trailing pieces = %v, want one whitespace %q", trailing, " \t\t")
	}
	if got := let.TrailingTrivia().TextRange(); got != span.New(10, 13) {
		t.Fatalf("trailing range = %s, want 10..13", got)
	}
}

func TestNavigation(t *testing.T) {
	root := buildFixture()
	stmt := root.FirstChild()
	if stmt == nil || stmt.Kind() != minijs.VariableStatement {
		t.Fatalf("first child = %v, want statement", stmt)
	}
	decl := stmt.FirstChild()
	if decl == nil || decl.Kind() != minijs.VariableDeclarator {
		t.Fatalf("declarator = %v", decl)
	}
	if got := decl.TextRange(); got != span.New(13, 19) {
		t.Fatalf("declarator range = %s, want 13..19", got)
	}

	var kinds []minijs.SyntaxKind
	it := decl.ChildrenWithTokens()
	for el := it.Next(); el != nil; el = it.Next() {
		kinds = append(kinds, el.Kind())
	}
	want := []minijs.SyntaxKind{minijs.Ident, minijs.Eq, minijs.NumberLiteral}
	if len(kinds) != len(want) {
		t.Fatalf("declarator children = %v, want %v", kinds, want)
	}
	for i := range want {
		if kinds[i] != want[i] {
			t.Fatalf("declarator children = %v, want %v", kinds, want)
		}
	}

	semi := stmt.LastToken()
	if semi.Kind() != minijs.Semicolon {
		t.Fatalf("last token = %v, want semicolon", semi.Kind())
	}
	if prev := semi.PrevToken(); prev == nil || prev.Kind() != minijs.NumberLiteral {
		t.Fatalf("token before semicolon = %v, want number", prev)
	}
	if next := semi.NextToken(); next != nil {
		t.Fatalf("token after semicolon = %v, want nil", next)
	}
}

func TestSiblingsSkipMissing(t *testing.T) {
	root := syntax.BuildNode[minijs.Language, minijs.SyntaxKind](
		minijs.VariableDeclarator, func(b *minijs.Builder) {
			b.Token(minijs.Ident, "a")
			b.Missing()
			b.Token(minijs.NumberLiteral, "10")
		})
	ident := root.FirstToken()
	next := ident.NextSiblingOrToken()
	if next == nil || next.Kind() != minijs.NumberLiteral {
		t.Fatalf("next sibling over missing slot = %v, want number", next)
	}
	if got := next.Index(); got != 2 {
		t.Fatalf("number slot = %d, want 2", got)
	}
	if el := root.ElementInSlot(1); el != nil {
		t.Fatalf("slot 1 = %v, want nil for missing child", el)
	}
}

func TestListView(t *testing.T) {
	var zero syntax.List[minijs.Language, minijs.SyntaxKind]
	if !zero.IsEmpty() || zero.Len() != 0 {
		t.Fatal("zero-value list is not empty")
	}

	root := syntax.BuildNode[minijs.Language, minijs.SyntaxKind](
		minijs.List, func(b *minijs.Builder) {
			b.StartNode(minijs.UnknownStatement)
			b.Token(minijs.Ident, "a")
			b.FinishNode()
			b.Missing()
			b.StartNode(minijs.UnknownStatement)
			b.Token(minijs.Ident, "b")
			b.FinishNode()
		})
	list, ok := root.IntoList()
	if !ok {
		t.Fatal("IntoList failed on a list-kind node")
	}
	if list.Len() != 3 || list.IsEmpty() {
		t.Fatalf("list len = %d, want 3", list.Len())
	}
	if first := list.First(); first == nil || first.Text() != "a" {
		t.Fatalf("first = %v, want %q", first, "a")
	}
	if last := list.Last(); last == nil || last.Text() != "b" {
		t.Fatalf("last = %v, want %q", last, "b")
	}

	var seen []bool // occupancy per slot
	iter := list.Iter()
	for el, ok := iter.Next(); ok; el, ok = iter.Next() {
		seen = append(seen, el != nil)
	}
	if len(seen) != 3 || !seen[0] || seen[1] || !seen[2] {
		t.Fatalf("slot occupancy = %v, want [true false true]", seen)
	}

	if _, ok := buildFixture().IntoList(); ok {
		t.Fatal("IntoList succeeded on a non-list node")
	}
}

func TestPreorderWalk(t *testing.T) {
	root := buildFixture()
	var enters []minijs.SyntaxKind
	pre := root.Preorder()
	for ev, ok := pre.Next(); ok; ev, ok = pre.Next() {
		if ev.Enter {
			enters = append(enters, ev.Node.Kind())
			if ev.Node.Kind() == minijs.VariableDeclarator {
				pre.SkipSubtree()
			}
		}
	}
	want := []minijs.SyntaxKind{minijs.Root, minijs.VariableStatement, minijs.VariableDeclarator}
	if len(enters) != len(want) {
		t.Fatalf("entered = %v, want %v", enters, want)
	}
	for i := range want {
		if enters[i] != want[i] {
			t.Fatalf("entered = %v, want %v", enters, want)
		}
	}
}

func TestDescendantTokens(t *testing.T) {
	root := buildFixture()
	var kinds []minijs.SyntaxKind
	it := root.DescendantTokens()
	for tok := it.Next(); tok != nil; tok = it.Next() {
		kinds = append(kinds, tok.Kind())
	}
	want := []minijs.SyntaxKind{
		minijs.LetKw, minijs.Ident, minijs.Eq, minijs.NumberLiteral, minijs.Semicolon,
	}
	if len(kinds) != len(want) {
		t.Fatalf("descendant tokens = %v, want %v", kinds, want)
	}
	for i := range want {
		if kinds[i] != want[i] {
			t.Fatalf("descendant tokens = %v, want %v", kinds, want)
		}
	}
}

func TestQueries(t *testing.T) {
	root := buildFixture()

	res := root.TokenAtOffset(8)
	if res.Kind() != syntax.TokenAtOffsetSingle || res.Token().Kind() != minijs.LetKw {
		t.Fatalf("token at 8 = %v, want single let", res.Kind())
	}

	res = root.TokenAtOffset(13)
	if res.Kind() != syntax.TokenAtOffsetBetween {
		t.Fatalf("token at 13 = %v, want between", res.Kind())
	}
	if res.Left().Kind() != minijs.LetKw || res.Right().Kind() != minijs.Ident {
		t.Fatalf("boundary = %v / %v, want let / ident", res.Left().Kind(), res.Right().Kind())
	}

	el := root.CoveringElement(span.New(13, 14))
	if tok := el.Token(); tok == nil || tok.Kind() != minijs.Ident {
		t.Fatalf("covering 13..14 = %v, want ident token", el.Kind())
	}
	el = root.CoveringElement(span.New(14, 18))
	if el.Node() == nil || el.Kind() != minijs.VariableDeclarator {
		t.Fatalf("covering 14..18 = %v, want declarator", el.Kind())
	}

	stmt := root.FirstChild()
	child := stmt.ChildOrTokenAtRange(span.New(17, 19))
	if child == nil || child.Kind() != minijs.VariableDeclarator {
		t.Fatalf("child at 17..19 = %v, want declarator", child)
	}
}

func TestDump(t *testing.T) {
	want := `0: JS_ROOT@0..20
  0: JS_VARIABLE_STATEMENT@0..20
    0: LET_KW@0..13 "let" [Whitespace("\n\t "), Comments("/**/")] [Whitespace(" \t\t")]
    1: JS_VARIABLE_DECLARATOR@13..19
      0: IDENT@13..15 "a" [] [Whitespace(" ")]
      1: EQ@15..17 "=" [] [Whitespace(" ")]
      2: JS_NUMBER_LITERAL@17..19 "10" [] []
    2: SEMICOLON@19..20 ";" [] []
`
	if got := buildFixture().Dump(); got != want {
		t.Fatalf("dump mismatch\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestDumpMissingSlot(t *testing.T) {
	root := syntax.BuildNode[minijs.Language, minijs.SyntaxKind](
		minijs.VariableDeclarator, func(b *minijs.Builder) {
			b.Token(minijs.Ident, "a")
			b.Missing()
		})
	want := `0: JS_VARIABLE_DECLARATOR@0..1
  0: IDENT@0..1 "a" [] []
  1: (empty)
`
	if got := root.Dump(); got != want {
		t.Fatalf("dump mismatch\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestCloneForUpdateAndDetach(t *testing.T) {
	orig := buildFixture()
	root := orig.CloneForUpdate()
	if !root.Mutable() || orig.Mutable() {
		t.Fatal("mutability flags wrong after CloneForUpdate")
	}

	stmt := root.FirstChild()
	decl := stmt.FirstChild()
	decl.Detach()

	if got, want := root.Text(), "\n\t /**/let \t\t;"; got != want {
		t.Fatalf("text after detach = %q, want %q", got, want)
	}
	if stmt.NumSlots() != 3 {
		t.Fatalf("statement slots = %d, want 3 (slot emptied, not removed)", stmt.NumSlots())
	}
	if el := stmt.ElementInSlot(1); el != nil {
		t.Fatalf("slot 1 after detach = %v, want empty", el)
	}
	if decl.Parent() != nil {
		t.Fatal("detached node still has a parent")
	}
	// The source tree is untouched.
	if got := orig.Text(); got != fixtureSource {
		t.Fatalf("original text = %q, want %q", got, fixtureSource)
	}
}

func TestDetachFromList(t *testing.T) {
	list := syntax.BuildNode[minijs.Language, minijs.SyntaxKind](
		minijs.List, func(b *minijs.Builder) {
			b.StartNode(minijs.UnknownStatement)
			b.Token(minijs.Ident, "a")
			b.FinishNode()
			b.StartNode(minijs.UnknownStatement)
			b.Token(minijs.Ident, "b")
			b.FinishNode()
		}).CloneForUpdate()

	list.FirstChild().Detach()

	if got := list.NumSlots(); got != 1 {
		t.Fatalf("list slots after detach = %d, want 1", got)
	}
	if got := list.Text(); got != "b" {
		t.Fatalf("list text after detach = %q, want %q", got, "b")
	}
	remaining := list.FirstChild()
	if got := remaining.Index(); got != 0 {
		t.Fatalf("remaining child index = %d, want 0", got)
	}
}

func TestSpliceChildren(t *testing.T) {
	list := syntax.BuildNode[minijs.Language, minijs.SyntaxKind](
		minijs.List, func(b *minijs.Builder) {
			b.StartNode(minijs.UnknownStatement)
			b.Token(minijs.Ident, "a")
			b.FinishNode()
			b.StartNode(minijs.UnknownStatement)
			b.Token(minijs.Ident, "b")
			b.FinishNode()
		}).CloneForUpdate()

	replacement := syntax.BuildNode[minijs.Language, minijs.SyntaxKind](
		minijs.UnknownStatement, func(b *minijs.Builder) {
			b.Token(minijs.Ident, "c")
		})
	list.SpliceChildren(1, 2, []minijs.Element{syntax.NodeElement(replacement)})

	if got := list.Text(); got != "ac" {
		t.Fatalf("list text after splice = %q, want %q", got, "ac")
	}
	if got := list.NumSlots(); got != 2 {
		t.Fatalf("list slots after splice = %d, want 2", got)
	}
}

func TestCloneSubtreeIndependence(t *testing.T) {
	mutable := buildFixture().CloneForUpdate()
	decl := mutable.FirstChild().FirstChild()
	snapshot := decl.CloneSubtree()

	decl.Detach()

	if got, want := snapshot.Text(), "a = 10"; got != want {
		t.Fatalf("snapshot text = %q, want %q", got, want)
	}
	if got := snapshot.TextRange(); got != span.New(0, 6) {
		t.Fatalf("snapshot range = %s, want rebased 0..6", got)
	}
	if snapshot.Mutable() {
		t.Fatal("CloneSubtree returned a mutable tree")
	}
}

func TestRawLanguage(t *testing.T) {
	root := syntax.BuildNode[syntax.RawLanguage, green.Kind](
		green.Kind(42), func(b *syntax.Builder[syntax.RawLanguage, green.Kind]) {
			b.Token(green.Kind(7), "x")
		})
	if got := root.Kind(); got != green.Kind(42) {
		t.Fatalf("raw kind = %v, want 42", got)
	}
	if got := root.FirstToken().Kind(); got != green.Kind(7) {
		t.Fatalf("raw token kind = %v, want 7", got)
	}
}
