// Package minijs is a small JS-flavored grammar used by the CLI and the
// tests. It exercises the typed facade end to end: a kind enum, the
// Language capability, and handy aliases for the generic types. The tree
// engine itself never looks inside these kinds.
package minijs

import (
	"verdant/green"
	"verdant/syntax"
)

// SyntaxKind enumerates the grammar's node and token kinds. Unknown
// kinds come out of error recovery and are carried opaquely.
type SyntaxKind uint16

const (
	Unknown SyntaxKind = iota
	LetKw
	Ident
	Eq
	Semicolon
	NumberLiteral
	VariableStatement
	VariableDeclarator
	UnknownStatement
	List
	Root
)

var kindNames = [...]string{
	Unknown:            "UNKNOWN",
	LetKw:              "LET_KW",
	Ident:              "IDENT",
	Eq:                 "EQ",
	Semicolon:          "SEMICOLON",
	NumberLiteral:      "JS_NUMBER_LITERAL",
	VariableStatement:  "JS_VARIABLE_STATEMENT",
	VariableDeclarator: "JS_VARIABLE_DECLARATOR",
	UnknownStatement:   "JS_UNKNOWN_STATEMENT",
	List:               "LIST",
	Root:               "JS_ROOT",
}

func (k SyntaxKind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "UNKNOWN"
}

// KindFromString resolves a kind by its display name. It fails for names
// outside the inventory.
func KindFromString(name string) (SyntaxKind, bool) {
	for k, n := range kindNames {
		if n == name {
			return SyntaxKind(k), true
		}
	}
	return Unknown, false
}

// Language binds SyntaxKind to the raw tree.
type Language struct{}

func (Language) KindFromRaw(raw green.Kind) SyntaxKind {
	if int(raw) >= len(kindNames) {
		return Unknown
	}
	return SyntaxKind(raw)
}

func (Language) KindToRaw(kind SyntaxKind) green.Kind {
	return green.Kind(kind)
}

func (Language) ListKind() SyntaxKind {
	return List
}

// Aliases so callers write minijs.Node instead of the full generic form.
type (
	Node    = syntax.Node[Language, SyntaxKind]
	Token   = syntax.Token[Language, SyntaxKind]
	Element = syntax.Element[Language, SyntaxKind]
	Builder = syntax.Builder[Language, SyntaxKind]
)

// NewRoot wraps a green tree as a typed root node.
func NewRoot(g *green.Node) Node {
	return syntax.Root[Language, SyntaxKind](g)
}

// NewBuilder returns a builder producing minijs trees.
func NewBuilder() *Builder {
	return syntax.NewBuilder[Language, SyntaxKind]()
}
