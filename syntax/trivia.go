package syntax

import (
	"verdant/green"
	"verdant/internal/cursor"
	"verdant/span"
)

// Trivia is one side of a token's trivia: a view over the corresponding
// slice of the token's own text. Trivia carries no grammar kinds, so the
// view is not generic.
type Trivia struct {
	raw cursor.Trivia
}

func wrapTrivia(tr *cursor.Trivia) *Trivia {
	if tr == nil {
		return nil
	}
	return &Trivia{raw: *tr}
}

// Text returns the trivia side's text, sliced out of the token text.
func (tr Trivia) Text() string {
	return tr.raw.Text()
}

// Len returns the trivia side's byte length.
func (tr Trivia) Len() uint32 {
	return tr.raw.Len()
}

// TextRange returns the absolute span of the trivia side.
func (tr Trivia) TextRange() span.Span {
	return tr.raw.TextRange()
}

// Pieces returns the piece views, anchored at increasing absolute
// offsets.
func (tr Trivia) Pieces() []Piece {
	raw := tr.raw.Pieces()
	if raw == nil {
		return nil
	}
	out := make([]Piece, len(raw))
	for i, p := range raw {
		out[i] = Piece{raw: p}
	}
	return out
}

// Piece is one whitespace run or comment inside a Trivia view.
type Piece struct {
	raw cursor.Piece
}

func (p Piece) Kind() green.TriviaPieceKind {
	return p.raw.Kind()
}

func (p Piece) IsWhitespace() bool {
	return p.raw.Kind() == green.TriviaWhitespace
}

func (p Piece) IsComments() bool {
	return p.raw.Kind() == green.TriviaComments
}

func (p Piece) Len() uint32 {
	return p.raw.Len()
}

// Text slices this piece's bytes out of the owning token's text.
func (p Piece) Text() string {
	return p.raw.Text()
}

func (p Piece) TextRange() span.Span {
	return p.raw.TextRange()
}
