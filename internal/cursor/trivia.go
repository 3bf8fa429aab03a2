package cursor

import (
	"verdant/green"
	"verdant/span"
)

type triviaSide uint8

const (
	leadingSide triviaSide = iota
	trailingSide
)

// Trivia is one side of a token's trivia: a view over the corresponding
// slice of the token's own text.
type Trivia struct {
	token *tokenData
	side  triviaSide
}

func (tr Trivia) pieces() []green.TriviaPiece {
	if tr.side == leadingSide {
		return tr.token.green.LeadingPieces()
	}
	return tr.token.green.TrailingPieces()
}

// Text returns the trivia side's text, sliced out of the token text.
func (tr Trivia) Text() string {
	g := tr.token.green
	if tr.side == leadingSide {
		return g.Text()[:g.LeadingLen()]
	}
	return g.Text()[g.TextLen()-g.TrailingLen():]
}

// Len returns the trivia side's byte length.
func (tr Trivia) Len() uint32 {
	g := tr.token.green
	if tr.side == leadingSide {
		return g.LeadingLen()
	}
	return g.TrailingLen()
}

// TextRange returns the absolute span of the trivia side.
func (tr Trivia) TextRange() span.Span {
	g := tr.token.green
	start := tr.token.startOffset()
	if tr.side == leadingSide {
		return span.At(start, g.LeadingLen())
	}
	return span.At(start+g.TextLen()-g.TrailingLen(), g.TrailingLen())
}

// Pieces returns the piece views, anchored at increasing absolute offsets.
func (tr Trivia) Pieces() []Piece {
	pieces := tr.pieces()
	if len(pieces) == 0 {
		return nil
	}
	out := make([]Piece, len(pieces))
	offset := tr.TextRange().Start
	for i, p := range pieces {
		out[i] = Piece{trivia: tr, offset: offset, piece: p}
		offset += p.Len()
	}
	return out
}

// Piece is one whitespace run or comment inside a Trivia view.
type Piece struct {
	trivia Trivia
	offset uint32 // absolute
	piece  green.TriviaPiece
}

func (p Piece) Kind() green.TriviaPieceKind {
	return p.piece.Kind()
}

func (p Piece) Len() uint32 {
	return p.piece.Len()
}

// Text slices this piece's bytes out of the trivia blob; no copy beyond
// the string header.
func (p Piece) Text() string {
	rel := p.offset - p.trivia.TextRange().Start
	return p.trivia.Text()[rel : rel+p.piece.Len()]
}

func (p Piece) TextRange() span.Span {
	return span.At(p.offset, p.piece.Len())
}
