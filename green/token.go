package green

import (
	"encoding/binary"
	"fmt"

	"fortio.org/safecast"
	"github.com/cespare/xxhash/v2"
)

// Token is an immutable leaf of the green tree. Its text covers every byte
// between the end of the previous token and the start of the next one:
// leading trivia, the token's own ("trimmed") text, trailing trivia.
type Token struct {
	kind        Kind
	text        string
	leading     []TriviaPiece
	trailing    []TriviaPiece
	leadingLen  uint32
	trailingLen uint32
	hash        uint64
}

// NewToken returns a token with no attached trivia.
func NewToken(kind Kind, text string) *Token {
	return NewTokenWithTrivia(kind, text, nil, nil)
}

// NewTokenWithTrivia returns a token whose text begins with the leading
// pieces and ends with the trailing pieces. The piece lengths must fit
// inside the text with the trimmed token text in between; a mismatch is a
// caller bug and panics.
func NewTokenWithTrivia(kind Kind, text string, leading, trailing []TriviaPiece) *Token {
	textLen, err := safecast.Conv[uint32](len(text))
	if err != nil {
		panic(fmt.Errorf("green: token text overflow: %w", err))
	}
	leadingLen := PiecesLen(leading)
	trailingLen := PiecesLen(trailing)
	if leadingLen+trailingLen > textLen {
		panic(fmt.Sprintf(
			"green: trivia pieces cover %d+%d bytes but token text %q has only %d",
			leadingLen, trailingLen, text, textLen,
		))
	}
	t := &Token{
		kind:        kind,
		text:        text,
		leading:     cloneTrivia(leading),
		trailing:    cloneTrivia(trailing),
		leadingLen:  leadingLen,
		trailingLen: trailingLen,
	}
	t.hash = t.computeHash()
	return t
}

func cloneTrivia(pieces []TriviaPiece) []TriviaPiece {
	if len(pieces) == 0 {
		return nil
	}
	out := make([]TriviaPiece, len(pieces))
	copy(out, pieces)
	return out
}

func (t *Token) Kind() Kind {
	return t.kind
}

// Text returns the token's full text, trivia included.
func (t *Token) Text() string {
	return t.text
}

// TextTrimmed returns the token's own text with both trivia sides removed.
func (t *Token) TextTrimmed() string {
	return t.text[t.leadingLen : uint32(len(t.text))-t.trailingLen]
}

// TextLen returns the full byte length of the token, trivia included.
func (t *Token) TextLen() uint32 {
	return uint32(len(t.text))
}

func (t *Token) LeadingLen() uint32 {
	return t.leadingLen
}

func (t *Token) TrailingLen() uint32 {
	return t.trailingLen
}

// LeadingPieces returns the leading trivia piece descriptors. READONLY.
func (t *Token) LeadingPieces() []TriviaPiece {
	return t.leading
}

// TrailingPieces returns the trailing trivia piece descriptors. READONLY.
func (t *Token) TrailingPieces() []TriviaPiece {
	return t.trailing
}

// Equal reports structural equality: kind, text, and trivia pieces.
func (t *Token) Equal(other *Token) bool {
	if t == other {
		return true
	}
	if other == nil || t.kind != other.kind || t.text != other.text {
		return false
	}
	return triviaEqual(t.leading, other.leading) && triviaEqual(t.trailing, other.trailing)
}

func triviaEqual(a, b []TriviaPiece) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Hash returns a structural hash consistent with Equal.
func (t *Token) Hash() uint64 {
	return t.hash
}

func (t *Token) computeHash() uint64 {
	d := xxhash.New()
	var buf [8]byte
	binary.LittleEndian.PutUint16(buf[:2], uint16(t.kind))
	d.Write(buf[:2])
	d.WriteString(t.text)
	for _, side := range [2][]TriviaPiece{t.leading, t.trailing} {
		for _, p := range side {
			buf[0] = byte(p.kind)
			binary.LittleEndian.PutUint32(buf[1:5], p.length)
			d.Write(buf[:5])
		}
		buf[0] = 0xff // side separator
		d.Write(buf[:1])
	}
	return d.Sum64()
}
