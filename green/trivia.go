package green

// TriviaPieceKind distinguishes the two trivia variants.
type TriviaPieceKind uint8

const (
	// TriviaWhitespace is a run of whitespace bytes.
	TriviaWhitespace TriviaPieceKind = iota
	// TriviaComments is one complete comment.
	TriviaComments
)

func (k TriviaPieceKind) String() string {
	switch k {
	case TriviaWhitespace:
		return "Whitespace"
	case TriviaComments:
		return "Comments"
	default:
		return "TriviaPieceKind(?)"
	}
}

// TriviaPiece describes one run of whitespace or one comment attached to a
// token. It records a byte length only; the bytes live in the owning
// token's text and are recovered by slicing at a running offset.
type TriviaPiece struct {
	kind   TriviaPieceKind
	length uint32
}

// Whitespace returns a whitespace piece of the given byte length.
func Whitespace(length uint32) TriviaPiece {
	return TriviaPiece{kind: TriviaWhitespace, length: length}
}

// Comments returns a comment piece of the given byte length.
func Comments(length uint32) TriviaPiece {
	return TriviaPiece{kind: TriviaComments, length: length}
}

func (p TriviaPiece) Kind() TriviaPieceKind {
	return p.kind
}

func (p TriviaPiece) Len() uint32 {
	return p.length
}

func (p TriviaPiece) IsWhitespace() bool {
	return p.kind == TriviaWhitespace
}

func (p TriviaPiece) IsComments() bool {
	return p.kind == TriviaComments
}

// PiecesLen returns the total byte length of the pieces.
func PiecesLen(pieces []TriviaPiece) uint32 {
	var n uint32
	for _, p := range pieces {
		n += p.length
	}
	return n
}
