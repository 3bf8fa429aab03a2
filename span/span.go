// Package span provides half-open byte ranges over source text.
// Spans carry no file identity; the tree that produced them defines the
// coordinate space, with offset 0 at the start of the root node's text.
package span

import "fmt"

// Span is a half-open byte range [Start, End).
type Span struct {
	Start uint32
	End   uint32
}

// New returns the span covering [start, end). It panics if end precedes
// start; a span can be empty but never negative.
func New(start, end uint32) Span {
	if end < start {
		panic(fmt.Sprintf("span: end %d precedes start %d", end, start))
	}
	return Span{Start: start, End: end}
}

// At returns the span of the given length starting at offset.
func At(offset, length uint32) Span {
	return Span{Start: offset, End: offset + length}
}

func (s Span) Empty() bool {
	return s.Start == s.End
}

func (s Span) Len() uint32 {
	return s.End - s.Start
}

// Contains reports whether offset falls strictly inside the span.
func (s Span) Contains(offset uint32) bool {
	return offset >= s.Start && offset < s.End
}

// ContainsInclusive reports whether offset falls inside the span or on
// either boundary.
func (s Span) ContainsInclusive(offset uint32) bool {
	return offset >= s.Start && offset <= s.End
}

// ContainsSpan reports whether other lies fully inside s.
func (s Span) ContainsSpan(other Span) bool {
	return other.Start >= s.Start && other.End <= s.End
}

// Intersect returns the overlap of the two spans. Adjacent spans overlap
// in an empty span at the shared boundary.
func (s Span) Intersect(other Span) (Span, bool) {
	start := max(s.Start, other.Start)
	end := min(s.End, other.End)
	if start > end {
		return Span{}, false
	}
	return Span{Start: start, End: end}, true
}

// Cover returns the smallest span containing both s and other.
func (s Span) Cover(other Span) Span {
	if other.Start < s.Start {
		s.Start = other.Start
	}
	if other.End > s.End {
		s.End = other.End
	}
	return s
}

func (s Span) String() string {
	return fmt.Sprintf("%d..%d", s.Start, s.End)
}
