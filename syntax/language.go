package syntax

import "verdant/green"

// Kind constrains a grammar's kind enum. Kinds are plain uint16 tags so
// they round-trip through the raw tree without allocation.
type Kind interface{ ~uint16 }

// Language binds a grammar's kind enum to the raw tree. Implementations
// must be usable as their zero value: the facade instantiates them with
// `var l L` on every conversion.
type Language[K Kind] interface {
	// KindFromRaw converts a raw kind tag to the grammar's enum.
	KindFromRaw(raw green.Kind) K
	// KindToRaw converts the grammar's enum to the raw kind tag.
	KindToRaw(kind K) green.Kind
	// ListKind is the kind the grammar uses for variable-length child
	// lists. Detach removes slots from nodes of this kind instead of
	// emptying them.
	ListKind() K
}

// RawLanguage views the tree without a grammar: kinds stay raw tags and
// no kind is treated as a list.
type RawLanguage struct{}

func (RawLanguage) KindFromRaw(raw green.Kind) green.Kind { return raw }

func (RawLanguage) KindToRaw(kind green.Kind) green.Kind { return kind }

func (RawLanguage) ListKind() green.Kind { return 0 }

// rawListKind resolves the grammar's list kind to its raw tag.
func rawListKind[L Language[K], K Kind]() green.Kind {
	var l L
	return l.KindToRaw(l.ListKind())
}

func kindFromRaw[L Language[K], K Kind](raw green.Kind) K {
	var l L
	return l.KindFromRaw(raw)
}
