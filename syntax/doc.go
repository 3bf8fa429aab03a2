// Package syntax is the typed facade over the raw tree: generic node,
// token, and element views parameterized by a grammar's kind enum.
//
// A grammar plugs in through the Language capability, which converts
// between its kind enum and the raw uint16 kind tag and names the kind
// used for variable-length child lists. The engine itself stays grammar
// agnostic; RawLanguage exposes the untyped tree for tools that do not
// care about a grammar.
package syntax
