// Package cursor implements the red layer of the syntax tree: positioned,
// parent-linked views over immutable green values.
// Invariants:
//   - Red handles are derived on navigation, never stored inside green
//     values; one green subtree can back any number of independent views.
//   - Green values are never mutated. Edits on a mutable tree build new
//     green nodes for the changed spine and swap them on the shared red
//     backing, so every handle derived from the same mutable root observes
//     the edit while unrelated trees keep their old greens.
//   - Absolute offsets are cached for immutable trees and recomputed on
//     demand for mutable ones, where splices invalidate any cache.
//   - Absence (no parent, no sibling, an empty slot) is a nil result;
//     out-of-range queries and edits on immutable trees panic.
package cursor
