// Package green implements the immutable, structurally-shared value layer
// of a lossless syntax tree.
// Invariants:
//   - Token.Text holds every byte the token covers, leading and trailing
//     trivia included; trivia pieces record lengths only and are recovered
//     by slicing that text.
//   - Node.TextLen equals the sum of its slot lengths; empty slots
//     contribute zero bytes.
//   - A node's slot count and slot order are fixed at construction; error
//     recovery varies slot contents (node/token/empty), never positions.
//   - No value in this package mutates after its constructor returns.
//     Identical subtrees may be shared by reference from any number of
//     trees and read from any number of goroutines.
package green
