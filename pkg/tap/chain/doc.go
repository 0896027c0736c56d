// Package chain provides a fluent wrapper around a value so tap steps read
// left to right instead of nesting.
//
// Each chain carries a context and an id. Both survive every step, so
// logs written from a chain can be correlated.
//
// Key operations:
// - Start: begin a chain from a value
// - Tap/TapRef/TapMut: inspect or mutate the value in place
// - TapAsRef/TapAsMut/TapDeref/TapDerefMut/TapBorrow/TapBorrowMut/TapClone:
//   the relationship taps of package tap, as functions
// - Pipe/PipeRef: replace the value with f(value), possibly of a new type
// - Trace: log the value with the logger found in the context
// - Value: leave the chain
package chain
