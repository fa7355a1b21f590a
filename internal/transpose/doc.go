// Package transpose implements out-of-place and in-place transposition of
// flattened row-major matrices.
//
// The out-of-place engine picks one of three traversal orders by element
// count: a direct element copy, a 16x16 tiled copy, or a cache-oblivious
// recursive split that tiles once both dimensions are small.
//
// The in-place engine follows F. Gustavson and D. Walker, "Algorithms for
// in-place matrix transposition" (2018). It reduces a rectangle to square
// panels with the exchange/shuffle/unshuffle permutations and falls back to
// the out-of-place engine whenever a sub-problem fits the caller's workspace.
//
// Functions in this package do not validate their arguments beyond what the
// Go runtime bounds checks catch; the public package does that.
package transpose
