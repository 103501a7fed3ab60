// Package bank implements the feature registry ("Bank") and its axis/index
// resolution and output-assembly engine.
//
// 🚀 What is a Bank?
//
//	An ordered collection of (Feature, IndexSpec) entries plus one Compute
//	pass that, given an N-d array, a computation axis and an optional index
//	axis, deterministically produces a single concatenated result array:
//	  • the computation axis is reduced away by every feature
//	  • the index axis (when given) is subset per entry before reduction,
//	    and every entry's reduced selections are concatenated along it,
//	    entry order first, position order within an entry second
//	  • with no index axis, per-entry results are stacked along a new
//	    leading axis of size Len() (a single-entry Bank returns its result
//	    unstacked)
//
// Shape algebra (the canonical case table, f = number of entries with every
// index position selected):
//
//	|  shape       | axis  | index |  result      |
//	|--------------|-------|-------|--------------|
//	| (a, b)       |   0   |   1   | (b·f,)       |
//	| (a, b)       |   0   |   —   | (f, b)       |
//	| (a, b, c)    |   0   |   1   | (b·f, c)     |
//	| (a, b, c)    |   0   |   2   | (b, c·f)     |
//	| (a, b, c)    |   1   |   0   | (a·f, c)     |
//	| (a, b, c)    |   2   |   —   | (f, a, b)    |
//	| (a, b, c, d) |   0   |   2   | (b, c·f, d)  |
//	| (a, b, c, d) |   2   |   0   | (a·f, b, d)  |
//
// Duplicate registrations of a structurally equal Feature are legal; they
// emit a non-fatal Warning (injectable sink, collected by default) and both
// entries contribute output.
//
// Save/Load persist the full registry configuration (kind, parameters,
// index spec) as human-readable YAML; a reloaded Bank reproduces
// bit-identical Compute output.
//
// A Bank is not safe for concurrent mutation; do not Add while a Compute is
// in flight. Compute itself is a pure, synchronous batch operation.
package bank
