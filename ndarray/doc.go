// Package ndarray provides a dense, row-major N-dimensional float64 array
// and the small axis algebra the feature engine is built on.
//
// 🚀 What is ndarray?
//
//	A contiguous, always-compacted array type plus exactly the operations a
//	deterministic shape engine needs:
//	  • FromAny    — convert nested Go values into a rectangular array,
//	    rejecting jagged input
//	  • MoveAxis   — relocate one axis, preserving the order of the rest
//	  • Take       — select positions along one axis
//	  • Concatenate / Stack — assemble results along an existing or new axis
//	  • ReduceAlong — apply a lane reduction, removing exactly one axis
//
// Arrays are immutable by convention: every operation allocates a fresh
// contiguous result and never aliases its input's backing storage.
//
// Errors are package-level sentinels (ErrConversion, ErrAxisOutOfRange,
// ErrShapeMismatch, ...) matched with errors.Is.
package ndarray
