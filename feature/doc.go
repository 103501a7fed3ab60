// Package feature defines the contract every concrete feature fulfills and
// the kind registry the persistence codec reconstructs features from.
//
// A Feature is an immutable, named, parameterized scalar reduction:
//
//	Compute(x, axis, fs) consumes an N-d array and returns an (N−1)-d array
//	with exactly that axis removed, preserving the order of the rest.
//
// Implementations must be axis-agnostic: correctness never depends on where
// the reduction axis sits (ndarray.ReduceAlong gives this for free).
//
// Identity is structural: two features are equal iff they share a kind and
// identical ordered parameters. Key derives a stable string usable as a map
// key; Equal compares field by field. No reflection is involved.
//
// Every concrete kind self-registers a factory at definition time via
// Register, so a persisted kind name maps back to a constructor without any
// runtime type discovery. Lookup of an unregistered kind errors with
// ErrUnknownKind.
package feature
