// Package bank: sentinel error set (unified, consistent).
// All operations return these sentinels, optionally wrapped with context via
// fmt.Errorf("...: %w", ErrX); callers and tests match with errors.Is.
// Array-level faults (conversion, axis range) surface as the ndarray
// package's sentinels and pass through unwrapped.

package bank

import "errors"

var (
	// ErrNoEntries is returned by Compute on a Bank with no registered features.
	ErrNoEntries = errors.New("bank: no features registered")

	// ErrSameAxis indicates that the computation axis and the index axis
	// coincide; one axis cannot simultaneously be reduced and indexed.
	ErrSameAxis = errors.New("bank: computation axis and index axis must differ")

	// ErrIndexAxisRank indicates an index axis supplied for rank-1 input,
	// which has no secondary axis to index.
	ErrIndexAxisRank = errors.New("bank: index axis requires input rank >= 2")

	// ErrIndexCount indicates a per-entry index list whose length does not
	// match the number of features it applies to.
	ErrIndexCount = errors.New("bank: per-entry index count mismatch")

	// ErrIndexOutOfRange indicates a resolved index position outside
	// [0, length) on the index axis.
	ErrIndexOutOfRange = errors.New("bank: index position out of range")

	// ErrBadIndexRange indicates a malformed range spec (step <= 0).
	ErrBadIndexRange = errors.New("bank: invalid index range")

	// ErrEmptySelection indicates an index spec that resolves to no positions.
	ErrEmptySelection = errors.New("bank: index spec selects no positions")

	// ErrBadIndexSpec indicates a persisted index spec that cannot be parsed
	// back into a known form (not an int, int list, range or "all").
	ErrBadIndexSpec = errors.New("bank: malformed index spec")

	// ErrSamplingRate indicates a registered feature that requires a sampling
	// frequency while Compute was called without a positive one.
	ErrSamplingRate = errors.New("bank: feature requires a sampling frequency")

	// ErrColumnsWithoutTable indicates WithColumns on input that is not a
	// labeled table.
	ErrColumnsWithoutTable = errors.New("bank: column selection requires a labeled table")
)
