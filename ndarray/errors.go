// Package ndarray: sentinel error set.
// All operations return these sentinels (optionally wrapped with context via
// fmt.Errorf("...: %w", ErrX)); callers and tests match with errors.Is.
// No operation panics on user-triggered conditions.

package ndarray

import "errors"

var (
	// ErrConversion indicates that an input value cannot be coerced into a
	// regular rectangular numeric array (jagged nesting, non-numeric leaf,
	// or an unsupported container type).
	ErrConversion = errors.New("ndarray: cannot convert input to a rectangular numeric array")

	// ErrBadShape is returned when a requested shape is invalid
	// (a non-positive dimension, or an empty shape where rank ≥ 1 is required).
	ErrBadShape = errors.New("ndarray: invalid shape")

	// ErrAxisOutOfRange indicates an axis value outside [-rank, rank).
	ErrAxisOutOfRange = errors.New("ndarray: axis out of range")

	// ErrIndexOutOfRange indicates a position outside [0, length) along an axis
	// after negative-position normalization.
	ErrIndexOutOfRange = errors.New("ndarray: index out of range")

	// ErrShapeMismatch indicates incompatible shapes between operands,
	// e.g. Concatenate inputs differing anywhere but the join axis.
	ErrShapeMismatch = errors.New("ndarray: shape mismatch")

	// ErrEmptyInput indicates that an operation received no arrays.
	ErrEmptyInput = errors.New("ndarray: no input arrays")
)
