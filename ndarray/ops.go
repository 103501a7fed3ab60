// Package ndarray: axis algebra — the operations the feature engine composes:
// axis normalization, MoveAxis, Take, Concatenate, Stack and ReduceAlong.
// Every operation returns a fresh contiguous array; inputs are never mutated.

package ndarray

import "fmt"

// NormalizeAxis maps axis (which may be negative, numpy-style) into [0, rank).
// Returns ErrAxisOutOfRange when axis is outside [-rank, rank).
func NormalizeAxis(axis, rank int) (int, error) {
	if axis < -rank || axis >= rank {
		return 0, fmt.Errorf("axis %d for rank %d: %w", axis, rank, ErrAxisOutOfRange)
	}
	if axis < 0 {
		axis += rank
	}

	return axis, nil
}

// strides returns row-major strides for shape (last axis stride = 1).
func strides(shape []int) []int {
	st := make([]int, len(shape))
	acc := 1
	for i := len(shape) - 1; i >= 0; i-- {
		st[i] = acc
		acc *= shape[i]
	}

	return st
}

// MoveAxis returns a copy of a with axis `from` relocated to position `to`,
// preserving the relative order of all other axes. Both axis values may be
// negative. Equivalent semantics to numpy.moveaxis.
func MoveAxis(a *Array, from, to int) (*Array, error) {
	rank := a.NDim()
	f, err := NormalizeAxis(from, rank)
	if err != nil {
		return nil, err
	}
	t, err := NormalizeAxis(to, rank)
	if err != nil {
		return nil, err
	}
	if f == t {
		return a.Clone(), nil
	}

	// Build the permutation: remove f, insert it at t.
	perm := make([]int, 0, rank)
	for i := 0; i < rank; i++ {
		if i != f {
			perm = append(perm, i)
		}
	}
	perm = append(perm[:t], append([]int{f}, perm[t:]...)...)

	return transpose(a, perm), nil
}

// transpose copies a into axis order perm (perm[i] = source axis of output
// axis i). Internal; perm is assumed to be a valid permutation.
func transpose(a *Array, perm []int) *Array {
	rank := a.NDim()
	outShape := make([]int, rank)
	for i, p := range perm {
		outShape[i] = a.shape[p]
	}
	inStrides := strides(a.shape)

	out := &Array{shape: outShape, data: make([]float64, len(a.data))}
	idx := make([]int, rank) // multi-index over the output
	for flat := range out.data {
		src := 0
		for i := 0; i < rank; i++ {
			src += idx[i] * inStrides[perm[i]]
		}
		out.data[flat] = a.data[src]

		// row-major increment of the output multi-index
		for i := rank - 1; i >= 0; i-- {
			idx[i]++
			if idx[i] < outShape[i] {
				break
			}
			idx[i] = 0
		}
	}

	return out
}

// Take selects the given positions (in order, repeats allowed) along axis.
// Positions may be negative (numpy-style, resolved against the axis length);
// after resolution each must lie in [0, length).
func Take(a *Array, axis int, positions []int) (*Array, error) {
	rank := a.NDim()
	ax, err := NormalizeAxis(axis, rank)
	if err != nil {
		return nil, err
	}
	length := a.shape[ax]

	resolved := make([]int, len(positions))
	for i, p := range positions {
		if p < 0 {
			p += length
		}
		if p < 0 || p >= length {
			return nil, fmt.Errorf("position %d on axis %d (length %d): %w", positions[i], ax, length, ErrIndexOutOfRange)
		}
		resolved[i] = p
	}

	outShape := a.Shape()
	outShape[ax] = len(resolved)
	if len(resolved) == 0 {
		return nil, fmt.Errorf("empty selection on axis %d: %w", ax, ErrIndexOutOfRange)
	}

	// outer × selected × inner block copy
	st := strides(a.shape)
	inner := st[ax]              // elements per position block
	outer := len(a.data) / (inner * length)
	out := &Array{shape: outShape, data: make([]float64, outer*len(resolved)*inner)}
	dst := 0
	for o := 0; o < outer; o++ {
		base := o * length * inner
		for _, p := range resolved {
			copy(out.data[dst:dst+inner], a.data[base+p*inner:base+(p+1)*inner])
			dst += inner
		}
	}

	return out, nil
}

// Concatenate joins arrays along an existing axis. All inputs must share the
// same rank and identical lengths on every axis but the join axis.
func Concatenate(axis int, arrays ...*Array) (*Array, error) {
	if len(arrays) == 0 {
		return nil, ErrEmptyInput
	}
	rank := arrays[0].NDim()
	ax, err := NormalizeAxis(axis, rank)
	if err != nil {
		return nil, err
	}

	joined := 0
	for _, a := range arrays {
		if a.NDim() != rank {
			return nil, fmt.Errorf("rank %d vs %d: %w", a.NDim(), rank, ErrShapeMismatch)
		}
		for i := range a.shape {
			if i != ax && a.shape[i] != arrays[0].shape[i] {
				return nil, fmt.Errorf("axis %d: length %d vs %d: %w", i, a.shape[i], arrays[0].shape[i], ErrShapeMismatch)
			}
		}
		joined += a.shape[ax]
	}

	outShape := arrays[0].Shape()
	outShape[ax] = joined
	total := 1
	for _, d := range outShape {
		total *= d
	}
	out := &Array{shape: outShape, data: make([]float64, total)}

	// Copy block-wise: for each outer slot, append every input's block.
	inner := strides(outShape)[ax]
	outer := total / (inner * joined)
	dst := 0
	for o := 0; o < outer; o++ {
		for _, a := range arrays {
			block := a.shape[ax] * inner
			copy(out.data[dst:dst+block], a.data[o*block:(o+1)*block])
			dst += block
		}
	}

	return out, nil
}

// Stack joins arrays of identical shape along a new leading axis, producing
// rank+1 output with leading length len(arrays).
func Stack(arrays ...*Array) (*Array, error) {
	if len(arrays) == 0 {
		return nil, ErrEmptyInput
	}
	first := arrays[0]
	for _, a := range arrays[1:] {
		if a.NDim() != first.NDim() {
			return nil, fmt.Errorf("rank %d vs %d: %w", a.NDim(), first.NDim(), ErrShapeMismatch)
		}
		for i := range a.shape {
			if a.shape[i] != first.shape[i] {
				return nil, fmt.Errorf("axis %d: length %d vs %d: %w", i, a.shape[i], first.shape[i], ErrShapeMismatch)
			}
		}
	}

	outShape := append([]int{len(arrays)}, first.shape...)
	out := &Array{shape: outShape, data: make([]float64, len(arrays)*len(first.data))}
	for i, a := range arrays {
		copy(out.data[i*len(first.data):], a.data)
	}

	return out, nil
}

// ReduceAlong applies fn to every lane along axis and removes that axis,
// returning a rank−1 result that preserves the relative order of the
// remaining axes. fn receives each lane as a contiguous slice it must not
// retain. Rank-1 input reduces to a scalar (rank-0) Array.
func ReduceAlong(a *Array, axis int, fn func(lane []float64) float64) (*Array, error) {
	rank := a.NDim()
	if rank == 0 {
		return nil, fmt.Errorf("cannot reduce a scalar: %w", ErrAxisOutOfRange)
	}
	ax, err := NormalizeAxis(axis, rank)
	if err != nil {
		return nil, err
	}

	// Move the reduction axis last so lanes are contiguous.
	moved := a
	if ax != rank-1 {
		if moved, err = MoveAxis(a, ax, rank-1); err != nil {
			return nil, err
		}
	}

	n := moved.shape[rank-1]
	outShape := append([]int(nil), moved.shape[:rank-1]...)
	out := &Array{shape: outShape, data: make([]float64, len(moved.data)/n)}
	for i := range out.data {
		out.data[i] = fn(moved.data[i*n : (i+1)*n])
	}

	return out, nil
}
