// Package bank: the Axis Planner.
// Given input rank, the computation axis and the optional index axis, the
// planner fixes every position used by output assembly:
//
//   - the computation axis is moved last so feature reductions see
//     contiguous lanes, then removed by the reduction itself;
//   - the index axis, when present, is moved to the front of the reduced
//     view so per-entry selections are leading-axis Takes, and its final
//     resting position in the output is the original position shifted down
//     by one when it sat after the computation axis.
//
// The resulting output shape is the input shape with the computation axis
// removed and, when an index axis is given, the index-axis length replaced
// by the total number of selected positions across all entries. With no
// index axis the per-entry results are stacked along a new leading axis.

package bank

import (
	"fmt"

	"github.com/sigfeat/sigfeat/ndarray"
)

// computePlan holds the normalized axis geometry for one Compute call.
type computePlan struct {
	rank      int
	axis      int  // normalized computation axis
	hasIndex  bool // whether an index axis is in play
	indexAxis int  // normalized index axis, input coordinates
	outIndex  int  // index-axis position after computation-axis removal
}

// newComputePlan validates and normalizes the axis configuration.
// Errors: ndarray.ErrAxisOutOfRange for out-of-rank axes, ErrIndexAxisRank
// for an index axis on rank-1 input, ErrSameAxis when both coincide.
func newComputePlan(rank, axis int, indexAxis *int) (computePlan, error) {
	ax, err := ndarray.NormalizeAxis(axis, rank)
	if err != nil {
		return computePlan{}, fmt.Errorf("computation axis: %w", err)
	}
	p := computePlan{rank: rank, axis: ax}
	if indexAxis == nil {
		return p, nil
	}

	if rank < 2 {
		return computePlan{}, ErrIndexAxisRank
	}
	ia, err := ndarray.NormalizeAxis(*indexAxis, rank)
	if err != nil {
		return computePlan{}, fmt.Errorf("index axis: %w", err)
	}
	if ia == ax {
		return computePlan{}, fmt.Errorf("axis %d: %w", ax, ErrSameAxis)
	}

	p.hasIndex = true
	p.indexAxis = ia
	p.outIndex = ia
	if ia > ax {
		// Removing the computation axis shifts later axes down by one.
		p.outIndex--
	}

	return p, nil
}

// view rearranges x for reduction: computation axis last and, when an index
// axis is in play, the index axis first. The returned array's leading axis
// is the index axis iff p.hasIndex.
func (p computePlan) view(x *ndarray.Array) (*ndarray.Array, error) {
	moved, err := ndarray.MoveAxis(x, p.axis, p.rank-1)
	if err != nil {
		return nil, err
	}
	if !p.hasIndex {
		return moved, nil
	}

	return ndarray.MoveAxis(moved, p.outIndex, 0)
}

// assemble places the concatenated per-entry results (leading axis = index
// positions) back so the index axis lands at its output position.
func (p computePlan) assemble(cat *ndarray.Array) (*ndarray.Array, error) {
	return ndarray.MoveAxis(cat, 0, p.outIndex)
}
