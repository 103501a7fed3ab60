package ndarray_test

import (
	"testing"

	"github.com/sigfeat/sigfeat/ndarray"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// arange builds a test array of the given shape filled with 0..n-1.
func arange(t *testing.T, shape ...int) *ndarray.Array {
	t.Helper()
	n := 1
	for _, d := range shape {
		n *= d
	}
	data := make([]float64, n)
	for i := range data {
		data[i] = float64(i)
	}
	a, err := ndarray.FromSlice(data, shape...)
	require.NoError(t, err)

	return a
}

// TestNormalizeAxis covers positive, negative and out-of-range axes.
func TestNormalizeAxis(t *testing.T) {
	ax, err := ndarray.NormalizeAxis(-1, 3)
	require.NoError(t, err)
	assert.Equal(t, 2, ax)

	ax, err = ndarray.NormalizeAxis(0, 3)
	require.NoError(t, err)
	assert.Equal(t, 0, ax)

	_, err = ndarray.NormalizeAxis(3, 3)
	assert.ErrorIs(t, err, ndarray.ErrAxisOutOfRange)

	_, err = ndarray.NormalizeAxis(-4, 3)
	assert.ErrorIs(t, err, ndarray.ErrAxisOutOfRange)
}

// TestMoveAxis_Shape verifies axis relocation preserves remaining axis order.
func TestMoveAxis_Shape(t *testing.T) {
	a := arange(t, 2, 3, 4)

	m, err := ndarray.MoveAxis(a, 0, -1)
	require.NoError(t, err)
	assert.Equal(t, []int{3, 4, 2}, m.Shape())

	m, err = ndarray.MoveAxis(a, 2, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{4, 2, 3}, m.Shape())

	m, err = ndarray.MoveAxis(a, 1, 1)
	require.NoError(t, err)
	assert.True(t, ndarray.Equal(a, m), "no-op move must return an equal array")
}

// TestMoveAxis_Values verifies element placement for a known 2×3 transpose.
func TestMoveAxis_Values(t *testing.T) {
	a := arange(t, 2, 3) // [[0,1,2],[3,4,5]]

	m, err := ndarray.MoveAxis(a, 0, 1) // transpose to 3×2
	require.NoError(t, err)
	assert.Equal(t, []int{3, 2}, m.Shape())
	assert.Equal(t, []float64{0, 3, 1, 4, 2, 5}, m.Data())
}

// TestTake_SelectsPositions verifies ordered (and repeated) selection plus
// negative-position resolution.
func TestTake_SelectsPositions(t *testing.T) {
	a := arange(t, 4, 2) // rows [0,1],[2,3],[4,5],[6,7]

	got, err := ndarray.Take(a, 0, []int{2, 0, 2})
	require.NoError(t, err)
	assert.Equal(t, []int{3, 2}, got.Shape())
	assert.Equal(t, []float64{4, 5, 0, 1, 4, 5}, got.Data())

	neg, err := ndarray.Take(a, 0, []int{-1})
	require.NoError(t, err)
	assert.Equal(t, []float64{6, 7}, neg.Data())

	_, err = ndarray.Take(a, 0, []int{4})
	assert.ErrorIs(t, err, ndarray.ErrIndexOutOfRange)

	_, err = ndarray.Take(a, 0, []int{-5})
	assert.ErrorIs(t, err, ndarray.ErrIndexOutOfRange)
}

// TestTake_InnerAxis verifies selection along a non-leading axis.
func TestTake_InnerAxis(t *testing.T) {
	a := arange(t, 2, 3) // [[0,1,2],[3,4,5]]

	got, err := ndarray.Take(a, 1, []int{2, 1})
	require.NoError(t, err)
	assert.Equal(t, []int{2, 2}, got.Shape())
	assert.Equal(t, []float64{2, 1, 5, 4}, got.Data())
}

// TestConcatenate verifies joining along leading and inner axes.
func TestConcatenate(t *testing.T) {
	a := arange(t, 2, 2) // [[0,1],[2,3]]
	b := arange(t, 1, 2) // [[0,1]]

	got, err := ndarray.Concatenate(0, a, b)
	require.NoError(t, err)
	assert.Equal(t, []int{3, 2}, got.Shape())
	assert.Equal(t, []float64{0, 1, 2, 3, 0, 1}, got.Data())

	c := arange(t, 2, 1) // [[0],[1]]
	got, err = ndarray.Concatenate(1, a, c)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 3}, got.Shape())
	assert.Equal(t, []float64{0, 1, 0, 2, 3, 1}, got.Data())

	_, err = ndarray.Concatenate(0, a, c)
	assert.ErrorIs(t, err, ndarray.ErrShapeMismatch, "trailing axes must match")

	_, err = ndarray.Concatenate(0)
	assert.ErrorIs(t, err, ndarray.ErrEmptyInput)
}

// TestStack verifies the new leading axis and input shape agreement.
func TestStack(t *testing.T) {
	a := arange(t, 2, 3)
	b := arange(t, 2, 3)

	got, err := ndarray.Stack(a, b)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 2, 3}, got.Shape())

	c := arange(t, 3, 2)
	_, err = ndarray.Stack(a, c)
	assert.ErrorIs(t, err, ndarray.ErrShapeMismatch)
}

// TestReduceAlong verifies axis removal, remaining-axis order and values.
func TestReduceAlong(t *testing.T) {
	sum := func(lane []float64) float64 {
		s := 0.0
		for _, v := range lane {
			s += v
		}
		return s
	}

	a := arange(t, 2, 3) // [[0,1,2],[3,4,5]]

	r, err := ndarray.ReduceAlong(a, 1, sum)
	require.NoError(t, err)
	assert.Equal(t, []int{2}, r.Shape())
	assert.Equal(t, []float64{3, 12}, r.Data())

	r, err = ndarray.ReduceAlong(a, 0, sum)
	require.NoError(t, err)
	assert.Equal(t, []int{3}, r.Shape())
	assert.Equal(t, []float64{3, 5, 7}, r.Data())

	// rank-1 input reduces to a scalar
	v := arange(t, 4)
	r, err = ndarray.ReduceAlong(v, -1, sum)
	require.NoError(t, err)
	assert.Equal(t, 0, r.NDim())
	assert.Equal(t, []float64{6}, r.Data())

	_, err = ndarray.ReduceAlong(a, 2, sum)
	assert.ErrorIs(t, err, ndarray.ErrAxisOutOfRange)
}

// TestReduceAlong_AxisAgnostic verifies that reducing any axis of a rank-4
// array removes exactly that axis and preserves the rest, for every axis.
func TestReduceAlong_AxisAgnostic(t *testing.T) {
	first := func(lane []float64) float64 { return lane[0] }
	shape := []int{2, 3, 4, 5}
	a := arange(t, shape...)

	for axis := 0; axis < 4; axis++ {
		r, err := ndarray.ReduceAlong(a, axis, first)
		require.NoError(t, err)

		want := make([]int, 0, 3)
		for i, d := range shape {
			if i != axis {
				want = append(want, d)
			}
		}
		assert.Equal(t, want, r.Shape(), "axis %d", axis)
	}
}
