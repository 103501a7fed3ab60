package lib_test

import (
	"math/rand"
	"testing"

	"github.com/sigfeat/sigfeat/feature"
	"github.com/sigfeat/sigfeat/lib"
	"github.com/sigfeat/sigfeat/ndarray"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// allFeatures returns one default-parameterized instance of every kind.
func allFeatures(t *testing.T) []feature.Feature {
	t.Helper()
	df, err := lib.NewDominantFrequency(lib.DefaultPadLevel, lib.DefaultLowCutoff, lib.DefaultHighCutoff)
	require.NoError(t, err)
	dfv, err := lib.NewDominantFrequencyValue(lib.DefaultPadLevel, lib.DefaultLowCutoff, lib.DefaultHighCutoff)
	require.NoError(t, err)
	sp, err := lib.NewSPARC(lib.DefaultSPARCPadLevel, lib.DefaultSPARCCutoff, lib.DefaultSPARCAmplitudeThreshold)
	require.NoError(t, err)

	return []feature.Feature{
		lib.NewMean(), lib.NewStdDev(), lib.NewSkewness(), lib.NewKurtosis(),
		lib.NewRange(), lib.NewRMS(), lib.NewIQR(), lib.NewLinearSlope(),
		df, dfv, sp,
	}
}

// TestOutputShape_AxisAgnostic verifies the core feature contract: for every
// rank 1..4 and every axis, Compute removes exactly that axis and preserves
// the order of the rest — for every shipped feature.
func TestOutputShape_AxisAgnostic(t *testing.T) {
	const fs = 50.0
	rng := rand.New(rand.NewSource(17))
	full := []int{5, 10, 15, 20}

	for rank := 1; rank <= 4; rank++ {
		shape := full[:rank]
		n := 1
		for _, d := range shape {
			n *= d
		}
		data := make([]float64, n)
		for i := range data {
			data[i] = rng.Float64()
		}
		x, err := ndarray.FromSlice(data, shape...)
		require.NoError(t, err)

		for axis := 0; axis < rank; axis++ {
			want := make([]int, 0, rank-1)
			for i, d := range shape {
				if i != axis {
					want = append(want, d)
				}
			}

			for _, f := range allFeatures(t) {
				res, err := f.Compute(x, axis, fs)
				require.NoError(t, err, "%s rank %d axis %d", f.Kind(), rank, axis)
				assert.Equal(t, want, res.Shape(), "%s rank %d axis %d", f.Kind(), rank, axis)
			}

			// negative alias of the same axis
			for _, f := range allFeatures(t) {
				res, err := f.Compute(x, axis-rank, fs)
				require.NoError(t, err, "%s rank %d axis %d", f.Kind(), rank, axis-rank)
				assert.Equal(t, want, res.Shape(), "%s rank %d axis %d", f.Kind(), rank, axis-rank)
			}
		}
	}
}

// TestFeatureEquivalence verifies structural identity across kinds and
// parameterizations.
func TestFeatureEquivalence(t *testing.T) {
	f1a, err := lib.NewDominantFrequency(2, 0.0, 5.0)
	require.NoError(t, err)
	f1b, err := lib.NewDominantFrequency(4, 0.5, 9.0)
	require.NoError(t, err)
	f2, err := lib.NewSPARC(4, 10.0, 0.05)
	require.NoError(t, err)
	f3 := lib.NewRange()

	assert.True(t, feature.Equal(f1a, f1a))
	assert.True(t, feature.Equal(f1b, f1b))
	assert.True(t, feature.Equal(f2, f2))
	assert.True(t, feature.Equal(f3, f3))

	assert.False(t, feature.Equal(f1a, f1b))
	assert.False(t, feature.Equal(f1a, f2))
	assert.False(t, feature.Equal(f1a, f3))
	assert.False(t, feature.Equal(f2, f3))

	same, err := lib.NewDominantFrequency(2, 0.0, 5.0)
	require.NoError(t, err)
	assert.True(t, feature.Equal(f1a, same), "equal parameters are interchangeable")
}
