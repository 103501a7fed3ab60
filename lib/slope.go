// Package lib: temporal features — LinearSlope.

package lib

import (
	"github.com/sigfeat/sigfeat/feature"
	"github.com/sigfeat/sigfeat/ndarray"
)

func init() {
	feature.MustRegister("LinearSlope", func(feature.Params) (feature.Feature, error) { return NewLinearSlope(), nil })
}

// LinearSlope computes the least-squares slope of the signal against time,
// with sample i at t = i / fs. Requires a sampling frequency. Lanes shorter
// than two samples yield 0.
type LinearSlope struct{}

// NewLinearSlope creates a LinearSlope feature.
func NewLinearSlope() *LinearSlope { return &LinearSlope{} }

func (*LinearSlope) Kind() string            { return "LinearSlope" }
func (*LinearSlope) Params() []feature.Param { return nil }
func (*LinearSlope) RequiresFS() bool        { return true }

func (*LinearSlope) Compute(x *ndarray.Array, axis int, fs float64) (*ndarray.Array, error) {
	return ndarray.ReduceAlong(x, axis, func(lane []float64) float64 {
		n := len(lane)
		if n < 2 {
			return 0
		}
		// slope = cov(t, y) / var(t) with t_i = i/fs; means computed once.
		tm := float64(n-1) / (2 * fs)
		ym := mean(lane)
		num, den := 0.0, 0.0
		for i, y := range lane {
			dt := float64(i)/fs - tm
			num += dt * (y - ym)
			den += dt * dt
		}

		return num / den
	})
}
