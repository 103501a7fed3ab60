// Package lib: amplitude features — Range, RMS, IQR.

package lib

import (
	"math"
	"sort"

	"github.com/sigfeat/sigfeat/feature"
	"github.com/sigfeat/sigfeat/ndarray"
)

func init() {
	feature.MustRegister("Range", func(feature.Params) (feature.Feature, error) { return NewRange(), nil })
	feature.MustRegister("RMS", func(feature.Params) (feature.Feature, error) { return NewRMS(), nil })
	feature.MustRegister("IQR", func(feature.Params) (feature.Feature, error) { return NewIQR(), nil })
}

// Range computes max − min of the signal.
type Range struct{}

// NewRange creates a Range feature.
func NewRange() *Range { return &Range{} }

func (*Range) Kind() string            { return "Range" }
func (*Range) Params() []feature.Param { return nil }
func (*Range) RequiresFS() bool        { return false }

func (*Range) Compute(x *ndarray.Array, axis int, _ float64) (*ndarray.Array, error) {
	return ndarray.ReduceAlong(x, axis, func(lane []float64) float64 {
		lo, hi := lane[0], lane[0]
		for _, v := range lane[1:] {
			if v < lo {
				lo = v
			}
			if v > hi {
				hi = v
			}
		}

		return hi - lo
	})
}

// RMS computes the root mean square of the signal.
type RMS struct{}

// NewRMS creates an RMS feature.
func NewRMS() *RMS { return &RMS{} }

func (*RMS) Kind() string            { return "RMS" }
func (*RMS) Params() []feature.Param { return nil }
func (*RMS) RequiresFS() bool        { return false }

func (*RMS) Compute(x *ndarray.Array, axis int, _ float64) (*ndarray.Array, error) {
	return ndarray.ReduceAlong(x, axis, func(lane []float64) float64 {
		ss := 0.0
		for _, v := range lane {
			ss += v * v
		}

		return math.Sqrt(ss / float64(len(lane)))
	})
}

// IQR computes the interquartile range (75th − 25th percentile) with linear
// interpolation between order statistics.
type IQR struct{}

// NewIQR creates an IQR feature.
func NewIQR() *IQR { return &IQR{} }

func (*IQR) Kind() string            { return "IQR" }
func (*IQR) Params() []feature.Param { return nil }
func (*IQR) RequiresFS() bool        { return false }

func (*IQR) Compute(x *ndarray.Array, axis int, _ float64) (*ndarray.Array, error) {
	return ndarray.ReduceAlong(x, axis, func(lane []float64) float64 {
		sorted := append([]float64(nil), lane...)
		sort.Float64s(sorted)

		return percentile(sorted, 75) - percentile(sorted, 25)
	})
}

// percentile evaluates the p-th percentile of already-sorted data using
// linear interpolation at position (n−1)·p/100.
func percentile(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 1 {
		return sorted[0]
	}
	pos := float64(n-1) * p / 100
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return sorted[lo]
	}
	frac := pos - float64(lo)

	return sorted[lo]*(1-frac) + sorted[hi]*frac
}
