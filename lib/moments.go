// Package lib: statistical moment features — Mean, StdDev, Skewness,
// Kurtosis. All are parameterless and fs-independent.

package lib

import (
	"math"

	"github.com/sigfeat/sigfeat/feature"
	"github.com/sigfeat/sigfeat/ndarray"
)

func init() {
	feature.MustRegister("Mean", func(feature.Params) (feature.Feature, error) { return NewMean(), nil })
	feature.MustRegister("StdDev", func(feature.Params) (feature.Feature, error) { return NewStdDev(), nil })
	feature.MustRegister("Skewness", func(feature.Params) (feature.Feature, error) { return NewSkewness(), nil })
	feature.MustRegister("Kurtosis", func(feature.Params) (feature.Feature, error) { return NewKurtosis(), nil })
}

// Mean computes the arithmetic mean of the signal.
type Mean struct{}

// NewMean creates a Mean feature.
func NewMean() *Mean { return &Mean{} }

func (*Mean) Kind() string            { return "Mean" }
func (*Mean) Params() []feature.Param { return nil }
func (*Mean) RequiresFS() bool        { return false }

func (*Mean) Compute(x *ndarray.Array, axis int, _ float64) (*ndarray.Array, error) {
	return ndarray.ReduceAlong(x, axis, mean)
}

// StdDev computes the sample standard deviation (ddof = 1) of the signal.
// Lanes shorter than two samples yield 0.
type StdDev struct{}

// NewStdDev creates a StdDev feature.
func NewStdDev() *StdDev { return &StdDev{} }

func (*StdDev) Kind() string            { return "StdDev" }
func (*StdDev) Params() []feature.Param { return nil }
func (*StdDev) RequiresFS() bool        { return false }

func (*StdDev) Compute(x *ndarray.Array, axis int, _ float64) (*ndarray.Array, error) {
	return ndarray.ReduceAlong(x, axis, func(lane []float64) float64 {
		n := len(lane)
		if n < 2 {
			return 0
		}
		m := mean(lane)
		ss := 0.0
		for _, v := range lane {
			d := v - m
			ss += d * d
		}

		return math.Sqrt(ss / float64(n-1))
	})
}

// Skewness computes the moment-based sample skewness g1 = m3 / m2^(3/2).
// Constant lanes (m2 = 0) yield 0.
type Skewness struct{}

// NewSkewness creates a Skewness feature.
func NewSkewness() *Skewness { return &Skewness{} }

func (*Skewness) Kind() string            { return "Skewness" }
func (*Skewness) Params() []feature.Param { return nil }
func (*Skewness) RequiresFS() bool        { return false }

func (*Skewness) Compute(x *ndarray.Array, axis int, _ float64) (*ndarray.Array, error) {
	return ndarray.ReduceAlong(x, axis, func(lane []float64) float64 {
		m2, m3, _ := centralMoments(lane)
		if m2 == 0 {
			return 0
		}

		return m3 / math.Pow(m2, 1.5)
	})
}

// Kurtosis computes the excess kurtosis g2 = m4 / m2² − 3.
// Constant lanes (m2 = 0) yield 0.
type Kurtosis struct{}

// NewKurtosis creates a Kurtosis feature.
func NewKurtosis() *Kurtosis { return &Kurtosis{} }

func (*Kurtosis) Kind() string            { return "Kurtosis" }
func (*Kurtosis) Params() []feature.Param { return nil }
func (*Kurtosis) RequiresFS() bool        { return false }

func (*Kurtosis) Compute(x *ndarray.Array, axis int, _ float64) (*ndarray.Array, error) {
	return ndarray.ReduceAlong(x, axis, func(lane []float64) float64 {
		m2, _, m4 := centralMoments(lane)
		if m2 == 0 {
			return 0
		}

		return m4/(m2*m2) - 3
	})
}

// mean returns the arithmetic mean of lane (0 for an empty lane).
func mean(lane []float64) float64 {
	if len(lane) == 0 {
		return 0
	}
	s := 0.0
	for _, v := range lane {
		s += v
	}

	return s / float64(len(lane))
}

// centralMoments returns the 2nd, 3rd and 4th population central moments.
func centralMoments(lane []float64) (m2, m3, m4 float64) {
	n := float64(len(lane))
	if n == 0 {
		return 0, 0, 0
	}
	m := mean(lane)
	for _, v := range lane {
		d := v - m
		d2 := d * d
		m2 += d2
		m3 += d2 * d
		m4 += d2 * d2
	}

	return m2 / n, m3 / n, m4 / n
}
