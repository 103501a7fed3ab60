// Package lib: spectral features — DominantFrequency and
// DominantFrequencyValue. Both reduce a lane to a property of the dominant
// spectral peak inside [low_cutoff, high_cutoff] Hz.

package lib

import (
	"fmt"

	"github.com/sigfeat/sigfeat/feature"
	"github.com/sigfeat/sigfeat/ndarray"
)

// Documented defaults for the spectral feature parameters.
const (
	DefaultPadLevel   = 2
	DefaultLowCutoff  = 0.0
	DefaultHighCutoff = 5.0
)

func init() {
	feature.MustRegister("DominantFrequency", func(p feature.Params) (feature.Feature, error) {
		return NewDominantFrequency(
			int(p.Get("padlevel", DefaultPadLevel)),
			p.Get("low_cutoff", DefaultLowCutoff),
			p.Get("high_cutoff", DefaultHighCutoff),
		)
	})
	feature.MustRegister("DominantFrequencyValue", func(p feature.Params) (feature.Feature, error) {
		return NewDominantFrequencyValue(
			int(p.Get("padlevel", DefaultPadLevel)),
			p.Get("low_cutoff", DefaultLowCutoff),
			p.Get("high_cutoff", DefaultHighCutoff),
		)
	})
}

// spectralBand holds the shared parameter set of the spectral peak features.
type spectralBand struct {
	padLevel   int
	lowCutoff  float64
	highCutoff float64
}

// validate rejects malformed parameter combinations.
func (s spectralBand) validate() error {
	if s.padLevel < 0 {
		return fmt.Errorf("padlevel %d must be >= 0: %w", s.padLevel, feature.ErrBadParam)
	}
	if s.lowCutoff < 0 || s.highCutoff <= s.lowCutoff {
		return fmt.Errorf("cutoff band [%g, %g): %w", s.lowCutoff, s.highCutoff, feature.ErrBadParam)
	}

	return nil
}

func (s spectralBand) params() []feature.Param {
	return []feature.Param{
		{Name: "padlevel", Value: float64(s.padLevel)},
		{Name: "low_cutoff", Value: s.lowCutoff},
		{Name: "high_cutoff", Value: s.highCutoff},
	}
}

// band returns the spectrum bin range [k0, k1) covering the cutoff band for
// lanes of n samples at fs Hz, and the transform length.
func (s spectralBand) band(n int, fs float64) (k0, k1, nfft int, err error) {
	nfft = nfftFor(n, s.padLevel)
	binHz := fs / float64(nfft)
	k0 = int(s.lowCutoff/binHz + 0.5)
	k1 = int(s.highCutoff/binHz+0.5) + 1
	if k1 > nfft/2+1 {
		k1 = nfft/2 + 1
	}
	if k0 >= k1 {
		return 0, 0, 0, fmt.Errorf("cutoff band [%g, %g) Hz selects no bins at fs=%g: %w",
			s.lowCutoff, s.highCutoff, fs, feature.ErrBadParam)
	}

	return k0, k1, nfft, nil
}

// DominantFrequency computes the frequency (Hz) of the largest spectral
// peak within [low_cutoff, high_cutoff]. Requires a sampling frequency.
type DominantFrequency struct {
	spectralBand
}

// NewDominantFrequency creates a DominantFrequency feature. The transform is
// zero-padded to 2^(ceil(log2 n) + padLevel).
func NewDominantFrequency(padLevel int, lowCutoff, highCutoff float64) (*DominantFrequency, error) {
	f := &DominantFrequency{spectralBand{padLevel: padLevel, lowCutoff: lowCutoff, highCutoff: highCutoff}}
	if err := f.validate(); err != nil {
		return nil, err
	}

	return f, nil
}

func (*DominantFrequency) Kind() string              { return "DominantFrequency" }
func (f *DominantFrequency) Params() []feature.Param { return f.params() }
func (*DominantFrequency) RequiresFS() bool          { return true }

func (f *DominantFrequency) Compute(x *ndarray.Array, axis int, fs float64) (*ndarray.Array, error) {
	ax, err := ndarray.NormalizeAxis(axis, x.NDim())
	if err != nil {
		return nil, err
	}
	k0, k1, nfft, err := f.band(x.Shape()[ax], fs)
	if err != nil {
		return nil, err
	}

	return ndarray.ReduceAlong(x, ax, func(lane []float64) float64 {
		mag := magnitudeSpectrum(lane, nfft)
		peak := k0
		for k := k0 + 1; k < k1; k++ {
			if mag[k] > mag[peak] {
				peak = k
			}
		}

		return float64(peak) * fs / float64(nfft)
	})
}

// DominantFrequencyValue computes the normalized power of the dominant peak:
// the peak's power divided by the total power inside the cutoff band.
// Requires a sampling frequency.
type DominantFrequencyValue struct {
	spectralBand
}

// NewDominantFrequencyValue creates a DominantFrequencyValue feature.
func NewDominantFrequencyValue(padLevel int, lowCutoff, highCutoff float64) (*DominantFrequencyValue, error) {
	f := &DominantFrequencyValue{spectralBand{padLevel: padLevel, lowCutoff: lowCutoff, highCutoff: highCutoff}}
	if err := f.validate(); err != nil {
		return nil, err
	}

	return f, nil
}

func (*DominantFrequencyValue) Kind() string              { return "DominantFrequencyValue" }
func (f *DominantFrequencyValue) Params() []feature.Param { return f.params() }
func (*DominantFrequencyValue) RequiresFS() bool          { return true }

func (f *DominantFrequencyValue) Compute(x *ndarray.Array, axis int, fs float64) (*ndarray.Array, error) {
	ax, err := ndarray.NormalizeAxis(axis, x.NDim())
	if err != nil {
		return nil, err
	}
	k0, k1, nfft, err := f.band(x.Shape()[ax], fs)
	if err != nil {
		return nil, err
	}

	return ndarray.ReduceAlong(x, ax, func(lane []float64) float64 {
		mag := magnitudeSpectrum(lane, nfft)
		peak, total := 0.0, 0.0
		for k := k0; k < k1; k++ {
			pw := mag[k] * mag[k]
			total += pw
			if pw > peak {
				peak = pw
			}
		}
		if total == 0 {
			return 0
		}

		return peak / total
	})
}
