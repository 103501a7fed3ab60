// Package lib: smoothness features — SPARC (spectral arc length).

package lib

import (
	"fmt"
	"math"

	"github.com/sigfeat/sigfeat/feature"
	"github.com/sigfeat/sigfeat/ndarray"
)

// Documented defaults for the SPARC parameters.
const (
	DefaultSPARCPadLevel           = 4
	DefaultSPARCCutoff             = 10.0
	DefaultSPARCAmplitudeThreshold = 0.05
)

func init() {
	feature.MustRegister("SPARC", func(p feature.Params) (feature.Feature, error) {
		return NewSPARC(
			int(p.Get("padlevel", DefaultSPARCPadLevel)),
			p.Get("fc", DefaultSPARCCutoff),
			p.Get("amplitude_threshold", DefaultSPARCAmplitudeThreshold),
		)
	})
}

// SPARC computes the spectral arc length, a smoothness measure: the
// magnitude spectrum is restricted to [0, fc] Hz, normalized by its maximum,
// trimmed to the first..last bins above the amplitude threshold, and the
// negative arc length of the resulting curve is returned (closer to zero =
// smoother). Requires a sampling frequency. Degenerate spectra (fewer than
// two retained bins, or an all-zero band) yield 0.
type SPARC struct {
	padLevel           int
	cutoff             float64
	amplitudeThreshold float64
}

// NewSPARC creates a SPARC feature.
func NewSPARC(padLevel int, fc, amplitudeThreshold float64) (*SPARC, error) {
	if padLevel < 0 {
		return nil, fmt.Errorf("padlevel %d must be >= 0: %w", padLevel, feature.ErrBadParam)
	}
	if fc <= 0 {
		return nil, fmt.Errorf("fc %g must be > 0: %w", fc, feature.ErrBadParam)
	}
	if amplitudeThreshold <= 0 || amplitudeThreshold >= 1 {
		return nil, fmt.Errorf("amplitude_threshold %g must be in (0, 1): %w", amplitudeThreshold, feature.ErrBadParam)
	}

	return &SPARC{padLevel: padLevel, cutoff: fc, amplitudeThreshold: amplitudeThreshold}, nil
}

func (*SPARC) Kind() string { return "SPARC" }

func (f *SPARC) Params() []feature.Param {
	return []feature.Param{
		{Name: "padlevel", Value: float64(f.padLevel)},
		{Name: "fc", Value: f.cutoff},
		{Name: "amplitude_threshold", Value: f.amplitudeThreshold},
	}
}

func (*SPARC) RequiresFS() bool { return true }

func (f *SPARC) Compute(x *ndarray.Array, axis int, fs float64) (*ndarray.Array, error) {
	ax, err := ndarray.NormalizeAxis(axis, x.NDim())
	if err != nil {
		return nil, err
	}
	nfft := nfftFor(x.Shape()[ax], f.padLevel)

	// Bins with frequency <= fc; always at least the DC bin.
	kc := int(f.cutoff * float64(nfft) / fs)
	if kc > nfft/2 {
		kc = nfft / 2
	}

	return ndarray.ReduceAlong(x, ax, func(lane []float64) float64 {
		mag := magnitudeSpectrum(lane, nfft)[:kc+1]

		peak := 0.0
		for _, m := range mag {
			if m > peak {
				peak = m
			}
		}
		if peak == 0 {
			return 0
		}

		// Trim to first..last bins above the threshold.
		first, last := -1, -1
		for k, m := range mag {
			if m/peak >= f.amplitudeThreshold {
				if first < 0 {
					first = k
				}
				last = k
			}
		}
		if last-first < 1 {
			return 0
		}

		// Arc length over the normalized (frequency, magnitude) curve.
		df := 1 / float64(last-first)
		arc := 0.0
		for k := first + 1; k <= last; k++ {
			dm := (mag[k] - mag[k-1]) / peak
			arc += math.Hypot(df, dm)
		}

		return -arc
	})
}
