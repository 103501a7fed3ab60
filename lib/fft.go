// Package lib: the shared radix-2 FFT used by the spectral features.

package lib

import "math"

// nfftFor returns 2^(ceil(log2 n) + padLevel): the zero-padded transform
// length for a lane of n samples.
func nfftFor(n, padLevel int) int {
	p := 1
	for p < n {
		p <<= 1
	}

	return p << padLevel
}

// fft performs an in-place iterative radix-2 Cooley-Tukey FFT over
// re/im; len(re) == len(im) must be a power of two.
func fft(re, im []float64) {
	n := len(re)

	// bit-reversal permutation
	for i, j := 1, 0; i < n; i++ {
		bit := n >> 1
		for ; j&bit != 0; bit >>= 1 {
			j ^= bit
		}
		j |= bit
		if i < j {
			re[i], re[j] = re[j], re[i]
			im[i], im[j] = im[j], im[i]
		}
	}

	// butterflies
	for length := 2; length <= n; length <<= 1 {
		ang := -2 * math.Pi / float64(length)
		wr, wi := math.Cos(ang), math.Sin(ang)
		half := length / 2
		for start := 0; start < n; start += length {
			cwr, cwi := 1.0, 0.0
			for k := 0; k < half; k++ {
				i, j := start+k, start+k+half
				tr := re[j]*cwr - im[j]*cwi
				ti := re[j]*cwi + im[j]*cwr
				re[j], im[j] = re[i]-tr, im[i]-ti
				re[i], im[i] = re[i]+tr, im[i]+ti
				cwr, cwi = cwr*wr-cwi*wi, cwr*wi+cwi*wr
			}
		}
	}
}

// magnitudeSpectrum returns |FFT(lane zero-padded to nfft)| for the
// non-negative frequency bins 0..nfft/2.
func magnitudeSpectrum(lane []float64, nfft int) []float64 {
	re := make([]float64, nfft)
	im := make([]float64, nfft)
	copy(re, lane)
	fft(re, im)

	out := make([]float64, nfft/2+1)
	for k := range out {
		out[k] = math.Hypot(re[k], im[k])
	}

	return out
}
