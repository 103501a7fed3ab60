// Package lib is the concrete feature library: statistical moments,
// amplitude measures, a temporal slope and spectral features, all satisfying
// the feature.Feature contract (axis-agnostic, removing exactly one axis).
//
// Every kind self-registers its factory with the feature package at init, so
// importing lib (even blank) is enough for bank.Load to reconstruct any of
// these kinds from a persisted file.
//
// Statistical:  Mean, StdDev, Skewness, Kurtosis
// Amplitude:    Range, RMS, IQR
// Temporal:     LinearSlope (requires fs)
// Spectral:     DominantFrequency, DominantFrequencyValue, SPARC
//               (all require fs; zero-padded radix-2 FFT,
//               nfft = 2^(ceil(log2 n) + padlevel))
package lib
