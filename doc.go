// Package sigfeat computes named, reusable numeric features over batches of
// multi-dimensional arrays of sensor / time-series windows.
//
// 🚀 What is sigfeat?
//
//	A small, deterministic feature-extraction engine built around a registry
//	("Bank") of scalar-reducing transforms:
//		• ndarray/ — dense row-major N-d float64 arrays + axis algebra
//		• feature/ — the Feature contract, structural equality, kind registry
//		• bank/    — the Bank: ordered Feature+index entries, axis planning,
//		             index resolution, output assembly, YAML save/load
//		• frame/   — thin labeled 2-D table adapter (column selection)
//		• lib/     — the concrete feature library (moments, quartiles,
//		             spectral features, slope)
//
// ✨ Why choose sigfeat?
//
//   - Deterministic – output shape and ordering are a closed-form function
//     of input rank, computation axis, index axis and registered entries
//   - Reproducible – a saved Bank reloads to bit-identical results
//   - Pure Go – no cgo, no hidden deps
//   - Extensible – register your own Feature kinds; the Bank only sees the
//     contract, never the algorithm
//
// Quick example:
//
//	b := bank.New()
//	b.Add(lib.NewMean(), lib.NewRange(), lib.NewStdDev())
//
//	// x has shape (windows=10, axes=3, samples=150); reduce the samples,
//	// index the sensor axis.
//	res, err := b.Compute(x,
//		bank.WithSamplingRate(20),
//		bank.WithAxis(-1),
//		bank.WithIndexAxis(1),
//	)
//	// res has shape (10, 3*3)
//
// See bank/example_test.go for runnable examples.
package sigfeat
