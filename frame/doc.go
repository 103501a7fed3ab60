// Package frame is the thin labeled-table adapter in front of the feature
// engine: a rank-2 ndarray plus column names, with positional selection of
// named columns. Label bookkeeping stays out of the array core.
package frame
