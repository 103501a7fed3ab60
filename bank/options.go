// Package bank: functional configuration for Bank construction and Compute.
// Options are plain setters; cross-field validation happens once per call in
// Compute against the documented defaults (last-writer-wins semantics).

package bank

// Defaults - single source of truth for zero-option behavior.
const (
	// DefaultAxis is the computation axis when none is given: the last axis.
	DefaultAxis = -1
)

// Warning is the non-fatal diagnostic side channel. Today the only source is
// a duplicate feature registration.
type Warning struct {
	// Message describes the condition.
	Message string
}

// WarningSink receives warnings as they are emitted.
type WarningSink func(Warning)

// Option configures a Bank at construction time.
type Option func(*Bank)

// WithWarningSink routes warnings to sink instead of the Bank's internal
// collected list. The sink must not call back into the Bank.
func WithWarningSink(sink WarningSink) Option {
	return func(b *Bank) { b.sink = sink }
}

// computeOptions stores the effective per-call configuration.
type computeOptions struct {
	fs          float64
	axis        int
	indexAxis   *int
	override    *IndexSpec  // uniform compute-time index override
	perEntry    []IndexSpec // per-entry compute-time index override
	columns     []string
	wantColumns bool
}

// ComputeOption configures a single Compute call.
type ComputeOption func(*computeOptions)

// WithSamplingRate supplies the sampling frequency in Hz. Required (and
// validated > 0) only when a registered feature reports RequiresFS.
func WithSamplingRate(fs float64) ComputeOption {
	return func(o *computeOptions) { o.fs = fs }
}

// WithAxis sets the computation axis (negative values count from the end).
// Default: the last axis.
func WithAxis(axis int) ComputeOption {
	return func(o *computeOptions) { o.axis = axis }
}

// WithIndexAxis enables index-axis handling on the given axis. Must differ
// from the computation axis and requires input rank >= 2.
func WithIndexAxis(axis int) ComputeOption {
	return func(o *computeOptions) {
		a := axis
		o.indexAxis = &a
	}
}

// WithIndices overrides every entry's stored index spec for this call only.
func WithIndices(spec IndexSpec) ComputeOption {
	return func(o *computeOptions) {
		s := spec
		o.override = &s
	}
}

// WithEntryIndices overrides the stored index specs per entry for this call
// only; the list length must equal Len() of the Bank.
func WithEntryIndices(specs ...IndexSpec) ComputeOption {
	return func(o *computeOptions) { o.perEntry = append([]IndexSpec(nil), specs...) }
}

// WithColumns selects named columns of a labeled table input (in the given
// order) before any other processing. Errors when the input is not a table.
func WithColumns(columns ...string) ComputeOption {
	return func(o *computeOptions) {
		o.columns = append([]string(nil), columns...)
		o.wantColumns = true
	}
}

// gatherComputeOptions resolves setters against defaults.
func gatherComputeOptions(opts []ComputeOption) computeOptions {
	o := computeOptions{axis: DefaultAxis}
	for _, set := range opts {
		set(&o)
	}

	return o
}
