// Package bank: the Bank type — registration, containment and the single
// Compute pass that orchestrates the Index Resolver and the Axis Planner and
// concatenates per-entry outputs into one result array.

package bank

import (
	"fmt"

	"github.com/sigfeat/sigfeat/feature"
	"github.com/sigfeat/sigfeat/frame"
	"github.com/sigfeat/sigfeat/ndarray"
)

// entry is one registered (Feature, IndexSpec) pair. Entries preserve
// insertion order and are never mutated; Load replaces the whole collection.
type entry struct {
	feat  feature.Feature
	index IndexSpec
}

// Bank is an ordered registry of Feature + index-selection entries.
// The zero value is not ready; use New.
type Bank struct {
	entries  []entry
	sink     WarningSink
	warnings []Warning
}

// New creates an empty Bank. By default warnings are collected on the Bank
// and retrievable via Warnings; WithWarningSink redirects them.
func New(opts ...Option) *Bank {
	b := &Bank{}
	for _, set := range opts {
		set(b)
	}

	return b
}

// NewFromFile creates a Bank and loads a persisted configuration into it.
func NewFromFile(path string, opts ...Option) (*Bank, error) {
	b := New(opts...)
	if err := b.Load(path); err != nil {
		return nil, err
	}

	return b, nil
}

// Len returns the number of entries, i.e. the number of feature computations
// that contribute to the concatenated output (duplicates count).
func (b *Bank) Len() int { return len(b.entries) }

// Warnings returns a copy of the warnings collected so far (only populated
// when no custom sink is installed).
func (b *Bank) Warnings() []Warning { return append([]Warning(nil), b.warnings...) }

// warn emits one warning to the configured sink or the collected list.
func (b *Bank) warn(w Warning) {
	if b.sink != nil {
		b.sink(w)

		return
	}
	b.warnings = append(b.warnings, w)
}

// Add registers features with the all-positions index selection.
// Re-registering a structurally equal feature emits a duplicate Warning but
// still appends the entry; both contribute output.
func (b *Bank) Add(feats ...feature.Feature) {
	b.AddWithIndex(IndexAll(), feats...)
}

// AddWithIndex registers features sharing one index spec.
func (b *Bank) AddWithIndex(index IndexSpec, feats ...feature.Feature) {
	for _, f := range feats {
		b.append(f, index)
	}
}

// AddWithIndices registers features with one index spec per feature,
// element-wise. Errors with ErrIndexCount when the lengths differ.
func (b *Bank) AddWithIndices(indices []IndexSpec, feats ...feature.Feature) error {
	if len(indices) != len(feats) {
		return fmt.Errorf("%d specs for %d features: %w", len(indices), len(feats), ErrIndexCount)
	}
	for i, f := range feats {
		b.append(f, indices[i])
	}

	return nil
}

// append stores one entry, emitting the duplicate warning when a
// structurally equal feature is already present.
func (b *Bank) append(f feature.Feature, index IndexSpec) {
	if b.Contains(f) {
		b.warn(Warning{Message: fmt.Sprintf("feature %s is already in the bank; duplicate entry added", feature.Key(f))})
	}
	b.entries = append(b.entries, entry{feat: f, index: index})
}

// Contains reports whether any stored feature is structurally equal to f
// (kind + parameters; the stored index specs are ignored). A nil f is never
// contained.
func (b *Bank) Contains(f feature.Feature) bool {
	if f == nil {
		return false
	}
	for _, e := range b.entries {
		if feature.Equal(e.feat, f) {
			return true
		}
	}

	return false
}

// ContainsKind is the bare-kind membership test. Containment is defined over
// fully-parameterized instances only, so a kind name alone never matches:
// this always reports false. It exists so callers probing with a kind get
// the documented answer instead of improvising one.
func (b *Bank) ContainsKind(string) bool { return false }

// Compute converts signal into a rectangular array, applies every entry's
// feature along the computation axis and assembles one result array.
//
// signal may be an *ndarray.Array, a *frame.Table, or any rectangular
// nesting of numeric Go slices. Options: WithSamplingRate, WithAxis
// (default: last axis), WithIndexAxis, WithIndices / WithEntryIndices
// (compute-time overrides), WithColumns (table input only).
//
// With an index axis, each entry's selected positions are reduced
// independently and concatenated along that axis — entry order first,
// position order within an entry second. Without one, the per-entry results
// are stacked along a new leading axis of size Len(); a single-entry Bank
// returns its result unstacked.
//
// Compute mutates neither the Bank nor the input; it fully succeeds or
// errors without partial results.
func (b *Bank) Compute(signal any, opts ...ComputeOption) (*ndarray.Array, error) {
	if len(b.entries) == 0 {
		return nil, ErrNoEntries
	}
	o := gatherComputeOptions(opts)

	x, err := b.convert(signal, o)
	if err != nil {
		return nil, err
	}

	plan, err := newComputePlan(x.NDim(), o.axis, o.indexAxis)
	if err != nil {
		return nil, err
	}

	specs, err := b.callSpecs(o)
	if err != nil {
		return nil, err
	}

	if err = b.checkSamplingRate(o.fs); err != nil {
		return nil, err
	}

	if !plan.hasIndex {
		return b.computeStacked(x, plan, o.fs)
	}

	return b.computeIndexed(x, plan, specs, o.fs)
}

// convert normalizes the input into a rectangular array, applying table
// column selection when requested.
func (b *Bank) convert(signal any, o computeOptions) (*ndarray.Array, error) {
	if t, ok := signal.(*frame.Table); ok {
		if o.wantColumns {
			return t.Select(o.columns...)
		}

		return t.Values(), nil
	}
	if o.wantColumns {
		return nil, ErrColumnsWithoutTable
	}

	return ndarray.FromAny(signal)
}

// callSpecs resolves which index spec applies to each entry for this call:
// stored specs, a uniform override, or a per-entry override list.
func (b *Bank) callSpecs(o computeOptions) ([]IndexSpec, error) {
	specs := make([]IndexSpec, len(b.entries))
	switch {
	case o.perEntry != nil:
		if len(o.perEntry) != len(b.entries) {
			return nil, fmt.Errorf("%d specs for %d entries: %w", len(o.perEntry), len(b.entries), ErrIndexCount)
		}
		copy(specs, o.perEntry)
	case o.override != nil:
		for i := range specs {
			specs[i] = *o.override
		}
	default:
		for i, e := range b.entries {
			specs[i] = e.index
		}
	}

	return specs, nil
}

// checkSamplingRate enforces fs > 0 when any registered feature needs it.
func (b *Bank) checkSamplingRate(fs float64) error {
	if fs > 0 {
		return nil
	}
	for _, e := range b.entries {
		if e.feat.RequiresFS() {
			return fmt.Errorf("%s: %w", feature.Key(e.feat), ErrSamplingRate)
		}
	}

	return nil
}

// computeStacked handles the no-index-axis layout: every entry reduces the
// whole array; results stack along a new leading axis (except a lone entry).
func (b *Bank) computeStacked(x *ndarray.Array, plan computePlan, fs float64) (*ndarray.Array, error) {
	results := make([]*ndarray.Array, len(b.entries))
	for i, e := range b.entries {
		r, err := e.feat.Compute(x, plan.axis, fs)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", feature.Key(e.feat), err)
		}
		results[i] = r
	}
	if len(results) == 1 {
		return results[0], nil
	}

	return ndarray.Stack(results...)
}

// computeIndexed handles the index-axis layout: per-entry Takes on the
// leading (index) axis of the planned view, reduction along the trailing
// computation axis, concatenation in entry order, then reassembly.
func (b *Bank) computeIndexed(x *ndarray.Array, plan computePlan, specs []IndexSpec, fs float64) (*ndarray.Array, error) {
	view, err := plan.view(x)
	if err != nil {
		return nil, err
	}
	length := view.Shape()[0]

	parts := make([]*ndarray.Array, len(b.entries))
	for i, e := range b.entries {
		positions, err := specs[i].Resolve(length)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", feature.Key(e.feat), err)
		}
		sub, err := ndarray.Take(view, 0, positions)
		if err != nil {
			return nil, err
		}
		r, err := e.feat.Compute(sub, -1, fs)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", feature.Key(e.feat), err)
		}
		parts[i] = r
	}

	cat, err := ndarray.Concatenate(0, parts...)
	if err != nil {
		return nil, err
	}

	return plan.assemble(cat)
}
