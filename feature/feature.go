// Package feature: the Feature contract and structural identity helpers.

package feature

import (
	"strconv"
	"strings"

	"github.com/sigfeat/sigfeat/ndarray"
)

// Param is one named parameter of a feature. Parameters are primitive
// float64 values; integral parameters (pad levels, lags) are stored as whole
// floats so that identity and the persisted form stay uniform.
type Param struct {
	Name  string
	Value float64
}

// Feature is an immutable, named, parameterized scalar reduction.
//
// Compute must remove exactly the given axis (rank N → N−1) and preserve the
// relative order of the remaining axes; axis may be negative (numpy-style).
// fs is the sampling frequency in Hz; features that do not need it must
// ignore it, features that do must report RequiresFS() == true and will only
// be invoked with fs > 0.
type Feature interface {
	// Kind returns the feature's registered kind name (its string identity).
	Kind() string

	// Params returns the ordered parameter list. The order is fixed per
	// kind; equality and Key depend on it.
	Params() []Param

	// RequiresFS reports whether Compute needs a sampling frequency.
	RequiresFS() bool

	// Compute reduces x along axis, removing it.
	Compute(x *ndarray.Array, axis int, fs float64) (*ndarray.Array, error)
}

// Equal reports structural equality: same kind and identical ordered
// parameters. Two equal features are interchangeable for containment checks.
func Equal(a, b Feature) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Kind() != b.Kind() {
		return false
	}
	pa, pb := a.Params(), b.Params()
	if len(pa) != len(pb) {
		return false
	}
	for i := range pa {
		if pa[i] != pb[i] {
			return false
		}
	}

	return true
}

// Key returns a stable string identity derived from kind + ordered
// parameters, suitable as a map key (the hash contract behind Equal:
// Equal(a, b) ⇔ Key(a) == Key(b)).
func Key(f Feature) string {
	var sb strings.Builder
	sb.WriteString(f.Kind())
	sb.WriteByte('(')
	for i, p := range f.Params() {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(p.Name)
		sb.WriteByte('=')
		sb.WriteString(strconv.FormatFloat(p.Value, 'g', -1, 64))
	}
	sb.WriteByte(')')

	return sb.String()
}
