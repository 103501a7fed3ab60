// Package ndarray: the Array type — construction, accessors, conversion.
// Array is a concrete, row-major container storing elements in a flat slice
// for performance and cache friendliness (same layout policy as a dense
// matrix, generalized to arbitrary rank).

package ndarray

import (
	"fmt"
	"reflect"
)

// Array is a dense, row-major N-dimensional array of float64 values.
// shape holds the per-axis lengths; data holds prod(shape) elements with the
// last axis varying fastest. A rank-0 Array (empty shape, one element)
// represents a scalar and only ever appears as a reduction result.
type Array struct {
	shape []int
	data  []float64
}

// New creates an Array of the given shape initialized to zeros.
// Every dimension must be > 0; a nil/empty shape yields a scalar.
func New(shape ...int) (*Array, error) {
	n := 1
	for _, d := range shape {
		if d <= 0 {
			return nil, fmt.Errorf("dimension %d: %w", d, ErrBadShape)
		}
		n *= d
	}

	return &Array{shape: append([]int(nil), shape...), data: make([]float64, n)}, nil
}

// FromSlice wraps a flat slice into an Array of the given shape.
// The slice is copied; len(data) must equal prod(shape).
func FromSlice(data []float64, shape ...int) (*Array, error) {
	a, err := New(shape...)
	if err != nil {
		return nil, err
	}
	if len(data) != len(a.data) {
		return nil, fmt.Errorf("%d elements for shape %v: %w", len(data), shape, ErrShapeMismatch)
	}
	copy(a.data, data)

	return a, nil
}

// Scalar wraps a single value into a rank-0 Array.
func Scalar(v float64) *Array {
	return &Array{shape: nil, data: []float64{v}}
}

// NDim returns the rank (number of axes).
func (a *Array) NDim() int { return len(a.shape) }

// Len returns the total number of elements.
func (a *Array) Len() int { return len(a.data) }

// Shape returns a copy of the per-axis lengths.
func (a *Array) Shape() []int { return append([]int(nil), a.shape...) }

// Data returns a copy of the flat row-major backing data.
func (a *Array) Data() []float64 { return append([]float64(nil), a.data...) }

// At retrieves the element at the given multi-index.
func (a *Array) At(index ...int) (float64, error) {
	if len(index) != len(a.shape) {
		return 0, fmt.Errorf("index rank %d vs array rank %d: %w", len(index), len(a.shape), ErrShapeMismatch)
	}
	flat := 0
	for i, idx := range index {
		if idx < 0 || idx >= a.shape[i] {
			return 0, fmt.Errorf("index %d on axis %d (length %d): %w", idx, i, a.shape[i], ErrIndexOutOfRange)
		}
		flat = flat*a.shape[i] + idx
	}

	return a.data[flat], nil
}

// Clone returns a deep copy of the Array.
func (a *Array) Clone() *Array {
	return &Array{shape: a.Shape(), data: a.Data()}
}

// Equal reports exact element-wise and shape equality.
func Equal(a, b *Array) bool {
	if len(a.shape) != len(b.shape) {
		return false
	}
	for i := range a.shape {
		if a.shape[i] != b.shape[i] {
			return false
		}
	}
	for i := range a.data {
		if a.data[i] != b.data[i] {
			return false
		}
	}

	return true
}

// String implements fmt.Stringer for easy debugging.
func (a *Array) String() string {
	return fmt.Sprintf("ndarray%v%v", a.shape, a.data)
}

// FromAny converts an arbitrary nested Go value into a rectangular Array.
// Accepted inputs: *Array (cloned), any nesting of slices/arrays whose
// leaves are numeric (all int/uint/float kinds). The nesting must be
// rectangular: all siblings at every depth share one length and one depth.
// Returns ErrConversion for jagged nesting, mixed leaf/branch levels,
// non-numeric leaves, or unsupported container types.
func FromAny(v any) (*Array, error) {
	if a, ok := v.(*Array); ok {
		return a.Clone(), nil
	}

	rv := reflect.ValueOf(v)
	shape, err := nestedShape(rv)
	if err != nil {
		return nil, err
	}
	out, err := New(shape...)
	if err != nil {
		// A zero-length level surfaces as ErrBadShape; report it as a
		// conversion failure since the caller supplied the nested value.
		return nil, fmt.Errorf("%v: %w", err, ErrConversion)
	}
	pos := 0
	if err = fillNested(rv, shape, out.data, &pos); err != nil {
		return nil, err
	}

	return out, nil
}

// nestedShape walks the first element at each nesting level to propose a
// shape. fillNested validates every sibling against it afterwards.
func nestedShape(rv reflect.Value) ([]int, error) {
	var shape []int
	for {
		switch rv.Kind() {
		case reflect.Interface:
			if rv.IsNil() {
				return nil, fmt.Errorf("nil element: %w", ErrConversion)
			}
			rv = rv.Elem()
		case reflect.Slice, reflect.Array:
			shape = append(shape, rv.Len())
			if rv.Len() == 0 {
				return nil, fmt.Errorf("empty level at depth %d: %w", len(shape)-1, ErrConversion)
			}
			rv = rv.Index(0)
		default:
			if !isNumericKind(rv.Kind()) {
				return nil, fmt.Errorf("non-numeric leaf %s: %w", rv.Kind(), ErrConversion)
			}

			return shape, nil
		}
	}
}

// fillNested copies leaves into dst in row-major order, enforcing that every
// branch matches the proposed shape (rectangularity check).
func fillNested(rv reflect.Value, shape []int, dst []float64, pos *int) error {
	for rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return fmt.Errorf("nil element: %w", ErrConversion)
		}
		rv = rv.Elem()
	}
	if len(shape) == 0 {
		f, ok := numericValue(rv)
		if !ok {
			return fmt.Errorf("non-numeric leaf %s at a depth expecting values: %w", rv.Kind(), ErrConversion)
		}
		dst[*pos] = f
		*pos++

		return nil
	}
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return fmt.Errorf("scalar %s at a depth expecting length %d: %w", rv.Kind(), shape[0], ErrConversion)
	}
	if rv.Len() != shape[0] {
		return fmt.Errorf("jagged input: length %d where %d expected: %w", rv.Len(), shape[0], ErrConversion)
	}
	for i := 0; i < rv.Len(); i++ {
		if err := fillNested(rv.Index(i), shape[1:], dst, pos); err != nil {
			return err
		}
	}

	return nil
}

// isNumericKind reports whether k is an int, uint or float kind.
func isNumericKind(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	default:
		return false
	}
}

// numericValue extracts a float64 from a numeric reflect.Value.
func numericValue(rv reflect.Value) (float64, bool) {
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	default:
		return 0, false
	}
}
