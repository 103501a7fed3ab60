package frame

import (
	"errors"
	"fmt"

	"github.com/sigfeat/sigfeat/ndarray"
)

var (
	// ErrNotTabular indicates data that is not rank 2.
	ErrNotTabular = errors.New("frame: data must be rank 2")

	// ErrColumnCount indicates a name count differing from the data's width.
	ErrColumnCount = errors.New("frame: column count mismatch")

	// ErrUnknownColumn indicates a selected column name that does not exist.
	ErrUnknownColumn = errors.New("frame: unknown column")

	// ErrDuplicateColumn indicates repeated names at construction.
	ErrDuplicateColumn = errors.New("frame: duplicate column name")
)

// Table is a labeled 2-D array: rows along axis 0, named columns along axis 1.
type Table struct {
	columns []string
	data    *ndarray.Array
}

// New builds a Table from column names and rank-2 data (len(columns) must
// equal the column axis length). The data is cloned.
func New(columns []string, data *ndarray.Array) (*Table, error) {
	if data.NDim() != 2 {
		return nil, fmt.Errorf("rank %d: %w", data.NDim(), ErrNotTabular)
	}
	if len(columns) != data.Shape()[1] {
		return nil, fmt.Errorf("%d names for %d columns: %w", len(columns), data.Shape()[1], ErrColumnCount)
	}
	seen := make(map[string]struct{}, len(columns))
	for _, c := range columns {
		if _, ok := seen[c]; ok {
			return nil, fmt.Errorf("%q: %w", c, ErrDuplicateColumn)
		}
		seen[c] = struct{}{}
	}

	return &Table{columns: append([]string(nil), columns...), data: data.Clone()}, nil
}

// Columns returns a copy of the column names.
func (t *Table) Columns() []string { return append([]string(nil), t.columns...) }

// Values returns the full data as a rank-2 array (cloned).
func (t *Table) Values() *ndarray.Array { return t.data.Clone() }

// Select returns the named columns, in the given order, as a rank-2 array.
func (t *Table) Select(columns ...string) (*ndarray.Array, error) {
	positions := make([]int, len(columns))
	for i, name := range columns {
		pos := -1
		for j, c := range t.columns {
			if c == name {
				pos = j

				break
			}
		}
		if pos < 0 {
			return nil, fmt.Errorf("%q: %w", name, ErrUnknownColumn)
		}
		positions[i] = pos
	}

	return ndarray.Take(t.data, 1, positions)
}
