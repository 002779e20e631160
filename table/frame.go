// SPDX-License-Identifier: MIT

package table

import "fmt"

// Frame is a composite-keyed table of named float64 columns. Keys are
// fixed at construction; columns are appended and never overwritten,
// which is how the convergence engine retains one column per
// iteration for inspection.
//
// K is the composite key type, e.g. a (region, sector) or
// (region, other region, sector) struct.
type Frame[K comparable] struct {
	keys  []K
	pos   map[K]int
	order []string
	cols  map[string][]float64
}

// NewFrame builds an empty Frame over keys.
// Errors: ErrNoLabels, ErrDuplicateLabel.
func NewFrame[K comparable](keys []K) (*Frame[K], error) {
	if len(keys) == 0 {
		return nil, ErrNoLabels
	}
	f := &Frame[K]{
		keys: make([]K, len(keys)),
		pos:  make(map[K]int, len(keys)),
		cols: make(map[string][]float64),
	}
	for i, k := range keys {
		if _, dup := f.pos[k]; dup {
			return nil, fmt.Errorf("%v: %w", k, ErrDuplicateLabel)
		}
		f.keys[i] = k
		f.pos[k] = i
	}
	return f, nil
}

// Len returns the number of keyed rows.
func (f *Frame[K]) Len() int { return len(f.keys) }

// Keys returns the key order as a copy.
func (f *Frame[K]) Keys() []K {
	out := make([]K, len(f.keys))
	copy(out, f.keys)
	return out
}

// Columns returns the column names in insertion order.
func (f *Frame[K]) Columns() []string {
	out := make([]string, len(f.order))
	copy(out, f.order)
	return out
}

// NumColumns returns the number of columns added so far.
func (f *Frame[K]) NumColumns() int { return len(f.order) }

// AddColumn appends a named column. values must align with the key
// order.
// Errors: ErrColumnExists, ErrLengthMismatch.
func (f *Frame[K]) AddColumn(name string, values []float64) error {
	if _, dup := f.cols[name]; dup {
		return fmt.Errorf("%q: %w", name, ErrColumnExists)
	}
	if len(values) != len(f.keys) {
		return fmt.Errorf("column %q has %d values for %d keys: %w",
			name, len(values), len(f.keys), ErrLengthMismatch)
	}
	col := make([]float64, len(values))
	copy(col, values)
	f.order = append(f.order, name)
	f.cols[name] = col
	return nil
}

// Column returns a named column in key order as a copy.
// Errors: ErrUnknownColumn.
func (f *Frame[K]) Column(name string) ([]float64, error) {
	col, ok := f.cols[name]
	if !ok {
		return nil, fmt.Errorf("%q: %w", name, ErrUnknownColumn)
	}
	out := make([]float64, len(col))
	copy(out, col)
	return out, nil
}

// LastColumn returns the name and values of the most recently added
// column — callers typically read it as the converged result.
// Errors: ErrNoColumns.
func (f *Frame[K]) LastColumn() (string, []float64, error) {
	if len(f.order) == 0 {
		return "", nil, ErrNoColumns
	}
	name := f.order[len(f.order)-1]
	col, err := f.Column(name)
	return name, col, err
}

// At returns the value for (key, column).
// Errors: ErrUnknownLabel, ErrUnknownColumn.
func (f *Frame[K]) At(key K, column string) (float64, error) {
	i, ok := f.pos[key]
	if !ok {
		return 0, fmt.Errorf("%v: %w", key, ErrUnknownLabel)
	}
	col, ok := f.cols[column]
	if !ok {
		return 0, fmt.Errorf("%q: %w", column, ErrUnknownColumn)
	}
	return col[i], nil
}

// HasKey reports whether key is part of the frame's index.
func (f *Frame[K]) HasKey(key K) bool {
	_, ok := f.pos[key]
	return ok
}

// Clone returns an independent copy of the frame and all columns.
func (f *Frame[K]) Clone() *Frame[K] {
	out := &Frame[K]{
		keys:  append([]K(nil), f.keys...),
		pos:   make(map[K]int, len(f.pos)),
		order: append([]string(nil), f.order...),
		cols:  make(map[string][]float64, len(f.cols)),
	}
	for k, i := range f.pos {
		out.pos[k] = i
	}
	for name, col := range f.cols {
		out.cols[name] = append([]float64(nil), col...)
	}
	return out
}
