// SPDX-License-Identifier: MIT

package iotable

import (
	"fmt"
	"slices"

	"github.com/spatialecon/regio/table"
)

// Table is the canonical national input-output table: a square
// sector × sector core of intermediate flows plus named dog-leg rows
// (per-sector aggregates such as Total Sales) and dog-leg columns
// (per-sector demand categories such as Household Purchase).
type Table struct {
	sectors  []string
	core     *table.Matrix
	rows     map[string]*table.Vector
	cols     map[string]*table.Vector
	rowOrder []string
	colOrder []string
}

// New builds a Table around core, whose row and column labels must be
// the same sector list in the same order.
// Errors: ErrNotSquare.
func New(core *table.Matrix) (*Table, error) {
	if !slices.Equal(core.Rows(), core.Cols()) {
		return nil, ErrNotSquare
	}
	return &Table{
		sectors: core.Rows(),
		core:    core.Clone(),
		rows:    make(map[string]*table.Vector),
		cols:    make(map[string]*table.Vector),
	}, nil
}

// Sectors returns the sector label order.
func (t *Table) Sectors() []string {
	return append([]string(nil), t.sectors...)
}

// Core returns a copy of the sector × sector flow matrix.
func (t *Table) Core() *table.Matrix { return t.core.Clone() }

// AddDogLegRow attaches a per-sector aggregate row (e.g. Total Sales).
// The vector must be indexed by exactly the table's sectors.
// Errors: ErrDuplicateDogLeg, ErrSectorMismatch.
func (t *Table) AddDogLegRow(name string, v *table.Vector) error {
	if _, dup := t.rows[name]; dup {
		return fmt.Errorf("row %q: %w", name, ErrDuplicateDogLeg)
	}
	if !slices.Equal(v.Labels(), t.sectors) {
		return fmt.Errorf("row %q: %w", name, ErrSectorMismatch)
	}
	t.rows[name] = v.Clone()
	t.rowOrder = append(t.rowOrder, name)
	return nil
}

// AddDogLegColumn attaches a per-sector demand column
// (e.g. Household Purchase).
// Errors: ErrDuplicateDogLeg, ErrSectorMismatch.
func (t *Table) AddDogLegColumn(name string, v *table.Vector) error {
	if _, dup := t.cols[name]; dup {
		return fmt.Errorf("column %q: %w", name, ErrDuplicateDogLeg)
	}
	if !slices.Equal(v.Labels(), t.sectors) {
		return fmt.Errorf("column %q: %w", name, ErrSectorMismatch)
	}
	t.cols[name] = v.Clone()
	t.colOrder = append(t.colOrder, name)
	return nil
}

// DogLegRow returns a named aggregate row.
// Errors: ErrMissingDogLeg.
func (t *Table) DogLegRow(name string) (*table.Vector, error) {
	v, ok := t.rows[name]
	if !ok {
		return nil, fmt.Errorf("row %q: %w", name, ErrMissingDogLeg)
	}
	return v.Clone(), nil
}

// DogLegColumn returns a named demand column.
// Errors: ErrMissingDogLeg.
func (t *Table) DogLegColumn(name string) (*table.Vector, error) {
	v, ok := t.cols[name]
	if !ok {
		return nil, fmt.Errorf("column %q: %w", name, ErrMissingDogLeg)
	}
	return v.Clone(), nil
}

// DogLegRowNames returns attached row names in insertion order.
func (t *Table) DogLegRowNames() []string {
	return append([]string(nil), t.rowOrder...)
}

// DogLegColumnNames returns attached column names in insertion order.
func (t *Table) DogLegColumnNames() []string {
	return append([]string(nil), t.colOrder...)
}

// SumDogLegColumns sums the named demand columns per sector, e.g. the
// three final demand categories into one final demand series.
// Errors: ErrMissingDogLeg.
func (t *Table) SumDogLegColumns(names ...string) (*table.Vector, error) {
	out, err := table.NewVector(t.sectors)
	if err != nil {
		return nil, err
	}
	for _, name := range names {
		col, err := t.DogLegColumn(name)
		if err != nil {
			return nil, err
		}
		if out, err = out.Add(col); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// SumDogLegRows sums the named aggregate rows per sector.
// Errors: ErrMissingDogLeg.
func (t *Table) SumDogLegRows(names ...string) (*table.Vector, error) {
	out, err := table.NewVector(t.sectors)
	if err != nil {
		return nil, err
	}
	for _, name := range names {
		row, err := t.DogLegRow(name)
		if err != nil {
			return nil, err
		}
		if out, err = out.Add(row); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// Scale returns a new Table with the core and every dog leg multiplied
// by k. Used to convert source units (e.g. £m) to model units.
func (t *Table) Scale(k float64) *Table {
	out := &Table{
		sectors:  t.Sectors(),
		core:     t.core.Scale(k),
		rows:     make(map[string]*table.Vector, len(t.rows)),
		cols:     make(map[string]*table.Vector, len(t.cols)),
		rowOrder: append([]string(nil), t.rowOrder...),
		colOrder: append([]string(nil), t.colOrder...),
	}
	for name, v := range t.rows {
		out.rows[name] = v.Scale(k)
	}
	for name, v := range t.cols {
		out.cols[name] = v.Scale(k)
	}
	return out
}
