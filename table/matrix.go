// SPDX-License-Identifier: MIT

package table

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Matrix is a row-label × column-label table backed by a dense gonum
// matrix. Row and column orders are fixed at construction.
type Matrix struct {
	rows *axis
	cols *axis
	data *mat.Dense
}

// NewMatrix builds a zero-valued Matrix over the given labels.
// Errors: ErrNoLabels, ErrDuplicateLabel.
func NewMatrix(rowLabels, colLabels []string) (*Matrix, error) {
	rows, err := newAxis(rowLabels)
	if err != nil {
		return nil, err
	}
	cols, err := newAxis(colLabels)
	if err != nil {
		return nil, err
	}
	return &Matrix{
		rows: rows,
		cols: cols,
		data: mat.NewDense(rows.len(), cols.len(), nil),
	}, nil
}

// NewMatrixFrom builds a Matrix from values in row-major order.
// Errors: ErrNoLabels, ErrDuplicateLabel, ErrLengthMismatch.
func NewMatrixFrom(rowLabels, colLabels []string, values []float64) (*Matrix, error) {
	m, err := NewMatrix(rowLabels, colLabels)
	if err != nil {
		return nil, err
	}
	if len(values) != m.rows.len()*m.cols.len() {
		return nil, fmt.Errorf("%d values for %dx%d matrix: %w",
			len(values), m.rows.len(), m.cols.len(), ErrLengthMismatch)
	}
	m.data = mat.NewDense(m.rows.len(), m.cols.len(), append([]float64(nil), values...))
	return m, nil
}

// Rows returns the row label order as a copy.
func (m *Matrix) Rows() []string { return m.rows.list() }

// Cols returns the column label order as a copy.
func (m *Matrix) Cols() []string { return m.cols.list() }

// Dims returns (rows, cols).
func (m *Matrix) Dims() (int, int) { return m.rows.len(), m.cols.len() }

// At returns the value at (row, col).
// Errors: ErrUnknownLabel.
func (m *Matrix) At(row, col string) (float64, error) {
	i, ok := m.rows.index(row)
	if !ok {
		return 0, fmt.Errorf("row %q: %w", row, ErrUnknownLabel)
	}
	j, ok := m.cols.index(col)
	if !ok {
		return 0, fmt.Errorf("column %q: %w", col, ErrUnknownLabel)
	}
	return m.data.At(i, j), nil
}

// Set assigns the value at (row, col).
// Errors: ErrUnknownLabel.
func (m *Matrix) Set(row, col string, value float64) error {
	i, ok := m.rows.index(row)
	if !ok {
		return fmt.Errorf("row %q: %w", row, ErrUnknownLabel)
	}
	j, ok := m.cols.index(col)
	if !ok {
		return fmt.Errorf("column %q: %w", col, ErrUnknownLabel)
	}
	m.data.Set(i, j, value)
	return nil
}

// Row returns one row as a Vector indexed by column labels.
// Errors: ErrUnknownLabel.
func (m *Matrix) Row(label string) (*Vector, error) {
	i, ok := m.rows.index(label)
	if !ok {
		return nil, fmt.Errorf("row %q: %w", label, ErrUnknownLabel)
	}
	out := &Vector{ax: m.cols, data: make([]float64, m.cols.len())}
	mat.Row(out.data, i, m.data)
	return out, nil
}

// Col returns one column as a Vector indexed by row labels.
// Errors: ErrUnknownLabel.
func (m *Matrix) Col(label string) (*Vector, error) {
	j, ok := m.cols.index(label)
	if !ok {
		return nil, fmt.Errorf("column %q: %w", label, ErrUnknownLabel)
	}
	out := &Vector{ax: m.rows, data: make([]float64, m.rows.len())}
	mat.Col(out.data, j, m.data)
	return out, nil
}

// Select returns the sub-matrix of the given rows and columns, in the
// given order.
// Errors: ErrNoLabels, ErrDuplicateLabel, ErrUnknownLabel.
func (m *Matrix) Select(rows, cols []string) (*Matrix, error) {
	out, err := NewMatrix(rows, cols)
	if err != nil {
		return nil, err
	}
	for _, r := range rows {
		for _, c := range cols {
			v, err := m.At(r, c)
			if err != nil {
				return nil, err
			}
			if err := out.Set(r, c, v); err != nil {
				return nil, err
			}
		}
	}
	return out, nil
}

// SumRows sums down each column, returning a Vector of per-column
// totals indexed by column labels.
func (m *Matrix) SumRows() *Vector {
	out := &Vector{ax: m.cols, data: make([]float64, m.cols.len())}
	r, c := m.data.Dims()
	for j := 0; j < c; j++ {
		var s float64
		for i := 0; i < r; i++ {
			s += m.data.At(i, j)
		}
		out.data[j] = s
	}
	return out
}

// SumCols sums across each row, returning a Vector of per-row totals
// indexed by row labels.
func (m *Matrix) SumCols() *Vector {
	out := &Vector{ax: m.rows, data: make([]float64, m.rows.len())}
	r, c := m.data.Dims()
	for i := 0; i < r; i++ {
		var s float64
		for j := 0; j < c; j++ {
			s += m.data.At(i, j)
		}
		out.data[i] = s
	}
	return out
}

// Scale returns a new Matrix with every value multiplied by k.
func (m *Matrix) Scale(k float64) *Matrix {
	out := m.Clone()
	out.data.Scale(k, out.data)
	return out
}

// Add returns m + other elementwise. Shapes must match exactly.
// Errors: ErrShapeMismatch.
func (m *Matrix) Add(other *Matrix) (*Matrix, error) {
	if !m.sameShape(other) {
		return nil, ErrShapeMismatch
	}
	out := m.Clone()
	out.data.Add(out.data, other.data)
	return out, nil
}

// Sub returns m - other elementwise. Shapes must match exactly.
// Errors: ErrShapeMismatch.
func (m *Matrix) Sub(other *Matrix) (*Matrix, error) {
	if !m.sameShape(other) {
		return nil, ErrShapeMismatch
	}
	out := m.Clone()
	out.data.Sub(out.data, other.data)
	return out, nil
}

// Mul returns the matrix product m · other: m's columns must carry the
// same labels as other's rows. The result is indexed by m's rows and
// other's columns.
// Errors: ErrShapeMismatch.
func (m *Matrix) Mul(other *Matrix) (*Matrix, error) {
	if !m.cols.equal(other.rows) {
		return nil, ErrShapeMismatch
	}
	out := &Matrix{
		rows: m.rows,
		cols: other.cols,
		data: mat.NewDense(m.rows.len(), other.cols.len(), nil),
	}
	out.data.Mul(m.data, other.data)
	return out, nil
}

// Clone returns an independent copy sharing no mutable state.
func (m *Matrix) Clone() *Matrix {
	out := &Matrix{rows: m.rows, cols: m.cols, data: mat.NewDense(m.rows.len(), m.cols.len(), nil)}
	out.data.Copy(m.data)
	return out
}

// Dense exposes the backing gonum matrix as a copy, for callers that
// want raw linear algebra without label bookkeeping.
func (m *Matrix) Dense() *mat.Dense {
	out := mat.NewDense(m.rows.len(), m.cols.len(), nil)
	out.Copy(m.data)
	return out
}

// CheckFinite reports ErrNotFinite if any value is NaN or ±Inf.
func (m *Matrix) CheckFinite() error {
	r, c := m.data.Dims()
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if x := m.data.At(i, j); math.IsNaN(x) || math.IsInf(x, 0) {
				return fmt.Errorf("(%q, %q): %w", m.rows.labels[i], m.cols.labels[j], ErrNotFinite)
			}
		}
	}
	return nil
}

func (m *Matrix) sameShape(other *Matrix) bool {
	return m.rows.equal(other.rows) && m.cols.equal(other.cols)
}
