// SPDX-License-Identifier: MIT

package table_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spatialecon/regio/table"
)

type pair struct{ Region, Sector string }

// TestVector_ConstructionErrors verifies empty and duplicate label sets
// are rejected.
func TestVector_ConstructionErrors(t *testing.T) {
	_, err := table.NewVector(nil)
	assert.ErrorIs(t, err, table.ErrNoLabels, "empty label set must error")

	_, err = table.NewVector([]string{"a", "a"})
	assert.ErrorIs(t, err, table.ErrDuplicateLabel, "duplicate labels must error")

	_, err = table.NewVectorFrom([]string{"a", "b"}, []float64{1})
	assert.ErrorIs(t, err, table.ErrLengthMismatch, "short value slice must error")
}

// TestVector_Lookup verifies At/Set round-trips and unknown-label
// failures.
func TestVector_Lookup(t *testing.T) {
	v, err := table.NewVectorFrom([]string{"a", "b", "c"}, []float64{1, 2, 3})
	require.NoError(t, err)

	got, err := v.At("b")
	require.NoError(t, err)
	assert.Equal(t, 2.0, got)

	require.NoError(t, v.Set("c", 9))
	got, err = v.At("c")
	require.NoError(t, err)
	assert.Equal(t, 9.0, got)

	_, err = v.At("z")
	assert.ErrorIs(t, err, table.ErrUnknownLabel, "unknown label must not default-fill")

	assert.Equal(t, 12.0, v.Sum())
}

// TestVector_Arithmetic verifies Add/Sub/Scale and shape checking.
func TestVector_Arithmetic(t *testing.T) {
	a, err := table.NewVectorFrom([]string{"x", "y"}, []float64{1, 2})
	require.NoError(t, err)
	b, err := table.NewVectorFrom([]string{"x", "y"}, []float64{10, 20})
	require.NoError(t, err)

	sum, err := a.Add(b)
	require.NoError(t, err)
	assert.Equal(t, []float64{11, 22}, sum.Values())

	diff, err := b.Sub(a)
	require.NoError(t, err)
	assert.Equal(t, []float64{9, 18}, diff.Values())

	assert.Equal(t, []float64{2, 4}, a.Scale(2).Values())
	// Operands untouched.
	assert.Equal(t, []float64{1, 2}, a.Values())

	other, err := table.NewVectorFrom([]string{"y", "x"}, []float64{1, 2})
	require.NoError(t, err)
	_, err = a.Add(other)
	assert.ErrorIs(t, err, table.ErrShapeMismatch, "label order is part of the shape")
}

// TestVector_CheckFinite verifies the opt-in NaN/Inf guard.
func TestVector_CheckFinite(t *testing.T) {
	v, err := table.NewVectorFrom([]string{"a", "b"}, []float64{1, math.Inf(1)})
	require.NoError(t, err)
	assert.ErrorIs(t, v.CheckFinite(), table.ErrNotFinite)

	ok, err := table.NewVectorFrom([]string{"a"}, []float64{0})
	require.NoError(t, err)
	assert.NoError(t, ok.CheckFinite())
}

// TestMatrix_RowColSums verifies row/column extraction and the two
// axis sums used throughout the allocation functions.
func TestMatrix_RowColSums(t *testing.T) {
	m, err := table.NewMatrixFrom(
		[]string{"r1", "r2"},
		[]string{"c1", "c2", "c3"},
		[]float64{
			1, 2, 3,
			4, 5, 6,
		},
	)
	require.NoError(t, err)

	row, err := m.Row("r2")
	require.NoError(t, err)
	assert.Equal(t, []float64{4, 5, 6}, row.Values())
	assert.Equal(t, []string{"c1", "c2", "c3"}, row.Labels())

	col, err := m.Col("c2")
	require.NoError(t, err)
	assert.Equal(t, []float64{2, 5}, col.Values())

	assert.Equal(t, []float64{5, 7, 9}, m.SumRows().Values(), "sum down each column")
	assert.Equal(t, []float64{6, 15}, m.SumCols().Values(), "sum across each row")

	_, err = m.Row("nope")
	assert.ErrorIs(t, err, table.ErrUnknownLabel)
}

// TestMatrix_Select verifies label-based sub-matrix extraction.
func TestMatrix_Select(t *testing.T) {
	m, err := table.NewMatrixFrom(
		[]string{"r1", "r2", "r3"},
		[]string{"c1", "c2"},
		[]float64{
			1, 2,
			3, 4,
			5, 6,
		},
	)
	require.NoError(t, err)

	sub, err := m.Select([]string{"r3", "r1"}, []string{"c2"})
	require.NoError(t, err)
	assert.Equal(t, []string{"r3", "r1"}, sub.Rows())
	got, err := sub.At("r3", "c2")
	require.NoError(t, err)
	assert.Equal(t, 6.0, got)

	_, err = m.Select([]string{"r1", "r9"}, []string{"c1"})
	assert.ErrorIs(t, err, table.ErrUnknownLabel)
}

// TestMatrix_Mul verifies label-checked matrix product.
func TestMatrix_Mul(t *testing.T) {
	a, err := table.NewMatrixFrom(
		[]string{"i"},
		[]string{"m", "n"},
		[]float64{1, 2},
	)
	require.NoError(t, err)
	b, err := table.NewMatrixFrom(
		[]string{"m", "n"},
		[]string{"p"},
		[]float64{3, 4},
	)
	require.NoError(t, err)

	prod, err := a.Mul(b)
	require.NoError(t, err)
	got, err := prod.At("i", "p")
	require.NoError(t, err)
	assert.Equal(t, 11.0, got)

	_, err = b.Mul(b)
	assert.ErrorIs(t, err, table.ErrShapeMismatch, "inner labels must align")
}

// TestMatrix_CloneIndependence verifies Clone shares no mutable state.
func TestMatrix_CloneIndependence(t *testing.T) {
	m, err := table.NewMatrixFrom([]string{"r"}, []string{"c"}, []float64{1})
	require.NoError(t, err)
	c := m.Clone()
	require.NoError(t, c.Set("r", "c", 99))

	orig, err := m.At("r", "c")
	require.NoError(t, err)
	assert.Equal(t, 1.0, orig)
}

// TestFrame_ColumnLifecycle verifies append-only column semantics and
// LastColumn.
func TestFrame_ColumnLifecycle(t *testing.T) {
	keys := []pair{{"Leeds", "Agriculture"}, {"Leeds", "Production"}}
	f, err := table.NewFrame(keys)
	require.NoError(t, err)

	_, _, err = f.LastColumn()
	assert.ErrorIs(t, err, table.ErrNoColumns)

	require.NoError(t, f.AddColumn("initial e_i^m", []float64{1, 2}))
	require.NoError(t, f.AddColumn("e_i^m 0", []float64{3, 4}))

	err = f.AddColumn("e_i^m 0", []float64{5, 6})
	assert.ErrorIs(t, err, table.ErrColumnExists, "columns are never overwritten")

	err = f.AddColumn("short", []float64{1})
	assert.ErrorIs(t, err, table.ErrLengthMismatch)

	assert.Equal(t, []string{"initial e_i^m", "e_i^m 0"}, f.Columns())

	name, vals, err := f.LastColumn()
	require.NoError(t, err)
	assert.Equal(t, "e_i^m 0", name)
	assert.Equal(t, []float64{3, 4}, vals)

	got, err := f.At(pair{"Leeds", "Production"}, "initial e_i^m")
	require.NoError(t, err)
	assert.Equal(t, 2.0, got)

	_, err = f.At(pair{"York", "Agriculture"}, "initial e_i^m")
	assert.ErrorIs(t, err, table.ErrUnknownLabel)
}

// TestFrame_DuplicateKeys verifies composite key uniqueness.
func TestFrame_DuplicateKeys(t *testing.T) {
	_, err := table.NewFrame([]pair{{"a", "b"}, {"a", "b"}})
	assert.ErrorIs(t, err, table.ErrDuplicateLabel)
}
