// SPDX-License-Identifier: MIT

package iotable_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spatialecon/regio/iotable"
	"github.com/spatialecon/regio/table"
)

var twoSectors = []string{"Agriculture", "Production"}

func twoSectorTable(t *testing.T) *iotable.Table {
	t.Helper()
	core, err := table.NewMatrixFrom(twoSectors, twoSectors, []float64{
		10, 20,
		30, 40,
	})
	require.NoError(t, err)
	tab, err := iotable.New(core)
	require.NoError(t, err)

	sales, err := table.NewVectorFrom(twoSectors, []float64{100, 200})
	require.NoError(t, err)
	require.NoError(t, tab.AddDogLegRow(iotable.TotalSalesRow, sales))
	return tab
}

// TestNew_RejectsNonSquare verifies row/column sector labels must
// match exactly.
func TestNew_RejectsNonSquare(t *testing.T) {
	core, err := table.NewMatrixFrom([]string{"A"}, []string{"B"}, []float64{1})
	require.NoError(t, err)
	_, err = iotable.New(core)
	assert.ErrorIs(t, err, iotable.ErrNotSquare)
}

// TestDogLegs verifies attach/lookup semantics and label checking.
func TestDogLegs(t *testing.T) {
	tab := twoSectorTable(t)

	_, err := tab.DogLegRow("Imports")
	assert.ErrorIs(t, err, iotable.ErrMissingDogLeg)

	sales, err := tab.DogLegRow(iotable.TotalSalesRow)
	require.NoError(t, err)
	got, err := sales.At("Production")
	require.NoError(t, err)
	assert.Equal(t, 200.0, got)

	dupe, err := table.NewVectorFrom(twoSectors, []float64{0, 0})
	require.NoError(t, err)
	assert.ErrorIs(t, tab.AddDogLegRow(iotable.TotalSalesRow, dupe), iotable.ErrDuplicateDogLeg)

	wrong, err := table.NewVectorFrom([]string{"X", "Y"}, []float64{0, 0})
	require.NoError(t, err)
	assert.ErrorIs(t, tab.AddDogLegColumn("Household Purchase", wrong), iotable.ErrSectorMismatch)
}

// TestSumDogLegColumns verifies final-demand style summation.
func TestSumDogLegColumns(t *testing.T) {
	tab := twoSectorTable(t)
	for i, name := range iotable.FinalDemandColumns {
		v, err := table.NewVectorFrom(twoSectors, []float64{float64(i + 1), float64(10 * (i + 1))})
		require.NoError(t, err)
		require.NoError(t, tab.AddDogLegColumn(name, v))
	}
	sum, err := tab.SumDogLegColumns(iotable.FinalDemandColumns...)
	require.NoError(t, err)
	assert.Equal(t, []float64{6, 60}, sum.Values())
}

// TestTechnicalCoefficients verifies a[m,n] = flow[m,n]/finalOutput[n].
func TestTechnicalCoefficients(t *testing.T) {
	tab := twoSectorTable(t)
	coeffs, err := iotable.TechnicalCoefficients(tab, iotable.TotalSalesRow)
	require.NoError(t, err)

	got, err := coeffs.At("Agriculture", "Agriculture")
	require.NoError(t, err)
	assert.InDelta(t, 10.0/100.0, got, 1e-12)

	got, err = coeffs.At("Agriculture", "Production")
	require.NoError(t, err)
	assert.InDelta(t, 20.0/200.0, got, 1e-12, "divide by the consuming sector's output")
}

// TestTechnicalCoefficients_ScaleInvariance verifies scaling the IO
// table by a constant leaves coefficients unchanged.
func TestTechnicalCoefficients_ScaleInvariance(t *testing.T) {
	tab := twoSectorTable(t)
	base, err := iotable.TechnicalCoefficients(tab, iotable.TotalSalesRow)
	require.NoError(t, err)
	scaled, err := iotable.TechnicalCoefficients(tab.Scale(1000), iotable.TotalSalesRow)
	require.NoError(t, err)

	for _, m := range twoSectors {
		for _, n := range twoSectors {
			want, err := base.At(m, n)
			require.NoError(t, err)
			got, err := scaled.At(m, n)
			require.NoError(t, err)
			assert.InDelta(t, want, got, 1e-12)
		}
	}
}

// TestTechnicalCoefficients_ZeroOutput verifies division by zero
// propagates Inf rather than erroring — the documented failure mode.
func TestTechnicalCoefficients_ZeroOutput(t *testing.T) {
	core, err := table.NewMatrixFrom(twoSectors, twoSectors, []float64{
		1, 1,
		1, 1,
	})
	require.NoError(t, err)
	tab, err := iotable.New(core)
	require.NoError(t, err)
	sales, err := table.NewVectorFrom(twoSectors, []float64{100, 0})
	require.NoError(t, err)
	require.NoError(t, tab.AddDogLegRow(iotable.TotalSalesRow, sales))

	coeffs, err := iotable.TechnicalCoefficients(tab, iotable.TotalSalesRow)
	require.NoError(t, err, "degeneracy is not an error")
	got, err := coeffs.At("Agriculture", "Production")
	require.NoError(t, err)
	assert.True(t, math.IsInf(got, 1))
	assert.ErrorIs(t, coeffs.CheckFinite(), table.ErrNotFinite, "guard is opt-in")
}

// TestAggregate verifies fine sectors collapse into groups with summed
// cells and dog legs.
func TestAggregate(t *testing.T) {
	fine := []string{"B", "C", "F"}
	core, err := table.NewMatrixFrom(fine, fine, []float64{
		1, 2, 3,
		4, 5, 6,
		7, 8, 9,
	})
	require.NoError(t, err)
	tab, err := iotable.New(core)
	require.NoError(t, err)
	sales, err := table.NewVectorFrom(fine, []float64{10, 20, 30})
	require.NoError(t, err)
	require.NoError(t, tab.AddDogLegRow(iotable.TotalSalesRow, sales))

	agg := iotable.Aggregation{
		{Name: "Production", Codes: []string{"B", "C", "D", "E"}},
		{Name: "Construction", Codes: []string{"F"}},
	}
	out, err := iotable.Aggregate(tab, agg)
	require.NoError(t, err)
	assert.Equal(t, []string{"Production", "Construction"}, out.Sectors())

	// Production x Production = B,C rows x B,C cols = 1+2+4+5.
	got, err := out.Core().At("Production", "Production")
	require.NoError(t, err)
	assert.Equal(t, 12.0, got)

	got, err = out.Core().At("Production", "Construction")
	require.NoError(t, err)
	assert.Equal(t, 9.0, got)

	row, err := out.DogLegRow(iotable.TotalSalesRow)
	require.NoError(t, err)
	got, err = row.At("Production")
	require.NoError(t, err)
	assert.Equal(t, 30.0, got)
}

// TestAggregation_Validate verifies the partition invariant.
func TestAggregation_Validate(t *testing.T) {
	assert.ErrorIs(t, iotable.Aggregation{}.Validate(), iotable.ErrEmptyAggregation)

	overlapping := iotable.Aggregation{
		{Name: "One", Codes: []string{"A", "B"}},
		{Name: "Two", Codes: []string{"B"}},
	}
	assert.ErrorIs(t, overlapping.Validate(), iotable.ErrCodeReused)

	assert.NoError(t, iotable.AggregationA10.Validate())
	assert.Len(t, iotable.AggregationA10.Names(), 10)
}

// TestProductionXm verifies X_m = column sums + GVA + subsidies.
func TestProductionXm(t *testing.T) {
	tab := twoSectorTable(t)
	gva, err := table.NewVectorFrom(twoSectors, []float64{5, 6})
	require.NoError(t, err)
	require.NoError(t, tab.AddDogLegRow(iotable.GrossValueAddedRow, gva))
	subs, err := table.NewVectorFrom(twoSectors, []float64{1, 2})
	require.NoError(t, err)
	require.NoError(t, tab.AddDogLegRow(iotable.NetSubsidiesRow, subs))

	xm, err := iotable.ProductionXm(tab, iotable.GrossValueAddedRow, iotable.NetSubsidiesRow)
	require.NoError(t, err)
	// Column sums: Agriculture 10+30=40, Production 20+40=60.
	assert.Equal(t, []float64{40 + 5 + 1, 60 + 6 + 2}, xm.Values())
}

// TestResidualXm verifies national minus regional sum per sector.
func TestResidualXm(t *testing.T) {
	national, err := table.NewVectorFrom(twoSectors, []float64{100, 200})
	require.NoError(t, err)
	regional, err := table.NewMatrixFrom([]string{"Leeds", "Manchester"}, twoSectors, []float64{
		30, 80,
		50, 90,
	})
	require.NoError(t, err)

	res, err := iotable.ResidualXm(national, regional)
	require.NoError(t, err)
	assert.Equal(t, []float64{20, 30}, res.Values())
}
