// SPDX-License-Identifier: MIT

package regional_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spatialecon/regio/regional"
	"github.com/spatialecon/regio/table"
)

var sectors = []string{"Agriculture", "Production"}

// TestAllocate_EmploymentShares verifies the proportional rule against
// hand-computed shares.
func TestAllocate_EmploymentShares(t *testing.T) {
	national, err := table.NewVectorFrom(sectors, []float64{1000, 2000})
	require.NoError(t, err)
	employment, err := table.NewMatrixFrom([]string{"Leeds", "Manchester"}, sectors, []float64{
		40, 60,
		10, 140,
	})
	require.NoError(t, err)
	nationalEmployment, err := table.NewVectorFrom(sectors, []float64{100, 400})
	require.NoError(t, err)

	got, err := regional.Allocate(national, employment, nationalEmployment)
	require.NoError(t, err)

	leeds, err := got.At("Leeds", "Agriculture")
	require.NoError(t, err)
	assert.InDelta(t, 1000*40.0/100.0, leeds, 1e-12)

	manchester, err := got.At("Manchester", "Production")
	require.NoError(t, err)
	assert.InDelta(t, 2000*140.0/400.0, manchester, 1e-12)
}

// TestAllocate_IdentityWhenRegionalEqualsNational verifies the
// allocation identity: if one region holds all national employment,
// it receives the full national value.
func TestAllocate_IdentityWhenRegionalEqualsNational(t *testing.T) {
	national, err := table.NewVectorFrom(sectors, []float64{123, 456})
	require.NoError(t, err)
	employment, err := table.NewMatrixFrom([]string{"Leeds"}, sectors, []float64{70, 80})
	require.NoError(t, err)
	nationalEmployment, err := table.NewVectorFrom(sectors, []float64{70, 80})
	require.NoError(t, err)

	got, err := regional.Allocate(national, employment, nationalEmployment)
	require.NoError(t, err)
	row, err := got.Row("Leeds")
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{123, 456}, row.Values(), 1e-12)
}

// TestAllocate_SectorMismatch verifies label checking across the three
// inputs.
func TestAllocate_SectorMismatch(t *testing.T) {
	national, err := table.NewVectorFrom([]string{"Other"}, []float64{1})
	require.NoError(t, err)
	employment, err := table.NewMatrixFrom([]string{"Leeds"}, sectors, []float64{1, 2})
	require.NoError(t, err)
	nationalEmployment, err := table.NewVectorFrom(sectors, []float64{1, 2})
	require.NoError(t, err)

	_, err = regional.Allocate(national, employment, nationalEmployment)
	assert.ErrorIs(t, err, regional.ErrSectorMismatch)
}

// TestRatio checks the a:b = c:d helper.
func TestRatio(t *testing.T) {
	assert.Equal(t, 2.0, regional.Ratio(1, 5, 10))
}

// TestIntermediateDemand verifies x[i,m] = Σ_n a[n,m]·X[i,n].
func TestIntermediateDemand(t *testing.T) {
	production, err := table.NewMatrixFrom([]string{"Leeds"}, sectors, []float64{10, 20})
	require.NoError(t, err)
	coefficients, err := table.NewMatrixFrom(sectors, sectors, []float64{
		0.1, 0.2,
		0.3, 0.4,
	})
	require.NoError(t, err)

	got, err := regional.IntermediateDemand(production, coefficients)
	require.NoError(t, err)

	agri, err := got.At("Leeds", "Agriculture")
	require.NoError(t, err)
	assert.InDelta(t, 0.1*10+0.3*20, agri, 1e-12)

	prod, err := got.At("Leeds", "Production")
	require.NoError(t, err)
	assert.InDelta(t, 0.2*10+0.4*20, prod, 1e-12)
}

// TestProjection verifies column-wise scaling by regional output.
func TestProjection(t *testing.T) {
	coefficients, err := table.NewMatrixFrom(sectors, sectors, []float64{
		0.1, 0.2,
		0.3, 0.4,
	})
	require.NoError(t, err)
	output, err := table.NewVectorFrom(sectors, []float64{10, 100})
	require.NoError(t, err)

	got, err := regional.Projection(coefficients, output)
	require.NoError(t, err)
	v, err := got.At("Agriculture", "Production")
	require.NoError(t, err)
	assert.InDelta(t, 0.2*100, v, 1e-12)
}
