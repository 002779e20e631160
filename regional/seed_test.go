// SPDX-License-Identifier: MIT

package regional_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spatialecon/regio/indices"
	"github.com/spatialecon/regio/regional"
	"github.com/spatialecon/regio/table"
)

func TestInitialExports(t *testing.T) {
	exports, err := table.NewMatrixFrom(
		[]string{"Leeds", "Liverpool"},
		[]string{"Production", "Services"},
		[]float64{120, 300, 90, 310},
	)
	require.NoError(t, err)

	frame, err := regional.InitialExports(exports, 0.1)
	require.NoError(t, err)

	assert.Equal(t, []string{regional.InitialExportsColumn}, frame.Columns())
	got, err := frame.Column(regional.InitialExportsColumn)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{12, 30, 9, 31}, got, 1e-12)
	assert.Equal(t, indices.RegionSector{Region: "Leeds", Sector: "Production"}, frame.Keys()[0])

	_, err = regional.InitialExports(exports, 0)
	assert.ErrorIs(t, err, regional.ErrBadProportion)
}
