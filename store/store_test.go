// SPDX-License-Identifier: MIT

package store_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spatialecon/regio/convergence"
	"github.com/spatialecon/regio/gravity"
	"github.com/spatialecon/regio/indices"
	"github.com/spatialecon/regio/regional"
	"github.com/spatialecon/regio/store"
	"github.com/spatialecon/regio/table"
)

func fixtureResult(t *testing.T) *convergence.Result {
	t.Helper()
	regions := []string{"A", "B"}
	sectors := []string{"S"}

	exports, err := table.NewMatrixFrom(regions, sectors, []float64{10, 20})
	require.NoError(t, err)
	seed, err := regional.InitialExports(exports, regional.DefaultInitialExportProportion)
	require.NoError(t, err)

	flows, err := table.NewFrame(indices.RegionPairSectorIndex(regions, sectors))
	require.NoError(t, err)
	require.NoError(t, flows.AddColumn(gravity.ConstrainedColumn, []float64{1, 1}))

	net, err := table.NewMatrixFrom(regions, sectors, []float64{0.5, -0.25})
	require.NoError(t, err)

	res, err := convergence.ImportExportConvergence(seed, flows, gravity.ConstrainedColumn, net,
		&convergence.Options{Iterations: 3})
	require.NoError(t, err)
	return res
}

func TestStore_SaveAndLoadRun(t *testing.T) {
	s, err := store.New(t.TempDir())
	require.NoError(t, err)
	defer s.Close()

	date := time.Date(2017, time.December, 1, 0, 0, 0, 0, time.UTC)
	want := fixtureResult(t)
	require.NoError(t, s.SaveRun(date, "singly constrained attraction", want))

	got, err := s.LoadRun(date)
	require.NoError(t, err)
	assert.Equal(t, want.Iterations, got.Iterations)
	assert.Equal(t, want.Exports.Keys(), got.Exports.Keys())
	assert.Equal(t, want.Exports.Columns(), got.Exports.Columns())
	require.NotNil(t, got.Imports)
	assert.Equal(t, want.Imports.Keys(), got.Imports.Keys())
	assert.Equal(t, want.Imports.Columns(), got.Imports.Columns())
	assert.Equal(t, want.Flows.Keys(), got.Flows.Keys())
	assert.Equal(t, want.Flows.Columns(), got.Flows.Columns())

	for _, name := range want.Exports.Columns() {
		a, err := want.Exports.Column(name)
		require.NoError(t, err)
		b, err := got.Exports.Column(name)
		require.NoError(t, err)
		assert.Equal(t, a, b, "column %q", name)
	}
	for _, name := range want.Imports.Columns() {
		a, err := want.Imports.Column(name)
		require.NoError(t, err)
		b, err := got.Imports.Column(name)
		require.NoError(t, err)
		assert.Equal(t, a, b, "column %q", name)
	}
	for _, name := range want.Flows.Columns() {
		a, err := want.Flows.Column(name)
		require.NoError(t, err)
		b, err := got.Flows.Column(name)
		require.NoError(t, err)
		assert.Equal(t, a, b, "column %q", name)
	}
}

func TestStore_SaveRunReplaces(t *testing.T) {
	s, err := store.New(t.TempDir())
	require.NoError(t, err)
	defer s.Close()

	date := time.Date(2017, time.December, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, s.SaveRun(date, "first", fixtureResult(t)))
	require.NoError(t, s.SaveRun(date, "second", fixtureResult(t)))

	dates, err := s.ListRuns()
	require.NoError(t, err)
	assert.Equal(t, []time.Time{date}, dates)
}

// TestStore_SaveRunWithoutImports covers results injected from outside
// the engine, which carry no import history.
func TestStore_SaveRunWithoutImports(t *testing.T) {
	s, err := store.New(t.TempDir())
	require.NoError(t, err)
	defer s.Close()

	date := time.Date(2017, time.December, 1, 0, 0, 0, 0, time.UTC)
	want := fixtureResult(t)
	want.Imports = nil
	require.NoError(t, s.SaveRun(date, "loaded", want))

	got, err := s.LoadRun(date)
	require.NoError(t, err)
	assert.Nil(t, got.Imports)
	assert.Equal(t, want.Exports.Columns(), got.Exports.Columns())
}

func TestStore_LoadRunMissing(t *testing.T) {
	s, err := store.New(t.TempDir())
	require.NoError(t, err)
	defer s.Close()

	_, err = s.LoadRun(time.Date(1999, time.January, 1, 0, 0, 0, 0, time.UTC))
	assert.ErrorIs(t, err, store.ErrRunNotFound)
}
