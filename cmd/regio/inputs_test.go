// SPDX-License-Identifier: MIT

package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spatialecon/regio/config"
	"github.com/spatialecon/regio/distances"
	"github.com/spatialecon/regio/table"
)

// writeInputDir lays out one run's CSV inputs: a fine-grained national
// table (sectors A, B, C), employment for three cities, and centroids.
func writeInputDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	files := map[string]string{
		ioTableFile: `,A,B,C,Household Purchase,Government Purchase,Non-profit Purchase,Exports to EU,Exports outside EU,Exports of services
A,1,2,3,10,5,1,4,3,1
B,4,5,6,20,8,2,5,2,5
C,7,8,9,30,8,2,5,2,5
Total Sales,50,60,70,0,0,0,0,0,0
Imports,5,6,7,0,0,0,0,0,0
Gross Value Added,20,21,22,0,0,0,0,0,0
Net subsidies,1,1,1,0,0,0,0,0,0
`,
		employmentFile: `,Agriculture,Production
Leeds,40,22035
Liverpool,10,18960
Manchester,75,13880
`,
		nationalEmploymentFile: `sector,employment
Agriculture,422000
Production,3129000
`,
		centroidsFile: `region,x,y
Leeds,0,0
Liverpool,104053.08373,0
Manchester,50000,30000
`,
	}
	for name, body := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644))
	}
	return dir
}

// twoCityConfig models only Leeds and Liverpool and collapses the
// fine-grained sectors into two aggregates.
func twoCityConfig() *config.Config {
	c := config.Defaults()
	c.Regions = map[string]string{
		"Leeds":     "Yorkshire and the Humber",
		"Liverpool": "North West",
	}
	c.Sectors = []config.SectorGroup{
		{Name: "Agriculture", Codes: []string{"A"}},
		{Name: "Production", Codes: []string{"B", "C"}},
	}
	return c
}

func withConfig(t *testing.T, c *config.Config) {
	t.Helper()
	old := cfg
	cfg = c
	t.Cleanup(func() { cfg = old })
}

func TestLoadInputs_AppliesConfiguredRegionsAndSectors(t *testing.T) {
	withConfig(t, twoCityConfig())
	dir := writeInputDir(t)

	in, err := loadInputs(dir, time.Date(2017, time.December, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	// The fine-grained national table is collapsed into the configured
	// aggregates: B and C fold into Production.
	assert.Equal(t, []string{"Agriculture", "Production"}, in.National.Sectors())
	core := in.National.Core()
	v, err := core.At("Agriculture", "Production")
	require.NoError(t, err)
	assert.Equal(t, 5.0, v)
	v, err = core.At("Production", "Production")
	require.NoError(t, err)
	assert.Equal(t, 28.0, v)
	sales, err := in.National.DogLegRow("Total Sales")
	require.NoError(t, err)
	assert.Equal(t, []float64{50, 130}, sales.Values())

	// Employment and distances carry exactly the configured regions;
	// the unconfigured Manchester rows are dropped.
	assert.Equal(t, []string{"Leeds", "Liverpool"}, in.Employment.Rows())
	assert.Equal(t, []string{"Leeds", "Liverpool"}, in.Distances.Rows())
	d, err := in.Distances.At("Leeds", "Liverpool")
	require.NoError(t, err)
	assert.InDelta(t, 104.05308373, d, 1e-9)
}

func TestLoadInputs_ConfiguredRegionMissingFromEmployment(t *testing.T) {
	c := twoCityConfig()
	c.Regions["York"] = "Yorkshire and the Humber"
	withConfig(t, c)

	_, err := loadInputs(writeInputDir(t), time.Date(2017, time.December, 1, 0, 0, 0, 0, time.UTC))
	assert.ErrorIs(t, err, table.ErrUnknownLabel)
}

func TestLoadInputs_ConfiguredRegionMissingCentroid(t *testing.T) {
	withConfig(t, twoCityConfig())
	dir := writeInputDir(t)

	// Liverpool stays in employment but loses its centroid.
	require.NoError(t, os.WriteFile(filepath.Join(dir, centroidsFile), []byte(`region,x,y
Leeds,0,0
Manchester,50000,30000
`), 0o644))

	_, err := loadInputs(dir, time.Date(2017, time.December, 1, 0, 0, 0, 0, time.UTC))
	assert.ErrorIs(t, err, distances.ErrMissingGeometry)
}
