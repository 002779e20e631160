// SPDX-License-Identifier: MIT

package convergence_test

import (
	"fmt"

	"github.com/spatialecon/regio/convergence"
	"github.com/spatialecon/regio/gravity"
	"github.com/spatialecon/regio/indices"
	"github.com/spatialecon/regio/regional"
	"github.com/spatialecon/regio/table"
)

func ExampleImportExportConvergence() {
	regions := []string{"A", "B"}
	sectors := []string{"S"}

	exports, _ := table.NewMatrixFrom(regions, sectors, []float64{10, 20})
	seed, _ := regional.InitialExports(exports, regional.DefaultInitialExportProportion)

	flows, _ := table.NewFrame(indices.RegionPairSectorIndex(regions, sectors))
	_ = flows.AddColumn(gravity.ConstrainedColumn, []float64{1, 1})

	net, _ := table.NewMatrixFrom(regions, sectors, []float64{0.5, -0.25})

	result, _ := convergence.ImportExportConvergence(seed, flows, gravity.ConstrainedColumn, net,
		&convergence.Options{Iterations: 2})

	final, _ := result.Exports.Column(convergence.EColumn(1))
	fmt.Printf("e_A = %.2f, e_B = %.2f\n", final[0], final[1])
	// Output:
	// e_A = 1.25, e_B = 2.25
}
