// SPDX-License-Identifier: MIT

package gravity_test

import (
	"fmt"

	"github.com/spatialecon/regio/gravity"
	"github.com/spatialecon/regio/indices"
	"github.com/spatialecon/regio/table"
)

func ExampleNewAttractionConstrained() {
	cities := []string{"Leeds", "Liverpool", "Manchester"}
	dist, _ := table.NewMatrixFrom(cities, cities, []float64{
		0, 104.05308373, 58.24977679,
		104.05308373, 0, 49.31390539,
		58.24977679, 49.31390539, 0,
	})
	employment, _ := table.NewMatrixFrom(cities, []string{"Agriculture"}, []float64{40, 10, 75})

	model, _ := gravity.NewAttractionConstrained(dist, employment, nil)

	flow, _ := model.Flows().At(
		indices.RegionPairSector{Region: "Leeds", Other: "Liverpool", Sector: "Agriculture"},
		gravity.ConstrainedColumn)
	fmt.Println(model.Name())
	fmt.Printf("Leeds -> Liverpool: %.6f\n", flow)
	// Output:
	// singly constrained attraction β = 0.0002
	// Leeds -> Liverpool: 0.345347
}
