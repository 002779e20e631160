// SPDX-License-Identifier: MIT

package regional

import (
	"fmt"
	"math"

	"github.com/spatialecon/regio/indices"
	"github.com/spatialecon/regio/table"
)

// DefaultInitialExportProportion seeds the convergence engine with a
// tenth of each region's allocated exports.
const DefaultInitialExportProportion = 0.1

// InitialExportsColumn names the seed column of the export frame.
const InitialExportsColumn = "initial e_i^m"

// InitialExports builds the seed export frame: one (region, sector)
// row per entry of the allocated exports table, with a single column
// InitialExportsColumn holding proportion · E_i^m.
// Errors: ErrBadProportion.
func InitialExports(exports *table.Matrix, proportion float64) (*table.Frame[indices.RegionSector], error) {
	if math.IsNaN(proportion) || proportion <= 0 {
		return nil, fmt.Errorf("%v: %w", proportion, ErrBadProportion)
	}
	keys := indices.RegionSectorIndex(exports.Rows(), exports.Cols())
	frame, err := table.NewFrame(keys)
	if err != nil {
		return nil, err
	}
	seed := make([]float64, len(keys))
	for i, k := range keys {
		e, err := exports.At(k.Region, k.Sector)
		if err != nil {
			return nil, err
		}
		seed[i] = proportion * e
	}
	if err := frame.AddColumn(InitialExportsColumn, seed); err != nil {
		return nil, err
	}
	return frame, nil
}
