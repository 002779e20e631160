// SPDX-License-Identifier: MIT

package convergence

import (
	"github.com/spatialecon/regio/table"
)

// Constraints holds the three exogenous series of the conservation
// identity, each region × sector.
type Constraints struct {
	// Constant is the rearranged-identity residual
	// F + E + x_summed - X - M (equation 14's fixed term).
	Constant *table.Matrix

	// SectorCorrection is the national correction: the sector total of
	// Constant distributed back to regions by employment share.
	SectorCorrection *table.Matrix

	// Net is Constant - SectorCorrection, the term the engine adds
	// every iteration.
	Net *table.Matrix
}

// RegionSectorConvergence computes the exogenous constraint series
// from the allocated regional tables:
//
//	constant[r,s]   = F[r,s] + E[r,s] + x[r,s] - X[r,s] - M[r,s]
//	correction[r,s] = emp[r,s] · Σ_r constant[r,s] / Σ_r emp[r,s]
//	net             = constant - correction
//
// A sector with zero total employment propagates Inf/NaN untrapped.
// Errors: ErrNilInput; table.ErrShapeMismatch when the tables do not
// share one (region, sector) label space.
func RegionSectorConvergence(finalDemand, exports, intermediateDemand, production, imports, employment *table.Matrix) (*Constraints, error) {
	for _, m := range []*table.Matrix{finalDemand, exports, intermediateDemand, production, imports, employment} {
		if m == nil {
			return nil, ErrNilInput
		}
	}

	constant, err := finalDemand.Add(exports)
	if err != nil {
		return nil, err
	}
	if constant, err = constant.Add(intermediateDemand); err != nil {
		return nil, err
	}
	if constant, err = constant.Sub(production); err != nil {
		return nil, err
	}
	if constant, err = constant.Sub(imports); err != nil {
		return nil, err
	}

	correction := employment.Clone()
	constantBySector := constant.SumRows()
	employmentBySector := employment.SumRows()
	for _, s := range employment.Cols() {
		total, err := constantBySector.At(s)
		if err != nil {
			return nil, err
		}
		empTotal, err := employmentBySector.At(s)
		if err != nil {
			return nil, err
		}
		for _, r := range employment.Rows() {
			emp, err := employment.At(r, s)
			if err != nil {
				return nil, err
			}
			if err := correction.Set(r, s, emp*total/empTotal); err != nil {
				return nil, err
			}
		}
	}

	net, err := constant.Sub(correction)
	if err != nil {
		return nil, err
	}
	return &Constraints{Constant: constant, SectorCorrection: correction, Net: net}, nil
}
