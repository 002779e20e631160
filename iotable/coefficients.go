// SPDX-License-Identifier: MIT

package iotable

import (
	"github.com/spatialecon/regio/table"
)

// TechnicalCoefficients derives the input-output coefficient matrix
// from the core flows and a final output dog-leg row:
//
//	a[m,n] = flow[m,n] / finalOutput[n]
//
// the per-unit intermediate requirement of consuming sector n from
// producing sector m. A zero final output entry yields ±Inf (or NaN
// for a zero flow), which propagates downstream untrapped; run
// CheckFinite on the result to guard instead.
// Errors: ErrMissingDogLeg.
func TechnicalCoefficients(t *Table, finalOutputRow string) (*table.Matrix, error) {
	finalOutput, err := t.DogLegRow(finalOutputRow)
	if err != nil {
		return nil, err
	}
	sectors := t.Sectors()
	out := t.Core()
	for _, n := range sectors {
		div, err := finalOutput.At(n)
		if err != nil {
			return nil, err
		}
		for _, m := range sectors {
			v, err := out.At(m, n)
			if err != nil {
				return nil, err
			}
			if err := out.Set(m, n, v/div); err != nil {
				return nil, err
			}
		}
	}
	return out, nil
}

// ProductionXm returns national total production per sector:
//
//	X_m = Σ_rows core[·,m] + GVA[m] + subsidies[m]
//
// intermediate demand column sums plus gross value added plus net
// subsidies.
// Errors: ErrMissingDogLeg.
func ProductionXm(t *Table, gvaRow, subsidiesRow string) (*table.Vector, error) {
	gva, err := t.DogLegRow(gvaRow)
	if err != nil {
		return nil, err
	}
	subs, err := t.DogLegRow(subsidiesRow)
	if err != nil {
		return nil, err
	}
	out, err := t.core.SumRows().Add(gva)
	if err != nil {
		return nil, err
	}
	return out.Add(subs)
}

// ResidualXm returns national production minus the regional sum per
// sector — the production not attributed to any modelled region.
func ResidualXm(national *table.Vector, regional *table.Matrix) (*table.Vector, error) {
	return national.Sub(regional.SumRows())
}
