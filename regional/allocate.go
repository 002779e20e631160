// SPDX-License-Identifier: MIT

package regional

import (
	"errors"
	"fmt"
	"slices"

	"github.com/spatialecon/regio/table"
)

var (
	// ErrSectorMismatch is returned when the national series,
	// employment table and national employment series do not share one
	// sector label order.
	ErrSectorMismatch = errors.New("regional: sector labels mismatch")

	// ErrBadProportion is returned for a non-positive or NaN initial
	// export proportion.
	ErrBadProportion = errors.New("regional: invalid export proportion")
)

// Allocate distributes a national per-sector series across regions by
// employment share:
//
//	out[r,s] = national[s] · employment[r,s] / nationalEmployment[s]
//
// A zero national employment entry propagates Inf/NaN untrapped.
// Errors: ErrSectorMismatch.
func Allocate(national *table.Vector, employment *table.Matrix, nationalEmployment *table.Vector) (*table.Matrix, error) {
	sectors := employment.Cols()
	if !slices.Equal(national.Labels(), sectors) {
		return nil, fmt.Errorf("national series: %w", ErrSectorMismatch)
	}
	if !slices.Equal(nationalEmployment.Labels(), sectors) {
		return nil, fmt.Errorf("national employment: %w", ErrSectorMismatch)
	}
	out := employment.Clone()
	for _, s := range sectors {
		total, err := national.At(s)
		if err != nil {
			return nil, err
		}
		natEmp, err := nationalEmployment.At(s)
		if err != nil {
			return nil, err
		}
		for _, r := range employment.Rows() {
			emp, err := employment.At(r, s)
			if err != nil {
				return nil, err
			}
			if err := out.Set(r, s, total*emp/natEmp); err != nil {
				return nil, err
			}
		}
	}
	return out, nil
}

// ProductionXim estimates total production of sector m in region i,
// X_i^m = X_*^m · Q_i^m / Q_*^m.
func ProductionXim(totalProduction *table.Vector, employment *table.Matrix, nationalEmployment *table.Vector) (*table.Matrix, error) {
	return Allocate(totalProduction, employment, nationalEmployment)
}

// ImportsMim estimates imports of sector m in region i,
// M_i^m = M_*^m · Q_i^m / Q_*^m.
func ImportsMim(imports *table.Vector, employment *table.Matrix, nationalEmployment *table.Vector) (*table.Matrix, error) {
	return Allocate(imports, employment, nationalEmployment)
}

// FinalDemandFim estimates final demand of sector m in region i,
// F_i^m = F_*^m · Q_i^m / Q_*^m.
func FinalDemandFim(finalDemand *table.Vector, employment *table.Matrix, nationalEmployment *table.Vector) (*table.Matrix, error) {
	return Allocate(finalDemand, employment, nationalEmployment)
}

// ExportsEim estimates exports of sector m in region i,
// E_i^m = E_*^m · Q_i^m / Q_*^m.
func ExportsEim(exports *table.Vector, employment *table.Matrix, nationalEmployment *table.Vector) (*table.Matrix, error) {
	return Allocate(exports, employment, nationalEmployment)
}

// Ratio solves c from a:b = c:d, i.e. c = a·d / b.
func Ratio(a, b, d float64) float64 { return a * d / b }

// IntermediateDemand returns the summed intermediate demand term,
// x[i,m] = Σ_n a[n,m] · X[i,n], the matrix product of regional
// production with the technical-coefficient matrix.
// Errors: table.ErrShapeMismatch when production columns and
// coefficient rows do not align.
func IntermediateDemand(production *table.Matrix, coefficients *table.Matrix) (*table.Matrix, error) {
	return production.Mul(coefficients)
}

// Projection scales the technical-coefficient matrix by a region's
// output per consuming sector, a first-cut regional IO table:
// out[m,n] = a[m,n] · output[n].
// Errors: ErrSectorMismatch.
func Projection(coefficients *table.Matrix, output *table.Vector) (*table.Matrix, error) {
	if !slices.Equal(coefficients.Cols(), output.Labels()) {
		return nil, fmt.Errorf("regional output: %w", ErrSectorMismatch)
	}
	out := coefficients.Clone()
	for _, n := range out.Cols() {
		x, err := output.At(n)
		if err != nil {
			return nil, err
		}
		for _, m := range out.Rows() {
			v, err := out.At(m, n)
			if err != nil {
				return nil, err
			}
			if err := out.Set(m, n, v*x); err != nil {
				return nil, err
			}
		}
	}
	return out, nil
}
