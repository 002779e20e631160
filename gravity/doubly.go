// SPDX-License-Identifier: MIT

package gravity

import (
	"fmt"
	"math"

	"github.com/spatialecon/regio/indices"
	"github.com/spatialecon/regio/table"
)

// DoublyConstrained balances origin and destination margins by
// iterative proportional fitting of the A_i^m and B_j^m factors under
// a power-law decay c_ij^-β:
//
//	A_i^m = 1 / Σ_j B_j^m · P_j     · c_ij^-β
//	B_j^m = 1 / Σ_i A_i^m · Q_i^m · c_ij^-β
//
// after a fixed number of passes the raw flows
// A_i^m · B_j^m · Q_i^m · P_j · c_ij^-β are normalised per
// (destination, sector) by K = 1/Σ so the constrained column sums to
// one over origins, like the singly constrained baseline.
type DoublyConstrained struct {
	beta       float64
	iterations int
	frame      *table.Frame[indices.RegionPairSector]
}

// NewDoublyConstrained runs the balancing iteration. population is a
// per-region attraction mass (e.g. resident population) for the
// destination margin.
// Errors: ErrNilInput, ErrBadBeta, ErrBadIterations;
// table.ErrUnknownLabel on missing entries.
func NewDoublyConstrained(dist, employment *table.Matrix, population *table.Vector, opts *DoublyOptions) (*DoublyConstrained, error) {
	if dist == nil || employment == nil || population == nil {
		return nil, ErrNilInput
	}
	o := DefaultDoublyOptions()
	if opts != nil {
		o = *opts
	}
	if math.IsNaN(o.Beta) || math.IsInf(o.Beta, 0) || o.Beta < 0 {
		return nil, fmt.Errorf("beta %v: %w", o.Beta, ErrBadBeta)
	}
	if o.Iterations <= 0 {
		return nil, fmt.Errorf("%d: %w", o.Iterations, ErrBadIterations)
	}

	regions := employment.Rows()
	sectors := employment.Cols()
	keys := indices.RegionPairSectorIndex(regions, sectors)
	frame, err := table.NewFrame(keys)
	if err != nil {
		return nil, err
	}

	n := len(keys)
	q := make([]float64, n)
	p := make([]float64, n)
	decay := make([]float64, n)
	for i, k := range keys {
		if q[i], err = employment.At(k.Region, k.Sector); err != nil {
			return nil, err
		}
		if p[i], err = population.At(k.Other); err != nil {
			return nil, err
		}
		c, err := dist.At(k.Region, k.Other)
		if err != nil {
			return nil, err
		}
		decay[i] = math.Pow(c, -o.Beta)
	}

	// A and B factors per (region, sector); B starts at 1.
	a := make(map[indices.RegionSector]float64, len(regions)*len(sectors))
	b := make(map[indices.RegionSector]float64, len(regions)*len(sectors))
	for _, k := range indices.RegionSectorIndex(regions, sectors) {
		b[k] = 1
	}
	for it := 0; it < o.Iterations; it++ {
		accumulate(keys, a, func(i int, k indices.RegionPairSector) (indices.RegionSector, float64) {
			return indices.RegionSector{Region: k.Region, Sector: k.Sector},
				b[indices.RegionSector{Region: k.Other, Sector: k.Sector}] * p[i] * decay[i]
		})
		accumulate(keys, b, func(i int, k indices.RegionPairSector) (indices.RegionSector, float64) {
			return indices.RegionSector{Region: k.Other, Sector: k.Sector},
				a[indices.RegionSector{Region: k.Region, Sector: k.Sector}] * q[i] * decay[i]
		})
	}

	raw := make([]float64, n)
	for i, k := range keys {
		raw[i] = a[indices.RegionSector{Region: k.Region, Sector: k.Sector}] *
			b[indices.RegionSector{Region: k.Other, Sector: k.Sector}] *
			q[i] * p[i] * decay[i]
	}
	rawSum := groupSum(keys, raw)
	kNorm := make([]float64, n)
	flows := make([]float64, n)
	for i := range keys {
		kNorm[i] = 1 / rawSum[i]
		flows[i] = raw[i] * kNorm[i]
	}
	aCol := make([]float64, n)
	bCol := make([]float64, n)
	for i, k := range keys {
		aCol[i] = a[indices.RegionSector{Region: k.Region, Sector: k.Sector}]
		bCol[i] = b[indices.RegionSector{Region: k.Other, Sector: k.Sector}]
	}

	for _, col := range []struct {
		name   string
		values []float64
	}{
		{QColumn, q},
		{DestinationPopColumn, p},
		{PowerDecayColumn, decay},
		{OriginFactorColumn, aCol},
		{BalancingColumn, bCol},
		{RawFlowColumn, raw},
		{NormalisationColumn, kNorm},
		{DoublyFlowColumn, flows},
	} {
		if err := frame.AddColumn(col.name, col.values); err != nil {
			return nil, err
		}
	}
	return &DoublyConstrained{beta: o.Beta, iterations: o.Iterations, frame: frame}, nil
}

// accumulate recomputes one balancing factor family in place:
// factor[group] = 1 / Σ term(i) over the rows contributing to group.
func accumulate(keys []indices.RegionPairSector, factor map[indices.RegionSector]float64,
	term func(i int, k indices.RegionPairSector) (indices.RegionSector, float64)) {
	sums := make(map[indices.RegionSector]float64, len(factor))
	for i, k := range keys {
		group, v := term(i, k)
		sums[group] += v
	}
	for group, s := range sums {
		factor[group] = 1 / s
	}
}

// Beta returns the power-law decay exponent.
func (d *DoublyConstrained) Beta() float64 { return d.beta }

// Flows returns a copy of the full interaction frame.
func (d *DoublyConstrained) Flows() *table.Frame[indices.RegionPairSector] {
	return d.frame.Clone()
}

// FlowColumn names the normalised flow column.
func (d *DoublyConstrained) FlowColumn() string { return DoublyFlowColumn }

// Name describes the variant.
func (d *DoublyConstrained) Name() string {
	return fmt.Sprintf("doubly constrained β = %g, %d balancing passes", d.beta, d.iterations)
}
