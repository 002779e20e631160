// SPDX-License-Identifier: MIT

package gravity

import (
	"fmt"
	"math"

	"github.com/spatialecon/regio/indices"
	"github.com/spatialecon/regio/table"
)

// AttractionConstrained is the singly (destination) constrained
// gravity model. Construction runs the whole computation; the result
// is immutable afterwards.
type AttractionConstrained struct {
	beta  float64
	frame *table.Frame[indices.RegionPairSector]
}

// NewAttractionConstrained computes the balancing factors and baseline
// flow weights from a region × region distance matrix (km) and a
// region × sector employment table.
//
// Stages, in order, each appended as a frame column:
//  1. Q_i^m and Distance looked up per (origin, destination, sector).
//  2. -β·c_ij.
//  3. exp(-β·c_ij).
//  4. Q_i^m · exp(-β·c_ij).
//  5. Σ_origin of stage 4, grouped by (destination, sector).
//  6. B_j^m = 1 / stage 5 (equation 16). A zero denominator yields
//     +Inf untrapped.
//  7. B_j^m · Q_i^m · exp(-β·c_ij) — the constrained baseline.
//
// Errors: ErrNilInput, ErrBadBeta; table.ErrUnknownLabel when a
// distance or employment entry is missing.
func NewAttractionConstrained(dist, employment *table.Matrix, opts *Options) (*AttractionConstrained, error) {
	if dist == nil || employment == nil {
		return nil, ErrNilInput
	}
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if math.IsNaN(o.Beta) || math.IsInf(o.Beta, 0) || o.Beta < 0 {
		return nil, fmt.Errorf("beta %v: %w", o.Beta, ErrBadBeta)
	}

	keys := indices.RegionPairSectorIndex(employment.Rows(), employment.Cols())
	frame, err := table.NewFrame(keys)
	if err != nil {
		return nil, err
	}

	n := len(keys)
	q := make([]float64, n)
	c := make([]float64, n)
	for i, k := range keys {
		if q[i], err = employment.At(k.Region, k.Sector); err != nil {
			return nil, err
		}
		if c[i], err = dist.At(k.Region, k.Other); err != nil {
			return nil, err
		}
	}
	negBetaC := make([]float64, n)
	decay := make([]float64, n)
	weighted := make([]float64, n)
	for i := range keys {
		negBetaC[i] = -o.Beta * c[i]
		decay[i] = math.Exp(negBetaC[i])
		weighted[i] = q[i] * decay[i]
	}
	weightedSum := groupSum(keys, weighted)
	balancing := make([]float64, n)
	constrained := make([]float64, n)
	for i := range keys {
		balancing[i] = 1 / weightedSum[i]
		constrained[i] = balancing[i] * weighted[i]
	}

	for _, col := range []struct {
		name   string
		values []float64
	}{
		{QColumn, q},
		{DistanceColumn, c},
		{NegBetaCColumn, negBetaC},
		{DecayColumn, decay},
		{WeightedColumn, weighted},
		{WeightedSumColumn, weightedSum},
		{BalancingColumn, balancing},
		{ConstrainedColumn, constrained},
	} {
		if err := frame.AddColumn(col.name, col.values); err != nil {
			return nil, err
		}
	}
	return &AttractionConstrained{beta: o.Beta, frame: frame}, nil
}

// Beta returns the decay coefficient the model was built with.
func (a *AttractionConstrained) Beta() float64 { return a.beta }

// Flows returns a copy of the full interaction frame.
func (a *AttractionConstrained) Flows() *table.Frame[indices.RegionPairSector] {
	return a.frame.Clone()
}

// FlowColumn names the constrained baseline column.
func (a *AttractionConstrained) FlowColumn() string { return ConstrainedColumn }

// Name describes the variant.
func (a *AttractionConstrained) Name() string {
	return fmt.Sprintf("singly constrained attraction β = %g", a.beta)
}

// groupSum sums values over origins for each (destination, sector)
// group and broadcasts the group total back to every member row.
func groupSum(keys []indices.RegionPairSector, values []float64) []float64 {
	type group struct{ Other, Sector string }
	totals := make(map[group]float64, len(keys))
	for i, k := range keys {
		totals[group{k.Other, k.Sector}] += values[i]
	}
	out := make([]float64, len(keys))
	for i, k := range keys {
		out[i] = totals[group{k.Other, k.Sector}]
	}
	return out
}
