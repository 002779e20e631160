// SPDX-License-Identifier: MIT

package convergence

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/spatialecon/regio/indices"
	"github.com/spatialecon/regio/regional"
	"github.com/spatialecon/regio/table"
)

// Result is the full run history. Exports carries the seed column plus
// one EColumn per iteration, Imports one MColumn per iteration, Flows
// the spatial baseline columns plus one YColumn per iteration. Callers
// typically read only the last column of Exports and Flows. Imports is
// nil on results injected from outside the engine (cached runs saved
// without an import history).
type Result struct {
	Exports *table.Frame[indices.RegionSector]
	Imports *table.Frame[indices.RegionSector]
	Flows   *table.Frame[indices.RegionPairSector]

	// Iterations is the pass count the run was made with.
	Iterations int
}

// ImportExportConvergence runs the fixed-point engine.
//
// exports must carry the regional.InitialExportsColumn seed. flows is
// the spatial interaction frame; baselineColumn names its constrained
// flow weights. net is the fixed exogenous constraint (region ×
// sector). The inputs are copied; the caller's frames are not touched.
//
// Per iteration i the engine appends
//
//	m_i^m i = e_{i-1} + net                          (equation 14)
//	y_ij^m i = baseline · m_i^m i[destination]       (equation 15)
//	e_i^m i = Σ_j y_ij^m i grouped by (region, sector)  (equation 18)
//
// where the destination of a flow row is its Other region. The loop
// always runs its full pass count.
// Errors: ErrNilInput, ErrBadIterations, ErrMissingSeed,
// ErrKeyMismatch.
func ImportExportConvergence(exports *table.Frame[indices.RegionSector], flows *table.Frame[indices.RegionPairSector], baselineColumn string, net *table.Matrix, opts *Options) (*Result, error) {
	if exports == nil || flows == nil || net == nil {
		return nil, ErrNilInput
	}
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if o.Iterations <= 0 {
		return nil, fmt.Errorf("%d: %w", o.Iterations, ErrBadIterations)
	}

	eFrame := exports.Clone()
	yFrame := flows.Clone()
	prev, err := eFrame.Column(regional.InitialExportsColumn)
	if err != nil {
		return nil, fmt.Errorf("%q: %w", regional.InitialExportsColumn, ErrMissingSeed)
	}
	baseline, err := yFrame.Column(baselineColumn)
	if err != nil {
		return nil, err
	}

	eKeys := eFrame.Keys()
	pos := make(map[indices.RegionSector]int, len(eKeys))
	for i, k := range eKeys {
		pos[k] = i
	}
	netVals := make([]float64, len(eKeys))
	for i, k := range eKeys {
		if netVals[i], err = net.At(k.Region, k.Sector); err != nil {
			return nil, err
		}
	}
	flowKeys := yFrame.Keys()
	// Destination of each flow row, resolved once.
	dest := make([]int, len(flowKeys))
	origin := make([]int, len(flowKeys))
	for j, k := range flowKeys {
		d, ok := pos[indices.RegionSector{Region: k.Other, Sector: k.Sector}]
		if !ok {
			return nil, fmt.Errorf("%s/%s/%s: %w", k.Region, k.Other, k.Sector, ErrKeyMismatch)
		}
		dest[j] = d
		s, ok := pos[indices.RegionSector{Region: k.Region, Sector: k.Sector}]
		if !ok {
			return nil, fmt.Errorf("%s/%s/%s: %w", k.Region, k.Other, k.Sector, ErrKeyMismatch)
		}
		origin[j] = s
	}

	mFrame, err := table.NewFrame(eKeys)
	if err != nil {
		return nil, err
	}

	for it := 0; it < o.Iterations; it++ {
		m := make([]float64, len(eKeys))
		for i := range eKeys {
			m[i] = prev[i] + netVals[i]
		}
		if err := mFrame.AddColumn(MColumn(it), m); err != nil {
			return nil, err
		}

		y := make([]float64, len(flowKeys))
		for j := range flowKeys {
			y[j] = baseline[j] * m[dest[j]]
		}
		if err := yFrame.AddColumn(YColumn(it), y); err != nil {
			return nil, err
		}

		e := make([]float64, len(eKeys))
		for j := range flowKeys {
			e[origin[j]] += y[j]
		}
		if err := eFrame.AddColumn(EColumn(it), e); err != nil {
			return nil, err
		}
		prev = e
	}

	return &Result{Exports: eFrame, Imports: mFrame, Flows: yFrame, Iterations: o.Iterations}, nil
}

// Delta summarises how much one iteration moved the export estimate.
type Delta struct {
	Iteration int

	// Mean and StdDev describe |e_i - e_{i-1}| over all
	// (region, sector) entries; Max is its largest entry.
	Mean   float64
	StdDev float64
	Max    float64
}

// Deltas returns per-iteration movement statistics of the export
// estimate, a practical stand-in for the convergence check the engine
// deliberately does not perform.
func (r *Result) Deltas() ([]Delta, error) {
	prev, err := r.Exports.Column(regional.InitialExportsColumn)
	if err != nil {
		return nil, err
	}
	out := make([]Delta, 0, r.Iterations)
	for it := 0; it < r.Iterations; it++ {
		cur, err := r.Exports.Column(EColumn(it))
		if err != nil {
			return nil, err
		}
		abs := make([]float64, len(cur))
		max := 0.0
		for i := range cur {
			abs[i] = math.Abs(cur[i] - prev[i])
			if abs[i] > max {
				max = abs[i]
			}
		}
		mean, std := stat.MeanStdDev(abs, nil)
		out = append(out, Delta{Iteration: it, Mean: mean, StdDev: std, Max: max})
		prev = cur
	}
	return out, nil
}
