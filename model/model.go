// SPDX-License-Identifier: MIT

package model

import (
	"errors"
	"fmt"
	"time"

	"github.com/spatialecon/regio/convergence"
	"github.com/spatialecon/regio/gravity"
	"github.com/spatialecon/regio/indices"
	"github.com/spatialecon/regio/iotable"
	"github.com/spatialecon/regio/regional"
	"github.com/spatialecon/regio/table"
)

var (
	// ErrNilInput is returned when a required input table is nil.
	ErrNilInput = errors.New("model: nil input")

	// ErrNotConverged is returned when results are read before
	// RunConvergence or LoadConvergenceResults.
	ErrNotConverged = errors.New("model: convergence has not been run")

	// ErrBadResults is returned when injected results do not carry the
	// expected iteration columns.
	ErrBadResults = errors.New("model: loaded results missing iteration columns")

	// ErrDuplicateDate is returned when a time series would hold two
	// models for the same date.
	ErrDuplicateDate = errors.New("model: duplicate date in time series")
)

// Inputs are the in-memory source tables of one dated run. Loading
// them from files is the caller's concern.
type Inputs struct {
	// Date labels the run; only the date part is meaningful.
	Date time.Time

	// National is the national input-output table in model units,
	// carrying the standard dog legs (Total Sales, Imports, Gross
	// Value Added, Net subsidies, final demand and export columns).
	National *iotable.Table

	// Employment is the region × sector employment table; its labels
	// define the modelled region and sector space.
	Employment *table.Matrix

	// NationalEmployment is the per-sector national employment total.
	// It may exceed the regional column sums: the modelled regions
	// need not cover the whole economy.
	NationalEmployment *table.Vector

	// Distances is the region × region distance matrix in km. Ignored
	// when Interaction is set.
	Distances *table.Matrix

	// Interaction overrides the spatial model variant. Nil selects the
	// singly constrained attraction model built from Distances and
	// Employment.
	Interaction gravity.Interaction
}

// Options configures a run.
type Options struct {
	// Beta is the distance-decay coefficient of the default spatial
	// model. Ignored when Inputs.Interaction is set.
	Beta float64

	// InitialExportProportion seeds the convergence engine.
	InitialExportProportion float64

	// Iterations is the fixed convergence pass count.
	Iterations int
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{
		Beta:                    gravity.DefaultBeta,
		InitialExportProportion: regional.DefaultInitialExportProportion,
		Iterations:              convergence.DefaultIterations,
	}
}

// Model is an immutable snapshot of every derived table for one date,
// plus the convergence result once a run has happened.
type Model struct {
	date       time.Time
	iterations int

	coefficients *table.Matrix
	production   *table.Matrix
	imports      *table.Matrix
	finalDemand  *table.Matrix
	exports      *table.Matrix
	intermediate *table.Matrix

	constraints *convergence.Constraints
	spatial     gravity.Interaction
	seed        *table.Frame[indices.RegionSector]

	result *convergence.Result
}

// Build derives every table of the pipeline eagerly. Numeric
// degeneracy (zero sector output or employment) propagates Inf/NaN
// untrapped, matching the reference model.
// Errors: ErrNilInput; iotable.ErrMissingDogLeg when the national
// table lacks a standard dog leg; regional.ErrSectorMismatch and
// regional.ErrBadProportion; gravity construction errors.
func Build(in Inputs, opts *Options) (*Model, error) {
	if in.National == nil || in.Employment == nil || in.NationalEmployment == nil {
		return nil, ErrNilInput
	}
	if in.Interaction == nil && in.Distances == nil {
		return nil, fmt.Errorf("distances: %w", ErrNilInput)
	}
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}

	coefficients, err := iotable.TechnicalCoefficients(in.National, iotable.TotalSalesRow)
	if err != nil {
		return nil, err
	}
	nationalProduction, err := iotable.ProductionXm(in.National, iotable.GrossValueAddedRow, iotable.NetSubsidiesRow)
	if err != nil {
		return nil, err
	}
	nationalImports, err := in.National.DogLegRow(iotable.ImportsRow)
	if err != nil {
		return nil, err
	}
	nationalFinalDemand, err := in.National.SumDogLegColumns(iotable.FinalDemandColumns...)
	if err != nil {
		return nil, err
	}
	nationalExports, err := in.National.SumDogLegColumns(iotable.ExportColumns...)
	if err != nil {
		return nil, err
	}

	production, err := regional.ProductionXim(nationalProduction, in.Employment, in.NationalEmployment)
	if err != nil {
		return nil, err
	}
	imports, err := regional.ImportsMim(nationalImports, in.Employment, in.NationalEmployment)
	if err != nil {
		return nil, err
	}
	finalDemand, err := regional.FinalDemandFim(nationalFinalDemand, in.Employment, in.NationalEmployment)
	if err != nil {
		return nil, err
	}
	exports, err := regional.ExportsEim(nationalExports, in.Employment, in.NationalEmployment)
	if err != nil {
		return nil, err
	}
	intermediate, err := regional.IntermediateDemand(production, coefficients)
	if err != nil {
		return nil, err
	}

	constraints, err := convergence.RegionSectorConvergence(
		finalDemand, exports, intermediate, production, imports, in.Employment)
	if err != nil {
		return nil, err
	}

	spatial := in.Interaction
	if spatial == nil {
		spatial, err = gravity.NewAttractionConstrained(in.Distances, in.Employment,
			&gravity.Options{Beta: o.Beta})
		if err != nil {
			return nil, err
		}
	}

	seed, err := regional.InitialExports(exports, o.InitialExportProportion)
	if err != nil {
		return nil, err
	}

	return &Model{
		date:         in.Date,
		iterations:   o.Iterations,
		coefficients: coefficients,
		production:   production,
		imports:      imports,
		finalDemand:  finalDemand,
		exports:      exports,
		intermediate: intermediate,
		constraints:  constraints,
		spatial:      spatial,
		seed:         seed,
	}, nil
}

// Date labels the run.
func (m *Model) Date() time.Time { return m.date }

// Coefficients returns the national technical-coefficient matrix.
func (m *Model) Coefficients() *table.Matrix { return m.coefficients.Clone() }

// Production returns the allocated X_i^m table.
func (m *Model) Production() *table.Matrix { return m.production.Clone() }

// Imports returns the allocated M_i^m table.
func (m *Model) Imports() *table.Matrix { return m.imports.Clone() }

// FinalDemand returns the allocated F_i^m table.
func (m *Model) FinalDemand() *table.Matrix { return m.finalDemand.Clone() }

// Exports returns the allocated E_i^m table.
func (m *Model) Exports() *table.Matrix { return m.exports.Clone() }

// IntermediateDemand returns the summed x_i^{mn} table.
func (m *Model) IntermediateDemand() *table.Matrix { return m.intermediate.Clone() }

// Constraints returns the exogenous constraint series.
func (m *Model) Constraints() *convergence.Constraints { return m.constraints }

// Spatial returns the spatial interaction variant in use.
func (m *Model) Spatial() gravity.Interaction { return m.spatial }

// Converged reports whether results are available.
func (m *Model) Converged() bool { return m.result != nil }

// RunConvergence runs the import/export engine from the seed. Calling
// it again redoes the full run; there is no partial resumption.
func (m *Model) RunConvergence() (*convergence.Result, error) {
	result, err := convergence.ImportExportConvergence(
		m.seed, m.spatial.Flows(), m.spatial.FlowColumn(), m.constraints.Net,
		&convergence.Options{Iterations: m.iterations})
	if err != nil {
		return nil, err
	}
	m.result = result
	return result, nil
}

// LoadConvergenceResults injects precomputed history frames, bypassing
// the solver (cached runs). The frames must carry at least the final
// iteration columns of a completed run.
// Errors: ErrNilInput, ErrBadResults.
func (m *Model) LoadConvergenceResults(exports *table.Frame[indices.RegionSector], flows *table.Frame[indices.RegionPairSector]) error {
	if exports == nil || flows == nil {
		return ErrNilInput
	}
	iterations := 0
	for {
		if _, err := exports.Column(convergence.EColumn(iterations)); err != nil {
			break
		}
		iterations++
	}
	if iterations == 0 {
		return fmt.Errorf("export frame: %w", ErrBadResults)
	}
	if _, err := flows.Column(convergence.YColumn(iterations - 1)); err != nil {
		return fmt.Errorf("flow frame: %w", ErrBadResults)
	}
	m.result = &convergence.Result{
		Exports:    exports.Clone(),
		Flows:      flows.Clone(),
		Iterations: iterations,
	}
	return nil
}

// Result returns the run history.
// Errors: ErrNotConverged.
func (m *Model) Result() (*convergence.Result, error) {
	if m.result == nil {
		return nil, ErrNotConverged
	}
	return m.result, nil
}

// FinalExports returns the converged e_i^m column as a
// (region, sector)-keyed slice alongside the frame keys.
// Errors: ErrNotConverged.
func (m *Model) FinalExports() ([]indices.RegionSector, []float64, error) {
	if m.result == nil {
		return nil, nil, ErrNotConverged
	}
	_, values, err := m.result.Exports.LastColumn()
	if err != nil {
		return nil, nil, err
	}
	return m.result.Exports.Keys(), values, nil
}

// FilterFlows returns the converged flows out of one (region, sector),
// as a vector indexed by destination region.
// Errors: ErrNotConverged; table.ErrUnknownLabel when the pair matches
// no flow rows.
func (m *Model) FilterFlows(region, sector string) (*table.Vector, error) {
	if m.result == nil {
		return nil, ErrNotConverged
	}
	_, values, err := m.result.Flows.LastColumn()
	if err != nil {
		return nil, err
	}
	var destinations []string
	var flows []float64
	for i, k := range m.result.Flows.Keys() {
		if k.Region == region && k.Sector == sector {
			destinations = append(destinations, k.Other)
			flows = append(flows, values[i])
		}
	}
	if len(destinations) == 0 {
		return nil, fmt.Errorf("%s/%s: %w", region, sector, table.ErrUnknownLabel)
	}
	return table.NewVectorFrom(destinations, flows)
}
