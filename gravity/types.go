// SPDX-License-Identifier: MIT

package gravity

import (
	"errors"

	"github.com/spatialecon/regio/indices"
	"github.com/spatialecon/regio/table"
)

// Defaults — single source of truth for zero-value behaviour.
const (
	// DefaultBeta is the exponential decay coefficient of the singly
	// constrained model, calibrated for distances in kilometres.
	DefaultBeta = 0.0002

	// DefaultPowerBeta is the power-law decay exponent of the doubly
	// constrained model.
	DefaultPowerBeta = 1.5

	// DefaultBalancingIterations is the number of A/B balancing passes
	// of the doubly constrained model.
	DefaultBalancingIterations = 20
)

// Column names of the interaction frames. They deliberately mirror
// the reference model's labels so persisted results line up with its
// fixtures.
const (
	QColumn           = "Q_i^m"
	DistanceColumn    = "Distance"
	NegBetaCColumn    = "-β c_{ij}"
	DecayColumn       = "exp(-β c_{ij})"
	WeightedColumn    = "Q_i^m * exp(-β c_{ij})"
	WeightedSumColumn = "sum Q_i^m * exp(-β c_{ij})"
	BalancingColumn   = "B_j^m"
	ConstrainedColumn = "B_j^m * Q_i^m * exp(-β c_{ij})"

	PowerDecayColumn     = "c_{ij}^-β"
	OriginFactorColumn   = "A_i^m"
	RawFlowColumn        = "init_b_ij^m"
	NormalisationColumn  = "K"
	DoublyFlowColumn     = "b_ij^m"
	DestinationPopColumn = "P_j"
)

var (
	// ErrBadBeta is returned for a NaN, infinite or negative decay
	// coefficient.
	ErrBadBeta = errors.New("gravity: invalid decay coefficient")

	// ErrBadIterations is returned for a non-positive balancing
	// iteration count.
	ErrBadIterations = errors.New("gravity: iterations must be > 0")

	// ErrNilInput is returned when a required table is nil.
	ErrNilInput = errors.New("gravity: nil input table")
)

// Interaction is the strategy surface the model orchestrator selects
// at construction time: a fully computed flow frame plus the name of
// its constrained baseline column.
type Interaction interface {
	// Flows returns a copy of the region × region × sector frame.
	Flows() *table.Frame[indices.RegionPairSector]
	// FlowColumn names the constrained baseline column within Flows.
	FlowColumn() string
	// Name describes the variant for summaries and run metadata.
	Name() string
}

// Options configures the singly constrained model.
type Options struct {
	// Beta is the exponential distance-decay coefficient.
	Beta float64
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{Beta: DefaultBeta}
}

// DoublyOptions configures the doubly constrained model.
type DoublyOptions struct {
	// Beta is the power-law decay exponent.
	Beta float64
	// Iterations is the number of A/B balancing passes.
	Iterations int
}

// DefaultDoublyOptions returns the documented defaults.
func DefaultDoublyOptions() DoublyOptions {
	return DoublyOptions{Beta: DefaultPowerBeta, Iterations: DefaultBalancingIterations}
}
