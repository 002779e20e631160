// SPDX-License-Identifier: MIT

package convergence

import (
	"errors"
	"fmt"
)

// DefaultIterations is the fixed pass count of the import/export
// engine.
const DefaultIterations = 15

var (
	// ErrBadIterations is returned for a non-positive iteration count.
	ErrBadIterations = errors.New("convergence: iterations must be > 0")

	// ErrMissingSeed is returned when the export frame lacks the
	// initial export column.
	ErrMissingSeed = errors.New("convergence: export frame missing seed column")

	// ErrNilInput is returned when a required frame or table is nil.
	ErrNilInput = errors.New("convergence: nil input")

	// ErrKeyMismatch is returned when a flow row references a
	// (region, sector) pair absent from the export frame or the net
	// constraint table.
	ErrKeyMismatch = errors.New("convergence: flow key not covered by export frame")
)

// MColumn names the import estimate column of iteration i.
func MColumn(i int) string { return fmt.Sprintf("m_i^m %d", i) }

// YColumn names the flow column of iteration i.
func YColumn(i int) string { return fmt.Sprintf("y_ij^m %d", i) }

// EColumn names the export estimate column of iteration i.
func EColumn(i int) string { return fmt.Sprintf("e_i^m %d", i) }

// Options configures the engine.
type Options struct {
	// Iterations is the fixed number of passes.
	Iterations int
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{Iterations: DefaultIterations}
}
