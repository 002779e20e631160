// SPDX-License-Identifier: MIT
// Package table: sentinel error set.
// All exported constructors and accessors return these sentinels and
// tests match them via errors.Is. No function in this package panics
// on user-triggered conditions.

package table

import "errors"

var (
	// ErrNoLabels is returned when a container is constructed from an
	// empty label set.
	ErrNoLabels = errors.New("table: no labels")

	// ErrDuplicateLabel is returned when a label (or composite key)
	// appears more than once in a construction argument.
	ErrDuplicateLabel = errors.New("table: duplicate label")

	// ErrUnknownLabel is returned when a lookup references a label or
	// key absent from the container. Lookups never default-fill.
	ErrUnknownLabel = errors.New("table: unknown label")

	// ErrLengthMismatch is returned when a value slice does not match
	// the container's label count.
	ErrLengthMismatch = errors.New("table: length mismatch")

	// ErrShapeMismatch is returned when two containers with
	// incompatible label sets are combined.
	ErrShapeMismatch = errors.New("table: shape mismatch")

	// ErrColumnExists is returned when a Frame column name is reused.
	ErrColumnExists = errors.New("table: column already exists")

	// ErrUnknownColumn is returned when a Frame lookup references a
	// column that was never added.
	ErrUnknownColumn = errors.New("table: unknown column")

	// ErrNoColumns is returned when a Frame operation needs at least
	// one column and none have been added.
	ErrNoColumns = errors.New("table: frame has no columns")

	// ErrNotFinite is reported by CheckFinite when a NaN or ±Inf value
	// is present.
	ErrNotFinite = errors.New("table: non-finite value")
)
