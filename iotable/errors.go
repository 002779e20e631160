// SPDX-License-Identifier: MIT
// Package iotable: sentinel error set.

package iotable

import "errors"

var (
	// ErrNotSquare is returned when the core matrix rows and columns
	// do not carry the same sector labels in the same order.
	ErrNotSquare = errors.New("iotable: core matrix is not square over sectors")

	// ErrSectorMismatch is returned when a dog-leg vector's labels do
	// not match the table's sector set.
	ErrSectorMismatch = errors.New("iotable: sector labels mismatch")

	// ErrDuplicateDogLeg is returned when a dog-leg row or column name
	// is added twice.
	ErrDuplicateDogLeg = errors.New("iotable: duplicate dog-leg name")

	// ErrMissingDogLeg is returned when a referenced dog-leg row or
	// column was never added.
	ErrMissingDogLeg = errors.New("iotable: missing dog-leg")

	// ErrEmptyAggregation is returned when a sector aggregation has no
	// groups.
	ErrEmptyAggregation = errors.New("iotable: empty sector aggregation")

	// ErrCodeReused is returned when a fine-grained sector code is
	// claimed by more than one aggregate group; the aggregation must
	// partition the code space.
	ErrCodeReused = errors.New("iotable: sector code in two aggregates")
)
