// SPDX-License-Identifier: MIT

// Package table provides labelled dense numeric containers for
// region/sector economic modelling:
//
//   - Vector — an ordered label → float64 series (e.g. national totals
//     per sector).
//   - Matrix — a row-label × column-label table backed by a gonum
//     *mat.Dense (e.g. employment by region and sector, or an
//     input-output coefficient matrix).
//   - Frame  — a composite-keyed table of named float64 columns that
//     supports appending columns without disturbing existing ones
//     (the shape the convergence engine uses to retain one column per
//     iteration).
//
// All containers keep a deterministic label order fixed at
// construction; iteration over rows and keys always follows that
// order. Lookups by unknown label fail with ErrUnknownLabel rather
// than defaulting, so a missing region or sector surfaces at the
// point of first use.
//
// Numeric policy: values are stored as float64 and are NOT validated
// for NaN/Inf on write. Division by zero upstream therefore
// propagates silently, matching the reference model's behaviour.
// Callers that want a guard can run CheckFinite explicitly.
package table
