// SPDX-License-Identifier: MIT

// Package model assembles the full pipeline for one point in time:
// national input-output table → technical coefficients → regional
// allocation by employment share → spatial interaction baseline →
// import/export convergence.
//
// Build computes every derived table eagerly and returns an immutable
// snapshot; there is no lazy caching, so a Model can never observe
// half-updated state. Running the solver is the one explicit mutation:
// RunConvergence stores (and returns) the full iteration history, and
// calling it again redoes the whole run from the seed.
//
// The spatial interaction variant is a constructor argument satisfying
// gravity.Interaction, fixed for the lifetime of the Model. The singly
// constrained attraction model is the default.
//
// TimeSeries strings independent single-date Models together for bulk
// runs. There is no coupling between dates; it is a convenience
// aggregation, not a temporal model.
package model
