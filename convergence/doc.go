// SPDX-License-Identifier: MIT

// Package convergence reconciles regional imports, exports and
// inter-region trade flows against national totals.
//
// The import/export engine is a fixed-point iteration over two keyed
// frames. Each pass reads the previous export estimate e, adds the
// fixed exogenous net constraint to produce the import estimate m
// (equation 14), redistributes m through the spatial interaction
// baseline weights into flows y (equation 15), and re-aggregates the
// flows into the next export estimate e = Σ_j y (equation 18). Every
// iterate is appended as a new frame column, so the full history stays
// available after the run.
//
// Termination is purely iteration-count based. There is no tolerance
// check, no early exit and no divergence detection; a fixed number of
// passes (default 15) is assumed sufficient for practical convergence
// at typical decay coefficients and network sizes.
//
// RegionSectorConvergence computes the exogenous terms the engine
// holds fixed: the per-(region, sector) residual of the conservation
// identity, a sector-level national correction distributed back by
// employment share, and their difference, the net constraint. The
// correction is a heuristic for economic activity outside the modelled
// region set, not a derived law; its aggregation is reproduced as
// documented even though the economic soundness of the formula is
// unverified.
package convergence
